package mesh

// SectionIndex maps boundary section names to the facet ids that compose
// them. It is supplied by the mesh collaborator and borrowed read-only during
// resolution. Name order is preserved for deterministic iteration.
type SectionIndex struct {
	names  []string
	facets map[string][]int
}

// NewSectionIndex creates an empty section index.
func NewSectionIndex() *SectionIndex {
	return &SectionIndex{facets: make(map[string][]int)}
}

// Set registers the facet set for a named section, replacing any previous
// entry for the same name.
func (s *SectionIndex) Set(name string, facets []int) {
	if _, ok := s.facets[name]; !ok {
		s.names = append(s.names, name)
	}
	s.facets[name] = facets
}

// Facets returns the facet ids of the named section and whether the section
// exists.
func (s *SectionIndex) Facets(name string) ([]int, bool) {
	f, ok := s.facets[name]
	return f, ok
}

// Has reports whether the named section exists.
func (s *SectionIndex) Has(name string) bool {
	_, ok := s.facets[name]
	return ok
}

// Names returns the section names in registration order.
func (s *SectionIndex) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of sections.
func (s *SectionIndex) Len() int { return len(s.names) }
