package loaders

import "fmt"

// UnknownSectionError reports a boundary condition naming a section absent
// from the section index. Resolution aborts immediately.
type UnknownSectionError struct {
	Process string
	Section string
}

func (e *UnknownSectionError) Error() string {
	if e.Process == "" {
		return fmt.Sprintf("unknown boundary section %q", e.Section)
	}
	return fmt.Sprintf("%s: unknown boundary section %q", e.Process, e.Section)
}

// SectionConflictError reports a section claimed by both a Dirichlet-type and
// a natural-type record of the same process.
type SectionConflictError struct {
	Process string
	Section string
}

func (e *SectionConflictError) Error() string {
	return fmt.Sprintf("%s: section %q appears in both essential and natural boundary conditions", e.Process, e.Section)
}
