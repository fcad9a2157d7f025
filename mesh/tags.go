package mesh

import (
	"fmt"
	"sort"
)

// MeshTags associates integer tags with mesh entities of one topological
// dimension. Indices and Values are parallel arrays accumulated in a single
// pass, so a facet may appear more than once (under distinct tags) without
// the structure being rebuilt.
type MeshTags struct {
	Dim     int     // Topological dimension of the tagged entities
	Indices []int   // Entity ids
	Values  []int32 // Tag per entity, parallel to Indices
}

// NewMeshTags creates a tag structure over entities of dimension dim.
func NewMeshTags(m *Mesh, dim int, indices []int, values []int32) (*MeshTags, error) {
	if dim != m.FacetDim() {
		return nil, fmt.Errorf("tag dimension %d: only facet dimension %d is supported", dim, m.FacetDim())
	}
	if len(indices) != len(values) {
		return nil, fmt.Errorf("indices length %d does not match values length %d", len(indices), len(values))
	}
	nf := m.NumFacets()
	for i, f := range indices {
		if f < 0 || f >= nf {
			return nil, fmt.Errorf("tagged entity %d out of range (have %d facets)", f, nf)
		}
		if values[i] <= 0 {
			return nil, fmt.Errorf("tag %d for entity %d: tags must be positive", values[i], f)
		}
	}
	return &MeshTags{Dim: dim, Indices: indices, Values: values}, nil
}

// Find returns the entity ids carrying the given tag, in accumulation order.
func (t *MeshTags) Find(tag int32) []int {
	var out []int
	for i, v := range t.Values {
		if v == tag {
			out = append(out, t.Indices[i])
		}
	}
	return out
}

// Tags returns the distinct tags present, ascending.
func (t *MeshTags) Tags() []int32 {
	seen := make(map[int32]bool)
	var out []int32
	for _, v := range t.Values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
