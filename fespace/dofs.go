package fespace

import "sort"

// facetVertices collects the distinct vertex ids incident to a facet set,
// ascending.
func facetVertices(V *Space, facets []int) []int {
	seen := make(map[int]bool)
	for _, f := range facets {
		for _, v := range V.msh.Facets[f] {
			seen[v] = true
		}
	}
	verts := make([]int, 0, len(seen))
	for v := range seen {
		verts = append(verts, v)
	}
	sort.Ints(verts)
	return verts
}

// LocateDOFs returns all degrees of freedom of the space topologically
// incident to the given boundary facets, ascending.
func (V *Space) LocateDOFs(facets []int) []int {
	verts := facetVertices(V, facets)
	dofs := make([]int, 0, len(verts)*V.dim)
	for _, v := range verts {
		for c := 0; c < V.dim; c++ {
			dofs = append(dofs, v*V.dim+c)
		}
	}
	return dofs
}

// LocateDOFs returns the parent-space degrees of freedom of this component
// on the given facets, ascending.
func (W *SubspaceView) LocateDOFs(facets []int) []int {
	verts := facetVertices(W.parent, facets)
	dofs := make([]int, 0, len(verts))
	for _, v := range verts {
		dofs = append(dofs, v*W.parent.dim+W.component)
	}
	return dofs
}

// PairedDOFs couples the two index sets a component-restricted constraint
// needs: the component's degrees of freedom numbered in the parent space and
// the same degrees of freedom numbered in the collapsed scalar space. The two
// slices are parallel and equal length by construction.
type PairedDOFs struct {
	Parent    []int
	Collapsed []int
}

// Len returns the number of paired degrees of freedom.
func (p PairedDOFs) Len() int { return len(p.Parent) }

// LocatePairedDOFs locates the component's degrees of freedom on the given
// facets in both the parent-space numbering and the collapsed-space
// numbering.
func (W *SubspaceView) LocatePairedDOFs(facets []int) PairedDOFs {
	verts := facetVertices(W.parent, facets)
	p := PairedDOFs{
		Parent:    make([]int, len(verts)),
		Collapsed: make([]int, len(verts)),
	}
	for i, v := range verts {
		p.Parent[i] = v*W.parent.dim + W.component
		p.Collapsed[i] = v
	}
	return p
}
