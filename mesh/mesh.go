// Package mesh provides the boundary-facet view of a simplicial mesh that
// boundary condition resolution works against: named facet sections, facet
// tagging, and tagged surface measures.
package mesh

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Mesh is a boundary view of a simplicial mesh: vertex coordinates plus the
// boundary facets (edges in 2D, triangles in 3D) as vertex-id lists. Interior
// topology is owned by the external mesh collaborator and is not represented
// here.
type Mesh struct {
	Dim    int        // Topological dimension (2 or 3)
	Coords *mat.Dense // Dim × NumVertices vertex coordinates
	Facets [][]int    // [facet][vertex ids], Dim vertices per facet
}

// NewMesh creates a boundary mesh view and validates its connectivity.
func NewMesh(dim int, coords *mat.Dense, facets [][]int) (*Mesh, error) {
	if dim != 2 && dim != 3 {
		return nil, fmt.Errorf("unsupported topological dimension %d", dim)
	}
	r, _ := coords.Dims()
	if r != dim {
		return nil, fmt.Errorf("coordinate rows %d do not match dimension %d", r, dim)
	}
	m := &Mesh{Dim: dim, Coords: coords, Facets: facets}
	if err := m.Verify(); err != nil {
		return nil, err
	}
	return m, nil
}

// NumVertices returns the number of mesh vertices.
func (m *Mesh) NumVertices() int {
	_, nv := m.Coords.Dims()
	return nv
}

// NumFacets returns the number of boundary facets.
func (m *Mesh) NumFacets() int { return len(m.Facets) }

// FacetDim returns the topological dimension of a boundary facet.
func (m *Mesh) FacetDim() int { return m.Dim - 1 }

// Vertex returns the coordinates of vertex v.
func (m *Mesh) Vertex(v int) []float64 {
	x := make([]float64, m.Dim)
	for i := 0; i < m.Dim; i++ {
		x[i] = m.Coords.At(i, v)
	}
	return x
}

// FacetMidpoint returns the centroid of facet f.
func (m *Mesh) FacetMidpoint(f int) []float64 {
	x := make([]float64, m.Dim)
	verts := m.Facets[f]
	for _, v := range verts {
		for i := 0; i < m.Dim; i++ {
			x[i] += m.Coords.At(i, v)
		}
	}
	for i := range x {
		x[i] /= float64(len(verts))
	}
	return x
}

// FacetArea returns the measure of facet f: edge length in 2D, triangle area
// in 3D.
func (m *Mesh) FacetArea(f int) float64 {
	verts := m.Facets[f]
	a := m.Vertex(verts[0])
	b := m.Vertex(verts[1])
	if m.Dim == 2 {
		dx := b[0] - a[0]
		dy := b[1] - a[1]
		return math.Hypot(dx, dy)
	}
	c := m.Vertex(verts[2])
	// |AB × AC| / 2
	ab := [3]float64{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
	ac := [3]float64{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
	cx := ab[1]*ac[2] - ab[2]*ac[1]
	cy := ab[2]*ac[0] - ab[0]*ac[2]
	cz := ab[0]*ac[1] - ab[1]*ac[0]
	return 0.5 * math.Sqrt(cx*cx+cy*cy+cz*cz)
}

// Verify checks facet connectivity: vertex ids in range and distinct, and the
// vertex count per facet matching the facet dimension.
func (m *Mesh) Verify() error {
	nv := m.NumVertices()
	for f, verts := range m.Facets {
		if len(verts) != m.Dim {
			return fmt.Errorf("facet %d has %d vertices, expected %d", f, len(verts), m.Dim)
		}
		seen := make(map[int]bool, len(verts))
		for _, v := range verts {
			if v < 0 || v >= nv {
				return fmt.Errorf("facet %d references vertex %d (have %d vertices)", f, v, nv)
			}
			if seen[v] {
				return fmt.Errorf("facet %d repeats vertex %d", f, v)
			}
			seen[v] = true
		}
	}
	return nil
}
