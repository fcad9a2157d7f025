package mesh

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// unitSquare builds the boundary view of a unit square: 4 vertices, 4 edge
// facets in order bottom, right, top, left.
func unitSquare(t *testing.T) *Mesh {
	t.Helper()
	coords := mat.NewDense(2, 4, []float64{
		0, 1, 1, 0,
		0, 0, 1, 1,
	})
	facets := [][]int{
		{0, 1}, // bottom
		{1, 2}, // right
		{2, 3}, // top
		{3, 0}, // left
	}
	m, err := NewMesh(2, coords, facets)
	if err != nil {
		t.Fatalf("NewMesh failed: %v", err)
	}
	return m
}

// unitCube builds the boundary view of a unit cube: 8 vertices, 12 triangle
// facets, two per side.
func unitCube(t *testing.T) *Mesh {
	t.Helper()
	coords := mat.NewDense(3, 8, []float64{
		0, 1, 1, 0, 0, 1, 1, 0,
		0, 0, 1, 1, 0, 0, 1, 1,
		0, 0, 0, 0, 1, 1, 1, 1,
	})
	facets := [][]int{
		{0, 3, 7}, {0, 7, 4}, // left, x=0
		{1, 2, 6}, {1, 6, 5}, // right, x=1
		{0, 1, 2}, {0, 2, 3}, // bottom, z=0
		{4, 5, 6}, {4, 6, 7}, // top, z=1
	}
	m, err := NewMesh(3, coords, facets)
	if err != nil {
		t.Fatalf("NewMesh failed: %v", err)
	}
	return m
}

func TestNewMeshValidation(t *testing.T) {
	coords := mat.NewDense(2, 3, []float64{
		0, 1, 0,
		0, 0, 1,
	})

	tests := []struct {
		name   string
		dim    int
		facets [][]int
	}{
		{"bad dimension", 4, [][]int{{0, 1}}},
		{"vertex out of range", 2, [][]int{{0, 3}}},
		{"repeated vertex", 2, [][]int{{1, 1}}},
		{"wrong facet size", 2, [][]int{{0, 1, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMesh(tt.dim, coords, tt.facets); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}

func TestMeshCounts(t *testing.T) {
	m := unitSquare(t)
	if m.NumVertices() != 4 {
		t.Errorf("NumVertices = %d, want 4", m.NumVertices())
	}
	if m.NumFacets() != 4 {
		t.Errorf("NumFacets = %d, want 4", m.NumFacets())
	}
	if m.FacetDim() != 1 {
		t.Errorf("FacetDim = %d, want 1", m.FacetDim())
	}
}

func TestFacetArea2D(t *testing.T) {
	m := unitSquare(t)
	for f := 0; f < m.NumFacets(); f++ {
		if a := m.FacetArea(f); math.Abs(a-1.0) > 1e-14 {
			t.Errorf("facet %d area = %g, want 1", f, a)
		}
	}
}

func TestFacetArea3D(t *testing.T) {
	m := unitCube(t)
	for f := 0; f < m.NumFacets(); f++ {
		if a := m.FacetArea(f); math.Abs(a-0.5) > 1e-14 {
			t.Errorf("facet %d area = %g, want 0.5", f, a)
		}
	}
}

func TestFacetMidpoint(t *testing.T) {
	m := unitSquare(t)
	mid := m.FacetMidpoint(0) // bottom edge
	if math.Abs(mid[0]-0.5) > 1e-14 || math.Abs(mid[1]) > 1e-14 {
		t.Errorf("bottom midpoint = %v, want (0.5, 0)", mid)
	}
}

func TestSectionIndex(t *testing.T) {
	s := NewSectionIndex()
	s.Set("left", []int{3})
	s.Set("right", []int{1})

	if !s.Has("left") || s.Has("front") {
		t.Error("membership queries wrong")
	}
	f, ok := s.Facets("right")
	if !ok || len(f) != 1 || f[0] != 1 {
		t.Errorf("Facets(right) = %v, %v", f, ok)
	}
	names := s.Names()
	if len(names) != 2 || names[0] != "left" || names[1] != "right" {
		t.Errorf("Names = %v, want registration order", names)
	}

	// Replacing keeps the name order stable.
	s.Set("left", []int{0, 3})
	if s.Len() != 2 {
		t.Errorf("Len = %d after replace, want 2", s.Len())
	}
}
