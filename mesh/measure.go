package mesh

import "fmt"

// Measure is a surface-integration measure over tagged boundary regions, the
// analogue of a "ds" measure parameterized by subdomain data. Sub restricts
// it to one tag.
type Measure struct {
	mesh *Mesh
	tags *MeshTags
}

// NewSurfaceMeasure creates a tagged surface measure from facet tags.
func NewSurfaceMeasure(m *Mesh, tags *MeshTags) (*Measure, error) {
	if tags.Dim != m.FacetDim() {
		return nil, fmt.Errorf("surface measure needs tags of dimension %d, got %d", m.FacetDim(), tags.Dim)
	}
	return &Measure{mesh: m, tags: tags}, nil
}

// Mesh returns the mesh the measure integrates over.
func (ds *Measure) Mesh() *Mesh { return ds.mesh }

// Tags returns the distinct region tags, ascending.
func (ds *Measure) Tags() []int32 { return ds.tags.Tags() }

// Sub returns the measure restricted to one region tag. A tag with no facets
// yields an empty sub-measure.
func (ds *Measure) Sub(tag int) SubMeasure {
	return SubMeasure{
		mesh:   ds.mesh,
		Tag:    int32(tag),
		Facets: ds.tags.Find(int32(tag)),
	}
}

// Verify checks that tagged regions are pairwise disjoint: no facet carries
// two different tags. Overlap is a configuration defect the builder itself
// accepts, so callers that need the disjointness invariant assert it here.
func (ds *Measure) Verify() error {
	owner := make(map[int]int32, len(ds.tags.Indices))
	for i, f := range ds.tags.Indices {
		v := ds.tags.Values[i]
		if prev, ok := owner[f]; ok && prev != v {
			return fmt.Errorf("facet %d tagged by both regions %d and %d", f, prev, v)
		}
		owner[f] = v
	}
	return nil
}

// SubMeasure integrates over the facets of a single tagged region.
type SubMeasure struct {
	mesh   *Mesh
	Tag    int32
	Facets []int
}

// Empty reports whether the region has no facets.
func (sm SubMeasure) Empty() bool { return len(sm.Facets) == 0 }

// Area returns the total measure of the region.
func (sm SubMeasure) Area() float64 {
	var a float64
	for _, f := range sm.Facets {
		a += sm.mesh.FacetArea(f)
	}
	return a
}

// Integrate applies a one-point midpoint rule to a pointwise scalar over the
// region. Exact for facet-wise constant integrands, which is all the setup
// layer needs; weak-form quadrature belongs to the external assembler.
func (sm SubMeasure) Integrate(f func(x []float64) float64) float64 {
	var a float64
	for _, fc := range sm.Facets {
		a += f(sm.mesh.FacetMidpoint(fc)) * sm.mesh.FacetArea(fc)
	}
	return a
}
