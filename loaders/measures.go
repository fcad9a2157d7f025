package loaders

import (
	"fmt"

	"github.com/donald-e-boyce/polycrystalx/fespace"
	"github.com/donald-e-boyce/polycrystalx/inputs"
	"github.com/donald-e-boyce/polycrystalx/mesh"
)

// BoundaryMeasures builds the tagged surface measure for an ordered list of
// natural-type boundary conditions. The i-th record (1-indexed) receives tag
// i and its section's facets are stamped with that tag; all (facet, tag)
// pairs are accumulated in a single pass and parameterize one measure, so
// Sub(i) integrates exactly over the i-th record's section.
//
// An empty list returns nil: the adapter skips natural-term assembly rather
// than building a degenerate measure. A section named by two records gets two
// distinct tags and integrates twice; that is accepted, not rejected.
func BoundaryMeasures(bcs []inputs.BoundaryCondition, V *fespace.Space, sections *mesh.SectionIndex) (*mesh.Measure, error) {
	if len(bcs) == 0 {
		return nil, nil
	}
	var flist []int
	var vlist []int32
	for i, bc := range bcs {
		facets, ok := sections.Facets(bc.Section)
		if !ok {
			return nil, &UnknownSectionError{Section: bc.Section}
		}
		flist = append(flist, facets...)
		for range facets {
			vlist = append(vlist, int32(i+1))
		}
	}
	msh := V.Mesh()
	mtags, err := mesh.NewMeshTags(msh, msh.FacetDim(), flist, vlist)
	if err != nil {
		return nil, fmt.Errorf("build boundary tags: %w", err)
	}
	return mesh.NewSurfaceMeasure(msh, mtags)
}
