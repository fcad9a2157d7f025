package loaders

import (
	"fmt"

	"github.com/donald-e-boyce/polycrystalx/fespace"
	"github.com/donald-e-boyce/polycrystalx/inputs"
	"github.com/donald-e-boyce/polycrystalx/mesh"
)

// DirichletBC pins degrees of freedom to prescribed values. DOFs are always
// numbered in the parent space; Values is parallel to DOFs.
type DirichletBC struct {
	DOFs   []int
	Values []float64
}

// Len returns the number of constrained degrees of freedom.
func (bc DirichletBC) Len() int { return len(bc.DOFs) }

// DirichletBCs resolves an ordered list of Dirichlet-type boundary conditions
// into constraint objects, in input order. Resolution is atomic: any failure
// discards partial results.
//
// A record without a component constrains the full value at every degree of
// freedom on its section, evaluating the record's function with the space's
// value shape. A record with a component collapses that component's subspace
// to a standalone scalar space, evaluates the function as a scalar there, and
// maps the collapsed values back through the paired parent-space indices.
//
// Later constraints on overlapping degrees of freedom overwrite earlier ones
// at application time; that ordering policy is the assembler's, not checked
// here.
func DirichletBCs(bcs []inputs.BoundaryCondition, V *fespace.Space, sections *mesh.SectionIndex) ([]DirichletBC, error) {
	out := make([]DirichletBC, 0, len(bcs))
	for _, bc := range bcs {
		facets, ok := sections.Facets(bc.Section)
		if !ok {
			return nil, &UnknownSectionError{Section: bc.Section}
		}

		var dofs []int
		var vals []float64
		if !bc.HasComponent() {
			dofs = V.LocateDOFs(facets)
			u := fespace.NewFunction(V)
			if err := u.Interpolate(bc.Value); err != nil {
				return nil, fmt.Errorf("section %q: %w", bc.Section, err)
			}
			vals = gather(u.Values(), dofs)
		} else {
			W, err := V.Sub(*bc.Component)
			if err != nil {
				return nil, fmt.Errorf("section %q: %w", bc.Section, err)
			}
			Vc, _ := W.Collapse()
			paired := W.LocatePairedDOFs(facets)
			u := fespace.NewFunction(Vc)
			if err := u.Interpolate(bc.Value); err != nil {
				return nil, fmt.Errorf("section %q component %d: %w", bc.Section, *bc.Component, err)
			}
			dofs = paired.Parent
			vals = gather(u.Values(), paired.Collapsed)
		}
		out = append(out, DirichletBC{DOFs: dofs, Values: vals})
	}
	return out, nil
}

func gather(values []float64, dofs []int) []float64 {
	out := make([]float64, len(dofs))
	for i, d := range dofs {
		out[i] = values[d]
	}
	return out
}
