// Package loaders translates declarative problem inputs into the concrete
// objects a finite-element assembler consumes: Dirichlet constraints, tagged
// surface measures with natural-term descriptors, and interpolated volumetric
// source fields. Resolution runs once per problem setup, is single threaded,
// and fails atomically.
package loaders

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/donald-e-boyce/polycrystalx/fespace"
	"github.com/donald-e-boyce/polycrystalx/forms"
	"github.com/donald-e-boyce/polycrystalx/inputs"
	"github.com/donald-e-boyce/polycrystalx/mesh"
)

// LinearElasticity resolves elasticity inputs: displacement lists are
// Dirichlet type, traction lists are natural type.
type LinearElasticity struct {
	Input inputs.LinearElasticity
	Log   zerolog.Logger
}

// NewLinearElasticity creates an elasticity loader with logging disabled.
func NewLinearElasticity(in inputs.LinearElasticity) *LinearElasticity {
	return &LinearElasticity{Input: in, Log: zerolog.Nop()}
}

// Validate checks the essential/natural partition eagerly: a section claimed
// by both the displacement and the traction list is a configuration error
// surfaced before any resolution work.
func (ld *LinearElasticity) Validate() error {
	return checkSectionConflict("linear elasticity", ld.Input.DisplacementBCs, ld.Input.TractionBCs)
}

// DisplacementBCs resolves the Dirichlet boundary conditions on the vector
// function space.
func (ld *LinearElasticity) DisplacementBCs(V *fespace.Space, sections *mesh.SectionIndex) ([]DirichletBC, error) {
	if err := ld.Validate(); err != nil {
		return nil, err
	}
	bcs, err := DirichletBCs(ld.Input.DisplacementBCs, V, sections)
	if err != nil {
		return nil, tagProcess("linear elasticity", err)
	}
	for i, bc := range bcs {
		ld.Log.Debug().
			Str("section", ld.Input.DisplacementBCs[i].Section).
			Int("ndofs", bc.Len()).
			Msg("resolved displacement bc")
	}
	return bcs, nil
}

// TractionBCs resolves the natural boundary conditions into traction
// descriptors, one per record, each paired with the sub-measure of its tag.
// An empty traction list yields no descriptors and no measure.
func (ld *LinearElasticity) TractionBCs(V *fespace.Space, sections *mesh.SectionIndex) ([]forms.Traction, error) {
	if err := ld.Validate(); err != nil {
		return nil, err
	}
	if len(ld.Input.TractionBCs) == 0 {
		return nil, nil
	}
	ds, err := BoundaryMeasures(ld.Input.TractionBCs, V, sections)
	if err != nil {
		return nil, tagProcess("linear elasticity", err)
	}

	tbcs := make([]forms.Traction, 0, len(ld.Input.TractionBCs))
	for i, tbc := range ld.Input.TractionBCs {
		component := forms.AllComponents
		var u *fespace.Function
		if tbc.HasComponent() {
			W, err := V.Sub(*tbc.Component)
			if err != nil {
				return nil, fmt.Errorf("linear elasticity: traction on %q: %w", tbc.Section, err)
			}
			Vc, _ := W.Collapse()
			u = fespace.NewFunction(Vc)
			component = *tbc.Component
		} else {
			u = fespace.NewFunction(V)
		}
		if err := u.Interpolate(tbc.Value); err != nil {
			return nil, fmt.Errorf("linear elasticity: traction on %q: %w", tbc.Section, err)
		}
		sub := ds.Sub(i + 1)
		ld.Log.Debug().
			Str("section", tbc.Section).
			Int("tag", i+1).
			Int("nfacets", len(sub.Facets)).
			Msg("resolved traction bc")
		tbcs = append(tbcs, forms.Traction{Value: u, Measure: sub, Component: component})
	}
	return tbcs, nil
}

// ForceDensity resolves the force density source on the vector space, or nil
// if unspecified.
func (ld *LinearElasticity) ForceDensity(V *fespace.Space) (*fespace.Function, error) {
	return loadFunction(ld.Input.ForceDensity, V)
}

// PlasticDistortion resolves the plastic distortion source on the tensor
// space, or nil if unspecified.
func (ld *LinearElasticity) PlasticDistortion(T *fespace.Space) (*fespace.Function, error) {
	return loadFunction(ld.Input.PlasticDistortion, T)
}

// ThermalExpansion resolves the thermal expansion tensor on the tensor space,
// or nil if unspecified.
func (ld *LinearElasticity) ThermalExpansion(T *fespace.Space) (*fespace.Function, error) {
	return loadFunction(ld.Input.ThermalExpansion, T)
}

// HeatTransfer resolves heat transfer inputs: temperature lists are Dirichlet
// type, flux lists are natural type.
type HeatTransfer struct {
	Input inputs.HeatTransfer
	Log   zerolog.Logger
}

// NewHeatTransfer creates a heat transfer loader with logging disabled.
func NewHeatTransfer(in inputs.HeatTransfer) *HeatTransfer {
	return &HeatTransfer{Input: in, Log: zerolog.Nop()}
}

// Validate checks the essential/natural partition eagerly.
func (ld *HeatTransfer) Validate() error {
	return checkSectionConflict("heat transfer", ld.Input.TemperatureBCs, ld.Input.FluxBCs)
}

// BodyHeat resolves the body heat source on the scalar space, or nil if
// unspecified.
func (ld *HeatTransfer) BodyHeat(V *fespace.Space) (*fespace.Function, error) {
	return loadFunction(ld.Input.BodyHeat, V)
}

// TemperatureBCs resolves the Dirichlet boundary conditions on the scalar
// function space.
func (ld *HeatTransfer) TemperatureBCs(V *fespace.Space, sections *mesh.SectionIndex) ([]DirichletBC, error) {
	if err := ld.Validate(); err != nil {
		return nil, err
	}
	bcs, err := DirichletBCs(ld.Input.TemperatureBCs, V, sections)
	if err != nil {
		return nil, tagProcess("heat transfer", err)
	}
	for i, bc := range bcs {
		ld.Log.Debug().
			Str("section", ld.Input.TemperatureBCs[i].Section).
			Int("ndofs", bc.Len()).
			Msg("resolved temperature bc")
	}
	return bcs, nil
}

// FluxBCs resolves the natural boundary conditions into flux descriptors. An
// empty flux list yields no descriptors and no measure.
func (ld *HeatTransfer) FluxBCs(V *fespace.Space, sections *mesh.SectionIndex) ([]forms.Flux, error) {
	if err := ld.Validate(); err != nil {
		return nil, err
	}
	if len(ld.Input.FluxBCs) == 0 {
		return nil, nil
	}
	ds, err := BoundaryMeasures(ld.Input.FluxBCs, V, sections)
	if err != nil {
		return nil, tagProcess("heat transfer", err)
	}

	fbcs := make([]forms.Flux, 0, len(ld.Input.FluxBCs))
	for i, fbc := range ld.Input.FluxBCs {
		u := fespace.NewFunction(V)
		if err := u.Interpolate(fbc.Value); err != nil {
			return nil, fmt.Errorf("heat transfer: flux on %q: %w", fbc.Section, err)
		}
		sub := ds.Sub(i + 1)
		ld.Log.Debug().
			Str("section", fbc.Section).
			Int("tag", i+1).
			Int("nfacets", len(sub.Facets)).
			Msg("resolved flux bc")
		fbcs = append(fbcs, forms.Flux{Value: u, Measure: sub})
	}
	return fbcs, nil
}

// loadFunction interpolates a volumetric source spec onto a function space.
// A nil spec resolves to nil and the assembler omits the term.
func loadFunction(f *inputs.Function, V *fespace.Space) (*fespace.Function, error) {
	if f == nil {
		return nil, nil
	}
	u := fespace.NewFunction(V)
	if err := u.Interpolate(f.Eval); err != nil {
		return nil, fmt.Errorf("function %q: %w", f.Name, err)
	}
	return u, nil
}

func checkSectionConflict(process string, essential, natural []inputs.BoundaryCondition) error {
	claimed := make(map[string]bool, len(essential))
	for _, bc := range essential {
		claimed[bc.Section] = true
	}
	for _, bc := range natural {
		if claimed[bc.Section] {
			return &SectionConflictError{Process: process, Section: bc.Section}
		}
	}
	return nil
}

// tagProcess attaches the process name to resolution errors that carry a
// section identifier, keeping misconfiguration traceable to the offending
// record.
func tagProcess(process string, err error) error {
	if e, ok := err.(*UnknownSectionError); ok && e.Process == "" {
		return &UnknownSectionError{Process: process, Section: e.Section}
	}
	return fmt.Errorf("%s: %w", process, err)
}
