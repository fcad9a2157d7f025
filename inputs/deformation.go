// Package inputs holds the declarative problem records a user constructs:
// boundary conditions, per-process deformation inputs, volumetric source
// specifications, and run-time options. Records are plain values, created
// once from problem configuration and never mutated afterward.
package inputs

import "github.com/donald-e-boyce/polycrystalx/fespace"

// BoundaryCondition applies values on a named boundary section with a
// function of position. The condition is vector valued unless Component is
// set, in which case it is scalar valued for that component.
//
// The same record type serves both treatments: Dirichlet (displacement,
// temperature) lists pin degrees of freedom, natural (traction, flux) lists
// become tagged surface terms.
type BoundaryCondition struct {
	Section   string            // Name of the boundary section
	Value     fespace.ValueFunc // Function of position giving applied values
	Component *int              // Optional component with applied BC
}

// HasComponent reports whether the condition is restricted to one component.
func (bc BoundaryCondition) HasComponent() bool { return bc.Component != nil }

// Comp is a convenience for filling the optional Component field.
func Comp(c int) *int { return &c }

// LinearElasticity is the deformation input for the elasticity process.
// Volumetric sources are optional; nil means the assembler omits the term.
type LinearElasticity struct {
	Name              string
	ForceDensity      *Function
	PlasticDistortion *Function
	ThermalExpansion  *Function
	DisplacementBCs   []BoundaryCondition // Dirichlet type
	TractionBCs       []BoundaryCondition // Natural type
}

// HeatTransfer is the deformation input for the heat transfer process.
type HeatTransfer struct {
	Name           string
	BodyHeat       *Function
	TemperatureBCs []BoundaryCondition // Dirichlet type
	FluxBCs        []BoundaryCondition // Natural type
}
