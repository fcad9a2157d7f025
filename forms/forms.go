// Package forms holds the natural-term descriptors handed to the weak-form
// assembler: an evaluated boundary field paired with the sub-measure of its
// tagged region and a component selector. Nothing here is assembled; these
// are the units the external assembler consumes as additive surface terms.
package forms

import (
	"github.com/donald-e-boyce/polycrystalx/fespace"
	"github.com/donald-e-boyce/polycrystalx/mesh"
)

// AllComponents marks a natural term applied to the full vector value.
const AllComponents = -1

// Traction is one traction term of the linear elasticity weak form.
type Traction struct {
	Value     *fespace.Function // Evaluated traction field
	Measure   mesh.SubMeasure   // Region the term integrates over
	Component int               // Component index, or AllComponents
}

// Flux is one flux term of the heat transfer weak form.
type Flux struct {
	Value   *fespace.Function // Evaluated flux field
	Measure mesh.SubMeasure   // Region the term integrates over
}
