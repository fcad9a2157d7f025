package inputs

import (
	"gonum.org/v1/gonum/mat"

	"github.com/donald-e-boyce/polycrystalx/fespace"
)

// Function specifies a volumetric source field by name and evaluator.
type Function struct {
	Name string
	Eval fespace.ValueFunc
}

// Constant returns a value function that is the same vector everywhere. The
// number of values fixes the field's value dimension (one value for scalar
// fields).
func Constant(vals ...float64) fespace.ValueFunc {
	return func(x *mat.Dense) (*mat.Dense, error) {
		_, n := x.Dims()
		out := mat.NewDense(len(vals), n, nil)
		for i, v := range vals {
			for j := 0; j < n; j++ {
				out.Set(i, j, v)
			}
		}
		return out, nil
	}
}

// Zero returns a value function that is identically zero with dim value
// components.
func Zero(dim int) fespace.ValueFunc {
	return Constant(make([]float64, dim)...)
}
