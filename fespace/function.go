package fespace

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ValueFunc maps a d×n block of point positions to field values: a 1×n block
// for scalar fields or a v×n block for v-component fields.
type ValueFunc func(x *mat.Dense) (*mat.Dense, error)

// ShapeMismatchError reports a value function whose output shape disagrees
// with the value shape of the target space.
type ShapeMismatchError struct {
	WantRows, WantCols int
	GotRows, GotCols   int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("value shape mismatch: function returned %d×%d, space expects %d×%d",
		e.GotRows, e.GotCols, e.WantRows, e.WantCols)
}

// Function holds field values over a space in blocked DOF layout.
type Function struct {
	space  *Space
	values []float64
}

// NewFunction creates a zero-valued function on the space.
func NewFunction(V *Space) *Function {
	return &Function{space: V, values: make([]float64, V.NumDOFs())}
}

// Space returns the function's space.
func (u *Function) Space() *Space { return u.space }

// Values returns the backing DOF value slice.
func (u *Function) Values() []float64 { return u.values }

// At returns the value of degree of freedom i.
func (u *Function) At(i int) float64 { return u.values[i] }

// Interpolate evaluates fn at the degree-of-freedom locations and stores the
// result. The function must return a ValueDim×n block for the space's n
// vertex locations; anything else is a ShapeMismatchError.
func (u *Function) Interpolate(fn ValueFunc) error {
	nv := u.space.msh.NumVertices()
	vals, err := fn(u.space.msh.Coords)
	if err != nil {
		return fmt.Errorf("evaluate boundary values: %w", err)
	}
	r, c := vals.Dims()
	if r != u.space.dim || c != nv {
		return &ShapeMismatchError{
			WantRows: u.space.dim, WantCols: nv,
			GotRows: r, GotCols: c,
		}
	}
	for v := 0; v < nv; v++ {
		for comp := 0; comp < u.space.dim; comp++ {
			u.values[v*u.space.dim+comp] = vals.At(comp, v)
		}
	}
	return nil
}
