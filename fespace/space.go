// Package fespace implements the function-space capability surface the
// boundary condition resolvers depend on: value shapes, component subspaces
// with collapse, degree-of-freedom location, and interpolation.
package fespace

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/donald-e-boyce/polycrystalx/mesh"
)

// Space is a continuous piecewise-linear function space over a mesh, scalar
// or blocked vector/tensor valued. Degrees of freedom are vertex-based with
// blocked layout: dof = vertex*ValueDim + component.
type Space struct {
	msh *mesh.Mesh
	dim int // Value dimension: 1 scalar, d vector, d*d tensor
}

// NewScalarSpace creates a scalar-valued space.
func NewScalarSpace(m *mesh.Mesh) *Space {
	return &Space{msh: m, dim: 1}
}

// NewVectorSpace creates a vector-valued space with one component per
// geometric dimension.
func NewVectorSpace(m *mesh.Mesh) *Space {
	return &Space{msh: m, dim: m.Dim}
}

// NewTensorSpace creates a d×d tensor-valued space stored row-major in the
// value index.
func NewTensorSpace(m *mesh.Mesh) *Space {
	return &Space{msh: m, dim: m.Dim * m.Dim}
}

// Mesh returns the underlying mesh.
func (V *Space) Mesh() *mesh.Mesh { return V.msh }

// ValueDim returns the number of value components per point.
func (V *Space) ValueDim() int { return V.dim }

// NumDOFs returns the total number of degrees of freedom.
func (V *Space) NumDOFs() int { return V.msh.NumVertices() * V.dim }

// Sub returns the view of one value component of the space. Scalar spaces
// have no subspaces.
func (V *Space) Sub(component int) (*SubspaceView, error) {
	if V.dim == 1 {
		return nil, fmt.Errorf("scalar space has no component subspaces")
	}
	if component < 0 || component >= V.dim {
		return nil, fmt.Errorf("component %d out of range for value dimension %d", component, V.dim)
	}
	return &SubspaceView{parent: V, component: component}, nil
}

// DOFCoordinates returns the geometric locations of the given degrees of
// freedom as a d×n coordinate block.
func (V *Space) DOFCoordinates(dofs []int) *mat.Dense {
	d := V.msh.Dim
	x := mat.NewDense(d, len(dofs), nil)
	for j, dof := range dofs {
		v := dof / V.dim
		for i := 0; i < d; i++ {
			x.Set(i, j, V.msh.Coords.At(i, v))
		}
	}
	return x
}

// SubspaceView is one component of a blocked space. Its degrees of freedom
// are numbered in the parent space; Collapse produces the standalone scalar
// space needed for scalar interpolation.
type SubspaceView struct {
	parent    *Space
	component int
}

// Parent returns the parent space.
func (W *SubspaceView) Parent() *Space { return W.parent }

// Component returns the component index this view selects.
func (W *SubspaceView) Component() int { return W.component }

// Collapse returns a standalone scalar space isomorphic to the component,
// plus the dofmap taking each collapsed degree of freedom to its parent-space
// index.
func (W *SubspaceView) Collapse() (*Space, []int) {
	Vc := NewScalarSpace(W.parent.msh)
	dofmap := make([]int, W.parent.msh.NumVertices())
	for v := range dofmap {
		dofmap[v] = v*W.parent.dim + W.component
	}
	return Vc, dofmap
}
