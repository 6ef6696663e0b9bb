package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Parameter represents a learnable array together with the gradient
// computed for it by the most recent backward pass.
//
// The value is owned by the parameter and may be updated in place by an
// optimizer. The gradient is written only by the owning layer's Backward
// and always has the same shape as the value.
//
// Example:
//
//	w := nn.NewParameter("weights", nn.HeNormal(4, 3))
//	rows, cols := w.Shape() // 4, 3
//	grad := w.Grad()        // zeros until the first backward pass
type Parameter struct {
	name  string     // Parameter name (e.g., "weights", "biases")
	value *mat.Dense // Current learnable values
	grad  *mat.Dense // Gradient from the most recent backward pass
}

// NewParameter creates a parameter from an initial array.
//
// The parameter takes ownership of initial. Its gradient starts as zeros
// of the same shape.
func NewParameter(name string, initial *mat.Dense) *Parameter {
	if initial == nil || initial.IsEmpty() {
		panic(fmt.Sprintf("nn.NewParameter: %q needs a non-empty initial value", name))
	}
	r, c := initial.Dims()
	return &Parameter{
		name:  name,
		value: initial,
		grad:  mat.NewDense(r, c, nil),
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Shape returns the parameter dimensions, fixed at construction.
func (p *Parameter) Shape() (rows, cols int) {
	return p.value.Dims()
}

// Value returns the parameter array.
func (p *Parameter) Value() *mat.Dense {
	return p.value
}

// Grad returns the gradient array.
func (p *Parameter) Grad() *mat.Dense {
	return p.grad
}

// ZeroGrad fills the gradient with zeros, keeping its shape.
func (p *Parameter) ZeroGrad() {
	p.grad.Zero()
}

// setGrad overwrites the gradient with g. g must match the value shape.
func (p *Parameter) setGrad(g *mat.Dense) {
	r, c := p.value.Dims()
	if gr, gc := g.Dims(); gr != r || gc != c {
		panic(shapeError("nn.Parameter("+p.name+").setGrad", gr, gc, r, c))
	}
	p.grad = g
}
