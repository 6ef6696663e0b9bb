// Package nn implements the layer library for nnfs.
//
// This package provides building blocks for constructing neural networks:
//   - Layer interface: Forward/Backward contract shared by all layers
//   - Parameter: Learnable arrays with their gradients
//   - Linear: Fully connected layer with optional regularization
//   - Activations: Sigmoid, ReLU, Softmax
//   - Sequential: Container for stacking layers
//   - Initializers and regularizers pluggable into Linear
//
// Arrays are gonum matrices shaped [batch, features]. Gradients are
// computed by explicit per-layer backward rules rather than a tape.
package nn

import (
	"gonum.org/v1/gonum/mat"
)

// Layer is the interface implemented by every network component.
//
// A layer caches whatever its backward rule needs during Forward. The
// cache serves exactly one Backward call; a Backward without a preceding
// Forward returns ErrNoForward. Layers are not safe for concurrent use.
//
// Layers are composed left to right on the forward pass and right to
// left on the backward pass:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128),
//	    nn.NewReLU(),
//	    nn.NewLinear(128, 10),
//	    nn.NewSoftmax(),
//	)
type Layer interface {
	// Forward computes the layer output for input of shape
	// [batch, in_features] and caches state for Backward.
	Forward(input mat.Matrix) (*mat.Dense, error)

	// Backward takes the gradient of the loss with respect to the last
	// Forward output and returns the gradient with respect to its input.
	// Layers with parameters overwrite each parameter's gradient.
	Backward(gradOut mat.Matrix) (*mat.Dense, error)

	// Parameters returns the learnable parameters in a fixed order.
	// Returns nil for layers without parameters.
	Parameters() []*Parameter

	// Loss returns the regularization penalty contributed by this layer.
	Loss() float64
}

// Stateless provides the default Parameters and Loss for layers that own
// no parameters. Embed it in such layers.
type Stateless struct{}

// Parameters returns nil.
func (Stateless) Parameters() []*Parameter {
	return nil
}

// Loss returns 0.
func (Stateless) Loss() float64 {
	return 0
}

var (
	_ Layer = (*Linear)(nil)
	_ Layer = (*Sigmoid)(nil)
	_ Layer = (*ReLU)(nil)
	_ Layer = (*Softmax)(nil)
	_ Layer = (*Sequential)(nil)
)
