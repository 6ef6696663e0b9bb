package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Sequential is a container layer that chains multiple layers together.
//
// Each layer's output becomes the next layer's input on the forward pass.
// Backward walks the layers in reverse, feeding each layer's input
// gradient to the layer before it.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128),
//	    nn.NewReLU(),
//	    nn.NewLinear(128, 10),
//	)
//
//	output, err := model.Forward(input)
//
// This is equivalent to:
//
//	h1, _ := linear1.Forward(input)
//	h2, _ := relu.Forward(h1)
//	output, _ := linear2.Forward(h2)
type Sequential struct {
	layers []Layer
}

// NewSequential creates a new Sequential container.
func NewSequential(layers ...Layer) *Sequential {
	return &Sequential{
		layers: layers,
	}
}

// Forward applies all layers in sequence.
func (s *Sequential) Forward(input mat.Matrix) (*mat.Dense, error) {
	var (
		output *mat.Dense
		err    error
	)
	x := input
	for i, layer := range s.layers {
		output, err = layer.Forward(x)
		if err != nil {
			return nil, fmt.Errorf("sequential: layer %d: %w", i, err)
		}
		x = output
	}
	if output == nil {
		return mat.DenseCopyOf(input), nil
	}
	return output, nil
}

// Backward propagates gradOut through all layers in reverse order and
// returns the gradient with respect to the Sequential input.
//
// If layer i fails, layers after i have already consumed their caches and
// overwritten their parameter gradients. Run Forward again before retrying.
func (s *Sequential) Backward(gradOut mat.Matrix) (*mat.Dense, error) {
	var (
		grad *mat.Dense
		err  error
	)
	g := gradOut
	for i := len(s.layers) - 1; i >= 0; i-- {
		grad, err = s.layers[i].Backward(g)
		if err != nil {
			return nil, fmt.Errorf("sequential: layer %d: %w", i, err)
		}
		g = grad
	}
	if grad == nil {
		return mat.DenseCopyOf(gradOut), nil
	}
	return grad, nil
}

// Parameters returns the parameters of all layers, in layer order.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter

	for _, layer := range s.layers {
		params = append(params, layer.Parameters()...)
	}

	return params
}

// Loss returns the sum of all layers' regularization penalties.
func (s *Sequential) Loss() float64 {
	var loss float64
	for _, layer := range s.layers {
		loss += layer.Loss()
	}
	return loss
}

// Add appends a layer to the sequence.
func (s *Sequential) Add(layer Layer) {
	s.layers = append(s.layers, layer)
}

// Len returns the number of layers in the sequence.
func (s *Sequential) Len() int {
	return len(s.layers)
}

// Layer returns the layer at the given index.
//
// Panics if index is out of bounds.
func (s *Sequential) Layer(index int) Layer {
	if index < 0 || index >= len(s.layers) {
		panic("Sequential.Layer: index out of bounds")
	}
	return s.layers[index]
}
