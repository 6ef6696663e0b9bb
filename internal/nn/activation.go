package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sigmoid is a sigmoid activation layer.
//
// Applies the element-wise function: σ(x) = 1 / (1 + exp(-x))
//
// Only the input is cached; Backward recomputes σ from it.
//
// Example:
//
//	sigmoid := nn.NewSigmoid()
//	output, err := sigmoid.Forward(input) // Values in range (0, 1)
type Sigmoid struct {
	Stateless
	cachedInputs *mat.Dense
}

// NewSigmoid creates a new Sigmoid activation layer.
func NewSigmoid() *Sigmoid {
	return &Sigmoid{}
}

// Forward applies σ(x) and caches x.
func (s *Sigmoid) Forward(input mat.Matrix) (*mat.Dense, error) {
	x, err := copyInput("sigmoid: forward", input)
	if err != nil {
		return nil, err
	}
	var out mat.Dense
	out.Apply(sigmoidAt, x)
	s.cachedInputs = x
	return &out, nil
}

// Backward returns grad_out * σ(x) * (1 - σ(x)).
func (s *Sigmoid) Backward(gradOut mat.Matrix) (*mat.Dense, error) {
	if s.cachedInputs == nil {
		return nil, fmt.Errorf("sigmoid: %w", ErrNoForward)
	}
	r, c := s.cachedInputs.Dims()
	if err := checkDims("sigmoid: backward", gradOut, r, c); err != nil {
		return nil, err
	}
	x := s.cachedInputs
	s.cachedInputs = nil

	var gradIn mat.Dense
	gradIn.Apply(func(i, j int, v float64) float64 {
		sig := sigmoidAt(i, j, v)
		return gradOut.At(i, j) * sig * (1 - sig)
	}, x)
	return &gradIn, nil
}

func sigmoidAt(_, _ int, v float64) float64 {
	return 1 / (1 + math.Exp(-v))
}

// ReLU is a Rectified Linear Unit activation layer.
//
// Applies the element-wise function: f(x) = max(0, x)
//
// The derivative at x == 0 is taken as 1: only strictly negative inputs
// block the gradient.
//
// Example:
//
//	relu := nn.NewReLU()
//	output, err := relu.Forward(input) // All negative values become 0
type ReLU struct {
	Stateless
	cachedInputs *mat.Dense
}

// NewReLU creates a new ReLU activation layer.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward applies max(0, x) and caches x.
func (r *ReLU) Forward(input mat.Matrix) (*mat.Dense, error) {
	x, err := copyInput("relu: forward", input)
	if err != nil {
		return nil, err
	}
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		return math.Max(0, v)
	}, x)
	r.cachedInputs = x
	return &out, nil
}

// Backward returns grad_out masked to zero where x < 0.
func (r *ReLU) Backward(gradOut mat.Matrix) (*mat.Dense, error) {
	if r.cachedInputs == nil {
		return nil, fmt.Errorf("relu: %w", ErrNoForward)
	}
	rows, cols := r.cachedInputs.Dims()
	if err := checkDims("relu: backward", gradOut, rows, cols); err != nil {
		return nil, err
	}
	x := r.cachedInputs
	r.cachedInputs = nil

	var gradIn mat.Dense
	gradIn.Apply(func(i, j int, v float64) float64 {
		mask := 1.0
		if v < 0 {
			mask = 0
		}
		return gradOut.At(i, j) * mask
	}, x)
	return &gradIn, nil
}
