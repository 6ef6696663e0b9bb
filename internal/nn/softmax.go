package nn

import (
	"fmt"
	"math"

	"github.com/born-ml/nnfs/internal/parallel"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Softmax normalizes each row of its input into a probability
// distribution.
//
// Forward (for each row):
//
//	softmax(x)_i = exp(x_i - max(x)) / Σ_j exp(x_j - max(x))
//
// The max-shifting prevents overflow in exp.
//
// Backward (for each row, s = cached output, g = grad_out):
//
//	a       = g · s
//	grad_in = s * (g - a)
//
// which is the Jacobian-vector product with J = diag(s) - s sᵀ.
//
// Unlike Sigmoid and ReLU, Softmax caches its output, not its input.
// Rows are independent and are processed through parallel.For.
type Softmax struct {
	Stateless
	cachedOutputs *mat.Dense
	cfg           parallel.Config
}

// NewSoftmax creates a new Softmax layer with the default parallel config.
func NewSoftmax() *Softmax {
	return NewSoftmaxWithConfig(parallel.DefaultConfig())
}

// NewSoftmaxWithConfig creates a Softmax layer that splits rows per cfg.
func NewSoftmaxWithConfig(cfg parallel.Config) *Softmax {
	return &Softmax{cfg: cfg}
}

// Forward computes the row-wise softmax and caches the result.
//
// Input shape: [batch_size, num_classes]
// Output shape: [batch_size, num_classes]
func (s *Softmax) Forward(input mat.Matrix) (*mat.Dense, error) {
	out, err := copyInput("softmax: forward", input)
	if err != nil {
		return nil, err
	}
	batch, _ := out.Dims()

	parallel.For(batch, func(i int) {
		row := out.RawRowView(i)
		floats.AddConst(-floats.Max(row), row)
		for j, v := range row {
			row[j] = math.Exp(v)
		}
		sum := floats.Sum(row)
		for j := range row {
			row[j] /= sum
		}
	}, s.cfg)

	s.cachedOutputs = out
	return mat.DenseCopyOf(out), nil
}

// Backward computes the row-wise Jacobian-vector product of softmax.
func (s *Softmax) Backward(gradOut mat.Matrix) (*mat.Dense, error) {
	if s.cachedOutputs == nil {
		return nil, fmt.Errorf("softmax: %w", ErrNoForward)
	}
	batch, classes := s.cachedOutputs.Dims()
	if err := checkDims("softmax: backward", gradOut, batch, classes); err != nil {
		return nil, err
	}
	out := s.cachedOutputs
	s.cachedOutputs = nil

	gradIn := mat.DenseCopyOf(gradOut)
	parallel.For(batch, func(i int) {
		sm := out.RawRowView(i)
		g := gradIn.RawRowView(i)
		a := floats.Dot(g, sm)
		for j := range g {
			g[j] = sm[j] * (g[j] - a)
		}
	}, s.cfg)

	return gradIn, nil
}
