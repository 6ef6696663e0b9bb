package nn

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Linear implements a fully connected (dense) layer.
//
// Performs the transformation: y = x @ W + b
// where:
//   - x is the input with shape [batch_size, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias row with shape [1, out_features], broadcast over the batch
//   - y is the output with shape [batch_size, out_features]
//
// Weights are initialized with HeNormal and biases with Zeros unless
// overridden. Optional regularizers add their penalty to Loss and their
// gradient to the matching parameter gradient.
//
// Example:
//
//	layer := nn.NewLinear(784, 128, nn.WithWeightsRegularizer(nn.L2(1e-4)))
//	output, err := layer.Forward(input) // shape: [batch, 128]
type Linear struct {
	inFeatures  int
	outFeatures int
	weights     *Parameter // [in_features, out_features]
	biases      *Parameter // [1, out_features]

	weightsRegularizer Regularizer
	biasRegularizer    Regularizer

	cachedInputs *mat.Dense
}

// LinearOption configures a Linear layer.
type LinearOption func(*linearConfig)

type linearConfig struct {
	weightsInit Initializer
	biasInit    Initializer
	weightsReg  Regularizer
	biasReg     Regularizer
}

// WithWeightsInitializer sets the weights initializer (default: HeNormal).
func WithWeightsInitializer(init Initializer) LinearOption {
	return func(c *linearConfig) { c.weightsInit = init }
}

// WithBiasInitializer sets the bias initializer (default: Zeros).
func WithBiasInitializer(init Initializer) LinearOption {
	return func(c *linearConfig) { c.biasInit = init }
}

// WithWeightsRegularizer attaches a regularizer to the weights.
func WithWeightsRegularizer(r Regularizer) LinearOption {
	return func(c *linearConfig) { c.weightsReg = r }
}

// WithBiasRegularizer attaches a regularizer to the biases.
func WithBiasRegularizer(r Regularizer) LinearOption {
	return func(c *linearConfig) { c.biasReg = r }
}

// NewLinear creates a new Linear layer.
//
// Parameters:
//   - inFeatures: Number of input features
//   - outFeatures: Number of output features
//   - opts: Initializer and regularizer overrides
//
// Panics if a size is not positive or an initializer returns the wrong shape.
func NewLinear(inFeatures, outFeatures int, opts ...LinearOption) *Linear {
	if inFeatures <= 0 || outFeatures <= 0 {
		panic(fmt.Sprintf("nn.NewLinear: sizes must be positive, got in=%d out=%d", inFeatures, outFeatures))
	}

	cfg := linearConfig{
		weightsInit: HeNormal,
		biasInit:    Zeros,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Linear{
		inFeatures:         inFeatures,
		outFeatures:        outFeatures,
		weights:            NewParameter("weights", initialize("weights", cfg.weightsInit, inFeatures, outFeatures)),
		biases:             NewParameter("biases", initialize("biases", cfg.biasInit, 1, outFeatures)),
		weightsRegularizer: cfg.weightsReg,
		biasRegularizer:    cfg.biasReg,
	}
}

// Forward computes x @ W + b and caches x for Backward.
//
// Input shape: [batch_size, in_features]
// Output shape: [batch_size, out_features]
func (l *Linear) Forward(input mat.Matrix) (*mat.Dense, error) {
	if err := checkDims("linear: forward", input, -1, l.inFeatures); err != nil {
		return nil, err
	}

	x, err := copyInput("linear: forward", input)
	if err != nil {
		return nil, err
	}
	batch, _ := x.Dims()

	out := mat.NewDense(batch, l.outFeatures, nil)
	out.Mul(x, l.weights.Value())

	bias := l.biases.Value().RawRowView(0)
	for i := 0; i < batch; i++ {
		floats.Add(out.RawRowView(i), bias)
	}

	l.cachedInputs = x
	return out, nil
}

// Backward computes the input gradient and overwrites the weights and
// biases gradients.
//
//	grad_in = grad_out @ W.T
//	dW      = x.T @ grad_out  (+ weights regularizer gradient)
//	db      = Σ_batch grad_out (+ bias regularizer gradient)
func (l *Linear) Backward(gradOut mat.Matrix) (*mat.Dense, error) {
	if l.cachedInputs == nil {
		return nil, fmt.Errorf("linear: %w", ErrNoForward)
	}
	batch, _ := l.cachedInputs.Dims()
	if err := checkDims("linear: backward", gradOut, batch, l.outFeatures); err != nil {
		return nil, err
	}

	x := l.cachedInputs
	l.cachedInputs = nil
	w := l.weights.Value()

	gradIn := mat.NewDense(batch, l.inFeatures, nil)
	gradIn.Mul(gradOut, w.T())

	weightsGrad := mat.NewDense(l.inFeatures, l.outFeatures, nil)
	weightsGrad.Mul(x.T(), gradOut)
	if l.weightsRegularizer != nil {
		weightsGrad.Add(weightsGrad, l.weightsRegularizer.Grad(w))
	}
	l.weights.setGrad(weightsGrad)

	biasGrad := mat.NewDense(1, l.outFeatures, nil)
	col := make([]float64, batch)
	for j := 0; j < l.outFeatures; j++ {
		mat.Col(col, j, gradOut)
		biasGrad.Set(0, j, floats.Sum(col))
	}
	if l.biasRegularizer != nil {
		biasGrad.Add(biasGrad, l.biasRegularizer.Grad(l.biases.Value()))
	}
	l.biases.setGrad(biasGrad)

	return gradIn, nil
}

// Parameters returns [weights, biases].
func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weights, l.biases}
}

// Loss returns the weights penalty plus the biases penalty. A missing
// regularizer contributes 0.
func (l *Linear) Loss() float64 {
	var loss float64
	if l.weightsRegularizer != nil {
		loss += l.weightsRegularizer.Penalty(l.weights.Value())
	}
	if l.biasRegularizer != nil {
		loss += l.biasRegularizer.Penalty(l.biases.Value())
	}
	return loss
}

// Weights returns the weights parameter.
func (l *Linear) Weights() *Parameter {
	return l.weights
}

// Biases returns the biases parameter.
func (l *Linear) Biases() *Parameter {
	return l.biases
}

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}
