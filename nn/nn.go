// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/nnfs/internal/nn"
	"github.com/born-ml/nnfs/internal/parallel"
)

// Layer interface defines the forward/backward contract for all layers.
type Layer = nn.Layer

// Stateless provides default Parameters and Loss for parameterless layers.
type Stateless = nn.Stateless

// Parameter represents a learnable array and its gradient.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and initial value.
func NewParameter(name string, initial *mat.Dense) *Parameter {
	return nn.NewParameter(name, initial)
}

// Errors

var (
	// ErrNoForward is returned by Backward when no Forward preceded it.
	ErrNoForward = nn.ErrNoForward

	// ErrShape is matched by every dimension mismatch error.
	ErrShape = nn.ErrShape
)

// Layers

// Linear represents a fully connected (dense) layer.
type Linear = nn.Linear

// LinearOption configures a Linear layer.
type LinearOption = nn.LinearOption

// NewLinear creates a new linear layer with HeNormal weights and zero biases.
//
// Example:
//
//	layer := nn.NewLinear(784, 128)
func NewLinear(inFeatures, outFeatures int, opts ...LinearOption) *Linear {
	return nn.NewLinear(inFeatures, outFeatures, opts...)
}

// WithWeightsInitializer sets the weights initializer.
func WithWeightsInitializer(init Initializer) LinearOption {
	return nn.WithWeightsInitializer(init)
}

// WithBiasInitializer sets the bias initializer.
func WithBiasInitializer(init Initializer) LinearOption {
	return nn.WithBiasInitializer(init)
}

// WithWeightsRegularizer attaches a regularizer to the weights.
func WithWeightsRegularizer(r Regularizer) LinearOption {
	return nn.WithWeightsRegularizer(r)
}

// WithBiasRegularizer attaches a regularizer to the biases.
func WithBiasRegularizer(r Regularizer) LinearOption {
	return nn.WithBiasRegularizer(r)
}

// Activations

// Sigmoid represents the Sigmoid activation function.
type Sigmoid = nn.Sigmoid

// NewSigmoid creates a new Sigmoid activation layer.
func NewSigmoid() *Sigmoid {
	return nn.NewSigmoid()
}

// ReLU represents the Rectified Linear Unit activation function.
type ReLU = nn.ReLU

// NewReLU creates a new ReLU activation layer.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// Softmax represents the row-wise softmax normalization.
type Softmax = nn.Softmax

// NewSoftmax creates a new Softmax layer.
//
// Example:
//
//	softmax := nn.NewSoftmax()
//	probs, err := softmax.Forward(logits) // each row sums to 1
func NewSoftmax() *Softmax {
	return nn.NewSoftmax()
}

// NewSoftmaxWorkers creates a Softmax layer splitting rows across up to
// workers goroutines. workers <= 1 disables parallelism.
func NewSoftmaxWorkers(workers int) *Softmax {
	cfg := parallel.DefaultConfig()
	cfg.NumWorkers = workers
	cfg.Enabled = workers > 1
	return nn.NewSoftmaxWithConfig(cfg)
}

// Containers

// Sequential chains layers together.
type Sequential = nn.Sequential

// NewSequential creates a new Sequential container.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128),
//	    nn.NewReLU(),
//	    nn.NewLinear(128, 10),
//	)
func NewSequential(layers ...Layer) *Sequential {
	return nn.NewSequential(layers...)
}

// Initialization

// Initializer produces an initial array of a given shape.
type Initializer = nn.Initializer

// Zeros returns a zero-filled array.
func Zeros(rows, cols int) *mat.Dense {
	return nn.Zeros(rows, cols)
}

// Constant returns an initializer filling every entry with v.
func Constant(v float64) Initializer {
	return nn.Constant(v)
}

// HeNormal returns N(0, 2/rows) samples.
func HeNormal(rows, cols int) *mat.Dense {
	return nn.HeNormal(rows, cols)
}

// XavierUniform returns U(±sqrt(6/(rows+cols))) samples.
func XavierUniform(rows, cols int) *mat.Dense {
	return nn.XavierUniform(rows, cols)
}

// Regularization

// Regularizer computes a penalty on a parameter value and its gradient.
type Regularizer = nn.Regularizer

// L1Regularizer is the penalty λ·Σ|w|.
type L1Regularizer = nn.L1Regularizer

// L2Regularizer is the penalty λ·Σw².
type L2Regularizer = nn.L2Regularizer

// L1L2Regularizer combines L1 and L2 penalties.
type L1L2Regularizer = nn.L1L2Regularizer

// L1 returns an L1 (lasso) regularizer.
func L1(lambda float64) *L1Regularizer {
	return nn.L1(lambda)
}

// L2 returns an L2 (ridge) regularizer.
func L2(lambda float64) *L2Regularizer {
	return nn.L2(lambda)
}

// L1L2 returns a combined L1 and L2 regularizer.
func L1L2(l1, l2 float64) *L1L2Regularizer {
	return nn.L1L2(l1, l2)
}
