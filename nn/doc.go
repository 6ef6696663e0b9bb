// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network layers with explicit forward and
// backward passes.
//
// # Overview
//
// This package contains:
//   - Layers: Linear
//   - Activations: Sigmoid, ReLU, Softmax
//   - Utilities: Sequential, Layer interface, Parameter
//   - Initialization: HeNormal, XavierUniform, Zeros, Constant
//   - Regularization: L1, L2, L1L2
//
// Arrays are gonum matrices shaped [batch, features].
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/nnfs/nn"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    model := nn.NewSequential(
//	        nn.NewLinear(784, 128),
//	        nn.NewReLU(),
//	        nn.NewLinear(128, 10),
//	        nn.NewSoftmax(),
//	    )
//
//	    probs, err := model.Forward(input)
//	    // gradOut comes from a loss function: d(loss)/d(probs)
//	    gradIn, err := model.Backward(gradOut)
//	}
//
// # Layers
//
// Linear: Fully connected layer, y = x @ W + b
//
//	layer := nn.NewLinear(inFeatures, outFeatures,
//	    nn.WithWeightsInitializer(nn.XavierUniform),
//	    nn.WithWeightsRegularizer(nn.L2(1e-4)),
//	)
//
// # Backward Pass
//
// Every layer caches what it needs during Forward and consumes the cache
// in Backward. Calling Backward without a preceding Forward returns
// ErrNoForward. Shape mismatches return errors matching ErrShape.
//
// Backward overwrites the gradient of every parameter the layer owns;
// gradients are never accumulated across calls.
//
// # Parameter Management
//
// Collect parameters and the regularization penalty for an optimizer:
//
//	params := model.Parameters()
//	for _, param := range params {
//	    rows, cols := param.Shape()
//	    fmt.Println(param.Name(), rows, cols)
//	}
//	penalty := model.Loss()
package nn
