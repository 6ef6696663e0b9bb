package nn_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/nnfs/internal/nn"
)

// gradTolerance is the allowed gap between analytic and finite-difference gradients.
const gradTolerance = 1e-4

var fdSettings = &fd.Settings{Formula: fd.Central, Step: 1e-6}

// randDense returns an r×c matrix of N(0, 1) values from a seeded source.
func randDense(rng *rand.Rand, r, c int) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	return mat.NewDense(r, c, data)
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// projectedLoss is Σ out ⊙ proj + layer.Loss(). Its gradient with
// respect to the layer output is proj.
func projectedLoss(t *testing.T, layer nn.Layer, x mat.Matrix, proj *mat.Dense) float64 {
	t.Helper()
	out, err := layer.Forward(x)
	require.NoError(t, err)
	var prod mat.Dense
	prod.MulElem(out, proj)
	return mat.Sum(&prod) + layer.Loss()
}

// numericInputGrad estimates d(projectedLoss)/d(x) by central differences.
func numericInputGrad(t *testing.T, layer nn.Layer, x, proj *mat.Dense) []float64 {
	t.Helper()
	r, c := x.Dims()
	f := func(flat []float64) float64 {
		return projectedLoss(t, layer, mat.NewDense(r, c, flat), proj)
	}
	start := append([]float64(nil), x.RawMatrix().Data...)
	return fd.Gradient(nil, f, start, fdSettings)
}

// numericParamGrad estimates d(projectedLoss)/d(p) by perturbing p in place.
func numericParamGrad(t *testing.T, layer nn.Layer, p *nn.Parameter, x, proj *mat.Dense) []float64 {
	t.Helper()
	r, c := p.Shape()
	orig := mat.DenseCopyOf(p.Value())
	f := func(flat []float64) float64 {
		p.Value().Copy(mat.NewDense(r, c, flat))
		return projectedLoss(t, layer, x, proj)
	}
	start := append([]float64(nil), orig.RawMatrix().Data...)
	grad := fd.Gradient(nil, f, start, fdSettings)
	p.Value().Copy(orig)
	return grad
}

// analyticGrads runs one forward/backward pair and returns the input gradient.
func analyticGrads(t *testing.T, layer nn.Layer, x, proj *mat.Dense) []float64 {
	t.Helper()
	_, err := layer.Forward(x)
	require.NoError(t, err)
	gradIn, err := layer.Backward(proj)
	require.NoError(t, err)
	return flatten(gradIn)
}

func flatten(m mat.Matrix) []float64 {
	return mat.DenseCopyOf(m).RawMatrix().Data
}
