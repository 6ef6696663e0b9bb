package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/nnfs/internal/nn"
)

func TestSequential_MatchesManualChaining(t *testing.T) {
	rng := newRand()
	l1 := nn.NewLinear(3, 4, nn.WithWeightsInitializer(nn.XavierUniform))
	act := nn.NewSigmoid()
	l2 := nn.NewLinear(4, 2)
	sm := nn.NewSoftmax()
	model := nn.NewSequential(l1, act, l2, sm)

	x := randDense(rng, 6, 3)
	g := randDense(rng, 6, 2)

	out, err := model.Forward(x)
	require.NoError(t, err)
	gradIn, err := model.Backward(g)
	require.NoError(t, err)
	modelW1 := mat.DenseCopyOf(l1.Weights().Grad())

	h, err := l1.Forward(x)
	require.NoError(t, err)
	h, err = act.Forward(h)
	require.NoError(t, err)
	h, err = l2.Forward(h)
	require.NoError(t, err)
	manualOut, err := sm.Forward(h)
	require.NoError(t, err)

	d, err := sm.Backward(g)
	require.NoError(t, err)
	d, err = l2.Backward(d)
	require.NoError(t, err)
	d, err = act.Backward(d)
	require.NoError(t, err)
	manualGrad, err := l1.Backward(d)
	require.NoError(t, err)

	assert.Equal(t, flatten(manualOut), flatten(out))
	assert.Equal(t, flatten(manualGrad), flatten(gradIn))
	assert.Equal(t, flatten(l1.Weights().Grad()), flatten(modelW1))
}

func TestSequential_ParametersAndLoss(t *testing.T) {
	l1 := nn.NewLinear(2, 3, nn.WithWeightsInitializer(nn.Constant(1)), nn.WithWeightsRegularizer(nn.L2(0.1)))
	l2 := nn.NewLinear(3, 1, nn.WithBiasInitializer(nn.Constant(2)), nn.WithBiasRegularizer(nn.L1(0.5)))
	model := nn.NewSequential(l1, nn.NewReLU())
	model.Add(l2)

	assert.Equal(t, 3, model.Len())
	assert.Same(t, l2, model.Layer(2))

	params := model.Parameters()
	require.Len(t, params, 4)
	assert.Same(t, l1.Weights(), params[0])
	assert.Same(t, l1.Biases(), params[1])
	assert.Same(t, l2.Weights(), params[2])
	assert.Same(t, l2.Biases(), params[3])

	// 0.1 * 6 * 1² + 0.5 * |2|
	assert.InDelta(t, 1.6, model.Loss(), 1e-12)
	assert.InDelta(t, l1.Loss()+l2.Loss(), model.Loss(), 1e-12)

	assert.Panics(t, func() { model.Layer(3) })
}

func TestSequential_GradientCheck(t *testing.T) {
	rng := newRand()
	model := nn.NewSequential(
		nn.NewLinear(3, 5, nn.WithBiasInitializer(nn.Constant(0.1))),
		nn.NewSigmoid(),
		nn.NewLinear(5, 4, nn.WithWeightsRegularizer(nn.L2(0.01))),
		nn.NewSoftmax(),
	)
	x := randDense(rng, 4, 3)
	proj := randDense(rng, 4, 4)

	params := model.Parameters()
	wantParams := make([][]float64, len(params))
	for i, p := range params {
		wantParams[i] = numericParamGrad(t, model, p, x, proj)
	}
	wantIn := numericInputGrad(t, model, x, proj)

	gotIn := analyticGrads(t, model, x, proj)
	assert.InDeltaSlice(t, wantIn, gotIn, gradTolerance)
	for i, p := range params {
		assert.InDeltaSlice(t, wantParams[i], flatten(p.Grad()), gradTolerance, "parameter %d (%s)", i, p.Name())
	}
}

func TestSequential_WrapsLayerErrors(t *testing.T) {
	model := nn.NewSequential(nn.NewLinear(2, 2), nn.NewLinear(3, 1))

	_, err := model.Forward(mat.NewDense(1, 2, nil))
	require.ErrorIs(t, err, nn.ErrShape)
	assert.Contains(t, err.Error(), "layer 1")

	_, err = nn.NewSequential(nn.NewReLU()).Backward(mat.NewDense(1, 1, nil))
	require.ErrorIs(t, err, nn.ErrNoForward)
}

// TestSequential_FailedBackwardNeedsForward checks that a backward failing
// midway consumes the later layers' caches and succeeds after a fresh Forward.
func TestSequential_FailedBackwardNeedsForward(t *testing.T) {
	first := nn.NewLinear(2, 3)
	last := nn.NewLinear(3, 1, nn.WithWeightsInitializer(nn.Constant(1)))
	model := nn.NewSequential(first, nn.NewReLU(), last)
	x := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	g := mat.NewDense(2, 1, []float64{1, -1})

	_, err := model.Forward(x)
	require.NoError(t, err)

	// Use up the first layer's cache so the chain fails at layer 0.
	_, err = first.Backward(mat.NewDense(2, 3, nil))
	require.NoError(t, err)

	_, err = model.Backward(g)
	require.ErrorIs(t, err, nn.ErrNoForward)
	assert.Contains(t, err.Error(), "layer 0")

	// The later layers already ran: their caches are gone.
	_, err = last.Backward(g)
	require.ErrorIs(t, err, nn.ErrNoForward)

	_, err = model.Forward(x)
	require.NoError(t, err)
	gradIn, err := model.Backward(g)
	require.NoError(t, err)
	r, c := gradIn.Dims()
	assert.Equal(t, []int{2, 2}, []int{r, c})
}

func TestSequential_Empty(t *testing.T) {
	model := nn.NewSequential()
	x := mat.NewDense(1, 2, []float64{1, 2})

	out, err := model.Forward(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, flatten(out))

	grad, err := model.Backward(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, flatten(grad))
	assert.Empty(t, model.Parameters())
	assert.Equal(t, 0.0, model.Loss())
}
