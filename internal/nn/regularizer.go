package nn

import (
	"gonum.org/v1/gonum/mat"
)

// Regularizer computes a penalty on a parameter value and the gradient
// of that penalty with respect to the value.
type Regularizer interface {
	// Penalty returns the non-negative scalar penalty for value.
	Penalty(value mat.Matrix) float64

	// Grad returns d(Penalty)/d(value), shaped like value.
	Grad(value mat.Matrix) *mat.Dense
}

// L1Regularizer is the lasso penalty λ·Σ|w|.
type L1Regularizer struct {
	Lambda float64
}

// L1 returns an L1 regularizer with strength lambda.
func L1(lambda float64) *L1Regularizer {
	return &L1Regularizer{Lambda: lambda}
}

// Penalty returns λ·Σ|w|.
func (r *L1Regularizer) Penalty(value mat.Matrix) float64 {
	var sum float64
	eachElem(value, func(v float64) {
		if v < 0 {
			sum -= v
		} else {
			sum += v
		}
	})
	return r.Lambda * sum
}

// Grad returns λ·sign(w). The subgradient at zero is 0.
func (r *L1Regularizer) Grad(value mat.Matrix) *mat.Dense {
	var g mat.Dense
	g.Apply(func(_, _ int, v float64) float64 {
		switch {
		case v > 0:
			return r.Lambda
		case v < 0:
			return -r.Lambda
		}
		return 0
	}, value)
	return &g
}

// L2Regularizer is the ridge penalty λ·Σw².
type L2Regularizer struct {
	Lambda float64
}

// L2 returns an L2 regularizer with strength lambda.
func L2(lambda float64) *L2Regularizer {
	return &L2Regularizer{Lambda: lambda}
}

// Penalty returns λ·Σw².
func (r *L2Regularizer) Penalty(value mat.Matrix) float64 {
	var sum float64
	eachElem(value, func(v float64) {
		sum += v * v
	})
	return r.Lambda * sum
}

// Grad returns 2λ·w.
func (r *L2Regularizer) Grad(value mat.Matrix) *mat.Dense {
	var g mat.Dense
	g.Scale(2*r.Lambda, value)
	return &g
}

// L1L2Regularizer combines L1 and L2 penalties.
type L1L2Regularizer struct {
	L1 L1Regularizer
	L2 L2Regularizer
}

// L1L2 returns a regularizer applying both penalties.
func L1L2(l1, l2 float64) *L1L2Regularizer {
	return &L1L2Regularizer{
		L1: L1Regularizer{Lambda: l1},
		L2: L2Regularizer{Lambda: l2},
	}
}

// Penalty returns the sum of the L1 and L2 penalties.
func (r *L1L2Regularizer) Penalty(value mat.Matrix) float64 {
	return r.L1.Penalty(value) + r.L2.Penalty(value)
}

// Grad returns the sum of the L1 and L2 gradients.
func (r *L1L2Regularizer) Grad(value mat.Matrix) *mat.Dense {
	g := r.L1.Grad(value)
	g.Add(g, r.L2.Grad(value))
	return g
}

func eachElem(m mat.Matrix, fn func(v float64)) {
	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			fn(m.At(i, j))
		}
	}
}
