package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Initializer produces an initial array of the given shape.
//
// Linear calls its weights initializer with (in_features, out_features)
// and its bias initializer with (1, out_features).
type Initializer func(rows, cols int) *mat.Dense

// Zeros returns a zero-filled array. It is the default bias policy.
func Zeros(rows, cols int) *mat.Dense {
	return mat.NewDense(rows, cols, nil)
}

// Constant returns an initializer filling every entry with v.
func Constant(v float64) Initializer {
	return func(rows, cols int) *mat.Dense {
		data := make([]float64, rows*cols)
		for i := range data {
			data[i] = v
		}
		return mat.NewDense(rows, cols, data)
	}
}

// HeNormal (Kaiming) initialization for weights feeding ReLU-like
// activations. It is the default weights policy.
//
// Values are drawn from N(0, 2/fan_in) where fan_in is rows.
func HeNormal(rows, cols int) *mat.Dense {
	std := math.Sqrt(2.0 / float64(rows))
	return sample(rows, cols, distuv.Normal{Mu: 0, Sigma: std})
}

// XavierUniform (Glorot) initialization for weights feeding sigmoid-like
// activations.
//
// Values are drawn from U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))).
func XavierUniform(rows, cols int) *mat.Dense {
	bound := math.Sqrt(6.0 / float64(rows+cols))
	return sample(rows, cols, distuv.Uniform{Min: -bound, Max: bound})
}

type sampler interface {
	Rand() float64
}

func sample(rows, cols int, dist sampler) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = dist.Rand()
	}
	return mat.NewDense(rows, cols, data)
}

// initialize runs init and panics if it returns the wrong shape.
func initialize(name string, init Initializer, rows, cols int) *mat.Dense {
	v := init(rows, cols)
	if v == nil {
		panic(fmt.Sprintf("nn: %s initializer returned nil", name))
	}
	if r, c := v.Dims(); r != rows || c != cols {
		panic(fmt.Sprintf("nn: %s initializer returned %dx%d, want %dx%d", name, r, c, rows, cols))
	}
	return v
}
