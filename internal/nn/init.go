package nn

import (
	"math"
	"math/rand"

	"github.com/born-ml/grad/internal/tensor"
)

// Xavier returns a tensor initialized with the Xavier/Glorot uniform
// distribution U(-bound, bound) with bound = sqrt(6/(fanIn+fanOut)),
// which keeps activation variance roughly constant across layers.
func Xavier(fanIn, fanOut int, shape tensor.Shape) *tensor.Tensor {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	t := tensor.Zeros(shape)
	data := t.Data()
	for i := range data {
		//nolint:gosec // math/rand for weight initialization (not security-critical)
		data[i] = float32((rand.Float64()*2.0 - 1.0) * bound)
	}
	return t
}

// Zeros creates a tensor filled with zeros. Commonly used for biases.
func Zeros(shape tensor.Shape) *tensor.Tensor {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape tensor.Shape) *tensor.Tensor {
	return tensor.Ones(shape)
}

// Randn creates a tensor with values drawn from N(0, 1).
func Randn(shape tensor.Shape) *tensor.Tensor {
	return tensor.Randn(shape)
}
