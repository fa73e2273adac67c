package tensor

import (
	"fmt"
	"math"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t := tensor.Zeros(tensor.Shape{3, 4})
func Zeros(shape Shape) *Tensor {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("Zeros: %v", err))
	}
	return &Tensor{
		data:  make([]float32, shape.NumElements()),
		shape: shape.Clone(),
	}
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Tensor {
	return Full(shape, 1)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full(tensor.Shape{3, 3}, 3.14)
func Full(shape Shape, value float32) *Tensor {
	t := Zeros(shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// Scalar creates a 0-D tensor holding a single value.
func Scalar(value float32) *Tensor {
	t := Zeros(Shape{})
	t.data[0] = value
	return t
}

// Randn creates a tensor with random values from a normal distribution
// (mean=0, std=1), using the Box-Muller transform.
// Note: uses math/rand (not crypto/rand) - appropriate for ML purposes.
func Randn(shape Shape) *Tensor {
	t := Zeros(shape)
	for i := range t.data {
		u1 := rand.Float64()
		u2 := rand.Float64()
		for u1 == 0 {
			u1 = rand.Float64()
		}
		t.data[i] = float32(math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2))
	}
	return t
}
