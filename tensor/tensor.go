// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for tensors in the grad engine.
//
// A Tensor is a dense float32 multi-dimensional array with shape metadata,
// optionally tracked for gradient accumulation by the autograd engine.
//
// Example:
//
//	x := tensor.Zeros(tensor.Shape{2, 3})
//	w, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	w.RequireGrad() // track gradients for w
package tensor

import (
	"github.com/born-ml/grad/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a dense float32 multi-dimensional array, optionally tracked for
// differentiation.
type Tensor = tensor.Tensor

// Op is implemented by autograd operation nodes; a non-leaf tensor's
// producing node is reachable through Tensor.Producer.
type Op = tensor.Op

// ShapeError reports an operation invoked with incompatible tensor shapes.
type ShapeError = tensor.ShapeError

// FromSlice creates a tensor from a Go slice; the slice is copied.
// Returns a ShapeError if the slice length does not match the shape.
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Tensor {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float32) *Tensor {
	return tensor.Full(shape, value)
}

// Scalar creates a 0-D tensor holding a single value.
func Scalar(value float32) *Tensor {
	return tensor.Scalar(value)
}

// Randn creates a tensor with random values from N(0, 1).
func Randn(shape Shape) *Tensor {
	return tensor.Randn(shape)
}
