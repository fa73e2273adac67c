// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autograd provides the public API for reverse-mode automatic
// differentiation: the differentiable operation primitives and the backward
// pass over the computation graph they build.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float32{3}, tensor.Shape{1})
//	x.RequireGrad()
//	y := autograd.Pow(x, 2)
//	loss := autograd.Mean(y)
//	if err := autograd.Backward(loss); err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(x.Grad().Data()) // [6] = 2x
package autograd

import (
	"github.com/born-ml/grad/internal/autograd"
	"github.com/born-ml/grad/internal/tensor"
)

// Kind identifies an operation in the closed set of differentiable
// primitives.
type Kind = autograd.Kind

// Operation kinds.
const (
	KindAdd        Kind = autograd.KindAdd
	KindSub        Kind = autograd.KindSub
	KindMul        Kind = autograd.KindMul
	KindMatMul     Kind = autograd.KindMatMul
	KindLinear     Kind = autograd.KindLinear
	KindSigmoid    Kind = autograd.KindSigmoid
	KindReLU       Kind = autograd.KindReLU
	KindPow        Kind = autograd.KindPow
	KindMean       Kind = autograd.KindMean
	KindLogSoftmax Kind = autograd.KindLogSoftmax
	KindNLL        Kind = autograd.KindNLL
)

// NotTrackedError reports a backward request on an untracked tensor.
type NotTrackedError = autograd.NotTrackedError

// GraphCycleError reports a cycle among producer back-references.
type GraphCycleError = autograd.GraphCycleError

// InvalidLabelError reports an out-of-range class label passed to NLL.
type InvalidLabelError = autograd.InvalidLabelError

// Backward runs the reverse pass from a tracked scalar tensor, accumulating
// gradients into every tracked tensor in its graph.
func Backward(t *tensor.Tensor) error {
	return autograd.Backward(t)
}

// BackwardWithGrad runs the reverse pass from a tracked tensor of any shape,
// seeded with an explicit upstream gradient of matching shape.
func BackwardWithGrad(t, grad *tensor.Tensor) error {
	return autograd.BackwardWithGrad(t, grad)
}

// Add computes the elementwise sum a + b.
func Add(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return autograd.Add(a, b)
}

// Sub computes the elementwise difference a - b.
func Sub(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return autograd.Sub(a, b)
}

// Mul computes the elementwise product a * b.
func Mul(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return autograd.Mul(a, b)
}

// MatMul computes the matrix product a @ b for 2D tensors.
func MatMul(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return autograd.MatMul(a, b)
}

// Linear computes the affine transform x @ wᵀ + b.
func Linear(x, w, b *tensor.Tensor) (*tensor.Tensor, error) {
	return autograd.Linear(x, w, b)
}

// Sigmoid applies the elementwise logistic function.
func Sigmoid(x *tensor.Tensor) *tensor.Tensor {
	return autograd.Sigmoid(x)
}

// ReLU applies the elementwise rectifier max(0, x).
func ReLU(x *tensor.Tensor) *tensor.Tensor {
	return autograd.ReLU(x)
}

// Pow raises every element to a non-negative integer power.
func Pow(x *tensor.Tensor, n int) *tensor.Tensor {
	return autograd.Pow(x, n)
}

// Mean reduces a tensor to the scalar mean of all its elements.
func Mean(x *tensor.Tensor) *tensor.Tensor {
	return autograd.Mean(x)
}

// LogSoftmax computes log(softmax(x)) along the last axis of a 2D tensor.
func LogSoftmax(x *tensor.Tensor) (*tensor.Tensor, error) {
	return autograd.LogSoftmax(x)
}

// NLL computes the negative-log-likelihood loss from log-probabilities and
// integer class labels.
func NLL(logProbs *tensor.Tensor, labels []int) (*tensor.Tensor, error) {
	return autograd.NLL(logProbs, labels)
}
