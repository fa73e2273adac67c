// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API for neural network building blocks:
// modules, trainable parameters, the Linear layer, activations, and loss
// functions.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128),
//	    nn.NewReLU(),
//	    nn.NewLinear(128, 10),
//	)
//	criterion := nn.NewCrossEntropyLoss()
package nn

import (
	"github.com/born-ml/grad/internal/nn"
	"github.com/born-ml/grad/internal/tensor"
)

// Module is the base interface for all neural network components.
type Module = nn.Module

// Parameter represents a trainable parameter in a neural network.
type Parameter = nn.Parameter

// Linear implements a fully connected layer y = x @ Wᵀ + b.
type Linear = nn.Linear

// ReLU is a rectified linear unit activation module.
type ReLU = nn.ReLU

// Sigmoid is a logistic activation module.
type Sigmoid = nn.Sigmoid

// Sequential chains modules so each output feeds the next input.
type Sequential = nn.Sequential

// MSELoss computes mean squared error.
type MSELoss = nn.MSELoss

// CrossEntropyLoss computes cross-entropy loss via LogSoftmax + NLL.
type CrossEntropyLoss = nn.CrossEntropyLoss

// NewParameter creates a trainable parameter around an initialized tensor.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return nn.NewParameter(name, t)
}

// NewLinear creates a fully connected layer with Xavier-initialized weights.
func NewLinear(inFeatures, outFeatures int) *Linear {
	return nn.NewLinear(inFeatures, outFeatures)
}

// NewReLU creates a ReLU activation module.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// NewSigmoid creates a Sigmoid activation module.
func NewSigmoid() *Sigmoid {
	return nn.NewSigmoid()
}

// NewSequential creates a container chaining the given modules.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// NewMSELoss creates an MSE loss function.
func NewMSELoss() *MSELoss {
	return nn.NewMSELoss()
}

// NewCrossEntropyLoss creates a cross-entropy loss function.
func NewCrossEntropyLoss() *CrossEntropyLoss {
	return nn.NewCrossEntropyLoss()
}

// Xavier returns a tensor initialized with the Xavier/Glorot uniform
// distribution.
func Xavier(fanIn, fanOut int, shape tensor.Shape) *tensor.Tensor {
	return nn.Xavier(fanIn, fanOut, shape)
}

// Accuracy computes classification accuracy for a batch of logits.
func Accuracy(logits *tensor.Tensor, targets []int) float32 {
	return nn.Accuracy(logits, targets)
}
