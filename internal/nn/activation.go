package nn

import (
	"github.com/born-ml/grad/internal/autograd"
	"github.com/born-ml/grad/internal/tensor"
)

// ReLU is a Rectified Linear Unit activation module: f(x) = max(0, x).
type ReLU struct{}

// NewReLU creates a new ReLU activation module.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward applies ReLU elementwise.
func (r *ReLU) Forward(input *tensor.Tensor) *tensor.Tensor {
	return autograd.ReLU(input)
}

// Parameters returns an empty slice (ReLU has no trainable parameters).
func (r *ReLU) Parameters() []*Parameter {
	return nil
}

// Sigmoid is a logistic activation module: σ(x) = 1 / (1 + exp(-x)).
// Squashes values to (0, 1).
type Sigmoid struct{}

// NewSigmoid creates a new Sigmoid activation module.
func NewSigmoid() *Sigmoid {
	return &Sigmoid{}
}

// Forward applies sigmoid elementwise.
func (s *Sigmoid) Forward(input *tensor.Tensor) *tensor.Tensor {
	return autograd.Sigmoid(input)
}

// Parameters returns an empty slice (Sigmoid has no trainable parameters).
func (s *Sigmoid) Parameters() []*Parameter {
	return nil
}
