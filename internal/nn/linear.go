package nn

import (
	"fmt"

	"github.com/born-ml/grad/internal/autograd"
	"github.com/born-ml/grad/internal/tensor"
)

// Linear implements a fully connected (dense) layer.
//
// Performs the transformation y = x @ Wᵀ + b where:
//   - x is the input tensor with shape [batch_size, in_features]
//   - W is the weight matrix with shape [out_features, in_features]
//   - b is the bias vector with shape [out_features]
//
// Weights are initialized with Xavier/Glorot initialization,
// biases with zeros.
//
// Example:
//
//	layer := nn.NewLinear(784, 128)
//	output := layer.Forward(input) // [batch, 784] -> [batch, 128]
type Linear struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter // [out_features, in_features]
	bias        *Parameter // [out_features]
}

// NewLinear creates a new Linear layer with Xavier-initialized weights and
// zero biases.
func NewLinear(inFeatures, outFeatures int) *Linear {
	weightShape := tensor.Shape{outFeatures, inFeatures}
	weight := NewParameter("weight", Xavier(inFeatures, outFeatures, weightShape))

	bias := NewParameter("bias", Zeros(tensor.Shape{outFeatures}))

	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      weight,
		bias:        bias,
	}
}

// Forward computes y = x @ Wᵀ + b.
//
// Input shape: [batch_size, in_features]
// Output shape: [batch_size, out_features]
//
// Panics on a shape mismatch; feeding a layer tensors of the wrong shape is
// a programmer error.
func (l *Linear) Forward(input *tensor.Tensor) *tensor.Tensor {
	inputShape := input.Shape()
	if len(inputShape) != 2 || inputShape[1] != l.inFeatures {
		panic(fmt.Sprintf("Linear.Forward: expected input [batch, %d], got shape %v",
			l.inFeatures, inputShape))
	}

	out, err := autograd.Linear(input, l.weight.Tensor(), l.bias.Tensor())
	if err != nil {
		panic(fmt.Sprintf("Linear.Forward: %v", err))
	}
	return out
}

// Parameters returns [weight, bias].
func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear) Weight() *Parameter {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear) Bias() *Parameter {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}
