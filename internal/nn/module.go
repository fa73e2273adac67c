// Package nn implements neural network building blocks on top of the
// autograd primitives:
//   - Module interface: base interface for all NN components
//   - Parameter: trainable tensors with gradient tracking
//   - Linear: fully connected layer
//   - Activations: ReLU, Sigmoid
//   - Loss functions: MSE, CrossEntropy
//   - Sequential: container for stacking layers
//
// Design inspired by PyTorch's nn.Module, adapted for Go.
package nn

import (
	"github.com/born-ml/grad/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Modules compose to build architectures:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128),
//	    nn.NewReLU(),
//	    nn.NewLinear(128, 10),
//	)
type Module interface {
	// Forward computes the output of the module given an input tensor.
	// For example, Linear expects [batch_size, in_features].
	Forward(input *tensor.Tensor) *tensor.Tensor

	// Parameters returns all trainable parameters of this module, including
	// nested module parameters. Returns an empty slice for modules without
	// trainable parameters (e.g. activation functions).
	Parameters() []*Parameter
}
