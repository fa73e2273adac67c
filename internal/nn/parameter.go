package nn

import (
	"github.com/born-ml/grad/internal/tensor"
)

// Parameter represents a trainable parameter in a neural network, typically
// a layer's weight or bias. Parameter tensors are tracked leaves: they have
// no producing operation and survive across training steps, mutated in place
// only by the optimizer.
type Parameter struct {
	name   string
	tensor *tensor.Tensor
}

// NewParameter creates a new trainable parameter around an initialized
// tensor, marking it for gradient accumulation.
//
// Parameters:
//   - name: descriptive name (e.g. "linear1.weight")
//   - t: the initialized parameter tensor
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	t.RequireGrad()
	return &Parameter{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *tensor.Tensor {
	return p.tensor
}

// Grad returns the accumulated gradient, or nil if none has been computed
// since creation or the last reset.
func (p *Parameter) Grad() *tensor.Tensor {
	return p.tensor.Grad()
}

// ZeroGrad clears the gradient accumulator. Called before each training
// iteration so gradients from the previous step are not added in.
func (p *Parameter) ZeroGrad() {
	p.tensor.ZeroGrad()
}
