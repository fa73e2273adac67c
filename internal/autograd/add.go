package autograd

import (
	"github.com/born-ml/grad/internal/backend/cpu"
	"github.com/born-ml/grad/internal/tensor"
)

// Add computes the elementwise sum a + b.
// Returns a ShapeError if the shapes differ.
//
// Backward: d(a+b)/da = 1, d(a+b)/db = 1 - the upstream gradient flows
// unchanged to both inputs.
func Add(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	if !a.Shape().Equal(b.Shape()) {
		return nil, tensor.NewShapeError("Add", a.Shape(), b.Shape())
	}

	out := tensor.Zeros(a.Shape())
	cpu.Add(out.Data(), a.Data(), b.Data())

	if anyTracked(a, b) {
		attach(KindAdd, out, a, b)
	}
	return out, nil
}

func (nd *node) backwardAdd(grad *tensor.Tensor) []*tensor.Tensor {
	return []*tensor.Tensor{grad, grad}
}
