package autograd

import (
	"github.com/born-ml/grad/internal/backend/cpu"
	"github.com/born-ml/grad/internal/tensor"
)

// Sub computes the elementwise difference a - b.
// Returns a ShapeError if the shapes differ.
//
// Backward: d(a-b)/da = 1, d(a-b)/db = -1.
func Sub(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	if !a.Shape().Equal(b.Shape()) {
		return nil, tensor.NewShapeError("Sub", a.Shape(), b.Shape())
	}

	out := tensor.Zeros(a.Shape())
	cpu.Sub(out.Data(), a.Data(), b.Data())

	if anyTracked(a, b) {
		attach(KindSub, out, a, b)
	}
	return out, nil
}

func (nd *node) backwardSub(grad *tensor.Tensor) []*tensor.Tensor {
	gradB := tensor.Zeros(grad.Shape())
	cpu.Scale(gradB.Data(), grad.Data(), -1)
	return []*tensor.Tensor{grad, gradB}
}
