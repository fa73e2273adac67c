package autograd

import (
	"github.com/born-ml/grad/internal/backend/cpu"
	"github.com/born-ml/grad/internal/tensor"
)

// Mul computes the elementwise product a * b.
// Returns a ShapeError if the shapes differ.
//
// Backward: d(a*b)/da = b, d(a*b)/db = a.
func Mul(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	if !a.Shape().Equal(b.Shape()) {
		return nil, tensor.NewShapeError("Mul", a.Shape(), b.Shape())
	}

	out := tensor.Zeros(a.Shape())
	cpu.Mul(out.Data(), a.Data(), b.Data())

	if anyTracked(a, b) {
		attach(KindMul, out, a, b)
	}
	return out, nil
}

func (nd *node) backwardMul(grad *tensor.Tensor) []*tensor.Tensor {
	a, b := nd.inputs[0], nd.inputs[1]

	gradA := tensor.Zeros(grad.Shape())
	cpu.Mul(gradA.Data(), grad.Data(), b.Data())

	gradB := tensor.Zeros(grad.Shape())
	cpu.Mul(gradB.Data(), grad.Data(), a.Data())

	return []*tensor.Tensor{gradA, gradB}
}
