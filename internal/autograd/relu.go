package autograd

import (
	"github.com/born-ml/grad/internal/backend/cpu"
	"github.com/born-ml/grad/internal/tensor"
)

// ReLU applies the elementwise rectifier max(0, x).
//
// Backward: 1 where the forward input was positive, else 0. The node saves
// the input so the mask is evaluated at the exact forward values.
func ReLU(x *tensor.Tensor) *tensor.Tensor {
	out := tensor.Zeros(x.Shape())
	cpu.ReLU(out.Data(), x.Data())

	if x.RequiresGrad() {
		nd := attach(KindReLU, out, x)
		nd.saved = x
	}
	return out
}

func (nd *node) backwardReLU(grad *tensor.Tensor) []*tensor.Tensor {
	gradX := tensor.Zeros(grad.Shape())
	cpu.ReLUMask(gradX.Data(), nd.saved.Data())
	cpu.Mul(gradX.Data(), gradX.Data(), grad.Data())
	return []*tensor.Tensor{gradX}
}
