package autograd

import (
	"github.com/born-ml/grad/internal/backend/cpu"
	"github.com/born-ml/grad/internal/tensor"
)

// Sigmoid applies the elementwise logistic function σ(x) = 1 / (1 + exp(-x)).
//
// Backward: dσ/dx = σ(x)·(1 - σ(x)). The forward output is already σ(x), so
// the node saves it instead of recomputing from the input.
func Sigmoid(x *tensor.Tensor) *tensor.Tensor {
	out := tensor.Zeros(x.Shape())
	cpu.Sigmoid(out.Data(), x.Data())

	if x.RequiresGrad() {
		nd := attach(KindSigmoid, out, x)
		nd.saved = out
	}
	return out
}

func (nd *node) backwardSigmoid(grad *tensor.Tensor) []*tensor.Tensor {
	s := nd.saved.Data()
	gradX := tensor.Zeros(grad.Shape())
	dst := gradX.Data()
	for i, g := range grad.Data() {
		dst[i] = g * s[i] * (1 - s[i])
	}
	return []*tensor.Tensor{gradX}
}
