package autograd

import (
	"github.com/born-ml/grad/internal/backend/cpu"
	"github.com/born-ml/grad/internal/tensor"
)

// Mean reduces a tensor to the scalar mean of all its elements.
//
// Backward: every input element contributed 1/n, so the scalar upstream
// gradient broadcasts uniformly as grad/n.
func Mean(x *tensor.Tensor) *tensor.Tensor {
	out := tensor.Scalar(cpu.Mean(x.Data()))

	if x.RequiresGrad() {
		attach(KindMean, out, x)
	}
	return out
}

func (nd *node) backwardMean(grad *tensor.Tensor) []*tensor.Tensor {
	x := nd.inputs[0]
	gradX := tensor.Full(x.Shape(), grad.Item()/float32(x.NumElements()))
	return []*tensor.Tensor{gradX}
}
