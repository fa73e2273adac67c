package autograd

import (
	"github.com/born-ml/grad/internal/backend/cpu"
	"github.com/born-ml/grad/internal/tensor"
)

// LogSoftmax computes log(softmax(x)) along the last axis of a 2D tensor
// [batch, classes]. The per-row maximum is subtracted before exponentiating
// (log-sum-exp trick), so arbitrarily large logits cannot overflow.
//
// Backward (per row, standard log-softmax Jacobian-vector product):
//
//	dL/dx = g - softmax(x) · Σⱼ gⱼ
//
// The node saves softmax(x) = exp(output) for the rule.
func LogSoftmax(x *tensor.Tensor) (*tensor.Tensor, error) {
	xs := x.Shape()
	if len(xs) != 2 {
		return nil, tensor.NewShapeError("LogSoftmax", "2D [batch, classes]", xs)
	}
	rows, cols := xs[0], xs[1]

	out := tensor.Zeros(xs)
	cpu.LogSoftmaxRows(out.Data(), x.Data(), rows, cols)

	if x.RequiresGrad() {
		softmax := tensor.Zeros(xs)
		cpu.SoftmaxFromLog(softmax.Data(), out.Data())

		nd := attach(KindLogSoftmax, out, x)
		nd.saved = softmax
	}
	return out, nil
}

func (nd *node) backwardLogSoftmax(grad *tensor.Tensor) []*tensor.Tensor {
	xs := nd.inputs[0].Shape()
	rows, cols := xs[0], xs[1]
	softmax := nd.saved.Data()
	g := grad.Data()

	gradX := tensor.Zeros(xs)
	dst := gradX.Data()
	for r := 0; r < rows; r++ {
		rowG := g[r*cols : (r+1)*cols]
		rowSum := cpu.Sum(rowG)
		for j, gv := range rowG {
			dst[r*cols+j] = gv - softmax[r*cols+j]*rowSum
		}
	}
	return []*tensor.Tensor{gradX}
}
