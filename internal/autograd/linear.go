package autograd

import (
	"fmt"

	"github.com/born-ml/grad/internal/backend/cpu"
	"github.com/born-ml/grad/internal/tensor"
)

// Linear computes the affine transform y = x @ wᵀ + b, the fused primitive
// behind a fully connected layer:
//
//	x: [batch, in]   w: [out, in]   b: [out]   y: [batch, out]
//
// Returns a ShapeError if any operand deviates from those shapes.
//
// Backward, given upstream gradient g [batch, out]:
//   - dL/dx = g @ w
//   - dL/dw = gᵀ @ x
//   - dL/db = column sums of g
func Linear(x, w, b *tensor.Tensor) (*tensor.Tensor, error) {
	xs, ws := x.Shape(), w.Shape()
	if len(xs) != 2 || len(ws) != 2 || xs[1] != ws[1] {
		return nil, tensor.NewShapeError("Linear",
			"x [batch, in] and w [out, in] with matching in",
			fmt.Sprintf("x %v, w %v", xs, ws))
	}
	batch, in := xs[0], xs[1]
	out := ws[0]
	if bs := b.Shape(); len(bs) != 1 || bs[0] != out {
		return nil, tensor.NewShapeError("Linear",
			fmt.Sprintf("b [%d]", out), b.Shape())
	}

	y := tensor.Zeros(tensor.Shape{batch, out})
	cpu.MatMulTB(y.Data(), x.Data(), w.Data(), batch, in, out)

	yData := y.Data()
	bData := b.Data()
	for r := 0; r < batch; r++ {
		cpu.AddInto(yData[r*out:(r+1)*out], bData)
	}

	if anyTracked(x, w, b) {
		attach(KindLinear, y, x, w, b)
	}
	return y, nil
}

func (nd *node) backwardLinear(grad *tensor.Tensor) []*tensor.Tensor {
	x, w, b := nd.inputs[0], nd.inputs[1], nd.inputs[2]
	batch, in := x.Shape()[0], x.Shape()[1]
	out := w.Shape()[0]

	// dL/dx = g @ w : [batch,out] @ [out,in] -> [batch,in]
	gradX := tensor.Zeros(x.Shape())
	cpu.MatMul(gradX.Data(), grad.Data(), w.Data(), batch, out, in)

	// dL/dw = gᵀ @ x : [batch,out]ᵀ @ [batch,in] -> [out,in]
	gradW := tensor.Zeros(w.Shape())
	cpu.MatMulTA(gradW.Data(), grad.Data(), x.Data(), out, batch, in)

	// dL/db = column sums of g.
	gradB := tensor.Zeros(b.Shape())
	cpu.ColSum(gradB.Data(), grad.Data(), batch, out)

	return []*tensor.Tensor{gradX, gradW, gradB}
}
