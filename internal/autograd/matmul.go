package autograd

import (
	"fmt"

	"github.com/born-ml/grad/internal/backend/cpu"
	"github.com/born-ml/grad/internal/tensor"
)

// MatMul computes the matrix product a @ b for 2D tensors.
// Returns a ShapeError unless a is [m,k] and b is [k,n].
//
// Backward:
//   - d(A@B)/dA = grad @ Bᵀ
//   - d(A@B)/dB = Aᵀ @ grad
func MatMul(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	as, bs := a.Shape(), b.Shape()
	if len(as) != 2 || len(bs) != 2 {
		return nil, tensor.NewShapeError("MatMul", "two 2D tensors",
			fmt.Sprintf("%v @ %v", as, bs))
	}
	m, k := as[0], as[1]
	if bs[0] != k {
		return nil, tensor.NewShapeError("MatMul",
			fmt.Sprintf("inner dimensions to agree (%v @ [%d n])", as, k),
			fmt.Sprintf("%v @ %v", as, bs))
	}
	n := bs[1]

	out := tensor.Zeros(tensor.Shape{m, n})
	cpu.MatMul(out.Data(), a.Data(), b.Data(), m, k, n)

	if anyTracked(a, b) {
		attach(KindMatMul, out, a, b)
	}
	return out, nil
}

func (nd *node) backwardMatMul(grad *tensor.Tensor) []*tensor.Tensor {
	a, b := nd.inputs[0], nd.inputs[1]
	m, k := a.Shape()[0], a.Shape()[1]
	n := b.Shape()[1]

	// grad_a = grad @ bᵀ : [m,n] @ [k,n]ᵀ -> [m,k]
	gradA := tensor.Zeros(a.Shape())
	cpu.MatMulTB(gradA.Data(), grad.Data(), b.Data(), m, n, k)

	// grad_b = aᵀ @ grad : [m,k]ᵀ @ [m,n] -> [k,n]
	gradB := tensor.Zeros(b.Shape())
	cpu.MatMulTA(gradB.Data(), a.Data(), grad.Data(), k, m, n)

	return []*tensor.Tensor{gradA, gradB}
}
