package autograd

import (
	"fmt"

	"github.com/born-ml/grad/internal/backend/cpu"
	"github.com/born-ml/grad/internal/tensor"
)

// Pow raises every element to a non-negative integer power n.
// Panics if n is negative; the primitive exists for small didactic exponents
// (squares in MSE-style losses), not general exponentiation.
//
// Backward: d(xⁿ)/dx = n·xⁿ⁻¹, so grad·2x for the common square.
func Pow(x *tensor.Tensor, n int) *tensor.Tensor {
	if n < 0 {
		panic(fmt.Sprintf("Pow: negative exponent %d", n))
	}

	out := tensor.Zeros(x.Shape())
	cpu.PowN(out.Data(), x.Data(), n)

	if x.RequiresGrad() {
		nd := attach(KindPow, out, x)
		nd.saved = x
		nd.exponent = n
	}
	return out
}

func (nd *node) backwardPow(grad *tensor.Tensor) []*tensor.Tensor {
	gradX := tensor.Zeros(grad.Shape())
	if nd.exponent == 0 {
		// x⁰ is constant 1; the gradient vanishes.
		return []*tensor.Tensor{gradX}
	}

	// n·xⁿ⁻¹, then scale by the upstream gradient.
	cpu.PowN(gradX.Data(), nd.saved.Data(), nd.exponent-1)
	cpu.Scale(gradX.Data(), gradX.Data(), float32(nd.exponent))
	cpu.Mul(gradX.Data(), gradX.Data(), grad.Data())
	return []*tensor.Tensor{gradX}
}
