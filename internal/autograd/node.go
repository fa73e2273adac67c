package autograd

import (
	"fmt"

	"github.com/born-ml/grad/internal/tensor"
)

// node records one primitive computation: its kind, references to the input
// tensors (shared - a tensor may feed several nodes), the output tensor it
// exclusively owns, and the forward state its backward rule needs.
type node struct {
	kind   Kind
	inputs []*tensor.Tensor
	output *tensor.Tensor

	// Saved forward state, populated per kind:
	//   Sigmoid    - the sigmoid output
	//   ReLU, Pow  - the forward input
	//   LogSoftmax - softmax of the input (exp of the output)
	saved    *tensor.Tensor
	exponent int   // Pow
	labels   []int // NLL class indices
}

// Inputs returns the input tensors of this operation.
func (nd *node) Inputs() []*tensor.Tensor {
	return nd.inputs
}

// Output returns the output tensor produced by this operation.
func (nd *node) Output() *tensor.Tensor {
	return nd.output
}

// Backward dispatches to the local derivative rule for the node's kind,
// given the gradient flowing into the node's output.
// Shapes were validated during the forward pass, so the rules themselves
// perform no further checking.
func (nd *node) Backward(grad *tensor.Tensor) []*tensor.Tensor {
	switch nd.kind {
	case KindAdd:
		return nd.backwardAdd(grad)
	case KindSub:
		return nd.backwardSub(grad)
	case KindMul:
		return nd.backwardMul(grad)
	case KindMatMul:
		return nd.backwardMatMul(grad)
	case KindLinear:
		return nd.backwardLinear(grad)
	case KindSigmoid:
		return nd.backwardSigmoid(grad)
	case KindReLU:
		return nd.backwardReLU(grad)
	case KindPow:
		return nd.backwardPow(grad)
	case KindMean:
		return nd.backwardMean(grad)
	case KindLogSoftmax:
		return nd.backwardLogSoftmax(grad)
	case KindNLL:
		return nd.backwardNLL(grad)
	default:
		panic(fmt.Sprintf("autograd: no backward rule for operation kind %s", nd.kind))
	}
}

// attach creates the operation node for out and installs it as out's
// producer, marking out as tracked. Called only when at least one input is
// tracked; untracked forward computation builds no nodes at all.
func attach(kind Kind, out *tensor.Tensor, inputs ...*tensor.Tensor) *node {
	nd := &node{
		kind:   kind,
		inputs: inputs,
		output: out,
	}
	out.RequireGrad()
	out.SetProducer(nd)
	return nd
}

// anyTracked reports whether at least one of the tensors is tracked.
// Tracking is contagious: the output of an operation is tracked iff
// anyTracked holds for its inputs.
func anyTracked(ts ...*tensor.Tensor) bool {
	for _, t := range ts {
		if t.RequiresGrad() {
			return true
		}
	}
	return false
}
