package autograd

// Kind identifies an operation in the closed set of differentiable
// primitives. Backward rules are selected by matching on Kind.
type Kind int

// Supported operation kinds.
const (
	KindAdd Kind = iota
	KindSub
	KindMul
	KindMatMul
	KindLinear
	KindSigmoid
	KindReLU
	KindPow
	KindMean
	KindLogSoftmax
	KindNLL
)

// String returns a human-readable name for the operation kind.
func (k Kind) String() string {
	switch k {
	case KindAdd:
		return "Add"
	case KindSub:
		return "Sub"
	case KindMul:
		return "Mul"
	case KindMatMul:
		return "MatMul"
	case KindLinear:
		return "Linear"
	case KindSigmoid:
		return "Sigmoid"
	case KindReLU:
		return "ReLU"
	case KindPow:
		return "Pow"
	case KindMean:
		return "Mean"
	case KindLogSoftmax:
		return "LogSoftmax"
	case KindNLL:
		return "NLL"
	default:
		return "Unknown"
	}
}
