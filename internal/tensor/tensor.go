// Package tensor provides the core tensor type for the grad engine.
//
// A Tensor is a dense float32 buffer with shape metadata. Tensors optionally
// track gradients: a tracked tensor owns a gradient accumulator (allocated
// lazily by the autograd engine) and, unless it is a leaf, a back-reference to
// the operation node that produced it. The computation graph is exactly the
// transitive closure of those back-references reachable from a loss tensor.
//
// Write discipline: a tensor's value buffer is written once, at creation or by
// its producing operation (parameters are additionally mutated in place by the
// optimizer). The gradient accumulator is mutated only by the autograd engine.
package tensor

import (
	"fmt"
	"strings"
)

// Op is implemented by autograd operation nodes. A tensor produced by an
// operation holds its node through this interface; the autograd engine walks
// the graph with Inputs and invokes Backward during the reverse pass.
type Op interface {
	// Inputs returns the input tensors of the operation.
	Inputs() []*Tensor

	// Output returns the output tensor the operation produced.
	// Its Producer back-reference points at exactly this node.
	Output() *Tensor

	// Backward computes input gradients given the gradient flowing into the
	// operation's output. The returned slice is index-aligned with Inputs;
	// entries for untracked inputs may be nil.
	Backward(grad *Tensor) []*Tensor
}

// Tensor is a dense float32 multi-dimensional array.
type Tensor struct {
	data         []float32
	shape        Shape
	grad         *Tensor // Gradient accumulator; nil until backward allocates it
	producer     Op      // Operation node that produced this tensor; nil for leaves
	requiresGrad bool    // Whether gradients should be accumulated for this tensor
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
// Returns a ShapeError if the slice length does not match the shape.
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, NewShapeError("FromSlice",
			fmt.Sprintf("%d elements for shape %v", shape.NumElements(), shape),
			fmt.Sprintf("%d elements", len(data)))
	}

	t := Zeros(shape)
	copy(t.data, data)
	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.shape.NumElements()
}

// Data returns the tensor's value buffer.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor) Data() []float32 {
	return t.data
}

// Item returns the scalar value of a single-element tensor.
// Panics if the tensor has more than one element.
func (t *Tensor) Item() float32 {
	if t.NumElements() != 1 {
		panic(fmt.Sprintf("Item() only works for scalar tensors, got shape %v", t.shape))
	}
	return t.data[0]
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) At(indices ...int) float32 {
	return t.data[t.offsetOf(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) Set(value float32, indices ...int) {
	t.data[t.offsetOf(indices)] = value
}

func (t *Tensor) offsetOf(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}

	offset := 0
	strides := t.shape.ComputeStrides()
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * strides[i]
	}
	return offset
}

// RequireGrad marks this tensor for gradient accumulation.
// Operations consuming a tracked tensor produce tracked outputs, so tracking
// propagates forward through the graph.
//
// Returns the tensor itself for method chaining.
func (t *Tensor) RequireGrad() *Tensor {
	t.requiresGrad = true
	return t
}

// RequiresGrad returns true if this tensor is tracked for gradients.
func (t *Tensor) RequiresGrad() bool {
	return t.requiresGrad
}

// Grad returns the gradient accumulator, or nil if no gradient has been
// accumulated since creation or the last reset.
func (t *Tensor) Grad() *Tensor {
	return t.grad
}

// SetGrad installs (or clears, with nil) the gradient accumulator.
// Used by the autograd engine and by Optimizer.ZeroGrad; forward computation
// never touches the accumulator.
func (t *Tensor) SetGrad(grad *Tensor) {
	if grad != nil && !grad.shape.Equal(t.shape) {
		panic(fmt.Sprintf("SetGrad: gradient shape %v does not match tensor shape %v", grad.shape, t.shape))
	}
	t.grad = grad
}

// ZeroGrad clears the gradient accumulator.
func (t *Tensor) ZeroGrad() {
	t.grad = nil
}

// Producer returns the operation node that produced this tensor,
// or nil for leaf tensors (parameters and inputs).
func (t *Tensor) Producer() Op {
	return t.producer
}

// SetProducer installs the producing operation node.
// Called exactly once, by the operation that created the tensor.
func (t *Tensor) SetProducer(op Op) {
	t.producer = op
}

// IsLeaf reports whether this tensor has no producing operation.
func (t *Tensor) IsLeaf() bool {
	return t.producer == nil
}

// Detach returns a new tensor that shares the same data but doesn't track
// gradients and has no producing node. Operations on the detached tensor
// won't extend the original computation graph.
func (t *Tensor) Detach() *Tensor {
	return &Tensor{
		data:  t.data, // Share data (zero-copy)
		shape: t.shape,
	}
}

// Clone creates a deep copy of the tensor's values.
// The clone is an untracked leaf; gradient state is not copied.
func (t *Tensor) Clone() *Tensor {
	c := Zeros(t.shape)
	copy(c.data, t.data)
	return c
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tensor%v", t.shape)
	if t.requiresGrad {
		b.WriteString(" (tracked)")
	}
	return b.String()
}
