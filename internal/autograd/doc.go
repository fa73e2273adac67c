// Package autograd implements reverse-mode automatic differentiation over an
// explicit computation graph.
//
// Each forward operation that consumes at least one tracked tensor creates an
// operation node recording its kind, its input tensors, and whatever forward
// state its backward rule needs (for example the sigmoid output, or the
// softmax of a log-softmax input). The node is installed as the output
// tensor's producer, so the graph for a training step is exactly the set of
// nodes reachable from the loss tensor through producer back-references. A
// fresh graph is built every forward pass and becomes garbage once the loss
// tensor goes out of use; only parameter tensors survive across steps.
//
// The set of operation kinds is closed: backward rules are selected by an
// exhaustive switch over the Kind enumeration rather than open-ended dynamic
// dispatch, which keeps every rule individually testable.
//
// Backward walks the graph in reverse topological order (first-visit order of
// a depth-first traversal from the loss, which is deterministic for a fixed
// graph) and accumulates - adds, never overwrites - gradients into every
// tracked tensor it reaches. Gradients keep accumulating across repeated
// backward calls until explicitly reset; Optimizer.ZeroGrad is the reset
// point before each training step.
//
// Usage:
//
//	x, _ := tensor.FromSlice([]float32{2}, tensor.Shape{1})
//	x.RequireGrad()
//	y := autograd.Pow(x, 2) // y = x²
//	loss := autograd.Mean(y)
//	if err := autograd.Backward(loss); err != nil {
//		// untracked root, non-scalar root, or a graph invariant violation
//	}
//	fmt.Println(x.Grad().Data()) // dy/dx = 2x = [4]
package autograd
