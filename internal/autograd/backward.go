package autograd

import (
	"github.com/born-ml/grad/internal/backend/cpu"
	"github.com/born-ml/grad/internal/tensor"
)

// Backward runs the reverse pass from a tracked scalar tensor, typically the
// loss. The scalar's own gradient is seeded with 1.0 (dz/dz = 1), and
// gradients are accumulated into every tracked tensor reachable through
// producer back-references. Untracked tensors are left untouched and never
// allocate an accumulator.
//
// Gradients add up across repeated Backward calls; reset them explicitly
// (Optimizer.ZeroGrad) before starting a new training step.
//
// Returns NotTrackedError if t is untracked, a ShapeError if t is not a
// scalar (use BackwardWithGrad to seed a non-scalar), and GraphCycleError if
// the producer references do not form a DAG.
func Backward(t *tensor.Tensor) error {
	if !t.RequiresGrad() {
		return &NotTrackedError{}
	}
	if t.NumElements() != 1 {
		return tensor.NewShapeError("Backward",
			"scalar output (use BackwardWithGrad for non-scalar roots)", t.Shape())
	}
	return run(t, tensor.Ones(t.Shape()))
}

// BackwardWithGrad runs the reverse pass from a tracked tensor of any shape,
// seeding it with an explicit upstream gradient of matching shape.
func BackwardWithGrad(t, grad *tensor.Tensor) error {
	if !t.RequiresGrad() {
		return &NotTrackedError{}
	}
	if !grad.Shape().Equal(t.Shape()) {
		return tensor.NewShapeError("BackwardWithGrad", t.Shape(), grad.Shape())
	}
	return run(t, grad)
}

// run performs one reverse traversal.
//
// Per-pass gradient flow is kept in its own map, separate from the persistent
// accumulators on the tensors: propagation always uses this pass's flow, so
// repeating backward on the same graph adds exactly one more copy of each
// gradient into the accumulators instead of compounding with earlier passes.
func run(root, seed *tensor.Tensor) error {
	order, err := reverseTopo(root)
	if err != nil {
		return err
	}

	flows := make(map[*tensor.Tensor]*tensor.Tensor, len(order)+1)
	accumulate(flows, root, seed)

	for _, op := range order {
		flow, ok := flows[op.Output()]
		if !ok {
			// No gradient reached this node's output.
			continue
		}

		inputGrads := op.Backward(flow)
		inputs := op.Inputs()
		for i, g := range inputGrads {
			if i >= len(inputs) || g == nil {
				continue
			}
			if in := inputs[i]; in.RequiresGrad() {
				accumulate(flows, in, g)
			}
		}
	}
	return nil
}

// reverseTopo orders every node reachable from root so that each node appears
// only after all nodes consuming its output. This is the reverse post-order
// of a depth-first traversal from root; ties between independent nodes break
// by first-visit order, which is deterministic for a fixed graph.
func reverseTopo(root *tensor.Tensor) ([]tensor.Op, error) {
	rootOp := root.Producer()
	if rootOp == nil {
		return nil, nil // Leaf root: the seed is the whole gradient.
	}

	const (
		stateOpen = 1 // On the current DFS path
		stateDone = 2
	)

	state := make(map[tensor.Op]int)
	var order []tensor.Op

	var visit func(op tensor.Op) error
	visit = func(op tensor.Op) error {
		switch state[op] {
		case stateOpen:
			return &GraphCycleError{}
		case stateDone:
			return nil
		}
		state[op] = stateOpen
		for _, in := range op.Inputs() {
			if p := in.Producer(); p != nil {
				if err := visit(p); err != nil {
					return err
				}
			}
		}
		state[op] = stateDone
		order = append(order, op)
		return nil
	}

	if err := visit(rootOp); err != nil {
		return nil, err
	}

	// Post-order lists producers before their consumers; the backward sweep
	// needs consumers first.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order, nil
}

// accumulate adds g into t's per-pass flow and into t's persistent gradient
// accumulator, allocating either to zero on first touch.
func accumulate(flows map[*tensor.Tensor]*tensor.Tensor, t, g *tensor.Tensor) {
	flow, ok := flows[t]
	if !ok {
		flow = tensor.Zeros(t.Shape())
		flows[t] = flow
	}
	cpu.AddInto(flow.Data(), g.Data())

	acc := t.Grad()
	if acc == nil {
		acc = tensor.Zeros(t.Shape())
		t.SetGrad(acc)
	}
	cpu.AddInto(acc.Data(), g.Data())
}
