// Package optim implements optimization algorithms for training neural
// networks.
//
// Gradients live on the parameter tensors themselves (accumulated there by
// the autograd engine), so an optimizer only needs the parameter list.
//
// Example usage:
//
//	optimizer, _ := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
//
//	for _, batch := range batches {
//	    optimizer.ZeroGrad()
//	    loss, _ := criterion.Forward(model.Forward(batch.Input), batch.Labels)
//	    if err := autograd.Backward(loss); err != nil {
//	        return err
//	    }
//	    optimizer.Step()
//	}
package optim

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies the update rule to every parameter with an accumulated
	// gradient, mutating parameter values in place. Parameters whose
	// gradient accumulator is absent (they never entered the forward pass
	// that produced the loss) are left unchanged.
	Step()

	// ZeroGrad clears all parameter gradient accumulators. Must be called
	// before the backward pass of a new training step; otherwise stale
	// gradients from the prior step are added in.
	ZeroGrad()

	// GetLR returns the current learning rate, for monitoring and
	// scheduling.
	GetLR() float32
}
