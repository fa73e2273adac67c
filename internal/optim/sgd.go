package optim

import (
	"fmt"

	"github.com/born-ml/grad/internal/backend/cpu"
	"github.com/born-ml/grad/internal/nn"
)

// SGD implements plain stochastic gradient descent:
//
//	param = param - lr * gradient
//
// Deliberately the simplest update rule - no momentum, weight decay, or
// adaptive scaling.
type SGD struct {
	params []*nn.Parameter
	lr     float32
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR float32 // Learning rate; must be > 0
}

// NewSGD creates a new SGD optimizer over a fixed parameter list.
// Returns an error if the learning rate is not positive.
func NewSGD(params []*nn.Parameter, config SGDConfig) (*SGD, error) {
	if config.LR <= 0 {
		return nil, fmt.Errorf("sgd: learning rate must be positive, got %g", config.LR)
	}
	return &SGD{
		params: params,
		lr:     config.LR,
	}, nil
}

// Step performs a single optimization step, updating each parameter's value
// buffer in place:
//
//	param -= lr * grad
//
// Parameters with no accumulated gradient are skipped.
func (s *SGD) Step() {
	for _, param := range s.params {
		grad := param.Grad()
		if grad == nil {
			// Parameter didn't participate in the forward pass.
			continue
		}
		cpu.AXPY(param.Tensor().Data(), -s.lr, grad.Data())
	}
}

// ZeroGrad clears every parameter's gradient accumulator.
func (s *SGD) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float32 {
	return s.lr
}

// SetLR updates the learning rate. Useful for scheduling during training.
func (s *SGD) SetLR(lr float32) {
	s.lr = lr
}
