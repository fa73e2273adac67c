// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the public API for gradient-based optimizers.
//
// Example:
//
//	opt, err := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	opt.ZeroGrad()
//	// ... forward, loss, backward ...
//	opt.Step()
package optim

import (
	"github.com/born-ml/grad/internal/nn"
	"github.com/born-ml/grad/internal/optim"
)

// Optimizer is the interface implemented by all optimizers.
type Optimizer = optim.Optimizer

// SGD implements stochastic gradient descent.
type SGD = optim.SGD

// SGDConfig holds SGD hyperparameters.
type SGDConfig = optim.SGDConfig

// NewSGD creates an SGD optimizer over the given parameters.
func NewSGD(params []*nn.Parameter, config SGDConfig) (*SGD, error) {
	return optim.NewSGD(params, config)
}
