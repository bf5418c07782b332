// Package optim implements optimization algorithms for training models
// built on the scalar autodiff engine.
//
// This package provides:
//   - Optimizer interface: base interface for all optimizers
//   - SGD: stochastic gradient descent with optional momentum
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.05,
//	    Momentum: 0.9,
//	})
//
//	for epoch := 0; epoch < epochs; epoch++ {
//	    optimizer.ZeroGrad()
//	    loss := computeLoss(model, data)
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers read the gradients accumulated on their parameters by a
// backward pass and update the parameter values in place.
type Optimizer interface {
	// Step applies one gradient update to every parameter.
	Step()

	// ZeroGrad resets every parameter gradient.
	//
	// Gradients accumulate across backward passes, so this must run
	// before each new forward/backward iteration.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate, for scheduling.
	SetLR(lr float64)
}

// Config is the base configuration shared by optimizers.
type Config struct {
	LR float64 // Learning rate
}
