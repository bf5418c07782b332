// Package nn implements neural network building blocks on top of the
// scalar autodiff engine.
//
// This package provides:
//   - Module interface: parameter access shared by all components
//   - Neuron: single unit with optional ReLU nonlinearity
//   - Layer: a slice of neurons sharing an input
//   - MLP: stacked layers, hidden layers nonlinear, output linear
//   - Loss functions: MSELoss, HingeLoss, L2Penalty
//
// Forward methods are not part of the Module interface because their
// signatures differ (a Neuron produces one value, a Layer a slice).
//
// Design inspired by PyTorch's nn.Module, adapted to scalar values.
package nn

import "github.com/gograd-ml/gograd/internal/engine"

// Module is the base interface for all neural network components.
//
// Every module exposes its trainable parameters so optimizers can
// update them, and can reset their accumulated gradients between
// training iterations.
type Module interface {
	// Parameters returns all trainable parameters of this module,
	// including nested module parameters.
	Parameters() []*engine.Value

	// ZeroGrad resets the gradient of every parameter to zero.
	//
	// Gradients accumulate across backward passes, so this must be
	// called before each training iteration.
	ZeroGrad()
}

// zeroGrad resets the gradients of a parameter slice.
func zeroGrad(params []*engine.Value) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
