// Copyright 2025 The GoGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/gograd-ml/gograd/internal/engine"
	"github.com/gograd-ml/gograd/internal/nn"
)

// Module is the base interface for all neural network components.
type Module = nn.Module

// Neuron is a single unit with optional ReLU nonlinearity.
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin inputs.
func NewNeuron(nin int, nonlinear bool) *Neuron {
	return nn.NewNeuron(nin, nonlinear)
}

// Layer is a fully connected layer of neurons.
type Layer = nn.Layer

// NewLayer creates a layer mapping nin inputs to nout outputs.
func NewLayer(nin, nout int, nonlinear bool) *Layer {
	return nn.NewLayer(nin, nout, nonlinear)
}

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// NewMLP creates an MLP with the given input width and per-layer
// output widths.
//
// Example:
//
//	model := nn.NewMLP(2, []int{16, 16, 1})
func NewMLP(nin int, nouts []int) *MLP {
	return nn.NewMLP(nin, nouts)
}

// MSELoss computes the mean squared error between predictions and
// targets.
func MSELoss(pred, target []*engine.Value) *engine.Value {
	return nn.MSELoss(pred, target)
}

// HingeLoss computes the max-margin loss for ±1 labels.
func HingeLoss(scores []*engine.Value, labels []float64) *engine.Value {
	return nn.HingeLoss(scores, labels)
}

// L2Penalty computes alpha * Σ p², the weight-decay term.
func L2Penalty(params []*engine.Value, alpha float64) *engine.Value {
	return nn.L2Penalty(params, alpha)
}
