// Copyright 2025 The GoGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks over the scalar
// autodiff engine.
//
// # Overview
//
// This package contains:
//   - Module interface and Neuron / Layer / MLP components
//   - Loss functions: MSELoss, HingeLoss, L2Penalty
//
// # Basic Usage
//
//	import (
//	    "github.com/gograd-ml/gograd/engine"
//	    "github.com/gograd-ml/gograd/nn"
//	    "github.com/gograd-ml/gograd/optim"
//	)
//
//	func main() {
//	    model := nn.NewMLP(2, []int{16, 16, 1})
//	    optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	    for epoch := 0; epoch < 100; epoch++ {
//	        optimizer.ZeroGrad()
//
//	        x := []*engine.Value{engine.New(0.5), engine.New(-1.2)}
//	        score := model.Forward(x)[0]
//	        loss := nn.HingeLoss([]*engine.Value{score}, []float64{1})
//
//	        loss.Backward()
//	        optimizer.Step()
//	    }
//	}
//
// Every forward pass builds a fresh computation graph, so parameters
// are the only values that persist between iterations.
package nn
