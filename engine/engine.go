// Copyright 2025 The GoGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package engine provides scalar reverse-mode automatic differentiation.
//
// This package implements backpropagation over a dynamically built
// computation graph of scalar values. Each arithmetic operation
// allocates a graph node carrying the forward result and a backward
// rule; calling Backward on the output accumulates exact gradients
// into every input.
//
// Example:
//
//	import "github.com/gograd-ml/gograd/engine"
//
//	func main() {
//	    x := engine.NewLabeled(0.5, "x")
//	    w := engine.NewLabeled(3.14, "w")
//	    b := engine.NewLabeled(-2.0, "b")
//
//	    y := x.Mul(w).Add(b).Sigmoid()
//	    y.Backward()
//
//	    fmt.Println(x.Grad()) // dy/dx ≈ 0.7508
//	}
package engine

import "github.com/gograd-ml/gograd/internal/engine"

// Value is one scalar node in the computation graph.
type Value = engine.Value

// Op identifies the operation that produced a Value.
type Op = engine.Op

// Operation tags.
const (
	OpLeaf    = engine.OpLeaf
	OpAdd     = engine.OpAdd
	OpMul     = engine.OpMul
	OpPow     = engine.OpPow
	OpSigmoid = engine.OpSigmoid
	OpReLU    = engine.OpReLU
)

// New creates a leaf value from a number.
func New(data float64) *Value {
	return engine.New(data)
}

// NewLabeled creates a leaf value with a display label.
func NewLabeled(data float64, label string) *Value {
	return engine.NewLabeled(data, label)
}

// Const promotes a plain number to a constant leaf.
func Const(data float64) *Value {
	return engine.Const(data)
}
