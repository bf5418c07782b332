package engine

import "math"

// Sigmoid returns σ(v) = 1 / (1 + exp(-v)).
//
// Backward pass uses the already-computed output:
//
//	dσ/dx = σ(x) * (1 - σ(x))
//	grad_x += out * (1 - out) * outGrad
func (v *Value) Sigmoid() *Value {
	out := &Value{
		data: 1.0 / (1.0 + math.Exp(-v.data)),
		op:   OpSigmoid,
		prev: []*Value{v},
	}
	out.backward = func() {
		v.grad += out.data * (1 - out.data) * out.grad
	}
	return out
}

// ReLU returns max(0, v).
//
// Backward pass:
//
//	grad_x += outGrad if the input was positive, else 0
//
// The derivative at exactly zero is taken as zero.
func (v *Value) ReLU() *Value {
	data := v.data
	if data <= 0 {
		data = 0
	}
	out := &Value{
		data: data,
		op:   OpReLU,
		prev: []*Value{v},
	}
	out.backward = func() {
		if out.data > 0 {
			v.grad += out.grad
		}
	}
	return out
}
