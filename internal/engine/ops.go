package engine

import "math"

// Add returns a new value v + other.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a += outGrad
//   - d(a+b)/db = 1, so grad_b += outGrad
func (v *Value) Add(other *Value) *Value {
	out := &Value{
		data: v.data + other.data,
		op:   OpAdd,
		prev: []*Value{v, other},
	}
	out.backward = func() {
		v.grad += out.grad
		other.grad += out.grad
	}
	return out
}

// Mul returns a new value v * other.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a += b * outGrad
//   - d(a*b)/db = a, so grad_b += a * outGrad
func (v *Value) Mul(other *Value) *Value {
	out := &Value{
		data: v.data * other.data,
		op:   OpMul,
		prev: []*Value{v, other},
	}
	out.backward = func() {
		v.grad += other.data * out.grad
		other.grad += v.data * out.grad
	}
	return out
}

// Pow returns a new value v^exponent for a plain real exponent.
//
// The exponent is a constant, not a graph node: only the base receives
// a gradient.
//
// Backward pass:
//   - d(a^k)/da = k * a^(k-1), so grad_a += k * a^(k-1) * outGrad
//
// A negative base with a fractional exponent produces NaN per IEEE
// semantics; the engine does not intercept it.
func (v *Value) Pow(exponent float64) *Value {
	out := &Value{
		data: math.Pow(v.data, exponent),
		op:   powOp(exponent),
		prev: []*Value{v},
	}
	out.backward = func() {
		v.grad += exponent * math.Pow(v.data, exponent-1) * out.grad
	}
	return out
}

// Neg returns -v, implemented as multiplication by the constant -1.
func (v *Value) Neg() *Value {
	return v.Mul(Const(-1))
}

// Sub returns v - other, implemented as v + (-other).
func (v *Value) Sub(other *Value) *Value {
	return v.Add(other.Neg())
}

// Div returns v / other, implemented as v * other^-1.
//
// Division by a zero-valued node follows IEEE floating-point semantics
// (infinity or NaN); it is not special-cased.
func (v *Value) Div(other *Value) *Value {
	return v.Mul(other.Pow(-1))
}

// AddScalar returns v + c, promoting c to a constant leaf.
func (v *Value) AddScalar(c float64) *Value {
	return v.Add(Const(c))
}

// SubScalar returns v - c.
func (v *Value) SubScalar(c float64) *Value {
	return v.Add(Const(-c))
}

// MulScalar returns v * c, promoting c to a constant leaf.
func (v *Value) MulScalar(c float64) *Value {
	return v.Mul(Const(c))
}

// DivScalar returns v / c.
func (v *Value) DivScalar(c float64) *Value {
	return v.Mul(Const(c).Pow(-1))
}
