// Package engine implements scalar reverse-mode automatic differentiation.
//
// The central type is Value: one node in a directed acyclic computation
// graph. Every arithmetic operation allocates a fresh Value holding the
// forward result, references to its operands, and a backward closure
// that knows the local derivative of the operation. Calling Backward on
// the final output walks the graph in reverse topological order and
// accumulates d(output)/d(node) into every reachable node.
//
// Usage:
//
//	x := engine.NewLabeled(0.5, "x")
//	w := engine.NewLabeled(3.14, "w")
//	b := engine.NewLabeled(-2.0, "b")
//
//	y := x.Mul(w).Add(b).Sigmoid()
//	y.Backward()
//
//	fmt.Println(x.Grad()) // dy/dx
//
// The graph is a DAG, not a tree: a Value may feed several downstream
// operations, and its gradient is the sum of the contributions along
// every path to the output.
package engine

import "fmt"

// Value is one scalar node in the computation graph.
//
// Fields:
//   - data: forward result of the operation (or the raw input for leaves)
//   - grad: accumulated d(output)/d(this), valid after Backward
//   - prev: ordered operands this node was computed from (nil for leaves)
//   - op: tag identifying the producing operation
//   - backward: closure that adds this node's scaled gradient into its
//     operands; attached at construction, nil for leaves
//
// Values are shared by pointer. The same node may be an operand of many
// consumers; it lives as long as anything in the graph references it.
type Value struct {
	data  float64
	grad  float64
	label string
	op    Op
	prev  []*Value

	backward func()
}

// New creates a leaf value from a number.
func New(data float64) *Value {
	return &Value{data: data}
}

// NewLabeled creates a leaf value with a display label.
// The label has no semantic role; it only shows up in String output
// and graph visualizations.
func NewLabeled(data float64, label string) *Value {
	return &Value{data: data, label: label}
}

// Const promotes a plain number to a constant leaf.
//
// Constants participate in the graph like any other leaf: backward
// still accumulates a gradient into them, it is simply never read.
// The scalar convenience methods (AddScalar, MulScalar, ...) use this
// promotion internally.
func Const(data float64) *Value {
	return &Value{data: data}
}

// Data returns the forward value.
func (v *Value) Data() float64 {
	return v.data
}

// SetData overwrites the forward value.
//
// Used by optimizers to apply parameter updates. Changing data does NOT
// re-run any forward computation; downstream nodes keep their old
// values until the expression is rebuilt.
func (v *Value) SetData(data float64) {
	v.data = data
}

// Grad returns the accumulated gradient d(output)/d(v).
// Zero before the first Backward call.
func (v *Value) Grad() float64 {
	return v.grad
}

// ZeroGrad resets the accumulated gradient to zero.
//
// Gradients accumulate across Backward calls, so this must be called
// between independent backward passes (optimizers do it for their
// parameters via Optimizer.ZeroGrad).
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// Label returns the display label, empty if none was set.
func (v *Value) Label() string {
	return v.label
}

// SetLabel sets the display label.
func (v *Value) SetLabel(label string) {
	v.label = label
}

// Operation returns the tag of the operation that produced this value.
// Leaves return OpLeaf.
func (v *Value) Operation() Op {
	return v.op
}

// Operands returns the nodes this value was computed from, in operation
// order. Leaves return nil. The returned slice is a copy; mutating it
// does not affect the graph.
func (v *Value) Operands() []*Value {
	if v.prev == nil {
		return nil
	}
	out := make([]*Value, len(v.prev))
	copy(out, v.prev)
	return out
}

// String renders the value in the Value(data=..., grad=...) form.
func (v *Value) String() string {
	if v.label != "" {
		return fmt.Sprintf("Value(label=%s, data=%g, grad=%g)", v.label, v.data, v.grad)
	}
	return fmt.Sprintf("Value(data=%g, grad=%g)", v.data, v.grad)
}
