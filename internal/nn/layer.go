package nn

import "github.com/gograd-ml/gograd/internal/engine"

// Layer is a fully connected layer of neurons sharing one input vector.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer mapping nin inputs to nout outputs.
func NewLayer(nin, nout int, nonlinear bool) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, nonlinear)
	}
	return &Layer{neurons: neurons}
}

// Forward computes every neuron's output for the input vector.
func (l *Layer) Forward(x []*engine.Value) []*engine.Value {
	out := make([]*engine.Value, len(l.neurons))
	for i, n := range l.neurons {
		out[i] = n.Forward(x)
	}
	return out
}

// Parameters returns the parameters of every neuron in the layer.
func (l *Layer) Parameters() []*engine.Value {
	var params []*engine.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// ZeroGrad resets all parameter gradients.
func (l *Layer) ZeroGrad() {
	zeroGrad(l.Parameters())
}
