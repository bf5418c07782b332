package nn

import (
	"fmt"
	"math/rand"

	"github.com/gograd-ml/gograd/internal/engine"
)

// Neuron is a single unit: out = act(Σ wᵢ·xᵢ + b).
//
// Weights are initialized uniformly in [-1, 1), the bias to zero.
// Nonlinear neurons apply ReLU to the pre-activation; linear neurons
// (typically the output layer) return it unchanged.
type Neuron struct {
	weights   []*engine.Value
	bias      *engine.Value
	nonlinear bool
}

// NewNeuron creates a neuron with nin inputs.
func NewNeuron(nin int, nonlinear bool) *Neuron {
	weights := make([]*engine.Value, nin)
	for i := range weights {
		//nolint:gosec // math/rand is fine for weight initialization
		weights[i] = engine.New(rand.Float64()*2.0 - 1.0)
	}
	return &Neuron{
		weights:   weights,
		bias:      engine.New(0),
		nonlinear: nonlinear,
	}
}

// Forward computes the neuron's output for one input vector.
//
// Panics if the input length does not match the neuron's fan-in; shape
// misuse is a programming error, not a recoverable condition.
func (n *Neuron) Forward(x []*engine.Value) *engine.Value {
	if len(x) != len(n.weights) {
		panic(fmt.Sprintf("nn: neuron expects %d inputs, got %d", len(n.weights), len(x)))
	}

	act := n.bias
	for i, w := range n.weights {
		act = act.Add(w.Mul(x[i]))
	}

	if n.nonlinear {
		return act.ReLU()
	}
	return act
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*engine.Value {
	params := make([]*engine.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	params = append(params, n.bias)
	return params
}

// ZeroGrad resets all parameter gradients.
func (n *Neuron) ZeroGrad() {
	zeroGrad(n.Parameters())
}
