package nn

import "github.com/gograd-ml/gograd/internal/engine"

// MLP is a multi-layer perceptron built from fully connected layers.
//
// All hidden layers use ReLU; the output layer is linear so the raw
// scores can feed any loss.
//
// Example:
//
//	model := nn.NewMLP(2, []int{16, 16, 1}) // 2 inputs, two hidden layers, 1 output
//	score := model.Forward(x)[0]
type MLP struct {
	layers []*Layer
}

// NewMLP creates an MLP with the given input width and per-layer output
// widths. The last entry of nouts is the output width.
func NewMLP(nin int, nouts []int) *MLP {
	sizes := append([]int{nin}, nouts...)
	layers := make([]*Layer, len(nouts))
	for i := range layers {
		lastLayer := i == len(nouts)-1
		layers[i] = NewLayer(sizes[i], sizes[i+1], !lastLayer)
	}
	return &MLP{layers: layers}
}

// Forward runs the input vector through every layer.
func (m *MLP) Forward(x []*engine.Value) []*engine.Value {
	for _, layer := range m.layers {
		x = layer.Forward(x)
	}
	return x
}

// Parameters returns the parameters of every layer.
func (m *MLP) Parameters() []*engine.Value {
	var params []*engine.Value
	for _, layer := range m.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// ZeroGrad resets all parameter gradients.
func (m *MLP) ZeroGrad() {
	zeroGrad(m.Parameters())
}
