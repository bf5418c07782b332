package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gograd-ml/gograd/internal/engine"
	"github.com/gograd-ml/gograd/internal/nn"
)

// setParams overwrites a module's parameter values in order.
func setParams(params []*engine.Value, values []float64) {
	for i, p := range params {
		p.SetData(values[i])
	}
}

// TestNeuron_ParameterCount checks fan-in weights plus one bias.
func TestNeuron_ParameterCount(t *testing.T) {
	n := nn.NewNeuron(3, true)
	params := n.Parameters()
	require.Len(t, params, 4)

	// Weights start in [-1, 1), bias at zero.
	for _, w := range params[:3] {
		assert.GreaterOrEqual(t, w.Data(), -1.0)
		assert.Less(t, w.Data(), 1.0)
	}
	assert.Zero(t, params[3].Data())
}

// TestNeuron_ForwardLinear pins the weights and checks the dot product.
func TestNeuron_ForwardLinear(t *testing.T) {
	n := nn.NewNeuron(2, false)
	setParams(n.Parameters(), []float64{2, -1, 0.5}) // w0, w1, b

	x := []*engine.Value{engine.New(3), engine.New(4)}
	out := n.Forward(x)

	// 2*3 + (-1)*4 + 0.5 = 2.5
	assert.InDelta(t, 2.5, out.Data(), 1e-12)
}

// TestNeuron_ForwardNonlinear checks the ReLU clamp on a negative
// pre-activation.
func TestNeuron_ForwardNonlinear(t *testing.T) {
	n := nn.NewNeuron(1, true)
	setParams(n.Parameters(), []float64{-2, 0}) // w, b

	out := n.Forward([]*engine.Value{engine.New(3)})
	assert.Zero(t, out.Data())
}

// TestNeuron_InputMismatchPanics: shape misuse fails fast.
func TestNeuron_InputMismatchPanics(t *testing.T) {
	n := nn.NewNeuron(2, true)
	require.Panics(t, func() {
		n.Forward([]*engine.Value{engine.New(1)})
	})
}

// TestLayer_Shapes checks output width and parameter count.
func TestLayer_Shapes(t *testing.T) {
	l := nn.NewLayer(3, 5, true)

	x := []*engine.Value{engine.New(1), engine.New(2), engine.New(3)}
	out := l.Forward(x)
	assert.Len(t, out, 5)

	// 5 neurons × (3 weights + 1 bias)
	assert.Len(t, l.Parameters(), 20)
}

// TestMLP_Shapes checks layer stacking and the parameter count formula.
func TestMLP_Shapes(t *testing.T) {
	m := nn.NewMLP(2, []int{4, 4, 1})

	out := m.Forward([]*engine.Value{engine.New(0.5), engine.New(-0.5)})
	require.Len(t, out, 1)

	// (2+1)*4 + (4+1)*4 + (4+1)*1 = 12 + 20 + 5 = 37
	assert.Len(t, m.Parameters(), 37)
}

// TestMLP_GradientsFlow verifies backward reaches the first layer's
// parameters through the whole stack.
func TestMLP_GradientsFlow(t *testing.T) {
	m := nn.NewMLP(2, []int{3, 1})

	out := m.Forward([]*engine.Value{engine.New(1.0), engine.New(-2.0)})[0]
	out.Backward()

	nonzero := 0
	for _, p := range m.Parameters() {
		if p.Grad() != 0 {
			nonzero++
		}
	}
	// ReLU may gate some paths, but the output bias always gets grad 1.
	assert.Greater(t, nonzero, 0)

	m.ZeroGrad()
	for _, p := range m.Parameters() {
		assert.Zero(t, p.Grad())
	}
}

// TestMSELoss checks the zero case, the value, and the gradient.
func TestMSELoss(t *testing.T) {
	same := []*engine.Value{engine.New(1), engine.New(2)}
	assert.Zero(t, nn.MSELoss(same, same).Data())

	pred := []*engine.Value{engine.New(3), engine.New(-1)}
	target := []*engine.Value{engine.New(1), engine.New(-1)}
	loss := nn.MSELoss(pred, target)

	// ((3-1)² + 0) / 2 = 2
	assert.InDelta(t, 2.0, loss.Data(), 1e-12)

	loss.Backward()
	// d/dp₀ mean((p-t)²) = 2(p₀-t₀)/n = 2*2/2 = 2
	assert.InDelta(t, 2.0, pred[0].Grad(), 1e-12)
	assert.Zero(t, pred[1].Grad())
}

// TestMSELoss_MismatchPanics: misuse fails fast.
func TestMSELoss_MismatchPanics(t *testing.T) {
	require.Panics(t, func() {
		nn.MSELoss([]*engine.Value{engine.New(1)}, nil)
	})
}

// TestHingeLoss checks satisfied margins, violations, and label checks.
func TestHingeLoss(t *testing.T) {
	// Both samples clear the margin: loss is zero.
	cleared := []*engine.Value{engine.New(2), engine.New(-3)}
	assert.Zero(t, nn.HingeLoss(cleared, []float64{1, -1}).Data())

	// score 0.5 with label +1 violates by 0.5; second sample clears.
	scores := []*engine.Value{engine.New(0.5), engine.New(-2)}
	loss := nn.HingeLoss(scores, []float64{1, -1})
	assert.InDelta(t, 0.25, loss.Data(), 1e-12)

	// Violated sample's gradient pushes the score up (-y/n = -0.5).
	loss.Backward()
	assert.InDelta(t, -0.5, scores[0].Grad(), 1e-12)
	assert.Zero(t, scores[1].Grad())

	require.Panics(t, func() {
		nn.HingeLoss(cleared, []float64{1, 0})
	})
}

// TestL2Penalty checks the weight-decay term.
func TestL2Penalty(t *testing.T) {
	params := []*engine.Value{engine.New(2), engine.New(-3)}
	penalty := nn.L2Penalty(params, 0.1)

	// 0.1 * (4 + 9) = 1.3
	assert.InDelta(t, 1.3, penalty.Data(), 1e-12)

	penalty.Backward()
	// d/dp 0.1·p² = 0.2p
	assert.InDelta(t, 0.4, params[0].Grad(), 1e-12)
	assert.InDelta(t, -0.6, params[1].Grad(), 1e-12)

	assert.Zero(t, nn.L2Penalty(nil, 0.1).Data())
}
