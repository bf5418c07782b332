package viz_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gograd-ml/gograd/internal/engine"
	"github.com/gograd-ml/gograd/internal/viz"
)

// buildDiamond returns a graph where a feeds two consumers:
// q = a*b, r = a + q.
func buildDiamond() (a, b, r *engine.Value) {
	a = engine.NewLabeled(2.0, "a")
	b = engine.NewLabeled(5.0, "b")
	q := a.Mul(b)
	r = a.Add(q)
	return a, b, r
}

// TestTrace_DeduplicatesSharedOperands: the fan-out node appears once
// but contributes two edges.
func TestTrace_DeduplicatesSharedOperands(t *testing.T) {
	a, b, r := buildDiamond()

	nodes, edges := viz.Trace(r)

	// Four nodes total (a, b, q, r); a is shared but listed once.
	require.Len(t, nodes, 4)
	require.Len(t, edges, 4)

	count := map[*engine.Value]int{}
	for _, n := range nodes {
		count[n]++
	}
	assert.Equal(t, 1, count[a])
	assert.Equal(t, 1, count[b])

	// a appears as operand of both the multiply and the add.
	fromA := 0
	for _, e := range edges {
		if e.From == a {
			fromA++
		}
	}
	assert.Equal(t, 2, fromA)
}

// TestTrace_Deterministic: identical traversals for the same graph.
func TestTrace_Deterministic(t *testing.T) {
	_, _, r := buildDiamond()

	first, _ := viz.Trace(r)
	second, _ := viz.Trace(r)
	require.Equal(t, first, second)
}

// TestDOT_Structure checks the emitted Graphviz source.
func TestDOT_Structure(t *testing.T) {
	_, _, r := buildDiamond()
	r.Backward()

	src, err := viz.DOT(r, viz.Options{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(src, "digraph ComputationGraph {"))
	assert.Contains(t, src, "rankdir=LR;")
	assert.Contains(t, src, "shape=record")

	// Labeled leaf with its data and post-backward gradient. a's
	// gradient sums both paths: 1 + b = 6.
	assert.Contains(t, src, "{ a | data 2.0000 | grad 6.0000 }")
	assert.Contains(t, src, "{ b | data 5.0000 | grad 2.0000 }")

	// Satellite op nodes for the multiply and the add.
	assert.Contains(t, src, "[label=\"*\"]")
	assert.Contains(t, src, "[label=\"+\"]")
}

// TestDOT_RankdirValidation rejects anything but LR and TB.
func TestDOT_RankdirValidation(t *testing.T) {
	_, _, r := buildDiamond()

	_, err := viz.DOT(r, viz.Options{Rankdir: "TB"})
	require.NoError(t, err)

	_, err = viz.DOT(r, viz.Options{Rankdir: "BT"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rankdir")
}

// TestWriteDOT writes the source to disk.
func TestWriteDOT(t *testing.T) {
	_, _, r := buildDiamond()

	path := filepath.Join(t.TempDir(), "graph.dot")
	require.NoError(t, viz.WriteDOT(r, path, viz.Options{Rankdir: "TB"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rankdir=TB;")
}

// TestRenderPNG converts the DOT output when Graphviz is installed.
func TestRenderPNG(t *testing.T) {
	if _, err := exec.LookPath("dot"); err != nil {
		t.Skip("graphviz not installed")
	}

	_, _, r := buildDiamond()
	dir := t.TempDir()
	dotPath := filepath.Join(dir, "graph.dot")
	pngPath := filepath.Join(dir, "graph.png")

	require.NoError(t, viz.WriteDOT(r, dotPath, viz.Options{}))
	require.NoError(t, viz.RenderPNG(dotPath, pngPath))

	info, err := os.Stat(pngPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

// TestLossCurve renders an SVG plot for a loss series.
func TestLossCurve(t *testing.T) {
	losses := []float64{1.2, 0.8, 0.5, 0.31, 0.2}

	svg, err := viz.LossCurve(losses, 800, 480)
	require.NoError(t, err)
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "Training loss")

	_, err = viz.LossCurve(nil, 800, 480)
	require.Error(t, err)
}

// TestWriteLossCurve writes the SVG to disk.
func TestWriteLossCurve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loss.svg")
	require.NoError(t, viz.WriteLossCurve(path, []float64{1, 0.5, 0.25}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}
