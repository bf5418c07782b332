// Package viz renders computation graphs for inspection.
//
// The package is a read-only consumer of the engine: it walks a
// finished graph through the Value accessors and never mutates values
// or gradients. It emits Graphviz DOT source (optionally rendered to
// PNG through the system `dot` binary) and SVG loss-curve plots for
// training runs.
package viz

import "github.com/gograd-ml/gograd/internal/engine"

// Edge is one operand-to-consumer dependency in the graph.
type Edge struct {
	From *engine.Value // operand
	To   *engine.Value // consumer
}

// Trace collects every node and operand edge reachable from root.
//
// Shared operands appear once. Order is the depth-first discovery
// order from the root, so repeated calls on the same graph return
// identical slices.
func Trace(root *engine.Value) ([]*engine.Value, []Edge) {
	var nodes []*engine.Value
	var edges []Edge
	seen := make(map[*engine.Value]struct{})

	stack := []*engine.Value{root}
	seen[root] = struct{}{}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes = append(nodes, n)

		for _, operand := range n.Operands() {
			edges = append(edges, Edge{From: operand, To: n})
			if _, ok := seen[operand]; !ok {
				seen[operand] = struct{}{}
				stack = append(stack, operand)
			}
		}
	}

	return nodes, edges
}
