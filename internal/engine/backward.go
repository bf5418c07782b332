package engine

// Backward runs reverse-mode differentiation with v as the root.
//
// Algorithm:
//  1. Topologically sort every node reachable from v through operand
//     edges (post-order DFS with a visited set keyed by node pointer,
//     so shared operands are visited once).
//  2. Set v.grad = 1 (d(output)/d(output)).
//  3. Walk the order in reverse (consumers before producers) and
//     invoke each node's backward closure, which adds its scaled
//     gradient into its operands.
//
// Gradients accumulate: calling Backward twice on the same root without
// resetting doubles every gradient. Reset with ZeroGrad (or
// Optimizer.ZeroGrad) between independent passes.
//
// Backward is conventionally called on the final scalar output of an
// expression. Calling it on an intermediate node differentiates that
// node with respect to its own subgraph only.
func (v *Value) Backward() {
	order := topoSort(v)

	v.grad = 1.0
	for i := len(order) - 1; i >= 0; i-- {
		if order[i].backward != nil {
			order[i].backward()
		}
	}
}

// topoSort returns the nodes reachable from root in topological order:
// every node appears after all of its operands (producers last when the
// slice is read in reverse).
//
// The traversal is iterative with an explicit stack so that very deep
// expression chains cannot exhaust goroutine stack space.
func topoSort(root *Value) []*Value {
	type frame struct {
		node *Value
		next int // index of the next operand to visit
	}

	visited := map[*Value]struct{}{root: {}}
	order := make([]*Value, 0, 64)
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.prev) {
			child := top.node.prev[top.next]
			top.next++
			if _, seen := visited[child]; !seen {
				visited[child] = struct{}{}
				stack = append(stack, frame{node: child})
			}
			continue
		}
		// All operands visited: emit post-order.
		order = append(order, top.node)
		stack = stack[:len(stack)-1]
	}

	return order
}
