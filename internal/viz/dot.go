package viz

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/gograd-ml/gograd/internal/engine"
)

// Options configures DOT output.
type Options struct {
	// Rankdir is the graph layout direction: "LR" (default) or "TB".
	Rankdir string
}

// DOT builds Graphviz source for the graph rooted at root.
//
// Every value becomes a record-shaped node showing its label (if any),
// data and gradient. Non-leaf values additionally get a small satellite
// node carrying the operation tag, wired between the operands and the
// result.
func DOT(root *engine.Value, opts Options) (string, error) {
	rankdir := opts.Rankdir
	if rankdir == "" {
		rankdir = "LR"
	}
	if rankdir != "LR" && rankdir != "TB" {
		return "", errors.Errorf("viz: rankdir must be \"LR\" or \"TB\", got %q", rankdir)
	}

	nodes, edges := Trace(root)

	var sb strings.Builder
	sb.WriteString("digraph ComputationGraph {\n")
	fmt.Fprintf(&sb, "  rankdir=%s;\n", rankdir)
	sb.WriteString("  node [fontname=\"Arial\"];\n\n")

	for _, n := range nodes {
		fmt.Fprintf(&sb, "  %s [label=\"%s\", shape=record];\n", nodeID(n), recordLabel(n))
		if !n.Operation().IsLeaf() {
			fmt.Fprintf(&sb, "  %s [label=\"%s\"];\n", opID(n), escape(string(n.Operation())))
			fmt.Fprintf(&sb, "  %s -> %s;\n", opID(n), nodeID(n))
		}
	}

	sb.WriteString("\n")
	for _, e := range edges {
		// Operands feed the consumer's op node, which feeds the result.
		fmt.Fprintf(&sb, "  %s -> %s;\n", nodeID(e.From), opID(e.To))
	}

	sb.WriteString("}\n")
	return sb.String(), nil
}

// WriteDOT writes the graph's DOT source to a file.
func WriteDOT(root *engine.Value, path string, opts Options) error {
	src, err := DOT(root, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		return errors.Wrapf(err, "viz: writing DOT file %s", path)
	}
	return nil
}

// nodeID returns a stable DOT identifier derived from the node pointer.
func nodeID(n *engine.Value) string {
	return fmt.Sprintf("n%p", n)
}

// opID returns the identifier of a node's satellite operation node.
func opID(n *engine.Value) string {
	return fmt.Sprintf("op_n%p", n)
}

// recordLabel formats the { label | data | grad } record for a node.
func recordLabel(n *engine.Value) string {
	parts := make([]string, 0, 3)
	if n.Label() != "" {
		parts = append(parts, escape(n.Label()))
	}
	parts = append(parts,
		fmt.Sprintf("data %.4f", n.Data()),
		fmt.Sprintf("grad %.4f", n.Grad()),
	)
	return "{ " + strings.Join(parts, " | ") + " }"
}

// escape quotes characters that are special inside DOT labels.
func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "{", `\{`)
	s = strings.ReplaceAll(s, "}", `\}`)
	return s
}
