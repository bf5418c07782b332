package viz

import (
	"os/exec"

	"github.com/pkg/errors"
)

// RenderPNG converts a DOT file to PNG using the system Graphviz
// installation.
//
// Returns a wrapped error if the `dot` binary is not on PATH or the
// conversion fails; the DOT file itself remains usable either way.
func RenderPNG(dotPath, pngPath string) error {
	if _, err := exec.LookPath("dot"); err != nil {
		return errors.Wrap(err, "viz: graphviz 'dot' binary not found (install graphviz to render PNGs)")
	}

	out, err := exec.Command("dot", "-Tpng", dotPath, "-o", pngPath).CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, "viz: dot failed: %s", out)
	}
	return nil
}
