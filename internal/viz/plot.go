package viz

import (
	"bytes"
	"os"

	mg "github.com/erkkah/margaid"
	"github.com/pkg/errors"
)

// LossCurve renders an SVG line plot of a training loss series.
// The x axis is the 1-based epoch number.
func LossCurve(losses []float64, width, height int) (string, error) {
	if len(losses) == 0 {
		return "", errors.New("viz: no loss samples to plot")
	}

	series := mg.NewSeries(mg.Titled("training loss"))
	for i, loss := range losses {
		series.Add(mg.MakeValue(float64(i+1), loss))
	}

	diagram := mg.New(width, height,
		mg.WithAutorange(mg.XAxis, series),
		mg.WithAutorange(mg.YAxis, series),
		mg.WithInset(70),
		mg.WithPadding(2),
		mg.WithBackgroundColor("#f8f8f8"),
	)
	diagram.Line(series, mg.UsingAxes(mg.XAxis, mg.YAxis), mg.UsingStrokeWidth(2))
	diagram.Axis(series, mg.XAxis, diagram.ValueTicker('f', 0, 10), false, "Epoch")
	diagram.Axis(series, mg.YAxis, diagram.ValueTicker('f', 3, 10), true, "Loss")
	diagram.Frame()
	diagram.Title("Training loss")

	buf := bytes.NewBuffer(nil)
	if err := diagram.Render(buf); err != nil {
		return "", errors.Wrap(err, "viz: rendering loss curve")
	}
	return buf.String(), nil
}

// WriteLossCurve writes the loss plot as an 800×480 SVG file.
func WriteLossCurve(path string, losses []float64) error {
	svg, err := LossCurve(losses, 800, 480)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		return errors.Wrapf(err, "viz: writing loss plot %s", path)
	}
	return nil
}
