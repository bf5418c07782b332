// Package main provides the GoGrad command-line interface.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"

	"github.com/gograd-ml/gograd/internal/data"
	"github.com/gograd-ml/gograd/internal/engine"
	"github.com/gograd-ml/gograd/internal/nn"
	"github.com/gograd-ml/gograd/internal/optim"
	"github.com/gograd-ml/gograd/internal/viz"
)

const version = "v0.1.0-dev"

func main() {
	klog.InitFlags(nil)

	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("GoGrad %s\n", version)
	case "demo":
		runDemo(os.Args[2:])
	case "train":
		runTrain(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("GoGrad - Scalar Autodiff Engine for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Build a single sigmoid neuron, backpropagate, export the graph")
	fmt.Println("  train      Train an MLP on the two-moons dataset")
}

// runDemo builds y = sigmoid(x*w + b), runs backward, prints every
// node and writes the graph as Graphviz DOT (optionally PNG).
func runDemo(args []string) {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	out := fs.String("out", "graph.dot", "Output DOT file")
	rankdir := fs.String("rankdir", "LR", "Graph layout direction: LR or TB")
	render := fs.Bool("render", false, "Also render a PNG next to the DOT file (needs graphviz)")
	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}

	x := engine.NewLabeled(0.5, "x")
	w := engine.NewLabeled(3.14, "w")
	b := engine.NewLabeled(-2.0, "b")

	y := x.Mul(w).Add(b).Sigmoid()
	y.SetLabel("y")
	y.Backward()

	for _, v := range []*engine.Value{x, w, b, y} {
		fmt.Println(v)
	}

	if err := viz.WriteDOT(y, *out, viz.Options{Rankdir: *rankdir}); err != nil {
		klog.Exitf("writing graph: %v", err)
	}
	fmt.Printf("Wrote %s\n", *out)

	if *render {
		png := strings.TrimSuffix(*out, ".dot") + ".png"
		if err := viz.RenderPNG(*out, png); err != nil {
			klog.Warningf("PNG render skipped: %v", err)
		} else {
			fmt.Printf("Wrote %s\n", png)
		}
	}
}

// runTrain fits an MLP classifier on the two-moons dataset with hinge
// loss, L2 regularization and SGD, then writes the loss curve as SVG.
func runTrain(args []string) {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	samples := fs.Int("samples", 200, "Number of training samples")
	noise := fs.Float64("noise", 0.1, "Dataset noise standard deviation")
	epochs := fs.Int("epochs", 100, "Number of training epochs")
	lr := fs.Float64("lr", 0.05, "Learning rate")
	momentum := fs.Float64("momentum", 0.9, "SGD momentum")
	alpha := fs.Float64("alpha", 1e-4, "L2 regularization strength")
	hidden := fs.String("hidden", "16,16", "Comma-separated hidden layer sizes")
	seed := fs.Int64("seed", 42, "Dataset RNG seed")
	plot := fs.String("plot", "loss.svg", "Loss curve output file (empty to skip)")
	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}

	layout, err := parseLayout(*hidden)
	if err != nil {
		klog.Exitf("invalid -hidden: %v", err)
	}

	set := data.Moons(*samples, *noise, rand.New(rand.NewSource(*seed)))
	model := nn.NewMLP(2, append(layout, 1))
	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: *lr, Momentum: *momentum})

	fmt.Printf("Training MLP(2 -> %s -> 1) on %s two-moons samples\n",
		*hidden, humanize.Comma(int64(set.Len())))
	fmt.Printf("Model has %s trainable parameters\n",
		humanize.Comma(int64(len(model.Parameters()))))

	losses := make([]float64, 0, *epochs)
	bar := progressbar.Default(int64(*epochs), "training")
	for epoch := 0; epoch < *epochs; epoch++ {
		loss, acc := trainEpoch(model, optimizer, set, *alpha)
		losses = append(losses, loss)
		_ = bar.Add(1)
		klog.V(1).Infof("epoch %d: loss=%.4f accuracy=%.1f%%", epoch+1, loss, 100*acc)
	}

	finalLoss := losses[len(losses)-1]
	_, finalAcc := evaluate(model, set)
	fmt.Printf("Final loss %.4f, accuracy %.1f%%\n", finalLoss, 100*finalAcc)

	if *plot != "" {
		if err := viz.WriteLossCurve(*plot, losses); err != nil {
			klog.Exitf("writing loss plot: %v", err)
		}
		fmt.Printf("Wrote %s\n", *plot)
	}
}

// trainEpoch runs one full-batch update and returns the epoch's loss
// and training accuracy.
func trainEpoch(model *nn.MLP, optimizer optim.Optimizer, set *data.Dataset, alpha float64) (float64, float64) {
	optimizer.ZeroGrad()

	scores, correct := forwardAll(model, set)
	loss := nn.HingeLoss(scores, set.Y)
	if alpha > 0 {
		loss = loss.Add(nn.L2Penalty(model.Parameters(), alpha))
	}

	loss.Backward()
	optimizer.Step()

	return loss.Data(), float64(correct) / float64(set.Len())
}

// evaluate computes scores and accuracy without updating the model.
func evaluate(model *nn.MLP, set *data.Dataset) ([]*engine.Value, float64) {
	scores, correct := forwardAll(model, set)
	return scores, float64(correct) / float64(set.Len())
}

// forwardAll scores every sample and counts sign agreements.
func forwardAll(model *nn.MLP, set *data.Dataset) ([]*engine.Value, int) {
	scores := make([]*engine.Value, set.Len())
	correct := 0
	for i, p := range set.X {
		x := []*engine.Value{engine.New(p[0]), engine.New(p[1])}
		scores[i] = model.Forward(x)[0]
		if (scores[i].Data() > 0) == (set.Y[i] > 0) {
			correct++
		}
	}
	return scores, correct
}

// parseLayout parses "16,16" into []int{16, 16}.
func parseLayout(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	layout := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("layer size %q must be a positive integer", p)
		}
		layout = append(layout, n)
	}
	return layout, nil
}
