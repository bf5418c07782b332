// Copyright 2025 The GoGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package viz renders computation graphs and training curves.
//
// The package reads a finished graph through the engine's accessors
// and never mutates it. Graphs are emitted as Graphviz DOT source and
// can be rendered to PNG when the `dot` binary is installed; training
// loss series are plotted as SVG.
//
// Example:
//
//	y := x.Mul(w).Add(b).Sigmoid()
//	y.Backward()
//
//	if err := viz.WriteDOT(y, "graph.dot", viz.Options{Rankdir: "TB"}); err != nil {
//	    log.Fatal(err)
//	}
package viz

import (
	"github.com/gograd-ml/gograd/internal/engine"
	"github.com/gograd-ml/gograd/internal/viz"
)

// Options configures DOT output.
type Options = viz.Options

// Edge is one operand-to-consumer dependency in the graph.
type Edge = viz.Edge

// Trace collects every node and operand edge reachable from root.
func Trace(root *engine.Value) ([]*engine.Value, []Edge) {
	return viz.Trace(root)
}

// DOT builds Graphviz source for the graph rooted at root.
func DOT(root *engine.Value, opts Options) (string, error) {
	return viz.DOT(root, opts)
}

// WriteDOT writes the graph's DOT source to a file.
func WriteDOT(root *engine.Value, path string, opts Options) error {
	return viz.WriteDOT(root, path, opts)
}

// RenderPNG converts a DOT file to PNG using the system Graphviz
// installation.
func RenderPNG(dotPath, pngPath string) error {
	return viz.RenderPNG(dotPath, pngPath)
}

// LossCurve renders an SVG line plot of a training loss series.
func LossCurve(losses []float64, width, height int) (string, error) {
	return viz.LossCurve(losses, width, height)
}

// WriteLossCurve writes the loss plot as an SVG file.
func WriteLossCurve(path string, losses []float64) error {
	return viz.WriteLossCurve(path, losses)
}
