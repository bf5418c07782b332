// Package data provides toy datasets for the training demos.
package data

import (
	"math"
	"math/rand"
)

// Dataset is a small in-memory 2D binary classification set with ±1
// labels.
type Dataset struct {
	X [][2]float64 // sample coordinates
	Y []float64    // labels, +1 or -1
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.X)
}

// Moons generates the classic two-interleaved-half-circles set: n
// samples split evenly between an upper arc (label +1) and a lower,
// shifted arc (label -1), with gaussian noise of the given standard
// deviation added to both coordinates.
//
// Passing a seeded rng makes the set reproducible.
func Moons(n int, noise float64, rng *rand.Rand) *Dataset {
	half := n / 2
	d := &Dataset{
		X: make([][2]float64, 0, n),
		Y: make([]float64, 0, n),
	}

	for i := 0; i < half; i++ {
		theta := rng.Float64() * math.Pi
		x := math.Cos(theta) + rng.NormFloat64()*noise
		y := math.Sin(theta) + rng.NormFloat64()*noise
		d.X = append(d.X, [2]float64{x, y})
		d.Y = append(d.Y, 1)
	}
	for i := half; i < n; i++ {
		theta := rng.Float64() * math.Pi
		x := 1 - math.Cos(theta) + rng.NormFloat64()*noise
		y := 0.5 - math.Sin(theta) + rng.NormFloat64()*noise
		d.X = append(d.X, [2]float64{x, y})
		d.Y = append(d.Y, -1)
	}

	return d
}
