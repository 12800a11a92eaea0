// seehuhn.de/go/pick - pick markers for scatter plots
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pick

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// DefaultRadius is the marker radius used when a dataset has no radius
// array.
const DefaultRadius = 1.0

// Sample describes a single pick marker in data space.
type Sample struct {
	X, Y     float64
	Rotation float64 // degrees, clockwise
	Radius   float64
}

// Dataset holds the markers of one glyph as parallel arrays.
// X, Y and Rotation must have the same length. Radius is either nil, in
// which case every marker has radius [DefaultRadius], or has the same
// length as X.
type Dataset struct {
	X, Y     []float64
	Rotation []float64
	Radius   []float64
}

// ErrLength is returned when the arrays of a dataset have different
// lengths.
var ErrLength = errors.New("dataset arrays have different lengths")

// Len returns the number of markers in the dataset.
func (d *Dataset) Len() int {
	return len(d.X)
}

// Check verifies that the array lengths of the dataset are consistent.
func (d *Dataset) Check() error {
	n := len(d.X)
	if len(d.Y) != n || len(d.Rotation) != n {
		return fmt.Errorf("%w: len(x)=%d, len(y)=%d, len(rot)=%d",
			ErrLength, n, len(d.Y), len(d.Rotation))
	}
	if d.Radius != nil && len(d.Radius) != n {
		return fmt.Errorf("%w: len(x)=%d, len(radius)=%d",
			ErrLength, n, len(d.Radius))
	}
	return nil
}

// Sample returns marker i.
func (d *Dataset) Sample(i int) Sample {
	r := DefaultRadius
	if d.Radius != nil {
		r = d.Radius[i]
	}
	return Sample{X: d.X[i], Y: d.Y[i], Rotation: d.Rotation[i], Radius: r}
}

// radii returns the radius array, filled in with DefaultRadius if needed.
func (d *Dataset) radii() []float64 {
	if d.Radius != nil {
		return d.Radius
	}
	res := make([]float64, len(d.X))
	for i := range res {
		res[i] = DefaultRadius
	}
	return res
}

// SpatialIndex receives the bounding boxes of a glyph's elements, one call
// per element in index order.
type SpatialIndex interface {
	// Add records the bounding box of the next element. The argument
	// order is the order returned by [TightBBox].
	Add(minX, maxY, maxX, minY float64)

	// AddEmpty records that the next element has no valid bounding box.
	AddEmpty()
}

// Generation holds the Bézier curves derived from one version of a
// dataset, as parallel arrays in data space.
//
// A Generation is never modified after it has been built. When the
// underlying dataset changes, a new Generation replaces the old one.
type Generation struct {
	X0, Y0   []float64
	X1, Y1   []float64
	CX0, CY0 []float64
	CX1, CY1 []float64
}

// NewGeneration computes the pick curves for all markers in d, using the
// given geometric convention. The end point arrays X1 and Y1 share their
// storage with X0 and Y0.
func NewGeneration(d *Dataset, v Variant) (*Generation, error) {
	if err := d.Check(); err != nil {
		return nil, err
	}

	n := d.Len()
	g := &Generation{
		X0:  make([]float64, n),
		Y0:  make([]float64, n),
		CX0: make([]float64, n),
		CY0: make([]float64, n),
		CX1: make([]float64, n),
		CY1: make([]float64, n),
	}
	radius := d.radii()
	for i := range n {
		off := NewOffsets(radius[i])
		g.X0[i], g.Y0[i], g.CX0[i], g.CX1[i], g.CY0[i], g.CY1[i] =
			v.ToBezier(d.X[i], d.Y[i], d.Rotation[i], off)
	}
	g.X1 = g.X0
	g.Y1 = g.Y0
	return g, nil
}

// NewGenerationFromCurves wraps existing curve arrays into a Generation.
// All eight arrays must have the same length. The arrays are used
// directly, not copied.
func NewGenerationFromCurves(x0, y0, x1, y1, cx0, cy0, cx1, cy1 []float64) (*Generation, error) {
	n := len(x0)
	for _, a := range [][]float64{y0, x1, y1, cx0, cy0, cx1, cy1} {
		if len(a) != n {
			return nil, fmt.Errorf("%w: expected %d curve coordinates, got %d",
				ErrLength, n, len(a))
		}
	}
	return &Generation{
		X0: x0, Y0: y0,
		X1: x1, Y1: y1,
		CX0: cx0, CY0: cy0,
		CX1: cx1, CY1: cy1,
	}, nil
}

// Len returns the number of curves.
func (g *Generation) Len() int {
	return len(g.X0)
}

// Curve returns the data-space curve of element i.
func (g *Generation) Curve(i int) Curve {
	return Curve{
		P0: vec.Vec2{X: g.X0[i], Y: g.Y0[i]},
		C0: vec.Vec2{X: g.CX0[i], Y: g.CY0[i]},
		C1: vec.Vec2{X: g.CX1[i], Y: g.CY1[i]},
		P1: vec.Vec2{X: g.X1[i], Y: g.Y1[i]},
	}
}

// Index adds the tight bounding box of every curve to idx, in index
// order. Curves with non-finite coordinates are added as empty elements.
// The return value is the number of empty elements.
func (g *Generation) Index(idx SpatialIndex) int {
	empty := 0
	for i := range g.Len() {
		minX, maxY, maxX, minY, ok := TightBBox(
			g.X0[i], g.Y0[i], g.X1[i], g.Y1[i],
			g.CX0[i], g.CY0[i], g.CX1[i], g.CY1[i])
		if !ok {
			idx.AddEmpty()
			empty++
			continue
		}
		idx.Add(minX, maxY, maxX, minY)
	}
	return empty
}

// Map converts the curves to screen space. Each coordinate array is
// passed to the corresponding scale as a whole.
func (g *Generation) Map(xs, ys Scale) *ScreenData {
	s := &ScreenData{
		SX0:  xs.VCompute(g.X0),
		SY0:  ys.VCompute(g.Y0),
		SCX0: xs.VCompute(g.CX0),
		SCY0: ys.VCompute(g.CY0),
		SCX1: xs.VCompute(g.CX1),
		SCY1: ys.VCompute(g.CY1),
	}
	if sameArray(g.X1, g.X0) && sameArray(g.Y1, g.Y0) {
		s.SX1 = s.SX0
		s.SY1 = s.SY0
	} else {
		s.SX1 = xs.VCompute(g.X1)
		s.SY1 = ys.VCompute(g.Y1)
	}
	return s
}

// sameArray reports whether a and b share the same backing storage.
func sameArray(a, b []float64) bool {
	return len(a) == len(b) && (len(a) == 0 || &a[0] == &b[0])
}
