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

package testcases

import (
	"seehuhn.de/go/pick"
)

// TestCase defines a single scene of pick markers.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Width  int    // canvas width in pixels
	Height int    // canvas height in pixels

	// Data holds the markers. It is ignored if Curves is set.
	Data    *pick.Dataset
	Variant pick.Variant

	// Curves, if not nil, holds arbitrary curves drawn with a
	// [pick.BezierFill] glyph.
	Curves *pick.Generation

	Visuals pick.Visuals

	// XRange and YRange are the data ranges mapped onto the canvas.
	// The y axis points up.
	XRange, YRange [2]float64

	// LogX and LogY select logarithmic axes.
	LogX, LogY bool

	// Skipped is the number of markers which cannot be drawn because
	// their coordinates are not finite.
	Skipped int
}

// Glyph is the glyph interface shared by all marker kinds.
type Glyph interface {
	Len() int
	MapData(xs, ys pick.Scale)
	IndexData(idx pick.SpatialIndex) int
	Render(ctx pick.Context, indices []int) int
}

// Scales returns the data to screen mappings of the scene.
func (tc TestCase) Scales() (xs, ys pick.Scale) {
	w, h := float64(tc.Width), float64(tc.Height)
	if tc.LogX {
		xs = pick.LogScale{SourceStart: tc.XRange[0], SourceEnd: tc.XRange[1], TargetEnd: w}
	} else {
		xs = pick.LinearScale{SourceStart: tc.XRange[0], SourceEnd: tc.XRange[1], TargetEnd: w}
	}
	if tc.LogY {
		ys = pick.LogScale{SourceStart: tc.YRange[0], SourceEnd: tc.YRange[1], TargetStart: h}
	} else {
		ys = pick.LinearScale{SourceStart: tc.YRange[0], SourceEnd: tc.YRange[1], TargetStart: h}
	}
	return xs, ys
}

// Glyph returns a glyph holding the scene's markers, with screen
// coordinates already mapped.
func (tc TestCase) Glyph() (Glyph, error) {
	var g Glyph
	switch {
	case tc.Curves != nil:
		b := &pick.BezierFill{Visuals: tc.Visuals}
		b.SetCurves(tc.Curves)
		g = b
	case tc.Variant == pick.VariantB:
		c := &pick.CircleGlyph{Visuals: tc.Visuals}
		if err := c.SetData(tc.Data); err != nil {
			return nil, err
		}
		g = c
	default:
		p := &pick.Glyph{Visuals: tc.Visuals}
		if err := p.SetData(tc.Data); err != nil {
			return nil, err
		}
		g = p
	}
	xs, ys := tc.Scales()
	g.MapData(xs, ys)
	return g, nil
}

// Indices returns 0, 1, ..., n-1, for drawing all n markers of a scene.
func Indices(n int) []int {
	res := make([]int, n)
	for i := range res {
		res[i] = i
	}
	return res
}

// Render draws all markers of the scene onto ctx and returns the number
// of markers drawn.
func (tc TestCase) Render(ctx pick.Context) (int, error) {
	g, err := tc.Glyph()
	if err != nil {
		return 0, err
	}
	return g.Render(ctx, Indices(g.Len())), nil
}

// Count returns the number of markers in the scene.
func (tc TestCase) Count() int {
	if tc.Curves != nil {
		return tc.Curves.Len()
	}
	return tc.Data.Len()
}

// solid returns opaque black outlines over a gray fill.
func solid() pick.Visuals {
	return pick.Visuals{
		Line: pick.NewLineStyle(black, 1),
		Fill: pick.NewFillStyle(gray),
	}
}

// ring returns a dataset of n markers placed evenly on a circle of
// radius r around (cx, cy), each rotated to point outwards.
func ring(n int, cx, cy, r, radius float64) *pick.Dataset {
	d := &pick.Dataset{
		X:        make([]float64, n),
		Y:        make([]float64, n),
		Rotation: make([]float64, n),
		Radius:   make([]float64, n),
	}
	for i := range n {
		deg := 360 * float64(i) / float64(n)
		s, c := sincos(deg)
		d.X[i] = cx + r*s
		d.Y[i] = cy + r*c
		d.Rotation[i] = deg
		d.Radius[i] = radius
	}
	return d
}
