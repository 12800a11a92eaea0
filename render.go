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

import "seehuhn.de/go/geom/vec"

// ScreenData holds the screen coordinates of a set of Bézier curves as
// parallel arrays. Element i is the curve from (SX0[i], SY0[i]) to
// (SX1[i], SY1[i]) with control points (SCX0[i], SCY0[i]) and
// (SCX1[i], SCY1[i]).
type ScreenData struct {
	SX0, SY0   []float64
	SX1, SY1   []float64
	SCX0, SCY0 []float64
	SCX1, SCY1 []float64
}

// Len returns the number of curves.
func (s *ScreenData) Len() int {
	return len(s.SX0)
}

// Curve returns the screen-space curve of element i.
func (s *ScreenData) Curve(i int) Curve {
	return Curve{
		P0: vec.Vec2{X: s.SX0[i], Y: s.SY0[i]},
		C0: vec.Vec2{X: s.SCX0[i], Y: s.SCY0[i]},
		C1: vec.Vec2{X: s.SCX1[i], Y: s.SCY1[i]},
		P1: vec.Vec2{X: s.SX1[i], Y: s.SY1[i]},
	}
}

// Render draws the curves with the given indices onto ctx and returns the
// number of curves drawn.
//
// Curves with a non-finite coordinate are skipped without touching ctx.
// For every other curve a new path is started, and the active styles of
// v are applied and painted in the order line, fill, hatch.
func Render(ctx Context, s *ScreenData, indices []int, v Visuals) int {
	drawn := 0
	for _, i := range indices {
		c := s.Curve(i)
		if !c.IsFinite() {
			continue
		}
		drawCurve(ctx, c, i, v)
		drawn++
	}
	return drawn
}

// drawCurve draws a single curve. The style parameters are set per
// element, immediately before each paint operation.
func drawCurve(ctx Context, c Curve, i int, v Visuals) {
	ctx.BeginPath()
	ctx.MoveTo(c.P0.X, c.P0.Y)
	ctx.BezierCurveTo(c.C0.X, c.C0.Y, c.C1.X, c.C1.Y, c.P1.X, c.P1.Y)

	if active(v.Line) {
		v.Line.SetVectorize(ctx, i)
		ctx.Stroke()
	}
	if active(v.Fill) {
		v.Fill.SetVectorize(ctx, i)
		ctx.Fill()
	}
	if active(v.Hatch) {
		v.Hatch.SetVectorize(ctx, i)
		ctx.Fill()
	}
}

func active(s Style) bool {
	return s != nil && s.Doit()
}
