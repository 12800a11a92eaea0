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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Curve is a single cubic Bézier segment from P0 to P1 with control
// points C0 and C1. For pick markers P1 equals P0.
type Curve struct {
	P0, C0, C1, P1 vec.Vec2
}

// Eval returns the point of the curve at parameter t.
func (c Curve) Eval(t float64) vec.Vec2 {
	// B(t) = (1-t)³P0 + 3(1-t)²tC0 + 3(1-t)t²C1 + t³P1
	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t
	return c.P0.Mul(omt2 * omt).
		Add(c.C0.Mul(3 * omt2 * t)).
		Add(c.C1.Mul(3 * omt * t2)).
		Add(c.P1.Mul(t2 * t))
}

// IsFinite reports whether all eight coordinates of the curve are finite.
func (c Curve) IsFinite() bool {
	return allFinite(c.P0.X, c.P0.Y, c.P1.X, c.P1.Y, c.C0.X, c.C0.Y, c.C1.X, c.C1.Y)
}

// Bounds returns the tight axis-aligned bounding box of the curve.
// The second return value is false if any coordinate is not finite.
func (c Curve) Bounds() (rect.Rect, bool) {
	minX, maxY, maxX, minY, ok := TightBBox(c.P0.X, c.P0.Y, c.P1.X, c.P1.Y, c.C0.X, c.C0.Y, c.C1.X, c.C1.Y)
	if !ok {
		return rect.Rect{}, false
	}
	return rect.Rect{LLx: minX, LLy: minY, URx: maxX, URy: maxY}, true
}

// HullBounds returns the bounding box of the four control points.
// This always contains the curve, but is usually larger than [Curve.Bounds].
func (c Curve) HullBounds() rect.Rect {
	return rect.Rect{
		LLx: min(c.P0.X, c.C0.X, c.C1.X, c.P1.X),
		LLy: min(c.P0.Y, c.C0.Y, c.C1.Y, c.P1.Y),
		URx: max(c.P0.X, c.C0.X, c.C1.X, c.P1.X),
		URy: max(c.P0.Y, c.C0.Y, c.C1.Y, c.P1.Y),
	}
}

// Path returns the curve as a path with one subpath.
// If closed is true, the subpath is closed explicitly.
func (c Curve) Path(closed bool) *path.Data {
	p := (&path.Data{}).MoveTo(c.P0).CubeTo(c.C0, c.C1, c.P1)
	if closed {
		p = p.Close()
	}
	return p
}

func allFinite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
