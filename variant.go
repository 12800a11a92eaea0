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
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Variant selects one of the two geometric conventions for pick markers.
//
// Both variants use the same x coordinates. They differ in the sign of
// every y offset, so that a VariantB curve is the mirror image of the
// VariantA curve about the horizontal line through the center.
type Variant int

const (
	// VariantA is used by [Glyph]. The curve is computed in data space,
	// where y grows upwards, and a rotation of 0 makes the pick point
	// downwards.
	VariantA Variant = iota

	// VariantB is used by [CircleGlyph]. The curve is computed in screen
	// space, where y grows downwards.
	VariantB
)

func (v Variant) String() string {
	switch v {
	case VariantA:
		return "A"
	case VariantB:
		return "B"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant converts "A" or "B" (case-insensitive) to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "A", "a":
		return VariantA, nil
	case "B", "b":
		return VariantB, nil
	default:
		return 0, fmt.Errorf("invalid pick variant %q", s)
	}
}

// ToBezier computes the anchor point (x0, y0) and the x and y coordinates
// of the two control points of a pick centered at (x, y).
// The rotation is given in degrees and increases clockwise.
// The curve starts and ends at the anchor point.
//
// The return order (x0, y0, cx0, cx1, cy0, cy1) lists both control point
// x coordinates before their y coordinates.
func (v Variant) ToBezier(x, y, rotation float64, off Offsets) (x0, y0, cx0, cx1, cy0, cy1 float64) {
	// reduce first, so that rotations differing by whole turns give
	// bit-identical results
	rotation = math.Mod(rotation, 360)
	if rotation < 0 {
		rotation += 360
	}
	theta := rotation * math.Pi / 180
	cosine := -math.Cos(theta)
	sine := math.Sin(theta)

	x0 = x - off.Baseline*sine
	cx0 = x - off.ControlX*cosine + off.ControlY*sine
	cx1 = x + off.ControlX*cosine + off.ControlY*sine

	if v == VariantB {
		y0 = y + off.Baseline*cosine
		cy0 = y - off.ControlX*sine - off.ControlY*cosine
		cy1 = y + off.ControlX*sine - off.ControlY*cosine
	} else {
		y0 = y - off.Baseline*cosine
		cy0 = y + off.ControlX*sine + off.ControlY*cosine
		cy1 = y - off.ControlX*sine + off.ControlY*cosine
	}
	return x0, y0, cx0, cx1, cy0, cy1
}

// Curve returns the closed pick curve centered at (x, y).
func (v Variant) Curve(x, y, rotation float64, off Offsets) Curve {
	x0, y0, cx0, cx1, cy0, cy1 := v.ToBezier(x, y, rotation, off)
	p0 := vec.Vec2{X: x0, Y: y0}
	return Curve{
		P0: p0,
		C0: vec.Vec2{X: cx0, Y: cy0},
		C1: vec.Vec2{X: cx1, Y: cy1},
		P1: p0,
	}
}
