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
	"image/color"

	"seehuhn.de/go/pdf/graphics"
)

// Context is a drawing surface in screen coordinates.
//
// Path construction follows the HTML canvas model: BeginPath discards the
// current path, Stroke and Fill paint the current path without discarding
// it. The paint state set by the Set* methods stays in effect until it is
// changed.
type Context interface {
	BeginPath()
	MoveTo(x, y float64)
	BezierCurveTo(cx0, cy0, cx1, cy1, x, y float64)
	Stroke()
	Fill()

	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)
	SetLineCap(c graphics.LineCapStyle)
	SetLineJoin(j graphics.LineJoinStyle)
	SetLineDash(dash []float64, phase float64)

	// SetFillColor makes Fill paint with a solid colour.
	// This replaces any hatch pattern set by SetHatch.
	SetFillColor(c color.Color)

	// SetHatch makes Fill paint with a hatch pattern.
	// This replaces any colour set by SetFillColor.
	SetHatch(h Hatch)
}

// Hatch describes a repeating line pattern used to fill an area.
type Hatch struct {
	// Pattern is one of the names understood by [ParseHatchPattern].
	Pattern HatchPattern

	// Scale is the size of the repeating tile in screen units.
	Scale float64

	// Weight is the width of the pattern lines in screen units.
	Weight float64

	// Color is the colour of the pattern lines, including alpha.
	Color color.Color
}

// HatchPattern identifies the shape of a hatch pattern.
type HatchPattern byte

// These are the supported hatch patterns. The byte value of each
// pattern is its single character abbreviation.
const (
	HatchNone          HatchPattern = ' '
	HatchDot           HatchPattern = '.'
	HatchRing          HatchPattern = 'o'
	HatchHorizontal    HatchPattern = '-'
	HatchVertical      HatchPattern = '|'
	HatchCross         HatchPattern = '+'
	HatchRightDiagonal HatchPattern = '/'
	HatchLeftDiagonal  HatchPattern = '\\'
	HatchDiagonalCross HatchPattern = 'x'
)

var hatchNames = map[string]HatchPattern{
	"":                    HatchNone,
	"blank":               HatchNone,
	"dot":                 HatchDot,
	"ring":                HatchRing,
	"horizontal_line":     HatchHorizontal,
	"vertical_line":       HatchVertical,
	"cross":               HatchCross,
	"right_diagonal_line": HatchRightDiagonal,
	"left_diagonal_line":  HatchLeftDiagonal,
	"diagonal_cross":      HatchDiagonalCross,
}

// ParseHatchPattern converts a pattern name or its single character
// abbreviation to a HatchPattern. Unknown names give HatchNone and false.
func ParseHatchPattern(s string) (HatchPattern, bool) {
	if p, ok := hatchNames[s]; ok {
		return p, true
	}
	if len(s) == 1 {
		switch p := HatchPattern(s[0]); p {
		case HatchNone, HatchDot, HatchRing, HatchHorizontal, HatchVertical,
			HatchCross, HatchRightDiagonal, HatchLeftDiagonal, HatchDiagonalCross:
			return p, true
		}
	}
	return HatchNone, false
}
