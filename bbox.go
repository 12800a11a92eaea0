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

import "math"

// TightBBox computes the exact axis-aligned bounding box of the cubic
// Bézier curve which starts at (x0, y0), ends at (x1, y1) and has control
// points (cx0, cy0) and (cx1, cy1).
//
// The result is returned in the order (minX, maxY, maxX, minY), i.e. the
// left, top, right and bottom edge for a y-up coordinate system. This is
// the argument order of [SpatialIndex.Add].
//
// If any of the eight inputs is NaN or infinite, ok is false and the other
// return values are zero.
func TightBBox(x0, y0, x1, y1, cx0, cy0, cx1, cy1 float64) (minX, maxY, maxX, minY float64, ok bool) {
	if !allFinite(x0, y0, x1, y1, cx0, cy0, cx1, cy1) {
		return 0, 0, 0, 0, false
	}

	// at most two interior extrema per axis
	var tBuf [4]float64
	ts := tBuf[:0]
	ts = appendExtrema(ts, x0, cx0, cx1, x1)
	ts = appendExtrema(ts, y0, cy0, cy1, y1)

	minX, maxX = min(x0, x1), max(x0, x1)
	minY, maxY = min(y0, y1), max(y0, y1)
	for _, t := range ts {
		x := bernstein(t, x0, cx0, cx1, x1)
		y := bernstein(t, y0, cy0, cy1, y1)
		minX = min(minX, x)
		maxX = max(maxX, x)
		minY = min(minY, y)
		maxY = max(maxY, y)
	}
	return minX, maxY, maxX, minY, true
}

// appendExtrema appends the parameter values in the open interval (0, 1)
// where the derivative of the one-dimensional cubic Bézier with
// coefficients p0, p1, p2, p3 vanishes.
func appendExtrema(ts []float64, p0, p1, p2, p3 float64) []float64 {
	// B'(t) = a t² + b t + c
	a := -3*p0 + 9*p1 - 9*p2 + 3*p3
	b := 6*p0 - 12*p1 + 6*p2
	c := 3*p1 - 3*p0

	if math.Abs(a) < degenerateThreshold {
		if math.Abs(b) < degenerateThreshold {
			return ts // constant derivative, no interior extremum
		}
		return appendUnit(ts, -c/b)
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return ts
	}
	sq := math.Sqrt(disc)
	ts = appendUnit(ts, (-b+sq)/(2*a))
	ts = appendUnit(ts, (-b-sq)/(2*a))
	return ts
}

// appendUnit appends t if it lies strictly between 0 and 1.
func appendUnit(ts []float64, t float64) []float64 {
	if 0 < t && t < 1 {
		ts = append(ts, t)
	}
	return ts
}

// bernstein evaluates a one-dimensional cubic Bézier at t.
func bernstein(t, p0, p1, p2, p3 float64) float64 {
	mt := 1 - t
	return mt*mt*mt*p0 + 3*mt*mt*t*p1 + 3*mt*t*t*p2 + t*t*t*p3
}

// degenerateThreshold is the magnitude below which a coefficient of the
// derivative polynomial is treated as zero.
const degenerateThreshold = 1e-12
