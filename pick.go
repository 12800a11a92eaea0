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

// Package pick implements "pick" markers: flag shaped point markers which
// are drawn as a single closed cubic Bézier curve.
//
// A marker is described by its center, a rotation angle in degrees and a
// radius. [NewOffsets] converts the radius into the three lengths which
// shape the curve, [Variant.ToBezier] places the anchor and the two control
// points, and [TightBBox] computes the exact axis-aligned bounding box of
// the resulting curve for use in a spatial index.
//
// The [Glyph], [CircleGlyph] and [BezierFill] types bundle these steps for
// a whole dataset of markers. They compute the curves in data space, map
// them to screen space using a pair of [Scale] values, feed bounding boxes
// to a [SpatialIndex] and draw the markers onto a [Context].
//
// None of the types in this package are safe for concurrent use.
package pick

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import "errors"

// ErrNotImplemented is returned by operations a pick glyph deliberately
// does not support.
var ErrNotImplemented = errors.New("not implemented")
