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

// Offsets holds the three lengths which determine the shape of a pick.
// All three are proportional to the marker radius.
type Offsets struct {
	Baseline float64 // distance from the center to the anchor point
	ControlX float64 // control point offset across the marker axis
	ControlY float64 // control point offset along the marker axis
}

// NewOffsets returns the offsets for a pick of the given radius.
//
// A zero radius gives a degenerate marker where all points coincide.
// Non-finite radii give non-finite offsets; these are detected when the
// curve is indexed or drawn.
func NewOffsets(radius float64) Offsets {
	adjusted := radius * radiusScale
	return Offsets{
		Baseline: adjusted / baselineRatio,
		ControlX: adjusted / controlXRatio,
		ControlY: adjusted / controlYRatio,
	}
}

// Scale returns the offsets multiplied by s.
func (o Offsets) Scale(s float64) Offsets {
	return Offsets{
		Baseline: o.Baseline * s,
		ControlX: o.ControlX * s,
		ControlY: o.ControlY * s,
	}
}

// Empirical shape constants, see [NewOffsets].
const (
	radiusScale   = 3.5
	baselineRatio = 2.5
	controlXRatio = 1.0
	controlYRatio = 2.2
)
