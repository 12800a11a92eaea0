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

// Scale maps one coordinate axis from data space to screen space.
type Scale interface {
	// Compute maps a single data value.
	Compute(x float64) float64

	// VCompute maps a whole array of data values.
	// The result is a new slice; xs is not modified.
	VCompute(xs []float64) []float64
}

// LinearScale maps the data interval [SourceStart, SourceEnd] linearly onto
// the screen interval [TargetStart, TargetEnd]. Setting TargetStart larger
// than TargetEnd flips the axis, as needed for a y-up plot on a y-down
// screen.
type LinearScale struct {
	SourceStart, SourceEnd float64
	TargetStart, TargetEnd float64
}

func (s LinearScale) coefficients() (factor, offset float64) {
	factor = (s.TargetEnd - s.TargetStart) / (s.SourceEnd - s.SourceStart)
	offset = s.TargetStart - factor*s.SourceStart
	return factor, offset
}

// Compute implements the [Scale] interface.
func (s LinearScale) Compute(x float64) float64 {
	factor, offset := s.coefficients()
	return factor*x + offset
}

// VCompute implements the [Scale] interface.
func (s LinearScale) VCompute(xs []float64) []float64 {
	factor, offset := s.coefficients()
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = factor*x + offset
	}
	return res
}

// LogScale maps data values logarithmically. Non-positive data values map
// to NaN.
type LogScale struct {
	SourceStart, SourceEnd float64
	TargetStart, TargetEnd float64
}

func (s LogScale) coefficients() (factor, offset float64) {
	start := math.Log(s.SourceStart)
	end := math.Log(s.SourceEnd)
	factor = (s.TargetEnd - s.TargetStart) / (end - start)
	offset = s.TargetStart - factor*start
	return factor, offset
}

// Compute implements the [Scale] interface.
func (s LogScale) Compute(x float64) float64 {
	factor, offset := s.coefficients()
	return logMap(x, factor, offset)
}

// VCompute implements the [Scale] interface.
func (s LogScale) VCompute(xs []float64) []float64 {
	factor, offset := s.coefficients()
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = logMap(x, factor, offset)
	}
	return res
}

func logMap(x, factor, offset float64) float64 {
	if x <= 0 {
		return math.NaN()
	}
	return factor*math.Log(x) + offset
}

// ScreenDistance converts data-space lengths to screen-space lengths.
// Element i is the screen distance between pts[i] and pts[i]+spans[i],
// which makes the result correct for non-linear scales at the given
// positions. A nil spans slice stands for spans of length 1 everywhere.
func ScreenDistance(s Scale, pts, spans []float64) []float64 {
	res := make([]float64, len(pts))
	for i, p := range pts {
		span := 1.0
		if spans != nil {
			span = spans[i]
		}
		res[i] = math.Abs(s.Compute(p+span) - s.Compute(p))
	}
	return res
}
