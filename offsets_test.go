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
	"testing"
)

func TestOffsetsZero(t *testing.T) {
	off := NewOffsets(0)
	if off != (Offsets{}) {
		t.Errorf("NewOffsets(0) = %v, want all zero", off)
	}
}

func TestOffsetsValues(t *testing.T) {
	off := NewOffsets(1)
	want := Offsets{Baseline: 1.4, ControlX: 3.5, ControlY: 3.5 / 2.2}
	if math.Abs(off.Baseline-want.Baseline) > 1e-15 ||
		off.ControlX != want.ControlX ||
		off.ControlY != want.ControlY {
		t.Errorf("NewOffsets(1) = %v, want %v", off, want)
	}
}

func TestOffsetsLinear(t *testing.T) {
	for _, r := range []float64{0.25, 1, 3, 17.5, 1e6, -2} {
		got := NewOffsets(2 * r)
		want := NewOffsets(r).Scale(2)
		// doubling is exact in binary floating point
		if got != want {
			t.Errorf("NewOffsets(2*%g) = %v, want %v", r, got, want)
		}
	}
}

func TestOffsetsNonFinite(t *testing.T) {
	for _, r := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		off := NewOffsets(r)
		if allFinite(off.Baseline, off.ControlX, off.ControlY) {
			t.Errorf("NewOffsets(%g) = %v, want non-finite", r, off)
		}
	}
}
