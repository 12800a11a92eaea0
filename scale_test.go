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

func TestLinearScale(t *testing.T) {
	s := LinearScale{SourceStart: -1, SourceEnd: 1, TargetStart: 200, TargetEnd: 0}
	if got := s.Compute(0); got != 100 {
		t.Errorf("Compute(0) = %g, want 100", got)
	}
	xs := []float64{-1, 1, 0.5}
	got := s.VCompute(xs)
	want := []float64{200, 0, 50}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("VCompute[%d] = %g, want %g", i, got[i], want[i])
		}
	}
	if xs[0] != -1 {
		t.Error("VCompute modified its input")
	}
}

func TestLogScale(t *testing.T) {
	s := LogScale{SourceStart: 1, SourceEnd: 100, TargetStart: 0, TargetEnd: 2}
	if got := s.Compute(10); math.Abs(got-1) > 1e-12 {
		t.Errorf("Compute(10) = %g, want 1", got)
	}
	for _, x := range []float64{0, -5} {
		if got := s.Compute(x); !math.IsNaN(got) {
			t.Errorf("Compute(%g) = %g, want NaN", x, got)
		}
	}
	if got := s.VCompute([]float64{-1}); !math.IsNaN(got[0]) {
		t.Errorf("VCompute(-1) = %g, want NaN", got[0])
	}
}

func TestScreenDistance(t *testing.T) {
	lin := LinearScale{SourceStart: 0, SourceEnd: 10, TargetStart: 0, TargetEnd: 500}
	got := ScreenDistance(lin, []float64{0, 3}, []float64{1, 2})
	if got[0] != 50 || got[1] != 100 {
		t.Errorf("linear: got %v, want [50 100]", got)
	}
	if got := ScreenDistance(lin, []float64{7}, nil); got[0] != 50 {
		t.Errorf("nil spans: got %v, want [50]", got)
	}

	// flipped axes still give positive distances
	flip := LinearScale{SourceStart: 0, SourceEnd: 10, TargetStart: 500, TargetEnd: 0}
	if got := ScreenDistance(flip, []float64{0}, []float64{1}); got[0] != 50 {
		t.Errorf("flipped: got %v, want [50]", got)
	}

	// on a log scale the distance depends on the position
	log := LogScale{SourceStart: 1, SourceEnd: 1000, TargetStart: 0, TargetEnd: 300}
	d := ScreenDistance(log, []float64{1, 100}, []float64{1, 1})
	if !(d[0] > d[1]) {
		t.Errorf("log: distance at 1 (%g) not larger than at 100 (%g)", d[0], d[1])
	}
}
