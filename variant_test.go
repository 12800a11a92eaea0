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

func TestToBezierRotationZero(t *testing.T) {
	off := NewOffsets(1)
	k := off.ControlY

	type result struct{ x0, y0, cx0, cx1, cy0, cy1 float64 }
	cases := []struct {
		v    Variant
		want result
	}{
		{VariantA, result{0, off.Baseline, 3.5, -3.5, -k, -k}},
		{VariantB, result{0, -off.Baseline, 3.5, -3.5, k, k}},
	}
	for _, c := range cases {
		t.Run(c.v.String(), func(t *testing.T) {
			var got result
			got.x0, got.y0, got.cx0, got.cx1, got.cy0, got.cy1 = c.v.ToBezier(0, 0, 0, off)
			if got != c.want {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestToBezierQuarterTurn(t *testing.T) {
	// At 90° the anchor lies left of the center and both control points
	// lie right of it.
	off := NewOffsets(2)
	x0, y0, cx0, cx1, cy0, cy1 := VariantA.ToBezier(10, 20, 90, off)

	const eps = 1e-12
	check := func(name string, got, want float64) {
		t.Helper()
		if math.Abs(got-want) > eps {
			t.Errorf("%s = %g, want %g", name, got, want)
		}
	}
	check("x0", x0, 10-off.Baseline)
	check("y0", y0, 20)
	check("cx0", cx0, 10+off.ControlY)
	check("cx1", cx1, 10+off.ControlY)
	check("cy0", cy0, 20+off.ControlX)
	check("cy1", cy1, 20-off.ControlX)
}

func TestToBezierPeriodic(t *testing.T) {
	off := NewOffsets(1.5)
	for _, v := range []Variant{VariantA, VariantB} {
		for _, rot := range []float64{0, 17.5, 45, 90, 123.25, 180, 270, 359.5, -30, -90.25} {
			a0, a1, a2, a3, a4, a5 := v.ToBezier(3, -4, rot, off)
			b0, b1, b2, b3, b4, b5 := v.ToBezier(3, -4, rot+360, off)
			if a0 != b0 || a1 != b1 || a2 != b2 || a3 != b3 || a4 != b4 || a5 != b5 {
				t.Errorf("%s: rotation %g and %g differ", v, rot, rot+360)
			}
		}
	}
}

func TestVariantMirror(t *testing.T) {
	// Both conventions agree in x and are mirror images in y.
	off := NewOffsets(0.7)
	const cy = 5
	for rot := 0.0; rot < 360; rot += 22.5 {
		a := VariantA.Curve(1, cy, rot, off)
		b := VariantB.Curve(1, cy, rot, off)
		pairs := [][2]float64{
			{a.P0.X, b.P0.X}, {a.C0.X, b.C0.X}, {a.C1.X, b.C1.X},
			{a.P0.Y - cy, cy - b.P0.Y}, {a.C0.Y - cy, cy - b.C0.Y}, {a.C1.Y - cy, cy - b.C1.Y},
		}
		for j, p := range pairs {
			if math.Abs(p[0]-p[1]) > 1e-12 {
				t.Errorf("rotation %g, pair %d: %g != %g", rot, j, p[0], p[1])
			}
		}
	}
}

func TestCurveClosed(t *testing.T) {
	c := VariantA.Curve(2, 3, 33, NewOffsets(1))
	if c.P0 != c.P1 {
		t.Errorf("pick curve is not closed: %v != %v", c.P0, c.P1)
	}
	if got := c.Eval(1); math.Abs(got.X-c.P0.X) > 1e-12 || math.Abs(got.Y-c.P0.Y) > 1e-12 {
		t.Errorf("Eval(1) = %v, want %v", got, c.P0)
	}
}

func TestToBezierNonFinite(t *testing.T) {
	x0, y0, cx0, cx1, cy0, cy1 := VariantA.ToBezier(math.NaN(), 0, 0, NewOffsets(1))
	if allFinite(x0, y0, cx0, cx1, cy0, cy1) {
		t.Error("NaN center gave finite curve")
	}
	x0, y0, cx0, cx1, cy0, cy1 = VariantB.ToBezier(0, 0, 0, NewOffsets(math.Inf(1)))
	if allFinite(x0, y0, cx0, cx1, cy0, cy1) {
		t.Error("infinite radius gave finite curve")
	}
}

func TestParseVariant(t *testing.T) {
	for _, s := range []string{"A", "a", "B", "b"} {
		v, err := ParseVariant(s)
		if err != nil {
			t.Errorf("ParseVariant(%q): %v", s, err)
			continue
		}
		if v.String() != map[string]string{"A": "A", "a": "A", "B": "B", "b": "B"}[s] {
			t.Errorf("ParseVariant(%q) = %s", s, v)
		}
	}
	if _, err := ParseVariant("C"); err == nil {
		t.Error("ParseVariant(\"C\") succeeded")
	}
}
