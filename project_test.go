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

func TestProjectMercator(t *testing.T) {
	const earthRadius = 6378137.0
	lon := []float64{0, 180, -90, 0}
	lat := []float64{0, 0, 0, 45}
	x, y := ProjectMercator(lon, lat)

	wantX := []float64{0, math.Pi * earthRadius, -math.Pi / 2 * earthRadius, 0}
	wantY := []float64{0, 0, 0, earthRadius * math.Log(math.Tan(math.Pi/4+math.Pi/8))}
	for i := range lon {
		if math.Abs(x[i]-wantX[i]) > 1e-3 || math.Abs(y[i]-wantY[i]) > 1e-3 {
			t.Errorf("(%g, %g) -> (%g, %g), want (%g, %g)",
				lon[i], lat[i], x[i], y[i], wantX[i], wantY[i])
		}
	}
}

func TestDatasetProjected(t *testing.T) {
	d := &Dataset{X: []float64{10}, Y: []float64{20}, Rotation: []float64{30}}
	p, err := d.Projected()
	if err != nil {
		t.Fatal(err)
	}
	if d.X[0] != 10 || d.Y[0] != 20 {
		t.Error("Projected modified its receiver")
	}
	if p.X[0] <= d.X[0] || p.Rotation[0] != 30 || p.Radius != nil {
		t.Errorf("unexpected projected dataset %v", p)
	}

	bad := &Dataset{X: []float64{1}}
	if _, err := bad.Projected(); err == nil {
		t.Error("inconsistent dataset was accepted")
	}
}
