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

import "github.com/wroge/wgs84"

// EPSG codes understood by [ProjectMercator].
const (
	epsgLonLat      = 4326
	epsgWebMercator = 3857
)

// ProjectMercator converts longitude/latitude pairs (in degrees) to web
// mercator coordinates (in meters). The input slices are not modified.
func ProjectMercator(lon, lat []float64) (x, y []float64) {
	f := wgs84.EPSG().Transform(epsgLonLat, epsgWebMercator)

	x = make([]float64, len(lon))
	y = make([]float64, len(lat))
	for i := range lon {
		x[i], y[i], _ = f(lon[i], lat[i], 0)
	}
	return x, y
}

// Projected returns a copy of d where the centers, given as longitude and
// latitude, have been converted to web mercator coordinates. Rotations and
// radii are shared with d.
func (d *Dataset) Projected() (*Dataset, error) {
	if err := d.Check(); err != nil {
		return nil, err
	}
	x, y := ProjectMercator(d.X, d.Y)
	return &Dataset{X: x, Y: y, Rotation: d.Rotation, Radius: d.Radius}, nil
}
