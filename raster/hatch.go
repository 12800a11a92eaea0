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

package raster

import (
	"image"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/pick"
)

// tileKey identifies a rendered hatch tile. The tile only stores
// coverage, so the colour is not part of the key.
type tileKey struct {
	pattern pick.HatchPattern
	size    int
	weight  float64
}

// hatchTile returns the coverage mask of one repetition of h, using the
// tile cache of the canvas.
func (c *Canvas) hatchTile(h pick.Hatch) *image.Alpha {
	key := tileKey{
		pattern: h.Pattern,
		size:    max(minTileSize, int(math.Round(h.Scale))),
		weight:  h.Weight,
	}
	if tile, ok := c.tiles.Get(key); ok {
		return tile
	}
	tile := renderTile(key)
	c.tiles.Add(key, tile)
	return tile
}

// renderTile draws the hatch pattern for key into a new square tile.
// Lines are extended past the tile border, so that neighbouring tiles
// join up without gaps.
func renderTile(key tileKey) *image.Alpha {
	n := key.size
	s := float64(n)
	tile := image.NewAlpha(image.Rect(0, 0, n, n))

	r := NewRasteriser(rect.Rect{URx: s, URy: s})
	r.Width = key.weight
	r.Cap = graphics.LineCapButt

	p := &path.Data{}
	line := func(x0, y0, x1, y1 float64) {
		p = p.MoveTo(vec.Vec2{X: x0, Y: y0}).LineTo(vec.Vec2{X: x1, Y: y1})
	}
	horizontal := func() { line(-1, s/2, s+1, s/2) }
	vertical := func() { line(s/2, -1, s/2, s+1) }
	rising := func() {
		// x + y = const, three copies for the tile corners
		for _, c := range []float64{0, s, 2 * s} {
			line(c+1, -1, c-s-1, s+1)
		}
	}
	falling := func() {
		// x - y = const
		for _, c := range []float64{-s, 0, s} {
			line(c-1, -1, c+s+1, s+1)
		}
	}

	emit := func(y, xMin int, coverage []float32) {
		row := tile.Pix[y*tile.Stride:]
		for i, cov := range coverage {
			row[xMin+i] = max(row[xMin+i], uint8(min(1, cov)*255+0.5))
		}
	}

	center := vec.Vec2{X: s / 2, Y: s / 2}
	switch key.pattern {
	case pick.HatchHorizontal:
		horizontal()
	case pick.HatchVertical:
		vertical()
	case pick.HatchCross:
		horizontal()
		vertical()
	case pick.HatchRightDiagonal:
		rising()
	case pick.HatchLeftDiagonal:
		falling()
	case pick.HatchDiagonalCross:
		rising()
		falling()
	case pick.HatchDot:
		r.Fill(circle(center, key.weight).Iter(), NonZero, emit)
		return tile
	case pick.HatchRing:
		r.Stroke(circle(center, s/4).Iter(), emit)
		return tile
	default:
		return tile
	}
	r.Stroke(p.Iter(), emit)
	return tile
}

// circle returns a closed path approximating a circle by four cubic
// Bézier arcs.
func circle(center vec.Vec2, radius float64) *path.Data {
	k := circleKappa * radius
	x, y := center.X, center.Y
	p := &path.Data{}
	p = p.MoveTo(vec.Vec2{X: x + radius, Y: y})
	p = p.CubeTo(vec.Vec2{X: x + radius, Y: y + k}, vec.Vec2{X: x + k, Y: y + radius}, vec.Vec2{X: x, Y: y + radius})
	p = p.CubeTo(vec.Vec2{X: x - k, Y: y + radius}, vec.Vec2{X: x - radius, Y: y + k}, vec.Vec2{X: x - radius, Y: y})
	p = p.CubeTo(vec.Vec2{X: x - radius, Y: y - k}, vec.Vec2{X: x - k, Y: y - radius}, vec.Vec2{X: x, Y: y - radius})
	p = p.CubeTo(vec.Vec2{X: x + k, Y: y - radius}, vec.Vec2{X: x + radius, Y: y - k}, vec.Vec2{X: x + radius, Y: y})
	return p.Close()
}

// tileAlpha returns the mask value at image position (x, y), with the
// tile repeated in both directions.
func tileAlpha(tile *image.Alpha, x, y int) float32 {
	n := tile.Rect.Dx()
	tx := ((x % n) + n) % n
	ty := ((y % n) + n) % n
	return float32(tile.Pix[ty*tile.Stride+tx]) / 255
}

const (
	circleKappa   = 0.5522847498
	minTileSize   = 2
	tileCacheSize = 64
)
