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

package pdfcanvas

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/pick"
)

const (
	circleKappa = 0.5522847498
	minTileSize = 2

	// maxHatchRepeats limits the number of pattern repetitions along
	// either axis of one filled path.
	maxHatchRepeats = 1024
)

// SetHatch makes Fill paint the pattern h instead of the fill colour.
// A blank pattern makes Fill paint nothing.
func (p *Page) SetHatch(h pick.Hatch) {
	p.hatch = &h
}

// fillHatch paints the hatch pattern, clipped to the current path.
func (p *Page) fillHatch(h pick.Hatch) {
	if h.Color == nil || len(p.path.Cmds) < 2 {
		return
	}
	pattern, filled := hatchPattern(h, p.path)
	if pattern == nil {
		return
	}

	gray := pdfcolor.DeviceGray(Gray(h.Color))
	p.page.PushGraphicsState()
	p.writePath(p.path)
	p.page.ClipNonZero()
	p.page.EndPath()
	p.writePath(pattern)
	if filled {
		p.page.SetFillColor(gray)
		p.page.Fill()
	} else {
		p.page.SetStrokeColor(gray)
		p.page.SetLineWidth(h.Weight)
		p.page.SetLineCap(graphics.LineCapButt)
		p.page.SetLineDash(nil, 0)
		p.page.Stroke()
	}
	p.page.PopGraphicsState()
}

// hatchPattern returns the lines or circles of h which cover the area of
// clip. The pattern repeats on a grid of square tiles anchored at the
// origin. If filled is true, the result is to be filled, otherwise it is
// to be stroked with width h.Weight. A nil path means there is nothing to
// draw.
func hatchPattern(h pick.Hatch, clip *path.Data) (pattern *path.Data, filled bool) {
	if h.Pattern == pick.HatchNone || !(h.Weight > 0) {
		return nil, false
	}
	s := float64(max(minTileSize, int(math.Round(h.Scale))))
	minX, minY, maxX, maxY, ok := pathBounds(clip)
	if !ok || (maxX-minX)/s > maxHatchRepeats || (maxY-minY)/s > maxHatchRepeats {
		return nil, false
	}
	// margin so that line ends and dots reach past the clipping path
	m := s + h.Weight
	minX, minY, maxX, maxY = minX-m, minY-m, maxX+m, maxY+m

	pattern = &path.Data{}
	line := func(x0, y0, x1, y1 float64) {
		pattern = pattern.MoveTo(pt(x0, y0)).LineTo(pt(x1, y1))
	}
	horizontal := func() {
		for j := math.Floor(minY / s); j*s <= maxY; j++ {
			line(minX, j*s+s/2, maxX, j*s+s/2)
		}
	}
	vertical := func() {
		for i := math.Floor(minX / s); i*s <= maxX; i++ {
			line(i*s+s/2, minY, i*s+s/2, maxY)
		}
	}
	rising := func() {
		// x + y = k·s
		for k := math.Floor((minX + minY) / s); k*s <= maxX+maxY; k++ {
			c := k * s
			line(c-minY, minY, c-maxY, maxY)
		}
	}
	falling := func() {
		// x - y = k·s
		for k := math.Floor((minX - maxY) / s); k*s <= maxX-minY; k++ {
			c := k * s
			line(c+minY, minY, c+maxY, maxY)
		}
	}
	circles := func(r float64) {
		for j := math.Floor(minY / s); j*s <= maxY; j++ {
			for i := math.Floor(minX / s); i*s <= maxX; i++ {
				pattern = appendCircle(pattern, i*s+s/2, j*s+s/2, r)
			}
		}
	}

	switch h.Pattern {
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
		circles(h.Weight)
		filled = true
	case pick.HatchRing:
		circles(s / 4)
	default:
		return nil, false
	}
	return pattern, filled
}

// pathBounds returns the bounding box of all points of d, including the
// control points.
func pathBounds(d *path.Data) (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, pts := range d.Iter().ToCubic() {
		for _, q := range pts {
			minX, maxX = min(minX, q.X), max(maxX, q.X)
			minY, maxY = min(minY, q.Y), max(maxY, q.Y)
		}
	}
	ok = minX <= maxX && minY <= maxY &&
		!math.IsInf(minX, 0) && !math.IsInf(maxX, 0) &&
		!math.IsInf(minY, 0) && !math.IsInf(maxY, 0)
	return minX, minY, maxX, maxY, ok
}

// appendCircle adds a closed circle, made of four cubic Bézier arcs, to d.
func appendCircle(d *path.Data, x, y, r float64) *path.Data {
	k := circleKappa * r
	d = d.MoveTo(pt(x+r, y))
	d = d.CubeTo(pt(x+r, y+k), pt(x+k, y+r), pt(x, y+r))
	d = d.CubeTo(pt(x-k, y+r), pt(x-r, y+k), pt(x-r, y))
	d = d.CubeTo(pt(x-r, y-k), pt(x-k, y-r), pt(x, y-r))
	d = d.CubeTo(pt(x+k, y-r), pt(x+r, y-k), pt(x+r, y))
	return d.Close()
}
