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

// Package raster converts paths to anti-aliased pixel coverage and
// implements the pick drawing context on top of an [image.RGBA].
package raster

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Rule selects how the winding number of a point is mapped to coverage.
type Rule int

const (
	// NonZero paints every point with a non-zero winding number.
	NonZero Rule = iota

	// EvenOdd paints every point with an odd winding number.
	EvenOdd
)

// EmitFunc receives the coverage of one pixel row. Coverage[i] is the
// coverage of pixel (xMin+i, y), in the range [0, 1]. The slice is only
// valid for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// Rasteriser converts paths to pixel coverage values.
// A Rasteriser can be reused for many paths. Its internal buffers grow
// as needed and are kept between calls, so a Rasteriser must not be
// used from more than one goroutine at a time.
type Rasteriser struct {
	// CTM maps user space to device space. It must be non-singular.
	CTM matrix.Matrix

	// Clip is the output region in device space, with integer
	// coordinates.
	Clip rect.Rect

	// Flatness is the maximal distance in device pixels between a curve
	// and its polygonal approximation.
	Flatness float64

	// Width is the stroke width in user space units.
	Width float64

	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64

	// Dash is the dash pattern in user space units, or nil for solid
	// lines.
	Dash      []float64
	DashPhase float64

	// flattened input, in user space
	pts      []vec.Vec2
	subpaths []subpath

	// device space edges of the shape being filled
	edges []edge
	box   deviceBox

	// per-pixel accumulation buffers, one row after the other
	cover []float32
	area  []float32
	used  []bool

	// scratch space for the stroker
	poly   []vec.Vec2
	pieces []dashPiece
}

// subpath is a run pts[start:end] of flattened points.
type subpath struct {
	start, end int
	closed     bool
}

// edge is a line segment in device space. Horizontal edges are never
// stored.
type edge struct {
	x0, y0, x1, y1 float64
}

// deviceBox tracks the bounding box of all edges.
type deviceBox struct {
	xMin, xMax, yMin, yMax float64
	empty                  bool
}

func (b *deviceBox) include(x, y float64) {
	if b.empty {
		*b = deviceBox{xMin: x, xMax: x, yMin: y, yMax: y}
		return
	}
	b.xMin = min(b.xMin, x)
	b.xMax = max(b.xMax, x)
	b.yMin = min(b.yMin, y)
	b.yMax = max(b.yMax, y)
}

// NewRasteriser returns a rasteriser for the given clip rectangle.
// The remaining parameters are set to the PDF defaults.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores all parameters to their defaults and sets a new clip
// rectangle. Internal buffers are kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
	r.Dash = nil
	r.DashPhase = 0
}

// Fill computes the coverage of the area enclosed by p.
// Open subpaths are closed implicitly.
func (r *Rasteriser) Fill(p path.Path, rule Rule, emit EmitFunc) {
	r.flatten(p)

	r.beginShape()
	for _, sp := range r.subpaths {
		pts := r.pts[sp.start:sp.end]
		if len(pts) < 3 {
			continue
		}
		for i := 1; i < len(pts); i++ {
			r.addEdge(pts[i-1], pts[i])
		}
		r.addEdge(pts[len(pts)-1], pts[0])
	}
	r.rasterise(rule, emit)
}

// flatten converts p into polylines, stored in r.pts and r.subpaths.
// Segments shorter than zeroLengthThreshold are dropped. A subpath which
// was drawn but collapsed to a single point is kept, since it can still
// carry a cap.
func (r *Rasteriser) flatten(p path.Path) {
	r.pts = r.pts[:0]
	r.subpaths = r.subpaths[:0]

	open := false
	drawn := false
	start := 0
	var first vec.Vec2

	finish := func(closed bool) {
		if open && drawn {
			r.subpaths = append(r.subpaths, subpath{start: start, end: len(r.pts), closed: closed})
		} else if open {
			r.pts = r.pts[:start]
		}
		open = false
		drawn = false
	}
	lineTo := func(q vec.Vec2) {
		if q.Sub(r.pts[len(r.pts)-1]).Length() >= zeroLengthThreshold {
			r.pts = append(r.pts, q)
		}
	}

	for cmd, args := range p {
		if cmd == path.CmdMoveTo {
			finish(false)
			first = args[0]
			start = len(r.pts)
			r.pts = append(r.pts, first)
			open = true
			continue
		}
		if !open {
			if cmd == path.CmdClose {
				continue
			}
			// drawing after a close continues from the subpath start
			start = len(r.pts)
			r.pts = append(r.pts, first)
			open = true
		}
		drawn = true

		cur := r.pts[len(r.pts)-1]
		switch cmd {
		case path.CmdLineTo:
			lineTo(args[0])
		case path.CmdQuadTo:
			// degree elevation
			c0 := cur.Add(args[0].Sub(cur).Mul(2.0 / 3))
			c1 := args[1].Add(args[0].Sub(args[1]).Mul(2.0 / 3))
			r.flattenCubic(cur, c0, c1, args[1], lineTo)
		case path.CmdCubeTo:
			r.flattenCubic(cur, args[0], args[1], args[2], lineTo)
		case path.CmdClose:
			pts := r.pts[start:]
			if len(pts) > 1 && pts[len(pts)-1].Sub(first).Length() < zeroLengthThreshold {
				// the closing segment is implied
				r.pts = r.pts[:len(r.pts)-1]
			}
			finish(true)
		}
	}
	finish(false)
}

// flattenCubic approximates a cubic Bézier curve by line segments,
// calling lineTo for every point after p0. The number of segments is
// chosen with Wang's formula, applied in device space.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, lineTo func(vec.Vec2)) {
	dd0 := r.linear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	dd1 := r.linear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	m := max(dd0, dd1)

	n := 1
	if m > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(0.75*m/r.Flatness))))
	}
	n = min(n, maxCurveSegments)

	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		lineTo(q)
	}
	lineTo(p3)
}

// linear applies the linear part of the CTM to v.
func (r *Rasteriser) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// device maps a point from user space to device space.
func (r *Rasteriser) device(v vec.Vec2) (x, y float64) {
	x = r.CTM[0]*v.X + r.CTM[2]*v.Y + r.CTM[4]
	y = r.CTM[1]*v.X + r.CTM[3]*v.Y + r.CTM[5]
	return x, y
}

func (r *Rasteriser) beginShape() {
	r.edges = r.edges[:0]
	r.box = deviceBox{empty: true}
}

// addEdge adds the user space segment from a to b to the current shape.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	x0, y0 := r.device(a)
	x1, y1 := r.device(b)
	if math.Abs(y1-y0) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1})
	r.box.include(x0, y0)
	r.box.include(x1, y1)
}

// rasterise computes the coverage of the current shape and emits it row
// by row.
//
// For every pixel, cover holds the signed height of all edge pieces
// inside the pixel and area holds the part of this height which lies
// right of the piece. Summing cover from the left gives the winding
// number at the left pixel border, and adding area gives the signed
// coverage of the pixel itself.
func (r *Rasteriser) rasterise(rule Rule, emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}
	xMin := max(int(math.Floor(r.box.xMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.box.xMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.box.yMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.box.yMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin
	height := yMax - yMin

	n := width * height
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	r.used = slices.Grow(r.used[:0], height)[:height]
	clear(r.cover)
	clear(r.area)
	clear(r.used)

	for i := range r.edges {
		e := &r.edges[i]
		top, bottom := min(e.y0, e.y1), max(e.y0, e.y1)
		first := max(int(math.Floor(top)), yMin)
		last := min(int(math.Floor(bottom)), yMax-1)
		for y := first; y <= last; y++ {
			// the part of the edge inside scanline y
			ya := max(top, float64(y))
			yb := min(bottom, float64(y+1))
			if yb <= ya {
				continue
			}
			row := (y - yMin) * width
			r.accumulate(e, ya, yb, xMin, r.cover[row:row+width], r.area[row:row+width])
			r.used[y-yMin] = true
		}
	}

	for j := range height {
		if !r.used[j] {
			continue
		}
		row := r.cover[j*width : (j+1)*width]
		integrate(row, r.area[j*width:(j+1)*width], rule)
		if trimmed, offset := trimZeros(row); trimmed != nil {
			emit(yMin+j, xMin+offset, trimmed)
		}
	}
}

// accumulate adds the part of e between the heights ya < yb to the
// buffers of one scanline. Index 0 of the buffers is pixel column xMin.
func (r *Rasteriser) accumulate(e *edge, ya, yb float64, xMin int, cover, area []float32) {
	sign := 1.0
	if e.y1 < e.y0 {
		sign = -1
	}
	slope := (e.x1 - e.x0) / (e.y1 - e.y0)
	xa := e.x0 + slope*(ya-e.y0)
	xb := e.x0 + slope*(yb-e.y0)
	if xa > xb {
		xa, xb = xb, xa
	}
	h := sign * (yb - ya)
	width := len(cover)

	add := func(px int, dh, xMid float64) {
		col := px - xMin
		switch {
		case col < 0:
			cover[0] += float32(dh)
			area[0] += float32(dh)
		case col < width:
			cover[col] += float32(dh)
			area[col] += float32(dh * (1 - (xMid - float64(px))))
		}
	}

	pa := int(math.Floor(xa))
	pb := int(math.Floor(xb))
	if pa == pb || xb-xa < horizontalEdgeThreshold {
		add(pa, h, (xa+xb)/2)
		return
	}

	// split at the pixel borders between xa and xb
	dx := xb - xa
	u := xa
	if pa < xMin {
		// everything left of the buffer goes into column 0
		v := min(float64(xMin), xb)
		add(pa, h*(v-u)/dx, u)
		u = v
		pa = xMin
	}
	for px := pa; px <= pb; px++ {
		v := min(float64(px+1), xb)
		if v > u {
			add(px, h*(v-u)/dx, (u+v)/2)
		}
		u = v
		if px-xMin >= width {
			break
		}
	}
}

// integrate turns the cover and area values of one row into coverage.
// The result is stored in cover.
func integrate(cover, area []float32, rule Rule) {
	var winding float32
	for i := range cover {
		c := winding + area[i]
		winding += cover[i]
		if c < 0 {
			c = -c
		}
		if rule == EvenOdd {
			c -= 2 * float32(math.Floor(float64(c/2)))
			if c > 1 {
				c = 2 - c
			}
		} else if c > 1 {
			c = 1
		}
		cover[i] = c
	}
}

// trimZeros removes leading and trailing zeros from a coverage row.
// If the row is all zero, nil is returned.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is the default curve flattening tolerance, in device
	// pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit is the PDF default miter limit.
	defaultMiterLimit = 10.0

	// maxCurveSegments bounds the number of line segments per curve.
	maxCurveSegments = 1000
)

// Numerical tolerances.
const (
	horizontalEdgeThreshold = 1e-10
	zeroLengthThreshold     = 1e-10
	collinearityThreshold   = 1e-6
)
