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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke computes the coverage of the outline of p, using the line
// parameters Width, Cap, Join, MiterLimit, Dash and DashPhase.
//
// The outline is assembled from convex pieces: one quadrilateral per
// segment, plus polygons for joins and caps. All pieces are given the
// same orientation and filled together with the nonzero rule, so that
// overlaps are painted only once.
func (r *Rasteriser) Stroke(p path.Path, emit EmitFunc) {
	if !(r.Width > 0) {
		return
	}
	r.flatten(p)

	r.beginShape()
	dashed := r.dashPeriod() > 0
	for _, sp := range r.subpaths {
		pts := r.pts[sp.start:sp.end]
		if dashed {
			r.strokeDashed(pts, sp.closed)
			continue
		}
		var dir vec.Vec2
		if len(pts) > 1 {
			dir = unit(pts[1].Sub(pts[0]))
		}
		r.strokePolyline(pts, sp.closed, dir)
	}
	r.rasterise(NonZero, emit)
}

// strokePolyline adds the outline pieces of one polyline to the current
// shape. For a polyline consisting of a single point, dir gives the
// orientation of square caps; a zero dir suppresses them.
func (r *Rasteriser) strokePolyline(pts []vec.Vec2, closed bool, dir vec.Vec2) {
	d := r.Width / 2

	if len(pts) == 1 {
		switch r.Cap {
		case graphics.LineCapRound:
			r.addDisc(pts[0], d)
		case graphics.LineCapSquare:
			if dir != (vec.Vec2{}) {
				r.addSquareCap(pts[0], dir, d)
				r.addSquareCap(pts[0], dir.Mul(-1), d)
			}
		}
		return
	}

	n := len(pts)
	segments := n - 1
	if closed && n > 2 {
		segments = n
	} else {
		closed = false
	}

	for i := range segments {
		a, b := pts[i], pts[(i+1)%n]
		nrm := normal(unit(b.Sub(a))).Mul(d)
		r.addPolygon(a.Add(nrm), b.Add(nrm), b.Sub(nrm), a.Sub(nrm))
	}

	// joins between consecutive segments
	for i := 1; i < n; i++ {
		if i == n-1 && !closed {
			break
		}
		r.addJoin(pts[i], unit(pts[i].Sub(pts[i-1])), unit(pts[(i+1)%n].Sub(pts[i])), d)
	}
	if closed {
		r.addJoin(pts[0], unit(pts[0].Sub(pts[n-1])), unit(pts[1].Sub(pts[0])), d)
		return
	}

	r.addCap(pts[0], unit(pts[0].Sub(pts[1])), d)
	r.addCap(pts[n-1], unit(pts[n-1].Sub(pts[n-2])), d)
}

// addJoin adds the join at vertex p, where the direction changes from t1
// to t2. Only the outer side of the corner needs filling.
func (r *Rasteriser) addJoin(p, t1, t2 vec.Vec2, d float64) {
	cross := t1.X*t2.Y - t1.Y*t2.X
	dot := t1.X*t2.X + t1.Y*t2.Y
	if math.Abs(cross) < collinearityThreshold && dot > 0 {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.addDisc(p, d)
		return
	}

	// the outer side is opposite to the turning direction
	side := d
	if cross > 0 {
		side = -d
	}
	a := p.Add(normal(t1).Mul(side))
	b := p.Add(normal(t2).Mul(side))

	if r.Join == graphics.LineJoinMiter {
		// the miter length, relative to the line width, is 1/cos(φ/2)
		// where φ is the angle between the two directions
		cosHalf := math.Sqrt(max(0, (1+dot)/2))
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit+miterEpsilon {
			bis := unit(a.Sub(p).Add(b.Sub(p)))
			m := p.Add(bis.Mul(d / cosHalf))
			r.addPolygon(p, a, m, b)
			return
		}
	}
	r.addPolygon(p, a, b)
}

// addCap adds a line cap at the end point p of a line, where t points
// away from the line.
func (r *Rasteriser) addCap(p, t vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addDisc(p, d)
	case graphics.LineCapSquare:
		r.addSquareCap(p, t, d)
	}
}

func (r *Rasteriser) addSquareCap(p, t vec.Vec2, d float64) {
	nrm := normal(t).Mul(d)
	ext := p.Add(t.Mul(d))
	r.addPolygon(p.Add(nrm), ext.Add(nrm), ext.Sub(nrm), p.Sub(nrm))
}

// addDisc adds a polygonal approximation of the circle with the given
// center and radius. The number of vertices depends on the flatness.
func (r *Rasteriser) addDisc(center vec.Vec2, radius float64) {
	devRadius := radius * max(
		r.linear(vec.Vec2{X: 1}).Length(),
		r.linear(vec.Vec2{Y: 1}).Length())

	n := minDiscVertices
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		n = max(n, int(math.Ceil(2*math.Pi/step)))
	}
	n = min(n, maxCurveSegments)

	r.poly = r.poly[:0]
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		r.poly = append(r.poly, vec.Vec2{
			X: center.X + radius*math.Cos(phi),
			Y: center.Y + radius*math.Sin(phi),
		})
	}
	r.addPolygon(r.poly...)
}

// addPolygon adds a closed polygon to the current shape. The vertices
// are traversed so that the polygon has positive orientation in user
// space.
func (r *Rasteriser) addPolygon(vs ...vec.Vec2) {
	n := len(vs)
	if n < 3 {
		return
	}
	var area float64
	for i := range n {
		a, b := vs[i], vs[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}
	if area == 0 {
		return
	}
	if area > 0 {
		for i := range n {
			r.addEdge(vs[i], vs[(i+1)%n])
		}
	} else {
		for i := n; i > 0; i-- {
			r.addEdge(vs[i%n], vs[i-1])
		}
	}
}

// dashPiece is a run of points which is stroked as one open polyline.
type dashPiece struct {
	pts []vec.Vec2
	dir vec.Vec2 // direction of the underlying path, for single points
}

// dashPeriod returns the length of one full repetition of the dash
// pattern, or 0 if the pattern is unusable.
func (r *Rasteriser) dashPeriod() float64 {
	var total float64
	for _, l := range r.Dash {
		if l < 0 || math.IsNaN(l) || math.IsInf(l, 0) {
			return 0
		}
		total += l
	}
	if len(r.Dash)%2 == 1 {
		total *= 2
	}
	return total
}

// strokeDashed splits a polyline according to the dash pattern and
// strokes the "on" pieces.
func (r *Rasteriser) strokeDashed(pts []vec.Vec2, closed bool) {
	if len(pts) < 2 {
		return
	}
	if closed {
		pts = append(pts[:len(pts):len(pts)], pts[0])
	}

	// locate the phase within the pattern
	k := len(r.Dash)
	phase := math.Mod(r.DashPhase, r.dashPeriod())
	if phase < 0 {
		phase += r.dashPeriod()
	}
	idx := 0
	for phase > 0 && phase >= r.Dash[idx%k] {
		phase -= r.Dash[idx%k]
		idx++
	}
	left := r.Dash[idx%k] - phase
	on := idx%2 == 0
	startsOn := on

	r.pieces = r.pieces[:0]
	var cur []vec.Vec2
	if on {
		cur = []vec.Vec2{pts[0]}
	}
	flush := func(dir vec.Vec2) {
		if cur != nil {
			r.pieces = append(r.pieces, dashPiece{pts: cur, dir: dir})
		}
		cur = nil
	}

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := b.Sub(a).Length()
		dir := unit(b.Sub(a))
		pos := 0.0
		for segLen-pos > left {
			pos += left
			q := a.Add(dir.Mul(pos))
			if on {
				cur = append(cur, q)
				flush(dir)
			} else {
				cur = []vec.Vec2{q}
			}
			on = !on
			idx++
			left = r.Dash[idx%k]
		}
		left -= segLen - pos
		if on {
			cur = append(cur, b)
		}
		if i == len(pts)-1 {
			flush(dir)
		}
	}

	// a closed path which starts and ends inside a dash gets a join
	// instead of two caps at its start
	if closed && startsOn && on && len(r.pieces) > 1 {
		last := r.pieces[len(r.pieces)-1]
		merged := append(last.pts[:len(last.pts):len(last.pts)], r.pieces[0].pts[1:]...)
		r.pieces[0] = dashPiece{pts: merged, dir: r.pieces[0].dir}
		r.pieces = r.pieces[:len(r.pieces)-1]
	}

	for _, piece := range r.pieces {
		r.strokePolyline(dedup(piece.pts), false, piece.dir)
	}
}

// dedup removes consecutive points closer than zeroLengthThreshold.
func dedup(pts []vec.Vec2) []vec.Vec2 {
	res := pts[:1]
	for _, q := range pts[1:] {
		if q.Sub(res[len(res)-1]).Length() >= zeroLengthThreshold {
			res = append(res, q)
		}
	}
	return res
}

// unit returns v scaled to length 1, or the zero vector if v is zero.
func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return vec.Vec2{}
	}
	return v.Mul(1 / l)
}

// normal returns v rotated by 90 degrees counterclockwise.
func normal(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}

const (
	miterEpsilon    = 1e-10
	minDiscVertices = 8
)
