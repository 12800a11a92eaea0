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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

func segment(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).MoveTo(vec.Vec2{X: x0, Y: y0}).LineTo(vec.Vec2{X: x1, Y: y1})
}

func strokeArea(t *testing.T, p *path.Data, setup func(r *Rasteriser)) *grid {
	t.Helper()
	g := newGrid(30, 30)
	r := newTestRasteriser(30, 30)
	r.Width = 2
	setup(r)
	r.Stroke(p.Iter(), g.emit)
	return g
}

func TestStrokeCaps(t *testing.T) {
	p := segment(5, 5, 15, 5)

	butt := strokeArea(t, p, func(r *Rasteriser) { r.Cap = graphics.LineCapButt })
	if got := butt.total(); math.Abs(got-20) > 1e-4 {
		t.Errorf("butt: area %g, want 20", got)
	}
	if butt.at(4, 4) != 0 || butt.at(5, 4) != 1 || butt.at(14, 5) != 1 || butt.at(15, 5) != 0 {
		t.Error("butt: unexpected cap coverage")
	}

	square := strokeArea(t, p, func(r *Rasteriser) { r.Cap = graphics.LineCapSquare })
	if got := square.total(); math.Abs(got-24) > 1e-4 {
		t.Errorf("square: area %g, want 24", got)
	}

	// round caps are approximated by polygons inside the circle
	round := strokeArea(t, p, func(r *Rasteriser) { r.Cap = graphics.LineCapRound })
	if got := round.total(); got < 22.5 || got > 20+math.Pi+1e-4 {
		t.Errorf("round: area %g, want close to %g", got, 20+math.Pi)
	}
}

func TestStrokeJoins(t *testing.T) {
	p := segment(5, 5, 15, 5).LineTo(vec.Vec2{X: 15, Y: 15})
	area := func(j graphics.LineJoinStyle, limit float64) float64 {
		g := strokeArea(t, p, func(r *Rasteriser) {
			r.Join = j
			r.MiterLimit = limit
		})
		return g.total()
	}

	// two 10×2 rectangles overlapping in a unit square
	const base = 39
	if got := area(graphics.LineJoinBevel, 10); math.Abs(got-(base+0.5)) > 1e-4 {
		t.Errorf("bevel: area %g, want %g", got, base+0.5)
	}
	if got := area(graphics.LineJoinMiter, 10); math.Abs(got-(base+1)) > 1e-4 {
		t.Errorf("miter: area %g, want %g", got, base+1.0)
	}
	// the miter length ratio of a right angle is √2
	if got := area(graphics.LineJoinMiter, 1.2); math.Abs(got-(base+0.5)) > 1e-4 {
		t.Errorf("miter over limit: area %g, want bevel area %g", got, base+0.5)
	}
	if got := area(graphics.LineJoinRound, 10); got <= base+0.5 || got >= base+1 {
		t.Errorf("round: area %g, want between bevel and miter", got)
	}
}

func TestStrokeClosedHasNoCaps(t *testing.T) {
	p := box(5, 5, 15, 15)
	g := strokeArea(t, p, func(r *Rasteriser) {
		r.Cap = graphics.LineCapSquare
		r.Join = graphics.LineJoinMiter
	})
	// a 12×12 square minus an 8×8 hole
	if got := g.total(); math.Abs(got-80) > 1e-4 {
		t.Errorf("area %g, want 80", got)
	}
	if g.at(10, 10) != 0 {
		t.Error("interior painted")
	}
}

func TestStrokeDash(t *testing.T) {
	p := segment(0, 5, 20, 5)
	g := strokeArea(t, p, func(r *Rasteriser) { r.Dash = []float64{4, 2} })

	// dashes at [0,4], [6,10], [12,16] and [18,20]
	if got := g.total(); math.Abs(got-28) > 1e-4 {
		t.Errorf("area %g, want 28", got)
	}
	for x, want := range []float32{1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 0, 0, 1, 1} {
		if got := g.at(x, 5); got != want {
			t.Errorf("pixel %d: %g, want %g", x, got, want)
		}
	}

	shifted := strokeArea(t, p, func(r *Rasteriser) {
		r.Dash = []float64{4, 2}
		r.DashPhase = 7
	})
	// the phase skips one full period and one unit of the first dash
	if shifted.at(0, 5) != 1 || shifted.at(3, 5) != 0 || shifted.at(5, 5) != 1 {
		t.Errorf("phase 7: row %v", shifted.pix[5*30:5*30+20])
	}
}

func TestStrokeDotDash(t *testing.T) {
	p := segment(2, 5, 10, 5)
	dots := strokeArea(t, p, func(r *Rasteriser) {
		r.Dash = []float64{0, 4}
		r.Cap = graphics.LineCapRound
	})
	if dots.at(2, 5) == 0 || dots.at(6, 5) == 0 || dots.at(4, 5) != 0 {
		t.Errorf("round dots: row %v", dots.pix[5*30:5*30+12])
	}

	none := strokeArea(t, p, func(r *Rasteriser) {
		r.Dash = []float64{0, 4}
		r.Cap = graphics.LineCapButt
	})
	if got := none.total(); got != 0 {
		t.Errorf("butt dots: area %g, want 0", got)
	}
}

func TestStrokeDegenerate(t *testing.T) {
	p := segment(10, 10, 10, 10)

	round := strokeArea(t, p, func(r *Rasteriser) { r.Cap = graphics.LineCapRound })
	if got := round.total(); got < 2.5 || got > math.Pi+1e-4 {
		t.Errorf("round: area %g, want close to π", got)
	}
	butt := strokeArea(t, p, func(r *Rasteriser) { r.Cap = graphics.LineCapButt })
	if got := butt.total(); got != 0 {
		t.Errorf("butt: area %g, want 0", got)
	}

	// a bare MoveTo draws nothing, whatever the cap
	moveOnly := (&path.Data{}).MoveTo(vec.Vec2{X: 10, Y: 10})
	g := strokeArea(t, moveOnly, func(r *Rasteriser) { r.Cap = graphics.LineCapRound })
	if got := g.total(); got != 0 {
		t.Errorf("MoveTo only: area %g, want 0", got)
	}
}

func TestStrokeZeroWidth(t *testing.T) {
	g := strokeArea(t, segment(5, 5, 15, 5), func(r *Rasteriser) { r.Width = 0 })
	if got := g.total(); got != 0 {
		t.Errorf("area %g, want 0", got)
	}
}
