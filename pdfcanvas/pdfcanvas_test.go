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
	"bytes"
	"errors"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pick"
)

func TestGray(t *testing.T) {
	cases := []struct {
		c    color.Color
		want float64
	}{
		{color.Black, 0},
		{color.White, 1},
		{color.Transparent, 1},
		{nil, 1},
		{color.Gray{Y: 0x80}, float64(0x8080) / 0xffff},
		{color.NRGBA{A: 0x80}, 1 - float64(0x8080)/0xffff},
		{color.RGBA{R: 0xff, A: 0xff}, 0.299},
	}
	for _, c := range cases {
		if got := Gray(c.c); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Gray(%v) = %g, want %g", c.c, got, c.want)
		}
	}
}

func TestWritePicks(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "picks.pdf")
	page, err := Create(fileName, 200, 100, color.White)
	if err != nil {
		t.Fatal(err)
	}

	d := &pick.Dataset{
		X:        []float64{0, 1, 2, math.NaN()},
		Y:        []float64{0, 1, 0, 0},
		Rotation: []float64{0, 90, 180, 0},
		Radius:   []float64{0.1, 0.1, 0.2, 0.1},
	}
	g := pick.Glyph{
		Visuals: pick.Visuals{
			Line: pick.NewLineStyle(color.Black, 1),
			Fill: pick.NewFillStyle(color.Gray{Y: 0xc0}),
		},
	}
	if err := g.SetData(d); err != nil {
		t.Fatal(err)
	}
	xs := &pick.LinearScale{SourceStart: -1, SourceEnd: 3, TargetStart: 0, TargetEnd: 200}
	ys := &pick.LinearScale{SourceStart: -1, SourceEnd: 2, TargetStart: 100, TargetEnd: 0}
	g.MapData(xs, ys)
	if n := g.Render(page, []int{0, 1, 2, 3}); n != 3 {
		t.Errorf("drew %d markers, want 3", n)
	}
	g.DrawLegendForIndex(page, rect.Rect{LLx: 170, LLy: 5, URx: 190, URy: 25}, 0)

	if err := page.Close(); err != nil {
		t.Fatal(err)
	}
	if err := page.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("second Close() = %v, want ErrClosed", err)
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("missing PDF header: %q", data[:min(len(data), 8)])
	}
	if !bytes.Contains(data[max(0, len(data)-32):], []byte("%%EOF")) {
		t.Error("missing end-of-file marker")
	}
}

func TestEmptyPathIsNotPainted(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "empty.pdf")
	page, err := Create(fileName, 10, 10, nil)
	if err != nil {
		t.Fatal(err)
	}
	page.BeginPath()
	if page.emitPath() {
		t.Error("empty path was written")
	}
	page.MoveTo(1, 1)
	if page.emitPath() {
		t.Error("lone MoveTo was written")
	}
	if err := page.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestHatchKeepsFillColor(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "hatch.pdf")
	page, err := Create(fileName, 10, 10, nil)
	if err != nil {
		t.Fatal(err)
	}
	page.SetFillColor(color.Gray{Y: 0x80})
	want := page.fillGray
	page.SetHatch(pick.Hatch{Pattern: pick.HatchCross, Scale: 4, Weight: 1, Color: color.Black})
	if page.hatch == nil {
		t.Fatal("hatch not set")
	}
	if page.fillGray != want {
		t.Errorf("fill gray changed to %g by SetHatch, want %g", page.fillGray, want)
	}
	page.SetFillColor(color.White)
	if page.hatch != nil {
		t.Error("SetFillColor does not clear the hatch")
	}
	if page.fillGray != 1 {
		t.Errorf("fill gray = %g, want 1", page.fillGray)
	}
	if err := page.Close(); err != nil {
		t.Fatal(err)
	}
}

// onGrid reports whether v = off + k·s for some integer k.
func onGrid(v, off, s float64) bool {
	r := math.Mod(v-off, s)
	if r < 0 {
		r += s
	}
	return r < 1e-9 || s-r < 1e-9
}

func TestHatchPattern(t *testing.T) {
	square := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 11, Y: 1}).
		LineTo(vec.Vec2{X: 11, Y: 11}).
		LineTo(vec.Vec2{X: 1, Y: 11}).
		Close()
	const s = 4

	// check is called for every segment start (a) and end (b) point
	cases := []struct {
		pattern pick.HatchPattern
		filled  bool
		check   func(a, b vec.Vec2) bool
	}{
		{pick.HatchHorizontal, false, func(a, b vec.Vec2) bool {
			return a.Y == b.Y && onGrid(a.Y, s/2, s)
		}},
		{pick.HatchVertical, false, func(a, b vec.Vec2) bool {
			return a.X == b.X && onGrid(a.X, s/2, s)
		}},
		{pick.HatchRightDiagonal, false, func(a, b vec.Vec2) bool {
			return onGrid(a.X+a.Y, 0, s) && onGrid(b.X+b.Y, 0, s)
		}},
		{pick.HatchLeftDiagonal, false, func(a, b vec.Vec2) bool {
			return onGrid(a.X-a.Y, 0, s) && onGrid(b.X-b.Y, 0, s)
		}},
		{pick.HatchDot, true, func(a, b vec.Vec2) bool {
			// first point of each circle is (cx + r, cy)
			return onGrid(a.X-1, s/2, s) && onGrid(a.Y, s/2, s)
		}},
		{pick.HatchRing, false, func(a, b vec.Vec2) bool {
			return onGrid(a.X-s/4, s/2, s) && onGrid(a.Y, s/2, s)
		}},
	}
	for _, c := range cases {
		h := pick.Hatch{Pattern: c.pattern, Scale: s, Weight: 1, Color: color.Black}
		pattern, filled := hatchPattern(h, square)
		if pattern == nil {
			t.Errorf("%q: no pattern", c.pattern)
			continue
		}
		if filled != c.filled {
			t.Errorf("%q: filled = %t, want %t", c.pattern, filled, c.filled)
		}
		var start vec.Vec2
		n := 0
		for cmd, pts := range pattern.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				start = pts[0]
			case path.CmdLineTo:
				n++
				if !c.check(start, pts[0]) {
					t.Errorf("%q: segment %v-%v is off the grid", c.pattern, start, pts[0])
				}
			case path.CmdCubeTo:
				if pts[2] != start {
					continue
				}
				n++
				if !c.check(start, start) {
					t.Errorf("%q: circle at %v is off the grid", c.pattern, start)
				}
			}
		}
		if n < 3 {
			t.Errorf("%q: only %d elements cover a square of size %d", c.pattern, n, 10)
		}
	}

	for _, h := range []pick.Hatch{
		{Pattern: pick.HatchNone, Scale: s, Weight: 1, Color: color.Black},
		{Pattern: pick.HatchCross, Scale: s, Weight: 0, Color: color.Black},
	} {
		if pattern, _ := hatchPattern(h, square); pattern != nil {
			t.Errorf("%q with weight %g: unexpected pattern", h.Pattern, h.Weight)
		}
	}
	if pattern, _ := hatchPattern(pick.Hatch{Pattern: pick.HatchCross, Scale: s, Weight: 1}, &path.Data{}); pattern != nil {
		t.Error("empty clip path gives a pattern")
	}
}

func TestWriteHatchedPicks(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "hatched.pdf")
	page, err := Create(fileName, 200, 100, color.White)
	if err != nil {
		t.Fatal(err)
	}

	patterns := []pick.HatchPattern{
		pick.HatchDot, pick.HatchRing, pick.HatchHorizontal, pick.HatchVertical,
		pick.HatchCross, pick.HatchRightDiagonal, pick.HatchLeftDiagonal,
		pick.HatchDiagonalCross,
	}
	d := &pick.Dataset{}
	var idx []int
	for i := range patterns {
		idx = append(idx, i)
		d.X = append(d.X, float64(i))
		d.Y = append(d.Y, 0)
		d.Rotation = append(d.Rotation, float64(45*i))
		d.Radius = append(d.Radius, 0.4)
	}
	hatch := pick.NewHatchStyle(pick.HatchNone, color.Black)
	hatch.Pattern = pick.Array(patterns)
	g := pick.Glyph{
		Visuals: pick.Visuals{
			Line:  pick.NewLineStyle(color.Black, 1),
			Fill:  pick.NewFillStyle(color.Gray{Y: 0xc0}),
			Hatch: hatch,
		},
	}
	if err := g.SetData(d); err != nil {
		t.Fatal(err)
	}
	xs := &pick.LinearScale{SourceStart: -1, SourceEnd: 8, TargetStart: 0, TargetEnd: 200}
	ys := &pick.LinearScale{SourceStart: -2, SourceEnd: 2, TargetStart: 100, TargetEnd: 0}
	g.MapData(xs, ys)
	if n := g.Render(page, idx); n != len(patterns) {
		t.Errorf("drew %d markers, want %d", n, len(patterns))
	}
	if page.hatch == nil {
		t.Error("hatch not active after rendering")
	}

	if err := page.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("missing PDF header: %q", data[:min(len(data), 8)])
	}
}
