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

// Package pdfcanvas draws pick markers into a single-page PDF file.
//
// The page uses screen coordinates with the origin in the top-left corner
// and the y axis pointing down, like the raster backend. All colours are
// written as DeviceGray, and translucent colours are composited against
// the white page. Hatch patterns are drawn as vector lines clipped to the
// filled path, on the same grid as the raster backend uses for its tiles.
package pdfcanvas

import (
	"errors"
	"image/color"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/pick"
)

// Page is a PDF page which implements pick.Context.
type Page struct {
	page   *document.Page
	path   *path.Data
	closed bool

	lineWidth float64
	dash      []float64
	dashPhase float64
	fillGray  float64
	hatch     *pick.Hatch
}

var _ pick.Context = (*Page)(nil)

// ErrClosed is returned when a page is closed twice.
var ErrClosed = errors.New("pdf page already closed")

// Create starts a new PDF file with a single page of the given size, in
// PDF points. If bg is not nil, the page is first filled with bg.
// The caller must call Close to complete the file.
func Create(fileName string, width, height float64, bg color.Color) (*Page, error) {
	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	if bg != nil {
		page.SetFillColor(pdfcolor.DeviceGray(Gray(bg)))
		page.Rectangle(0, 0, width, height)
		page.Fill()
	}
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})

	p := &Page{
		page:      page,
		path:      &path.Data{},
		lineWidth: 1,
	}
	page.SetLineWidth(p.lineWidth)
	page.SetFillColor(pdfcolor.DeviceGray(0))
	page.SetStrokeColor(pdfcolor.DeviceGray(0))
	return p, nil
}

// Close writes the page and completes the PDF file.
func (p *Page) Close() error {
	if p.closed {
		return ErrClosed
	}
	p.closed = true
	return p.page.Close()
}

// BeginPath discards the current path.
func (p *Page) BeginPath() {
	p.path = &path.Data{}
}

// MoveTo starts a new subpath.
func (p *Page) MoveTo(x, y float64) {
	p.path = p.path.MoveTo(pt(x, y))
}

// BezierCurveTo appends a cubic Bézier segment to the current subpath.
func (p *Page) BezierCurveTo(cx0, cy0, cx1, cy1, x, y float64) {
	if len(p.path.Cmds) == 0 {
		p.path = p.path.MoveTo(pt(cx0, cy0))
	}
	p.path = p.path.CubeTo(pt(cx0, cy0), pt(cx1, cy1), pt(x, y))
}

// Stroke outlines the current path. The path is kept.
func (p *Page) Stroke() {
	if !p.emitPath() {
		return
	}
	p.page.Stroke()
}

// Fill paints the interior of the current path, using the nonzero
// winding rule. If a hatch is set, only the hatch is painted.
// The path is kept.
func (p *Page) Fill() {
	if p.hatch != nil {
		p.fillHatch(*p.hatch)
		return
	}
	if !p.emitPath() {
		return
	}
	p.page.Fill()
}

// emitPath writes the current path to the content stream.
// PDF painting operators consume the path, so it is written again for
// every paint operation.
func (p *Page) emitPath() bool {
	if len(p.path.Cmds) < 2 {
		return false
	}
	p.writePath(p.path)
	return true
}

func (p *Page) writePath(d *path.Data) {
	for cmd, pts := range d.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			p.page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			p.page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			p.page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			p.page.ClosePath()
		}
	}
}

// SetStrokeColor sets the colour used by Stroke.
func (p *Page) SetStrokeColor(c color.Color) {
	p.page.SetStrokeColor(pdfcolor.DeviceGray(Gray(c)))
}

// SetLineWidth sets the stroke width.
func (p *Page) SetLineWidth(w float64) {
	if w == p.lineWidth {
		return
	}
	p.lineWidth = w
	p.page.SetLineWidth(w)
}

// SetLineCap sets the shape of open line ends.
func (p *Page) SetLineCap(lc graphics.LineCapStyle) {
	p.page.SetLineCap(lc)
}

// SetLineJoin sets the shape of corners.
func (p *Page) SetLineJoin(lj graphics.LineJoinStyle) {
	p.page.SetLineJoin(lj)
}

// SetLineDash sets the dash pattern. An empty pattern gives solid lines.
func (p *Page) SetLineDash(dash []float64, phase float64) {
	if len(dash) == 0 {
		phase = 0
	}
	if slices.Equal(dash, p.dash) && phase == p.dashPhase {
		return
	}
	p.dash = slices.Clone(dash)
	p.dashPhase = phase
	p.page.SetLineDash(p.dash, phase)
}

// SetFillColor sets the colour used by Fill, and clears the hatch.
func (p *Page) SetFillColor(c color.Color) {
	p.hatch = nil
	g := Gray(c)
	if g == p.fillGray {
		return
	}
	p.fillGray = g
	p.page.SetFillColor(pdfcolor.DeviceGray(g))
}

// Gray converts c to a gray level in [0, 1], after compositing it onto a
// white background.
func Gray(c color.Color) float64 {
	if c == nil {
		return 1
	}
	r, g, b, a := c.RGBA()
	const max16 = 0xffff
	white := float64(max16 - a)
	lum := 0.299*(float64(r)+white) + 0.587*(float64(g)+white) + 0.114*(float64(b)+white)
	return min(max(lum/max16, 0), 1)
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
