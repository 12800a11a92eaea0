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
	"image/color"
	"image/draw"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/pick"
)

// Canvas draws onto an RGBA image, using source-over compositing.
// It implements the [pick.Context] interface. Coordinates are image
// pixel coordinates, with y growing downwards.
type Canvas struct {
	Image *image.RGBA

	r    *Rasteriser
	path *path.Data

	strokeColor color.Color
	lineWidth   float64
	lineCap     graphics.LineCapStyle
	lineJoin    graphics.LineJoinStyle
	dash        []float64
	dashPhase   float64

	fillColor color.Color
	hatch     *pick.Hatch

	tiles *expirable.LRU[tileKey, *image.Alpha]
}

var _ pick.Context = (*Canvas)(nil)

// NewCanvas returns a canvas which draws onto img.
// Initially, strokes and fills are opaque black and lines have width 1.
func NewCanvas(img *image.RGBA) *Canvas {
	b := img.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X), LLy: float64(b.Min.Y),
		URx: float64(b.Max.X), URy: float64(b.Max.Y),
	}
	return &Canvas{
		Image:       img,
		r:           NewRasteriser(clip),
		path:        &path.Data{},
		strokeColor: color.Black,
		lineWidth:   1,
		lineCap:     graphics.LineCapButt,
		lineJoin:    graphics.LineJoinMiter,
		fillColor:   color.Black,
		tiles:       expirable.NewLRU[tileKey, *image.Alpha](tileCacheSize, nil, 0),
	}
}

// Clear sets every pixel of the image to c.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.Image, c.Image.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// BeginPath implements the [pick.Context] interface.
func (c *Canvas) BeginPath() {
	c.path.Cmds = c.path.Cmds[:0]
	c.path.Coords = c.path.Coords[:0]
}

// MoveTo implements the [pick.Context] interface.
func (c *Canvas) MoveTo(x, y float64) {
	c.path = c.path.MoveTo(vec.Vec2{X: x, Y: y})
}

// BezierCurveTo implements the [pick.Context] interface.
// Without a current point, the curve starts at the first control point.
func (c *Canvas) BezierCurveTo(cx0, cy0, cx1, cy1, x, y float64) {
	c0 := vec.Vec2{X: cx0, Y: cy0}
	if len(c.path.Cmds) == 0 {
		c.path = c.path.MoveTo(c0)
	}
	c.path = c.path.CubeTo(c0, vec.Vec2{X: cx1, Y: cy1}, vec.Vec2{X: x, Y: y})
}

// Stroke implements the [pick.Context] interface.
func (c *Canvas) Stroke() {
	c.r.Width = c.lineWidth
	c.r.Cap = c.lineCap
	c.r.Join = c.lineJoin
	c.r.Dash = c.dash
	c.r.DashPhase = c.dashPhase
	c.r.Stroke(c.path.Iter(), c.painter(c.strokeColor, nil))
}

// Fill implements the [pick.Context] interface.
// The path is filled using the nonzero winding rule.
func (c *Canvas) Fill() {
	if c.hatch != nil {
		tile := c.hatchTile(*c.hatch)
		c.r.Fill(c.path.Iter(), NonZero, c.painter(c.hatch.Color, tile))
		return
	}
	c.r.Fill(c.path.Iter(), NonZero, c.painter(c.fillColor, nil))
}

// SetStrokeColor implements the [pick.Context] interface.
func (c *Canvas) SetStrokeColor(col color.Color) { c.strokeColor = col }

// SetLineWidth implements the [pick.Context] interface.
func (c *Canvas) SetLineWidth(w float64) { c.lineWidth = w }

// SetLineCap implements the [pick.Context] interface.
func (c *Canvas) SetLineCap(lc graphics.LineCapStyle) { c.lineCap = lc }

// SetLineJoin implements the [pick.Context] interface.
func (c *Canvas) SetLineJoin(lj graphics.LineJoinStyle) { c.lineJoin = lj }

// SetLineDash implements the [pick.Context] interface.
func (c *Canvas) SetLineDash(dash []float64, phase float64) {
	c.dash = dash
	c.dashPhase = phase
}

// SetFillColor implements the [pick.Context] interface.
func (c *Canvas) SetFillColor(col color.Color) {
	c.fillColor = col
	c.hatch = nil
}

// SetHatch implements the [pick.Context] interface.
func (c *Canvas) SetHatch(h pick.Hatch) {
	c.hatch = &h
}

// painter returns an EmitFunc which composites col onto the image.
// If mask is not nil, the coverage is multiplied by the mask, repeated
// across the whole image.
func (c *Canvas) painter(col color.Color, mask *image.Alpha) EmitFunc {
	if col == nil {
		return func(int, int, []float32) {}
	}
	r, g, b, a := col.RGBA()
	if a == 0 {
		return func(int, int, []float32) {}
	}
	// premultiplied source, scaled to 0-255
	sr := float32(r) / 257
	sg := float32(g) / 257
	sb := float32(b) / 257
	sa := float32(a) / 257

	img := c.Image
	return func(y, xMin int, coverage []float32) {
		off := img.PixOffset(xMin, y)
		for i, cov := range coverage {
			if mask != nil {
				cov *= tileAlpha(mask, xMin+i, y)
			}
			if cov <= 0 {
				continue
			}
			px := img.Pix[off+4*i : off+4*i+4 : off+4*i+4]
			keep := 1 - cov*sa/255
			px[0] = clamp8(sr*cov + float32(px[0])*keep)
			px[1] = clamp8(sg*cov + float32(px[1])*keep)
			px[2] = clamp8(sb*cov + float32(px[2])*keep)
			px[3] = clamp8(sa*cov + float32(px[3])*keep)
		}
	}
}

func clamp8(v float32) uint8 {
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v + 0.5)
}
