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
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
)

// Glyph draws a dataset of pick markers using [VariantA].
//
// The curves are computed in data space by SetData. MapData converts them
// to screen space, IndexData feeds their tight bounding boxes to a spatial
// index, and Render draws them.
type Glyph struct {
	Visuals Visuals

	gen    *Generation
	screen *ScreenData
}

// SetData replaces the markers of the glyph. Any previously mapped screen
// coordinates are discarded.
func (g *Glyph) SetData(d *Dataset) error {
	gen, err := NewGeneration(d, VariantA)
	if err != nil {
		return err
	}
	g.gen = gen
	g.screen = nil
	return nil
}

// Len returns the number of markers.
func (g *Glyph) Len() int {
	if g.gen == nil {
		return 0
	}
	return g.gen.Len()
}

// Generation returns the data-space curves, or nil if SetData has not
// been called.
func (g *Glyph) Generation() *Generation {
	return g.gen
}

// MapData converts the curves to screen space.
func (g *Glyph) MapData(xs, ys Scale) {
	if g.gen == nil {
		return
	}
	g.screen = g.gen.Map(xs, ys)
}

// IndexData adds the bounding box of every marker to idx.
// It returns the number of markers which were added as empty.
func (g *Glyph) IndexData(idx SpatialIndex) int {
	if g.gen == nil {
		return 0
	}
	return g.gen.Index(idx)
}

// Render draws the markers with the given indices and returns the number
// of markers drawn. MapData must have been called first.
func (g *Glyph) Render(ctx Context, indices []int) int {
	if g.screen == nil {
		return 0
	}
	return Render(ctx, g.screen, indices, g.Visuals)
}

// DrawLegendForIndex draws a single marker, using the styles of element
// index, centered in the legend swatch r (in screen coordinates).
// The marker has rotation 0 and its radius is 30% of the smaller side of
// the swatch.
func (g *Glyph) DrawLegendForIndex(ctx Context, r rect.Rect, index int) {
	drawLegend(ctx, r, index, VariantA, g.Visuals)
}

// ScenterXY would return the screen position of the center of marker i.
// Pick glyphs do not support this and always return [ErrNotImplemented].
func (g *Glyph) ScenterXY(i int) (sx, sy float64, err error) {
	return 0, 0, fmt.Errorf("pick glyph ScenterXY(%d): %w", i, ErrNotImplemented)
}

func drawLegend(ctx Context, r rect.Rect, index int, v Variant, vis Visuals) {
	radius := min(math.Abs(r.URx-r.LLx), math.Abs(r.URy-r.LLy)) * legendRadiusFraction
	cx := (r.LLx + r.URx) / 2
	cy := (r.LLy + r.URy) / 2
	c := v.Curve(cx, cy, 0, NewOffsets(radius))
	if !c.IsFinite() {
		return
	}
	drawCurve(ctx, c, index, vis)
}

// legendRadiusFraction is the legend marker radius, relative to the
// smaller side of the legend swatch.
const legendRadiusFraction = 0.3

// CircleGlyph draws a dataset of pick markers using [VariantB].
//
// In contrast to [Glyph], the curves are drawn from screen-space centers
// and radii: MapData maps the centers, and converts every radius into a
// screen distance along the x axis.
//
// For spatial indexing, the outline is computed in data space using
// [VariantA], the mirror image of VariantB. A y axis pointing up on the
// data side and down on the screen side maps it onto the drawn curve. The
// match is exact when both scales are linear with the same magnitude of
// slope.
type CircleGlyph struct {
	Visuals Visuals

	data *Dataset
	gen  *Generation

	sx, sy, sradius []float64
}

// SetData replaces the markers of the glyph.
func (g *CircleGlyph) SetData(d *Dataset) error {
	gen, err := NewGeneration(d, VariantA)
	if err != nil {
		return err
	}
	g.data = d
	g.gen = gen
	g.sx, g.sy, g.sradius = nil, nil, nil
	return nil
}

// Len returns the number of markers.
func (g *CircleGlyph) Len() int {
	if g.data == nil {
		return 0
	}
	return g.data.Len()
}

// Generation returns the data-space outlines used for indexing, or nil if
// SetData has not been called.
func (g *CircleGlyph) Generation() *Generation {
	return g.gen
}

// MapData converts the marker centers and radii to screen space.
func (g *CircleGlyph) MapData(xs, ys Scale) {
	if g.data == nil {
		return
	}
	g.sx = xs.VCompute(g.data.X)
	g.sy = ys.VCompute(g.data.Y)
	g.sradius = ScreenDistance(xs, g.data.X, g.data.radii())
}

// IndexData adds the bounding box of every marker to idx.
// It returns the number of markers which were added as empty.
func (g *CircleGlyph) IndexData(idx SpatialIndex) int {
	if g.gen == nil {
		return 0
	}
	return g.gen.Index(idx)
}

// Render draws the markers with the given indices and returns the number
// of markers drawn. Markers with a non-finite screen center or radius are
// skipped. MapData must have been called first.
func (g *CircleGlyph) Render(ctx Context, indices []int) int {
	if g.sx == nil {
		return 0
	}
	drawn := 0
	for _, i := range indices {
		sx, sy, sr := g.sx[i], g.sy[i], g.sradius[i]
		if !allFinite(sx, sy, sr) {
			continue
		}
		c := VariantB.Curve(sx, sy, g.data.Rotation[i], NewOffsets(sr))
		if !c.IsFinite() {
			continue
		}
		drawCurve(ctx, c, i, g.Visuals)
		drawn++
	}
	return drawn
}

// DrawLegendForIndex draws a single marker, using the styles of element
// index, centered in the legend swatch r.
func (g *CircleGlyph) DrawLegendForIndex(ctx Context, r rect.Rect, index int) {
	drawLegend(ctx, r, index, VariantB, g.Visuals)
}

// ScenterXY always returns [ErrNotImplemented].
func (g *CircleGlyph) ScenterXY(i int) (sx, sy float64, err error) {
	return 0, 0, fmt.Errorf("circle pick glyph ScenterXY(%d): %w", i, ErrNotImplemented)
}

// BezierFill draws arbitrary cubic Bézier curves with an outline and a
// filled interior.
type BezierFill struct {
	Visuals Visuals

	gen    *Generation
	screen *ScreenData
}

// SetCurves replaces the curves of the glyph.
func (g *BezierFill) SetCurves(gen *Generation) {
	g.gen = gen
	g.screen = nil
}

// Len returns the number of curves.
func (g *BezierFill) Len() int {
	if g.gen == nil {
		return 0
	}
	return g.gen.Len()
}

// MapData converts the curves to screen space.
func (g *BezierFill) MapData(xs, ys Scale) {
	if g.gen == nil {
		return
	}
	g.screen = g.gen.Map(xs, ys)
}

// IndexData adds the bounding box of every curve to idx.
func (g *BezierFill) IndexData(idx SpatialIndex) int {
	if g.gen == nil {
		return 0
	}
	return g.gen.Index(idx)
}

// Render draws the curves with the given indices and returns the number
// of curves drawn.
func (g *BezierFill) Render(ctx Context, indices []int) int {
	if g.screen == nil {
		return 0
	}
	return Render(ctx, g.screen, indices, g.Visuals)
}
