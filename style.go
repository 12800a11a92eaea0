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
	"image/color"

	"seehuhn.de/go/pdf/graphics"
)

// Style is one visual aspect of a glyph (line, fill or hatch) which can
// vary from element to element.
type Style interface {
	// Doit reports whether the style paints anything at all.
	// If Doit returns false, the corresponding paint operation is skipped
	// for all elements.
	Doit() bool

	// SetVectorize configures ctx with the parameters for element i.
	SetVectorize(ctx Context, i int)
}

// Uniform is a style property which is either the same for all elements
// or given per element.
type Uniform[T any] struct {
	Value  T   // used if Values is nil
	Values []T // one value per element
}

// Scalar returns a Uniform which has the value v for every element.
func Scalar[T any](v T) Uniform[T] {
	return Uniform[T]{Value: v}
}

// Array returns a Uniform with one value per element.
func Array[T any](vs []T) Uniform[T] {
	return Uniform[T]{Values: vs}
}

// At returns the value for element i.
func (u Uniform[T]) At(i int) T {
	if u.Values != nil {
		return u.Values[i]
	}
	return u.Value
}

// IsScalar reports whether the value is the same for all elements.
func (u Uniform[T]) IsScalar() bool {
	return u.Values == nil
}

// LineStyle describes how the outline of a glyph is stroked.
type LineStyle struct {
	Color Uniform[color.Color] // nil colour means no line
	Alpha Uniform[float64]     // multiplies the alpha of Color
	Width Uniform[float64]
	Cap   graphics.LineCapStyle
	Join  graphics.LineJoinStyle
	Dash  []float64 // nil for solid lines
	Phase float64
}

// NewLineStyle returns an opaque solid line style with the given colour
// and width, using butt caps and bevel joins.
func NewLineStyle(c color.Color, width float64) *LineStyle {
	return &LineStyle{
		Color: Scalar(c),
		Alpha: Scalar(1.0),
		Width: Scalar(width),
		Cap:   graphics.LineCapButt,
		Join:  graphics.LineJoinBevel,
	}
}

// Doit implements the [Style] interface.
func (s *LineStyle) Doit() bool {
	if s == nil {
		return false
	}
	if s.Color.IsScalar() && s.Color.Value == nil {
		return false
	}
	if s.Alpha.IsScalar() && s.Alpha.Value == 0 {
		return false
	}
	if s.Width.IsScalar() && s.Width.Value == 0 {
		return false
	}
	return true
}

// SetVectorize implements the [Style] interface.
func (s *LineStyle) SetVectorize(ctx Context, i int) {
	ctx.SetStrokeColor(withAlpha(s.Color.At(i), s.Alpha.At(i)))
	ctx.SetLineWidth(s.Width.At(i))
	ctx.SetLineCap(s.Cap)
	ctx.SetLineJoin(s.Join)
	ctx.SetLineDash(s.Dash, s.Phase)
}

// FillStyle describes how the interior of a glyph is filled with a solid
// colour.
type FillStyle struct {
	Color Uniform[color.Color] // nil colour means no fill
	Alpha Uniform[float64]     // multiplies the alpha of Color
}

// NewFillStyle returns an opaque fill style with the given colour.
func NewFillStyle(c color.Color) *FillStyle {
	return &FillStyle{
		Color: Scalar(c),
		Alpha: Scalar(1.0),
	}
}

// Doit implements the [Style] interface.
func (s *FillStyle) Doit() bool {
	if s == nil {
		return false
	}
	if s.Color.IsScalar() && s.Color.Value == nil {
		return false
	}
	if s.Alpha.IsScalar() && s.Alpha.Value == 0 {
		return false
	}
	return true
}

// SetVectorize implements the [Style] interface.
func (s *FillStyle) SetVectorize(ctx Context, i int) {
	ctx.SetFillColor(withAlpha(s.Color.At(i), s.Alpha.At(i)))
}

// HatchStyle describes a hatch pattern painted over the interior of a
// glyph, on top of the fill.
type HatchStyle struct {
	Pattern Uniform[HatchPattern]
	Scale   Uniform[float64]
	Weight  Uniform[float64]
	Color   Uniform[color.Color]
	Alpha   Uniform[float64]
}

// NewHatchStyle returns an opaque hatch style with the given pattern and
// colour, using tiles of 12 screen units and lines of width 1.
func NewHatchStyle(p HatchPattern, c color.Color) *HatchStyle {
	return &HatchStyle{
		Pattern: Scalar(p),
		Scale:   Scalar(12.0),
		Weight:  Scalar(1.0),
		Color:   Scalar(c),
		Alpha:   Scalar(1.0),
	}
}

// Doit implements the [Style] interface.
func (s *HatchStyle) Doit() bool {
	if s == nil {
		return false
	}
	if s.Pattern.IsScalar() && s.Pattern.Value == HatchNone {
		return false
	}
	if s.Color.IsScalar() && s.Color.Value == nil {
		return false
	}
	if s.Alpha.IsScalar() && s.Alpha.Value == 0 {
		return false
	}
	return true
}

// SetVectorize implements the [Style] interface.
func (s *HatchStyle) SetVectorize(ctx Context, i int) {
	ctx.SetHatch(Hatch{
		Pattern: s.Pattern.At(i),
		Scale:   s.Scale.At(i),
		Weight:  s.Weight.At(i),
		Color:   withAlpha(s.Color.At(i), s.Alpha.At(i)),
	})
}

// Visuals collects the styles of a glyph. A nil style is inactive.
type Visuals struct {
	Line  Style // stroked along the outline
	Fill  Style // fills the interior
	Hatch Style // fills the interior after Fill
}

// withAlpha returns c with its alpha multiplied by alpha.
// A nil colour is returned as fully transparent black.
func withAlpha(c color.Color, alpha float64) color.Color {
	if c == nil {
		return color.NRGBA{}
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	alpha = max(0, min(1, alpha))
	nc.A = uint8(float64(nc.A)*alpha + 0.5)
	return nc
}
