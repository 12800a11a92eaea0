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

package testcases

import (
	"image/color"
	"math"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/pick"
)

var (
	black = color.Gray{Y: 0}
	gray  = color.Gray{Y: 0xb0}
	red   = color.NRGBA{R: 0xd0, G: 0x20, B: 0x20, A: 0xff}
	blue  = color.NRGBA{R: 0x20, G: 0x40, B: 0xd0, A: 0xff}
)

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference image filenames.
var All = map[string][]TestCase{
	"basic":  basicCases,
	"style":  styleCases,
	"hatch":  hatchCases(),
	"edge":   edgeCases,
	"bezier": bezierCases,
}

var basicCases = []TestCase{
	{
		Name:    "single_a",
		Width:   64,
		Height:  64,
		Data:    &pick.Dataset{X: []float64{0}, Y: []float64{0}, Rotation: []float64{0}, Radius: []float64{4}},
		Variant: pick.VariantA,
		Visuals: solid(),
		XRange:  [2]float64{-16, 16},
		YRange:  [2]float64{-16, 16},
	},
	{
		Name:    "single_b",
		Width:   64,
		Height:  64,
		Data:    &pick.Dataset{X: []float64{0}, Y: []float64{0}, Rotation: []float64{0}, Radius: []float64{4}},
		Variant: pick.VariantB,
		Visuals: solid(),
		XRange:  [2]float64{-16, 16},
		YRange:  [2]float64{-16, 16},
	},
	{
		Name:    "rotations",
		Width:   128,
		Height:  128,
		Data:    ring(8, 0, 0, 10, 1.5),
		Variant: pick.VariantA,
		Visuals: solid(),
		XRange:  [2]float64{-16, 16},
		YRange:  [2]float64{-16, 16},
	},
	{
		Name:    "rotations_b",
		Width:   128,
		Height:  128,
		Data:    ring(8, 0, 0, 10, 1.5),
		Variant: pick.VariantB,
		Visuals: solid(),
		XRange:  [2]float64{-16, 16},
		YRange:  [2]float64{-16, 16},
	},
	{
		Name:   "radii",
		Width:  160,
		Height: 64,
		Data: &pick.Dataset{
			X:        []float64{1, 3, 6, 10},
			Y:        []float64{2, 2, 2, 2},
			Rotation: []float64{0, 0, 0, 0},
			Radius:   []float64{0.1, 0.2, 0.4, 0.6},
		},
		Variant: pick.VariantA,
		Visuals: solid(),
		XRange:  [2]float64{0, 12},
		YRange:  [2]float64{0, 4},
	},
	{
		Name:    "default_radius",
		Width:   64,
		Height:  64,
		Data:    &pick.Dataset{X: []float64{0}, Y: []float64{0}, Rotation: []float64{45}},
		Variant: pick.VariantA,
		Visuals: solid(),
		XRange:  [2]float64{-8, 8},
		YRange:  [2]float64{-8, 8},
	},
}

var styleCases = []TestCase{
	{
		Name:    "line_only",
		Width:   64,
		Height:  64,
		Data:    ring(3, 0, 0, 8, 1.2),
		Visuals: pick.Visuals{Line: pick.NewLineStyle(black, 1)},
		XRange:  [2]float64{-16, 16},
		YRange:  [2]float64{-16, 16},
	},
	{
		Name:    "fill_only",
		Width:   64,
		Height:  64,
		Data:    ring(3, 0, 0, 8, 1.2),
		Visuals: pick.Visuals{Fill: pick.NewFillStyle(blue)},
		XRange:  [2]float64{-16, 16},
		YRange:  [2]float64{-16, 16},
	},
	{
		Name:    "thick_round",
		Width:   96,
		Height:  96,
		Data:    &pick.Dataset{X: []float64{0}, Y: []float64{0}, Rotation: []float64{30}, Radius: []float64{3}},
		Visuals: pick.Visuals{Line: roundLine(4), Fill: pick.NewFillStyle(gray)},
		XRange:  [2]float64{-12, 12},
		YRange:  [2]float64{-12, 12},
	},
	{
		Name:    "dashed",
		Width:   96,
		Height:  96,
		Data:    &pick.Dataset{X: []float64{0}, Y: []float64{0}, Rotation: []float64{0}, Radius: []float64{3}},
		Visuals: pick.Visuals{Line: dashedLine(1.5, []float64{4, 2})},
		XRange:  [2]float64{-12, 12},
		YRange:  [2]float64{-12, 12},
	},
	{
		Name:    "alpha",
		Width:   96,
		Height:  96,
		Data:    ring(6, 0, 0, 2, 2),
		Visuals: translucent(0.5),
		XRange:  [2]float64{-12, 12},
		YRange:  [2]float64{-12, 12},
	},
	{
		Name:   "per_element",
		Width:  128,
		Height: 64,
		Data: &pick.Dataset{
			X:        []float64{-6, 0, 6},
			Y:        []float64{0, 0, 0},
			Rotation: []float64{0, 120, 240},
			Radius:   []float64{1.5, 1.5, 1.5},
		},
		Visuals: pick.Visuals{
			Line: &pick.LineStyle{
				Color: pick.Array([]color.Color{black, red, nil}),
				Alpha: pick.Scalar(1.0),
				Width: pick.Array([]float64{1, 2, 3}),
				Cap:   graphics.LineCapButt,
				Join:  graphics.LineJoinBevel,
			},
			Fill: &pick.FillStyle{
				Color: pick.Array([]color.Color{gray, nil, blue}),
				Alpha: pick.Array([]float64{1, 1, 0.5}),
			},
		},
		XRange: [2]float64{-12, 12},
		YRange: [2]float64{-6, 6},
	},
}

func hatchCases() []TestCase {
	patterns := []struct {
		name string
		p    pick.HatchPattern
	}{
		{"dot", pick.HatchDot},
		{"ring", pick.HatchRing},
		{"horizontal", pick.HatchHorizontal},
		{"vertical", pick.HatchVertical},
		{"cross", pick.HatchCross},
		{"right_diagonal", pick.HatchRightDiagonal},
		{"left_diagonal", pick.HatchLeftDiagonal},
		{"diagonal_cross", pick.HatchDiagonalCross},
	}
	var res []TestCase
	for _, pat := range patterns {
		hs := pick.NewHatchStyle(pat.p, black)
		hs.Scale = pick.Scalar(8.0)
		res = append(res, TestCase{
			Name:   pat.name,
			Width:  96,
			Height: 96,
			Data:   &pick.Dataset{X: []float64{0}, Y: []float64{0}, Rotation: []float64{0}, Radius: []float64{3.5}},
			Visuals: pick.Visuals{
				Line:  pick.NewLineStyle(black, 1),
				Fill:  pick.NewFillStyle(color.White),
				Hatch: hs,
			},
			XRange: [2]float64{-12, 12},
			YRange: [2]float64{-12, 12},
		})
	}
	return res
}

var edgeCases = []TestCase{
	{
		Name:   "missing",
		Width:  96,
		Height: 64,
		Data: &pick.Dataset{
			X:        []float64{-4, math.NaN(), 4, 0},
			Y:        []float64{0, 0, 0, math.Inf(1)},
			Rotation: []float64{0, 0, 0, 0},
			Radius:   []float64{1, 1, 1, 1},
		},
		Visuals: solid(),
		XRange:  [2]float64{-8, 8},
		YRange:  [2]float64{-4, 4},
		Skipped: 2,
	},
	{
		Name:   "nan_radius",
		Width:  64,
		Height: 64,
		Data: &pick.Dataset{
			X:        []float64{-2, 2},
			Y:        []float64{0, 0},
			Rotation: []float64{0, math.NaN()},
			Radius:   []float64{math.NaN(), 1},
		},
		Visuals: solid(),
		XRange:  [2]float64{-8, 8},
		YRange:  [2]float64{-8, 8},
		Skipped: 2,
	},
	{
		Name:    "clipped",
		Width:   64,
		Height:  64,
		Data:    &pick.Dataset{X: []float64{-7, 7}, Y: []float64{7, -7}, Rotation: []float64{0, 180}, Radius: []float64{2, 2}},
		Visuals: solid(),
		XRange:  [2]float64{-8, 8},
		YRange:  [2]float64{-8, 8},
	},
	{
		Name:    "zero_radius",
		Width:   32,
		Height:  32,
		Data:    &pick.Dataset{X: []float64{0}, Y: []float64{0}, Rotation: []float64{0}, Radius: []float64{0}},
		Visuals: pick.Visuals{Line: roundLine(2)},
		XRange:  [2]float64{-4, 4},
		YRange:  [2]float64{-4, 4},
	},
	{
		Name:   "log_axes",
		Width:  128,
		Height: 128,
		Data: &pick.Dataset{
			X:        []float64{1, 10, 100},
			Y:        []float64{1, 10, 100},
			Rotation: []float64{0, 0, 0},
			Radius:   []float64{0.2, 2, 20},
		},
		Variant: pick.VariantA,
		Visuals: solid(),
		XRange:  [2]float64{0.1, 1000},
		YRange:  [2]float64{0.1, 1000},
		LogX:    true,
		LogY:    true,
	},
	{
		Name:    "log_axes_b",
		Width:   128,
		Height:  128,
		Data:    &pick.Dataset{X: []float64{1, 10, 100, -1}, Y: []float64{1, 10, 100, 1}, Rotation: []float64{0, 0, 0, 0}},
		Variant: pick.VariantB,
		Visuals: solid(),
		XRange:  [2]float64{0.1, 1000},
		YRange:  [2]float64{0.1, 1000},
		LogX:    true,
		LogY:    true,
		Skipped: 1,
	},
}

var bezierCases = []TestCase{
	{
		Name:    "arches",
		Width:   96,
		Height:  64,
		Curves:  mustCurves([][8]float64{{0, 0, 4, 0, 1, 4, 3, 4}, {5, 0, 9, 0, 4, 6, 10, 6}}),
		Visuals: solid(),
		XRange:  [2]float64{-1, 11},
		YRange:  [2]float64{-1, 7},
	},
	{
		Name:    "loop",
		Width:   64,
		Height:  64,
		Curves:  mustCurves([][8]float64{{2, 2, 2, 2, 8, 8, -4, 8}}),
		Visuals: solid(),
		XRange:  [2]float64{-4, 8},
		YRange:  [2]float64{0, 8},
	},
}

// mustCurves builds a generation from rows of x0, y0, x1, y1, cx0, cy0,
// cx1, cy1.
func mustCurves(rows [][8]float64) *pick.Generation {
	var cols [8][]float64
	for _, r := range rows {
		for j := range cols {
			cols[j] = append(cols[j], r[j])
		}
	}
	g, err := pick.NewGenerationFromCurves(cols[0], cols[1], cols[2], cols[3], cols[4], cols[5], cols[6], cols[7])
	if err != nil {
		panic(err)
	}
	return g
}

func roundLine(width float64) *pick.LineStyle {
	ls := pick.NewLineStyle(black, width)
	ls.Cap = graphics.LineCapRound
	ls.Join = graphics.LineJoinRound
	return ls
}

func dashedLine(width float64, dash []float64) *pick.LineStyle {
	ls := pick.NewLineStyle(black, width)
	ls.Dash = dash
	return ls
}

func translucent(alpha float64) pick.Visuals {
	ls := pick.NewLineStyle(black, 1)
	fs := pick.NewFillStyle(red)
	fs.Alpha = pick.Scalar(alpha)
	return pick.Visuals{Line: ls, Fill: fs}
}

// sincos returns the sine and cosine of an angle in degrees.
func sincos(deg float64) (s, c float64) {
	return math.Sincos(deg * math.Pi / 180)
}
