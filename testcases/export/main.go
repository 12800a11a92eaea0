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

// Command export writes the curves and tight bounding boxes of all pick
// scenes to JSON, for comparison with other implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"math"
	"os"
	"slices"

	"seehuhn.de/go/pick"
	"seehuhn.de/go/pick/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name    string      `json:"name"`
	Width   int         `json:"width"`
	Height  int         `json:"height"`
	Variant string      `json:"variant,omitempty"`
	Curves  []jsonCurve `json:"curves"`
}

// jsonCurve holds one data-space curve, as used for indexing. Coordinates
// and bounds are nil for curves which cannot be drawn.
type jsonCurve struct {
	Coords []float64 `json:"coords"` // x0, y0, x1, y1, cx0, cy0, cx1, cy1
	Bounds []float64 `json:"bounds"` // minX, maxY, maxX, minY
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
	}

	gen := tc.Curves
	switch {
	case gen != nil:
	case tc.Variant == pick.VariantB:
		jtc.Variant = tc.Variant.String()
		var g pick.CircleGlyph
		if err := g.SetData(tc.Data); err != nil {
			return jtc, err
		}
		gen = g.Generation()
	default:
		jtc.Variant = tc.Variant.String()
		var err error
		gen, err = pick.NewGeneration(tc.Data, tc.Variant)
		if err != nil {
			return jtc, err
		}
	}

	for i := range gen.Len() {
		c := gen.Curve(i)
		coords := []float64{c.P0.X, c.P0.Y, c.P1.X, c.P1.Y, c.C0.X, c.C0.Y, c.C1.X, c.C1.Y}
		if !finite(coords) {
			jtc.Curves = append(jtc.Curves, jsonCurve{})
			continue
		}
		jc := jsonCurve{Coords: coords}
		if minX, maxY, maxX, minY, ok := pick.TightBBox(coords[0], coords[1], coords[2], coords[3],
			coords[4], coords[5], coords[6], coords[7]); ok {
			jc.Bounds = []float64{minX, maxY, maxX, minY}
		}
		jtc.Curves = append(jtc.Curves, jc)
	}
	return jtc, nil
}

func finite(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
