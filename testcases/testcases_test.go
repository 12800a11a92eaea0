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
	"image"
	"maps"
	"regexp"
	"slices"
	"testing"

	"seehuhn.de/go/pick/raster"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestNames(t *testing.T) {
	seen := map[string]bool{}
	for _, category := range slices.Sorted(maps.Keys(All)) {
		if !validName.MatchString(category) {
			t.Errorf("invalid category name %q", category)
		}
		for _, tc := range All[category] {
			name := category + "_" + tc.Name
			if !validName.MatchString(tc.Name) {
				t.Errorf("invalid test case name %q", name)
			}
			if seen[name] {
				t.Errorf("duplicate test case %q", name)
			}
			seen[name] = true
		}
	}
}

func TestRenderAll(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				if tc.Curves == nil {
					if err := tc.Data.Check(); err != nil {
						t.Fatal(err)
					}
				}

				img := image.NewRGBA(image.Rect(0, 0, tc.Width, tc.Height))
				drawn, err := tc.Render(raster.NewCanvas(img))
				if err != nil {
					t.Fatal(err)
				}
				if want := tc.Count() - tc.Skipped; drawn != want {
					t.Errorf("drew %d markers, want %d", drawn, want)
				}
				if drawn > 0 && !painted(img) {
					t.Error("no pixel was painted")
				}
			})
		}
	}
}

func painted(img *image.RGBA) bool {
	for _, v := range img.Pix {
		if v != 0 {
			return true
		}
	}
	return false
}
