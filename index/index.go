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

// Package index provides an R-tree spatial index for pick markers.
//
// An [RTree] receives the tight bounding boxes of a glyph's elements
// through the pick.SpatialIndex interface and answers rectangle and
// point queries with element indices.
package index

import (
	"math"
	"slices"

	"github.com/dhconnelly/rtreego"
	"seehuhn.de/go/geom/rect"
)

// Branching factors of the underlying tree.
const (
	minChildren = 25
	maxChildren = 50
)

// relExtent is the padding used for degenerate boxes and for queries,
// relative to the magnitude of the coordinates. The underlying tree
// rejects rectangles of zero size and does not report rectangles which
// only touch.
const relExtent = 1e-12

// element is a single indexed bounding box.
type element struct {
	i   int
	box rect.Rect
}

// Bounds implements rtreego.Spatial.
func (e *element) Bounds() rtreego.Rect {
	b := e.box
	w := max(b.URx-b.LLx, pad(b.LLx, b.URx))
	h := max(b.URy-b.LLy, pad(b.LLy, b.URy))
	r, _ := rtreego.NewRect(rtreego.Point{b.LLx, b.LLy}, []float64{w, h})
	return r
}

// queryRect converts b into a tree rectangle, enlarged on all sides.
func queryRect(b rect.Rect) rtreego.Rect {
	dx := pad(b.LLx, b.URx)
	dy := pad(b.LLy, b.URy)
	r, _ := rtreego.NewRect(rtreego.Point{b.LLx - dx, b.LLy - dy},
		[]float64{b.URx - b.LLx + 2*dx, b.URy - b.LLy + 2*dy})
	return r
}

func pad(a, b float64) float64 {
	return relExtent * max(1, math.Abs(a), math.Abs(b))
}

// RTree is a spatial index over element bounding boxes.
// It implements pick.SpatialIndex.
//
// Elements are numbered in the order in which Add and AddEmpty are called.
// Empty elements take up an index but are never returned by queries.
type RTree struct {
	tree  *rtreego.Rtree
	boxes []rect.Rect
	valid []bool
}

// New returns an empty index.
func New() *RTree {
	return &RTree{tree: rtreego.NewTree(2, minChildren, maxChildren)}
}

// Add records the bounding box of the next element.
func (t *RTree) Add(minX, maxY, maxX, minY float64) {
	b := rect.Rect{LLx: minX, LLy: minY, URx: maxX, URy: maxY}
	if !isFiniteRect(b) || b.URx < b.LLx || b.URy < b.LLy {
		t.AddEmpty()
		return
	}
	t.tree.Insert(&element{i: len(t.boxes), box: b})
	t.boxes = append(t.boxes, b)
	t.valid = append(t.valid, true)
}

// AddEmpty records that the next element has no bounding box.
func (t *RTree) AddEmpty() {
	t.boxes = append(t.boxes, rect.Rect{})
	t.valid = append(t.valid, false)
}

// Len returns the number of elements, including empty ones.
func (t *RTree) Len() int {
	return len(t.boxes)
}

// Size returns the number of non-empty elements stored in the tree.
func (t *RTree) Size() int {
	return t.tree.Size()
}

// Box returns the bounding box of element i. The second return value is
// false if the element was added as empty or i is out of range.
func (t *RTree) Box(i int) (rect.Rect, bool) {
	if i < 0 || i >= len(t.boxes) || !t.valid[i] {
		return rect.Rect{}, false
	}
	return t.boxes[i], true
}

// Search returns the indices of all elements whose bounding box intersects
// r, in increasing order.
func (t *RTree) Search(r rect.Rect) []int {
	if !isFiniteRect(r) || r.URx < r.LLx || r.URy < r.LLy {
		return nil
	}
	var res []int
	for _, s := range t.tree.SearchIntersect(queryRect(r)) {
		e := s.(*element)
		if intersects(e.box, r) {
			res = append(res, e.i)
		}
	}
	slices.Sort(res)
	return res
}

// HitPoint returns the indices of all elements whose bounding box contains
// the point (x, y), in increasing order.
func (t *RTree) HitPoint(x, y float64) []int {
	return t.Search(rect.Rect{LLx: x, LLy: y, URx: x, URy: y})
}

// Extent returns the smallest rectangle containing all non-empty elements.
// The second return value is false if there are none.
func (t *RTree) Extent() (rect.Rect, bool) {
	var ext rect.Rect
	found := false
	for i, b := range t.boxes {
		if !t.valid[i] {
			continue
		}
		if !found {
			ext = b
			found = true
			continue
		}
		ext.LLx = min(ext.LLx, b.LLx)
		ext.LLy = min(ext.LLy, b.LLy)
		ext.URx = max(ext.URx, b.URx)
		ext.URy = max(ext.URy, b.URy)
	}
	return ext, found
}

// intersects reports whether the closed rectangles a and b overlap.
func intersects(a, b rect.Rect) bool {
	return a.LLx <= b.URx && b.LLx <= a.URx && a.LLy <= b.URy && b.LLy <= a.URy
}

func isFiniteRect(r rect.Rect) bool {
	for _, v := range []float64{r.LLx, r.LLy, r.URx, r.URy} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
