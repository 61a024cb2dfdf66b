// Copyright (c) 2024-2025, The WiFi-Sim Authors.
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
// 1. Redistributions of source code must retain the above copyright
//    notice, this list of conditions and the following disclaimer.
// 2. Redistributions in binary form must reproduce the above copyright
//    notice, this list of conditions and the following disclaimer in the
//    documentation and/or other materials provided with the distribution.
// 3. Neither the name of the copyright holder nor the
//    names of its contributors may be used to endorse or promote products
//    derived from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

package geom

import (
	"math"

	"github.com/dhconnelly/rtreego"

	. "github.com/xkid/WiFi-Sim/types"
)

const (
	rtreeMinChildren = 25
	rtreeMaxChildren = 50

	// padding so axis-aligned and degenerate walls still get a valid rect
	rectEpsilon = 1e-9
)

// wallEntry wraps a wall to implement the rtreego.Spatial interface.
type wallEntry struct {
	wall Wall
	rect *rtreego.Rect
}

func (we *wallEntry) Bounds() *rtreego.Rect {
	return we.rect
}

// WallIndex is an R-tree over wall bounding boxes, used to narrow the walls
// that need the exact crossing test during grid sampling. Build once per
// wall set; lookups are read-only and safe from parallel workers.
type WallIndex struct {
	tree  *rtreego.Rtree
	count int
}

// NewWallIndex indexes the given walls. The walls are copied by value; the
// caller keeps ownership of the slice.
func NewWallIndex(walls []Wall) *WallIndex {
	ix := &WallIndex{
		tree: rtreego.NewTree(2, rtreeMinChildren, rtreeMaxChildren),
	}
	for _, w := range walls {
		ix.tree.Insert(&wallEntry{wall: w, rect: segmentRect(w.Start, w.End)})
		ix.count++
	}
	return ix
}

// Len returns the number of indexed walls.
func (ix *WallIndex) Len() int {
	return ix.count
}

// Candidates returns the walls whose bounding box meets the bounding box of
// segment a-b. Callers still apply SegmentsIntersect for the exact test;
// since obstruction loss is additive and order-independent, filtering through
// the index yields the same total as a scan over all walls.
func (ix *WallIndex) Candidates(a Point, b Point) []Wall {
	found := ix.tree.SearchIntersect(segmentRect(a, b))
	if len(found) == 0 {
		return nil
	}
	walls := make([]Wall, 0, len(found))
	for _, sp := range found {
		walls = append(walls, sp.(*wallEntry).wall)
	}
	return walls
}

func segmentRect(a Point, b Point) *rtreego.Rect {
	x := math.Min(a.X, b.X)
	y := math.Min(a.Y, b.Y)
	w := math.Abs(a.X-b.X) + rectEpsilon
	h := math.Abs(a.Y-b.Y) + rectEpsilon
	rect, err := rtreego.NewRect(rtreego.Point{x, y}, []float64{w, h})
	if err != nil {
		// only reachable for non-finite coordinates; index such walls at
		// the origin so lookup still works for the finite ones
		rect, _ = rtreego.NewRect(rtreego.Point{0, 0}, []float64{rectEpsilon, rectEpsilon})
	}
	return rect
}
