// seehuhn.de/go/surface - B-spline surface rendering
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

package surface

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a face edge in screen coordinates, with y0 <= y1.
type edge struct {
	x0, y0 float64 // lower end point
	y1     float64 // y coordinate of the upper end point
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// crossing is the intersection of an edge with scanline y.
type crossing struct {
	y int
	x float64
}

// Row lists the edge crossings of one scanline, in increasing order.
type Row struct {
	Y int
	X []float64
}

// Rasteriser converts screen-space quads into horizontal pixel spans.
// Only the first three edges of a quad (0-1, 1-2 and 2-3) are scanned.
// Edges are cut at y = ±maxScreenCoord and crossings are clamped to the
// same range in x.
//
// Create one instance and reuse it for many faces.  Internal buffers grow as
// needed but never shrink.  A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// Clip limits the output to this rectangle of pixel positions.  Rows
	// outside [LLy, URy) are skipped and spans are clamped to [LLx, URx).
	// The zero value means no limit other than y >= 0.
	Clip rect.Rect

	// Internal buffers (reused across calls)
	edges     []edge
	crossings []crossing
	xs        []float64
	rows      []Row
}

// NewRasteriser returns a Rasteriser with the given clip rectangle.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{Clip: clip}
}

// Reset changes the clip rectangle.  The buffers are kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.Clip = clip
	r.edges = r.edges[:0]
	r.crossings = r.crossings[:0]
}

// Crossings returns the scanline crossings of face f, ordered by row.
// The screen slice holds the vertex positions, already rounded to whole
// pixels.  The result is valid until the next call on r.
func (r *Rasteriser) Crossings(screen []vec.Vec2, f Face) []Row {
	r.collectEdges(screen, f)
	r.collectCrossings()

	r.xs = r.xs[:0]
	r.rows = r.rows[:0]
	for i := 0; i < len(r.crossings); {
		y := r.crossings[i].y
		start := len(r.xs)
		for ; i < len(r.crossings) && r.crossings[i].y == y; i++ {
			r.xs = append(r.xs, r.crossings[i].x)
		}
		r.rows = append(r.rows, Row{Y: y, X: r.xs[start:len(r.xs):len(r.xs)]})
	}
	return r.rows
}

// FillFace computes the spans covered by face f and calls emit for each
// of them.  The crossings of each row are taken in pairs; a span runs from
// the ceiling of the first to the floor of the second crossing, both
// inclusive.  A trailing unpaired crossing is ignored.
func (r *Rasteriser) FillFace(screen []vec.Vec2, f Face, emit func(y, xMin, xMax int)) {
	clipX := r.Clip != (rect.Rect{})
	for _, row := range r.Crossings(screen, f) {
		for k := 0; k+1 < len(row.X); k += 2 {
			xMin := int(math.Ceil(clampCoord(row.X[k])))
			xMax := int(math.Floor(clampCoord(row.X[k+1])))
			if clipX {
				xMin = max(xMin, int(r.Clip.LLx))
				xMax = min(xMax, int(r.Clip.URx)-1)
			}
			if xMin > xMax {
				continue
			}
			emit(row.Y, xMin, xMax)
		}
	}
}

// collectEdges builds the edge list for the first three edges of f.
// Horizontal edges and edges with non-finite end points are skipped.
// Edges are cut to the rows -maxScreenCoord <= y <= maxScreenCoord.
func (r *Rasteriser) collectEdges(screen []vec.Vec2, f Face) {
	r.edges = r.edges[:0]
	for i := range 3 {
		p0 := screen[f[i]]
		p1 := screen[f[i+1]]

		x0, y0 := p0.X, math.Round(p0.Y)
		x1, y1 := p1.X, math.Round(p1.Y)
		if !finite(x0) || !finite(y0) || !finite(x1) || !finite(y1) {
			continue
		}
		if y0 > y1 {
			x0, x1 = x1, x0
			y0, y1 = y1, y0
		}

		if y1-y0 < horizontalEdgeThreshold {
			continue
		}
		dxdy := (x1 - x0) / (y1 - y0)
		if !finite(dxdy) {
			continue
		}
		if y0 < -maxScreenCoord {
			x0 += (-maxScreenCoord - y0) * dxdy
			y0 = -maxScreenCoord
		}
		y1 = min(y1, maxScreenCoord)
		if y1-y0 < horizontalEdgeThreshold {
			continue
		}
		r.edges = append(r.edges, edge{
			x0: x0, y0: y0,
			y1:   y1,
			dxdy: dxdy,
		})
	}
}

// collectCrossings steps along every edge, one scanline at a time, and
// records the crossings sorted by row and then by x.  Rows are taken from
// the half-open interval [y0, y1) of each edge.
func (r *Rasteriser) collectCrossings() {
	r.crossings = r.crossings[:0]

	yLo, yHi := 0.0, math.Inf(1)
	if r.Clip != (rect.Rect{}) {
		yLo = max(yLo, r.Clip.LLy)
		yHi = r.Clip.URy
	}

	for _, e := range r.edges {
		y := e.y0
		x := e.x0
		if y < yLo {
			// jump over the rows which would not be recorded
			skip := math.Ceil(yLo - y)
			y += skip
			x += skip * e.dxdy
		}
		end := min(e.y1, yHi)
		for ; y < end; y++ {
			r.crossings = append(r.crossings, crossing{y: int(y), x: x})
			x += e.dxdy
		}
	}

	slices.SortFunc(r.crossings, func(a, b crossing) int {
		if c := cmp.Compare(a.y, b.y); c != 0 {
			return c
		}
		return cmp.Compare(a.x, b.x)
	})
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// clampCoord limits x to [-maxScreenCoord, maxScreenCoord].
func clampCoord(x float64) float64 {
	return max(-maxScreenCoord, min(x, maxScreenCoord))
}

// Numerical tolerances for the rasteriser.
const (
	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to produce crossings.  Since end points are rounded to whole pixels,
	// any edge below this threshold is exactly horizontal.
	horizontalEdgeThreshold = 0.5

	// maxScreenCoord bounds the screen coordinates seen by the scanline
	// loop.  Integers of this size are exact in float64 and fit in an int.
	maxScreenCoord = 1 << 20
)
