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
	"slices"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

type span struct{ y, xMin, xMax int }

func collectSpans(r *Rasteriser, screen []vec.Vec2, f Face) []span {
	var res []span
	r.FillFace(screen, f, func(y, xMin, xMax int) {
		res = append(res, span{y, xMin, xMax})
	})
	return res
}

func pts(xy ...float64) []vec.Vec2 {
	res := make([]vec.Vec2, len(xy)/2)
	for i := range res {
		res[i] = vec.Vec2{X: xy[2*i], Y: xy[2*i+1]}
	}
	return res
}

var quad = Face{0, 1, 2, 3}

func TestFillRectangle(t *testing.T) {
	// vertical edges 0-1 and 2-3, horizontal edge 1-2
	screen := pts(2, 3, 2, 7, 6, 7, 6, 3)
	r := NewRasteriser(rect.Rect{})

	rows := r.Crossings(screen, quad)
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}
	for k, row := range rows {
		if row.Y != 3+k || !slices.Equal(row.X, []float64{2, 6}) {
			t.Errorf("row %d: %v", k, row)
		}
	}

	got := collectSpans(r, screen, quad)
	want := []span{{3, 2, 6}, {4, 2, 6}, {5, 2, 6}, {6, 2, 6}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFillSloped(t *testing.T) {
	// edge 0-1 has slope 1, edge 2-3 is vertical
	screen := pts(0, 0, 4, 4, 8, 4, 8, 0)
	r := NewRasteriser(rect.Rect{})
	got := collectSpans(r, screen, quad)
	want := []span{{0, 0, 8}, {1, 1, 8}, {2, 2, 8}, {3, 3, 8}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFillFractional(t *testing.T) {
	// crossings are rounded inwards
	screen := pts(0, 0, 3, 2, 10, 2, 10, 0)
	r := NewRasteriser(rect.Rect{})
	got := collectSpans(r, screen, quad)
	want := []span{{0, 0, 10}, {1, 2, 10}} // x = 1.5 at y = 1
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFillUnpaired(t *testing.T) {
	// rows 0 and 1 only see edge 0-1
	screen := pts(0, 0, 0, 4, 4, 4, 4, 2)
	r := NewRasteriser(rect.Rect{})

	rows := r.Crossings(screen, quad)
	if len(rows) != 4 || len(rows[0].X) != 1 || len(rows[2].X) != 2 {
		t.Fatalf("unexpected crossings %v", rows)
	}

	got := collectSpans(r, screen, quad)
	want := []span{{2, 0, 4}, {3, 0, 4}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFillNegativeRows(t *testing.T) {
	screen := pts(0, -3, 0, 3, 5, 3, 5, -3)
	r := NewRasteriser(rect.Rect{})
	got := collectSpans(r, screen, quad)
	want := []span{{0, 0, 5}, {1, 0, 5}, {2, 0, 5}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFillClip(t *testing.T) {
	screen := pts(0, 0, 0, 5, 6, 5, 6, 0)
	r := NewRasteriser(rect.Rect{LLx: 1, LLy: 0, URx: 4, URy: 2})
	got := collectSpans(r, screen, quad)
	want := []span{{0, 1, 3}, {1, 1, 3}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// completely outside
	r.Reset(rect.Rect{LLx: 10, LLy: 0, URx: 20, URy: 10})
	if got := collectSpans(r, screen, quad); len(got) != 0 {
		t.Errorf("got %v, want no spans", got)
	}
}

func TestFillDegenerate(t *testing.T) {
	cases := []struct {
		name   string
		screen []vec.Vec2
	}{
		{"horizontal", pts(0, 2, 5, 2, 9, 2, 1, 2)},
		{"point", pts(3, 3, 3, 3, 3, 3, 3, 3)},
		{"narrow", pts(2.2, 0, 2.2, 4, 2.8, 4, 2.8, 0)},
	}
	r := NewRasteriser(rect.Rect{})
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := collectSpans(r, c.screen, quad); len(got) != 0 {
				t.Errorf("got %v, want no spans", got)
			}
		})
	}
}

func TestFillReusesBuffers(t *testing.T) {
	r := NewRasteriser(rect.Rect{})
	a := pts(0, 0, 0, 50, 50, 50, 50, 0)
	b := pts(1, 1, 1, 3, 4, 3, 4, 1)

	collectSpans(r, a, quad)
	got := collectSpans(r, b, quad)
	want := []span{{1, 1, 4}, {2, 1, 4}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFillHugeCoordinates(t *testing.T) {
	tall := pts(0, 0, 0, 1e18, 10, 1e18, 10, 0)
	r := NewRasteriser(rect.Rect{URx: 20, URy: 5})
	got := collectSpans(r, tall, quad)
	want := []span{{0, 0, 10}, {1, 0, 10}, {2, 0, 10}, {3, 0, 10}, {4, 0, 10}}
	if !slices.Equal(got, want) {
		t.Errorf("tall: got %v, want %v", got, want)
	}

	deep := pts(0, -1e18, 0, 3, 5, 3, 5, -1e18)
	r.Reset(rect.Rect{URx: 20, URy: 20})
	got = collectSpans(r, deep, quad)
	want = []span{{0, 0, 5}, {1, 0, 5}, {2, 0, 5}}
	if !slices.Equal(got, want) {
		t.Errorf("deep: got %v, want %v", got, want)
	}
	r.Reset(rect.Rect{LLy: 2, URx: 20, URy: 20})
	got = collectSpans(r, deep, quad)
	want = []span{{2, 0, 5}}
	if !slices.Equal(got, want) {
		t.Errorf("deep, clipped: got %v, want %v", got, want)
	}

	wide := pts(-1e300, 0, -1e300, 2, 1e300, 2, 1e300, 0)
	r.Reset(rect.Rect{URx: 20, URy: 20})
	got = collectSpans(r, wide, quad)
	want = []span{{0, 0, 19}, {1, 0, 19}}
	if !slices.Equal(got, want) {
		t.Errorf("wide: got %v, want %v", got, want)
	}
	r.Reset(rect.Rect{})
	got = collectSpans(r, wide, quad)
	want = []span{{0, -maxScreenCoord, maxScreenCoord}, {1, -maxScreenCoord, maxScreenCoord}}
	if !slices.Equal(got, want) {
		t.Errorf("wide, unclipped: got %v, want %v", got, want)
	}
}

func TestFillHugeCoordinatesUnclipped(t *testing.T) {
	if testing.Short() {
		t.Skip("long scan")
	}
	tall := pts(0, 0, 0, 1e18, 10, 1e18, 10, 0)
	r := NewRasteriser(rect.Rect{})

	n, maxY := 0, 0
	r.FillFace(tall, quad, func(y, xMin, xMax int) {
		n++
		maxY = max(maxY, y)
	})
	if n != maxScreenCoord || maxY != maxScreenCoord-1 {
		t.Errorf("got %d spans up to row %d", n, maxY)
	}
}
