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
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the number of goroutines Tessellate uses when the
// caller does not specify a worker count.
const DefaultWorkers = 4

// Tessellate evaluates the tensor-product B-spline surface with control
// points g, knot vectors ki and kj and orders ti and tj on a resi×resj grid
// of parameter values.
//
// Vertex (p, q) is evaluated at (p·Δu, q·Δv) with Δu = (g.NI-ti+2)/resi and
// Δv = (g.NJ-tj+2)/resj.  The rows are split into contiguous chunks, one per
// worker; workers <= 0 selects DefaultWorkers.  The result does not depend
// on the number of workers.
//
// The control grid and the knot vectors are only read.  Tessellate panics
// if the knot vectors do not have length g.NI+ti+1 and g.NJ+tj+1, or if
// a worker fails.
func Tessellate(g *ControlGrid, ki, kj KnotVector, ti, tj, resi, resj, workers int) *Mesh {
	if resi <= 0 || resj <= 0 {
		panic(fmt.Sprintf("surface.Tessellate: invalid resolution %d×%d", resi, resj))
	}
	if ti < 1 || tj < 1 || len(ki) == 0 || len(kj) == 0 {
		panic(fmt.Sprintf("surface.Tessellate: invalid orders %d, %d", ti, tj))
	}
	if len(ki) != g.NI+ti+1 || len(kj) != g.NJ+tj+1 {
		panic(fmt.Sprintf("surface.Tessellate: knot vectors of length %d, %d for a %d×%d grid of order %d, %d",
			len(ki), len(kj), g.NI+1, g.NJ+1, ti, tj))
	}
	if len(g.Points) != (g.NI+1)*(g.NJ+1) {
		panic(fmt.Sprintf("surface.Tessellate: %d control points for a %d×%d grid",
			len(g.Points), g.NI+1, g.NJ+1))
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	workers = min(workers, resi)

	du := float64(g.NI-ti+2) / float64(resi)
	dv := float64(g.NJ-tj+2) / float64(resj)

	// The j-direction weights are the same for every row.
	bj := make([]float64, resj*(g.NJ+1))
	for q := range resj {
		v := float64(q) * dv
		for k := 0; k <= g.NJ; k++ {
			bj[q*(g.NJ+1)+k] = blend(k, tj, kj, v)
		}
	}

	vertices := make([]mgl64.Vec4, resi*resj)
	err := forRowChunks(resi, workers, func(start, end int) {
		local := evalRows(g, ki, ti, bj, start, end, resj, du)
		copy(vertices[start*resj:end*resj], local)
	})
	if err != nil {
		panic("surface.Tessellate: " + err.Error())
	}

	m := &Mesh{
		ResI:     resi,
		ResJ:     resj,
		Vertices: vertices,
		Faces:    gridFaces(resi, resj),
	}
	Logger().Debug("tessellated surface",
		"rows", resi, "cols", resj, "workers", workers,
		"vertices", len(m.Vertices), "faces", len(m.Faces))
	return m
}

// forRowChunks splits the rows [0, n) into at most workers contiguous
// chunks and calls fn for each of them concurrently.  A panic in fn is
// returned as an error once all chunks have finished.
func forRowChunks(n, workers int, fn func(start, end int)) error {
	chunk := (n + workers - 1) / workers

	var eg errgroup.Group
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("rows %d-%d: %v", start, end-1, r)
				}
			}()
			fn(start, end)
			return nil
		})
	}
	return eg.Wait()
}

// evalRows computes the vertices of rows [start, end) into a new buffer.
// bj holds the j-direction basis values, indexed by q*(g.NJ+1)+kj.
func evalRows(g *ControlGrid, ki KnotVector, ti int, bj []float64, start, end, resj int, du float64) []mgl64.Vec4 {
	nj1 := g.NJ + 1
	local := make([]mgl64.Vec4, (end-start)*resj)
	bi := make([]float64, g.NI+1)

	for p := start; p < end; p++ {
		u := float64(p) * du
		for k := range bi {
			bi[k] = blend(k, ti, ki, u)
		}

		row := local[(p-start)*resj : (p-start+1)*resj]
		for q := range row {
			var sum mgl64.Vec4
			for a, wa := range bi {
				if wa == 0 {
					continue
				}
				for b, wb := range bj[q*nj1 : (q+1)*nj1] {
					if wb == 0 {
						continue
					}
					sum = sum.Add(g.Points[a*nj1+b].Mul(wa * wb))
				}
			}
			row[q] = sum
		}
	}
	return local
}
