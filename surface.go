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
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// Config describes a surface to be constructed by NewSurface.
type Config struct {
	// NI and NJ are the number of control points minus one, in the i and
	// j directions.
	NI, NJ int

	// TI and TJ are the basis orders (polynomial degree plus one).
	// They must satisfy 1 <= TI <= NI+1 and 1 <= TJ <= NJ+1.
	TI, TJ int

	// ResI and ResJ are the tessellation resolution.  Both must be positive.
	ResI, ResJ int

	// Workers is the number of goroutines used for tessellation.
	// Zero selects DefaultWorkers.
	Workers int

	// Height gives the initial z coordinate of each control point.
	// Nil gives a flat surface.
	Height HeightFunc
}

// Surface is a B-spline surface together with its tessellation.
//
// The mesh always reflects the current control points: editing a control
// point marks the mesh as stale, and Mesh re-tessellates a stale surface
// before returning.
//
// A Surface is not safe for concurrent use.
type Surface struct {
	grid           *ControlGrid
	knotsI, knotsJ KnotVector
	ti, tj         int
	resi, resj     int
	workers        int

	mesh  *Mesh
	stale bool
}

// NewSurface builds the control grid and knot vectors described by cfg and
// tessellates the surface.  NewSurface panics if cfg is invalid.
func NewSurface(cfg Config) *Surface {
	if cfg.ResI <= 0 || cfg.ResJ <= 0 {
		panic(fmt.Sprintf("surface.NewSurface: invalid resolution %d×%d", cfg.ResI, cfg.ResJ))
	}
	s := &Surface{
		grid:    NewControlGrid(cfg.NI, cfg.NJ, cfg.Height),
		knotsI:  BuildKnots(cfg.NI, cfg.TI),
		knotsJ:  BuildKnots(cfg.NJ, cfg.TJ),
		ti:      cfg.TI,
		tj:      cfg.TJ,
		resi:    cfg.ResI,
		resj:    cfg.ResJ,
		workers: cfg.Workers,
	}
	s.Tessellate()
	return s
}

// RandomHeights returns a HeightFunc which draws heights uniformly from
// [0, 10), using a generator seeded with seed.
func RandomHeights(seed uint64) HeightFunc {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return func(i, j int) float64 {
		return 10 * rng.Float64()
	}
}

// Grid returns the control points of the surface.  The caller must not
// modify the returned value; use TranslatePoint instead.
func (s *Surface) Grid() *ControlGrid {
	return s.grid
}

// KnotsI returns the knot vector in the i direction.
func (s *Surface) KnotsI() KnotVector {
	return s.knotsI
}

// KnotsJ returns the knot vector in the j direction.
func (s *Surface) KnotsJ() KnotVector {
	return s.knotsJ
}

// TranslatePoint moves control point (i, j) by d and marks the mesh stale.
// It panics if (i, j) is outside the grid.
func (s *Surface) TranslatePoint(i, j int, d mgl64.Vec3) {
	s.grid.Translate(i, j, d)
	s.stale = true
}

// Stale reports whether the control points changed since the last
// tessellation.
func (s *Surface) Stale() bool {
	return s.stale
}

// Tessellate recomputes the mesh from the current control points.
func (s *Surface) Tessellate() {
	s.mesh = Tessellate(s.grid, s.knotsI, s.knotsJ, s.ti, s.tj, s.resi, s.resj, s.workers)
	s.stale = false
}

// Mesh returns the tessellated surface, re-tessellating first if the
// control points changed.  The caller must not modify the returned mesh.
func (s *Surface) Mesh() *Mesh {
	if s.stale {
		s.Tessellate()
	}
	return s.mesh
}
