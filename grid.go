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
)

// ControlGrid is a rectangular array of (NI+1)×(NJ+1) homogeneous control
// points, stored in row-major order by (i, j).
type ControlGrid struct {
	NI, NJ int

	// Points has length (NI+1)*(NJ+1).  Entry (i, j) is at i*(NJ+1)+j.
	Points []mgl64.Vec4
}

// HeightFunc returns the z coordinate of control point (i, j).
type HeightFunc func(i, j int) float64

// NewControlGrid places control point (i, j) at (i, j, height(i, j), 1).
// A nil height function gives a flat grid.
func NewControlGrid(ni, nj int, height HeightFunc) *ControlGrid {
	if ni < 0 || nj < 0 {
		panic(fmt.Sprintf("surface.NewControlGrid: invalid size %d×%d", ni, nj))
	}
	if height == nil {
		height = FlatHeights
	}

	g := &ControlGrid{
		NI:     ni,
		NJ:     nj,
		Points: make([]mgl64.Vec4, 0, (ni+1)*(nj+1)),
	}
	for i := 0; i <= ni; i++ {
		for j := 0; j <= nj; j++ {
			g.Points = append(g.Points, mgl64.Vec4{float64(i), float64(j), height(i, j), 1})
		}
	}
	return g
}

// FlatHeights places every control point at z = 0.
func FlatHeights(i, j int) float64 {
	return 0
}

// index returns the position of control point (i, j) in g.Points.
func (g *ControlGrid) index(i, j int) int {
	if i < 0 || i > g.NI || j < 0 || j > g.NJ {
		panic(fmt.Sprintf("surface: control point (%d, %d) outside %d×%d grid", i, j, g.NI+1, g.NJ+1))
	}
	return i*(g.NJ+1) + j
}

// At returns control point (i, j).
func (g *ControlGrid) At(i, j int) mgl64.Vec4 {
	return g.Points[g.index(i, j)]
}

// Translate moves control point (i, j) by d in object space.
// The w coordinate is left unchanged.
func (g *ControlGrid) Translate(i, j int, d mgl64.Vec3) {
	idx := g.index(i, j)
	g.Points[idx] = mgl64.Translate3D(d[0], d[1], d[2]).Mul4x1(g.Points[idx])
}

// Clone returns a deep copy of g.
func (g *ControlGrid) Clone() *ControlGrid {
	return &ControlGrid{
		NI:     g.NI,
		NJ:     g.NJ,
		Points: append([]mgl64.Vec4(nil), g.Points...),
	}
}
