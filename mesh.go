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

import "github.com/go-gl/mathgl/mgl64"

// Face is a quadrilateral given by four vertex indices.  All faces of a mesh
// use the same winding, which determines the direction of the face normal.
type Face [4]int

// Mesh is a tessellated surface.
type Mesh struct {
	// ResI and ResJ give the size of the vertex grid.
	ResI, ResJ int

	// Vertices holds ResI*ResJ homogeneous points in row-major order.
	Vertices []mgl64.Vec4

	// Faces holds the (ResI-1)*(ResJ-1) quads of the vertex grid.
	Faces []Face
}

// gridFaces returns the quads connecting neighbouring vertices of a
// resi×resj vertex grid.
func gridFaces(resi, resj int) []Face {
	if resi < 2 || resj < 2 {
		return nil
	}
	faces := make([]Face, 0, (resi-1)*(resj-1))
	for i := range resi - 1 {
		for j := range resj - 1 {
			faces = append(faces, Face{
				i*resj + j,
				i*resj + j + 1,
				(i+1)*resj + j + 1,
				(i+1)*resj + j,
			})
		}
	}
	return faces
}
