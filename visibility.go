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

// FilterVisible returns the faces whose front side is turned towards the
// view reference point vrp.  Vertices are in object space.
//
// The normal of a face is (c-b)×(a-b), where a, b and c are its first three
// vertices, and the face is kept if the normal has a positive component in
// the direction from the centroid of a, b, c towards vrp.  Degenerate faces
// are dropped.  The order of the faces is preserved.
func FilterVisible(vertices []mgl64.Vec4, faces []Face, vrp mgl64.Vec3) []Face {
	var visible []Face
	for _, f := range faces {
		if faceVisible(vertices, f, vrp) {
			visible = append(visible, f)
		}
	}
	return visible
}

func faceVisible(vertices []mgl64.Vec4, f Face, vrp mgl64.Vec3) bool {
	a := dehomogenize(vertices[f[0]])
	b := dehomogenize(vertices[f[1]])
	c := dehomogenize(vertices[f[2]])

	normal := c.Sub(b).Cross(a.Sub(b))
	toCamera := vrp.Sub(a.Add(b).Add(c).Mul(1.0 / 3))

	nLen := normal.Len()
	cLen := toCamera.Len()
	if nLen == 0 || cLen == 0 {
		return false
	}
	return normal.Dot(toCamera)/(nLen*cLen) > 0
}

// dehomogenize converts a homogeneous point to Cartesian coordinates.
func dehomogenize(p mgl64.Vec4) mgl64.Vec3 {
	if p[3] == 1 || p[3] == 0 {
		return p.Vec3()
	}
	return p.Vec3().Mul(1 / p[3])
}
