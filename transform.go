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
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Camera describes the viewer.
type Camera struct {
	// VRP is the view reference point.  It is the position of the viewer
	// and the centre of projection.
	VRP mgl64.Vec3

	// P is the point the camera looks at.  It must differ from VRP.
	P mgl64.Vec3

	// Up is a hint for the upward direction.  It must not be parallel to
	// VRP-P.
	Up mgl64.Vec3

	// DP is the distance from VRP to the projection plane.
	// Only used for perspective projection, where it must be non-zero.
	DP float64
}

// Window is the visible rectangle in the projection plane, in camera
// coordinates.  LLx..URx is xmin..xmax and LLy..URy is ymin..ymax.
type Window = rect.Rect

// Viewport is the screen rectangle the window is mapped to, in pixels.
// LLx..URx is umin..umax and LLy..URy is vmin..vmax.  Screen rows increase
// downwards, so ymax is mapped to vmin.
type Viewport = rect.Rect

// Projection selects the projection model.
type Projection int

const (
	Orthographic Projection = iota
	Perspective
)

func (p Projection) String() string {
	switch p {
	case Orthographic:
		return "orthographic"
	case Perspective:
		return "perspective"
	default:
		return fmt.Sprintf("Projection(%d)", int(p))
	}
}

// viewNormal returns the unit vector pointing from P towards VRP.
func (c Camera) viewNormal() mgl64.Vec3 {
	n := c.VRP.Sub(c.P)
	if n.Len() == 0 {
		panic("surface: degenerate camera, VRP equals P")
	}
	return n.Normalize()
}

// ViewMatrix returns the matrix which maps object space to camera
// coordinates.  The rows of its rotation part are the camera axes u, v and
// n, where n points from P towards VRP, v is Up with its n component
// removed, and u = v × n.  VRP is mapped to the origin.
func ViewMatrix(c Camera) mgl64.Mat4 {
	nn := c.viewNormal()
	v := c.Up.Sub(nn.Mul(c.Up.Dot(nn)))
	if v.Len() == 0 {
		panic("surface: degenerate camera, Up is parallel to the view direction")
	}
	vn := v.Normalize()
	un := vn.Cross(nn)

	return mgl64.Mat4FromRows(
		mgl64.Vec4{un[0], un[1], un[2], -c.VRP.Dot(un)},
		mgl64.Vec4{vn[0], vn[1], vn[2], -c.VRP.Dot(vn)},
		mgl64.Vec4{nn[0], nn[1], nn[2], -c.VRP.Dot(nn)},
		mgl64.Vec4{0, 0, 0, 1},
	)
}

// ProjectionMatrix returns the projection matrix for the given camera, where
// view is the result of ViewMatrix(c).
//
// For orthographic projection this is the identity.  For perspective
// projection the returned matrix sets w to the distance behind the camera
// divided by c.DP, so that dividing by w projects onto the plane at distance
// c.DP.
func ProjectionMatrix(c Camera, view mgl64.Mat4, mode Projection) mgl64.Mat4 {
	if mode == Orthographic {
		return mgl64.Ident4()
	}
	if c.DP == 0 {
		panic("surface: perspective projection needs a non-zero DP")
	}

	nn := c.viewNormal()
	vp := c.VRP.Add(nn.Mul(-c.DP))
	srcVP := view.Mul4x1(vp.Vec4(1))
	srcPRP := view.Mul4x1(c.VRP.Vec4(1))

	m33 := -srcVP[2] / c.DP
	m34 := srcVP[2] * (srcPRP[2] / c.DP)
	m43 := -1 / c.DP
	m44 := srcPRP[2] / c.DP

	return mgl64.Mat4FromRows(
		mgl64.Vec4{1, 0, 0, 0},
		mgl64.Vec4{0, 1, 0, 0},
		mgl64.Vec4{0, 0, m33, m34},
		mgl64.Vec4{0, 0, m43, m44},
	)
}

// WindowViewportMatrix returns the matrix which maps the window onto the
// viewport.  The y axis is inverted: win.URy is mapped to vp.LLy.
func WindowViewportMatrix(win Window, vp Viewport) mgl64.Mat4 {
	w := win.URx - win.LLx
	h := win.URy - win.LLy
	if w == 0 || h == 0 {
		panic("surface: degenerate window")
	}

	sx := (vp.URx - vp.LLx) / w
	sy := (vp.LLy - vp.URy) / h
	m := matrix.Translate(-win.LLx, -win.LLy).
		Mul(matrix.Scale(sx, sy)).
		Mul(matrix.Translate(vp.LLx, vp.URy))

	return mgl64.Mat4FromRows(
		mgl64.Vec4{m[0], m[2], 0, m[4]},
		mgl64.Vec4{m[1], m[3], 0, m[5]},
		mgl64.Vec4{0, 0, 1, 0},
		mgl64.Vec4{0, 0, 0, 1},
	)
}

// Transform maps object space to screen space.  The combined matrix is
// cached and rebuilt whenever one of its inputs changes.
type Transform struct {
	camera   Camera
	window   Window
	viewport Viewport
	mode     Projection

	m mgl64.Mat4
}

// NewTransform returns the transform for the given camera, window, viewport
// and projection.  It panics if the camera or the window is degenerate.
func NewTransform(c Camera, win Window, vp Viewport, mode Projection) *Transform {
	t := &Transform{
		camera:   c,
		window:   win,
		viewport: vp,
		mode:     mode,
	}
	t.rebuild()
	return t
}

// rebuild computes M_jp · M_proj · M_src.
func (t *Transform) rebuild() {
	view := ViewMatrix(t.camera)
	proj := ProjectionMatrix(t.camera, view, t.mode)
	jp := WindowViewportMatrix(t.window, t.viewport)
	t.m = jp.Mul4(proj.Mul4(view))

	Logger().Debug("rebuilt transform", "projection", t.mode)
}

// Camera returns the current camera.
func (t *Transform) Camera() Camera { return t.camera }

// Projection returns the current projection mode.
func (t *Transform) Projection() Projection { return t.mode }

// SetCamera changes the camera.
func (t *Transform) SetCamera(c Camera) {
	t.camera = c
	t.rebuild()
}

// SetWindow changes the window.
func (t *Transform) SetWindow(win Window) {
	t.window = win
	t.rebuild()
}

// SetViewport changes the viewport.
func (t *Transform) SetViewport(vp Viewport) {
	t.viewport = vp
	t.rebuild()
}

// SetProjection changes the projection mode.
func (t *Transform) SetProjection(mode Projection) {
	t.mode = mode
	t.rebuild()
}

// Matrix returns the combined object-to-screen matrix.
func (t *Transform) Matrix() mgl64.Mat4 {
	return t.m
}

// Apply maps an object space point to homogeneous screen coordinates.
func (t *Transform) Apply(p mgl64.Vec4) mgl64.Vec4 {
	return t.m.Mul4x1(p)
}

// Screen maps an object space point to a pixel position: x and y are
// divided by w and rounded to the nearest integer.
func (t *Transform) Screen(p mgl64.Vec4) vec.Vec2 {
	return screenPoint(t.m.Mul4x1(p))
}

func screenPoint(q mgl64.Vec4) vec.Vec2 {
	return vec.Vec2{
		X: math.Round(q[0] / q[3]),
		Y: math.Round(q[1] / q[3]),
	}
}

// ObjectDelta converts a displacement by (dx, dy) pixels into an object
// space displacement, using the inverse of the current matrix.  This is
// used to drag control points on screen.
//
// If the matrix is singular, the result is zero and ok is false.  This is
// always the case for perspective projection, since the perspective matrix
// discards depth.
func (t *Transform) ObjectDelta(dx, dy float64) (d mgl64.Vec3, ok bool) {
	if t.mode == Perspective || t.m.Det() == 0 {
		return mgl64.Vec3{}, false
	}
	return t.m.Inv().Mul4x1(mgl64.Vec4{dx, dy, 0, 0}).Vec3(), true
}
