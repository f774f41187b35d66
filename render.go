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

// Package surface renders B-spline surfaces into pixel spans.
//
// A [Surface] is tessellated into a quad [Mesh].  A [Transform] maps object
// space to screen space, using orthographic or perspective projection.  A
// [Renderer] removes the faces turned away from the camera, converts the
// remaining faces into horizontal spans and passes the spans to a [Shader].
package surface

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpng -o testdata/reference

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Stats summarises a render pass.
type Stats struct {
	Faces   int // faces in the mesh
	Visible int // faces turned towards the camera
	Spans   int // spans passed to the shader
}

// Renderer runs render passes.  It keeps buffers between passes and is not
// safe for concurrent use.
type Renderer struct {
	// T maps object space to screen space.
	T *Transform

	rast   *Rasteriser
	screen []vec.Vec2
}

// NewRenderer returns a renderer using transform t.  Spans are limited to
// the clip rectangle, see [Rasteriser.Clip].
func NewRenderer(t *Transform, clip rect.Rect) *Renderer {
	return &Renderer{
		T:    t,
		rast: NewRasteriser(clip),
	}
}

// ScreenVertices maps the vertices of m to pixel positions.
// The result is valid until the next call on r.
func (r *Renderer) ScreenVertices(m *Mesh) []vec.Vec2 {
	r.screen = r.screen[:0]
	mat := r.T.Matrix()
	for _, v := range m.Vertices {
		r.screen = append(r.screen, screenPoint(mat.Mul4x1(v)))
	}
	return r.screen
}

// Render draws mesh m as seen from camera c.  Faces turned away from c.VRP
// are skipped, and sh.FillSpan is called once for every span of the
// remaining faces.
func (r *Renderer) Render(m *Mesh, c Camera, sh Shader) Stats {
	visible := FilterVisible(m.Vertices, m.Faces, c.VRP)
	screen := r.ScreenVertices(m)

	stats := Stats{Faces: len(m.Faces), Visible: len(visible)}
	mode := sh.Mode()
	for _, f := range visible {
		r.rast.FillFace(screen, f, func(y, xMin, xMax int) {
			sh.FillSpan(Span{Y: y, XMin: xMin, XMax: xMax, Face: f, Mode: mode})
			stats.Spans++
		})
	}

	Logger().Debug("rendered mesh",
		"shading", mode, "faces", stats.Faces,
		"visible", stats.Visible, "spans", stats.Spans)
	return stats
}
