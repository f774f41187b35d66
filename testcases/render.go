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

package testcases

import (
	"image"

	"seehuhn.de/go/surface"
)

// Render draws the visible faces of the scene in white on black.
// Gouraud and Phong spans use a darker gray for every other row of faces,
// so that the tessellation stays visible.
func (s *Scene) Render() (*image.Gray, surface.Stats, error) {
	if err := s.Validate(); err != nil {
		return nil, surface.Stats{}, err
	}
	mode, err := s.ShadingMode()
	if err != nil {
		return nil, surface.Stats{}, err
	}

	surf, tr := s.Build()
	mesh := surf.Mesh()
	img := image.NewGray(image.Rect(0, 0, s.Width, s.Height))

	plot := surface.GraySink(img, 255)
	dark := surface.GraySink(img, 160)
	fill := func(sp surface.Span) {
		p := plot
		if (sp.Face[0]/mesh.ResJ)%2 == 1 {
			p = dark
		}
		for x := sp.XMin; x <= sp.XMax; x++ {
			p(x, sp.Y)
		}
	}

	r := surface.NewRenderer(tr, s.Clip())
	stats := r.Render(mesh, tr.Camera(), surface.NewShader(mode, plot, fill))
	return img, stats, nil
}
