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

// randomSurface is a quadratic surface over 11×11 control
// points with random heights, tessellated at 20×20.
var randomSurface = SurfaceParams{NI: 10, NJ: 10, TI: 3, TJ: 3, ResI: 20, ResJ: 20, Seed: 1}

// below looks at the centre of randomSurface from underneath, slightly
// off axis.
var below = CameraParams{
	VRP: [3]float64{2, -3, -40},
	P:   [3]float64{4.5, 4.5, 5},
	Up:  [3]float64{0, 1, 0},
	DP:  30,
}

var surfaceScenes = []Scene{
	{
		Name:     "random_ortho_wireframe",
		Surface:  randomSurface,
		Camera:   below,
		Window:   [4]float64{-8, 8, -6, 6},
		Viewport: [4]float64{0, 299, 0, 199},
		Width:    300,
		Height:   200,
	},
	{
		Name:     "random_ortho_constant",
		Surface:  randomSurface,
		Camera:   below,
		Window:   [4]float64{-8, 8, -6, 6},
		Viewport: [4]float64{0, 299, 0, 199},
		Shading:  "constant",
		Width:    300,
		Height:   200,
	},
	{
		Name:     "random_ortho_gouraud",
		Surface:  randomSurface,
		Camera:   below,
		Window:   [4]float64{-8, 8, -6, 6},
		Viewport: [4]float64{0, 299, 0, 199},
		Shading:  "gouraud",
		Width:    300,
		Height:   200,
	},
	{
		Name:       "random_persp_wireframe",
		Surface:    randomSurface,
		Camera:     below,
		Window:     [4]float64{-8, 8, -6, 6},
		Viewport:   [4]float64{0, 299, 0, 199},
		Projection: "perspective",
		Width:      300,
		Height:     200,
	},
	{
		Name: "random_persp_cubic",
		Surface: SurfaceParams{
			NI: 10, NJ: 10, TI: 4, TJ: 4, ResI: 30, ResJ: 30, Seed: 7,
		},
		Camera:     below,
		Window:     [4]float64{-8, 8, -6, 6},
		Viewport:   [4]float64{0, 299, 0, 199},
		Projection: "perspective",
		Shading:    "constant",
		Width:      300,
		Height:     200,
	},
}
