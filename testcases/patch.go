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

// unitPatch is a single bilinear patch spanning [0,1]×[0,1] in parameter
// space, tessellated at 4×4.
var unitPatch = SurfaceParams{NI: 1, NJ: 1, TI: 2, TJ: 2, ResI: 4, ResJ: 4}

var patchScenes = []Scene{
	{
		Name:    "flat_ortho_above",
		Surface: unitPatch,
		Camera: CameraParams{
			VRP: [3]float64{0.375, 0.375, 10},
			P:   [3]float64{0.375, 0.375, 0},
			Up:  [3]float64{0, 1, 0},
		},
		Window:   [4]float64{-0.5, 0.5, -0.5, 0.5},
		Viewport: [4]float64{0, 63, 0, 63},
		Width:    64,
		Height:   64,
	},
	{
		Name:    "flat_ortho_below",
		Surface: unitPatch,
		Camera: CameraParams{
			VRP: [3]float64{0.375, 0.375, -10},
			P:   [3]float64{0.375, 0.375, 0},
			Up:  [3]float64{0, 1, 0},
		},
		Window:   [4]float64{-0.5, 0.5, -0.5, 0.5},
		Viewport: [4]float64{0, 63, 0, 63},
		Shading:  "constant",
		Width:    64,
		Height:   64,
	},
	{
		Name:    "flat_persp_below",
		Surface: unitPatch,
		Camera: CameraParams{
			VRP: [3]float64{0.375, 0.375, -4},
			P:   [3]float64{0.375, 0.375, 0},
			Up:  [3]float64{0, 1, 0},
			DP:  4,
		},
		Window:     [4]float64{-0.5, 0.5, -0.5, 0.5},
		Viewport:   [4]float64{0, 63, 0, 63},
		Projection: "perspective",
		Shading:    "constant",
		Width:      64,
		Height:     64,
	},
}
