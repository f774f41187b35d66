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
	"image"
	"image/color"
)

// GraySink returns a PlotFunc which sets pixels of img to the given level.
// Pixels outside the image bounds are ignored.
func GraySink(img *image.Gray, level uint8) PlotFunc {
	b := img.Bounds()
	return func(x, y int) {
		if !(image.Point{X: x, Y: y}).In(b) {
			return
		}
		img.SetGray(x, y, color.Gray{Y: level})
	}
}
