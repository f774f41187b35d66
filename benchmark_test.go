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
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/rect"
)

// benchScene returns a random surface seen from below, filling a
// size×size canvas.
func benchScene(size int) (*Surface, *Transform) {
	s := NewSurface(Config{
		NI: 10, NJ: 10, TI: 3, TJ: 3, ResI: 40, ResJ: 40,
		Height: RandomHeights(1),
	})
	c := Camera{
		VRP: mgl64.Vec3{2, -3, -40},
		P:   mgl64.Vec3{4.5, 4.5, 5},
		Up:  mgl64.Vec3{0, 1, 0},
		DP:  30,
	}
	win := Window{LLx: -8, LLy: -8, URx: 8, URy: 8}
	vp := Viewport{URx: float64(size - 1), URy: float64(size - 1)}
	return s, NewTransform(c, win, vp, Orthographic)
}

func BenchmarkTessellate(b *testing.B) {
	s, _ := benchScene(100)
	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				Tessellate(s.Grid(), s.KnotsI(), s.KnotsJ(), 3, 3, 100, 100, workers)
			}
		})
	}
}

// BenchmarkRenderConstant fills the visible faces of a surface using the
// scanline rasteriser.
func BenchmarkRenderConstant(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			s, tr := benchScene(size)
			m := s.Mesh()
			r := NewRenderer(tr, rect.Rect{URx: float64(size), URy: float64(size)})

			dst := image.NewGray(image.Rect(0, 0, size, size))
			sh := GouraudShader{Fill: func(sp Span) {
				row := dst.Pix[sp.Y*dst.Stride:]
				for x := sp.XMin; x <= sp.XMax; x++ {
					row[x] = 255
				}
			}}

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Render(m, tr.Camera(), sh)
			}
		})
	}
}

// BenchmarkVectorConstant draws the same faces with x/image/vector.
func BenchmarkVectorConstant(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			s, tr := benchScene(size)
			m := s.Mesh()
			visible := FilterVisible(m.Vertices, m.Faces, tr.Camera().VRP)
			screen := NewRenderer(tr, rect.Rect{}).ScreenVertices(m)

			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				for _, f := range visible {
					p := screen[f[0]]
					r.MoveTo(float32(p.X), float32(p.Y))
					for _, k := range f[1:] {
						p = screen[k]
						r.LineTo(float32(p.X), float32(p.Y))
					}
					r.ClosePath()
				}
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}
