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

import "fmt"

// ShadingMode selects how spans are filled.
type ShadingMode int

const (
	Wireframe ShadingMode = iota
	Constant
	Gouraud
	Phong
)

func (m ShadingMode) String() string {
	switch m {
	case Wireframe:
		return "wireframe"
	case Constant:
		return "constant"
	case Gouraud:
		return "gouraud"
	case Phong:
		return "phong"
	default:
		return fmt.Sprintf("ShadingMode(%d)", int(m))
	}
}

// Span is a horizontal run of pixels XMin..XMax (inclusive) on row Y,
// covered by Face.
type Span struct {
	Y, XMin, XMax int
	Face          Face
	Mode          ShadingMode
}

// Shader fills spans.  FillSpan is called once for every span produced by a
// render pass.
type Shader interface {
	Mode() ShadingMode
	FillSpan(s Span)
}

// PlotFunc sets the pixel at (x, y).
type PlotFunc func(x, y int)

// SpanFunc receives a span.
type SpanFunc func(s Span)

// WireframeShader marks the two end pixels of every span, which traces the
// outline of each face.
type WireframeShader struct {
	Plot PlotFunc
}

// Mode implements the [Shader] interface.
func (WireframeShader) Mode() ShadingMode { return Wireframe }

// FillSpan implements the [Shader] interface.
func (sh WireframeShader) FillSpan(s Span) {
	sh.Plot(s.XMin, s.Y)
	if s.XMax != s.XMin {
		sh.Plot(s.XMax, s.Y)
	}
}

// ConstantShader sets every pixel of every span.  The colour is chosen by
// the Plot function.
type ConstantShader struct {
	Plot PlotFunc
}

// Mode implements the [Shader] interface.
func (ConstantShader) Mode() ShadingMode { return Constant }

// FillSpan implements the [Shader] interface.
func (sh ConstantShader) FillSpan(s Span) {
	for x := s.XMin; x <= s.XMax; x++ {
		sh.Plot(x, s.Y)
	}
}

// GouraudShader hands every span to Fill, which is responsible for
// interpolating vertex colours along the span.
type GouraudShader struct {
	Fill SpanFunc
}

// Mode implements the [Shader] interface.
func (GouraudShader) Mode() ShadingMode { return Gouraud }

// FillSpan implements the [Shader] interface.
// It panics if no Fill function is set.
func (sh GouraudShader) FillSpan(s Span) {
	if sh.Fill == nil {
		panic("surface: Gouraud shading requires a Fill function")
	}
	sh.Fill(s)
}

// PhongShader hands every span to Fill, which is responsible for
// interpolating normals and evaluating the lighting model.
type PhongShader struct {
	Fill SpanFunc
}

// Mode implements the [Shader] interface.
func (PhongShader) Mode() ShadingMode { return Phong }

// FillSpan implements the [Shader] interface.
// It panics if no Fill function is set.
func (sh PhongShader) FillSpan(s Span) {
	if sh.Fill == nil {
		panic("surface: Phong shading requires a Fill function")
	}
	sh.Fill(s)
}

// NewShader returns the shader for the given mode.  Wireframe and Constant
// shading use plot, Gouraud and Phong shading use fill.
func NewShader(mode ShadingMode, plot PlotFunc, fill SpanFunc) Shader {
	switch mode {
	case Wireframe:
		return WireframeShader{Plot: plot}
	case Constant:
		return ConstantShader{Plot: plot}
	case Gouraud:
		return GouraudShader{Fill: fill}
	case Phong:
		return PhongShader{Fill: fill}
	default:
		panic(fmt.Sprintf("surface.NewShader: unknown mode %d", int(mode)))
	}
}
