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
	"errors"
	"fmt"
	"regexp"

	"github.com/go-gl/mathgl/mgl64"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/surface"
)

// Scene defines a single rendering test.
type Scene struct {
	Name       string        `toml:"name"`       // lowercase a-z, 0-9 and _ only
	Surface    SurfaceParams `toml:"surface"`    // the surface to render
	Camera     CameraParams  `toml:"camera"`     // the viewer
	Window     [4]float64    `toml:"window"`     // xmin, xmax, ymin, ymax
	Viewport   [4]float64    `toml:"viewport"`   // umin, umax, vmin, vmax
	Projection string        `toml:"projection"` // "orthographic" or "perspective"
	Shading    string        `toml:"shading"`    // "wireframe", "constant", "gouraud" or "phong"
	Width      int           `toml:"width"`      // canvas width in pixels
	Height     int           `toml:"height"`     // canvas height in pixels
}

// SurfaceParams describes the surface of a scene.
type SurfaceParams struct {
	NI   int    `toml:"ni"`
	NJ   int    `toml:"nj"`
	TI   int    `toml:"ti"`
	TJ   int    `toml:"tj"`
	ResI int    `toml:"resi"`
	ResJ int    `toml:"resj"`
	Seed uint64 `toml:"seed"` // zero gives a flat surface
}

// CameraParams describes the camera of a scene.
type CameraParams struct {
	VRP [3]float64 `toml:"vrp"`
	P   [3]float64 `toml:"p"`
	Up  [3]float64 `toml:"up"`
	DP  float64    `toml:"dp"`
}

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

var (
	errBadSize   = errors.New("canvas size must be positive")
	errBadCamera = errors.New("degenerate camera")
)

// Validate checks that the scene can be rendered without violating the
// preconditions of the surface package.
func (s *Scene) Validate() error {
	if !validName.MatchString(s.Name) {
		return fmt.Errorf("invalid scene name %q", s.Name)
	}
	sp := s.Surface
	if sp.TI < 1 || sp.TJ < 1 || sp.NI < sp.TI-1 || sp.NJ < sp.TJ-1 {
		return fmt.Errorf("%s: invalid orders %d, %d for %d×%d control points",
			s.Name, sp.TI, sp.TJ, sp.NI+1, sp.NJ+1)
	}
	if sp.ResI <= 0 || sp.ResJ <= 0 {
		return fmt.Errorf("%s: invalid resolution %d×%d", s.Name, sp.ResI, sp.ResJ)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%s: %w", s.Name, errBadSize)
	}
	if s.Window[0] == s.Window[1] || s.Window[2] == s.Window[3] {
		return fmt.Errorf("%s: empty window", s.Name)
	}

	c := s.ViewCamera()
	n := c.VRP.Sub(c.P)
	if n.Len() == 0 || n.Cross(c.Up).Len() == 0 {
		return fmt.Errorf("%s: %w", s.Name, errBadCamera)
	}

	mode, err := s.ProjectionMode()
	if err != nil {
		return err
	}
	if mode == surface.Perspective && c.DP == 0 {
		return fmt.Errorf("%s: perspective projection needs dp != 0", s.Name)
	}
	if _, err := s.ShadingMode(); err != nil {
		return err
	}
	return nil
}

// ProjectionMode returns the projection selected by the scene.
// An empty string selects orthographic projection.
func (s *Scene) ProjectionMode() (surface.Projection, error) {
	switch s.Projection {
	case "", "orthographic":
		return surface.Orthographic, nil
	case "perspective":
		return surface.Perspective, nil
	default:
		return 0, fmt.Errorf("%s: unknown projection %q", s.Name, s.Projection)
	}
}

// ShadingMode returns the shading mode selected by the scene.
// An empty string selects wireframe shading.
func (s *Scene) ShadingMode() (surface.ShadingMode, error) {
	switch s.Shading {
	case "", "wireframe":
		return surface.Wireframe, nil
	case "constant":
		return surface.Constant, nil
	case "gouraud":
		return surface.Gouraud, nil
	case "phong":
		return surface.Phong, nil
	default:
		return 0, fmt.Errorf("%s: unknown shading %q", s.Name, s.Shading)
	}
}

// ViewCamera returns the camera of the scene.
func (s *Scene) ViewCamera() surface.Camera {
	return surface.Camera{
		VRP: mgl64.Vec3(s.Camera.VRP),
		P:   mgl64.Vec3(s.Camera.P),
		Up:  mgl64.Vec3(s.Camera.Up),
		DP:  s.Camera.DP,
	}
}

// Build constructs the surface and the transform of the scene.
// The scene must be valid.
func (s *Scene) Build() (*surface.Surface, *surface.Transform) {
	var height surface.HeightFunc
	if s.Surface.Seed != 0 {
		height = surface.RandomHeights(s.Surface.Seed)
	}
	surf := surface.NewSurface(surface.Config{
		NI:     s.Surface.NI,
		NJ:     s.Surface.NJ,
		TI:     s.Surface.TI,
		TJ:     s.Surface.TJ,
		ResI:   s.Surface.ResI,
		ResJ:   s.Surface.ResJ,
		Height: height,
	})

	mode, _ := s.ProjectionMode()
	win := rect.Rect{LLx: s.Window[0], URx: s.Window[1], LLy: s.Window[2], URy: s.Window[3]}
	vp := rect.Rect{LLx: s.Viewport[0], URx: s.Viewport[1], LLy: s.Viewport[2], URy: s.Viewport[3]}
	return surf, surface.NewTransform(s.ViewCamera(), win, vp, mode)
}

// Clip returns the canvas rectangle of the scene.
func (s *Scene) Clip() rect.Rect {
	return rect.Rect{URx: float64(s.Width), URy: float64(s.Height)}
}
