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

// Command genpdf renders the test scenes into PDF files and, optionally,
// converts them to PNG using Ghostscript.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/surface"
	"seehuhn.de/go/surface/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/pdf", "output directory")
	sceneFile := flag.String("scene", "", "render only the scene in this TOML file")
	outline := flag.Bool("outline", false, "stroke the outlines of visible faces")
	withPNG := flag.Bool("png", false, "convert the PDF files to PNG using Ghostscript")
	verbose := flag.Bool("v", false, "log pipeline details")
	flag.Parse()

	if *verbose {
		surface.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	type job struct {
		name  string
		scene *testcases.Scene
	}
	var jobs []job
	if *sceneFile != "" {
		sc, err := testcases.LoadFile(*sceneFile)
		if err != nil {
			panic(err)
		}
		jobs = append(jobs, job{sc.Name, sc})
	} else {
		for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
			for _, sc := range testcases.All[category] {
				jobs = append(jobs, job{category + "_" + sc.Name, &sc})
			}
		}
	}

	for _, j := range jobs {
		pdfPath := filepath.Join(*outDir, j.name+".pdf")
		if err := generatePDF(j.scene, pdfPath, *outline); err != nil {
			panic(fmt.Errorf("%s: %w", j.name, err))
		}
		slog.Info("wrote scene", "name", j.name, "file", pdfPath)

		if *withPNG {
			pngPath := filepath.Join(*outDir, j.name+".png")
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", j.name, err))
			}
		}
	}
}

func generatePDF(sc *testcases.Scene, pdfPath string, outline bool) error {
	if err := sc.Validate(); err != nil {
		return err
	}
	mode, err := sc.ShadingMode()
	if err != nil {
		return err
	}

	surf, tr := sc.Build()
	mesh := surf.Mesh()
	r := surface.NewRenderer(tr, sc.Clip())

	// Page size in points (1 point = 1 pixel at 72 DPI)
	w, h := float64(sc.Width), float64(sc.Height)
	page, err := document.CreateSinglePage(pdfPath, &pdf.Rectangle{URx: w, URy: h}, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// Screen rows grow downwards, PDF y grows upwards.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	// Colours must be set before path construction starts.
	page.SetFillColor(color.DeviceGray(1))

	// Every span becomes a one pixel high rectangle, filled in one go.
	plot := func(x, y int) {
		page.Rectangle(float64(x), float64(y), 1, 1)
	}
	fill := func(s surface.Span) {
		page.Rectangle(float64(s.XMin), float64(s.Y), float64(s.XMax-s.XMin+1), 1)
	}
	stats := r.Render(mesh, tr.Camera(), surface.NewShader(mode, plot, fill))
	if stats.Spans > 0 {
		page.Fill()
	}

	if outline {
		visible := surface.FilterVisible(mesh.Vertices, mesh.Faces, tr.Camera().VRP)
		if len(visible) > 0 {
			p := faceOutlines(r.ScreenVertices(mesh), visible)
			page.SetStrokeColor(color.DeviceGray(0.5))
			page.SetLineWidth(0.5)
			page.SetLineCap(graphics.LineCapRound)
			page.SetLineJoin(graphics.LineJoinRound)
			k := 0
			for _, cmd := range p.Cmds {
				switch cmd {
				case path.CmdMoveTo:
					page.MoveTo(p.Coords[k].X, p.Coords[k].Y)
					k++
				case path.CmdLineTo:
					page.LineTo(p.Coords[k].X, p.Coords[k].Y)
					k++
				case path.CmdClose:
					page.ClosePath()
				}
			}
			page.Stroke()
		}
	}

	return page.Close()
}

// faceOutlines returns a path with one closed subpath per face.
// Pixel centres are at half-integer coordinates.
func faceOutlines(screen []vec.Vec2, faces []surface.Face) *path.Data {
	centre := vec.Vec2{X: 0.5, Y: 0.5}
	p := &path.Data{}
	for _, f := range faces {
		p.MoveTo(screen[f[0]].Add(centre))
		for _, k := range f[1:] {
			p.LineTo(screen[k].Add(centre))
		}
		p.Close()
	}
	return p
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
