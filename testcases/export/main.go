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
// Command export writes the tessellated test scenes to JSON, for checking
// the pipeline against external tools.  Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/surface"
	"seehuhn.de/go/surface/testcases"
)

func main() {
	out := flag.String("o", "testdata/scenes.json", "output file")
	verbose := flag.Bool("v", false, "log pipeline details")
	flag.Parse()

	if *verbose {
		surface.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var data struct {
		Scenes []jsonScene `json:"scenes"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			data.Scenes = append(data.Scenes, toJSON(category, &sc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create(*out)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		panic(err)
	}
}

type jsonScene struct {
	Name       string         `json:"name"`
	Projection string         `json:"projection"`
	Matrix     [4][4]float64  `json:"matrix"` // row-major
	Vertices   [][4]float64   `json:"vertices"`
	Screen     [][2]float64   `json:"screen"`
	Faces      []surface.Face `json:"faces"`
	Visible    []surface.Face `json:"visible"`
}

func toJSON(category string, sc *testcases.Scene) jsonScene {
	if err := sc.Validate(); err != nil {
		panic(err)
	}
	surf, tr := sc.Build()
	mesh := surf.Mesh()

	js := jsonScene{
		Name:       category + "_" + sc.Name,
		Projection: tr.Projection().String(),
		Faces:      mesh.Faces,
		Visible:    surface.FilterVisible(mesh.Vertices, mesh.Faces, tr.Camera().VRP),
	}

	m := tr.Matrix()
	for i := range 4 {
		js.Matrix[i] = m.Row(i)
	}

	r := surface.NewRenderer(tr, sc.Clip())
	screen := r.ScreenVertices(mesh)
	for i, v := range mesh.Vertices {
		js.Vertices = append(js.Vertices, v)
		js.Screen = append(js.Screen, [2]float64{screen[i].X, screen[i].Y})
	}
	return js
}
