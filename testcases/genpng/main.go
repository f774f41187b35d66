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

// Command genpng renders the test scenes into grayscale PNG files.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/draw"

	"seehuhn.de/go/surface"
	"seehuhn.de/go/surface/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/png", "output directory")
	sceneFile := flag.String("scene", "", "render only the scene in this TOML file")
	scale := flag.Int("scale", 1, "integer magnification of the output")
	verbose := flag.Bool("v", false, "log pipeline details")
	flag.Parse()

	if *verbose {
		surface.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if *scale < 1 {
		panic(fmt.Sprintf("invalid scale %d", *scale))
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	if *sceneFile != "" {
		sc, err := testcases.LoadFile(*sceneFile)
		if err != nil {
			panic(err)
		}
		if err := writeScene(sc, filepath.Join(*outDir, sc.Name+".png"), *scale); err != nil {
			panic(fmt.Errorf("%s: %w", sc.Name, err))
		}
		return
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			if err := writeScene(&sc, filepath.Join(*outDir, name+".png"), *scale); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func writeScene(sc *testcases.Scene, fname string, scale int) error {
	img, _, err := sc.Render()
	if err != nil {
		return err
	}

	var out image.Image = img
	if scale > 1 {
		b := img.Bounds()
		big := image.NewGray(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.NearestNeighbor.Scale(big, big.Bounds(), img, b, draw.Src, nil)
		out = big
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(f, out)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	slog.Info("wrote scene", "file", fname)
	return nil
}
