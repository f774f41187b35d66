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

package main

import (
	"bytes"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/surface/testcases"
)

func TestGeneratePDF(t *testing.T) {
	dir := t.TempDir()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			for _, outline := range []bool{false, true} {
				name := category + "_" + sc.Name
				if outline {
					name += "_outline"
				}
				t.Run(name, func(t *testing.T) {
					fname := filepath.Join(dir, name+".pdf")
					if err := generatePDF(&sc, fname, outline); err != nil {
						t.Fatal(err)
					}
					data, err := os.ReadFile(fname)
					if err != nil {
						t.Fatal(err)
					}
					if !bytes.HasPrefix(data, []byte("%PDF-")) {
						t.Errorf("%s is not a PDF file", fname)
					}
				})
			}
		}
	}
}

func TestGeneratePDFInvalidScene(t *testing.T) {
	sc := testcases.All["patch"][0]
	sc.Width = 0
	fname := filepath.Join(t.TempDir(), "invalid.pdf")
	if err := generatePDF(&sc, fname, false); err == nil {
		t.Error("invalid scene accepted")
	}
}
