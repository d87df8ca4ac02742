// seehuhn.de/go/mesearch - motion estimation search patterns
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

// Command genpdf draws a diagram of every test case, as PDF and as PNG.
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/mesearch/diagram"
	"seehuhn.de/go/mesearch/testcases"
)

const (
	outDir = "testdata/diagrams"

	pdfScale = 12 // PDF points per pixel
	pngScale = 16 // output pixels per pixel
)

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, name); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(tc testcases.TestCase, name string) error {
	p := tc.Pattern()
	p.Produce()

	scene := diagram.FromPattern(p)
	if scene.Window.Empty() {
		// nothing to draw
		return nil
	}

	pdfPath := filepath.Join(outDir, name+".pdf")
	if err := diagram.WritePDF(pdfPath, scene, pdfScale); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(outDir, name+".png"))
	if err != nil {
		return err
	}
	err = diagram.WritePNG(f, scene, pngScale)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
