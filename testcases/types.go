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

package testcases

import "seehuhn.de/go/mesearch"

// TestCase defines a single search pattern scenario.
type TestCase struct {
	Name   string           // lowercase a-z, 0-9 and _ only
	Window mesearch.Window  // the search window
	Shape  Shape            // pattern kind and its parameters
	Want   []mesearch.Point // expected points, in order
}

// Shape is the pattern kind of a test case.
type Shape interface {
	isShape()
}

// Rood specifies a rood pattern.
type Rood struct {
	Center mesearch.Point
}

func (Rood) isShape() {}

// Raster specifies a raster pattern over the whole window.
type Raster struct {
	Stride int
}

func (Raster) isShape() {}

// Hexagon specifies a rotating hexagon pattern.
type Hexagon struct {
	Center   mesearch.Point
	Exponent int
}

func (Hexagon) isShape() {}

// Pattern returns a new, not yet produced, pattern for the test case.
func (tc TestCase) Pattern() mesearch.Pattern {
	switch s := tc.Shape.(type) {
	case Rood:
		p := mesearch.NewRood(s.Center)
		p.Window = tc.Window
		return p
	case Raster:
		return mesearch.NewRaster(s.Stride, tc.Window)
	case Hexagon:
		p := mesearch.NewHexagon(s.Exponent, s.Center)
		p.Window = tc.Window
		return p
	default:
		panic("unknown shape")
	}
}

// Center returns the center of the pattern, if the shape has one.
func (tc TestCase) Center() (mesearch.Point, bool) {
	switch s := tc.Shape.(type) {
	case Rood:
		return s.Center, true
	case Hexagon:
		return s.Center, true
	default:
		return mesearch.Point{}, false
	}
}

// box is the window [-r, r] × [-r, r].
func box(r int) mesearch.Window {
	return mesearch.Window{Top: -r, Right: r, Bottom: r, Left: -r}
}

// pts builds a point list from x, y pairs.
func pts(xy ...int) []mesearch.Point {
	res := make([]mesearch.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		res = append(res, mesearch.Point{X: xy[i], Y: xy[i+1]})
	}
	return res
}

// pt creates a mesearch.Point from x, y coordinates.
func pt(x, y int) mesearch.Point {
	return mesearch.Point{X: x, Y: y}
}
