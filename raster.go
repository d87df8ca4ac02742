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

package mesearch

import (
	"fmt"
	"slices"
)

// Raster is an exhaustive scan of the search window on a regular grid.
// Grid points are Stride pixels apart in both directions, starting at the
// top-left corner of the window.  Points are generated row by row, from top
// to bottom, and from left to right within each row.
type Raster struct {
	sequence

	// Stride is the distance between neighbouring grid points.
	// Must be at least 1.
	Stride int
}

// NewRaster returns a raster pattern covering the given window.
func NewRaster(stride int, window Window) *Raster {
	return &Raster{
		sequence: sequence{Window: window},
		Stride:   stride,
	}
}

// Produce generates the grid points of the search window.
// It panics if Stride is smaller than 1.
func (r *Raster) Produce() {
	if r.Stride < 1 {
		panic(fmt.Errorf("%w: got %d", ErrInvalidStride, r.Stride))
	}

	r.reset()
	w := r.Window
	if w.Empty() {
		return
	}

	numCols, numRows := r.gridSize()
	n := numCols * numRows
	r.points = slices.Grow(r.points, n)[:n]

	for row := range numRows {
		y := w.Top + row*r.Stride
		for col := range numCols {
			r.points[row*numCols+col] = Point{X: w.Left + col*r.Stride, Y: y}
		}
	}
}

// gridSize returns the number of grid columns and rows in a non-empty
// search window.
func (r *Raster) gridSize() (numCols, numRows int) {
	w := r.Window
	numCols = (w.Right-w.Left)/r.Stride + 1
	numRows = (w.Bottom-w.Top)/r.Stride + 1
	return numCols, numRows
}
