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
	"iter"
)

// Pattern is implemented by all search patterns.
//
// Produce regenerates the candidate points from the current configuration
// and resets the cursor to the first point.  The remaining methods give
// access to the points generated by the most recent call to Produce.
type Pattern interface {
	Produce()
	NumPoints() int
	Current() Point
	X() int
	Y() int
	Next()
	Done() bool
	Rewind()
	Points() []Point
	All() iter.Seq[Point]
}

var (
	_ Pattern = (*Rood)(nil)
	_ Pattern = (*Raster)(nil)
	_ Pattern = (*Hexagon)(nil)
)

// sequence holds the state shared by all search patterns: the search
// window, the most recently produced points and the cursor.
type sequence struct {
	// Window bounds all generated points.
	Window Window

	points []Point // reused across calls to Produce
	cursor int
}

// SetWindow sets the search window.  The bounds are inclusive.
func (s *sequence) SetWindow(top, right, bottom, left int) {
	s.Window = Window{Top: top, Right: right, Bottom: bottom, Left: left}
}

// NumPoints returns the number of points generated by the last call to
// Produce.
func (s *sequence) NumPoints() int {
	return len(s.points)
}

// Current returns the point at the cursor.
// It panics if the cursor does not refer to a produced point.
func (s *sequence) Current() Point {
	if s.cursor < 0 || s.cursor >= len(s.points) {
		panic(fmt.Errorf("%w: index %d, %d points", ErrCursorRange, s.cursor, len(s.points)))
	}
	return s.points[s.cursor]
}

// X returns the x coordinate of the point at the cursor.
func (s *sequence) X() int {
	return s.Current().X
}

// Y returns the y coordinate of the point at the cursor.
func (s *sequence) Y() int {
	return s.Current().Y
}

// Next advances the cursor to the following point.
// No bounds checking is done here; use Done to detect the end.
func (s *sequence) Next() {
	s.cursor++
}

// Done reports whether the cursor has moved past the last point.
func (s *sequence) Done() bool {
	return s.cursor >= len(s.points)
}

// Rewind moves the cursor back to the first point, without regenerating
// the points.
func (s *sequence) Rewind() {
	s.cursor = 0
}

// Points returns the produced points in order.  The slice is only valid
// until the next call to Produce and must not be modified.
func (s *sequence) Points() []Point {
	return s.points
}

// All returns an iterator over the produced points.  Iterating does not
// move the cursor, and the iterator can be used more than once.
func (s *sequence) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, p := range s.points {
			if !yield(p) {
				return
			}
		}
	}
}

// reset discards the previous points and rewinds the cursor.
func (s *sequence) reset() {
	s.points = s.points[:0]
	s.cursor = 0
}

// add appends p if it lies inside the search window, and reports whether
// the point was kept.
func (s *sequence) add(p Point) bool {
	if !s.Window.Contains(p) {
		return false
	}
	s.points = append(s.points, p)
	return true
}
