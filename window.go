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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Point is an absolute pixel position.
type Point struct {
	X, Y int
}

// Add returns the point p shifted by the offset d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the offset from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec2 converts p to a floating point vector.
func (p Point) Vec2() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Window is an inclusive rectangle of pixel positions.  Since the y axis
// points down, a well-formed window has Left <= Right and Top <= Bottom.
// No ordering is enforced; a window which is not well-formed contains no
// points.
type Window struct {
	Top, Right, Bottom, Left int
}

// WindowAround returns the window of all positions at most rangeX pixels
// horizontally and rangeY pixels vertically away from center.
func WindowAround(center Point, rangeX, rangeY int) Window {
	return Window{
		Top:    center.Y - rangeY,
		Right:  center.X + rangeX,
		Bottom: center.Y + rangeY,
		Left:   center.X - rangeX,
	}
}

// Rect returns the area covered by the pixels of w, where pixel (x, y)
// covers the unit square [x, x+1] × [y, y+1].
func (w Window) Rect() rect.Rect {
	return rect.Rect{
		LLx: float64(w.Left),
		LLy: float64(w.Top),
		URx: float64(w.Right + 1),
		URy: float64(w.Bottom + 1),
	}
}

// Contains reports whether p lies inside w.
func (w Window) Contains(p Point) bool {
	return p.X >= w.Left && p.X <= w.Right && p.Y >= w.Top && p.Y <= w.Bottom
}

// Empty reports whether w contains no positions.
func (w Window) Empty() bool {
	return w.Right < w.Left || w.Bottom < w.Top
}

// Width returns the number of columns in w.
func (w Window) Width() int {
	return max(w.Right-w.Left+1, 0)
}

// Height returns the number of rows in w.
func (w Window) Height() int {
	return max(w.Bottom-w.Top+1, 0)
}

// Intersect returns the positions contained in both w and v.
// The result may be empty.
func (w Window) Intersect(v Window) Window {
	return Window{
		Top:    max(w.Top, v.Top),
		Right:  min(w.Right, v.Right),
		Bottom: min(w.Bottom, v.Bottom),
		Left:   max(w.Left, v.Left),
	}
}

func (w Window) String() string {
	return fmt.Sprintf("[%d,%d]x[%d,%d]", w.Left, w.Right, w.Top, w.Bottom)
}
