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

import "fmt"

// MaxExponent is the largest step exponent supported by Hexagon.
const MaxExponent = 30

// Hexagon is the rotating hexagon pattern.  The size of the pattern is
// controlled by the step exponent s:
//
//   - s = 0: the center only,
//   - s = 1: the rood pattern at distance 1,
//   - s ≥ 2: a hexagon with corner distance 2^(s-1).
//
// For odd s ≥ 2 the hexagon is horizontal, for even s it is vertical:
//
//	   odd s            even s
//
//	  *   *               *
//	                  *       *
//	*   o   *             o
//	                  *       *
//	  *   *               *
//
// Callers typically grow the pattern by incrementing Exponent between
// search stages.
type Hexagon struct {
	sequence

	// Center is the position the pattern is built around.
	Center Point

	// Exponent is the step exponent, in the range 0 to MaxExponent.
	Exponent int
}

// NewHexagon returns a hexagon pattern around center.  The search window
// is the zero Window, which contains only the origin, until set by the
// caller.
func NewHexagon(exponent int, center Point) *Hexagon {
	return &Hexagon{Center: center, Exponent: exponent}
}

// CornerDistance returns the distance between the center and the left and
// right corners of the hexagon with the given step exponent.
// For exponent 1 this is the distance of the rood points, for exponent 0
// the result is 0.
func CornerDistance(exponent int) int {
	if exponent <= 0 {
		return 0
	}
	return 1 << (exponent - 1)
}

// Produce generates the points of the pattern which lie inside the search
// window.  Points are ordered by row from top to bottom, and from left to
// right within each row.
//
// Vertical hexagons adapt to the top edge of the window: if the top corner
// lies above the window, the point halfway between center and top corner
// is used in its place.  There is no corresponding rule for the bottom
// edge.
//
// Produce panics if Exponent is outside the range 0 to MaxExponent.
func (h *Hexagon) Produce() {
	s := h.Exponent
	if s < 0 || s > MaxExponent {
		panic(fmt.Errorf("%w: got %d", ErrInvalidExponent, s))
	}

	h.reset()
	c := h.Center
	switch {
	case s == 0:
		h.add(c)
	case s == 1:
		h.addRood(c, 1)
	case s&1 == 1:
		h.addHorizontal(c, CornerDistance(s))
	default:
		h.addVertical(c, CornerDistance(s))
	}
}

// addHorizontal appends the hexagon with corners to the left and right of c.
func (h *Hexagon) addHorizontal(c Point, corner int) {
	half := corner >> 1
	h.add(Point{X: c.X - half, Y: c.Y - corner})
	h.add(Point{X: c.X + half, Y: c.Y - corner})
	h.add(Point{X: c.X - corner, Y: c.Y})
	h.add(Point{X: c.X + corner, Y: c.Y})
	h.add(Point{X: c.X - half, Y: c.Y + corner})
	h.add(Point{X: c.X + half, Y: c.Y + corner})
}

// addVertical appends the hexagon with corners above and below c.
func (h *Hexagon) addVertical(c Point, corner int) {
	half := corner >> 1

	top := Point{X: c.X, Y: c.Y - corner}
	if top.Y < h.Window.Top {
		top.Y = c.Y - half
	}
	h.add(top)

	h.add(Point{X: c.X - corner, Y: c.Y - half})
	h.add(Point{X: c.X + corner, Y: c.Y - half})
	h.add(Point{X: c.X - corner, Y: c.Y + half})
	h.add(Point{X: c.X + corner, Y: c.Y + half})
	h.add(Point{X: c.X, Y: c.Y + corner})
}
