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

// Rood is the small cross pattern around a center:
//
//	     (1)
//	(2)  (*)  (3)
//	     (4)
//
// The center itself is not part of the pattern.
type Rood struct {
	sequence

	// Center is the position the cross is built around.
	Center Point
}

// NewRood returns a rood pattern around center.  The search window is
// the zero Window, which contains only the origin, until set by the caller.
func NewRood(center Point) *Rood {
	return &Rood{Center: center}
}

// Produce generates the up to four neighbours of the center which lie
// inside the search window, in the order up, left, right, down.
func (r *Rood) Produce() {
	r.reset()
	r.addRood(r.Center, 1)
}

// roodOffsets lists the unit offsets of the rood pattern in emission order.
var roodOffsets = [4]Point{
	{X: 0, Y: -1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
}

// addRood appends the rood pattern around c, scaled by dist.
func (s *sequence) addRood(c Point, dist int) {
	for _, d := range roodOffsets {
		s.add(Point{X: c.X + dist*d.X, Y: c.Y + dist*d.Y})
	}
}
