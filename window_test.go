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
	"testing"

	"seehuhn.de/go/geom/rect"
)

func TestWindowContains(t *testing.T) {
	w := Window{Top: -2, Right: 3, Bottom: 1, Left: -1}
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{X: -1, Y: -2}, true},
		{Point{X: 3, Y: 1}, true},
		{Point{X: 0, Y: 0}, true},
		{Point{X: -2, Y: 0}, false},
		{Point{X: 4, Y: 0}, false},
		{Point{X: 0, Y: -3}, false},
		{Point{X: 0, Y: 2}, false},
	}
	for _, c := range cases {
		if got := w.Contains(c.p); got != c.want {
			t.Errorf("%v.Contains(%v) = %t, want %t", w, c.p, got, c.want)
		}
	}
}

func TestWindowSize(t *testing.T) {
	w := Window{Top: -2, Right: 3, Bottom: 1, Left: -1}
	if w.Empty() {
		t.Error("window should not be empty")
	}
	if w.Width() != 5 || w.Height() != 4 {
		t.Errorf("got size %dx%d, want 5x4", w.Width(), w.Height())
	}

	inverted := Window{Top: 1, Right: 3, Bottom: 0, Left: -1}
	if !inverted.Empty() || inverted.Height() != 0 {
		t.Errorf("inverted window: Empty()=%t Height()=%d", inverted.Empty(), inverted.Height())
	}
}

func TestWindowRect(t *testing.T) {
	w := Window{Top: -2, Right: 3, Bottom: 1, Left: -1}
	r := w.Rect()

	want := rect.Rect{LLx: -1, LLy: -2, URx: 4, URy: 2}
	if r != want {
		t.Errorf("Rect() = %v, want %v", r, want)
	}

	empty := Window{Top: 1, Right: 3, Bottom: 0, Left: -1}.Rect()
	if empty.URy > empty.LLy {
		t.Errorf("inverted window covers %v", empty)
	}
}

func TestWindowAroundIntersect(t *testing.T) {
	picture := Window{Top: 0, Right: 63, Bottom: 31, Left: 0}
	search := WindowAround(Point{X: 2, Y: 30}, 8, 4)

	want := Window{Top: 26, Right: 10, Bottom: 34, Left: -6}
	if search != want {
		t.Fatalf("WindowAround = %v, want %v", search, want)
	}

	clipped := search.Intersect(picture)
	want = Window{Top: 26, Right: 10, Bottom: 31, Left: 0}
	if clipped != want {
		t.Errorf("Intersect = %v, want %v", clipped, want)
	}

	far := WindowAround(Point{X: 100, Y: 100}, 2, 2)
	if !far.Intersect(picture).Empty() {
		t.Error("expected empty intersection")
	}
}
