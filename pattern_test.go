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
	"errors"
	"slices"
	"testing"
)

// mustPanic calls f and returns the error it panics with.
func mustPanic(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		e, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v is not an error", r)
		}
		err = e
	}()
	f()
	return nil
}

func TestCursorWalk(t *testing.T) {
	h := NewHexagon(3, Point{})
	h.Window = Window{Top: -10, Right: 10, Bottom: 10, Left: -10}
	h.Produce()

	if h.NumPoints() != 6 {
		t.Fatalf("expected 6 points, got %d", h.NumPoints())
	}

	var walked []Point
	for ; !h.Done(); h.Next() {
		walked = append(walked, Point{X: h.X(), Y: h.Y()})
	}
	if !slices.Equal(walked, h.Points()) {
		t.Errorf("cursor walk %v differs from Points %v", walked, h.Points())
	}
	if all := slices.Collect(h.All()); !slices.Equal(all, walked) {
		t.Errorf("All %v differs from cursor walk %v", all, walked)
	}

	h.Rewind()
	if h.Done() || h.Current() != walked[0] {
		t.Errorf("Rewind: got current %v, want %v", h.Current(), walked[0])
	}
}

func TestProduceResetsCursor(t *testing.T) {
	r := NewRood(Point{X: 5, Y: 5})
	r.SetWindow(0, 10, 10, 0)
	r.Produce()
	r.Next()
	r.Next()

	r.Center = Point{X: 0, Y: 0}
	r.Produce()

	if r.NumPoints() != 2 {
		t.Fatalf("expected 2 points, got %d", r.NumPoints())
	}
	if got := r.Current(); got != (Point{X: 1, Y: 0}) {
		t.Errorf("expected first point (1,0) after Produce, got %v", got)
	}
}

func TestCursorOutOfRange(t *testing.T) {
	r := NewRood(Point{})

	// before the first call to Produce
	err := mustPanic(t, func() { r.X() })
	if !errors.Is(err, ErrCursorRange) {
		t.Errorf("expected ErrCursorRange, got %v", err)
	}

	r.SetWindow(-1, 1, 1, -1)
	r.Produce()
	for range r.NumPoints() {
		r.Next()
	}
	if !r.Done() {
		t.Fatal("expected cursor to be exhausted")
	}
	err = mustPanic(t, func() { r.Y() })
	if !errors.Is(err, ErrCursorRange) {
		t.Errorf("expected ErrCursorRange, got %v", err)
	}
}

func TestAllStopsEarly(t *testing.T) {
	r := NewRaster(1, Window{Top: 0, Right: 9, Bottom: 9, Left: 0})
	r.Produce()

	count := 0
	for range r.All() {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("expected 3 iterations, got %d", count)
	}
}

func TestRoodAdjacent(t *testing.T) {
	// all windows inside [-3, 3]², all centers strictly inside the window
	for top := -3; top <= 3; top++ {
		for bottom := top + 2; bottom <= 3; bottom++ {
			for left := -3; left <= 3; left++ {
				for right := left + 2; right <= 3; right++ {
					w := Window{Top: top, Right: right, Bottom: bottom, Left: left}
					for y := top + 1; y < bottom; y++ {
						for x := left + 1; x < right; x++ {
							checkRood(t, w, Point{X: x, Y: y})
						}
					}
				}
			}
		}
	}
}

func checkRood(t *testing.T, w Window, c Point) {
	t.Helper()
	r := NewRood(c)
	r.Window = w
	r.Produce()

	if n := r.NumPoints(); n > 4 {
		t.Fatalf("%v in %v: %d points", c, w, n)
	}
	for p := range r.All() {
		if !w.Contains(p) {
			t.Errorf("%v in %v: point %v outside window", c, w, p)
		}
		d := p.Sub(c)
		if abs(d.X)+abs(d.Y) != 1 {
			t.Errorf("%v in %v: point %v not adjacent", c, w, p)
		}
	}
}

func TestRasterGrid(t *testing.T) {
	windows := []Window{
		{Top: 0, Right: 0, Bottom: 0, Left: 0},
		{Top: -7, Right: 7, Bottom: 7, Left: -7},
		{Top: 3, Right: 20, Bottom: 8, Left: -1},
		{Top: -16, Right: 2, Bottom: 16, Left: 0},
	}
	for _, w := range windows {
		for stride := 1; stride <= 5; stride++ {
			r := NewRaster(stride, w)
			r.Produce()

			numCols := (w.Right-w.Left)/stride + 1
			numRows := (w.Bottom-w.Top)/stride + 1
			if r.NumPoints() != numCols*numRows {
				t.Errorf("%v stride %d: got %d points, want %d",
					w, stride, r.NumPoints(), numCols*numRows)
				continue
			}
			if r.Points()[0] != (Point{X: w.Left, Y: w.Top}) {
				t.Errorf("%v stride %d: first point %v", w, stride, r.Points()[0])
			}
			for i, p := range r.Points() {
				row, col := i/numCols, i%numCols
				want := Point{X: w.Left + col*stride, Y: w.Top + row*stride}
				if p != want {
					t.Errorf("%v stride %d: point %d is %v, want %v", w, stride, i, p, want)
				}
				if !w.Contains(p) {
					t.Errorf("%v stride %d: point %v outside window", w, stride, p)
				}
			}
		}
	}
}

// TestRasterNonSquare catches grids which are flattened with the row
// count instead of the column count.
func TestRasterNonSquare(t *testing.T) {
	r := NewRaster(1, Window{Top: 0, Right: 3, Bottom: 1, Left: 0})
	r.Produce()

	want := []Point{
		{0, 0}, {1, 0}, {2, 0}, {3, 0},
		{0, 1}, {1, 1}, {2, 1}, {3, 1},
	}
	if !slices.Equal(r.Points(), want) {
		t.Errorf("got %v, want %v", r.Points(), want)
	}
}

func TestRasterInvalidStride(t *testing.T) {
	r := NewRaster(0, Window{Top: 0, Right: 3, Bottom: 3, Left: 0})
	err := mustPanic(t, r.Produce)
	if !errors.Is(err, ErrInvalidStride) {
		t.Errorf("expected ErrInvalidStride, got %v", err)
	}
}

func TestRasterReuse(t *testing.T) {
	r := NewRaster(1, Window{Top: 0, Right: 9, Bottom: 9, Left: 0})
	r.Produce()
	if r.NumPoints() != 100 {
		t.Fatalf("expected 100 points, got %d", r.NumPoints())
	}

	r.SetWindow(0, 1, 0, 0)
	r.Produce()
	want := []Point{{0, 0}, {1, 0}}
	if !slices.Equal(r.Points(), want) {
		t.Errorf("got %v, want %v", r.Points(), want)
	}
}

func TestHexagonCenterOnly(t *testing.T) {
	c := Point{X: 3, Y: -2}
	h := NewHexagon(0, c)
	h.Window = WindowAround(c, 4, 4)
	h.Produce()

	if !slices.Equal(h.Points(), []Point{c}) {
		t.Errorf("got %v, want [%v]", h.Points(), c)
	}
}

// Without a call to SetWindow, the patterns are clipped to the zero
// window, which holds the origin alone.
func TestDefaultWindow(t *testing.T) {
	origin := []Point{{X: 0, Y: 0}}

	r := NewRood(Point{X: 0, Y: 1})
	r.Produce()
	if !slices.Equal(r.Points(), origin) {
		t.Errorf("rood: got %v, want %v", r.Points(), origin)
	}

	h := NewHexagon(0, Point{X: 0, Y: 0})
	h.Produce()
	if !slices.Equal(h.Points(), origin) {
		t.Errorf("hexagon: got %v, want %v", h.Points(), origin)
	}

	h.Center = Point{X: 1, Y: 0}
	h.Produce()
	if h.NumPoints() != 0 {
		t.Errorf("hexagon off the origin: got %v, want no points", h.Points())
	}
}

func TestHexagonMatchesRood(t *testing.T) {
	w := Window{Top: 0, Right: 4, Bottom: 4, Left: 0}
	for y := w.Top; y <= w.Bottom; y++ {
		for x := w.Left; x <= w.Right; x++ {
			c := Point{X: x, Y: y}

			h := NewHexagon(1, c)
			h.Window = w
			h.Produce()

			r := NewRood(c)
			r.Window = w
			r.Produce()

			if !slices.Equal(h.Points(), r.Points()) {
				t.Errorf("center %v: hexagon %v, rood %v", c, h.Points(), r.Points())
			}
		}
	}
}

func TestHexagonInsideWindow(t *testing.T) {
	w := Window{Top: -12, Right: 9, Bottom: 5, Left: -6}
	for s := 2; s <= 6; s++ {
		for y := w.Top; y <= w.Bottom; y++ {
			for x := w.Left; x <= w.Right; x++ {
				h := NewHexagon(s, Point{X: x, Y: y})
				h.Window = w
				h.Produce()

				if h.NumPoints() > 6 {
					t.Fatalf("s=%d center (%d,%d): %d points", s, x, y, h.NumPoints())
				}
				for p := range h.All() {
					if !w.Contains(p) {
						t.Errorf("s=%d center (%d,%d): %v outside window", s, x, y, p)
					}
				}
			}
		}
	}
}

func TestHexagonSymmetric(t *testing.T) {
	c := Point{X: 100, Y: -50}
	for s := 2; s <= 10; s++ {
		h := NewHexagon(s, c)
		h.Window = WindowAround(c, 1<<s, 1<<s)
		h.Produce()

		if h.NumPoints() != 6 {
			t.Fatalf("s=%d: expected 6 points, got %d", s, h.NumPoints())
		}
		points := h.Points()
		for i, p := range points {
			mirror := points[len(points)-1-i]
			if p.Sub(c) != c.Sub(mirror) {
				t.Errorf("s=%d: %v and %v not symmetric about %v", s, p, mirror, c)
			}
		}

		corner := CornerDistance(s)
		if s%2 == 1 {
			if points[2] != c.Add(Point{X: -corner}) {
				t.Errorf("s=%d: left corner %v", s, points[2])
			}
		} else if points[0] != c.Add(Point{Y: -corner}) {
			t.Errorf("s=%d: top corner %v", s, points[0])
		}
	}
}

// TestHexagonEdgeAsymmetry pins down that vertical hexagons replace a
// missing top corner, but not a missing bottom corner.
func TestHexagonEdgeAsymmetry(t *testing.T) {
	w := Window{Top: 0, Right: 20, Bottom: 20, Left: 0}

	top := NewHexagon(4, Point{X: 10, Y: 5})
	top.Window = w
	top.Produce()
	if top.NumPoints() != 6 {
		t.Errorf("top edge: expected 6 points, got %v", top.Points())
	}
	if got, want := top.Points()[0], (Point{X: 10, Y: 1}); got != want {
		t.Errorf("top edge: first point %v, want %v", got, want)
	}

	bottom := NewHexagon(4, Point{X: 10, Y: 15})
	bottom.Window = w
	bottom.Produce()
	if bottom.NumPoints() != 5 {
		t.Errorf("bottom edge: expected 5 points, got %v", bottom.Points())
	}
	for p := range bottom.All() {
		if p.Y > 15 && p.X == 10 {
			t.Errorf("bottom edge: unexpected replacement point %v", p)
		}
	}
}

func TestHexagonInvalidExponent(t *testing.T) {
	for _, s := range []int{-1, MaxExponent + 1} {
		h := NewHexagon(s, Point{})
		err := mustPanic(t, h.Produce)
		if !errors.Is(err, ErrInvalidExponent) {
			t.Errorf("s=%d: expected ErrInvalidExponent, got %v", s, err)
		}
	}
}

func TestCornerDistance(t *testing.T) {
	want := []int{0, 1, 2, 4, 8, 16}
	for s, d := range want {
		if got := CornerDistance(s); got != d {
			t.Errorf("CornerDistance(%d) = %d, want %d", s, got, d)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
