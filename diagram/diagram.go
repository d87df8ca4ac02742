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

// Package diagram draws search patterns, for documentation and debugging.
//
// A Scene shows the search window as a frame, the center of the pattern as
// a circular ring, and every produced point as a filled diamond.  Scenes can be
// rendered to a greyscale image, or written as a single-page PDF file in
// which the order of the points is also shown.
package diagram

import (
	"errors"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mesearch"
)

// ErrEmptyWindow is returned when a scene with an empty window is drawn.
var ErrEmptyWindow = errors.New("diagram: empty search window")

// ErrInvalidScale is returned when the scale is smaller than one device
// unit per pixel.
var ErrInvalidScale = errors.New("diagram: scale must be at least 1")

// Scene is a produced search pattern, ready for drawing.
type Scene struct {
	Window mesearch.Window
	Center *mesearch.Point // nil if the pattern has no center
	Points []mesearch.Point
}

// FromPattern captures the current points of p.  The pattern must have
// been produced already.
func FromPattern(p mesearch.Pattern) *Scene {
	s := &Scene{Points: slices.Clone(p.Points())}
	switch p := p.(type) {
	case *mesearch.Rood:
		c := p.Center
		s.Window, s.Center = p.Window, &c
	case *mesearch.Hexagon:
		c := p.Center
		s.Window, s.Center = p.Window, &c
	case *mesearch.Raster:
		s.Window = p.Window
	}
	return s
}

// Geometry holds the outlines of a scene in device coordinates.
// The y axis points down.
type Geometry struct {
	Width, Height float64

	Frame   *path.Data // window boundary, with a hole
	Center  *path.Data // circular ring around the center, if any
	Markers *path.Data // one diamond per point
	Trace   *path.Data // polyline through the points, in order
}

// margin is the space around the window, in pixels.
const margin = 1

// circleKappa places the control points of a cubic Bézier quarter circle.
const circleKappa = 0.5522847498

// Size returns the size of the drawing area for the given scale.
func (s *Scene) Size(scale float64) (width, height float64) {
	r := s.Window.Rect()
	width = max(r.URx-r.LLx, 0) + 2*margin
	height = max(r.URy-r.LLy, 0) + 2*margin
	return width * scale, height * scale
}

// Paths returns the outlines of the scene, with each pixel of the search
// window drawn as a square of side length scale.
func (s *Scene) Paths(scale float64) (*Geometry, error) {
	if s.Window.Empty() {
		return nil, ErrEmptyWindow
	}
	if scale < 1 {
		return nil, ErrInvalidScale
	}

	g := &Geometry{
		Frame:   &path.Data{},
		Center:  &path.Data{},
		Markers: &path.Data{},
		Trace:   &path.Data{},
	}
	g.Width, g.Height = s.Size(scale)
	m := s.toDevice(scale)

	lw := max(scale/8, 0.5)
	r := s.Window.Rect()
	ll := apply(m, vec.Vec2{X: r.LLx, Y: r.LLy})
	ur := apply(m, vec.Vec2{X: r.URx, Y: r.URy})
	addRect(g.Frame, ll.X-lw, ll.Y-lw, ur.X+lw, ur.Y+lw, false)
	addRect(g.Frame, ll.X, ll.Y, ur.X, ur.Y, true)

	if s.Center != nil {
		c := pixelCenter(m, *s.Center)
		rad := 0.45 * scale
		addCircle(g.Center, c, rad, false)
		addCircle(g.Center, c, rad-lw, true)
	}

	rad := 0.35 * scale
	for i, p := range s.Points {
		c := pixelCenter(m, p)
		g.Markers.MoveTo(vec.Vec2{X: c.X, Y: c.Y - rad}).
			LineTo(vec.Vec2{X: c.X + rad, Y: c.Y}).
			LineTo(vec.Vec2{X: c.X, Y: c.Y + rad}).
			LineTo(vec.Vec2{X: c.X - rad, Y: c.Y}).
			Close()

		if i == 0 {
			g.Trace.MoveTo(c)
		} else {
			g.Trace.LineTo(c)
		}
	}

	return g, nil
}

// toDevice returns the map from window coordinates to device coordinates.
// Pixel (x, y) covers the unit square [x, x+1] × [y, y+1] before the map.
func (s *Scene) toDevice(scale float64) matrix.Matrix {
	r := s.Window.Rect()
	return matrix.Matrix{
		scale, 0,
		0, scale,
		(margin - r.LLx) * scale, (margin - r.LLy) * scale,
	}
}

// apply transforms v by the affine map m.
func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// pixelCenter returns the device coordinates of the middle of pixel p.
func pixelCenter(m matrix.Matrix, p mesearch.Point) vec.Vec2 {
	return apply(m, p.Vec2().Add(vec.Vec2{X: 0.5, Y: 0.5}))
}

// addRect appends an axis-parallel rectangle to p.  Reversed rectangles
// are traversed in the opposite direction and cut holes into
// surrounding shapes under the nonzero winding rule.
func addRect(p *path.Data, x0, y0, x1, y1 float64, reversed bool) {
	corners := [4]vec.Vec2{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	}
	if reversed {
		corners[1], corners[3] = corners[3], corners[1]
	}
	p.MoveTo(corners[0]).
		LineTo(corners[1]).
		LineTo(corners[2]).
		LineTo(corners[3]).
		Close()
}

// addCircle appends a circle made of four cubic arcs to p.  As for
// addRect, reversed circles cut holes.
func addCircle(p *path.Data, c vec.Vec2, r float64, reversed bool) {
	dir := 1.0
	if reversed {
		dir = -1
	}
	k := circleKappa * r

	right := vec.Vec2{X: c.X + r, Y: c.Y}
	down := vec.Vec2{X: c.X, Y: c.Y + dir*r}
	left := vec.Vec2{X: c.X - r, Y: c.Y}
	up := vec.Vec2{X: c.X, Y: c.Y - dir*r}

	p.MoveTo(right).
		CubeTo(vec.Vec2{X: right.X, Y: right.Y + dir*k}, vec.Vec2{X: down.X + k, Y: down.Y}, down).
		CubeTo(vec.Vec2{X: down.X - k, Y: down.Y}, vec.Vec2{X: left.X, Y: left.Y + dir*k}, left).
		CubeTo(vec.Vec2{X: left.X, Y: left.Y - dir*k}, vec.Vec2{X: up.X - k, Y: up.Y}, up).
		CubeTo(vec.Vec2{X: up.X + k, Y: up.Y}, vec.Vec2{X: right.X, Y: right.Y - dir*k}, right).
		Close()
}
