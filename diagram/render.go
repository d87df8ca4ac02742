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

package diagram

import (
	"image"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
)

// Render rasterises the scene into an alpha mask, with scale pixels of
// output per pixel of the search window.  The trace is not drawn.
func Render(s *Scene, scale int) (*image.Alpha, error) {
	g, err := s.Paths(float64(scale))
	if err != nil {
		return nil, err
	}

	width := int(math.Ceil(g.Width))
	height := int(math.Ceil(g.Height))
	dst := image.NewAlpha(image.Rect(0, 0, width, height))

	z := vector.NewRasterizer(width, height)
	for _, p := range []*path.Data{g.Frame, g.Center, g.Markers} {
		addToRasterizer(z, p)
	}
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	return dst, nil
}

// WritePNG renders the scene and writes it to w in PNG format.
func WritePNG(w io.Writer, s *Scene, scale int) error {
	img, err := Render(s, scale)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// addToRasterizer feeds the outline p into z.
func addToRasterizer(z *vector.Rasterizer, p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdLineTo:
			z.LineTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdCubeTo:
			z.CubeTo(float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y),
				float32(pts[2].X), float32(pts[2].Y))
		case path.CmdClose:
			z.ClosePath()
		}
	}
}
