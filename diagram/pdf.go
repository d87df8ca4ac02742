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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

// WritePDF writes the scene as a single-page PDF file, with scale PDF
// points per pixel of the search window.  In addition to the frame,
// center and markers, the order of the points is shown by a grey line.
func WritePDF(fname string, s *Scene, scale float64) error {
	g, err := s.Paths(scale)
	if err != nil {
		return err
	}

	paper := &pdf.Rectangle{
		URx: g.Width,
		URy: g.Height,
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; the geometry assumes top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, g.Height})

	draw := func(p *path.Data) {
		for cmd, pts := range p.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
	}

	if len(g.Trace.Cmds) > 1 {
		page.SetStrokeColor(color.DeviceGray(0.6))
		page.SetLineWidth(max(scale/10, 0.5))
		page.SetLineCap(graphics.LineCapRound)
		page.SetLineJoin(graphics.LineJoinRound)
		draw(g.Trace)
		page.Stroke()
	}

	page.SetFillColor(color.DeviceGray(0))
	draw(g.Frame)
	draw(g.Center)
	draw(g.Markers)
	page.Fill()

	return page.Close()
}
