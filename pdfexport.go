// seehuhn.de/go/ringchart - geometry and rendering for ring charts
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

package ringchart

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

// WritePDF writes the ring as a single-page PDF file. The page size is
// the ring's layout size in points, with the ring centered on the page.
// The palette selects per-tier fill colors.
func WritePDF(fname string, ring *Ring, palette Palette) error {
	paper := &pdf.Rectangle{
		URx: ring.Width,
		URy: ring.Height,
	}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("creating %q: %w", fname, err)
	}

	// PDF origin is bottom-left with y up; slice geometry is y-down.
	// Flip the y axis and move the origin to the page center.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, ring.Height})
	page.Transform(matrix.Matrix{1, 0, 0, 1, ring.Width / 2, ring.Height / 2})

	for _, seg := range ring.Segments {
		c := palette.Color(seg.Privacy)
		page.SetFillColor(color.DeviceRGB{
			float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255})

		for cmd, pts := range seg.Path.Path().Iter().ToCubic() {
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
		page.Fill()
	}

	if err := page.Close(); err != nil {
		return fmt.Errorf("writing %q: %w", fname, err)
	}
	return nil
}
