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
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// Palette maps privacy tiers to fill colors.
type Palette struct {
	Full color.NRGBA
	Semi color.NRGBA
	None color.NRGBA
}

// DefaultPalette is the palette used by NewRenderer: green for fully
// private, yellow for semi-private, red for non-private funds.
var DefaultPalette = Palette{
	Full: color.NRGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff},
	Semi: color.NRGBA{R: 0xfb, G: 0xc0, B: 0x2d, A: 0xff},
	None: color.NRGBA{R: 0xe5, G: 0x39, B: 0x35, A: 0xff},
}

// Color returns the fill color for the given tier.
func (p Palette) Color(tier Privacy) color.NRGBA {
	switch tier {
	case PrivacyFull:
		return p.Full
	case PrivacySemi:
		return p.Semi
	default:
		return p.None
	}
}

// Renderer draws rings into RGBA images. One Renderer can be reused
// for any number of rings; it is not safe for concurrent use.
type Renderer struct {
	// Palette selects the per-tier fill colors.
	Palette Palette

	// Labels enables drawing each segment's amount next to the band.
	Labels bool

	rast *Rasteriser
}

// NewRenderer creates a Renderer with the default palette and labels
// disabled.
func NewRenderer() *Renderer {
	return &Renderer{
		Palette: DefaultPalette,
		rast:    NewRasteriser(rect.Rect{}),
	}
}

// Draw rasterises all segments of the ring into img. The ring is
// centered in the image bounds; pixels outside the band keep their
// previous color.
func (rd *Renderer) Draw(img *image.RGBA, ring *Ring) {
	bounds := img.Bounds()
	clip := rect.Rect{
		LLx: float64(bounds.Min.X),
		LLy: float64(bounds.Min.Y),
		URx: float64(bounds.Max.X),
		URy: float64(bounds.Max.Y),
	}
	rd.rast.Reset(clip)

	// Slice paths are centered at the origin; move the origin to the
	// image center.
	cx := float64(bounds.Min.X+bounds.Max.X) / 2
	cy := float64(bounds.Min.Y+bounds.Max.Y) / 2
	rd.rast.CTM = matrix.Matrix{1, 0, 0, 1, cx, cy}

	for _, seg := range ring.Segments {
		c := rd.Palette.Color(seg.Privacy)
		rd.rast.FillNonZero(seg.Path.Path(), func(y, xMin int, coverage []float32) {
			for i, cov := range coverage {
				blendPixel(img, xMin+i, y, c, cov)
			}
		})
	}

	if rd.Labels {
		rd.drawLabels(img, ring, cx, cy)
	}
}

// Image renders the ring into a freshly allocated image of the given
// pixel size with a transparent background.
func (rd *Renderer) Image(ring *Ring, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rd.Draw(img, ring)
	return img
}

// EncodePNG renders the ring at the given pixel size and writes it as
// a PNG image.
func (rd *Renderer) EncodePNG(w io.Writer, ring *Ring, width, height int) error {
	return png.Encode(w, rd.Image(ring, width, height))
}

// drawLabels draws each segment's amount at the midpoint of its band.
// Labels for slivers overlap their neighbours; callers wanting better
// placement can draw their own labels from the segment data.
func (rd *Renderer) drawLabels(img *image.RGBA, ring *Ring, cx, cy float64) {
	face := basicfont.Face7x13
	for _, seg := range ring.Segments {
		p := seg.Path
		midAngle := (p.outerStartAngle + p.outerEndAngle) / 2
		midRadius := (p.OuterRadius + p.InnerRadius) / 2
		pos := polar(midRadius, midAngle)

		w := font.MeasureString(face, seg.Amount).Ceil()
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.NRGBA{A: 0xff}),
			Face: face,
			Dot:  fixed.P(int(cx+pos.X)-w/2, int(cy+pos.Y)),
		}
		d.DrawString(seg.Amount)
	}
}

// blendPixel composites the color c over img at (x, y) with the given
// coverage as alpha.
func blendPixel(img *image.RGBA, x, y int, c color.NRGBA, cov float32) {
	if cov <= 0 {
		return
	}
	if cov > 1 {
		cov = 1
	}

	a := uint32(float32(c.A) * cov)
	if a == 0 {
		return
	}

	i := img.PixOffset(x, y)
	s := img.Pix[i : i+4 : i+4]

	// Source-over with 8-bit arithmetic
	inv := 255 - a
	s[0] = uint8((uint32(c.R)*a + uint32(s[0])*inv) / 255)
	s[1] = uint8((uint32(c.G)*a + uint32(s[1])*inv) / 255)
	s[2] = uint8((uint32(c.B)*a + uint32(s[2])*inv) / 255)
	s[3] = uint8(a + uint32(s[3])*inv/255)
}
