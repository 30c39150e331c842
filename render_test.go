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
	"bytes"
	"image"
	"image/png"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// rectPath builds an axis-aligned rectangle path.
func rectPath(x0, y0, x1, y1 float64) *path.Data {
	return &path.Data{
		Cmds: []path.Command{
			path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose,
		},
		Coords: []vec.Vec2{
			{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
		},
	}
}

// TestFillRectangle rasterises a pixel-aligned rectangle with both
// approaches and checks for exact interior and exterior coverage.
func TestFillRectangle(t *testing.T) {
	approaches := []struct {
		name      string
		threshold int
	}{
		{"A", 1 << 30}, // very large threshold forces Approach A
		{"B", 0},       // zero threshold forces Approach B
	}

	for _, approach := range approaches {
		t.Run(approach.name, func(t *testing.T) {
			clip := rect.Rect{LLx: 0, LLy: 0, URx: 32, URy: 32}
			r := NewRasteriser(clip)
			r.smallPathThreshold = approach.threshold

			buf := make([]byte, 32*32)
			r.FillNonZero(rectPath(8, 8, 24, 24), func(y, xMin int, coverage []float32) {
				row := buf[y*32:]
				for i, c := range coverage {
					row[xMin+i] = byte(max(0, min(255, int(c*256))))
				}
			})

			// interior pixels are fully covered, exterior untouched
			for _, p := range []struct{ x, y, want int }{
				{16, 16, 255},
				{8, 8, 255},
				{23, 23, 255},
				{7, 16, 0},
				{24, 16, 0},
				{16, 7, 0},
				{16, 24, 0},
				{0, 0, 0},
			} {
				if got := int(buf[p.y*32+p.x]); got != p.want {
					t.Errorf("pixel (%d, %d) = %d, want %d", p.x, p.y, got, p.want)
				}
			}
		})
	}
}

// TestFillSliceCoverage rasterises a half-circle slice and checks that
// coverage appears inside the band and nowhere else.
func TestFillSliceCoverage(t *testing.T) {
	const size = 128
	clip := rect.Rect{LLx: 0, LLy: 0, URx: size, URy: size}
	r := NewRasteriser(clip)
	r.CTM = matrix.Matrix{1, 0, 0, 1, size / 2, size / 2}

	// bottom half of the circle
	s := BuildSlice(0.25, 0.75, 60)

	buf := make([]float32, size*size)
	r.FillNonZero(s.Path(), func(y, xMin int, coverage []float32) {
		copy(buf[y*size+xMin:], coverage)
	})

	for _, p := range []struct {
		x, y int
		want bool
	}{
		{size / 2, size/2 + 55, true},  // band center, bottom
		{size / 2, size/2 - 55, false}, // top half is outside the slice
		{size / 2, size / 2, false},    // hole of the donut
		{size / 2, size/2 + 30, false}, // inside the hole, below center
		{2, 2, false},
	} {
		cov := buf[p.y*size+p.x]
		if p.want && cov < 0.99 {
			t.Errorf("pixel (%d, %d): coverage %g, want full", p.x, p.y, cov)
		}
		if !p.want && cov > 0.01 {
			t.Errorf("pixel (%d, %d): coverage %g, want none", p.x, p.y, cov)
		}
	}
}

func TestDrawRing(t *testing.T) {
	const size = 120
	items := []Item{testCoin{amount: 1, conf: 1, score: 60}}
	ring := NewRing(size, size, testClassifier, []Entry{
		{Source: Aggregate(items), Start: 0, End: 1},
	})

	rd := NewRenderer()
	img := rd.Image(ring, size, size)

	// band pixel at the bottom of the ring, far from the seam at the top
	c := img.RGBAAt(size/2, size-5)
	want := DefaultPalette.Full
	if !closeTo(c.R, want.R, 3) || !closeTo(c.G, want.G, 3) || !closeTo(c.B, want.B, 3) {
		t.Errorf("band pixel = %v, want close to %v", c, want)
	}
	if c.A < 250 {
		t.Errorf("band pixel alpha = %d, want opaque", c.A)
	}

	// the hole and the outside stay transparent
	if a := img.RGBAAt(size/2, size/2).A; a != 0 {
		t.Errorf("center pixel alpha = %d, want 0", a)
	}
	if a := img.RGBAAt(2, 2).A; a != 0 {
		t.Errorf("corner pixel alpha = %d, want 0", a)
	}
}

func TestDrawRingLabels(t *testing.T) {
	const size = 200
	ring := NewRing(size, size, testClassifier, []Entry{
		{Source: Single(testCoin{amount: 1, conf: 1, score: 60}), Start: 0, End: 1},
	})

	rd := NewRenderer()
	plain := rd.Image(ring, size, size)
	rd.Labels = true
	labeled := rd.Image(ring, size, size)

	if bytes.Equal(plain.Pix, labeled.Pix) {
		t.Error("enabling labels did not change the image")
	}
}

func TestEncodePNG(t *testing.T) {
	ring := NewRing(64, 64, testClassifier, []Entry{
		{Source: Single(testCoin{amount: 1, conf: 1, score: 60}), Start: 0, End: 0.5},
		{Source: Single(testCoin{amount: 1, conf: 1, score: 1}), Start: 0.5, End: 1},
	})

	var buf bytes.Buffer
	rd := NewRenderer()
	if err := rd.EncodePNG(&buf, ring, 64, 64); err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 64, 64) {
		t.Errorf("bounds = %v", got)
	}
}

func closeTo(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d <= tol
}
