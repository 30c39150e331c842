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
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// BenchmarkRasteriserSlice measures filling a three-quarter slice with
// the in-package rasteriser at several ring sizes.
func BenchmarkRasteriserSlice(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{LLx: 0, LLy: 0, URx: float64(size), URy: float64(size)}
			r := NewRasteriser(clip)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			center := float64(size) / 2
			slicePath := BuildSlice(0, 0.75, float64(size)*0.45).Path()

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(clip)
				r.CTM = matrix.Matrix{1, 0, 0, 1, center, center}
				r.FillNonZero(slicePath, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorSlice benchmarks x/image/vector filling the same
// slice outline for comparison.
func BenchmarkVectorSlice(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})

			center := float32(size) / 2
			slicePath := BuildSlice(0, 0.75, float64(size)*0.45).Path()

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				addSliceToVector(r, slicePath, center, center)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// addSliceToVector replays the slice outline into a vector.Rasterizer,
// translated by (cx, cy).
func addSliceToVector(r *vector.Rasterizer, data *path.Data, cx, cy float32) {
	coordIdx := 0
	for _, cmd := range data.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			p := data.Coords[coordIdx]
			coordIdx++
			r.MoveTo(cx+float32(p.X), cy+float32(p.Y))
		case path.CmdLineTo:
			p := data.Coords[coordIdx]
			coordIdx++
			r.LineTo(cx+float32(p.X), cy+float32(p.Y))
		case path.CmdCubeTo:
			p1 := data.Coords[coordIdx]
			p2 := data.Coords[coordIdx+1]
			p3 := data.Coords[coordIdx+2]
			coordIdx += 3
			r.CubeTo(
				cx+float32(p1.X), cy+float32(p1.Y),
				cx+float32(p2.X), cy+float32(p2.Y),
				cx+float32(p3.X), cy+float32(p3.Y))
		case path.CmdClose:
			r.ClosePath()
		}
	}
}

// BenchmarkBuildSlice measures the pure geometry path.
func BenchmarkBuildSlice(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = BuildSlice(0.3, 0.55, 120)
	}
}
