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

// Package ringchart computes and renders radial "ring" charts whose
// segments represent categorized units of value, for example wallet
// funds grouped by privacy tier. Each segment occupies an angular span
// proportional to its share of the whole; BuildSlice converts such a
// span into a closed two-arc donut-slice outline, and Renderer and
// WritePDF turn a full ring into pixels or a PDF page.
//
// Which unit gets which span is the caller's decision; this package
// only converts already-assigned intervals into geometry.
package ringchart

//go:generate go run ./testcases/genpdf
