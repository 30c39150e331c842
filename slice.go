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

import "math"

// Geometry constants for slice construction.
const (
	// BandWidth is the thickness of the ring band in user-space units.
	// The inner arc radius is always the outer radius minus BandWidth.
	BandWidth = 10.0

	// SliceMargin is the linear gap inserted between adjacent slices,
	// in user-space units. The margin is converted to an angular offset
	// separately at the inner and outer radius, so the visible gap has
	// the same width at both edges of the band.
	SliceMargin = 2.0

	// fullCircleMargin replaces SliceMargin when a single slice spans
	// the whole circle. A full-width margin would render an artificial
	// seam on a one-category ring.
	fullCircleMargin = 0.01

	// minSpan is the angular span (radians) below which a slice would
	// collapse to an invisible sliver. Slices narrower than this are
	// widened by spanPadding on each side and their margin is reduced
	// by marginTrim.
	minSpan     = 0.03
	spanPadding = 0.005
	marginTrim  = 0.01
)

// BuildSlice converts the normalized interval [start, end) into a closed
// donut-slice path on a ring of the given outer radius, centered at the
// origin. start and end are fractions of a full turn in [0, 1] with
// start <= end; angle zero points up and angles increase clockwise in
// screen coordinates.
//
// The function is total over its domain: degenerate inputs (zero radius,
// near-zero span, a full-circle interval) produce valid, possibly
// visually degenerate paths. Behavior is undefined for end < start or
// values outside [0, 1].
func BuildSlice(start, end, outerRadius float64) SlicePath {
	innerRadius := outerRadius - BandWidth

	startAngle := 2*math.Pi*start - math.Pi/2
	endAngle := 2*math.Pi*end - math.Pi/2

	// Raw span decides the large-arc flag; margin and padding below
	// must not change which way around the arc is drawn.
	largeArc := endAngle-startAngle > math.Pi

	margin := SliceMargin
	if end-start == 1.0 {
		margin = fullCircleMargin
	}

	if endAngle-startAngle < minSpan {
		startAngle -= spanPadding
		endAngle += spanPadding
		margin -= marginTrim
	}

	// margin / (2*pi*r) of a full turn, expressed in radians.
	outerOffset := angularOffset(margin, outerRadius)
	innerOffset := angularOffset(margin, innerRadius)

	return SlicePath{
		OuterRadius: outerRadius,
		InnerRadius: innerRadius,
		LargeArc:    largeArc,

		outerStartAngle: startAngle + outerOffset,
		outerEndAngle:   endAngle - outerOffset,
		innerStartAngle: startAngle + innerOffset,
		innerEndAngle:   endAngle - innerOffset,

		margin: margin,
	}
}

// angularOffset converts a linear margin at the given radius into an
// angular offset in radians. A zero radius yields a zero offset.
func angularOffset(margin, radius float64) float64 {
	if radius == 0 {
		return 0
	}
	return margin / radius
}
