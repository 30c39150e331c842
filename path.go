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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// SlicePath is the closed outline of one donut slice, centered at the
// origin: an arc along the outer edge, a straight line to the inner
// edge, an arc back along the inner edge, and an implicit closing line.
// The path always consists of exactly one closed figure with two arcs
// and one line.
//
// A SlicePath is an immutable value; all methods are read-only.
type SlicePath struct {
	// OuterRadius is the radius of the outer arc.
	OuterRadius float64

	// InnerRadius is OuterRadius - BandWidth. It may be negative when
	// the outer radius is smaller than the band width; keeping the
	// outer radius large enough is a layout responsibility.
	InnerRadius float64

	// LargeArc reports whether the arcs cover more than half a turn.
	// Arc-drawing primitives need this to pick the correct one of the
	// two arcs through a pair of endpoints.
	LargeArc bool

	// Arc endpoint angles in radians, after margin and small-span
	// adjustments. Angle zero points up, angles increase clockwise.
	outerStartAngle float64
	outerEndAngle   float64
	innerStartAngle float64
	innerEndAngle   float64

	// margin is the effective linear margin used for this slice.
	margin float64
}

// Corner points of the slice, in path order.

// OuterStart returns the first point of the path, on the outer edge.
func (s SlicePath) OuterStart() vec.Vec2 {
	return polar(s.OuterRadius, s.outerStartAngle)
}

// OuterEnd returns the end point of the outer arc.
func (s SlicePath) OuterEnd() vec.Vec2 {
	return polar(s.OuterRadius, s.outerEndAngle)
}

// InnerEnd returns the point where the straight edge meets the inner arc.
func (s SlicePath) InnerEnd() vec.Vec2 {
	return polar(s.InnerRadius, s.innerEndAngle)
}

// InnerStart returns the end point of the inner arc, from which the
// path closes back to OuterStart.
func (s SlicePath) InnerStart() vec.Vec2 {
	return polar(s.InnerRadius, s.innerStartAngle)
}

// Op identifies a path command.
type Op int

const (
	OpMoveTo Op = iota
	OpArcTo
	OpLineTo
	OpClose
)

// Command is one drawing instruction of a slice outline. For OpArcTo
// the arc runs from the current point to To on a circle of the given
// Radius; LargeArc and Clockwise select which of the four candidate
// arcs to draw (SVG endpoint parameterization).
type Command struct {
	Op        Op
	To        vec.Vec2
	Radius    float64
	LargeArc  bool
	Clockwise bool
}

// Commands returns the move/arc/line/arc/close sequence of the slice.
// Consumers with native arc primitives can replay this directly.
func (s SlicePath) Commands() []Command {
	return []Command{
		{Op: OpMoveTo, To: s.OuterStart()},
		{Op: OpArcTo, To: s.OuterEnd(), Radius: s.OuterRadius, LargeArc: s.LargeArc, Clockwise: true},
		{Op: OpLineTo, To: s.InnerEnd()},
		{Op: OpArcTo, To: s.InnerStart(), Radius: s.InnerRadius, LargeArc: s.LargeArc, Clockwise: false},
		{Op: OpClose},
	}
}

// Path converts the slice outline to path data for consumers without
// arc primitives, approximating each arc by cubic Bézier segments.
func (s SlicePath) Path() *path.Data {
	data := &path.Data{}

	data.Cmds = append(data.Cmds, path.CmdMoveTo)
	data.Coords = append(data.Coords, s.OuterStart())

	appendArc(data, s.OuterRadius, s.outerStartAngle, s.outerEndAngle)

	data.Cmds = append(data.Cmds, path.CmdLineTo)
	data.Coords = append(data.Coords, s.InnerEnd())

	appendArc(data, s.InnerRadius, s.innerEndAngle, s.innerStartAngle)

	data.Cmds = append(data.Cmds, path.CmdClose)

	return data
}

// polar converts a radius/angle pair to Cartesian coordinates.
func polar(radius, angle float64) vec.Vec2 {
	sin, cos := math.Sincos(angle)
	return vec.Vec2{X: radius * cos, Y: radius * sin}
}

// appendArc appends cubic Bézier segments approximating a circular arc
// from angle a0 to a1 (either direction) at the given radius, centered
// at the origin. The current point must already be at polar(radius, a0).
//
// Each cubic covers at most a quarter turn; the control arm length
// 4/3*tan(sweep/4) makes the curve pass through the arc midpoint.
func appendArc(data *path.Data, radius, a0, a1 float64) {
	sweep := a1 - a0
	if sweep == 0 {
		return
	}

	n := max(int(math.Ceil(math.Abs(sweep)/(math.Pi/2))), 1)
	step := sweep / float64(n)
	arm := math.Copysign(4.0/3.0*math.Tan(math.Abs(step)/4), step)

	for i := range n {
		t0 := a0 + float64(i)*step
		t1 := t0 + step

		p0 := polar(radius, t0)
		p3 := polar(radius, t1)
		p1 := p0.Add(polar(radius, t0+math.Pi/2).Mul(arm))
		p2 := p3.Sub(polar(radius, t1+math.Pi/2).Mul(arm))

		data.Cmds = append(data.Cmds, path.CmdCubeTo)
		data.Coords = append(data.Coords, p1, p2, p3)
	}
}
