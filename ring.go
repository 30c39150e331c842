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

// Entry pairs a source unit with its assigned interval on the ring.
// Interval assignment (ordering, proportional sizing) is entirely the
// caller's concern; entries for one ring should cover [0, 1].
type Entry struct {
	Source     Source
	Start, End float64
}

// Ring is a fully built ring chart: the drawing area it was laid out
// for and one segment per entry. A Ring is immutable; on a data or
// layout change the owner discards it and builds a new one.
type Ring struct {
	Width, Height float64
	Segments      []*Segment
}

// NewRing builds all segments for the given entries on a ring fitted
// into a width by height drawing area.
func NewRing(width, height float64, cl Classifier, entries []Entry) *Ring {
	ring := &Ring{
		Width:    width,
		Height:   height,
		Segments: make([]*Segment, 0, len(entries)),
	}
	for _, e := range entries {
		seg := NewSegment(e.Source, e.Start, e.End, width, height, cl)
		ring.Segments = append(ring.Segments, seg)
	}
	return ring
}
