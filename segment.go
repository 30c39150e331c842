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

// Item is a single value-bearing unit displayed on the ring, for
// example one coin of a wallet. The chart reads the amount, the
// confirmation state and the confirmation count; everything else about
// the unit stays with the caller.
type Item interface {
	Amount() float64
	Confirmed() bool
	Confirmations() int
}

// Classifier decides the privacy tier of an item. The two predicates
// belong to the caller's domain model (for example an anonymity-score
// threshold); the chart only consumes their results.
//
// IsSemiPrivate must be true for every item for which IsPrivate is
// true ("at least semi-private").
type Classifier interface {
	IsPrivate(Item) bool
	IsSemiPrivate(Item) bool
}

// Privacy is the privacy tier of a segment. Exactly one tier applies
// to each segment.
type Privacy int

const (
	// PrivacyNone marks a segment with at least one non-private item.
	PrivacyNone Privacy = iota

	// PrivacySemi marks a segment whose items are all at least
	// semi-private, but not all fully private.
	PrivacySemi

	// PrivacyFull marks a segment whose items are all fully private.
	PrivacyFull
)

// Source is the unit a segment is built from: either a single item or
// an aggregate "pocket" of items sharing one visual segment. Use
// Single or Aggregate to construct one.
type Source struct {
	item  Item
	items []Item
	multi bool
}

// Single returns a Source for one item's own segment.
func Single(item Item) Source {
	return Source{item: item}
}

// Aggregate returns a Source for a pocket of items sharing a segment.
func Aggregate(items []Item) Source {
	return Source{items: items, multi: true}
}

// Segment is one immutable slice of a ring chart: the slice outline
// plus the display attributes derived from its source unit. Segments
// are built once per layout pass and never mutated; a resize or data
// change rebuilds the whole segment list.
type Segment struct {
	// Path is the slice outline, centered at the ring's center.
	Path SlicePath

	// OuterRadius is the radius the path was built with, kept for
	// consumers that lay out decorations relative to the ring.
	OuterRadius float64

	// Privacy is the segment's tier, from the injected Classifier.
	Privacy Privacy

	// Amount is the formatted display amount: the item's amount for a
	// single-item segment, the sum for a pocket.
	Amount string

	// Confirmed reports the item's confirmation state. Pockets do not
	// track confirmation and always report true.
	Confirmed bool

	// Confirmations is the item's confirmation count, 0 for pockets.
	Confirmations int
}

// NewSegment builds the segment for one source unit occupying the
// normalized interval [start, end) on a ring fitted into a width by
// height drawing area. The outer radius is half the smaller dimension.
//
// The caller is responsible for the interval contract of BuildSlice:
// 0 <= start <= end <= 1.
func NewSegment(src Source, start, end, width, height float64, cl Classifier) *Segment {
	outerRadius := min(height/2, width/2)

	seg := &Segment{
		Path:        BuildSlice(start, end, outerRadius),
		OuterRadius: outerRadius,
	}

	if src.multi {
		seg.Privacy = classifyPocket(src.items, cl)
		var sum float64
		for _, it := range src.items {
			sum += it.Amount()
		}
		seg.Amount = formatAmount(sum)
		seg.Confirmed = true
	} else {
		seg.Privacy = classifyItem(src.item, cl)
		seg.Amount = formatAmount(src.item.Amount())
		seg.Confirmed = src.item.Confirmed()
		seg.Confirmations = src.item.Confirmations()
	}

	return seg
}

// FullyPrivate reports whether the segment is in the fully private tier.
func (s *Segment) FullyPrivate() bool { return s.Privacy == PrivacyFull }

// PartiallyPrivate reports whether the segment is in the semi-private tier.
func (s *Segment) PartiallyPrivate() bool { return s.Privacy == PrivacySemi }

// NonPrivate reports whether the segment is in the non-private tier.
func (s *Segment) NonPrivate() bool { return s.Privacy == PrivacyNone }

func classifyItem(it Item, cl Classifier) Privacy {
	switch {
	case cl.IsPrivate(it):
		return PrivacyFull
	case cl.IsSemiPrivate(it):
		return PrivacySemi
	default:
		return PrivacyNone
	}
}

// classifyPocket applies the aggregate law: fully private only if every
// item is fully private; semi-private only if every item is at least
// semi-private; otherwise non-private.
func classifyPocket(items []Item, cl Classifier) Privacy {
	allPrivate := true
	allSemi := true
	for _, it := range items {
		if !cl.IsPrivate(it) {
			allPrivate = false
		}
		if !cl.IsSemiPrivate(it) && !cl.IsPrivate(it) {
			allSemi = false
		}
	}
	switch {
	case allPrivate:
		return PrivacyFull
	case allSemi:
		return PrivacySemi
	default:
		return PrivacyNone
	}
}
