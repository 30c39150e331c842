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

import "testing"

// testCoin is a minimal value unit for tests: an amount plus an
// anonymity score that the test classifier thresholds on.
type testCoin struct {
	amount float64
	conf   int
	score  float64
}

func (c testCoin) Amount() float64    { return c.amount }
func (c testCoin) Confirmed() bool    { return c.conf > 0 }
func (c testCoin) Confirmations() int { return c.conf }

// scoreClassifier marks items private at or above Full and semi-private
// at or above Semi.
type scoreClassifier struct {
	Full, Semi float64
}

func (cl scoreClassifier) IsPrivate(it Item) bool {
	return it.(testCoin).score >= cl.Full
}

func (cl scoreClassifier) IsSemiPrivate(it Item) bool {
	return it.(testCoin).score >= cl.Semi
}

var testClassifier = scoreClassifier{Full: 50, Semi: 5}

func TestClassifySingle(t *testing.T) {
	cases := []struct {
		score float64
		want  Privacy
	}{
		{100, PrivacyFull},
		{50, PrivacyFull},
		{49, PrivacySemi},
		{5, PrivacySemi},
		{4, PrivacyNone},
		{0, PrivacyNone},
	}
	for _, c := range cases {
		coin := testCoin{amount: 1, score: c.score}
		seg := NewSegment(Single(coin), 0, 0.5, 200, 200, testClassifier)
		if seg.Privacy != c.want {
			t.Errorf("score %g: privacy = %d, want %d", c.score, seg.Privacy, c.want)
		}
	}
}

func TestAggregateLaw(t *testing.T) {
	cases := []struct {
		name   string
		scores []float64
		want   Privacy
	}{
		{"all_private", []float64{60, 70, 100}, PrivacyFull},
		{"one_semi", []float64{60, 70, 10}, PrivacySemi},
		{"all_semi", []float64{10, 20, 30}, PrivacySemi},
		{"one_public", []float64{60, 70, 1}, PrivacyNone},
		{"all_public", []float64{1, 2}, PrivacyNone},
		{"single_private", []float64{60}, PrivacyFull},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var items []Item
			for _, s := range c.scores {
				items = append(items, testCoin{amount: 1, score: s})
			}
			seg := NewSegment(Aggregate(items), 0, 0.5, 200, 200, testClassifier)
			if seg.Privacy != c.want {
				t.Errorf("privacy = %d, want %d", seg.Privacy, c.want)
			}
		})
	}
}

func TestSegmentFlags(t *testing.T) {
	coin := testCoin{amount: 1, score: 60}
	seg := NewSegment(Single(coin), 0, 0.5, 200, 200, testClassifier)

	// exactly one tier flag is true
	n := 0
	for _, flag := range []bool{seg.FullyPrivate(), seg.PartiallyPrivate(), seg.NonPrivate()} {
		if flag {
			n++
		}
	}
	if n != 1 {
		t.Errorf("%d tier flags set, want exactly 1", n)
	}
	if !seg.FullyPrivate() {
		t.Error("fully private flag not set")
	}
}

func TestNewSegmentSingle(t *testing.T) {
	coin := testCoin{amount: 0.5, conf: 3, score: 60}
	seg := NewSegment(Single(coin), 0, 0.25, 300, 200, testClassifier)

	if seg.OuterRadius != 100 {
		t.Errorf("outer radius = %g, want 100 (half the smaller dimension)", seg.OuterRadius)
	}
	if seg.Amount != "0.5" {
		t.Errorf("amount = %q, want %q", seg.Amount, "0.5")
	}
	if !seg.Confirmed || seg.Confirmations != 3 {
		t.Errorf("confirmation state (%t, %d), want (true, 3)", seg.Confirmed, seg.Confirmations)
	}
	if seg.Path.OuterRadius != 100 || seg.Path.InnerRadius != 90 {
		t.Errorf("path radii (%g, %g)", seg.Path.OuterRadius, seg.Path.InnerRadius)
	}
}

func TestNewSegmentAggregate(t *testing.T) {
	items := []Item{
		testCoin{amount: 0.1, conf: 0, score: 60},
		testCoin{amount: 0.2, conf: 7, score: 80},
	}
	seg := NewSegment(Aggregate(items), 0, 1, 200, 200, testClassifier)

	// binary rounding noise in the sum must not leak into the label
	if seg.Amount != "0.3" {
		t.Errorf("amount = %q, want %q", seg.Amount, "0.3")
	}

	// pockets do not track confirmation
	if !seg.Confirmed || seg.Confirmations != 0 {
		t.Errorf("confirmation state (%t, %d), want (true, 0)", seg.Confirmed, seg.Confirmations)
	}
}

func TestNewRing(t *testing.T) {
	entries := []Entry{
		{Source: Single(testCoin{amount: 1, score: 60}), Start: 0, End: 0.6},
		{Source: Single(testCoin{amount: 0.5, score: 10}), Start: 0.6, End: 0.9},
		{Source: Single(testCoin{amount: 0.25, score: 1}), Start: 0.9, End: 1},
	}
	ring := NewRing(120, 100, testClassifier, entries)

	if len(ring.Segments) != 3 {
		t.Fatalf("got %d segments, want 3", len(ring.Segments))
	}
	for i, seg := range ring.Segments {
		if seg.OuterRadius != 50 {
			t.Errorf("segment %d: outer radius = %g, want 50", i, seg.OuterRadius)
		}
	}

	want := []Privacy{PrivacyFull, PrivacySemi, PrivacyNone}
	for i, seg := range ring.Segments {
		if seg.Privacy != want[i] {
			t.Errorf("segment %d: privacy = %d, want %d", i, seg.Privacy, want[i])
		}
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0.5, "0.5"},
		{0.00015, "0.00015"},
		{2, "2"},
		{0.1 + 0.2, "0.3"}, // capped at 8 fraction digits
	}
	for _, c := range cases {
		if got := formatAmount(c.in); got != c.want {
			t.Errorf("formatAmount(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
