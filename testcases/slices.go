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

package testcases

var basicCases = []TestCase{
	{Name: "quarter", Start: 0, End: 0.25, OuterRadius: 100},
	{Name: "half", Start: 0.25, End: 0.75, OuterRadius: 100},
	{Name: "majority", Start: 0, End: 0.7, OuterRadius: 100},
	{Name: "offset_third", Start: 0.4, End: 0.7333, OuterRadius: 80},
	{Name: "small_ring", Start: 0.1, End: 0.35, OuterRadius: 20},
}

var degenerateCases = []TestCase{
	// spans below the 0.03 rad compensation threshold
	{Name: "sliver", Start: 0.499, End: 0.5, OuterRadius: 100},
	{Name: "empty_span", Start: 0.5, End: 0.5, OuterRadius: 100},
	{Name: "zero_radius", Start: 0, End: 0.25, OuterRadius: 0},
	{Name: "radius_below_band", Start: 0, End: 0.5, OuterRadius: 6},
}

var fullCircleCases = []TestCase{
	{Name: "full", Start: 0, End: 1, OuterRadius: 50},
	{Name: "full_large", Start: 0, End: 1, OuterRadius: 200},
}

// adjacentCases come in consecutive pairs; renderers draw each pair on
// one ring to check the gap between neighbours, including the pair
// whose shared endpoint sits on the 0/1 seam.
var adjacentCases = []TestCase{
	{Name: "pair_a", Start: 0, End: 0.3, OuterRadius: 100},
	{Name: "pair_b", Start: 0.3, End: 0.7, OuterRadius: 100},
	{Name: "seam_a", Start: 0.9, End: 1, OuterRadius: 100},
	{Name: "seam_b", Start: 0, End: 0.1, OuterRadius: 100},
}
