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

// Command genpdf generates visual reference PDFs for the slice
// fixtures. Adjacent fixtures are drawn in pairs on a shared page so
// the inter-slice gap can be inspected.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/ringchart"
	"seehuhn.de/go/ringchart/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases := testcases.All[category]

		if category == "adjacent" {
			// draw each consecutive pair on one page
			for i := 0; i+1 < len(cases); i += 2 {
				name := category + "_" + cases[i].Name + "_" + cases[i+1].Name
				ring := makeRing(cases[i], cases[i+1])
				writeRing(name, ring)
			}
			continue
		}

		for _, tc := range cases {
			ring := makeRing(tc)
			writeRing(category+"_"+tc.Name, ring)
		}
	}
}

// makeRing places the fixture slices on a page large enough for the
// ring, cycling the privacy tier so neighbours get different colors.
func makeRing(cases ...testcases.TestCase) *ringchart.Ring {
	size := 2*cases[0].OuterRadius + 20
	if size < 64 {
		size = 64
	}

	ring := &ringchart.Ring{Width: size, Height: size}
	tiers := []ringchart.Privacy{
		ringchart.PrivacyFull, ringchart.PrivacySemi, ringchart.PrivacyNone,
	}
	for i, tc := range cases {
		ring.Segments = append(ring.Segments, &ringchart.Segment{
			Path:        ringchart.BuildSlice(tc.Start, tc.End, tc.OuterRadius),
			OuterRadius: tc.OuterRadius,
			Privacy:     tiers[i%len(tiers)],
		})
	}
	return ring
}

func writeRing(name string, ring *ringchart.Ring) {
	fname := filepath.Join(refDir, name+".pdf")
	if err := ringchart.WritePDF(fname, ring, ringchart.DefaultPalette); err != nil {
		panic(fmt.Errorf("%s: %w", name, err))
	}
}
