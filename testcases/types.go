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

// Package testcases provides shared slice fixtures for the ringchart
// tests and for the genpdf visual reference generator.
package testcases

// TestCase describes one slice of a ring chart: a normalized interval
// and the outer radius of the ring it sits on.
type TestCase struct {
	Name        string // lowercase a-z and _ only
	Start, End  float64
	OuterRadius float64
}

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference file names.
var All = map[string][]TestCase{
	"basic":      basicCases,
	"degenerate": degenerateCases,
	"fullcircle": fullCircleCases,
	"adjacent":   adjacentCases,
}
