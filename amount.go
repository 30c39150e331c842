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
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// amountPrinter formats display amounts. Locale-aware formatting of the
// surrounding UI is out of scope here; the chart itself always uses a
// fixed locale so that segment labels are stable.
var amountPrinter = message.NewPrinter(language.English)

// formatAmount renders an amount with up to eight fraction digits and
// no trailing zeros, e.g. "0.0015" or "1,204.5".
func formatAmount(v float64) string {
	return amountPrinter.Sprintf("%v",
		number.Decimal(v, number.MaxFractionDigits(8)))
}
