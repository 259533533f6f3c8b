// Package money formats decimal amounts for labels and summaries.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Group renders d rounded to places with thousands separators, e.g. "1,234.50".
// Only the integer part goes through the printer; the fraction is taken from
// the decimal itself.
func Group(d decimal.Decimal, places int32) string {
	rounded := d.Round(places)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	out := sign + printer.Sprintf("%d", rounded.IntPart())
	if places > 0 {
		fixed := rounded.StringFixed(places)
		out += fixed[strings.IndexByte(fixed, '.'):]
	}
	return out
}

// Dollars renders a whole-dollar label amount, e.g. "$6,000".
func Dollars(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + Group(d.Abs(), 0)
	}
	return "$" + Group(d, 0)
}

// USD renders d with cents and a currency suffix. Negative values are shown
// in parentheses, e.g. "(12.50) USD".
func USD(d decimal.Decimal) string {
	if d.IsNegative() {
		return "(" + Group(d.Abs(), 2) + ") USD"
	}
	return Group(d, 2) + " USD"
}
