// Package format renders Rand amounts for notes and logs.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Rand returns a whole-Rand currency string with thousands separators,
// e.g. "R1,234,567". Amounts are rounded to the nearest Rand; notes never
// show cents.
func Rand(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "R0"
	}
	n := int64(math.Round(amount))
	if n < 0 {
		return "-R" + printer.Sprintf("%d", -n)
	}
	return "R" + printer.Sprintf("%d", n)
}

// RandCents returns a currency string with two decimals, e.g. "R1,234.56".
// Used where cent precision matters, such as diagnostics.
func RandCents(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "R0.00"
	}
	if amount < 0 {
		return "-R" + printer.Sprintf("%.2f", -amount)
	}
	return "R" + printer.Sprintf("%.2f", amount)
}
