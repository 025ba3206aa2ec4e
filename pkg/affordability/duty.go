// Package affordability implements South African home-purchase cost
// estimation: tiered transfer duty, amortized bond payments, and once-off
// and monthly cost breakdowns.
package affordability

import (
	"github.com/Jason-Joannou/Property24-to-Obsidan/pkg/mathutil"
	"github.com/Jason-Joannou/Property24-to-Obsidan/pkg/numeric"
)

// Bracket is one tier of the progressive transfer duty table. Duty for a
// price falling in this tier is Base plus Rate percent of the excess over
// Over. UpTo is the inclusive upper bound of the tier; zero marks the
// open-ended top tier.
type Bracket struct {
	UpTo float64 `mapstructure:"upTo" yaml:"upTo"`
	Base float64 `mapstructure:"base" yaml:"base"`
	Rate float64 `mapstructure:"rate" yaml:"rate"`
	Over float64 `mapstructure:"over" yaml:"over"`
}

// BracketTable is an ordered set of transfer duty tiers. Tiers must be
// sorted by ascending UpTo with the open-ended tier last.
type BracketTable []Bracket

// DefaultBracketTable returns the SARS transfer duty table for the
// 2025/2026 tax year. Rates are percentages of the excess over each tier's
// lower threshold.
func DefaultBracketTable() BracketTable {
	return BracketTable{
		{UpTo: 1210000, Base: 0, Rate: 0, Over: 0},
		{UpTo: 1663800, Base: 0, Rate: 3.0, Over: 1210000},
		{UpTo: 2329300, Base: 13614, Rate: 6.0, Over: 1663800},
		{UpTo: 2994800, Base: 53544, Rate: 8.0, Over: 2329300},
		{UpTo: 13310000, Base: 106784, Rate: 11.0, Over: 2994800},
		{UpTo: 0, Base: 1241456, Rate: 13.0, Over: 13310000},
	}
}

// TransferDuty calculates the transfer duty owed on a purchase price under
// the given bracket table. The first tier whose upper bound covers the
// price wins; tiers are mutually exclusive so no duty is double-counted.
// A non-positive price returns 0.
func TransferDuty(table BracketTable, price float64) float64 {
	if price <= 0 {
		return 0
	}
	for _, b := range table {
		if b.UpTo == 0 || price <= b.UpTo {
			return b.Base + mathutil.ApplyPercentage(price-b.Over, b.Rate)
		}
	}
	return 0
}

// TransferDutyValue is a convenience wrapper that accepts the price in any
// of the scraped representations (number, currency string, nil).
// Unparseable input yields 0.
func TransferDutyValue(table BracketTable, price any) float64 {
	return TransferDuty(table, numeric.Amount(price))
}
