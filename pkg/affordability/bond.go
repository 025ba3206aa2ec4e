package affordability

import (
	"math"

	"github.com/Jason-Joannou/Property24-to-Obsidan/pkg/constants"
)

// MonthlyBondPayment calculates the fixed monthly payment that fully
// amortizes the principal over the term using the standard annuity formula.
// The rate is an annual percentage (e.g. 10.75). A non-positive principal
// or term returns 0; a zero rate falls back to straight-line repayment.
func MonthlyBondPayment(principal, annualInterestRate float64, termYears int) float64 {
	if principal <= 0 {
		return 0
	}
	termMonths := termYears * constants.MonthsPerYear
	if termMonths <= 0 {
		return 0
	}

	if annualInterestRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths)
	}

	periodicInterestRate := annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicInterestRate, float64(termMonths))
	discountFactor := (power - 1.00) / power
	return principal * periodicInterestRate / discountFactor
}
