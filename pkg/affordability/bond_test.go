package affordability

import (
	"math"
	"testing"
)

func TestMonthlyBondPayment(t *testing.T) {
	tests := []struct {
		name          string
		principal     float64
		rate          float64
		termYears     int
		expectedRange []float64 // [min, max] expected range
	}{
		{
			name:          "Typical bond at the default rate",
			principal:     900000,
			rate:          10.75,
			termYears:     20,
			expectedRange: []float64{9136, 9138}, // Around R9,137
		},
		{
			name:          "Larger bond at the default rate",
			principal:     1350000,
			rate:          10.75,
			termYears:     20,
			expectedRange: []float64{13700, 13711}, // Around R13,706
		},
		{
			name:          "Lower rate",
			principal:     900000,
			rate:          7.0,
			termYears:     20,
			expectedRange: []float64{6970, 6990}, // Around R6,978
		},
		{
			name:          "Shorter term",
			principal:     900000,
			rate:          10.75,
			termYears:     10,
			expectedRange: []float64{12250, 12310}, // Around R12,276
		},
		{
			name:          "Zero principal",
			principal:     0,
			rate:          10.75,
			termYears:     20,
			expectedRange: []float64{0, 0},
		},
		{
			name:          "Negative principal",
			principal:     -100000,
			rate:          10.75,
			termYears:     20,
			expectedRange: []float64{0, 0},
		},
		{
			name:          "Zero term",
			principal:     900000,
			rate:          10.75,
			termYears:     0,
			expectedRange: []float64{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MonthlyBondPayment(tt.principal, tt.rate, tt.termYears)

			if result < tt.expectedRange[0] || result > tt.expectedRange[1] {
				t.Errorf("MonthlyBondPayment() = %.2f, expected range [%.2f, %.2f]",
					result, tt.expectedRange[0], tt.expectedRange[1])
			}
		})
	}
}

func TestMonthlyBondPaymentZeroRate(t *testing.T) {
	// With no interest the payment is exactly straight-line.
	got := MonthlyBondPayment(900000, 0, 20)
	want := 900000.0 / 240.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("MonthlyBondPayment(900000, 0, 20) = %v, expected exactly %v", got, want)
	}
}

func TestMonthlyBondPaymentMonotonicInPrincipal(t *testing.T) {
	previous := 0.0
	for principal := 100000.0; principal <= 5000000; principal += 100000 {
		payment := MonthlyBondPayment(principal, 10.75, 20)
		if payment <= previous {
			t.Fatalf("payment not monotonically increasing: %.2f at principal %.0f after %.2f",
				payment, principal, previous)
		}
		previous = payment
	}
}
