package affordability

import (
	"math"
	"testing"
)

func TestTransferDuty(t *testing.T) {
	table := DefaultBracketTable()

	tests := []struct {
		name     string
		price    float64
		expected float64
	}{
		{
			name:     "Below exemption threshold",
			price:    1000000,
			expected: 0,
		},
		{
			name:     "Exactly at exemption threshold",
			price:    1210000,
			expected: 0,
		},
		{
			name:     "Second tier",
			price:    1500000,
			expected: 8700, // (1,500,000 - 1,210,000) * 3%
		},
		{
			name:     "Third tier",
			price:    2000000,
			expected: 33786, // 13,614 + (2,000,000 - 1,663,800) * 6%
		},
		{
			name:     "Fourth tier",
			price:    2500000,
			expected: 67200, // 53,544 + (2,500,000 - 2,329,300) * 8%
		},
		{
			name:     "Fifth tier",
			price:    5000000,
			expected: 327356, // 106,784 + (5,000,000 - 2,994,800) * 11%
		},
		{
			name:     "Top tier",
			price:    15000000,
			expected: 1461156, // 1,241,456 + (15,000,000 - 13,310,000) * 13%
		},
		{
			name:     "Zero price",
			price:    0,
			expected: 0,
		},
		{
			name:     "Negative price",
			price:    -500000,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TransferDuty(table, tt.price)
			if math.Abs(got-tt.expected) > 0.01 {
				t.Errorf("TransferDuty(%v) = %v, expected %v", tt.price, got, tt.expected)
			}
		})
	}
}

// The duty curve must be continuous: the duty at each tier's upper bound
// has to equal the base amount of the next tier, otherwise a one-rand price
// difference would jump the duty by more than the marginal rate.
func TestTransferDutyContinuityAtBoundaries(t *testing.T) {
	table := DefaultBracketTable()

	for i := 0; i < len(table)-1; i++ {
		boundary := table[i].UpTo
		fromLower := TransferDuty(table, boundary)
		nextBase := table[i+1].Base

		if math.Abs(fromLower-nextBase) > 0.01 {
			t.Errorf("duty discontinuous at %v: lower tier gives %v, next tier base is %v",
				boundary, fromLower, nextBase)
		}

		// One rand above the boundary the duty may only grow by the next
		// tier's marginal rate on that rand.
		justAbove := TransferDuty(table, boundary+1)
		maxStep := table[i+1].Rate / 100.0
		if justAbove-fromLower > maxStep+0.01 {
			t.Errorf("duty jumps by %v crossing boundary %v, marginal step is %v",
				justAbove-fromLower, boundary, maxStep)
		}
	}
}

func TestTransferDutyValue(t *testing.T) {
	table := DefaultBracketTable()

	tests := []struct {
		name     string
		price    any
		expected float64
	}{
		{
			name:     "Numeric string with separators",
			price:    "1,500,000",
			expected: 8700,
		},
		{
			name:     "Rand string with spaces",
			price:    "R 1 500 000",
			expected: 8700,
		},
		{
			name:     "Plain number",
			price:    1500000,
			expected: 8700,
		},
		{
			name:     "Unparseable string",
			price:    "price on application",
			expected: 0,
		},
		{
			name:     "Nil price",
			price:    nil,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TransferDutyValue(table, tt.price)
			if math.Abs(got-tt.expected) > 0.01 {
				t.Errorf("TransferDutyValue(%v) = %v, expected %v", tt.price, got, tt.expected)
			}
		})
	}
}
