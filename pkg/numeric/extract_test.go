package numeric

import (
	"testing"
)

func TestAmountString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{
			name:     "Rand with spaces",
			input:    "R 27 000",
			expected: 27000,
		},
		{
			name:     "Comma separated",
			input:    "1,210,000",
			expected: 1210000,
		},
		{
			name:     "Plain number",
			input:    "1500000",
			expected: 1500000,
		},
		{
			name:     "Dollar prefix",
			input:    "$2,500",
			expected: 2500,
		},
		{
			name:     "Surrounding whitespace",
			input:    "  R1 663 800  ",
			expected: 1663800,
		},
		{
			name:     "Decimal value",
			input:    "R 1234.56",
			expected: 1234.56,
		},
		{
			name:     "Trailing text",
			input:    "R 3 200 per month",
			expected: 3200,
		},
		{
			name:     "Non-numeric",
			input:    "abc",
			expected: 0,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: 0,
		},
		{
			name:     "POA listing",
			input:    "POA",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AmountString(tt.input); got != tt.expected {
				t.Errorf("AmountString(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected float64
	}{
		{
			name:     "Nil input",
			input:    nil,
			expected: 0,
		},
		{
			name:     "Float passes through",
			input:    1250.5,
			expected: 1250.5,
		},
		{
			name:     "Int converts",
			input:    1210000,
			expected: 1210000,
		},
		{
			name:     "Int64 converts",
			input:    int64(42),
			expected: 42,
		},
		{
			name:     "String parses",
			input:    "R 27 000",
			expected: 27000,
		},
		{
			name:     "Unsupported type degrades to zero",
			input:    []string{"R100"},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Amount(tt.input); got != tt.expected {
				t.Errorf("Amount(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}
