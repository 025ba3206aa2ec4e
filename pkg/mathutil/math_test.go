package mathutil

import (
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{
			name:     "Round up to cents",
			input:    1234.567,
			expected: 1234.57,
		},
		{
			name:     "Round down to cents",
			input:    1234.561,
			expected: 1234.56,
		},
		{
			name:     "Already exact",
			input:    99.99,
			expected: 99.99,
		},
		{
			name:     "Negative value",
			input:    -0.005,
			expected: -0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round(tt.input); got != tt.expected {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		val      float64
		lo       float64
		hi       float64
		expected float64
	}{
		{
			name:     "Below lower bound",
			val:      0,
			lo:       1500,
			hi:       3500,
			expected: 1500,
		},
		{
			name:     "Above upper bound",
			val:      10000,
			lo:       1500,
			hi:       3500,
			expected: 3500,
		},
		{
			name:     "Within bounds",
			val:      2000,
			lo:       1500,
			hi:       3500,
			expected: 2000,
		},
		{
			name:     "Exactly at lower bound",
			val:      300,
			lo:       300,
			hi:       800,
			expected: 300,
		},
		{
			name:     "Exactly at upper bound",
			val:      800,
			lo:       300,
			hi:       800,
			expected: 800,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.expected {
				t.Errorf("Clamp(%v, %v, %v) = %v, expected %v", tt.val, tt.lo, tt.hi, got, tt.expected)
			}
		})
	}
}

func TestApplyPercentage(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		percentage float64
		expected   float64
	}{
		{
			name:       "Ten percent deposit",
			value:      1500000,
			percentage: 10.0,
			expected:   150000,
		},
		{
			name:       "Half percent attorney fees",
			value:      1500000,
			percentage: 0.5,
			expected:   7500,
		},
		{
			name:       "Zero percentage",
			value:      1500000,
			percentage: 0,
			expected:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyPercentage(tt.value, tt.percentage); !WithinTolerance(got, tt.expected, 1e-9) {
				t.Errorf("ApplyPercentage(%v, %v) = %v, expected %v", tt.value, tt.percentage, got, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(100.004, 100.0, 0.01) {
		t.Error("expected 100.004 to be within 0.01 of 100.0")
	}
	if WithinTolerance(100.02, 100.0, 0.01) {
		t.Error("expected 100.02 to be outside 0.01 of 100.0")
	}
}
