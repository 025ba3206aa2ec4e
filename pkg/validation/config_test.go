package validation

import (
	"testing"

	"github.com/Jason-Joannou/Property24-to-Obsidan/pkg/affordability"
)

func TestValidateEngineConfigDefaults(t *testing.T) {
	warnings, err := ValidateEngineConfig(affordability.DefaultConfig())
	if err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("default config produced warnings: %v", warnings)
	}
}

func TestValidateEngineConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*affordability.Config)
	}{
		{
			name: "Empty bracket table",
			mutate: func(cfg *affordability.Config) {
				cfg.Brackets = nil
			},
		},
		{
			name: "Unordered brackets",
			mutate: func(cfg *affordability.Config) {
				cfg.Brackets[2].UpTo = 100
			},
		},
		{
			name: "Gap between brackets",
			mutate: func(cfg *affordability.Config) {
				cfg.Brackets[1].Over = 999999
			},
		},
		{
			name: "Negative rate",
			mutate: func(cfg *affordability.Config) {
				cfg.Brackets[1].Rate = -3
			},
		},
		{
			name: "Zero term",
			mutate: func(cfg *affordability.Config) {
				cfg.TermYears = 0
			},
		},
		{
			name: "Negative interest rate",
			mutate: func(cfg *affordability.Config) {
				cfg.InterestRate = -1
			},
		},
		{
			name: "Inverted utilities bounds",
			mutate: func(cfg *affordability.Config) {
				cfg.UtilitiesFloor = 5000
			},
		},
		{
			name: "Inverted security bounds",
			mutate: func(cfg *affordability.Config) {
				cfg.SecurityCeiling = 100
			},
		},
		{
			name: "Deposit rate of 100 percent",
			mutate: func(cfg *affordability.Config) {
				cfg.DepositRate = 100
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := affordability.DefaultConfig()
			tt.mutate(&cfg)
			if _, err := ValidateEngineConfig(cfg); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestValidateEngineConfigWarnings(t *testing.T) {
	t.Run("Discontinuous duty table", func(t *testing.T) {
		cfg := affordability.DefaultConfig()
		cfg.Brackets[2].Base = 99999

		warnings, err := ValidateEngineConfig(cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(warnings) == 0 {
			t.Error("expected a discontinuity warning, got none")
		}
	})

	t.Run("Unusually high interest rate", func(t *testing.T) {
		cfg := affordability.DefaultConfig()
		cfg.InterestRate = 45

		warnings, err := ValidateEngineConfig(cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(warnings) == 0 {
			t.Error("expected a high-rate warning, got none")
		}
	})

	t.Run("Bounded final bracket", func(t *testing.T) {
		cfg := affordability.DefaultConfig()
		cfg.Brackets[len(cfg.Brackets)-1].UpTo = 99999999

		warnings, err := ValidateEngineConfig(cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(warnings) == 0 {
			t.Error("expected a bounded-final-bracket warning, got none")
		}
	})
}
