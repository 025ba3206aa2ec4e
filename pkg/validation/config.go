// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/Jason-Joannou/Property24-to-Obsidan/pkg/affordability"
	"github.com/Jason-Joannou/Property24-to-Obsidan/pkg/mathutil"
)

// dutyContinuityTolerance allows for rounding in published duty tables.
const dutyContinuityTolerance = 1.0

// ValidateEngineConfig checks an affordability engine configuration for
// structural problems. It returns a hard error for configurations that
// cannot produce meaningful estimates, and a list of warnings for values
// that are suspicious but usable.
func ValidateEngineConfig(cfg affordability.Config) ([]string, error) {
	var warnings []string

	if len(cfg.Brackets) == 0 {
		return warnings, fmt.Errorf("transfer duty bracket table is empty")
	}

	for i, b := range cfg.Brackets {
		last := i == len(cfg.Brackets)-1
		if b.UpTo == 0 && !last {
			return warnings, fmt.Errorf("bracket %d has no upper bound but is not the final bracket", i)
		}
		if last && b.UpTo != 0 {
			warnings = append(warnings, fmt.Sprintf("final bracket has upper bound %.0f; prices above it will owe no duty", b.UpTo))
		}
		if b.Rate < 0 || b.Base < 0 {
			return warnings, fmt.Errorf("bracket %d has a negative rate or base", i)
		}
		if i > 0 {
			prev := cfg.Brackets[i-1]
			if b.Over != prev.UpTo {
				return warnings, fmt.Errorf("bracket %d starts at %.0f but previous bracket ends at %.0f", i, b.Over, prev.UpTo)
			}
			if !last || b.UpTo != 0 {
				if b.UpTo <= prev.UpTo {
					return warnings, fmt.Errorf("bracket %d upper bound %.0f does not exceed previous bound %.0f", i, b.UpTo, prev.UpTo)
				}
			}
			// The duty curve should be continuous across the boundary;
			// a mismatched base double-counts or skips part of the excess.
			atBoundary := affordability.TransferDuty(cfg.Brackets[:i], prev.UpTo)
			if !mathutil.WithinTolerance(atBoundary, b.Base, dutyContinuityTolerance) {
				warnings = append(warnings, fmt.Sprintf(
					"duty is discontinuous at %.0f: lower bracket gives %.2f, next base is %.2f",
					prev.UpTo, atBoundary, b.Base))
			}
		}
	}

	if cfg.TermYears <= 0 {
		return warnings, fmt.Errorf("bond term must be positive, got %d years", cfg.TermYears)
	}
	if cfg.InterestRate < 0 {
		return warnings, fmt.Errorf("interest rate must not be negative, got %.2f", cfg.InterestRate)
	}
	if cfg.InterestRate > 30 {
		warnings = append(warnings, fmt.Sprintf("interest rate %.2f%% is unusually high", cfg.InterestRate))
	}

	if cfg.UtilitiesFloor > cfg.UtilitiesCeiling {
		return warnings, fmt.Errorf("utilities floor %.2f exceeds ceiling %.2f", cfg.UtilitiesFloor, cfg.UtilitiesCeiling)
	}
	if cfg.SecurityFloor > cfg.SecurityCeiling {
		return warnings, fmt.Errorf("security floor %.2f exceeds ceiling %.2f", cfg.SecurityFloor, cfg.SecurityCeiling)
	}

	if cfg.DepositRate < 0 || cfg.DepositRate >= 100 {
		return warnings, fmt.Errorf("deposit rate must be in [0, 100), got %.2f", cfg.DepositRate)
	}

	return warnings, nil
}
