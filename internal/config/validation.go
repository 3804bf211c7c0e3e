package config

import (
	"fmt"

	"beatcut/pkg/beatplan"
)

// ValidationResult captures a single validation finding.
type ValidationResult struct {
	Level   string `json:"level"` // "error" or "warning"
	Message string `json:"message"`
}

// ValidateStrict runs all strict validations against the config and returns
// structured results.
func (c Config) ValidateStrict() []ValidationResult {
	var results []ValidationResult

	if _, err := beatplan.ParseCutStyle(c.Plan.Style); err != nil {
		results = append(results, ValidationResult{
			Level:   "error",
			Message: fmt.Sprintf("plan style %q is not a known cut style", c.Plan.Style),
		})
	}
	if c.Plan.Images < 0 {
		results = append(results, ValidationResult{
			Level:   "error",
			Message: fmt.Sprintf("plan images must not be negative, got %d", c.Plan.Images),
		})
	}
	if c.Snap.ToleranceSec < 0 {
		results = append(results, ValidationResult{
			Level:   "error",
			Message: fmt.Sprintf("snap tolerance_s must not be negative, got %g", c.Snap.ToleranceSec),
		})
	}
	if c.Snap.ToleranceSec > 1.0 {
		results = append(results, ValidationResult{
			Level:   "warning",
			Message: fmt.Sprintf("snap tolerance_s of %g is unusually wide; snapped times may land far from their origin", c.Snap.ToleranceSec),
		})
	}

	return results
}
