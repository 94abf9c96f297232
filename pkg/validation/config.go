// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"
	"math"
	"time"
)

// MaxDebounceDelay bounds the quiet period; anything longer reads as a hung
// calculator.
const MaxDebounceDelay = 10 * time.Second

// ValidateCalculatorSettings checks the debounce delay and the default
// compounding frequency.
func ValidateCalculatorSettings(debounce time.Duration, defaultFrequency float64) error {
	if debounce <= 0 || debounce > MaxDebounceDelay {
		return fmt.Errorf("expected debounce between 0s and %s, got %s", MaxDebounceDelay, debounce)
	}
	if math.IsNaN(defaultFrequency) || math.IsInf(defaultFrequency, 0) || defaultFrequency <= 0 {
		return fmt.Errorf("expected a positive default frequency, got %v", defaultFrequency)
	}
	return nil
}
