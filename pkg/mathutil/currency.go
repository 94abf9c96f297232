// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/cosmoinvest/cosmo-calculators/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// IsFinite reports whether val is neither NaN nor an infinity.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// AllFinite reports whether every value is finite.
func AllFinite(vals ...float64) bool {
	for _, v := range vals {
		if !IsFinite(v) {
			return false
		}
	}
	return true
}

// MonthlyRate converts an annual percentage (12 meaning 12%) into the
// per-month fraction used by monthly compounding.
func MonthlyRate(annualPercent float64) float64 {
	return annualPercent / constants.MonthsPerYear / constants.PercentageMultiplier
}

// PeriodicRate converts an annual percentage into the per-period fraction for
// the given number of compounding periods per year.
func PeriodicRate(annualPercent, periodsPerYear float64) float64 {
	return (annualPercent / constants.PercentageMultiplier) / periodsPerYear
}

// Months converts a duration in years into months.
func Months(years float64) float64 {
	return years * constants.MonthsPerYear
}

// GrowthFactor returns (1+rate)^periods.
func GrowthFactor(rate, periods float64) float64 {
	return math.Pow(1+rate, periods)
}
