// Package format renders amounts the way the site displays them: Indian
// rupees with lakh/crore digit grouping and no fractional part.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/cosmoinvest/cosmo-calculators/pkg/constants"
	"github.com/shopspring/decimal"
)

// Rupees returns a currency string with the rupee sign and Indian grouping
// (e.g., "₹23,00,387", "-₹1,234"). Halves round away from zero.
func Rupees(amount float64) string {
	if math.IsNaN(amount) {
		return constants.CurrencySymbol + "NaN"
	}
	if math.IsInf(amount, 0) {
		if amount < 0 {
			return "-" + constants.CurrencySymbol + "∞"
		}
		return constants.CurrencySymbol + "∞"
	}

	sign, digits := roundedDigits(amount)
	return sign + constants.CurrencySymbol + groupIndian(digits)
}

// Number returns a rounded amount with Indian grouping and no symbol
// (e.g., "1,00,000").
func Number(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return strconv.FormatFloat(amount, 'f', -1, 64)
	}
	sign, digits := roundedDigits(amount)
	return sign + groupIndian(digits)
}

// Years renders a period such as "20 Years" or "12.5 Years".
func Years(years float64) string {
	return strconv.FormatFloat(years, 'f', -1, 64) + " " + constants.YearsSuffix
}

func roundedDigits(amount float64) (string, string) {
	d := decimal.NewFromFloat(amount).Round(0)
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign, d.Abs().String()
}

// groupIndian inserts separators after the last three digits and then after
// every two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var builder strings.Builder
	for i, digit := range head {
		if i > 0 && (len(head)-i)%2 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	builder.WriteByte(',')
	builder.WriteString(tail)
	return builder.String()
}
