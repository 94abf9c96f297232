// Package form binds raw text fields to the calculators. It plays the part of
// the page: each calculator has a panel of named inputs and a result area that
// is either hidden or shown.
package form

import (
	"math"
	"strconv"
	"strings"

	"github.com/cosmoinvest/cosmo-calculators/internal/calculator"
	"github.com/cosmoinvest/cosmo-calculators/pkg/constants"
)

// Field names, one group per calculator.
const (
	FieldSIPMonthly = "sip-monthly"
	FieldSIPReturn  = "sip-return"
	FieldSIPYears   = "sip-years"

	FieldCIPrincipal = "ci-principal"
	FieldCIRate      = "ci-rate"
	FieldCIFrequency = "ci-frequency"
	FieldCITime      = "ci-time"

	FieldIGInitial = "ig-initial"
	FieldIGMonthly = "ig-monthly"
	FieldIGReturn  = "ig-return"
	FieldIGYears   = "ig-years"

	FieldEMILoan   = "emi-loan"
	FieldEMIRate   = "emi-rate"
	FieldEMITenure = "emi-tenure"

	FieldGPTarget     = "gp-target"
	FieldGPCurrentAge = "gp-current-age"
	FieldGPTargetAge  = "gp-target-age"
	FieldGPReturn     = "gp-return"
)

var groups = map[calculator.Kind][]string{
	calculator.KindSIP:              {FieldSIPMonthly, FieldSIPReturn, FieldSIPYears},
	calculator.KindCompoundInterest: {FieldCIPrincipal, FieldCIRate, FieldCIFrequency, FieldCITime},
	calculator.KindInvestmentGrowth: {FieldIGInitial, FieldIGMonthly, FieldIGReturn, FieldIGYears},
	calculator.KindEMI:              {FieldEMILoan, FieldEMIRate, FieldEMITenure},
	calculator.KindGoalPlanning:     {FieldGPTarget, FieldGPCurrentAge, FieldGPTargetAge, FieldGPReturn},
}

// Fields maps a field name to the text the user typed.
type Fields map[string]string

// FieldNames returns the inputs of a calculator in display order.
func FieldNames(kind calculator.Kind) []string {
	names := groups[kind]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// KindForField reports which calculator owns a field.
func KindForField(field string) (calculator.Kind, bool) {
	for kind, names := range groups {
		for _, name := range names {
			if name == field {
				return kind, true
			}
		}
	}
	return "", false
}

// ParseNumber reads free text as a number. Empty, non-numeric, NaN and
// infinite text all count as no value.
func ParseNumber(text string) (float64, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// defaultValues holds what a field reads as right after Reset.
var defaultValues = map[string]string{
	FieldCIFrequency: strconv.Itoa(constants.DefaultCompoundingFrequency),
}

// required parses a field whose absence declines the calculation.
func (f Fields) required(name string) (float64, bool) {
	return ParseNumber(f[name])
}

// optional parses a field that falls back to def when missing or malformed.
func (f Fields) optional(name string, def float64) float64 {
	if v, ok := ParseNumber(f[name]); ok {
		return v
	}
	return def
}

// SIPInput converts the SIP group.
func (f Fields) SIPInput() (calculator.SIPInput, bool) {
	m, ok1 := f.required(FieldSIPMonthly)
	r, ok2 := f.required(FieldSIPReturn)
	y, ok3 := f.required(FieldSIPYears)
	return calculator.SIPInput{MonthlyInvestment: m, AnnualReturn: r, Years: y}, ok1 && ok2 && ok3
}

// CompoundInterestInput converts the compound interest group. An empty
// frequency reads as annual compounding; malformed text is still a failure.
func (f Fields) CompoundInterestInput() (calculator.CompoundInterestInput, bool) {
	p, ok1 := f.required(FieldCIPrincipal)
	r, ok2 := f.required(FieldCIRate)
	t, ok3 := f.required(FieldCITime)

	freq := float64(constants.DefaultCompoundingFrequency)
	ok4 := true
	if strings.TrimSpace(f[FieldCIFrequency]) != "" {
		freq, ok4 = f.required(FieldCIFrequency)
	}
	return calculator.CompoundInterestInput{Principal: p, AnnualRate: r, Frequency: freq, Years: t}, ok1 && ok2 && ok3 && ok4
}

// InvestmentGrowthInput converts the investment growth group. The monthly
// contribution reads as zero when left empty; the lump sum is required.
func (f Fields) InvestmentGrowthInput() (calculator.InvestmentGrowthInput, bool) {
	i, ok1 := f.required(FieldIGInitial)
	r, ok2 := f.required(FieldIGReturn)
	y, ok3 := f.required(FieldIGYears)
	return calculator.InvestmentGrowthInput{
		Initial:      i,
		Monthly:      f.optional(FieldIGMonthly, 0),
		AnnualReturn: r,
		Years:        y,
	}, ok1 && ok2 && ok3
}

// EMIInput converts the EMI group.
func (f Fields) EMIInput() (calculator.EMIInput, bool) {
	l, ok1 := f.required(FieldEMILoan)
	r, ok2 := f.required(FieldEMIRate)
	t, ok3 := f.required(FieldEMITenure)
	return calculator.EMIInput{LoanAmount: l, AnnualRate: r, TenureYears: t}, ok1 && ok2 && ok3
}

// GoalPlanningInput converts the goal planning group.
func (f Fields) GoalPlanningInput() (calculator.GoalPlanningInput, bool) {
	amt, ok1 := f.required(FieldGPTarget)
	a1, ok2 := f.required(FieldGPCurrentAge)
	a2, ok3 := f.required(FieldGPTargetAge)
	r, ok4 := f.required(FieldGPReturn)
	return calculator.GoalPlanningInput{TargetAmount: amt, CurrentAge: a1, TargetAge: a2, AnnualReturn: r}, ok1 && ok2 && ok3 && ok4
}
