package form

import (
	"github.com/cosmoinvest/cosmo-calculators/internal/calculator"
)

// Evaluate parses the fields of one calculator, validates them and computes
// the result. ok is false whenever the panel should stay hidden.
func Evaluate(kind calculator.Kind, fields Fields) (calculator.Result, bool) {
	switch kind {
	case calculator.KindSIP:
		in, parsed := fields.SIPInput()
		return compute(parsed, in, calculator.CalculateSIP)
	case calculator.KindCompoundInterest:
		in, parsed := fields.CompoundInterestInput()
		return compute(parsed, in, calculator.CalculateCompoundInterest)
	case calculator.KindInvestmentGrowth:
		in, parsed := fields.InvestmentGrowthInput()
		return compute(parsed, in, calculator.CalculateInvestmentGrowth)
	case calculator.KindEMI:
		in, parsed := fields.EMIInput()
		return compute(parsed, in, calculator.CalculateEMI)
	case calculator.KindGoalPlanning:
		in, parsed := fields.GoalPlanningInput()
		return compute(parsed, in, calculator.CalculateGoalPlanning)
	}
	return nil, false
}

func compute[I any, R calculator.Result](parsed bool, in I, calc func(I) (R, bool)) (calculator.Result, bool) {
	if !parsed {
		return nil, false
	}
	res, ok := calc(in)
	if !ok {
		return nil, false
	}
	return res, true
}

// Schedule is the period breakdown of a calculator. Only one of the slices is
// set.
type Schedule struct {
	Kind         calculator.Kind           `json:"kind"`
	Installments []calculator.Installment  `json:"installments,omitempty"`
	Years        []calculator.YearSnapshot `json:"years,omitempty"`
}

// SupportsSchedule reports whether a calculator has a period breakdown.
func SupportsSchedule(kind calculator.Kind) bool {
	switch kind {
	case calculator.KindSIP, calculator.KindInvestmentGrowth, calculator.KindEMI:
		return true
	}
	return false
}

// EvaluateSchedule is Evaluate for the period breakdown.
func EvaluateSchedule(gen *calculator.ScheduleGenerator, kind calculator.Kind, fields Fields) (Schedule, bool) {
	out := Schedule{Kind: kind}
	switch kind {
	case calculator.KindSIP:
		in, parsed := fields.SIPInput()
		if !parsed {
			return Schedule{}, false
		}
		years, ok := gen.SIPSchedule(in)
		out.Years = years
		return out, ok
	case calculator.KindInvestmentGrowth:
		in, parsed := fields.InvestmentGrowthInput()
		if !parsed {
			return Schedule{}, false
		}
		years, ok := gen.GrowthSchedule(in)
		out.Years = years
		return out, ok
	case calculator.KindEMI:
		in, parsed := fields.EMIInput()
		if !parsed {
			return Schedule{}, false
		}
		installments, ok := gen.EMISchedule(in)
		out.Installments = installments
		return out, ok
	}
	return Schedule{}, false
}
