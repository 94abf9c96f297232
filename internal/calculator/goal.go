package calculator

import "github.com/cosmoinvest/cosmo-calculators/pkg/mathutil"

// GoalPlanningInput holds the fields of the goal planning calculator.
type GoalPlanningInput struct {
	TargetAmount float64
	CurrentAge   float64
	TargetAge    float64
	AnnualReturn float64 // percent
}

// GoalPlanningResult is the monthly investment needed to reach a target.
type GoalPlanningResult struct {
	Years                     float64 `json:"years"`
	RequiredMonthlyInvestment float64 `json:"requiredMonthlyInvestment"`
	TotalInvestment           float64 `json:"totalInvestment"`
}

// Valid requires a positive target, a positive current age, a target age after
// the current age and a positive return.
func (in GoalPlanningInput) Valid() bool {
	return positive(in.TargetAmount) &&
		positive(in.CurrentAge) &&
		mathutil.IsFinite(in.TargetAge) && in.TargetAge > in.CurrentAge &&
		positive(in.AnnualReturn)
}

// CalculateGoalPlanning inverts the SIP formula:
// PMT = Amt * r / ((1+r)^n - 1).
func CalculateGoalPlanning(in GoalPlanningInput) (GoalPlanningResult, bool) {
	if !in.Valid() {
		return GoalPlanningResult{}, false
	}

	years := in.TargetAge - in.CurrentAge
	r := mathutil.MonthlyRate(in.AnnualReturn)
	n := mathutil.Months(years)
	pmt := in.TargetAmount * r / (mathutil.GrowthFactor(r, n) - 1)

	res := GoalPlanningResult{
		Years:                     years,
		RequiredMonthlyInvestment: pmt,
		TotalInvestment:           pmt * n,
	}
	if !mathutil.AllFinite(res.RequiredMonthlyInvestment, res.TotalInvestment) {
		return GoalPlanningResult{}, false
	}
	return res, true
}

// Kind implements Result.
func (GoalPlanningResult) Kind() Kind { return KindGoalPlanning }

// Figures implements Result.
func (r GoalPlanningResult) Figures() []Figure {
	return []Figure{
		{Key: "years", Label: "Investment Period", Value: r.Years, Unit: UnitYears},
		{Key: "requiredMonthlyInvestment", Label: "Monthly Investment Required", Value: r.RequiredMonthlyInvestment, Unit: UnitCurrency},
		{Key: "totalInvestment", Label: "Total Investment", Value: r.TotalInvestment, Unit: UnitCurrency},
	}
}
