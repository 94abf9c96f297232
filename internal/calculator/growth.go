package calculator

import "github.com/cosmoinvest/cosmo-calculators/pkg/mathutil"

// InvestmentGrowthInput holds the fields of the investment growth calculator.
// Monthly defaults to zero when the user leaves it empty.
type InvestmentGrowthInput struct {
	Initial      float64
	Monthly      float64
	AnnualReturn float64 // percent
	Years        float64
}

// InvestmentGrowthResult is the outcome of an investment growth projection.
type InvestmentGrowthResult struct {
	TotalInvested float64 `json:"totalInvested"`
	Growth        float64 `json:"growth"`
	FinalValue    float64 `json:"finalValue"`
}

// Valid requires a positive lump sum, return and duration. The monthly
// contribution may be zero but not negative.
func (in InvestmentGrowthInput) Valid() bool {
	return positive(in.Initial) && nonNegative(in.Monthly) &&
		positive(in.AnnualReturn) && positive(in.Years)
}

// CalculateInvestmentGrowth grows a lump sum and a monthly contribution side by
// side at the same monthly rate.
func CalculateInvestmentGrowth(in InvestmentGrowthInput) (InvestmentGrowthResult, bool) {
	if !in.Valid() {
		return InvestmentGrowthResult{}, false
	}

	r := mathutil.MonthlyRate(in.AnnualReturn)
	n := mathutil.Months(in.Years)
	res := growthAfter(in, r, n)
	if !mathutil.AllFinite(res.TotalInvested, res.Growth, res.FinalValue) {
		return InvestmentGrowthResult{}, false
	}
	return res, true
}

// growthAfter evaluates the growth formula after n months. The monthly series
// term is skipped when nothing is contributed monthly.
func growthAfter(in InvestmentGrowthInput, r, n float64) InvestmentGrowthResult {
	initialFV := in.Initial * mathutil.GrowthFactor(r, n)

	monthlyFV := 0.0
	if in.Monthly > 0 {
		monthlyFV = futureValueOfSeries(in.Monthly, r, n)
	}

	final := initialFV + monthlyFV
	invested := in.Initial + in.Monthly*n
	return InvestmentGrowthResult{
		TotalInvested: invested,
		Growth:        final - invested,
		FinalValue:    final,
	}
}

// Kind implements Result.
func (InvestmentGrowthResult) Kind() Kind { return KindInvestmentGrowth }

// Figures implements Result.
func (r InvestmentGrowthResult) Figures() []Figure {
	return []Figure{
		{Key: "totalInvested", Label: "Total Invested", Value: r.TotalInvested, Unit: UnitCurrency},
		{Key: "growth", Label: "Total Growth", Value: r.Growth, Unit: UnitCurrency},
		{Key: "finalValue", Label: "Final Value", Value: r.FinalValue, Unit: UnitCurrency},
	}
}
