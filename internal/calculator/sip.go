package calculator

import "github.com/cosmoinvest/cosmo-calculators/pkg/mathutil"

// SIPInput holds the fields of the systematic investment plan calculator.
type SIPInput struct {
	MonthlyInvestment float64
	AnnualReturn      float64 // percent, 12 means 12%
	Years             float64
}

// SIPResult is the outcome of a SIP projection.
type SIPResult struct {
	TotalInvestment float64 `json:"totalInvestment"`
	ExpectedReturns float64 `json:"expectedReturns"`
	MaturityValue   float64 `json:"maturityValue"`
}

// Valid reports whether all three fields are strictly positive.
func (in SIPInput) Valid() bool {
	return positive(in.MonthlyInvestment) && positive(in.AnnualReturn) && positive(in.Years)
}

// CalculateSIP projects the future value of a fixed monthly contribution
// compounding monthly: FV = M * ((1+r)^n - 1) / r.
func CalculateSIP(in SIPInput) (SIPResult, bool) {
	if !in.Valid() {
		return SIPResult{}, false
	}

	r := mathutil.MonthlyRate(in.AnnualReturn)
	n := mathutil.Months(in.Years)
	maturity := futureValueOfSeries(in.MonthlyInvestment, r, n)
	invested := in.MonthlyInvestment * n

	res := SIPResult{
		TotalInvestment: invested,
		ExpectedReturns: maturity - invested,
		MaturityValue:   maturity,
	}
	if !mathutil.AllFinite(res.TotalInvestment, res.ExpectedReturns, res.MaturityValue) {
		return SIPResult{}, false
	}
	return res, true
}

// Kind implements Result.
func (SIPResult) Kind() Kind { return KindSIP }

// Figures implements Result.
func (r SIPResult) Figures() []Figure {
	return []Figure{
		{Key: "totalInvestment", Label: "Total Investment", Value: r.TotalInvestment, Unit: UnitCurrency},
		{Key: "expectedReturns", Label: "Expected Returns", Value: r.ExpectedReturns, Unit: UnitCurrency},
		{Key: "maturityValue", Label: "Maturity Value", Value: r.MaturityValue, Unit: UnitCurrency},
	}
}

// futureValueOfSeries is the future value of n end-of-period payments of pmt
// at periodic rate r. r must be non-zero.
func futureValueOfSeries(pmt, r, n float64) float64 {
	return pmt * (mathutil.GrowthFactor(r, n) - 1) / r
}

// positive is the shared constraint for required fields: a finite number
// strictly greater than zero. NaN fails the comparison on its own.
func positive(v float64) bool {
	return v > 0 && mathutil.IsFinite(v)
}

// nonNegative accepts zero and finite positive numbers.
func nonNegative(v float64) bool {
	return v >= 0 && mathutil.IsFinite(v)
}
