package calculator

import (
	"math"

	"github.com/cosmoinvest/cosmo-calculators/pkg/mathutil"
)

// CompoundInterestInput holds the fields of the compound interest calculator.
type CompoundInterestInput struct {
	Principal  float64
	AnnualRate float64 // percent
	Frequency  float64 // compounding periods per year
	Years      float64
}

// CompoundInterestResult is the outcome of a compound interest calculation.
type CompoundInterestResult struct {
	Principal        float64 `json:"principal"`
	CompoundInterest float64 `json:"compoundInterest"`
	TotalAmount      float64 `json:"totalAmount"`
}

// Valid reports whether principal, rate and time are strictly positive. The
// compounding frequency is checked too since the formula divides by it.
func (in CompoundInterestInput) Valid() bool {
	return positive(in.Principal) && positive(in.AnnualRate) && positive(in.Years) && positive(in.Frequency)
}

// CalculateCompoundInterest applies A = P * (1 + (R/100)/F)^(F*T).
func CalculateCompoundInterest(in CompoundInterestInput) (CompoundInterestResult, bool) {
	if !in.Valid() {
		return CompoundInterestResult{}, false
	}

	rate := mathutil.PeriodicRate(in.AnnualRate, in.Frequency)
	amount := in.Principal * math.Pow(1+rate, in.Frequency*in.Years)

	res := CompoundInterestResult{
		Principal:        in.Principal,
		CompoundInterest: amount - in.Principal,
		TotalAmount:      amount,
	}
	if !mathutil.AllFinite(res.CompoundInterest, res.TotalAmount) {
		return CompoundInterestResult{}, false
	}
	return res, true
}

// Kind implements Result.
func (CompoundInterestResult) Kind() Kind { return KindCompoundInterest }

// Figures implements Result.
func (r CompoundInterestResult) Figures() []Figure {
	return []Figure{
		{Key: "principal", Label: "Principal Amount", Value: r.Principal, Unit: UnitCurrency},
		{Key: "compoundInterest", Label: "Compound Interest", Value: r.CompoundInterest, Unit: UnitCurrency},
		{Key: "totalAmount", Label: "Total Amount", Value: r.TotalAmount, Unit: UnitCurrency},
	}
}
