package calculator

import "github.com/cosmoinvest/cosmo-calculators/pkg/mathutil"

// EMIInput holds the fields of the loan EMI calculator.
type EMIInput struct {
	LoanAmount  float64
	AnnualRate  float64 // percent
	TenureYears float64
}

// EMIResult is the outcome of an EMI calculation.
type EMIResult struct {
	MonthlyEMI    float64 `json:"monthlyEmi"`
	TotalInterest float64 `json:"totalInterest"`
	TotalAmount   float64 `json:"totalAmount"`
}

// Valid reports whether loan amount, rate and tenure are strictly positive.
func (in EMIInput) Valid() bool {
	return positive(in.LoanAmount) && positive(in.AnnualRate) && positive(in.TenureYears)
}

// CalculateEMI applies the standard amortization formula
// EMI = L * r * (1+r)^n / ((1+r)^n - 1).
//
// Very small rates push the denominator toward zero. That is left alone; only a
// result that stops being a finite number is declined.
func CalculateEMI(in EMIInput) (EMIResult, bool) {
	if !in.Valid() {
		return EMIResult{}, false
	}

	r := mathutil.MonthlyRate(in.AnnualRate)
	n := mathutil.Months(in.TenureYears)
	emi := monthlyInstallment(in.LoanAmount, r, n)
	total := emi * n

	res := EMIResult{
		MonthlyEMI:    emi,
		TotalInterest: total - in.LoanAmount,
		TotalAmount:   total,
	}
	if !mathutil.AllFinite(res.MonthlyEMI, res.TotalInterest, res.TotalAmount) {
		return EMIResult{}, false
	}
	return res, true
}

func monthlyInstallment(principal, r, n float64) float64 {
	power := mathutil.GrowthFactor(r, n)
	return principal * r * power / (power - 1)
}

// Kind implements Result.
func (EMIResult) Kind() Kind { return KindEMI }

// Figures implements Result.
func (r EMIResult) Figures() []Figure {
	return []Figure{
		{Key: "monthlyEmi", Label: "Monthly EMI", Value: r.MonthlyEMI, Unit: UnitCurrency},
		{Key: "totalInterest", Label: "Total Interest", Value: r.TotalInterest, Unit: UnitCurrency},
		{Key: "totalAmount", Label: "Total Amount", Value: r.TotalAmount, Unit: UnitCurrency},
	}
}
