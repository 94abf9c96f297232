package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/cosmoinvest/cosmo-calculators/pkg/constants"
	"github.com/cosmoinvest/cosmo-calculators/pkg/mathutil"
)

func TestCalculateSIP(t *testing.T) {
	tests := []struct {
		name             string
		input            SIPInput
		expectedInvested float64
		expectedMaturity []float64 // [min, max] expected range
	}{
		{
			name:             "Ten years at 12%",
			input:            SIPInput{MonthlyInvestment: 10000, AnnualReturn: 12, Years: 10},
			expectedInvested: 1200000,
			expectedMaturity: []float64{2300386, 2300388}, // Around 23,00,387
		},
		{
			name:             "One year at 6%",
			input:            SIPInput{MonthlyInvestment: 1000, AnnualReturn: 6, Years: 1},
			expectedInvested: 12000,
			expectedMaturity: []float64{12335, 12336}, // Around 12,335.56
		},
		{
			name:             "Fractional years",
			input:            SIPInput{MonthlyInvestment: 5000, AnnualReturn: 8, Years: 2.5},
			expectedInvested: 150000,
			expectedMaturity: []float64{165000, 166000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := CalculateSIP(tt.input)
			if !ok {
				t.Fatalf("CalculateSIP() declined valid input %+v", tt.input)
			}
			if math.Abs(result.TotalInvestment-tt.expectedInvested) > 1e-6 {
				t.Errorf("TotalInvestment = %.2f, expected %.2f", result.TotalInvestment, tt.expectedInvested)
			}
			if result.MaturityValue < tt.expectedMaturity[0] || result.MaturityValue > tt.expectedMaturity[1] {
				t.Errorf("MaturityValue = %.2f, expected range [%.2f, %.2f]",
					result.MaturityValue, tt.expectedMaturity[0], tt.expectedMaturity[1])
			}
			if math.Abs(result.ExpectedReturns-(result.MaturityValue-result.TotalInvestment)) > 1e-6 {
				t.Errorf("ExpectedReturns = %.2f, expected maturity minus invested", result.ExpectedReturns)
			}
		})
	}
}

func TestCalculateCompoundInterest(t *testing.T) {
	tests := []struct {
		name          string
		input         CompoundInterestInput
		expectedTotal float64
	}{
		{
			name:          "Annual compounding",
			input:         CompoundInterestInput{Principal: 100000, AnnualRate: 8, Frequency: 1, Years: 5},
			expectedTotal: 146932.81, // 100000 * 1.08^5
		},
		{
			name:          "Quarterly compounding",
			input:         CompoundInterestInput{Principal: 100000, AnnualRate: 8, Frequency: 4, Years: 5},
			expectedTotal: 148594.74, // 100000 * 1.02^20
		},
		{
			name:          "Monthly compounding for one year",
			input:         CompoundInterestInput{Principal: 1000, AnnualRate: 12, Frequency: 12, Years: 1},
			expectedTotal: 1126.83, // 1000 * 1.01^12
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := CalculateCompoundInterest(tt.input)
			if !ok {
				t.Fatalf("CalculateCompoundInterest() declined valid input %+v", tt.input)
			}
			if !mathutil.WithinTolerance(result.TotalAmount, tt.expectedTotal, constants.CurrencyTolerance) {
				t.Errorf("TotalAmount = %.2f, expected %.2f", result.TotalAmount, tt.expectedTotal)
			}
			if result.Principal != tt.input.Principal {
				t.Errorf("Principal = %.2f, expected %.2f", result.Principal, tt.input.Principal)
			}
			if math.Abs(result.CompoundInterest-(result.TotalAmount-tt.input.Principal)) > 1e-6 {
				t.Errorf("CompoundInterest = %.2f, expected total minus principal", result.CompoundInterest)
			}
		})
	}
}

func TestCompoundInterestFrequency(t *testing.T) {
	base := CompoundInterestInput{Principal: 100000, AnnualRate: 8, Years: 5}
	for _, freq := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		in := base
		in.Frequency = freq
		if _, ok := CalculateCompoundInterest(in); ok {
			t.Errorf("expected frequency %v to be declined", freq)
		}
	}
}

func TestCalculateInvestmentGrowth(t *testing.T) {
	t.Run("Lump sum only equals compound formula", func(t *testing.T) {
		in := InvestmentGrowthInput{Initial: 50000, Monthly: 0, AnnualReturn: 10, Years: 5}
		result, ok := CalculateInvestmentGrowth(in)
		if !ok {
			t.Fatal("CalculateInvestmentGrowth() declined lump sum input")
		}
		expected := 50000 * math.Pow(1+10.0/1200, 60)
		if result.FinalValue != expected {
			t.Errorf("FinalValue = %v, expected %v", result.FinalValue, expected)
		}
		if result.TotalInvested != 50000 {
			t.Errorf("TotalInvested = %.2f, expected 50000", result.TotalInvested)
		}
		if !mathutil.WithinTolerance(result.FinalValue, 82265.45, constants.CurrencyTolerance) {
			t.Errorf("FinalValue = %.2f, expected about 82265.45", result.FinalValue)
		}
	})

	t.Run("Monthly only is declined", func(t *testing.T) {
		in := InvestmentGrowthInput{Monthly: 10000, AnnualReturn: 12, Years: 10}
		if _, ok := CalculateInvestmentGrowth(in); ok {
			t.Fatal("expected growth without a lump sum to be declined")
		}
		// The series term on its own is the SIP maturity.
		sip, _ := CalculateSIP(SIPInput{MonthlyInvestment: 10000, AnnualReturn: 12, Years: 10})
		if got := growthAfter(in, mathutil.MonthlyRate(12), 120); got.FinalValue != sip.MaturityValue {
			t.Errorf("series FinalValue = %v, expected SIP maturity %v", got.FinalValue, sip.MaturityValue)
		}
	})

	t.Run("Combined", func(t *testing.T) {
		in := InvestmentGrowthInput{Initial: 100000, Monthly: 5000, AnnualReturn: 12, Years: 10}
		result, ok := CalculateInvestmentGrowth(in)
		if !ok {
			t.Fatal("CalculateInvestmentGrowth() declined combined input")
		}
		lump := 100000 * math.Pow(1.01, 120)
		series := 5000 * (math.Pow(1.01, 120) - 1) / 0.01
		if math.Abs(result.FinalValue-(lump+series)) > 1e-6 {
			t.Errorf("FinalValue = %.2f, expected %.2f", result.FinalValue, lump+series)
		}
		if result.TotalInvested != 700000 {
			t.Errorf("TotalInvested = %.2f, expected 700000", result.TotalInvested)
		}
		if math.Abs(result.Growth-(result.FinalValue-700000)) > 1e-6 {
			t.Errorf("Growth = %.2f, expected final minus invested", result.Growth)
		}
	})
}

func TestCalculateEMI(t *testing.T) {
	tests := []struct {
		name          string
		input         EMIInput
		expectedRange []float64
	}{
		{
			name:          "Ten lakh over five years at 10%",
			input:         EMIInput{LoanAmount: 1000000, AnnualRate: 10, TenureYears: 5},
			expectedRange: []float64{21246.5, 21247.5}, // Around 21,247.04
		},
		{
			name:          "Home loan over twenty years",
			input:         EMIInput{LoanAmount: 5000000, AnnualRate: 8.5, TenureYears: 20},
			expectedRange: []float64{43390, 43395}, // Around 43,391
		},
		{
			name:          "High interest short loan",
			input:         EMIInput{LoanAmount: 10000, AnnualRate: 18, TenureYears: 3},
			expectedRange: []float64{360, 380}, // Around 361.52
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := CalculateEMI(tt.input)
			if !ok {
				t.Fatalf("CalculateEMI() declined valid input %+v", tt.input)
			}
			if result.MonthlyEMI < tt.expectedRange[0] || result.MonthlyEMI > tt.expectedRange[1] {
				t.Errorf("MonthlyEMI = %.2f, expected range [%.2f, %.2f]",
					result.MonthlyEMI, tt.expectedRange[0], tt.expectedRange[1])
			}
			months := tt.input.TenureYears * 12
			if math.Abs(result.TotalAmount-result.MonthlyEMI*months) > 1e-6 {
				t.Errorf("TotalAmount = %.2f, expected EMI times months", result.TotalAmount)
			}
			if math.Abs(result.TotalInterest-(result.TotalAmount-tt.input.LoanAmount)) > 1e-6 {
				t.Errorf("TotalInterest = %.2f, expected total minus loan", result.TotalInterest)
			}
		})
	}
}

func TestCalculateEMIVanishingRate(t *testing.T) {
	// (1+r)^n rounds to exactly 1, leaving 0/0.
	if _, ok := CalculateEMI(EMIInput{LoanAmount: 100000, AnnualRate: 1e-300, TenureYears: 5}); ok {
		t.Error("expected a non-finite EMI to be declined")
	}
}

func TestCalculateGoalPlanning(t *testing.T) {
	in := GoalPlanningInput{TargetAmount: 10000000, CurrentAge: 30, TargetAge: 50, AnnualReturn: 12}
	result, ok := CalculateGoalPlanning(in)
	if !ok {
		t.Fatal("CalculateGoalPlanning() declined valid input")
	}
	if result.Years != 20 {
		t.Errorf("Years = %v, expected 20", result.Years)
	}
	// 1 crore in 20 years at 12% needs roughly 10,109 a month.
	if result.RequiredMonthlyInvestment < 10100 || result.RequiredMonthlyInvestment > 10120 {
		t.Errorf("RequiredMonthlyInvestment = %.2f, expected about 10109", result.RequiredMonthlyInvestment)
	}
	if math.Abs(result.TotalInvestment-result.RequiredMonthlyInvestment*240) > 1e-6 {
		t.Errorf("TotalInvestment = %.2f, expected monthly times 240", result.TotalInvestment)
	}
}

func TestGoalPlanningRoundTrip(t *testing.T) {
	tests := []GoalPlanningInput{
		{TargetAmount: 10000000, CurrentAge: 30, TargetAge: 50, AnnualReturn: 12},
		{TargetAmount: 500000, CurrentAge: 25, TargetAge: 28, AnnualReturn: 7.5},
		{TargetAmount: 2500000, CurrentAge: 40.5, TargetAge: 60, AnnualReturn: 9},
		{TargetAmount: 1, CurrentAge: 1, TargetAge: 2, AnnualReturn: 0.5},
	}

	for _, in := range tests {
		goal, ok := CalculateGoalPlanning(in)
		if !ok {
			t.Fatalf("CalculateGoalPlanning(%+v) declined", in)
		}
		sip, ok := CalculateSIP(SIPInput{
			MonthlyInvestment: goal.RequiredMonthlyInvestment,
			AnnualReturn:      in.AnnualReturn,
			Years:             in.TargetAge - in.CurrentAge,
		})
		if !ok {
			t.Fatalf("CalculateSIP() declined the round trip for %+v", in)
		}
		if math.Abs(sip.MaturityValue-in.TargetAmount) > in.TargetAmount*1e-9 {
			t.Errorf("round trip for %+v gave %.6f, expected %.6f", in, sip.MaturityValue, in.TargetAmount)
		}
	}
}

func TestValidationGating(t *testing.T) {
	bad := []float64{0, -1, math.NaN(), math.Inf(1)}

	sip := SIPInput{MonthlyInvestment: 10000, AnnualReturn: 12, Years: 10}
	ci := CompoundInterestInput{Principal: 100000, AnnualRate: 8, Frequency: 1, Years: 5}
	ig := InvestmentGrowthInput{Initial: 50000, Monthly: 1000, AnnualReturn: 10, Years: 5}
	emi := EMIInput{LoanAmount: 1000000, AnnualRate: 10, TenureYears: 5}
	gp := GoalPlanningInput{TargetAmount: 1000000, CurrentAge: 30, TargetAge: 40, AnnualReturn: 12}

	cases := map[string]func(v float64) bool{
		"sip monthly": func(v float64) bool {
			in := sip
			in.MonthlyInvestment = v
			_, ok := CalculateSIP(in)
			return ok
		},
		"sip return": func(v float64) bool {
			in := sip
			in.AnnualReturn = v
			_, ok := CalculateSIP(in)
			return ok
		},
		"sip years": func(v float64) bool {
			in := sip
			in.Years = v
			_, ok := CalculateSIP(in)
			return ok
		},
		"ci principal": func(v float64) bool {
			in := ci
			in.Principal = v
			_, ok := CalculateCompoundInterest(in)
			return ok
		},
		"ci rate": func(v float64) bool {
			in := ci
			in.AnnualRate = v
			_, ok := CalculateCompoundInterest(in)
			return ok
		},
		"ci time": func(v float64) bool {
			in := ci
			in.Years = v
			_, ok := CalculateCompoundInterest(in)
			return ok
		},
		"ig return": func(v float64) bool {
			in := ig
			in.AnnualReturn = v
			_, ok := CalculateInvestmentGrowth(in)
			return ok
		},
		"ig years": func(v float64) bool {
			in := ig
			in.Years = v
			_, ok := CalculateInvestmentGrowth(in)
			return ok
		},
		"emi loan": func(v float64) bool {
			in := emi
			in.LoanAmount = v
			_, ok := CalculateEMI(in)
			return ok
		},
		"emi rate": func(v float64) bool {
			in := emi
			in.AnnualRate = v
			_, ok := CalculateEMI(in)
			return ok
		},
		"emi tenure": func(v float64) bool {
			in := emi
			in.TenureYears = v
			_, ok := CalculateEMI(in)
			return ok
		},
		"gp target": func(v float64) bool {
			in := gp
			in.TargetAmount = v
			_, ok := CalculateGoalPlanning(in)
			return ok
		},
		"gp current": func(v float64) bool {
			in := gp
			in.CurrentAge = v
			_, ok := CalculateGoalPlanning(in)
			return ok
		},
		"gp target age": func(v float64) bool {
			in := gp
			in.TargetAge = v
			_, ok := CalculateGoalPlanning(in)
			return ok
		},
		"gp return": func(v float64) bool {
			in := gp
			in.AnnualReturn = v
			_, ok := CalculateGoalPlanning(in)
			return ok
		},
	}

	for name, calc := range cases {
		t.Run(name, func(t *testing.T) {
			for _, v := range bad {
				if calc(v) {
					t.Errorf("expected %v to be declined", v)
				}
			}
		})
	}
}

func TestGoalPlanningAgeOrdering(t *testing.T) {
	tests := []struct {
		name       string
		currentAge float64
		targetAge  float64
		valid      bool
	}{
		{"Target after current", 30, 31, true},
		{"Same age", 30, 30, false},
		{"Target before current", 40, 30, false},
		{"Zero current age", 0, 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := GoalPlanningInput{TargetAmount: 100000, CurrentAge: tt.currentAge, TargetAge: tt.targetAge, AnnualReturn: 10}
			if in.Valid() != tt.valid {
				t.Errorf("Valid() = %v, expected %v", in.Valid(), tt.valid)
			}
		})
	}
}

func TestInvestmentGrowthValidation(t *testing.T) {
	tests := []struct {
		name    string
		initial float64
		monthly float64
		valid   bool
	}{
		{"Lump sum only", 50000, 0, true},
		{"Monthly only", 0, 1000, false},
		{"Both", 50000, 1000, true},
		{"Neither", 0, 0, false},
		{"Fractional lump sum", 0.5, 0, true},
		{"Negative lump sum", -1, 1000, false},
		{"Negative monthly", 50000, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := InvestmentGrowthInput{Initial: tt.initial, Monthly: tt.monthly, AnnualReturn: 10, Years: 5}
			if in.Valid() != tt.valid {
				t.Errorf("Valid() = %v, expected %v", in.Valid(), tt.valid)
			}
		})
	}
}

func TestIdempotence(t *testing.T) {
	sip := SIPInput{MonthlyInvestment: 12345.67, AnnualReturn: 11.3, Years: 17}
	first, _ := CalculateSIP(sip)
	second, _ := CalculateSIP(sip)
	if first != second {
		t.Errorf("CalculateSIP() not idempotent: %+v vs %+v", first, second)
	}

	emi := EMIInput{LoanAmount: 2750000, AnnualRate: 9.15, TenureYears: 15}
	e1, _ := CalculateEMI(emi)
	e2, _ := CalculateEMI(emi)
	if math.Float64bits(e1.MonthlyEMI) != math.Float64bits(e2.MonthlyEMI) {
		t.Errorf("CalculateEMI() not bit-identical: %v vs %v", e1.MonthlyEMI, e2.MonthlyEMI)
	}

	gp := GoalPlanningInput{TargetAmount: 7500000, CurrentAge: 28, TargetAge: 45, AnnualReturn: 10.5}
	g1, _ := CalculateGoalPlanning(gp)
	g2, _ := CalculateGoalPlanning(gp)
	if g1 != g2 {
		t.Errorf("CalculateGoalPlanning() not idempotent: %+v vs %+v", g1, g2)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(string(k))
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %q, %v", k, got, err)
		}
		if k.Title() == "" {
			t.Errorf("Kind %q has no title", k)
		}
	}

	if got, err := ParseKind(" EMI "); err != nil || got != KindEMI {
		t.Errorf("ParseKind(\" EMI \") = %q, %v", got, err)
	}

	if _, err := ParseKind("mortgage"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(\"mortgage\") error = %v, expected ErrUnknownKind", err)
	}
}

func TestFigures(t *testing.T) {
	results := []Result{
		SIPResult{1, 2, 3},
		CompoundInterestResult{1, 2, 3},
		InvestmentGrowthResult{1, 2, 3},
		EMIResult{1, 2, 3},
		GoalPlanningResult{1, 2, 3},
	}

	for _, r := range results {
		figures := r.Figures()
		if len(figures) != 3 {
			t.Fatalf("%s: expected 3 figures, got %d", r.Kind(), len(figures))
		}
		for i, f := range figures {
			if f.Value != float64(i+1) {
				t.Errorf("%s: figure %s = %v, expected %d", r.Kind(), f.Key, f.Value, i+1)
			}
		}
	}

	if (GoalPlanningResult{}).Figures()[0].Unit != UnitYears {
		t.Error("expected goal planning period to be rendered in years")
	}
}
