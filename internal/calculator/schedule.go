package calculator

import (
	"fmt"
	"math"

	"github.com/cosmoinvest/cosmo-calculators/pkg/constants"
	"github.com/cosmoinvest/cosmo-calculators/pkg/mathutil"
	"go.uber.org/zap"
)

// Installment holds the values for a given month of a loan.
type Installment struct {
	Month              int     `json:"month"`
	Payment            float64 `json:"payment"`
	Principal          float64 `json:"principal"`
	Interest           float64 `json:"interest"`
	RemainingPrincipal float64 `json:"remainingPrincipal"`
}

// YearSnapshot is the state of an investment at the end of a year.
type YearSnapshot struct {
	Year     int     `json:"year"`
	Invested float64 `json:"invested"`
	Value    float64 `json:"value"`
	Growth   float64 `json:"growth"`
}

// ScheduleGenerator breaks a calculation down period by period.
type ScheduleGenerator struct {
	logger *zap.Logger
}

// NewScheduleGenerator creates a new generator instance.
func NewScheduleGenerator(logger *zap.Logger) *ScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleGenerator{logger: logger}
}

// EMISchedule creates the month-by-month amortization of a loan. A tenure that
// is not a whole number of months gets a shorter final installment that clears
// whatever principal is left.
func (g *ScheduleGenerator) EMISchedule(in EMIInput) ([]Installment, bool) {
	res, ok := CalculateEMI(in)
	if !ok {
		return nil, false
	}

	if !withinScheduleLimit(in.TenureYears) {
		g.logger.Debug(fmt.Sprintf("tenure of %g years exceeds the %d year schedule limit", in.TenureYears, constants.MaxScheduleYears),
			zap.String("op", "calculator.EMISchedule"),
		)
		return nil, false
	}

	r := mathutil.MonthlyRate(in.AnnualRate)
	months := int(math.Ceil(mathutil.Months(in.TenureYears)))
	schedule := make([]Installment, 0, months)

	remaining := in.LoanAmount
	for month := 1; month <= months; month++ {
		interest := remaining * r
		principal := res.MonthlyEMI - interest
		payment := res.MonthlyEMI

		if month == months || principal >= remaining || mathutil.IsZero(mathutil.Round(remaining-principal)) {
			// Avoid carrying machine error past the final installment.
			principal = remaining
			payment = principal + interest
			schedule = append(schedule, Installment{
				Month:     month,
				Payment:   payment,
				Principal: principal,
				Interest:  interest,
			})
			if month < months {
				g.logger.Debug(fmt.Sprintf("loan cleared at month %d of %d", month, months),
					zap.String("op", "calculator.EMISchedule"),
				)
			}
			break
		}

		remaining -= principal
		schedule = append(schedule, Installment{
			Month:              month,
			Payment:            payment,
			Principal:          principal,
			Interest:           interest,
			RemainingPrincipal: remaining,
		})
	}

	return schedule, true
}

// GrowthSchedule creates year-end snapshots of an investment growth
// projection. The final snapshot matches CalculateInvestmentGrowth.
func (g *ScheduleGenerator) GrowthSchedule(in InvestmentGrowthInput) ([]YearSnapshot, bool) {
	if _, ok := CalculateInvestmentGrowth(in); !ok {
		return nil, false
	}
	return g.yearSnapshots(in, "calculator.GrowthSchedule")
}

// SIPSchedule is the growth schedule of a plan with no lump sum.
func (g *ScheduleGenerator) SIPSchedule(in SIPInput) ([]YearSnapshot, bool) {
	if _, ok := CalculateSIP(in); !ok {
		return nil, false
	}
	return g.yearSnapshots(InvestmentGrowthInput{
		Monthly:      in.MonthlyInvestment,
		AnnualReturn: in.AnnualReturn,
		Years:        in.Years,
	}, "calculator.SIPSchedule")
}

func (g *ScheduleGenerator) yearSnapshots(in InvestmentGrowthInput, op string) ([]YearSnapshot, bool) {
	if !withinScheduleLimit(in.Years) {
		g.logger.Debug(fmt.Sprintf("duration of %g years exceeds the %d year schedule limit", in.Years, constants.MaxScheduleYears),
			zap.String("op", op),
		)
		return nil, false
	}

	r := mathutil.MonthlyRate(in.AnnualReturn)
	totalMonths := mathutil.Months(in.Years)
	years := int(math.Ceil(in.Years))
	schedule := make([]YearSnapshot, 0, years)

	for year := 1; year <= years; year++ {
		n := math.Min(float64(year*constants.MonthsPerYear), totalMonths)
		point := growthAfter(in, r, n)
		schedule = append(schedule, YearSnapshot{
			Year:     year,
			Invested: point.TotalInvested,
			Value:    point.FinalValue,
			Growth:   point.Growth,
		})
	}

	g.logger.Debug(fmt.Sprintf("generated %d year snapshots", len(schedule)),
		zap.String("op", op),
	)
	return schedule, true
}

// withinScheduleLimit reports whether a duration is short enough to break
// down row by row. The comparison happens on floats so huge durations never
// reach an int conversion.
func withinScheduleLimit(years float64) bool {
	return math.Ceil(years) <= constants.MaxScheduleYears
}
