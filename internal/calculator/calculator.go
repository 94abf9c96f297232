// Package calculator implements the five investment calculators offered on the
// advisory site: SIP, compound interest, investment growth, EMI and goal
// planning.
//
// Every calculator is a pair of pure functions. An input's Valid method gates
// the computation and the matching Calculate function applies the closed-form
// formula. Calculate never fails loudly: invalid input yields ok == false and
// the caller shows nothing.
package calculator

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies one of the calculators.
type Kind string

const (
	KindSIP              Kind = "sip"
	KindCompoundInterest Kind = "ci"
	KindInvestmentGrowth Kind = "ig"
	KindEMI              Kind = "emi"
	KindGoalPlanning     Kind = "gp"
)

// ErrUnknownKind is returned when a calculator name does not match any Kind.
var ErrUnknownKind = errors.New("unknown calculator")

var kinds = []Kind{KindSIP, KindCompoundInterest, KindInvestmentGrowth, KindEMI, KindGoalPlanning}

var titles = map[Kind]string{
	KindSIP:              "SIP Calculator",
	KindCompoundInterest: "Compound Interest Calculator",
	KindInvestmentGrowth: "Investment Growth Calculator",
	KindEMI:              "EMI Calculator",
	KindGoalPlanning:     "Goal Planning Calculator",
}

// Kinds returns every calculator in page order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// ParseKind resolves a calculator name such as "emi" or "EMI".
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := titles[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

// Title returns the display name of the calculator.
func (k Kind) Title() string {
	return titles[k]
}

// Unit describes how a figure is rendered.
type Unit string

const (
	UnitCurrency Unit = "currency"
	UnitYears    Unit = "years"
)

// Figure is one labelled output of a calculation.
type Figure struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// Result is implemented by every calculator's result record.
type Result interface {
	Kind() Kind
	Figures() []Figure
}
