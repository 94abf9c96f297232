// Package output provides utilities for formatting and displaying calculator results.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/cosmoinvest/cosmo-calculators/internal/calculator"
	"github.com/cosmoinvest/cosmo-calculators/internal/form"
	"github.com/cosmoinvest/cosmo-calculators/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Line is one rendered figure of a result panel.
type Line struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Present renders every figure of a result for display.
func Present(res calculator.Result) []Line {
	if res == nil {
		return nil
	}
	figures := res.Figures()
	lines := make([]Line, 0, len(figures))
	for _, f := range figures {
		lines = append(lines, Line{Key: f.Key, Label: f.Label, Value: Value(f)})
	}
	return lines
}

// Value renders a single figure according to its unit.
func Value(f calculator.Figure) string {
	if f.Unit == calculator.UnitYears {
		return format.Years(f.Value)
	}
	return format.Rupees(f.Value)
}

// PrettyFormat outputs a human-readable panel.
func PrettyFormat(w io.Writer, snap form.Snapshot) {
	fmt.Fprintf(w, "--- %s ---\n", snap.Kind.Title())
	if snap.State != form.Shown {
		fmt.Fprintf(w, "no result\n")
		return
	}
	for _, line := range Present(snap.Result) {
		fmt.Fprintf(w, "%-28s | %s\n", line.Label, line.Value)
	}
}

// CsvFormat outputs panels in comma-separated value format.
func CsvFormat(w io.Writer, snaps []form.Snapshot) {
	fmt.Fprintf(w, `"calculator","state","key","value"`+"\n")
	for _, snap := range snaps {
		if snap.State != form.Shown {
			fmt.Fprintf(w, `"%s","%s","",""`+"\n", snap.Kind, snap.State)
			continue
		}
		for _, f := range snap.Result.Figures() {
			fmt.Fprintf(w, `"%s","%s","%s","%.2f"`+"\n", snap.Kind, snap.State, f.Key, f.Value)
		}
	}
}

// PrettySchedule outputs a period breakdown as a table.
func PrettySchedule(w io.Writer, sched form.Schedule) {
	p := message.NewPrinter(language.English)
	switch {
	case len(sched.Installments) > 0:
		fmt.Fprintf(w, "Month | Payment       | Principal     | Interest      | Balance\n")
		fmt.Fprintf(w, "_____ | _____________ | _____________ | _____________ | _____________\n")
		for _, inst := range sched.Installments {
			_, _ = p.Fprintf(w, "%5d | %13.2f | %13.2f | %13.2f | %13.2f\n",
				inst.Month, inst.Payment, inst.Principal, inst.Interest, inst.RemainingPrincipal)
		}
	case len(sched.Years) > 0:
		fmt.Fprintf(w, "Year | Invested        | Value           | Growth\n")
		fmt.Fprintf(w, "____ | _______________ | _______________ | _______________\n")
		for _, y := range sched.Years {
			_, _ = p.Fprintf(w, "%4d | %15.2f | %15.2f | %15.2f\n", y.Year, y.Invested, y.Value, y.Growth)
		}
	default:
		fmt.Fprintf(w, "no schedule\n")
	}
}

// CsvSchedule outputs a period breakdown in comma-separated value format.
func CsvSchedule(w io.Writer, sched form.Schedule) {
	if len(sched.Installments) > 0 {
		fmt.Fprintf(w, `"month","payment","principal","interest","remaining principal"`+"\n")
		for _, inst := range sched.Installments {
			fmt.Fprintf(w, `"%d","%.2f","%.2f","%.2f","%.2f"`+"\n",
				inst.Month, inst.Payment, inst.Principal, inst.Interest, inst.RemainingPrincipal)
		}
		return
	}
	fmt.Fprintf(w, `"year","invested","value","growth"`+"\n")
	for _, y := range sched.Years {
		fmt.Fprintf(w, `"%d","%.2f","%.2f","%.2f"`+"\n", y.Year, y.Invested, y.Value, y.Growth)
	}
}

// CsvString returns the CSV rendering of panels.
func CsvString(snaps []form.Snapshot) string {
	var b strings.Builder
	CsvFormat(&b, snaps)
	return b.String()
}
