package dispatch

import (
	"fmt"
	"sort"
	"time"

	"github.com/cosmoinvest/cosmo-calculators/internal/calculator"
	"github.com/cosmoinvest/cosmo-calculators/internal/form"
	"github.com/cosmoinvest/cosmo-calculators/pkg/constants"
	"go.uber.org/zap"
)

// Observer receives a panel after every recalculation or reset.
type Observer func(form.Snapshot)

// Dispatcher routes field changes to the calculator that owns them.
type Dispatcher struct {
	logger    *zap.Logger
	form      *form.Form
	debouncer *Debouncer
	observer  Observer
}

// New creates a dispatcher over f. A non-positive delay uses the default
// quiet period.
func New(logger *zap.Logger, f *form.Form, delay time.Duration, observer Observer) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if delay <= 0 {
		delay = constants.DefaultDebounceDelay
	}
	if observer == nil {
		observer = func(form.Snapshot) {}
	}
	return &Dispatcher{
		logger:    logger,
		form:      f,
		debouncer: NewDebouncer(delay),
		observer:  observer,
	}
}

// Input records a field change and schedules its calculator.
func (d *Dispatcher) Input(field, value string) error {
	kind, err := d.form.SetField(field, value)
	if err != nil {
		return fmt.Errorf("failed to apply input: %w", err)
	}

	d.debouncer.Schedule(string(kind), func() { d.recalculate(kind) })
	return nil
}

func (d *Dispatcher) recalculate(kind calculator.Kind) {
	snap := d.form.Recalculate(kind)
	d.logger.Debug(fmt.Sprintf("recalculated %s", kind),
		zap.String("op", "dispatch.recalculate"),
		zap.String("state", string(snap.State)),
	)
	d.observer(snap)
}

// Reset drops any pending calculation for the calculator and clears it.
func (d *Dispatcher) Reset(kind calculator.Kind) form.Snapshot {
	d.debouncer.Cancel(string(kind))
	snap := d.form.Reset(kind)
	d.observer(snap)
	return snap
}

// Flush runs every pending calculation now, in page order.
func (d *Dispatcher) Flush() {
	groups := d.debouncer.Groups()
	sort.Slice(groups, func(i, j int) bool { return pageOrder(groups[i]) < pageOrder(groups[j]) })
	for _, g := range groups {
		d.debouncer.Flush(g)
	}
}

// Close cancels pending calculations.
func (d *Dispatcher) Close() {
	d.debouncer.Stop()
}

func pageOrder(group string) int {
	for i, k := range calculator.Kinds() {
		if string(k) == group {
			return i
		}
	}
	return len(calculator.Kinds())
}
