package form

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cosmoinvest/cosmo-calculators/internal/calculator"
	"go.uber.org/zap"
)

// State is the visibility of a calculator's result panel.
type State string

const (
	Hidden State = "hidden"
	Shown  State = "shown"
)

// ErrUnknownField is returned when a field name belongs to no calculator.
var ErrUnknownField = errors.New("unknown field")

// Snapshot is a copy of one panel at a point in time.
type Snapshot struct {
	Kind   calculator.Kind
	State  State
	Fields Fields
	Result calculator.Result
}

type panel struct {
	fields Fields
	state  State
	result calculator.Result
}

// Form holds every calculator panel. It is safe for concurrent use since
// debounced recalculations run on timer goroutines.
type Form struct {
	mu       sync.Mutex
	logger   *zap.Logger
	defaults Fields
	panels   map[calculator.Kind]*panel
}

// Option customizes a Form.
type Option func(*Form)

// WithDefault sets the text a field holds when its panel is cleared.
// Unknown fields are ignored.
func WithDefault(field, value string) Option {
	return func(f *Form) {
		if _, ok := KindForField(field); ok {
			f.defaults[field] = value
		}
	}
}

// New creates a form with every panel cleared and hidden.
func New(logger *zap.Logger, opts ...Option) *Form {
	if logger == nil {
		logger = zap.NewNop()
	}
	f := &Form{logger: logger, defaults: make(Fields), panels: make(map[calculator.Kind]*panel)}
	for name, value := range defaultValues {
		f.defaults[name] = value
	}
	for _, opt := range opts {
		opt(f)
	}
	for _, kind := range calculator.Kinds() {
		f.panels[kind] = &panel{fields: f.clearedFields(kind), state: Hidden}
	}
	return f
}

func (f *Form) clearedFields(kind calculator.Kind) Fields {
	fields := make(Fields, len(groups[kind]))
	for _, name := range groups[kind] {
		fields[name] = f.defaults[name]
	}
	return fields
}

// SetField stores the text of one input and returns the calculator it belongs
// to. It does not recalculate.
func (f *Form) SetField(name, value string) (calculator.Kind, error) {
	kind, ok := KindForField(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.panels[kind].fields[name] = value
	return kind, nil
}

// Recalculate runs validation and computation for a panel. A declined
// calculation hides the panel; there is no error state.
func (f *Form) Recalculate(kind calculator.Kind) Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.panels[kind]
	if !ok {
		return Snapshot{Kind: kind, State: Hidden}
	}

	previous := p.state
	if res, ok := Evaluate(kind, p.fields); ok {
		p.state = Shown
		p.result = res
	} else {
		p.state = Hidden
		p.result = nil
	}

	if previous != p.state {
		f.logger.Debug(fmt.Sprintf("panel %s changed from %s to %s", kind, previous, p.state),
			zap.String("op", "form.Recalculate"),
		)
	}
	return p.snapshot(kind)
}

// Reset clears a panel's inputs and hides its result. Fields with a default,
// such as the compounding frequency, return to it rather than to empty.
func (f *Form) Reset(kind calculator.Kind) Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.panels[kind]
	if !ok {
		return Snapshot{Kind: kind, State: Hidden}
	}
	p.fields = f.clearedFields(kind)
	p.state = Hidden
	p.result = nil

	f.logger.Debug(fmt.Sprintf("panel %s reset", kind),
		zap.String("op", "form.Reset"),
	)
	return p.snapshot(kind)
}

// Snapshot returns the current state of a panel.
func (f *Form) Snapshot(kind calculator.Kind) Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.panels[kind]
	if !ok {
		return Snapshot{Kind: kind, State: Hidden}
	}
	return p.snapshot(kind)
}

func (p *panel) snapshot(kind calculator.Kind) Snapshot {
	fields := make(Fields, len(p.fields))
	for k, v := range p.fields {
		fields[k] = v
	}
	return Snapshot{Kind: kind, State: p.state, Fields: fields, Result: p.result}
}
