// Package dispatch re-runs calculators as their inputs change. Changes are
// debounced per calculator so that only the last edit in a burst triggers a
// calculation.
package dispatch

import (
	"sync"
	"time"
)

// Debouncer runs at most one deferred task per group. Scheduling a group
// again replaces whatever was pending for it.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	pending map[string]*task
	stopped bool
}

type task struct {
	timer *time.Timer
	fn    func()
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay, pending: make(map[string]*task)}
}

// Delay returns the quiet period.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Schedule defers fn until the group has been quiet for the delay.
func (d *Debouncer) Schedule(group string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if prev, ok := d.pending[group]; ok {
		prev.timer.Stop()
	}

	t := &task{fn: fn}
	t.timer = time.AfterFunc(d.delay, func() { d.fire(group, t) })
	d.pending[group] = t
}

// fire runs t unless it was superseded or cancelled after its timer elapsed.
func (d *Debouncer) fire(group string, t *task) {
	d.mu.Lock()
	if cur, ok := d.pending[group]; !ok || cur != t {
		d.mu.Unlock()
		return
	}
	delete(d.pending, group)
	d.mu.Unlock()

	t.fn()
}

// Cancel drops the pending task of a group, if any.
func (d *Debouncer) Cancel(group string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	t, ok := d.pending[group]
	if !ok {
		return false
	}
	t.timer.Stop()
	delete(d.pending, group)
	return true
}

// Flush runs the pending task of a group now instead of waiting.
func (d *Debouncer) Flush(group string) bool {
	d.mu.Lock()
	t, ok := d.pending[group]
	if ok {
		t.timer.Stop()
		delete(d.pending, group)
	}
	d.mu.Unlock()

	if ok {
		t.fn()
	}
	return ok
}

// Pending reports whether a group has a task waiting.
func (d *Debouncer) Pending(group string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.pending[group]
	return ok
}

// Groups returns the groups with a task waiting.
func (d *Debouncer) Groups() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	groups := make([]string, 0, len(d.pending))
	for g := range d.pending {
		groups = append(groups, g)
	}
	return groups
}

// Stop cancels everything pending and ignores later Schedule calls.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	for group, t := range d.pending {
		t.timer.Stop()
		delete(d.pending, group)
	}
}
