// Package clock provides the time-provider seam the scheduler is built
// against, so callers can substitute deterministic time in tests without
// the scheduler itself taking on calendar arithmetic.
package clock

import (
	"sync"
	"time"
)

// Clock supplies the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// RealClock is the default Clock, backed by time.Now.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time { return time.Now() }

// Frozen is a Clock that returns a controllable instant. Useful in tests
// that need to control exactly what "now" means without sleeping; a
// background goroutine (the cleanup worker) may call Now() concurrently
// with a test calling Set or Advance, so access is mutex-guarded rather
// than a bare field.
type Frozen struct {
	mu sync.Mutex
	at time.Time
}

// NewFrozen creates a Frozen clock fixed at at.
func NewFrozen(at time.Time) *Frozen {
	return &Frozen{at: at}
}

// Now returns the current frozen instant.
func (f *Frozen) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.at
}

// Set moves the frozen instant to at.
func (f *Frozen) Set(at time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.at = at
}

// Advance moves the frozen instant forward by d.
func (f *Frozen) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.at = f.at.Add(d)
}
