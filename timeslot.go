// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

package roomsched

import (
	"time"

	roomerrors "github.com/kjartan/roomsched/pkg/errors"
)

// TimeSlot is an immutable (start, duration) pair. End is derived, not
// stored, so two slots built from equivalent start+duration values compare
// equal componentwise.
type TimeSlot struct {
	start    time.Time
	duration time.Duration
}

// NewTimeSlot builds a TimeSlot from an absolute start time and a duration.
// A negative duration, or a start+duration that overflows time.Time's
// representable range, is a programmer error surfaced as InvalidSlot.
func NewTimeSlot(start time.Time, duration time.Duration) (TimeSlot, error) {
	if duration < 0 {
		return TimeSlot{}, roomerrors.InvalidSlot("duration must be non-negative")
	}
	// time.Time.Add saturates instead of wrapping, so an overflow shows up
	// as an end that lies less than duration after start.
	end := start.Add(duration)
	if end.Sub(start) != duration {
		return TimeSlot{}, roomerrors.InvalidSlot("start + duration overflows")
	}
	return TimeSlot{start: start, duration: duration}, nil
}

// NewTimeSlotFromCalendar builds a TimeSlot from calendar fields in loc,
// the Go analogue of constructing from year/month/day/hour/min/sec.
func NewTimeSlotFromCalendar(year int, month time.Month, day, hour, min, sec int, loc *time.Location, duration time.Duration) (TimeSlot, error) {
	start := time.Date(year, month, day, hour, min, sec, 0, loc)
	return NewTimeSlot(start, duration)
}

// Start returns the slot's start instant.
func (s TimeSlot) Start() time.Time { return s.start }

// Duration returns the slot's length.
func (s TimeSlot) Duration() time.Duration { return s.duration }

// End returns start + duration.
func (s TimeSlot) End() time.Time { return s.start.Add(s.duration) }

// Equal reports componentwise equality.
func (s TimeSlot) Equal(other TimeSlot) bool {
	return s.start.Equal(other.start) && s.duration == other.duration
}
