// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

package roomsched

import (
	"time"

	"github.com/kjartan/roomsched/pkg/clock"
	"github.com/kjartan/roomsched/pkg/logging"
	"github.com/kjartan/roomsched/pkg/metrics"
)

// SchedulerOption configures a Scheduler at construction time.
type SchedulerOption func(*Scheduler)

// WithClock overrides the time provider the scheduler and its cleanup
// worker use. Tests substitute a clock.Frozen to control "now" without
// sleeping.
func WithClock(c clock.Clock) SchedulerOption {
	return func(s *Scheduler) {
		s.clock = c
	}
}

// WithLogger overrides the scheduler's structured logger.
func WithLogger(logger logging.Logger) SchedulerOption {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// WithMetrics overrides the scheduler's metrics collector.
func WithMetrics(collector metrics.Collector) SchedulerOption {
	return func(s *Scheduler) {
		s.metrics = collector
	}
}

// WithCleanupPollFloor sets the minimum duration the cleanup worker will
// wait for between iterations, even when the heap top is already due.
// Guards against a busy loop when many bookings expire at nearly the same
// instant.
func WithCleanupPollFloor(d time.Duration) SchedulerOption {
	return func(s *Scheduler) {
		s.pollFloor = d
	}
}
