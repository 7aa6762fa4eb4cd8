// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

/*
Package roomsched provides a concurrent meeting-room scheduler backed by an
augmented interval-tree index.

The scheduler tracks a registry of rooms and a set of active bookings, and
answers two questions efficiently: does a candidate time slot conflict with
anything already booked, and which bookings have expired and can be
reclaimed. A background worker handles the second question without being
asked.

# Installation

Install the library using Go modules:

	go get github.com/kjartan/roomsched

# Basic Usage

Create a scheduler, register rooms, and request bookings:

	import (
	    "fmt"
	    "time"

	    "github.com/kjartan/roomsched"
	)

	func main() {
	    s := roomsched.NewScheduler()
	    defer s.Close()

	    s.RegisterRoom(roomsched.NewRoom("atrium", 12))
	    s.RegisterRoom(roomsched.NewRoom("annex", 4))

	    slot, err := roomsched.NewTimeSlot(time.Now(), 30*time.Minute)
	    if err != nil {
	        panic(err)
	    }

	    booking, err := s.RequestRoom(slot)
	    if err != nil {
	        panic(err)
	    }
	    fmt.Printf("booked %s\n", booking.Room.Name)

	    _ = s.CancelBooking(*booking)
	}

# Architecture

The scheduler is built around three pieces:

 1. IntervalIndex (internal/intervaltree) — an augmented binary search tree
    keyed on slot start time, storing the maximum end time in each subtree
    so overlap queries prune whole branches instead of scanning every node.

 2. Scheduler — the public, concurrency-safe API. A single reader/writer
    lock guards the room registry, the interval index, and a min-heap of
    pending end times; conflict detection and insertion happen inside one
    critical section so two concurrent requests can never both win the
    same slot.

 3. cleanupWorker — a background goroutine that reclaims expired bookings
    from the index without client involvement, waking either when the
    earliest known end time elapses or when a new booking pre-empts it.

# Value Types

TimeSlot, Room, and Booking are immutable value types:

	slot, err := roomsched.NewTimeSlot(start, duration)
	room := roomsched.NewRoom("annex", 4)
	booking := roomsched.NewBooking(room, slot)

Two Rooms are equal iff their names match; two TimeSlots are equal
componentwise. A Booking's ID is a correlation aid for logs only — it is
never used to decide identity or overlap.

# Requesting Rooms

RequestRoom books the first registered room, in implementation-defined
order, that has no conflicting booking:

	booking, err := s.RequestRoom(slot)

RequestExplicitRoom books a specific room by name, failing with
UnknownRoom if it was never registered or NoRoomAvailable if it conflicts:

	booking, err := s.RequestExplicitRoom("annex", slot)

# Error Handling

Scheduler operations return a *errors.SchedulerError carrying a stable
Code, a Category, and a Retryable flag:

	booking, err := s.RequestRoom(slot)
	if err != nil {
	    var schedErr *errors.SchedulerError
	    if goerrors.As(err, &schedErr) {
	        if schedErr.IsRetryable() {
	            // back off and try again
	        }
	    }
	}

The four taxonomy members are NoRoomAvailable, UnknownRoom, InvalidSlot,
and ShutdownInProgress.

# Configuration

pkg/config reads scheduler-wide tuning from the environment:

  - ROOMSCHED_CLEANUP_POLL_FLOOR: minimum wait between cleanup passes
  - ROOMSCHED_DEBUG: enable verbose logging

Per-instance behavior is set through functional options instead:

	s := roomsched.NewScheduler(
	    roomsched.WithCleanupPollFloor(10*time.Millisecond),
	    roomsched.WithLogger(myLogger),
	    roomsched.WithMetrics(myCollector),
	    roomsched.WithClock(myClock),
	)

# Observability

Stats returns a snapshot of booking, conflict, cancellation, and purge
counters:

	stats := s.Stats()
	fmt.Printf("bookings: %d, conflicts: %d\n",
	    stats.TotalBookingSuccess, stats.TotalConflicts)

Pass WithMetrics(metrics.NoOpCollector{}) to disable collection entirely.

# Thread Safety

All Scheduler methods are safe to call concurrently from multiple
goroutines. The cleanup worker runs independently and never blocks
callers for longer than the room-registry lock requires.

# License

This library is licensed under the Apache License 2.0. See LICENSE for
details.
*/
package roomsched
