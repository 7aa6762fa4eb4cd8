// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

package roomsched

import (
	"container/heap"
	"sync"
	"time"

	"github.com/kjartan/roomsched/internal/intervaltree"
	"github.com/kjartan/roomsched/pkg/clock"
	roomerrors "github.com/kjartan/roomsched/pkg/errors"
	"github.com/kjartan/roomsched/pkg/logging"
	"github.com/kjartan/roomsched/pkg/metrics"
)

// Scheduler is the concurrent meeting-room scheduler. It owns a room
// registry, an interval index keyed by booking start time, a min-heap of
// pending end-times, and a background CleanupWorker that reclaims expired
// bookings. All shared state is guarded by a single reader/writer lock;
// client goroutines may call Scheduler methods concurrently without
// additional synchronization.
type Scheduler struct {
	mu sync.RWMutex

	rooms    map[string]Room
	index    *intervaltree.Index[time.Time, string]
	endTimes endTimeHeap

	clock     clock.Clock
	logger    logging.Logger
	metrics   metrics.Collector
	pollFloor time.Duration

	closed bool
	worker *cleanupWorker
}

// NewScheduler creates a Scheduler and starts its cleanup worker. Callers
// must call Close when finished, mirroring the reference's destructor.
func NewScheduler(opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		rooms:     make(map[string]Room),
		index:     intervaltree.New[time.Time, string](),
		clock:     clock.RealClock{},
		logger:    logging.NoOpLogger{},
		metrics:   metrics.NoOpCollector{},
		pollFloor: time.Millisecond,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.worker = newCleanupWorker(s)
	s.worker.start()

	return s
}

// RegisterRoom registers room under its name, overwriting any existing
// registration with the same name. Room values are copied; the caller's
// original may be discarded freely.
func (s *Scheduler) RegisterRoom(room Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[room.Name] = room
}

// RequestRoom books slot against the first registered room, in
// implementation-defined order, that has no conflicting booking. It
// returns NoRoomAvailable if every room conflicts, or ShutdownInProgress
// if the scheduler has already been closed.
//
// The conflict scan and the insert happen under a single write-lock
// critical section (the TOCTOU-safe option the scheduler's invariants
// require), rather than re-validating after a lock upgrade: booking
// throughput here is bound by tree operations, not by read concurrency.
func (s *Scheduler) RequestRoom(slot TimeSlot) (*Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, roomerrors.ShutdownInProgress()
	}

	s.metrics.RecordBookingAttempt("")

	conflicting := s.conflictingNamesLocked(slot)

	var room *Room
	for name, r := range s.rooms {
		if !conflicting[name] {
			picked := r
			room = &picked
			break
		}
	}

	if room == nil {
		s.logger.Debug("no room available", "slot_start", slot.Start())
		s.metrics.RecordConflict("")
		return nil, roomerrors.NoRoomAvailable()
	}

	booking := s.bookLocked(*room, slot)

	s.logger.Info("booking created", "booking_id", booking.ID, "room", logging.Sanitize(room.Name))
	return &booking, nil
}

// RequestExplicitRoom books slot against the named room only. It returns
// UnknownRoom if name was never registered, or NoRoomAvailable if the room
// conflicts with slot.
func (s *Scheduler) RequestExplicitRoom(name string, slot TimeSlot) (*Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, roomerrors.ShutdownInProgress()
	}

	s.metrics.RecordBookingAttempt(name)

	room, ok := s.rooms[name]
	if !ok {
		s.logger.Debug("explicit room unknown", "room", logging.Sanitize(name))
		return nil, roomerrors.UnknownRoom(name)
	}

	conflicting := s.conflictingNamesLocked(slot)
	if conflicting[name] {
		s.logger.Debug("explicit room conflicted", "room", logging.Sanitize(name), "slot_start", slot.Start())
		s.metrics.RecordConflict(name)
		return nil, roomerrors.NoRoomAvailable()
	}

	booking := s.bookLocked(room, slot)

	s.logger.Info("explicit booking created", "booking_id", booking.ID, "room", logging.Sanitize(room.Name))
	return &booking, nil
}

// CancelBooking removes booking's interval from the index. A booking that
// does not exist in the index (already cancelled, or never inserted) is a
// silent no-op. The corresponding endTimes heap entry is left in place;
// the cleanup worker tolerates stale entries.
func (s *Scheduler) CancelBooking(booking Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return roomerrors.ShutdownInProgress()
	}

	payload := booking.Room.Name
	s.index.Remove(booking.Slot.Start(), booking.Slot.End(), &payload)
	s.metrics.RecordCancellation(booking.Room.Name)
	s.logger.Info("booking cancelled", "booking_id", booking.ID, "room", logging.Sanitize(booking.Room.Name))
	return nil
}

// Close signals the cleanup worker to stop and joins it. It is idempotent:
// calling Close more than once is safe and returns nil on every call after
// the first. RequestRoom, RequestExplicitRoom and CancelBooking issued after
// Close returns are rejected with ShutdownInProgress; RegisterRoom and Stats
// do not check for shutdown.
func (s *Scheduler) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	s.worker.stop()
	return nil
}

// Stats returns a snapshot of the scheduler's booking/conflict/purge
// counters.
func (s *Scheduler) Stats() *metrics.Stats {
	return s.metrics.GetStats()
}

// bookLocked inserts slot's interval under room's name, pushes its end-time
// onto the heap, and notifies the cleanup worker when the push transitions
// endTimes from empty to non-empty or pre-empts the current minimum.
// Callers must hold s.mu for writing.
func (s *Scheduler) bookLocked(room Room, slot TimeSlot) Booking {
	wasEmpty := len(s.endTimes) == 0
	var prevMin time.Time
	if !wasEmpty {
		prevMin = s.endTimes.peek()
	}

	s.index.Insert(slot.Start(), slot.End(), room.Name)
	heap.Push(&s.endTimes, slot.End())

	restart := wasEmpty || slot.End().Before(prevMin)

	s.metrics.RecordBookingSuccess(room.Name, 0)

	if restart {
		s.worker.notify(wakeRestart)
	}

	return NewBooking(room, slot)
}

// conflictingNamesLocked returns the set of room names with a booking that
// overlaps slot. Callers must hold s.mu for reading or writing.
func (s *Scheduler) conflictingNamesLocked(slot TimeSlot) map[string]bool {
	entries := s.index.OverlappingIntervals(slot.Start(), slot.End())
	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		names[e.Payload] = true
	}
	return names
}
