// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

package roomsched

import "github.com/google/uuid"

// Booking is the opaque token returned on a successful reservation and
// consumed by CancelBooking. ID is a log-correlation aid only; it plays no
// part in a Booking's identity — CancelBooking matches on (Room, Slot).
type Booking struct {
	Room Room
	Slot TimeSlot
	ID   uuid.UUID
}

// NewBooking builds a Booking, assigning it a fresh correlation ID.
func NewBooking(room Room, slot TimeSlot) Booking {
	return Booking{Room: room, Slot: slot, ID: uuid.New()}
}
