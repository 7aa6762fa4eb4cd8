// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *SchedulerError
		expected string
	}{
		{
			name: "error with details",
			err: &SchedulerError{
				Code:    ErrorCodeUnknownRoom,
				Message: "room is not registered",
				Details: "MX",
			},
			expected: "[UNKNOWN_ROOM] room is not registered: MX",
		},
		{
			name: "error without details",
			err: &SchedulerError{
				Code:    ErrorCodeNoRoomAvailable,
				Message: "no registered room is free for the requested slot",
			},
			expected: "[NO_ROOM_AVAILABLE] no registered room is free for the requested slot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestSchedulerError_Unwrap(t *testing.T) {
	cause := stderrors.New("underlying failure")
	err := NewSchedulerErrorWithCause(ErrorCodeInvalidSlot, "bad slot", cause)

	assert.Equal(t, cause, err.Unwrap())
}

func TestSchedulerError_Is(t *testing.T) {
	err1 := NewSchedulerError(ErrorCodeNoRoomAvailable, "conflict 1")
	err2 := NewSchedulerError(ErrorCodeNoRoomAvailable, "conflict 2")
	err3 := NewSchedulerError(ErrorCodeUnknownRoom, "unknown")

	assert.True(t, err1.Is(err2))
	assert.False(t, err1.Is(err3))
	assert.False(t, err1.Is(stderrors.New("plain error")))
}

func TestSchedulerError_IsRetryable(t *testing.T) {
	tests := []struct {
		name      string
		code      ErrorCode
		retryable bool
	}{
		{"no room available", ErrorCodeNoRoomAvailable, true},
		{"unknown room", ErrorCodeUnknownRoom, true},
		{"invalid slot", ErrorCodeInvalidSlot, false},
		{"shutdown in progress", ErrorCodeShutdownInProgress, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewSchedulerError(tt.code, "test message")
			assert.Equal(t, tt.retryable, err.IsRetryable())
		})
	}
}

func TestNewSchedulerError(t *testing.T) {
	err := NewSchedulerError(ErrorCodeNoRoomAvailable, "no free room")

	assert.Equal(t, ErrorCodeNoRoomAvailable, err.Code)
	assert.Equal(t, "no free room", err.Message)
	assert.Equal(t, CategoryBooking, err.Category)
	assert.True(t, err.Retryable)
	assert.False(t, err.Timestamp.IsZero())
}

func TestNewSchedulerErrorWithCause(t *testing.T) {
	cause := stderrors.New("original error")
	err := NewSchedulerErrorWithCause(ErrorCodeInvalidSlot, "slot error", cause)

	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, cause, err.Unwrap())
}

func TestNoRoomAvailable(t *testing.T) {
	err := NoRoomAvailable()
	assert.Equal(t, ErrorCodeNoRoomAvailable, err.Code)
	assert.Equal(t, CategoryBooking, err.Category)
	assert.True(t, err.Retryable)
}

func TestUnknownRoom(t *testing.T) {
	err := UnknownRoom("MX")
	assert.Equal(t, ErrorCodeUnknownRoom, err.Code)
	assert.Equal(t, "MX", err.Details)
	assert.True(t, err.Retryable)
}

func TestInvalidSlot(t *testing.T) {
	err := InvalidSlot("duration must be non-negative")
	assert.Equal(t, ErrorCodeInvalidSlot, err.Code)
	assert.Equal(t, CategoryProgrammer, err.Category)
	assert.False(t, err.Retryable)
	assert.Contains(t, err.Error(), "duration must be non-negative")
}

func TestShutdownInProgress(t *testing.T) {
	err := ShutdownInProgress()
	assert.Equal(t, ErrorCodeShutdownInProgress, err.Code)
	assert.Equal(t, CategoryLifecycle, err.Category)
	assert.False(t, err.Retryable)
}

func TestGetErrorCategory(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		category ErrorCategory
	}{
		{ErrorCodeNoRoomAvailable, CategoryBooking},
		{ErrorCodeUnknownRoom, CategoryBooking},
		{ErrorCodeInvalidSlot, CategoryProgrammer},
		{ErrorCodeShutdownInProgress, CategoryLifecycle},
		{ErrorCodeUnknown, CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.category, getErrorCategory(tt.code))
		})
	}
}
