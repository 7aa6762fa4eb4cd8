package config

import "errors"

var (
	// ErrInvalidCleanupPollFloor is returned when the configured poll
	// floor is negative.
	ErrInvalidCleanupPollFloor = errors.New("cleanup poll floor must be greater than or equal to 0")
)
