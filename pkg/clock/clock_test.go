// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	before := time.Now()
	got := RealClock{}.Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestFrozen_Now(t *testing.T) {
	at := time.Date(2023, time.November, 28, 15, 30, 0, 0, time.UTC)
	f := NewFrozen(at)

	assert.True(t, f.Now().Equal(at))
	assert.True(t, f.Now().Equal(at), "repeated calls must return the same instant")
}

func TestFrozen_Set(t *testing.T) {
	f := NewFrozen(time.Unix(0, 0))
	next := time.Unix(1000, 0)

	f.Set(next)
	assert.True(t, f.Now().Equal(next))
}

func TestFrozen_Advance(t *testing.T) {
	start := time.Unix(0, 0)
	f := NewFrozen(start)

	f.Advance(time.Hour)
	assert.True(t, f.Now().Equal(start.Add(time.Hour)))
}

var _ Clock = RealClock{}
var _ Clock = (*Frozen)(nil)
