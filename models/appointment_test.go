package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	pending := &Appointment{Status: StatusPending}
	assert.NoError(t, pending.CanTransition(StatusConfirmed))
	assert.NoError(t, pending.CanTransition(StatusCancelled))
	assert.NoError(t, pending.CanTransition(StatusCompleted))

	confirmed := &Appointment{Status: StatusConfirmed}
	assert.NoError(t, confirmed.CanTransition(StatusCompleted))
	assert.NoError(t, confirmed.CanTransition(StatusCancelled))
	assert.Error(t, confirmed.CanTransition(StatusPending))

	completed := &Appointment{Status: StatusCompleted}
	assert.Error(t, completed.CanTransition(StatusCancelled))
	cancelled := &Appointment{Status: StatusCancelled}
	assert.Error(t, cancelled.CanTransition(StatusConfirmed))

	assert.True(t, completed.IsTerminal())
	assert.True(t, cancelled.IsTerminal())
	assert.False(t, pending.IsTerminal())
}
