package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusConfirmed, BookingStatusInProgress, true},
		{BookingStatusInProgress, BookingStatusCompleted, true},

		// Cancel is allowed from any non-terminal status
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusInProgress, BookingStatusCancelled, true},

		// No skipping forward
		{BookingStatusPending, BookingStatusInProgress, false},
		{BookingStatusPending, BookingStatusCompleted, false},
		{BookingStatusConfirmed, BookingStatusCompleted, false},

		// No moving backward
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusInProgress, BookingStatusConfirmed, false},

		// Terminal statuses are frozen
		{BookingStatusCompleted, BookingStatusCancelled, false},
		{BookingStatusCancelled, BookingStatusPending, false},
		{BookingStatusCancelled, BookingStatusConfirmed, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestBookingStatusIsTerminal(t *testing.T) {
	assert.True(t, BookingStatusCompleted.IsTerminal())
	assert.True(t, BookingStatusCancelled.IsTerminal())
	assert.False(t, BookingStatusPending.IsTerminal())
	assert.False(t, BookingStatusConfirmed.IsTerminal())
	assert.False(t, BookingStatusInProgress.IsTerminal())
}

func TestBookingIsActive(t *testing.T) {
	// Completed bookings still occupy their time slot for conflict checks,
	// but do not count toward the worker's Busy status
	for _, status := range []BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress} {
		b := Booking{Status: status}
		assert.True(t, b.IsActive(), "status %s", status)
	}
	for _, status := range []BookingStatus{BookingStatusCompleted, BookingStatusCancelled} {
		b := Booking{Status: status}
		assert.False(t, b.IsActive(), "status %s", status)
	}
}

func TestBookingSlot(t *testing.T) {
	b := Booking{StartTime: "10:00", EndTime: "12:00"}
	slot, err := b.Slot()
	require.NoError(t, err)
	assert.Equal(t, 600, slot.Start)
	assert.Equal(t, 720, slot.End)

	full := Booking{StartTime: "", EndTime: "", FullDay: true}
	slot, err = full.Slot()
	require.NoError(t, err)
	assert.Equal(t, FullDayStart, slot.StartTime())
	assert.Equal(t, FullDayEnd, slot.EndTime())

	bad := Booking{StartTime: "garbage", EndTime: "12:00"}
	_, err = bad.Slot()
	assert.Error(t, err)
}

func TestIsValidBookingStatus(t *testing.T) {
	for _, status := range []BookingStatus{BookingStatusPending, BookingStatusConfirmed,
		BookingStatusInProgress, BookingStatusCompleted, BookingStatusCancelled} {
		assert.True(t, IsValidBookingStatus(status))
	}
	assert.False(t, IsValidBookingStatus("Paused"))
	assert.False(t, IsValidBookingStatus(""))
}
