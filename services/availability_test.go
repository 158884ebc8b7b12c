package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"star-electricals-server/models"
)

func slotFor(t *testing.T, start, end string) models.TimeSlot {
	t.Helper()
	slot, err := models.NewTimeSlot(start, end, false)
	require.NoError(t, err)
	return slot
}

func TestFindConflict(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, StartTime: "09:00", EndTime: "11:00", Status: models.BookingStatusConfirmed},
		{ID: 2, StartTime: "14:00", EndTime: "16:00", Status: models.BookingStatusCompleted},
	}

	// Free gap between the two bookings
	assert.Nil(t, FindConflict(bookings, slotFor(t, "11:00", "14:00")))

	// Overlap with the first
	conflict := FindConflict(bookings, slotFor(t, "10:00", "12:00"))
	require.NotNil(t, conflict)
	assert.Equal(t, uint(1), conflict.ID)

	// Completed bookings still occupy their slot
	conflict = FindConflict(bookings, slotFor(t, "15:00", "17:00"))
	require.NotNil(t, conflict)
	assert.Equal(t, uint(2), conflict.ID)

	// Shared endpoints do not conflict
	assert.Nil(t, FindConflict(bookings, slotFor(t, "16:00", "18:00")))
	assert.Nil(t, FindConflict(bookings, slotFor(t, "08:00", "09:00")))
}

func TestFindConflictFullDay(t *testing.T) {
	bookings := []models.Booking{
		{ID: 7, FullDay: true, Status: models.BookingStatusConfirmed},
	}

	// Anything inside the 09:00-18:00 window conflicts with a full-day booking
	assert.NotNil(t, FindConflict(bookings, slotFor(t, "10:00", "11:00")))
	assert.NotNil(t, FindConflict(bookings, slotFor(t, "17:59", "19:00")))

	// Outside the working window is fine
	assert.Nil(t, FindConflict(bookings, slotFor(t, "07:00", "09:00")))
	assert.Nil(t, FindConflict(bookings, slotFor(t, "18:00", "20:00")))
}

func TestFindConflictMalformedBooking(t *testing.T) {
	// A booking with unparseable stored times blocks the slot instead of
	// being silently skipped
	bookings := []models.Booking{
		{ID: 3, StartTime: "not-a-time", EndTime: "11:00", Status: models.BookingStatusConfirmed},
	}

	conflict := FindConflict(bookings, slotFor(t, "13:00", "14:00"))
	require.NotNil(t, conflict)
	assert.Equal(t, uint(3), conflict.ID)
}

func TestFindConflictEmpty(t *testing.T) {
	assert.Nil(t, FindConflict(nil, slotFor(t, "09:00", "18:00")))
	assert.Nil(t, FindConflict([]models.Booking{}, slotFor(t, "09:00", "18:00")))
}
