package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"18:00", 1080, false},
		{"23:59", 1439, false},
		{" 10:30 ", 630, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"-1:00", 0, true},
		{"0900", 0, true},
		{"9", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
		} else {
			require.NoError(t, err, "input %q", tt.input)
			assert.Equal(t, tt.want, got, "input %q", tt.input)
		}
	}
}

func TestNewTimeSlot(t *testing.T) {
	slot, err := NewTimeSlot("10:00", "12:30", false)
	require.NoError(t, err)
	assert.Equal(t, 600, slot.Start)
	assert.Equal(t, 750, slot.End)

	// Full day overrides whatever times were supplied
	slot, err = NewTimeSlot("22:00", "23:00", true)
	require.NoError(t, err)
	assert.Equal(t, FullDayStart, slot.StartTime())
	assert.Equal(t, FullDayEnd, slot.EndTime())

	// Full day works with empty times too
	slot, err = NewTimeSlot("", "", true)
	require.NoError(t, err)
	assert.Equal(t, "09:00", slot.StartTime())
	assert.Equal(t, "18:00", slot.EndTime())

	// Zero-length and inverted slots are rejected
	_, err = NewTimeSlot("10:00", "10:00", false)
	assert.Error(t, err)
	_, err = NewTimeSlot("14:00", "10:00", false)
	assert.Error(t, err)
	_, err = NewTimeSlot("bad", "10:00", false)
	assert.Error(t, err)
}

func TestTimeSlotOverlaps(t *testing.T) {
	mustSlot := func(start, end string) TimeSlot {
		slot, err := NewTimeSlot(start, end, false)
		require.NoError(t, err)
		return slot
	}

	tests := []struct {
		name string
		a, b TimeSlot
		want bool
	}{
		{"back to back do not overlap", mustSlot("09:00", "10:00"), mustSlot("10:00", "11:00"), false},
		{"disjoint", mustSlot("09:00", "10:00"), mustSlot("14:00", "15:00"), false},
		{"partial overlap", mustSlot("09:00", "11:00"), mustSlot("10:00", "12:00"), true},
		{"contained", mustSlot("09:00", "18:00"), mustSlot("10:00", "11:00"), true},
		{"identical", mustSlot("10:00", "11:00"), mustSlot("10:00", "11:00"), true},
		{"one minute shared", mustSlot("09:00", "10:01"), mustSlot("10:00", "11:00"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Overlap is symmetric
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeSlotFormatting(t *testing.T) {
	slot := TimeSlot{Start: 545, End: 1085}
	assert.Equal(t, "09:05", slot.StartTime())
	assert.Equal(t, "18:05", slot.EndTime())
}

func TestNormalizeDate(t *testing.T) {
	in := time.Date(2026, 8, 28, 15, 42, 7, 123, time.Local)
	got := NormalizeDate(in)
	assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, time.Local), got)

	// Already-midnight timestamps pass through unchanged
	assert.Equal(t, got, NormalizeDate(got))
}
