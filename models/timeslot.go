package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Full-day bookings canonicalize to a fixed working window.
const (
	FullDayStart = "09:00"
	FullDayEnd   = "18:00"
)

// TimeSlot represents a half-open time window [Start, End) on a single
// calendar day, expressed as minutes since midnight.
type TimeSlot struct {
	Start int
	End   int
}

// ParseClock converts a 24-hour "HH:MM" string to minutes since midnight.
func ParseClock(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", value)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", value, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", value, err)
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", value)
	}

	return hours*60 + minutes, nil
}

// NewTimeSlot builds a slot from "HH:MM" start/end strings. A full-day
// request canonicalizes to the fixed working window regardless of any
// start/end values supplied alongside it.
func NewTimeSlot(startTime, endTime string, fullDay bool) (TimeSlot, error) {
	if fullDay {
		startTime = FullDayStart
		endTime = FullDayEnd
	}

	start, err := ParseClock(startTime)
	if err != nil {
		return TimeSlot{}, err
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return TimeSlot{}, err
	}

	if start >= end {
		return TimeSlot{}, fmt.Errorf("invalid time slot: start %s must be before end %s", startTime, endTime)
	}

	return TimeSlot{Start: start, End: end}, nil
}

// Overlaps reports whether two half-open windows intersect. Windows that
// share an exact endpoint (one ends where the other starts) do not overlap.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.Start < other.End && other.Start < s.End
}

// StartTime returns the slot start formatted as "HH:MM".
func (s TimeSlot) StartTime() string {
	return fmt.Sprintf("%02d:%02d", s.Start/60, s.Start%60)
}

// EndTime returns the slot end formatted as "HH:MM".
func (s TimeSlot) EndTime() string {
	return fmt.Sprintf("%02d:%02d", s.End/60, s.End%60)
}

// NormalizeDate truncates a timestamp to midnight so bookings group by
// calendar day. Times are local wall-clock; there is no timezone handling.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
