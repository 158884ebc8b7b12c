package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatOrderNumber(t *testing.T) {
	day := time.Date(2026, 8, 28, 13, 45, 0, 0, time.Local)

	assert.Equal(t, "ORD-260828-0001", FormatOrderNumber("ORD", day, 1))
	assert.Equal(t, "ORD-260828-0042", FormatOrderNumber("ORD", day, 42))
	assert.Equal(t, "ORD-260828-12345", FormatOrderNumber("ORD", day, 12345))

	newYear := time.Date(2027, 1, 1, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "STE-270101-0007", FormatOrderNumber("STE", newYear, 7))
}
