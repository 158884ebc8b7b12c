package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidStateError(t *testing.T) {
	err := &InvalidStateError{Resource: "Booking", Current: "Cancelled"}
	assert.Equal(t, "Booking is already Cancelled", err.Error())

	assert.True(t, IsInvalidState(err))
	assert.True(t, IsInvalidState(fmt.Errorf("transition failed: %w", err)))
	assert.False(t, IsInvalidState(ErrBookingNotFound))
	assert.False(t, IsInvalidState(nil))
}

func TestInsufficientStockError(t *testing.T) {
	err := &InsufficientStockError{ProductID: 9, ProductName: "Ceiling Fan", Requested: 5, Available: 2}
	assert.Equal(t, "insufficient stock for Ceiling Fan: requested 5, available 2", err.Error())

	assert.True(t, IsInsufficientStock(err))
	assert.True(t, IsInsufficientStock(fmt.Errorf("order failed: %w", err)))
	assert.False(t, IsInsufficientStock(ErrProductNotFound))
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Message: "invalid time slot"}
	assert.Equal(t, "invalid time slot", err.Error())

	assert.True(t, IsValidation(err))
	assert.False(t, IsValidation(ErrOrderNotFound))
}
