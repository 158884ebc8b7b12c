package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{OrderStatusPending, OrderStatusProcessing, true},
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusShipped, OrderStatusDelivered, true},

		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusProcessing, OrderStatusCancelled, true},
		{OrderStatusShipped, OrderStatusCancelled, true},

		// No skipping forward
		{OrderStatusPending, OrderStatusShipped, false},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusProcessing, OrderStatusDelivered, false},

		// Delivered is final: no cancel, no further moves
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusCompleted, false},

		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestOrderStatusIsCancellable(t *testing.T) {
	assert.True(t, OrderStatusPending.IsCancellable())
	assert.True(t, OrderStatusProcessing.IsCancellable())
	assert.True(t, OrderStatusShipped.IsCancellable())

	assert.False(t, OrderStatusDelivered.IsCancellable())
	assert.False(t, OrderStatusCompleted.IsCancellable())
	assert.False(t, OrderStatusCancelled.IsCancellable())
}

func TestOrderStatusIsTerminal(t *testing.T) {
	assert.True(t, OrderStatusCompleted.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	// Delivered blocks transitions but stays non-terminal for reporting
	assert.False(t, OrderStatusDelivered.IsTerminal())
	assert.False(t, OrderStatusPending.IsTerminal())
}

func TestItemTotal(t *testing.T) {
	assert.InDelta(t, 200.0, ItemTotal(100, 0, 2), 0.001)
	assert.InDelta(t, 180.0, ItemTotal(100, 10, 2), 0.001)
	assert.InDelta(t, 0.0, ItemTotal(100, 100, 3), 0.001)
	assert.InDelta(t, 89.0, ItemTotal(89, 0, 1), 0.001)
	assert.InDelta(t, 6799.15, ItemTotal(7999, 15, 1), 0.001)
}

func TestIsValidOrderStatus(t *testing.T) {
	for _, status := range []OrderStatus{OrderStatusPending, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCompleted, OrderStatusCancelled} {
		assert.True(t, IsValidOrderStatus(status))
	}
	assert.False(t, IsValidOrderStatus("Refunded"))
	assert.False(t, IsValidOrderStatus(""))
}
