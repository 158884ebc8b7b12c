package services

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the domain services. Routes map these onto
// HTTP statuses; anything not in this list surfaces as a 500.
var (
	ErrWorkerNotFound   = errors.New("worker not found")
	ErrCategoryNotFound = errors.New("service category not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrNotOwner         = errors.New("resource belongs to another user")
)

// InvalidStateError reports an attempt to transition a booking or order
// that is already in a state forbidding the move.
type InvalidStateError struct {
	Resource string // "Booking" or "Order"
	Current  string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s is already %s", e.Resource, e.Current)
}

// IsInvalidState reports whether err wraps an InvalidStateError
func IsInvalidState(err error) bool {
	var ise *InvalidStateError
	return errors.As(err, &ise)
}

// InsufficientStockError reports an order line requesting more units than
// the product currently has.
type InsufficientStockError struct {
	ProductID   uint
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}

// IsInsufficientStock reports whether err wraps an InsufficientStockError
func IsInsufficientStock(err error) bool {
	var ise *InsufficientStockError
	return errors.As(err, &ise)
}

// ValidationError reports a request that failed domain-level validation
// (bad clock strings, unknown statuses, empty windows).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err wraps a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
