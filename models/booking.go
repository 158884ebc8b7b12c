package models

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "Pending"
	BookingStatusConfirmed  BookingStatus = "Confirmed"
	BookingStatusInProgress BookingStatus = "In Progress"
	BookingStatusCompleted  BookingStatus = "Completed"
	BookingStatusCancelled  BookingStatus = "Cancelled"
)

// Booking reserves a worker for a time window on one calendar day. For a
// given worker and date the non-Cancelled bookings must have pairwise
// non-overlapping [StartTime, EndTime) windows — Completed bookings still
// occupy their slot, only Cancelled ones are released.
type Booking struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	UserID         uint            `json:"user_id" gorm:"not null;index"`
	WorkerID       uint            `json:"worker_id" gorm:"not null;index"`
	CategoryID     uint            `json:"category_id" gorm:"not null"`
	Date           time.Time       `json:"date" gorm:"not null;index"` // truncated to midnight
	StartTime      string          `json:"start_time" gorm:"size:5;not null"`
	EndTime        string          `json:"end_time" gorm:"size:5;not null"`
	FullDay        bool            `json:"full_day" gorm:"default:false"`
	Address        string          `json:"address" gorm:"size:500;not null"`
	Phone          string          `json:"phone" gorm:"size:20;not null"`
	AlternatePhone *string         `json:"alternate_phone" gorm:"size:20"`
	Status         BookingStatus   `json:"status" gorm:"type:varchar(20);not null;default:'Confirmed';check:status IN ('Pending','Confirmed','In Progress','Completed','Cancelled')"`
	Notes          *string         `json:"notes" gorm:"size:1000"`
	CreatedAt      time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	User     User            `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Worker   Worker          `json:"worker,omitempty" gorm:"foreignKey:WorkerID"`
	Category ServiceCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

// TableName specifies the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}

// IsTerminal reports whether no further transition is permitted
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// IsActive reports whether the booking still occupies the worker for
// status-recomputation purposes (Completed and Cancelled do not)
func (b *Booking) IsActive() bool {
	return b.Status != BookingStatusCompleted && b.Status != BookingStatusCancelled
}

// Slot returns the booking's time window, canonicalizing full-day bookings
func (b *Booking) Slot() (TimeSlot, error) {
	return NewTimeSlot(b.StartTime, b.EndTime, b.FullDay)
}

// CanTransitionTo validates a forward move through the booking state machine
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch next {
	case BookingStatusCancelled:
		return true
	case BookingStatusConfirmed:
		return s == BookingStatusPending
	case BookingStatusInProgress:
		return s == BookingStatusConfirmed
	case BookingStatusCompleted:
		return s == BookingStatusInProgress
	default:
		return false
	}
}

// IsValidBookingStatus checks a status string against the known set
func IsValidBookingStatus(status BookingStatus) bool {
	switch status {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// BookingRequest represents the request structure for creating a booking
type BookingRequest struct {
	WorkerID       uint    `json:"worker_id" binding:"required"`
	CategoryID     uint    `json:"category_id" binding:"required"`
	Date           string  `json:"date" binding:"required"` // "2006-01-02"
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	FullDay        bool    `json:"full_day"`
	Address        string  `json:"address" binding:"required"`
	Phone          string  `json:"phone" binding:"required"`
	AlternatePhone *string `json:"alternate_phone"`
	Notes          *string `json:"notes"`
}

// AvailabilityRequest represents the request structure for availability checks
type AvailabilityRequest struct {
	WorkerID  uint   `json:"worker_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	FullDay   bool   `json:"full_day"`
}
