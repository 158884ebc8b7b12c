package models

import (
	"time"

	"gorm.io/gorm"
)

// WorkerStatus tracks whether a worker can currently take bookings.
type WorkerStatus string

const (
	WorkerStatusAvailable WorkerStatus = "Available"
	WorkerStatusBusy      WorkerStatus = "Busy"
	WorkerStatusOnLeave   WorkerStatus = "On Leave"
)

// Worker represents a field technician employed by the shop. Status is a
// cached view of "does this worker have any active booking" and is
// recomputed on every booking transition; On Leave is set by admins and
// blocks all bookings regardless of date.
type Worker struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"size:255;not null"`
	PhoneNumber string          `json:"phone_number" gorm:"size:20;not null"`
	Email       *string         `json:"email" gorm:"size:255"`
	CategoryID  uint            `json:"category_id" gorm:"not null;index"`
	Category    ServiceCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	FeesPerDay  float64         `json:"fees_per_day" gorm:"type:decimal(10,2);not null"`
	Status      WorkerStatus    `json:"status" gorm:"type:varchar(20);not null;default:'Available';check:status IN ('Available','Busy','On Leave')"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `json:"deleted_at,omitempty" gorm:"index"`

	// Relationships
	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:WorkerID"`
}

// WorkerRequest represents the request structure for creating/updating workers
type WorkerRequest struct {
	Name        string  `json:"name" binding:"required"`
	PhoneNumber string  `json:"phone_number" binding:"required"`
	Email       *string `json:"email"`
	CategoryID  uint    `json:"category_id" binding:"required"`
	FeesPerDay  float64 `json:"fees_per_day" binding:"required"`
}

// TableName specifies the table name for the Worker model
func (Worker) TableName() string {
	return "workers"
}

// IsOnLeave checks if the worker is blocked from all bookings
func (w *Worker) IsOnLeave() bool {
	return w.Status == WorkerStatusOnLeave
}

// IsValidWorkerStatus checks a status string against the known set
func IsValidWorkerStatus(status WorkerStatus) bool {
	switch status {
	case WorkerStatusAvailable, WorkerStatusBusy, WorkerStatusOnLeave:
		return true
	default:
		return false
	}
}
