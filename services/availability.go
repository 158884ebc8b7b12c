package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"star-electricals-server/database"
	"star-electricals-server/models"
)

// ReasonAlreadyBooked is returned when a proposed window collides with an
// existing booking.
const ReasonAlreadyBooked = "Worker is already booked during this time"

// ReasonOnLeave is returned when the worker is blocked regardless of date.
const ReasonOnLeave = "Worker is on leave"

// AvailabilityResult is the outcome of an availability check. Unavailable
// is a normal answer, not an error.
type AvailabilityResult struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// AvailabilityService decides whether a worker can be booked for a window.
// The check is advisory when called from the check-availability endpoint;
// BookingService re-runs it inside the creation transaction.
type AvailabilityService struct{}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService() *AvailabilityService {
	return &AvailabilityService{}
}

// CheckAvailability loads the worker and its same-day bookings and applies
// the overlap rules using the default DB handle.
func (s *AvailabilityService) CheckAvailability(workerID uint, date time.Time, slot models.TimeSlot) (*AvailabilityResult, error) {
	return s.checkWithDB(database.DB, workerID, date, slot)
}

// checkWithDB runs the availability decision against the given handle so
// booking creation can reuse it inside a transaction.
func (s *AvailabilityService) checkWithDB(db *gorm.DB, workerID uint, date time.Time, slot models.TimeSlot) (*AvailabilityResult, error) {
	var worker models.Worker
	if err := db.First(&worker, workerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}

	// Leave is a blanket block, not date-scoped
	if worker.IsOnLeave() {
		return &AvailabilityResult{Available: false, Reason: ReasonOnLeave}, nil
	}

	bookings, err := bookingsForDay(db, workerID, date)
	if err != nil {
		return nil, err
	}

	if conflict := FindConflict(bookings, slot); conflict != nil {
		return &AvailabilityResult{Available: false, Reason: ReasonAlreadyBooked}, nil
	}

	return &AvailabilityResult{Available: true}, nil
}

// bookingsForDay loads a worker's bookings for one calendar day, excluding
// only Cancelled ones — a Completed booking genuinely consumed its slot.
func bookingsForDay(db *gorm.DB, workerID uint, date time.Time) ([]models.Booking, error) {
	day := models.NormalizeDate(date)

	var bookings []models.Booking
	err := db.
		Where("worker_id = ? AND date = ? AND status <> ?", workerID, day, models.BookingStatusCancelled).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindConflict returns the first booking whose window overlaps the proposed
// slot, or nil when the slot is free. Bookings with malformed stored times
// are treated as occupying their slot rather than silently ignored.
func FindConflict(bookings []models.Booking, slot models.TimeSlot) *models.Booking {
	for i := range bookings {
		existing, err := bookings[i].Slot()
		if err != nil {
			return &bookings[i]
		}
		if slot.Overlaps(existing) {
			return &bookings[i]
		}
	}
	return nil
}
