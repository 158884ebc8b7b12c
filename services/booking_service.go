package services

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"star-electricals-server/database"
	"star-electricals-server/models"
)

// BookingService drives the booking state machine and keeps the worker's
// cached status consistent with the set of active bookings. All writes that
// touch both a booking and its worker run in one transaction, with the
// booking write applied before the worker recount.
type BookingService struct {
	availability *AvailabilityService
}

// NewBookingService creates a new booking service
func NewBookingService() *BookingService {
	return &BookingService{availability: NewAvailabilityService()}
}

// CreateBooking re-runs the availability check authoritatively (a client-side
// check moments earlier is never trusted) and persists the booking as
// Confirmed. Returns an unavailable result instead of a booking when the
// window is taken.
func (s *BookingService) CreateBooking(userID uint, req *models.BookingRequest) (*models.Booking, *AvailabilityResult, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, nil, &ValidationError{Message: "date must be in YYYY-MM-DD format"}
	}

	slot, err := models.NewTimeSlot(req.StartTime, req.EndTime, req.FullDay)
	if err != nil {
		return nil, nil, &ValidationError{Message: err.Error()}
	}

	var booking *models.Booking
	var result *AvailabilityResult

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var checkErr error
		result, checkErr = s.availability.checkWithDB(tx, req.WorkerID, date, slot)
		if checkErr != nil {
			return checkErr
		}
		if !result.Available {
			return nil
		}

		var category models.ServiceCategory
		if err := tx.First(&category, req.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return err
		}

		booking = &models.Booking{
			UserID:         userID,
			WorkerID:       req.WorkerID,
			CategoryID:     req.CategoryID,
			Date:           models.NormalizeDate(date),
			StartTime:      slot.StartTime(),
			EndTime:        slot.EndTime(),
			FullDay:        req.FullDay,
			Address:        req.Address,
			Phone:          req.Phone,
			AlternatePhone: req.AlternatePhone,
			Status:         models.BookingStatusConfirmed,
			Notes:          req.Notes,
		}
		if err := tx.Create(booking).Error; err != nil {
			return err
		}

		// The worker now has at least one active booking
		return tx.Model(&models.Worker{}).
			Where("id = ? AND status = ?", req.WorkerID, models.WorkerStatusAvailable).
			Update("status", models.WorkerStatusBusy).Error
	})
	if err != nil {
		return nil, nil, err
	}
	if !result.Available {
		return nil, result, nil
	}

	log.Printf("📅 Booking %d created for worker %d on %s %s-%s",
		booking.ID, booking.WorkerID, booking.Date.Format("2006-01-02"), booking.StartTime, booking.EndTime)
	return booking, result, nil
}

// CancelBooking moves a non-terminal booking to Cancelled and recomputes
// the worker's status. When ownerID is non-zero the booking must belong to
// that user.
func (s *BookingService) CancelBooking(bookingID uint, ownerID uint) (*models.Booking, error) {
	return s.transition(bookingID, ownerID, models.BookingStatusCancelled)
}

// UpdateStatus applies an admin-driven status transition. Moves into
// Completed or Cancelled trigger the worker recomputation.
func (s *BookingService) UpdateStatus(bookingID uint, next models.BookingStatus) (*models.Booking, error) {
	if !models.IsValidBookingStatus(next) {
		return nil, &ValidationError{Message: "unknown booking status: " + string(next)}
	}
	return s.transition(bookingID, 0, next)
}

func (s *BookingService) transition(bookingID uint, ownerID uint, next models.BookingStatus) (*models.Booking, error) {
	var booking models.Booking

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if ownerID != 0 && booking.UserID != ownerID {
			return ErrNotOwner
		}

		if !booking.Status.CanTransitionTo(next) {
			return &InvalidStateError{Resource: "Booking", Current: string(booking.Status)}
		}

		// Booking status must be durable before the recount below, or the
		// just-updated booking would be miscounted
		if err := tx.Model(&booking).Update("status", next).Error; err != nil {
			return err
		}
		booking.Status = next

		if next.IsTerminal() {
			return recomputeWorkerStatus(tx, booking.WorkerID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("📅 Booking %d moved to %s", booking.ID, booking.Status)
	return &booking, nil
}

// recomputeWorkerStatus derives the worker's cached status from the set of
// remaining active bookings. Workers on leave stay on leave until an admin
// clears it.
func recomputeWorkerStatus(tx *gorm.DB, workerID uint) error {
	var worker models.Worker
	if err := tx.First(&worker, workerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkerNotFound
		}
		return err
	}
	if worker.IsOnLeave() {
		return nil
	}

	var active int64
	err := tx.Model(&models.Booking{}).
		Where("worker_id = ? AND status NOT IN ?", workerID,
			[]models.BookingStatus{models.BookingStatusCompleted, models.BookingStatusCancelled}).
		Count(&active).Error
	if err != nil {
		return err
	}

	return tx.Model(&worker).Update("status", DeriveWorkerStatus(active)).Error
}

// DeriveWorkerStatus maps an active-booking count onto the cached status
func DeriveWorkerStatus(activeBookings int64) models.WorkerStatus {
	if activeBookings > 0 {
		return models.WorkerStatusBusy
	}
	return models.WorkerStatusAvailable
}
