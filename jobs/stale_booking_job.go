package jobs

import (
	"log"
	"time"

	"star-electricals-server/config"
	"star-electricals-server/database"
	"star-electricals-server/models"
	"star-electricals-server/services"
)

// StaleBookingJob cancels Pending bookings whose day has passed without
// confirmation, releasing the worker's slot through the normal cancel path
// so the worker-status recomputation stays consistent.
type StaleBookingJob struct {
	bookings *services.BookingService
	stopChan chan bool
}

// NewStaleBookingJob creates a new stale booking job
func NewStaleBookingJob() *StaleBookingJob {
	return &StaleBookingJob{
		bookings: services.NewBookingService(),
		stopChan: make(chan bool),
	}
}

// Start begins the stale booking job
func (j *StaleBookingJob) Start() {
	go j.run()
	log.Println("🚀 Stale booking job started")
}

// Stop stops the stale booking job
func (j *StaleBookingJob) Stop() {
	j.stopChan <- true
	log.Println("🛑 Stale booking job stopped")
}

func (j *StaleBookingJob) run() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.cancelStaleBookings()
		case <-j.stopChan:
			return
		}
	}
}

// cancelStaleBookings cancels Pending bookings that sat unconfirmed past the
// grace window or whose booked day has already passed
func (j *StaleBookingJob) cancelStaleBookings() {
	today := models.NormalizeDate(time.Now())
	cutoff := time.Now().Add(-time.Duration(config.AppConfig.Store.StaleBookingMinutes) * time.Minute)

	var stale []models.Booking
	err := database.DB.
		Where("status = ? AND (date < ? OR created_at < ?)", models.BookingStatusPending, today, cutoff).
		Find(&stale).Error
	if err != nil {
		log.Printf("❌ Error checking stale bookings: %v", err)
		return
	}

	if len(stale) == 0 {
		return
	}

	log.Printf("⏰ Found %d stale pending bookings", len(stale))

	for _, booking := range stale {
		if _, err := j.bookings.CancelBooking(booking.ID, 0); err != nil {
			log.Printf("❌ Failed to cancel stale booking %d: %v", booking.ID, err)
			continue
		}
		log.Printf("✅ Stale booking %d cancelled", booking.ID)
	}
}
