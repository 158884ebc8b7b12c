package routes

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"star-electricals-server/database"
	"star-electricals-server/models"
	"star-electricals-server/services"
)

// RegisterBookingRoutes registers public and user-facing booking routes
func RegisterBookingRoutes(public *gin.RouterGroup, protected *gin.RouterGroup) {
	// The pre-booking check is advisory; creation re-runs it authoritatively
	public.POST("/bookings/check-availability", checkAvailability)

	protected.POST("/bookings", createBooking)
	protected.GET("/bookings", getMyBookings)
	protected.GET("/bookings/:id", getBooking)
	protected.PATCH("/bookings/:id/cancel", cancelMyBooking)
}

// RegisterAdminBookingRoutes registers admin booking management routes
func RegisterAdminBookingRoutes(admin *gin.RouterGroup) {
	admin.GET("/bookings", getAllBookings)
	admin.PATCH("/bookings/:id/status", updateBookingStatus)
	admin.PATCH("/bookings/:id/cancel", cancelBookingAsAdmin)
}

func checkAvailability(c *gin.Context) {
	var req models.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "date must be in YYYY-MM-DD format",
		})
		return
	}

	slot, err := models.NewTimeSlot(req.StartTime, req.EndTime, req.FullDay)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	result, err := services.NewAvailabilityService().CheckAvailability(req.WorkerID, date, slot)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// Unavailable is a normal answer, not a failure
	response := gin.H{
		"success":   true,
		"available": result.Available,
	}
	if result.Reason != "" {
		response["message"] = result.Reason
	}
	c.JSON(http.StatusOK, response)
}

func createBooking(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	booking, result, err := services.NewBookingService().CreateBooking(userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if booking == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"available": false,
			"message":   result.Reason,
		})
		return
	}

	publishEvent("booking_created", booking)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking confirmed",
		"booking": booking,
	})
}

func getMyBookings(c *gin.Context) {
	userID := c.GetUint("user_id")

	var bookings []models.Booking
	err := database.DB.
		Preload("Worker").
		Preload("Category").
		Where("user_id = ?", userID).
		Order("date DESC, start_time DESC").
		Find(&bookings).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch bookings",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"bookings": bookings,
	})
}

func getBooking(c *gin.Context) {
	userID := c.GetUint("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid booking ID",
		})
		return
	}

	var booking models.Booking
	if err := database.DB.Preload("Worker").Preload("Category").First(&booking, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch booking",
		})
		return
	}

	if booking.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "Access denied",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"booking": booking,
	})
}

func cancelMyBooking(c *gin.Context) {
	userID := c.GetUint("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid booking ID",
		})
		return
	}

	booking, err := services.NewBookingService().CancelBooking(uint(id), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	publishEvent("booking_cancelled", booking)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking cancelled",
		"booking": booking,
	})
}

// ===== ADMIN HANDLERS =====

func getAllBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	status := c.Query("status")
	workerID := c.Query("worker_id")

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}
	offset := (page - 1) * limit

	query := database.DB.Model(&models.Booking{}).
		Preload("User").
		Preload("Worker").
		Preload("Category")

	if status != "" {
		query = query.Where("status = ?", status)
	}
	if workerID != "" {
		query = query.Where("worker_id = ?", workerID)
	}

	var total int64
	query.Count(&total)

	var bookings []models.Booking
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch bookings",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"bookings": bookings,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

func updateBookingStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid booking ID",
		})
		return
	}

	var req struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	booking, err := services.NewBookingService().UpdateStatus(uint(id), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	publishEvent("booking_status_changed", booking)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking status updated",
		"booking": booking,
	})
}

func cancelBookingAsAdmin(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid booking ID",
		})
		return
	}

	// ownerID 0 skips the ownership check
	booking, err := services.NewBookingService().CancelBooking(uint(id), 0)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	publishEvent("booking_cancelled", booking)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking cancelled",
		"booking": booking,
	})
}
