package routes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"star-electricals-server/database"
	"star-electricals-server/models"
	"star-electricals-server/services"
)

// RegisterWorkerRoutes registers public worker catalog routes
func RegisterWorkerRoutes(router *gin.RouterGroup) {
	router.GET("/workers", getWorkers)
	router.GET("/workers/:id", getWorker)
}

// RegisterAdminWorkerRoutes registers admin worker management routes
func RegisterAdminWorkerRoutes(admin *gin.RouterGroup) {
	admin.POST("/workers", createWorker)
	admin.PUT("/workers/:id", updateWorker)
	admin.DELETE("/workers/:id", deleteWorker)
	admin.PATCH("/workers/:id/status", updateWorkerStatus)
}

func getWorkers(c *gin.Context) {
	categoryID := c.Query("category_id")
	status := c.Query("status")
	limit := 50

	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	query := database.DB.Preload("Category")

	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var workers []models.Worker
	if err := query.Limit(limit).Order("name").Find(&workers).Error; err != nil {
		log.Printf("Error fetching workers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch workers",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"workers": workers,
	})
}

func getWorker(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid worker ID",
		})
		return
	}

	var worker models.Worker
	if err := database.DB.Preload("Category").First(&worker, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Worker not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch worker",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"worker":  worker,
	})
}

// ===== ADMIN HANDLERS =====

func createWorker(c *gin.Context) {
	var req models.WorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	// Workers must belong to an existing category
	var category models.ServiceCategory
	if err := database.DB.First(&category, req.CategoryID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Service category does not exist",
		})
		return
	}

	worker := models.Worker{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		CategoryID:  req.CategoryID,
		FeesPerDay:  req.FeesPerDay,
		Status:      models.WorkerStatusAvailable,
	}

	if err := database.DB.Create(&worker).Error; err != nil {
		log.Printf("❌ Failed to create worker: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create worker",
		})
		return
	}

	database.DB.Preload("Category").First(&worker, worker.ID)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Worker created successfully",
		"worker":  worker,
	})
}

func updateWorker(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid worker ID",
		})
		return
	}

	var req models.WorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	var worker models.Worker
	if err := database.DB.First(&worker, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Worker not found",
		})
		return
	}

	var category models.ServiceCategory
	if err := database.DB.First(&category, req.CategoryID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Service category does not exist",
		})
		return
	}

	worker.Name = req.Name
	worker.PhoneNumber = req.PhoneNumber
	worker.Email = req.Email
	worker.CategoryID = req.CategoryID
	worker.FeesPerDay = req.FeesPerDay

	if err := database.DB.Save(&worker).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update worker",
		})
		return
	}

	database.DB.Preload("Category").First(&worker, worker.ID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Worker updated successfully",
		"worker":  worker,
	})
}

func deleteWorker(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid worker ID",
		})
		return
	}

	// Workers with active bookings keep their history; soft delete only
	var active int64
	database.DB.Model(&models.Booking{}).
		Where("worker_id = ? AND status NOT IN ?", id,
			[]models.BookingStatus{models.BookingStatusCompleted, models.BookingStatusCancelled}).
		Count(&active)
	if active > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Worker has active bookings and cannot be removed",
		})
		return
	}

	result := database.DB.Delete(&models.Worker{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to delete worker",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Worker not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Worker removed successfully",
	})
}

// updateWorkerStatus lets admins put a worker on leave or clear it. Moving
// a worker off leave re-derives Busy/Available from their active bookings.
func updateWorkerStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid worker ID",
		})
		return
	}

	var req struct {
		Status models.WorkerStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !models.IsValidWorkerStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "status must be one of Available, Busy, On Leave",
		})
		return
	}

	var worker models.Worker
	if err := database.DB.First(&worker, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Worker not found",
		})
		return
	}

	status := req.Status
	if status != models.WorkerStatusOnLeave {
		// Busy/Available is derived, not chosen
		var active int64
		database.DB.Model(&models.Booking{}).
			Where("worker_id = ? AND status NOT IN ?", id,
				[]models.BookingStatus{models.BookingStatusCompleted, models.BookingStatusCancelled}).
			Count(&active)
		status = services.DeriveWorkerStatus(active)
	}

	if err := database.DB.Model(&worker).Update("status", status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update worker status",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Worker status updated",
		"status":  status,
	})
}
