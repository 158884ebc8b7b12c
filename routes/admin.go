package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"star-electricals-server/database"
	"star-electricals-server/models"
	"star-electricals-server/services"
)

// AdminLogin handles admin login. Same credential flow as the user login,
// but rejects non-admin accounts up front.
func AdminLogin(c *gin.Context) {
	var req struct {
		PhoneNumber string `json:"phone_number" binding:"required"`
		Password    string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	var user models.User
	if err := database.DB.Where("phone_number = ?", req.PhoneNumber).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	jwtService := services.NewJWTService()
	if !jwtService.CheckPassword(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !user.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}

	if !user.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"error": "Account is inactive"})
		return
	}

	tokens, err := jwtService.GenerateTokenPair(&user, c.GetHeader("X-Device-ID"), c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    user,
		"tokens":  tokens,
	})
}

// GetCurrentAdmin returns the authenticated admin's profile
func GetCurrentAdmin(c *gin.Context) {
	userValue, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    userValue,
	})
}

// GetDashboardStats returns dashboard statistics
func GetDashboardStats(c *gin.Context) {
	var stats struct {
		TotalUsers        int64   `json:"total_users"`
		TotalWorkers      int64   `json:"total_workers"`
		AvailableWorkers  int64   `json:"available_workers"`
		WorkersOnLeave    int64   `json:"workers_on_leave"`
		TotalBookings     int64   `json:"total_bookings"`
		ActiveBookings    int64   `json:"active_bookings"`
		CompletedBookings int64   `json:"completed_bookings"`
		TotalOrders       int64   `json:"total_orders"`
		PendingOrders     int64   `json:"pending_orders"`
		CancelledOrders   int64   `json:"cancelled_orders"`
		TotalProducts     int64   `json:"total_products"`
		LowStockProducts  int64   `json:"low_stock_products"`
		TotalRevenue      float64 `json:"total_revenue"`
		MonthlyRevenue    float64 `json:"monthly_revenue"`
	}

	database.DB.Model(&models.User{}).Where("role = ?", models.RoleCustomer).Count(&stats.TotalUsers)

	database.DB.Model(&models.Worker{}).Count(&stats.TotalWorkers)
	database.DB.Model(&models.Worker{}).Where("status = ?", models.WorkerStatusAvailable).Count(&stats.AvailableWorkers)
	database.DB.Model(&models.Worker{}).Where("status = ?", models.WorkerStatusOnLeave).Count(&stats.WorkersOnLeave)

	database.DB.Model(&models.Booking{}).Count(&stats.TotalBookings)
	database.DB.Model(&models.Booking{}).
		Where("status NOT IN ?", []models.BookingStatus{models.BookingStatusCompleted, models.BookingStatusCancelled}).
		Count(&stats.ActiveBookings)
	database.DB.Model(&models.Booking{}).Where("status = ?", models.BookingStatusCompleted).Count(&stats.CompletedBookings)

	database.DB.Model(&models.Order{}).Count(&stats.TotalOrders)
	database.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusPending).Count(&stats.PendingOrders)
	database.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusCancelled).Count(&stats.CancelledOrders)

	database.DB.Model(&models.Product{}).Count(&stats.TotalProducts)
	database.DB.Model(&models.Product{}).Where("stock <= min_stock").Count(&stats.LowStockProducts)

	// Cancelled orders never contributed revenue
	database.DB.Model(&models.Order{}).
		Where("status <> ?", models.OrderStatusCancelled).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.TotalRevenue)

	monthStart := time.Date(time.Now().Year(), time.Now().Month(), 1, 0, 0, 0, 0, time.Now().Location())
	database.DB.Model(&models.Order{}).
		Where("status <> ? AND created_at >= ?", models.OrderStatusCancelled, monthStart).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.MonthlyRevenue)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}
