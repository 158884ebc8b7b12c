package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"star-electricals-server/database"
	"star-electricals-server/models"
	"star-electricals-server/services"
)

// RegisterOrderRoutes registers user-facing order routes
func RegisterOrderRoutes(protected *gin.RouterGroup) {
	protected.POST("/orders", createOrder)
	protected.GET("/orders", getMyOrders)
	protected.GET("/orders/:id", getOrder)
	protected.PATCH("/orders/:id/cancel", cancelMyOrder)
}

// RegisterAdminOrderRoutes registers admin order management routes
func RegisterAdminOrderRoutes(admin *gin.RouterGroup) {
	admin.GET("/orders", getAllOrders)
	admin.POST("/orders/bill", createBill)
	admin.PATCH("/orders/:id/status", updateOrderStatus)
	admin.PATCH("/orders/:id/cancel", cancelOrderAsAdmin)
}

func createOrder(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	order, err := services.NewOrderService().CreateOrder(userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	publishEvent("order_created", order)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Order placed successfully",
		"order":   order,
	})
}

func getMyOrders(c *gin.Context) {
	userID := c.GetUint("user_id")

	var orders []models.Order
	err := database.DB.
		Preload("Items").
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"orders":  orders,
	})
}

func getOrder(c *gin.Context) {
	userID := c.GetUint("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid order ID",
		})
		return
	}

	var order models.Order
	if err := database.DB.Preload("Items").Preload("Items.Product").First(&order, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Order not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch order",
		})
		return
	}

	if order.UserID == nil || *order.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "Access denied",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"order":   order,
	})
}

func cancelMyOrder(c *gin.Context) {
	userID := c.GetUint("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid order ID",
		})
		return
	}

	order, err := services.NewOrderService().CancelOrder(uint(id), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	publishEvent("order_cancelled", order)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order cancelled, stock restored",
		"order":   order,
	})
}

// ===== ADMIN HANDLERS =====

func getAllOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	status := c.Query("status")

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}
	offset := (page - 1) * limit

	query := database.DB.Model(&models.Order{}).
		Preload("User").
		Preload("Items").
		Preload("Items.Product")

	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var orders []models.Order
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"orders":  orders,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

// createBill handles walk-in (point-of-sale) orders: same stock ledger,
// but the order is created already fulfilled and paid
func createBill(c *gin.Context) {
	var req models.BillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	order, err := services.NewOrderService().CreateBill(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	publishEvent("order_created", order)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Bill created",
		"order":   order,
	})
}

func updateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid order ID",
		})
		return
	}

	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	order, err := services.NewOrderService().UpdateStatus(uint(id), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	publishEvent("order_status_changed", order)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order status updated",
		"order":   order,
	})
}

func cancelOrderAsAdmin(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid order ID",
		})
		return
	}

	order, err := services.NewOrderService().CancelOrder(uint(id), 0)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	publishEvent("order_cancelled", order)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order cancelled, stock restored",
		"order":   order,
	})
}
