package routes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"star-electricals-server/config"
	"star-electricals-server/database"
	"star-electricals-server/models"
)

// RegisterProductRoutes registers public product catalog routes
func RegisterProductRoutes(router *gin.RouterGroup) {
	router.GET("/products", getProducts)
	router.GET("/products/:id", getProduct)
}

// RegisterAdminProductRoutes registers admin product management routes
func RegisterAdminProductRoutes(admin *gin.RouterGroup) {
	admin.POST("/products", createProduct)
	admin.PUT("/products/:id", updateProduct)
	admin.DELETE("/products/:id", deleteProduct)
	admin.PATCH("/products/:id/stock", updateProductStock)
	admin.GET("/products/low-stock", getLowStockProducts)
}

func getProducts(c *gin.Context) {
	brand := c.Query("brand")
	productType := c.Query("type")
	search := c.Query("search")
	limit := 50

	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	query := database.DB.Where("is_active = ?", true)

	if brand != "" {
		query = query.Where("brand = ?", brand)
	}
	if productType != "" {
		query = query.Where("type = ?", productType)
	}
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var products []models.Product
	if err := query.Limit(limit).Order("name").Find(&products).Error; err != nil {
		log.Printf("Error fetching products: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": products,
	})
}

func getProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid product ID",
		})
		return
	}

	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch product",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"product": product,
	})
}

// ===== ADMIN HANDLERS =====

func createProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	var existing models.Product
	if err := database.DB.Where("product_code = ?", req.ProductCode).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"message": "A product with this code already exists",
		})
		return
	}

	minStock := req.MinStock
	if minStock == 0 {
		minStock = config.AppConfig.Store.DefaultMinStock
	}

	product := models.Product{
		ProductCode:    req.ProductCode,
		Name:           req.Name,
		Brand:          req.Brand,
		Type:           req.Type,
		Price:          req.Price,
		Discount:       req.Discount,
		Stock:          req.Stock,
		MinStock:       minStock,
		Description:    req.Description,
		WarrantyMonths: req.WarrantyMonths,
		ImageURL:       req.ImageURL,
		IsActive:       true,
	}

	if err := database.DB.Create(&product).Error; err != nil {
		log.Printf("❌ Failed to create product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create product",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Product created successfully",
		"product": product,
	})
}

func updateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid product ID",
		})
		return
	}

	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Product not found",
		})
		return
	}

	// Stock is deliberately not updated here; use the stock endpoint
	product.ProductCode = req.ProductCode
	product.Name = req.Name
	product.Brand = req.Brand
	product.Type = req.Type
	product.Price = req.Price
	product.Discount = req.Discount
	product.MinStock = req.MinStock
	product.Description = req.Description
	product.WarrantyMonths = req.WarrantyMonths
	product.ImageURL = req.ImageURL

	if err := database.DB.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update product",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product updated successfully",
		"product": product,
	})
}

func deleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid product ID",
		})
		return
	}

	result := database.DB.Delete(&models.Product{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to delete product",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product deleted successfully",
	})
}

// updateProductStock is the deliberate escape hatch from the stock ledger:
// admins may overwrite stock directly for corrections and deliveries
func updateProductStock(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid product ID",
		})
		return
	}

	var req struct {
		Stock *int `json:"stock" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || *req.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "stock must be a non-negative integer",
		})
		return
	}

	result := database.DB.Model(&models.Product{}).Where("id = ?", id).Update("stock", *req.Stock)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update stock",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Product not found",
		})
		return
	}

	log.Printf("📦 Stock for product %d set to %d by admin %d", id, *req.Stock, c.GetUint("user_id"))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Stock updated",
		"stock":   *req.Stock,
	})
}

func getLowStockProducts(c *gin.Context) {
	var products []models.Product
	err := database.DB.
		Where("is_active = ? AND stock <= min_stock", true).
		Order("stock").
		Find(&products).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch low-stock products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": products,
	})
}
