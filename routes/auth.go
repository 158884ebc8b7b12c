package routes

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"star-electricals-server/database"
	"star-electricals-server/middleware"
	"star-electricals-server/models"
	"star-electricals-server/services"
	"star-electricals-server/utils"
)

// RegisterAuthRoutes registers authentication routes
func RegisterAuthRoutes(router *gin.RouterGroup) {
	jwtService := services.NewJWTService()

	router.POST("/signup", func(c *gin.Context) {
		var req struct {
			FullName        string `json:"full_name" binding:"required,min=2,max=100"`
			PhoneNumber     string `json:"phone_number" binding:"required"`
			Email           string `json:"email" binding:"omitempty,email"`
			Password        string `json:"password" binding:"required,min=8,max=128"`
			ConfirmPassword string `json:"confirm_password" binding:"required"`
		}

		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid request",
				"message": err.Error(),
			})
			return
		}

		req.FullName = middleware.SanitizeInput(req.FullName)
		req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)

		if !utils.ValidatePhoneNumber(req.PhoneNumber) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid phone number",
				"message": "Phone number must be 10-15 digits with an optional leading +",
			})
			return
		}

		if isStrong, problems := middleware.ValidatePasswordStrength(req.Password); !isStrong {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Weak password",
				"message": "Password does not meet security requirements",
				"details": problems,
			})
			return
		}

		if req.Password != req.ConfirmPassword {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Password mismatch",
				"message": "Passwords do not match",
			})
			return
		}

		var existingUser models.User
		if err := database.DB.Where("phone_number = ?", req.PhoneNumber).First(&existingUser).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{
				"error":   "User already exists",
				"message": "An account with this phone number already exists",
			})
			return
		}

		hashedPassword, err := jwtService.HashPassword(req.Password)
		if err != nil {
			log.Printf("❌ Password hashing failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Internal server error",
				"message": "Failed to process password",
			})
			return
		}

		user := models.User{
			FullName:     req.FullName,
			PhoneNumber:  req.PhoneNumber,
			PasswordHash: hashedPassword,
			Role:         models.RoleCustomer,
			IsActive:     true,
		}
		if req.Email != "" {
			user.Email = &req.Email
		}

		if err := database.DB.Create(&user).Error; err != nil {
			log.Printf("❌ Failed to create user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Internal server error",
				"message": "Failed to create account",
			})
			return
		}

		tokens, err := jwtService.GenerateTokenPair(&user, c.GetHeader("X-Device-ID"), c.Request.UserAgent(), c.ClientIP())
		if err != nil {
			log.Printf("❌ Token generation failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Internal server error",
				"message": "Account created but login failed, please sign in",
			})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Account created successfully",
			"user":    user,
			"tokens":  tokens,
		})
	})

	router.POST("/login", func(c *gin.Context) {
		var req struct {
			PhoneNumber string `json:"phone_number" binding:"required"`
			Password    string `json:"password" binding:"required"`
		}

		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid request",
				"message": err.Error(),
			})
			return
		}

		var user models.User
		if err := database.DB.Where("phone_number = ?", strings.TrimSpace(req.PhoneNumber)).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid credentials",
				"message": "Phone number or password is incorrect",
			})
			return
		}

		if !jwtService.CheckPassword(req.Password, user.PasswordHash) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid credentials",
				"message": "Phone number or password is incorrect",
			})
			return
		}

		if !user.IsActive {
			c.JSON(http.StatusForbidden, gin.H{
				"error":   "Account inactive",
				"message": "Your account has been deactivated",
			})
			return
		}

		tokens, err := jwtService.GenerateTokenPair(&user, c.GetHeader("X-Device-ID"), c.Request.UserAgent(), c.ClientIP())
		if err != nil {
			log.Printf("❌ Token generation failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Internal server error",
				"message": "Failed to generate tokens",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Login successful",
			"user":    user,
			"tokens":  tokens,
		})
	})

	router.POST("/refresh", func(c *gin.Context) {
		var req struct {
			RefreshToken string `json:"refresh_token" binding:"required"`
		}

		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid request",
				"message": err.Error(),
			})
			return
		}

		tokens, err := jwtService.RefreshAccessToken(req.RefreshToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid refresh token",
				"message": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"tokens":  tokens,
		})
	})

	router.POST("/logout", func(c *gin.Context) {
		var req struct {
			RefreshToken string `json:"refresh_token" binding:"required"`
		}

		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid request",
				"message": err.Error(),
			})
			return
		}

		if err := jwtService.RevokeRefreshToken(req.RefreshToken); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Logout failed",
				"message": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Logged out successfully",
		})
	})
}

// RegisterProtectedAuthRoutes registers auth routes that require a token
func RegisterProtectedAuthRoutes(router *gin.RouterGroup) {
	router.GET("/me", func(c *gin.Context) {
		userValue, exists := c.Get("user")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"user":    userValue,
		})
	})
}
