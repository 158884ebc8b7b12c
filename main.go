package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"star-electricals-server/config"
	"star-electricals-server/database"
	"star-electricals-server/jobs"
	"star-electricals-server/middleware"
	"star-electricals-server/routes"
	"star-electricals-server/services"
	ws "star-electricals-server/websocket"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	config.Load()

	// Initialize database (runs migrations)
	if err := database.Initialize(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	// Optional demo data for local development
	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(); err != nil {
			log.Printf("⚠️ Demo data seeding failed: %v", err)
		}
	}

	// Set Gin mode
	if config.AppConfig.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Disable automatic redirects for trailing slashes
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	// Security middleware stack
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.InputValidationMiddleware())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.CORSMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Star Electricals server is running",
			"time":    time.Now().UTC(),
		})
	})

	// Admin event feed hub
	eventHub := ws.NewHub()
	go eventHub.Run()
	routes.InitEventHub(eventHub)

	// API routes
	api := router.Group("/api/v1")
	{
		// Auth routes (no authentication required) - with strict rate limiting
		authRoutes := api.Group("/auth")
		authRoutes.Use(middleware.AuthRateLimitMiddleware())
		routes.RegisterAuthRoutes(authRoutes)

		// Public catalog routes
		routes.RegisterCategoryRoutes(api)
		routes.RegisterWorkerRoutes(api)
		routes.RegisterProductRoutes(api)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			routes.RegisterProtectedAuthRoutes(protected.Group("/auth"))
			routes.RegisterOrderRoutes(protected)
		}

		// Booking routes: the availability check is public, creation and
		// management require authentication
		routes.RegisterBookingRoutes(api, protected)

		// Admin authentication (no token required)
		adminAuth := api.Group("/admin/auth")
		adminAuth.Use(middleware.AuthRateLimitMiddleware())
		adminAuth.POST("/login", routes.AdminLogin)

		// Admin routes (protected with admin authentication)
		adminRoutes := api.Group("/admin")
		adminRoutes.Use(middleware.AdminAuthMiddleware())
		{
			adminRoutes.GET("/auth/me", routes.GetCurrentAdmin)
			adminRoutes.GET("/dashboard/stats", routes.GetDashboardStats)

			routes.RegisterAdminCategoryRoutes(adminRoutes)
			routes.RegisterAdminWorkerRoutes(adminRoutes)
			routes.RegisterAdminProductRoutes(adminRoutes)
			routes.RegisterAdminBookingRoutes(adminRoutes)
			routes.RegisterAdminOrderRoutes(adminRoutes)
		}

		// Live event feed for admin dashboards (token via query parameter)
		api.GET("/ws/admin",
			middleware.WebSocketAuthMiddleware(true),
			ws.HandleAdminFeed(eventHub))
	}

	// Start background jobs
	staleBookingJob := jobs.NewStaleBookingJob()
	staleBookingJob.Start()
	defer staleBookingJob.Stop()

	// Token cleanup job
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		jwtService := services.NewJWTService()
		for range ticker.C {
			if err := jwtService.CleanupExpiredTokens(); err != nil {
				log.Printf("❌ Token cleanup failed: %v", err)
			}
		}
	}()

	port := config.AppConfig.Server.Port
	log.Printf("Server starting on port %s", port)
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
