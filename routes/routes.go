package routes

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"star-electricals-server/services"
	ws "star-electricals-server/websocket"
)

// eventHub broadcasts booking/order events to connected admin dashboards.
// Nil when the hub is disabled; publishEvent tolerates that.
var eventHub *ws.Hub

// InitEventHub wires the admin event hub into the route handlers
func InitEventHub(hub *ws.Hub) {
	eventHub = hub
}

func publishEvent(eventType string, data interface{}) {
	if eventHub == nil {
		return
	}
	eventHub.Publish(eventType, data)
}

// respondServiceError maps domain errors onto HTTP responses. Anything
// unrecognized is a 500 with a generic message.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrWorkerNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": err.Error(),
		})
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "Access denied",
		})
	case services.IsInvalidState(err), services.IsInsufficientStock(err), services.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
	default:
		log.Printf("❌ Unhandled service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error",
		})
	}
}
