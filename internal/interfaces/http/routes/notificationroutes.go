package routes

import (
	"github.com/gin-gonic/gin"

	"jstore/internal/interfaces/http/handlers"
)

// NotificationRouteConfig holds dependencies for webhook routes.
type NotificationRouteConfig struct {
	NotificationHandler *handlers.NotificationHandler
}

// SetupNotificationRoutes configures the payment provider webhook route.
// No rate limiting here: throttling provider retries only delays
// reconciliation.
func SetupNotificationRoutes(engine *gin.Engine, cfg *NotificationRouteConfig) {
	engine.POST("/payment-notifications", cfg.NotificationHandler.Receive)
}
