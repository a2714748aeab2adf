package routes

import (
	"github.com/gin-gonic/gin"

	"jstore/internal/interfaces/http/handlers"
)

// OrderRouteConfig holds dependencies for order routes.
type OrderRouteConfig struct {
	OrderHandler *handlers.OrderHandler
	RateLimit    gin.HandlerFunc
}

// SetupOrderRoutes configures the storefront-facing order routes.
func SetupOrderRoutes(engine *gin.Engine, cfg *OrderRouteConfig) {
	purchase := engine.Group("/purchase")
	if cfg.RateLimit != nil {
		purchase.Use(cfg.RateLimit)
	}
	{
		purchase.POST("", cfg.OrderHandler.InitiatePurchase)
	}

	orders := engine.Group("/orders")
	{
		orders.GET("/:id/status", cfg.OrderHandler.GetOrderStatus)
		orders.GET("/:id/download", cfg.OrderHandler.GetDownload)
	}
}
