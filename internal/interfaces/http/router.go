package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"jstore/internal/application/order/usecases"
	"jstore/internal/infrastructure/config"
	"jstore/internal/infrastructure/content"
	"jstore/internal/infrastructure/payment"
	"jstore/internal/infrastructure/repository"
	"jstore/internal/interfaces/http/handlers"
	"jstore/internal/interfaces/http/middleware"
	"jstore/internal/interfaces/http/routes"
	sharedDB "jstore/internal/shared/db"
	"jstore/internal/shared/lock"
	"jstore/internal/shared/logger"
	"jstore/internal/shared/services/markdown"
)

// Router represents the HTTP router configuration
type Router struct {
	engine              *gin.Engine
	orderHandler        *handlers.OrderHandler
	notificationHandler *handlers.NotificationHandler
	rateLimit           gin.HandlerFunc
	allowedOrigins      []string
	logger              logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	orderRepo := repository.NewOrderRepository(db)
	txManager := sharedDB.NewTransactionManager(db)
	gateway := payment.NewMercadoPagoClient(&cfg.MercadoPago, log.Named("mercadopago"))
	tutorial := content.NewTutorialProvider(cfg.Download.TutorialPath, markdown.NewService(), log.Named("tutorial"))

	notifyURL := fmt.Sprintf("%s/payment-notifications", cfg.Server.BaseURL)

	initiatePurchaseUC := usecases.NewInitiatePurchaseUseCase(orderRepo, gateway, txManager, usecases.PurchaseConfig{
		ProductName:     cfg.Product.Name,
		PriceCents:      cfg.Product.PriceCents,
		Currency:        cfg.Product.Currency,
		FrontendBaseURL: cfg.Server.FrontendBaseURL,
		NotifyURL:       notifyURL,
	}, log)

	handleNotificationUC := usecases.NewHandleNotificationUseCase(
		orderRepo, gateway, txManager, lock.NewKeyedMutex(),
		usecases.ReconcileConfig{AllowStatusRegression: cfg.Payment.AllowStatusRegression},
		log,
	)

	getOrderStatusUC := usecases.NewGetOrderStatusUseCase(orderRepo, log)
	getDownloadUC := usecases.NewGetDownloadUseCase(orderRepo, tutorial, usecases.DownloadConfig{
		InstallerURL: cfg.Download.InstallerURL,
	}, log)

	orderHandler := handlers.NewOrderHandler(initiatePurchaseUC, getOrderStatusUC, getDownloadUC, log)
	notificationHandler := handlers.NewNotificationHandler(handleNotificationUC, log)

	var rateLimit gin.HandlerFunc
	if cfg.RateLimit.Enabled && cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter := middleware.NewRateLimiter(redisClient,
			cfg.RateLimit.Requests,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second)
		rateLimit = limiter.Limit()
	}

	return &Router{
		engine:              engine,
		orderHandler:        orderHandler,
		notificationHandler: notificationHandler,
		rateLimit:           rateLimit,
		allowedOrigins:      cfg.Server.AllowedOrigins,
		logger:              log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", handlers.Health)

	routes.SetupOrderRoutes(r.engine, &routes.OrderRouteConfig{
		OrderHandler: r.orderHandler,
		RateLimit:    r.rateLimit,
	})
	routes.SetupNotificationRoutes(r.engine, &routes.NotificationRouteConfig{
		NotificationHandler: r.notificationHandler,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
