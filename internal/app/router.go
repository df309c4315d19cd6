package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Abinaya503/my-cab-payment/internal/handler"
	"github.com/Abinaya503/my-cab-payment/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	RideHandler    *handler.RideHandler
	PaymentHandler *handler.PaymentHandler
	ReceiptHandler *handler.ReceiptHandler
	MetricsHandler http.Handler
	RedisClient    *redis.Client // nil disables idempotency keys
	NewRelicApp    *newrelic.Application
	Logger         *zap.Logger
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	if deps.RedisClient != nil {
		router.Use(middleware.IdempotencyMiddleware(deps.RedisClient, logger))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if deps.MetricsHandler != nil {
		router.GET("/metrics", gin.WrapH(deps.MetricsHandler))
	}

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Ride routes.
		rides := v1.Group("/rides")
		{
			rides.GET("", deps.RideHandler.GetAll)
			rides.GET("/:id", deps.RideHandler.GetRide)
			rides.GET("/:id/fare", deps.RideHandler.GetFare)
			rides.GET("/:id/upi-intent", deps.RideHandler.GetUPIIntent)
		}

		v1.GET("/fares/tariff", deps.RideHandler.GetTariff)

		// Payment routes.
		payments := v1.Group("/payments")
		{
			payments.POST("", deps.PaymentHandler.ProcessPayment)
			payments.POST("/card", deps.PaymentHandler.ProcessCardPayment)
			payments.GET("/:id", deps.PaymentHandler.GetPayment)
			payments.POST("/:id/receipt", deps.ReceiptHandler.GenerateReceipt)
			payments.GET("/:id/receipt", deps.ReceiptHandler.GetReceipt)
			payments.GET("/:id/receipt/text", deps.ReceiptHandler.GetReceiptText)
		}

		// User routes.
		users := v1.Group("/users")
		{
			users.GET("/:id/payments", deps.PaymentHandler.GetUserPayments)
		}
	}

	return router
}
