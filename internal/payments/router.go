package payments

import (
	"hallbook/internal/shared/config"
	"hallbook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// Router handles payment-related routes
type Router struct {
	controller *Controller
	config     *config.Config
}

// NewRouter creates a new payment router
func NewRouter(controller *Controller, cfg *config.Config) *Router {
	return &Router{
		controller: controller,
		config:     cfg,
	}
}

// SetupRoutes registers all payment routes
func (paymentRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	payments.Use(middleware.JWTAuthWithConfig(paymentRouter.config))
	{
		payments.POST("/intent", paymentRouter.controller.CreateIntent)
		payments.POST("/settle", paymentRouter.controller.Settle)
		payments.POST("/refund", paymentRouter.controller.Refund)
		payments.GET("/booking/:bookingId", paymentRouter.controller.ListBookingPayments)
		payments.GET("/:id", paymentRouter.controller.GetPayment)
	}
}
