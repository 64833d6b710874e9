package bookings

import (
	"hallbook/internal/shared/config"
	"hallbook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// Router handles booking-related routes
type Router struct {
	controller *Controller
	config     *config.Config
}

// NewRouter creates a new booking router
func NewRouter(controller *Controller, cfg *config.Config) *Router {
	return &Router{
		controller: controller,
		config:     cfg,
	}
}

// SetupRoutes registers all booking routes
func (bookingRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	{
		// Public routes (no authentication required)
		bookings.GET("/quote", bookingRouter.controller.QuotePrice)
		bookings.GET("/availability", bookingRouter.controller.CheckAvailability)

		// Protected routes (authentication required)
		protected := bookings.Group("")
		protected.Use(middleware.JWTAuthWithConfig(bookingRouter.config))
		{
			protected.POST("", bookingRouter.controller.CreateBooking)
			protected.GET("/mine", bookingRouter.controller.ListMyBookings)
			protected.GET("/venue/:venueId", bookingRouter.controller.ListVenueBookings)
			protected.GET("/:id", bookingRouter.controller.GetBooking)
			protected.POST("/:id/cancel", bookingRouter.controller.CancelBooking)
			protected.POST("/:id/complete", bookingRouter.controller.CompleteBooking)
		}
	}
}
