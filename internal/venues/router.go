package venues

import (
	"hallbook/internal/shared/config"
	"hallbook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// Router handles venue-related routes
type Router struct {
	controller *Controller
	config     *config.Config
}

// NewRouter creates a new venue router
func NewRouter(controller *Controller, cfg *config.Config) *Router {
	return &Router{
		controller: controller,
		config:     cfg,
	}
}

// SetupRoutes registers all venue routes
func (venueRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	venues := rg.Group("/venues")
	{
		// Public routes (no authentication required)
		venues.GET("", venueRouter.controller.ListVenues)
		venues.GET("/:id", venueRouter.controller.GetVenue)
		venues.GET("/:id/pricing", venueRouter.controller.GetPricing)

		// Management routes (hall owner or staff)
		protected := venues.Group("")
		protected.Use(middleware.JWTAuthWithConfig(venueRouter.config))
		{
			protected.POST("", middleware.RequireRoles("OWNER", "ADMIN"), venueRouter.controller.CreateVenue)
			protected.PUT("/:id", venueRouter.controller.UpdateVenue)
			protected.PUT("/:id/pricing", venueRouter.controller.SetPricing)
		}
	}
}
