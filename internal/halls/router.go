package halls

import (
	"hallbook/internal/shared/config"
	"hallbook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// Router handles hall-related routes
type Router struct {
	controller *Controller
	config     *config.Config
}

// NewRouter creates a new hall router
func NewRouter(controller *Controller, cfg *config.Config) *Router {
	return &Router{
		controller: controller,
		config:     cfg,
	}
}

// SetupRoutes registers all hall routes
func (hallRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	halls := rg.Group("/halls")
	{
		// Public routes (no authentication required)
		halls.GET("", hallRouter.controller.ListHalls)

		// Protected routes (authentication required)
		protected := halls.Group("")
		protected.Use(middleware.JWTAuthWithConfig(hallRouter.config))
		{
			protected.GET("/mine", middleware.RequireRoles("OWNER", "ADMIN"), hallRouter.controller.GetMyHalls)
			protected.POST("", middleware.RequireRoles("OWNER", "ADMIN"), hallRouter.controller.CreateHall)
			protected.PUT("/:id", middleware.RequireRoles("OWNER", "ADMIN"), hallRouter.controller.UpdateHall)

			protected.POST("/:id/staff", middleware.RequireRoles("OWNER", "ADMIN"), hallRouter.controller.AddStaff)
			protected.DELETE("/:id/staff/:userId", middleware.RequireRoles("OWNER", "ADMIN"), hallRouter.controller.RemoveStaff)
			protected.GET("/:id/staff", hallRouter.controller.ListStaff)
		}

		// Keep the :id route after /mine so gin matches literal segments first
		halls.GET("/:id", hallRouter.controller.GetHall)
	}

	// Admin-only hall moderation
	admin := rg.Group("/admin/halls")
	admin.Use(middleware.JWTAuthWithConfig(hallRouter.config), middleware.RequireAdmin())
	{
		admin.PATCH("/:id/status", hallRouter.controller.UpdateHallStatus)
	}
}
