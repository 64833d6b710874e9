package auth

import (
	"hallbook/internal/shared/config"
	"hallbook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// Router registers auth endpoints.
type Router struct {
	controller *Controller
	config     *config.Config
}

func NewRouter(controller *Controller, cfg *config.Config) *Router {
	return &Router{
		controller: controller,
		config:     cfg,
	}
}

func (r *Router) SetupRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", r.controller.Register)
		auth.POST("/login", r.controller.Login)
		auth.POST("/refresh", r.controller.RefreshToken)
		auth.POST("/logout", r.controller.Logout)

		protected := auth.Group("")
		protected.Use(middleware.JWTAuthWithConfig(r.config))
		{
			protected.GET("/me", r.controller.Me)
			protected.PUT("/change-password", r.controller.ChangePassword)
		}
	}
}
