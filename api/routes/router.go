// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"hallbook/internal/auth"
	"hallbook/internal/bookings"
	"hallbook/internal/halls"
	"hallbook/internal/notifications"
	"hallbook/internal/payments"
	"hallbook/internal/shared/config"
	"hallbook/internal/shared/database"
	"hallbook/internal/venues"
	"hallbook/pkg/cache"
	"hallbook/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	producer notifications.Producer
	log      *logger.Logger

	// Services shared across feature routers
	cacheService   cache.Service
	hallService    halls.Service
	venueService   venues.Service
	bookingService bookings.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, producer notifications.Producer, log *logger.Logger) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		producer: producer,
		log:      log,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	r.cacheService = cache.NewService(r.db.GetRedisClient())

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)

		// Halls before venues before bookings: each feeds the next
		// through its service.
		r.setupHallRoutes(api)
		r.setupVenueRoutes(api)
		r.setupBookingRoutes(api)
		r.setupPaymentRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "hallbook-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "hallbook-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController, r.config)

	authRouter.SetupRoutes(rg)
}

// setupHallRoutes configures hall and staff management routes
func (r *Router) setupHallRoutes(rg *gin.RouterGroup) {
	hallRepo := halls.NewRepository(r.db.GetPostgreSQL())
	r.hallService = halls.NewService(hallRepo)
	hallController := halls.NewController(r.hallService)
	hallRouter := halls.NewRouter(hallController, r.config)

	hallRouter.SetupRoutes(rg)
}

// setupVenueRoutes configures venue catalog and pricing routes
func (r *Router) setupVenueRoutes(rg *gin.RouterGroup) {
	venueRepo := venues.NewRepository(r.db.GetPostgreSQL())
	r.venueService = venues.NewService(venueRepo, r.hallService, r.cacheService, r.config.Redis.CacheTTL)
	venueController := venues.NewController(r.venueService)
	venueRouter := venues.NewRouter(venueController, r.config)

	venueRouter.SetupRoutes(rg)
}

// setupBookingRoutes configures reservation engine routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
	r.bookingService = bookings.NewService(bookingRepo, r.venueService, r.hallService, r.producer, r.log)
	bookingController := bookings.NewController(r.bookingService)
	bookingRouter := bookings.NewRouter(bookingController, r.config)

	bookingRouter.SetupRoutes(rg)
}

// setupPaymentRoutes configures payment ledger routes
func (r *Router) setupPaymentRoutes(rg *gin.RouterGroup) {
	paymentRepo := payments.NewRepository(r.db.GetPostgreSQL())
	gateway := payments.NewGateway(r.config, r.log)
	paymentService := payments.NewService(
		paymentRepo,
		r.bookingService,
		gateway,
		r.cacheService,
		r.producer,
		r.log,
		r.config.Redis.IdempotencyTTL,
		r.config.Payments.Currency,
	)
	paymentController := payments.NewController(paymentService)
	paymentRouter := payments.NewRouter(paymentController, r.config)

	paymentRouter.SetupRoutes(rg)
}
