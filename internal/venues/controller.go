package venues

import (
	"errors"
	"net/http"

	"hallbook/internal/shared/utils/clock"
	"hallbook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func actorID(ctx *gin.Context) (uuid.UUID, bool) {
	userIDInterface, exists := ctx.Get("user_id")
	if !exists {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return uuid.Nil, false
	}

	userIDStr, ok := userIDInterface.(string)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Invalid user ID format", nil, nil)
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid user ID", nil, nil)
		return uuid.Nil, false
	}

	return userID, true
}

func respondVenueError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrVenueNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Venue not found", nil, nil)
	case errors.Is(err, ErrHallNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Hall not found", nil, nil)
	case errors.Is(err, ErrNotAuthorized):
		response.RespondJSON(ctx, "error", http.StatusForbidden, "Not authorized to manage this venue", nil, nil)
	case errors.Is(err, ErrInvalidSlot), errors.Is(err, ErrOverlappingSlots), errors.Is(err, ErrInvalidDate):
		response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
	default:
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, fallback, nil, err.Error())
	}
}

// CreateVenue handles POST /api/v1/venues
func (c *Controller) CreateVenue(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	var req VenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	venue, err := c.service.CreateVenue(ctx.Request.Context(), actor, req)
	if err != nil {
		respondVenueError(ctx, err, "Failed to create venue")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Venue created successfully", venue, nil)
}

// GetVenue handles GET /api/v1/venues/:id
func (c *Controller) GetVenue(ctx *gin.Context) {
	venueID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid venue ID", nil, nil)
		return
	}

	venue, err := c.service.GetVenue(ctx.Request.Context(), venueID)
	if err != nil {
		respondVenueError(ctx, err, "Failed to get venue")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venue retrieved successfully", venue, nil)
}

// ListVenues handles GET /api/v1/venues?hall_id=...
func (c *Controller) ListVenues(ctx *gin.Context) {
	hallID, err := uuid.Parse(ctx.Query("hall_id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "hall_id query parameter is required", nil, nil)
		return
	}

	venues, err := c.service.ListHallVenues(ctx.Request.Context(), hallID)
	if err != nil {
		respondVenueError(ctx, err, "Failed to list venues")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venues retrieved successfully", venues, nil)
}

// UpdateVenue handles PUT /api/v1/venues/:id
func (c *Controller) UpdateVenue(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	venueID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid venue ID", nil, nil)
		return
	}

	var req VenueUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	venue, err := c.service.UpdateVenue(ctx.Request.Context(), venueID, actor, req)
	if err != nil {
		respondVenueError(ctx, err, "Failed to update venue")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venue updated successfully", venue, nil)
}

// SetPricing handles PUT /api/v1/venues/:id/pricing
func (c *Controller) SetPricing(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	venueID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid venue ID", nil, nil)
		return
	}

	var req SetPricingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	overrides, err := c.service.SetPricing(ctx.Request.Context(), venueID, actor, req)
	if err != nil {
		respondVenueError(ctx, err, "Failed to set pricing")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Pricing updated successfully", overrides, nil)
}

// GetPricing handles GET /api/v1/venues/:id/pricing?date=YYYY-MM-DD
func (c *Controller) GetPricing(ctx *gin.Context) {
	venueID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid venue ID", nil, nil)
		return
	}

	date, err := clock.ParseDate(ctx.Query("date"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "date query parameter must be YYYY-MM-DD", nil, nil)
		return
	}

	overrides, err := c.service.GetPricing(ctx.Request.Context(), venueID, date)
	if err != nil {
		respondVenueError(ctx, err, "Failed to get pricing")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Pricing retrieved successfully", overrides, nil)
}
