package bookings

import (
	"errors"
	"net/http"
	"time"

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

func actor(ctx *gin.Context) (uuid.UUID, string, bool) {
	userIDInterface, exists := ctx.Get("user_id")
	if !exists {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return uuid.Nil, "", false
	}

	userIDStr, ok := userIDInterface.(string)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Invalid user ID format", nil, nil)
		return uuid.Nil, "", false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid user ID", nil, nil)
		return uuid.Nil, "", false
	}

	role, _ := ctx.Get("user_role")
	roleStr, _ := role.(string)

	return userID, roleStr, true
}

func respondBookingError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
	case errors.Is(err, ErrVenueNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Venue not found", nil, nil)
	case errors.Is(err, ErrSlotUnavailable):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Requested slot is already booked", nil, nil)
	case errors.Is(err, ErrVenueInactive), errors.Is(err, ErrHallNotApproved):
		response.RespondJSON(ctx, "error", http.StatusConflict, err.Error(), nil, nil)
	case errors.Is(err, ErrAlreadyTerminal), errors.Is(err, ErrInvalidTransition):
		response.RespondJSON(ctx, "error", http.StatusConflict, err.Error(), nil, nil)
	case errors.Is(err, ErrDurationTooShort), errors.Is(err, ErrInvalidTimeRange):
		response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
	case errors.Is(err, ErrNotAuthorized):
		response.RespondJSON(ctx, "error", http.StatusForbidden, "Not authorized for this booking", nil, nil)
	default:
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, fallback, nil, err.Error())
	}
}

// CreateBooking handles POST /api/v1/bookings
func (c *Controller) CreateBooking(ctx *gin.Context) {
	customerID, _, ok := actor(ctx)
	if !ok {
		return
	}

	var req BookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	booking, err := c.service.CreateBooking(ctx.Request.Context(), customerID, req)
	if err != nil {
		respondBookingError(ctx, err, "Failed to create booking")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Booking created successfully", booking, nil)
}

// GetBooking handles GET /api/v1/bookings/:id
func (c *Controller) GetBooking(ctx *gin.Context) {
	actorID, role, ok := actor(ctx)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return
	}

	booking, err := c.service.GetBooking(ctx.Request.Context(), bookingID, actorID, role)
	if err != nil {
		respondBookingError(ctx, err, "Failed to get booking")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking retrieved successfully", booking, nil)
}

// ListMyBookings handles GET /api/v1/bookings/mine
func (c *Controller) ListMyBookings(ctx *gin.Context) {
	customerID, _, ok := actor(ctx)
	if !ok {
		return
	}

	bookings, err := c.service.ListMyBookings(ctx.Request.Context(), customerID)
	if err != nil {
		respondBookingError(ctx, err, "Failed to list bookings")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", bookings, nil)
}

// ListVenueBookings handles GET /api/v1/bookings/venue/:venueId?date=YYYY-MM-DD
func (c *Controller) ListVenueBookings(ctx *gin.Context) {
	actorID, role, ok := actor(ctx)
	if !ok {
		return
	}

	venueID, err := uuid.Parse(ctx.Param("venueId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid venue ID", nil, nil)
		return
	}

	var date *time.Time
	if raw := ctx.Query("date"); raw != "" {
		parsed, err := clock.ParseDate(raw)
		if err != nil {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "date query parameter must be YYYY-MM-DD", nil, nil)
			return
		}
		date = &parsed
	}

	bookings, err := c.service.ListVenueBookings(ctx.Request.Context(), venueID, actorID, role, date)
	if err != nil {
		respondBookingError(ctx, err, "Failed to list venue bookings")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", bookings, nil)
}

// CancelBooking handles POST /api/v1/bookings/:id/cancel
func (c *Controller) CancelBooking(ctx *gin.Context) {
	actorID, role, ok := actor(ctx)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return
	}

	var req CancelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && ctx.Request.ContentLength > 0 {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	booking, err := c.service.CancelBooking(ctx.Request.Context(), bookingID, actorID, role, req.Reason)
	if err != nil {
		respondBookingError(ctx, err, "Failed to cancel booking")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking cancelled successfully", booking, nil)
}

// CompleteBooking handles POST /api/v1/bookings/:id/complete
func (c *Controller) CompleteBooking(ctx *gin.Context) {
	actorID, role, ok := actor(ctx)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return
	}

	booking, err := c.service.CompleteBooking(ctx.Request.Context(), bookingID, actorID, role)
	if err != nil {
		respondBookingError(ctx, err, "Failed to complete booking")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking completed successfully", booking, nil)
}

// QuotePrice handles GET /api/v1/bookings/quote
func (c *Controller) QuotePrice(ctx *gin.Context) {
	venueID, date, startTime, endTime, ok := slotQuery(ctx)
	if !ok {
		return
	}

	total, err := c.service.QuotePrice(ctx.Request.Context(), venueID, date, startTime, endTime)
	if err != nil {
		respondBookingError(ctx, err, "Failed to quote price")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Quote computed successfully", gin.H{
		"venue_id":     venueID,
		"event_date":   clock.FormatDate(date),
		"start_time":   startTime,
		"end_time":     endTime,
		"total_amount": total,
	}, nil)
}

// CheckAvailability handles GET /api/v1/bookings/availability
func (c *Controller) CheckAvailability(ctx *gin.Context) {
	venueID, date, startTime, endTime, ok := slotQuery(ctx)
	if !ok {
		return
	}

	available, err := c.service.CheckAvailability(ctx.Request.Context(), venueID, date, startTime, endTime)
	if err != nil {
		respondBookingError(ctx, err, "Failed to check availability")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Availability checked successfully", gin.H{
		"venue_id":   venueID,
		"event_date": clock.FormatDate(date),
		"start_time": startTime,
		"end_time":   endTime,
		"available":  available,
	}, nil)
}

// slotQuery parses the venue_id, date, start_time and end_time query
// parameters shared by the quote and availability endpoints.
func slotQuery(ctx *gin.Context) (uuid.UUID, time.Time, string, string, bool) {
	venueID, err := uuid.Parse(ctx.Query("venue_id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "venue_id query parameter is required", nil, nil)
		return uuid.Nil, time.Time{}, "", "", false
	}

	date, err := clock.ParseDate(ctx.Query("date"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "date query parameter must be YYYY-MM-DD", nil, nil)
		return uuid.Nil, time.Time{}, "", "", false
	}

	startTime := ctx.Query("start_time")
	endTime := ctx.Query("end_time")
	if !clock.IsValid(startTime) || !clock.IsValid(endTime) {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "start_time and end_time must be HH:MM", nil, nil)
		return uuid.Nil, time.Time{}, "", "", false
	}

	return venueID, date, startTime, endTime, true
}
