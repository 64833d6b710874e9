package payments

import (
	"errors"
	"net/http"

	"hallbook/internal/bookings"
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

func respondPaymentError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrPaymentNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Payment not found", nil, nil)
	case errors.Is(err, bookings.ErrBookingNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
	case errors.Is(err, ErrNotAuthorized), errors.Is(err, bookings.ErrNotAuthorized):
		response.RespondJSON(ctx, "error", http.StatusForbidden, "Not authorized for this payment", nil, nil)
	case errors.Is(err, ErrBookingNotPayable), errors.Is(err, ErrPaymentRefunded):
		response.RespondJSON(ctx, "error", http.StatusConflict, err.Error(), nil, nil)
	case errors.Is(err, ErrNoSuccessfulPayment), errors.Is(err, ErrRefundExceedsPaid):
		response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
	case errors.Is(err, ErrInvalidKind), errors.Is(err, ErrAmountTooLarge):
		response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
	case errors.Is(err, ErrGatewayFailure):
		response.RespondJSON(ctx, "error", http.StatusBadGateway, "Payment gateway request failed", nil, nil)
	default:
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, fallback, nil, err.Error())
	}
}

// CreateIntent handles POST /api/v1/payments/intent
func (c *Controller) CreateIntent(ctx *gin.Context) {
	actorID, role, ok := actor(ctx)
	if !ok {
		return
	}

	var req PaymentIntentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	payment, err := c.service.CreateIntent(ctx.Request.Context(), actorID, role, req)
	if err != nil {
		respondPaymentError(ctx, err, "Failed to create payment")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Payment intent created successfully", payment, nil)
}

// Settle handles POST /api/v1/payments/settle
func (c *Controller) Settle(ctx *gin.Context) {
	actorID, role, ok := actor(ctx)
	if !ok {
		return
	}

	var req SettleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	payment, err := c.service.ConfirmSettlement(ctx.Request.Context(), actorID, role, req.GatewayRef)
	if err != nil {
		respondPaymentError(ctx, err, "Failed to settle payment")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Payment settled successfully", payment, nil)
}

// Refund handles POST /api/v1/payments/refund
func (c *Controller) Refund(ctx *gin.Context) {
	actorID, role, ok := actor(ctx)
	if !ok {
		return
	}

	var req RefundRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	refund, err := c.service.ProcessRefund(ctx.Request.Context(), actorID, role, req)
	if err != nil {
		respondPaymentError(ctx, err, "Failed to process refund")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Refund processed successfully", refund, nil)
}

// GetPayment handles GET /api/v1/payments/:id
func (c *Controller) GetPayment(ctx *gin.Context) {
	actorID, role, ok := actor(ctx)
	if !ok {
		return
	}

	paymentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid payment ID", nil, nil)
		return
	}

	payment, err := c.service.GetPayment(ctx.Request.Context(), paymentID, actorID, role)
	if err != nil {
		respondPaymentError(ctx, err, "Failed to get payment")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Payment retrieved successfully", payment, nil)
}

// ListBookingPayments handles GET /api/v1/payments/booking/:bookingId
func (c *Controller) ListBookingPayments(ctx *gin.Context) {
	actorID, role, ok := actor(ctx)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(ctx.Param("bookingId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return
	}

	payments, err := c.service.ListBookingPayments(ctx.Request.Context(), bookingID, actorID, role)
	if err != nil {
		respondPaymentError(ctx, err, "Failed to list payments")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Payments retrieved successfully", payments, nil)
}
