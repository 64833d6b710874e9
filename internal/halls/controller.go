package halls

import (
	"errors"
	"net/http"

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

// CreateHall handles POST /api/v1/halls
func (c *Controller) CreateHall(ctx *gin.Context) {
	ownerID, ok := actorID(ctx)
	if !ok {
		return
	}

	var req HallRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	hall, err := c.service.CreateHall(ctx.Request.Context(), ownerID, req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create hall", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Hall registered successfully", hall, nil)
}

// ListHalls handles GET /api/v1/halls (public; approved only)
func (c *Controller) ListHalls(ctx *gin.Context) {
	halls, err := c.service.ListApprovedHalls(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list halls", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Halls retrieved successfully", halls, nil)
}

// GetHall handles GET /api/v1/halls/:id
func (c *Controller) GetHall(ctx *gin.Context) {
	hallID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid hall ID", nil, nil)
		return
	}

	hall, err := c.service.GetHall(ctx.Request.Context(), hallID)
	if err != nil {
		if errors.Is(err, ErrHallNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Hall not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get hall", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Hall retrieved successfully", hall, nil)
}

// GetMyHalls handles GET /api/v1/halls/mine
func (c *Controller) GetMyHalls(ctx *gin.Context) {
	ownerID, ok := actorID(ctx)
	if !ok {
		return
	}

	halls, err := c.service.GetOwnerHalls(ctx.Request.Context(), ownerID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list halls", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Halls retrieved successfully", halls, nil)
}

// UpdateHall handles PUT /api/v1/halls/:id
func (c *Controller) UpdateHall(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	hallID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid hall ID", nil, nil)
		return
	}

	var req HallRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	hall, err := c.service.UpdateHall(ctx.Request.Context(), hallID, actor, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrHallNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Hall not found", nil, nil)
		case errors.Is(err, ErrNotAuthorized):
			response.RespondJSON(ctx, "error", http.StatusForbidden, "Not authorized to manage this hall", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update hall", nil, err.Error())
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Hall updated successfully", hall, nil)
}

// UpdateHallStatus handles PATCH /api/v1/admin/halls/:id/status
func (c *Controller) UpdateHallStatus(ctx *gin.Context) {
	hallID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid hall ID", nil, nil)
		return
	}

	var req HallStatusUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.service.UpdateHallStatus(ctx.Request.Context(), hallID, Status(req.Status)); err != nil {
		switch {
		case errors.Is(err, ErrHallNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Hall not found", nil, nil)
		case errors.Is(err, ErrInvalidStatus):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid hall status", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update hall status", nil, err.Error())
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Hall status updated successfully", nil, nil)
}

// AddStaff handles POST /api/v1/halls/:id/staff
func (c *Controller) AddStaff(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	hallID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid hall ID", nil, nil)
		return
	}

	var req HallStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	staffUserID, err := uuid.Parse(req.UserID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid user ID", nil, nil)
		return
	}

	staff, err := c.service.AddStaff(ctx.Request.Context(), hallID, actor, staffUserID)
	if err != nil {
		switch {
		case errors.Is(err, ErrHallNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Hall not found", nil, nil)
		case errors.Is(err, ErrNotAuthorized):
			response.RespondJSON(ctx, "error", http.StatusForbidden, "Only the hall owner can manage staff", nil, nil)
		case errors.Is(err, ErrStaffExists):
			response.RespondJSON(ctx, "error", http.StatusConflict, "User is already staff of this hall", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to add staff", nil, err.Error())
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Staff added successfully", staff, nil)
}

// RemoveStaff handles DELETE /api/v1/halls/:id/staff/:userId
func (c *Controller) RemoveStaff(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	hallID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid hall ID", nil, nil)
		return
	}

	staffUserID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid user ID", nil, nil)
		return
	}

	if err := c.service.RemoveStaff(ctx.Request.Context(), hallID, actor, staffUserID); err != nil {
		switch {
		case errors.Is(err, ErrHallNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Hall not found", nil, nil)
		case errors.Is(err, ErrNotAuthorized):
			response.RespondJSON(ctx, "error", http.StatusForbidden, "Only the hall owner can manage staff", nil, nil)
		case errors.Is(err, ErrStaffNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Staff member not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to remove staff", nil, err.Error())
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Staff removed successfully", nil, nil)
}

// ListStaff handles GET /api/v1/halls/:id/staff
func (c *Controller) ListStaff(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	hallID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid hall ID", nil, nil)
		return
	}

	staff, err := c.service.ListStaff(ctx.Request.Context(), hallID, actor)
	if err != nil {
		switch {
		case errors.Is(err, ErrHallNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Hall not found", nil, nil)
		case errors.Is(err, ErrNotAuthorized):
			response.RespondJSON(ctx, "error", http.StatusForbidden, "Not authorized to view staff", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list staff", nil, err.Error())
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Staff retrieved successfully", staff, nil)
}
