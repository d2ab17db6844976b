package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotelops/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/group-bookings", h.CreateGroup)
	rg.GET("/group-bookings/:code", h.GetGroup)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.PATCH("/bookings/:id/status", h.UpdateStatus)
	rg.GET("/guests", h.SearchGuests)
}

func (h *Handler) CreateGroup(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.CreateGroup(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request")
		case errors.Is(err, ErrRoomsNotFound):
			response.Error(c, http.StatusNotFound, "ROOMS_NOT_FOUND", "One or more rooms do not exist")
		case errors.Is(err, ErrGuestNotFound):
			response.Error(c, http.StatusNotFound, "GUEST_NOT_FOUND", "Primary guest does not exist")
		case errors.Is(err, ErrRoomUnavailable):
			response.Error(c, http.StatusConflict, "ROOM_UNAVAILABLE", "A requested room is not available for its date range")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create group booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, result)
}

func (h *Handler) GetGroup(c *gin.Context) {
	result, err := h.service.GetGroup(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Group booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load group booking")
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load booking")
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), id, c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrInvalidStatusTransition):
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Status transition not allowed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update booking status")
		}
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) SearchGuests(c *gin.Context) {
	guests, err := h.service.SearchGuests(c.Request.Context(), c.Query("phone"), c.Query("id_card"))
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "phone or id_card is required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to search guests")
		return
	}
	response.Success(c, http.StatusOK, guests)
}
