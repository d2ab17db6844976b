package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotelops/internal/domain"
	"hotelops/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/hotels", h.ListHotels)
	rg.POST("/hotels", h.CreateHotel)
	rg.GET("/hotels/:id", h.GetHotel)
	rg.PUT("/hotels/:id", h.UpdateHotel)

	rg.GET("/room-types", h.ListRoomTypes)
	rg.POST("/room-types", h.CreateRoomType)
	rg.PUT("/room-types/:id", h.UpdateRoomType)

	rg.GET("/rooms", h.ListRooms)
	rg.POST("/rooms", h.CreateRoom)
	rg.PUT("/rooms/:id", h.UpdateRoom)
	rg.PATCH("/rooms/:id/status", h.UpdateRoomStatus)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Catalog operation failed")
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) ListHotels(c *gin.Context) {
	hotels, err := h.service.ListHotels(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hotels)
}

func (h *Handler) CreateHotel(c *gin.Context) {
	var req HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	hotel, err := h.service.CreateHotel(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, hotel)
}

func (h *Handler) GetHotel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	hotel, err := h.service.GetHotel(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hotel)
}

func (h *Handler) UpdateHotel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	hotel, err := h.service.UpdateHotel(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hotel)
}

func (h *Handler) ListRoomTypes(c *gin.Context) {
	hotelID, err := strconv.ParseInt(c.Query("hotel_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "hotel_id is required")
		return
	}
	types, err := h.service.ListRoomTypes(c.Request.Context(), hotelID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, types)
}

func (h *Handler) CreateRoomType(c *gin.Context) {
	var req RoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	rt, err := h.service.CreateRoomType(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, rt)
}

func (h *Handler) UpdateRoomType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req RoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	rt, err := h.service.UpdateRoomType(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rt)
}

func (h *Handler) ListRooms(c *gin.Context) {
	hotelID, err := strconv.ParseInt(c.Query("hotel_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "hotel_id is required")
		return
	}
	rooms, err := h.service.ListRooms(c.Request.Context(), hotelID, domain.RoomStatus(c.Query("status")))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rooms)
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	r, err := h.service.CreateRoom(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, r)
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	r, err := h.service.UpdateRoom(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, r)
}

func (h *Handler) UpdateRoomStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req RoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	r, err := h.service.UpdateRoomStatus(c.Request.Context(), c.GetInt64("user_id"), id, req.Status)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, r)
}
