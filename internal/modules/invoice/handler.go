package invoice

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
	rg.POST("/invoices", h.Create)
	rg.GET("/invoices/:id", h.Get)
	rg.POST("/invoices/:id/lines", h.AddLines)
	rg.DELETE("/invoices/:id/lines", h.RemoveLines)
	rg.POST("/invoices/:id/promotion", h.ApplyPromotion)
	rg.PATCH("/invoices/:id/void", h.Void)

	rg.GET("/promotions", h.ListPromotions)
	rg.POST("/promotions", h.CreatePromotion)
	rg.PUT("/promotions/:id", h.UpdatePromotion)
}

func invoiceID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid invoice request")
	case errors.Is(err, ErrInvoiceNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Invoice not found")
	case errors.Is(err, ErrLinesNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "One or more lines not found on this invoice")
	case errors.Is(err, ErrInvoiceNotOpen):
		response.Error(c, http.StatusConflict, "INVOICE_NOT_OPEN", "Invoice is paid or voided")
	case errors.Is(err, ErrTotalBelowPaid):
		response.Error(c, http.StatusConflict, "TOTAL_BELOW_PAID", "Total cannot drop below the paid amount; refund first")
	case errors.Is(err, ErrPromotionInvalid):
		response.Error(c, http.StatusUnprocessableEntity, "PROMOTION_INVALID", "Promotion is expired, exhausted or not applicable")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Invoice operation failed")
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	inv, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, inv)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}
	inv, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, inv)
}

func (h *Handler) AddLines(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}
	var req AddLinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	inv, err := h.service.AddLines(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, inv)
}

func (h *Handler) RemoveLines(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}
	var req RemoveLinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	inv, err := h.service.RemoveLines(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, inv)
}

func (h *Handler) ApplyPromotion(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}
	var req ApplyPromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	inv, err := h.service.ApplyPromotion(c.Request.Context(), c.GetInt64("user_id"), id, req.Code)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, inv)
}

func (h *Handler) Void(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}
	inv, err := h.service.Void(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, inv)
}

func (h *Handler) ListPromotions(c *gin.Context) {
	hotelID, err := strconv.ParseInt(c.Query("hotel_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "hotel_id is required")
		return
	}
	promos, err := h.service.ListPromotions(c.Request.Context(), hotelID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, promos)
}

func (h *Handler) CreatePromotion(c *gin.Context) {
	var req PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	p, err := h.service.CreatePromotion(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) UpdatePromotion(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}
	var req PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	p, err := h.service.UpdatePromotion(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}
