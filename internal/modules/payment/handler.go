package payment

import (
	"errors"
	"net/http"

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
	rg.POST("/payments", h.ApplyPayment)
	rg.POST("/payments/refund", h.Refund)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Amount must be positive")
	case errors.Is(err, ErrInvoiceNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Invoice not found")
	case errors.Is(err, ErrBookingNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrInvoiceNotOpen):
		response.Error(c, http.StatusConflict, "INVOICE_NOT_OPEN", "Invoice is paid or voided")
	case errors.Is(err, ErrAmountExceedsRemaining):
		response.Error(c, http.StatusBadRequest, "AMOUNT_EXCEEDS_REMAINING", "Amount exceeds the remaining balance")
	case errors.Is(err, ErrRefundExceedsPaid):
		response.Error(c, http.StatusBadRequest, "REFUND_EXCEEDS_PAID", "Refund exceeds the amount previously paid")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Payment operation failed")
	}
}

func (h *Handler) ApplyPayment(c *gin.Context) {
	var req ApplyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	p, err := h.service.ApplyPayment(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) Refund(c *gin.Context) {
	var req RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	p, err := h.service.Refund(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p)
}
