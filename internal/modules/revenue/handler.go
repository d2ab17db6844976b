package revenue

import (
	"errors"
	"net/http"
	"strconv"
	"time"

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
	rg.GET("/revenue", h.GetStats)
	rg.GET("/revenue/breakdown", h.GetBreakdown)
	rg.GET("/revenue/details", h.GetDetails)
}

const dateLayout = "2006-01-02"

// parseWindow reads hotel_id, from_date and to_date query params. to_date is
// inclusive on the calendar day, so the window end is the following midnight.
func parseWindow(c *gin.Context) (hotelID int64, from, to time.Time, ok bool) {
	hotelID, err := strconv.ParseInt(c.Query("hotel_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "hotel_id is required")
		return 0, time.Time{}, time.Time{}, false
	}
	from, err = time.Parse(dateLayout, c.Query("from_date"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "from_date must be YYYY-MM-DD")
		return 0, time.Time{}, time.Time{}, false
	}
	to, err = time.Parse(dateLayout, c.Query("to_date"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "to_date must be YYYY-MM-DD")
		return 0, time.Time{}, time.Time{}, false
	}
	return hotelID, from, to.AddDate(0, 0, 1), true
}

func (h *Handler) GetStats(c *gin.Context) {
	hotelID, from, to, ok := parseWindow(c)
	if !ok {
		return
	}

	g := Granularity(c.DefaultQuery("granularity", string(GranularityDay)))
	dense := c.DefaultQuery("dense", "true") != "false"

	stats, err := h.service.GetStats(c.Request.Context(), hotelID, from, to, g, dense)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date range or granularity")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute revenue stats")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) GetBreakdown(c *gin.Context) {
	hotelID, from, to, ok := parseWindow(c)
	if !ok {
		return
	}
	b, err := h.service.GetBreakdown(c.Request.Context(), hotelID, from, to)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date range")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute revenue breakdown")
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) GetDetails(c *gin.Context) {
	hotelID, from, to, ok := parseWindow(c)
	if !ok {
		return
	}
	source := domain.InvoiceLineSourceType(c.Query("source_type"))
	details, err := h.service.GetDetails(c.Request.Context(), hotelID, from, to, source)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date range or source_type")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load revenue details")
		return
	}
	response.Success(c, http.StatusOK, details)
}
