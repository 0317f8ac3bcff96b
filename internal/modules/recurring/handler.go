package recurring

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hostelhub/internal/middleware"
	"hostelhub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/monthly-payments")
	{
		payments.GET("/pending", h.PendingPayments)
		payments.POST("/:id/pay", h.PayMonthly)
	}

	closed := rg.Group("/closed-dates")
	{
		closed.GET("", h.ClosedDates)
		closed.POST("", middleware.RequireRole("hostel_owner", "admin"), h.CloseDates)
	}
}

func (h *Handler) PendingPayments(c *gin.Context) {
	payments, err := h.service.GetPendingPayments(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list monthly payments")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payments": payments})
}

func (h *Handler) PayMonthly(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment ID")
		return
	}

	payment, err := h.service.ProcessPayment(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrPaymentNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Monthly payment not found")
		case errors.Is(err, ErrAlreadyPaid):
			response.Error(c, http.StatusConflict, "CONFLICT", "Monthly payment already paid")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process payment")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payment": payment})
}

func (h *Handler) CloseDates(c *gin.Context) {
	var req CloseDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "hostel_id, room_id and dates are required")
		return
	}

	rows, err := h.service.CloseDates(c.Request.Context(), req, c.GetInt64("user_id"))
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dates must be in YYYY-MM-DD format")
			return
		}
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to close dates")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"closed_dates": rows})
}

func (h *Handler) ClosedDates(c *gin.Context) {
	var q ClosedDatesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "hostel_id is required")
		return
	}

	rows, err := h.service.GetClosedDates(c.Request.Context(), q.HostelID, q.RoomID)
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list closed dates")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"closed_dates": rows})
}
