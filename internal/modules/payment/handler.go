package payment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hostelhub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings/confirm-payment", h.ConfirmPayment)
}

func (h *Handler) ConfirmPayment(c *gin.Context) {
	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Payment details are incomplete")
		return
	}

	booking, commission, err := h.service.ConfirmPayment(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrInvalidSignature):
			response.Error(c, http.StatusBadRequest, "INVALID_SIGNATURE", "Invalid payment signature")
		case errors.Is(err, ErrAlreadyPaid), errors.Is(err, ErrNotPayable):
			response.Error(c, http.StatusConflict, "CONFLICT", "Booking is not awaiting payment")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Payment confirmation failed")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"booking":    booking,
		"commission": commission,
	})
}
