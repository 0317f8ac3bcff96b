package settlement

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
	admin := rg.Group("/settlements", middleware.AdminOnly())
	{
		admin.POST("/generate", h.Generate)
		admin.GET("/pending", h.Pending)
		admin.PUT("/:id/pay", h.MarkPaid)
		admin.GET("/stats", h.Stats)
	}

	rg.GET("/settlements/my", middleware.RequireRole("hostel_owner"), h.OwnerSettlements)
}

func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Month and year are required")
		return
	}

	settlements, err := h.service.GenerateMonthlySettlements(c.Request.Context(), req.Month, req.Year)
	if err != nil {
		if errors.Is(err, ErrInvalidPeriod) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid settlement period")
			return
		}
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to generate settlements")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"generated":   len(settlements),
		"settlements": settlements,
	})
}

func (h *Handler) Pending(c *gin.Context) {
	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))

	settlements, err := h.service.GetPendingSettlements(c.Request.Context(), month, year)
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list settlements")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"settlements": settlements})
}

func (h *Handler) MarkPaid(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid settlement ID")
		return
	}

	var req MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Payment reference is required")
		return
	}

	settlement, err := h.service.MarkSettlementPaid(c.Request.Context(), id, req.PaymentReference)
	if err != nil {
		switch {
		case errors.Is(err, ErrSettlementNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Settlement not found")
		case errors.Is(err, ErrAlreadyPaid):
			response.Error(c, http.StatusConflict, "CONFLICT", "Settlement already paid")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to mark settlement paid")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"settlement": settlement})
}

func (h *Handler) OwnerSettlements(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}

	settlements, total, err := h.service.GetOwnerSettlements(c.Request.Context(), c.GetInt64("user_id"), limit, (page-1)*limit)
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list settlements")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"settlements": settlements,
		"pagination":  gin.H{"page": page, "limit": limit, "total": total},
	})
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.GetSettlementStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load settlement stats")
		return
	}
	response.Success(c, http.StatusOK, stats)
}
