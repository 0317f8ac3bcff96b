package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hostelhub/internal/middleware"
	"hostelhub/internal/modules/catalog"
	"hostelhub/internal/pkg/response"
)

type Handler struct {
	service *Service
	hostels *catalog.Service
}

func NewHandler(service *Service, hostels *catalog.Service) *Handler {
	return &Handler{service: service, hostels: hostels}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin", middleware.AdminOnly())
	{
		admin.GET("/stats", h.Stats)
		admin.GET("/commission-rate", h.GetCommissionRate)
		admin.PUT("/commission-rate", h.UpdateCommissionRate)
		admin.PUT("/hostels/:id/verify", h.VerifyHostel)
	}
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load stats")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) GetCommissionRate(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"rate": h.service.CommissionRate()})
}

func (h *Handler) UpdateCommissionRate(c *gin.Context) {
	var req UpdateCommissionRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rate is required")
		return
	}

	if err := h.service.UpdateCommissionRate(*req.Rate); err != nil {
		if errors.Is(err, ErrInvalidRate) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rate must be between 0 and 100")
			return
		}
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update rate")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rate": h.service.CommissionRate()})
}

func (h *Handler) VerifyHostel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid hostel ID")
		return
	}

	var req VerifyHostelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Verified flag is required")
		return
	}

	if err := h.hostels.VerifyHostel(c.Request.Context(), id, *req.Verified); err != nil {
		if errors.Is(err, catalog.ErrHostelNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hostel not found")
			return
		}
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update verification")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hostel_id": id, "verified": *req.Verified})
}
