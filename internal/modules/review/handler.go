package review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hostelhub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the read side.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/hostels/:id/reviews", h.ListReviews)
}

// RegisterProtectedRoutes mounts the write side for signed-in users.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/reviews", h.SubmitReview)
}

func (h *Handler) SubmitReview(c *gin.Context) {
	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rating must be between 1 and 5")
		return
	}

	review, err := h.service.SubmitReview(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrHostelNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hostel not found")
		case errors.Is(err, ErrNotEligible):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only guests with a paid booking can review")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit review")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"review": review})
}

func (h *Handler) ListReviews(c *gin.Context) {
	hostelID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid hostel ID")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}

	reviews, total, err := h.service.ListHostelReviews(c.Request.Context(), hostelID, limit, (page-1)*limit)
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list reviews")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"reviews":    reviews,
		"pagination": gin.H{"page": page, "limit": limit, "total": total},
	})
}
