package catalog

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

// RegisterPublicRoutes mounts the read-only catalog surface.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/hostels", h.Search)
	rg.GET("/hostels/:id", h.GetHostel)
}

// RegisterOwnerRoutes mounts the listing management surface.
func (h *Handler) RegisterOwnerRoutes(rg *gin.RouterGroup) {
	owner := rg.Group("", middleware.RequireRole("hostel_owner", "admin"))
	{
		owner.POST("/hostels", h.CreateHostel)
		owner.POST("/hostels/:id/rooms", h.AddRoom)
	}
}

func (h *Handler) Search(c *gin.Context) {
	var q SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid search filters")
		return
	}

	result, err := h.service.Search(c.Request.Context(), q)
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to search hostels")
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) GetHostel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid hostel ID")
		return
	}

	hostel, err := h.service.GetHostel(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrHostelNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hostel not found")
			return
		}
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load hostel")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hostel": hostel})
}

func (h *Handler) CreateHostel(c *gin.Context) {
	var req CreateHostelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid hostel payload")
		return
	}

	hostel, err := h.service.CreateHostel(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		if errors.Is(err, ErrDuplicateRoom) {
			response.Error(c, http.StatusConflict, "CONFLICT", "Duplicate room ID in hostel")
			return
		}
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create hostel")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"hostel": hostel})
}

func (h *Handler) AddRoom(c *gin.Context) {
	hostelID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid hostel ID")
		return
	}

	var req RoomInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room payload")
		return
	}

	room, err := h.service.AddRoom(c.Request.Context(), hostelID, c.GetInt64("user_id"), c.GetString("role"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrHostelNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hostel not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not own this hostel")
		case errors.Is(err, ErrDuplicateRoom):
			response.Error(c, http.StatusConflict, "CONFLICT", "Room ID already exists in hostel")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add room")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"room": room})
}
