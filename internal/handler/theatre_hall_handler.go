package handler

import (
	"net/http"
	"strconv"

	"theatre-booking-api/internal/model"
	"theatre-booking-api/internal/service"

	"github.com/gin-gonic/gin"
)

type TheatreHallHandler struct {
	service service.TheatreHallService
}

func NewTheatreHallHandler(service service.TheatreHallService) *TheatreHallHandler {
	return &TheatreHallHandler{service: service}
}

func (h *TheatreHallHandler) RegisterRoutes(r *gin.Engine, auth, staff gin.HandlerFunc) {
	router := r.Group("/api/v1", auth)
	{
		router.GET("theatre-halls", h.List)
		router.GET("theatre-halls/:id", h.Get)
		router.POST("theatre-halls", staff, h.Create)
		router.PUT("theatre-halls/:id", staff, h.Update)
		router.DELETE("theatre-halls/:id", staff, h.Delete)
	}
}

type CreateTheatreHallRequest struct {
	Name       string `json:"name" binding:"required"`
	Rows       int    `json:"rows" binding:"required,min=1"`
	SeatsInRow int    `json:"seats_in_row" binding:"required,min=1"`
}

type UpdateTheatreHallRequest struct {
	Name       *string `json:"name"`
	Rows       *int    `json:"rows"`
	SeatsInRow *int    `json:"seats_in_row"`
}

func (h *TheatreHallHandler) List(c *gin.Context) {
	halls, err := h.service.List(c)
	if err != nil {
		handleServiceError(c, err, "ListTheatreHalls")
		return
	}
	c.JSON(http.StatusOK, halls)
}

func (h *TheatreHallHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid theatre hall id"})
		return
	}
	hall, err := h.service.GetByID(c, id)
	if err != nil {
		handleServiceError(c, err, "GetTheatreHall")
		return
	}
	c.JSON(http.StatusOK, hall)
}

func (h *TheatreHallHandler) Create(c *gin.Context) {
	var req CreateTheatreHallRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	created, err := h.service.Create(c, &model.TheatreHall{
		Name:       req.Name,
		Rows:       req.Rows,
		SeatsInRow: req.SeatsInRow,
	})
	if err != nil {
		handleServiceError(c, err, "CreateTheatreHall")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *TheatreHallHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid theatre hall id"})
		return
	}
	var req UpdateTheatreHallRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	updated, err := h.service.Update(c, id, model.UpdateTheatreHallParams{
		Name:       req.Name,
		Rows:       req.Rows,
		SeatsInRow: req.SeatsInRow,
	})
	if err != nil {
		handleServiceError(c, err, "UpdateTheatreHall")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *TheatreHallHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid theatre hall id"})
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		handleServiceError(c, err, "DeleteTheatreHall")
		return
	}
	c.Status(http.StatusNoContent)
}
