package handler

import (
	"net/http"
	"strconv"

	"theatre-booking-api/internal/model"
	"theatre-booking-api/internal/service"

	"github.com/gin-gonic/gin"
)

type GenreHandler struct {
	service service.GenreService
}

func NewGenreHandler(service service.GenreService) *GenreHandler {
	return &GenreHandler{service: service}
}

func (h *GenreHandler) RegisterRoutes(r *gin.Engine, auth, staff gin.HandlerFunc) {
	router := r.Group("/api/v1", auth)
	{
		router.GET("genres", h.List)
		router.GET("genres/:id", h.Get)
		router.POST("genres", staff, h.Create)
		router.PUT("genres/:id", staff, h.Update)
		router.DELETE("genres/:id", staff, h.Delete)
	}
}

type CreateGenreRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateGenreRequest struct {
	Name *string `json:"name"`
}

func (h *GenreHandler) List(c *gin.Context) {
	genres, err := h.service.List(c)
	if err != nil {
		handleServiceError(c, err, "ListGenres")
		return
	}
	c.JSON(http.StatusOK, genres)
}

func (h *GenreHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid genre id"})
		return
	}
	genre, err := h.service.GetByID(c, id)
	if err != nil {
		handleServiceError(c, err, "GetGenre")
		return
	}
	c.JSON(http.StatusOK, genre)
}

func (h *GenreHandler) Create(c *gin.Context) {
	var req CreateGenreRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	created, err := h.service.Create(c, &model.Genre{Name: req.Name})
	if err != nil {
		handleServiceError(c, err, "CreateGenre")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *GenreHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid genre id"})
		return
	}
	var req UpdateGenreRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	updated, err := h.service.Update(c, id, model.UpdateGenreParams{Name: req.Name})
	if err != nil {
		handleServiceError(c, err, "UpdateGenre")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *GenreHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid genre id"})
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		handleServiceError(c, err, "DeleteGenre")
		return
	}
	c.Status(http.StatusNoContent)
}
