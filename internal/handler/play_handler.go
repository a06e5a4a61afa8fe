package handler

import (
	"net/http"

	"theatre-booking-api/internal/model"
	"theatre-booking-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PlayHandler struct {
	service service.PlayService
}

func NewPlayHandler(service service.PlayService) *PlayHandler {
	return &PlayHandler{service: service}
}

func (h *PlayHandler) RegisterRoutes(r *gin.Engine, auth, staff gin.HandlerFunc) {
	router := r.Group("/api/v1", auth)
	{
		router.GET("plays", h.List)
		router.GET("plays/:uuid", h.Get)
		router.POST("plays", staff, h.Create)
		router.PUT("plays/:uuid", staff, h.Update)
		router.DELETE("plays/:uuid", staff, h.Delete)
	}
}

type CreatePlayRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ActorIDs    []int  `json:"actor_ids"`
	GenreIDs    []int  `json:"genre_ids"`
}

type UpdatePlayRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ActorIDs    []int   `json:"actor_ids"`
	GenreIDs    []int   `json:"genre_ids"`
}

func (h *PlayHandler) List(c *gin.Context) {
	plays, err := h.service.List(c)
	if err != nil {
		handleServiceError(c, err, "ListPlays")
		return
	}
	c.JSON(http.StatusOK, plays)
}

func (h *PlayHandler) Get(c *gin.Context) {
	playID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid play id"})
		return
	}
	play, err := h.service.GetByPlayID(c, playID)
	if err != nil {
		handleServiceError(c, err, "GetPlay")
		return
	}
	c.JSON(http.StatusOK, play)
}

func (h *PlayHandler) Create(c *gin.Context) {
	var req CreatePlayRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	play := &model.Play{
		Title:       req.Title,
		Description: req.Description,
	}
	created, err := h.service.Create(c, play, req.ActorIDs, req.GenreIDs)
	if err != nil {
		handleServiceError(c, err, "CreatePlay")
		return
	}
	c.JSON(http.StatusCreated, created.Detail())
}

func (h *PlayHandler) Update(c *gin.Context) {
	playID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid play id"})
		return
	}
	var req UpdatePlayRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	updated, err := h.service.UpdateByPlayID(c, playID, model.UpdatePlayParams{
		Title:       req.Title,
		Description: req.Description,
		ActorIDs:    req.ActorIDs,
		GenreIDs:    req.GenreIDs,
	})
	if err != nil {
		handleServiceError(c, err, "UpdatePlay")
		return
	}
	c.JSON(http.StatusOK, updated.Detail())
}

func (h *PlayHandler) Delete(c *gin.Context) {
	playID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid play id"})
		return
	}
	if err := h.service.DeleteByPlayID(c, playID); err != nil {
		handleServiceError(c, err, "DeletePlay")
		return
	}
	c.Status(http.StatusNoContent)
}
