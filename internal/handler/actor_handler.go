package handler

import (
	"net/http"
	"strconv"

	"theatre-booking-api/internal/model"
	"theatre-booking-api/internal/service"

	"github.com/gin-gonic/gin"
)

type ActorHandler struct {
	service service.ActorService
}

func NewActorHandler(service service.ActorService) *ActorHandler {
	return &ActorHandler{service: service}
}

// RegisterRoutes 讀取開放給已登入使用者，寫入只開放給工作人員
func (h *ActorHandler) RegisterRoutes(r *gin.Engine, auth, staff gin.HandlerFunc) {
	router := r.Group("/api/v1", auth)
	{
		router.GET("actors", h.List)
		router.GET("actors/:id", h.Get)
		router.POST("actors", staff, h.Create)
		router.PUT("actors/:id", staff, h.Update)
		router.DELETE("actors/:id", staff, h.Delete)
	}
}

// CreateActorRequest 建立演員請求
type CreateActorRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

// UpdateActorRequest 更新演員請求
type UpdateActorRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

func (h *ActorHandler) List(c *gin.Context) {
	actors, err := h.service.List(c)
	if err != nil {
		handleServiceError(c, err, "ListActors")
		return
	}
	c.JSON(http.StatusOK, actors)
}

func (h *ActorHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid actor id"})
		return
	}
	actor, err := h.service.GetByID(c, id)
	if err != nil {
		handleServiceError(c, err, "GetActor")
		return
	}
	c.JSON(http.StatusOK, actor)
}

func (h *ActorHandler) Create(c *gin.Context) {
	var req CreateActorRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	actor := &model.Actor{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	created, err := h.service.Create(c, actor)
	if err != nil {
		handleServiceError(c, err, "CreateActor")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ActorHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid actor id"})
		return
	}
	var req UpdateActorRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	params := model.UpdateActorParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	updated, err := h.service.Update(c, id, params)
	if err != nil {
		handleServiceError(c, err, "UpdateActor")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ActorHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid actor id"})
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		handleServiceError(c, err, "DeleteActor")
		return
	}
	c.Status(http.StatusNoContent)
}
