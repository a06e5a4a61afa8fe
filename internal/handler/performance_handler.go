package handler

import (
	"net/http"
	"time"

	"theatre-booking-api/internal/model"
	"theatre-booking-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PerformanceHandler struct {
	service service.PerformanceService
}

func NewPerformanceHandler(service service.PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{service: service}
}

func (h *PerformanceHandler) RegisterRoutes(r *gin.Engine, auth, staff gin.HandlerFunc) {
	router := r.Group("/api/v1", auth)
	{
		router.GET("performances", h.List)
		router.GET("performances/:uuid", h.Get)
		router.GET("performances/:uuid/available-seats", h.AvailableSeats)
		router.POST("performances", staff, h.Create)
		router.PUT("performances/:uuid", staff, h.Update)
		router.DELETE("performances/:uuid", staff, h.Delete)
	}
}

type CreatePerformanceRequest struct {
	PlayID        int       `json:"play_id" binding:"required"`
	TheatreHallID int       `json:"theatre_hall_id" binding:"required"`
	ShowTime      time.Time `json:"show_time" binding:"required"`
}

type UpdatePerformanceRequest struct {
	PlayID        *int       `json:"play_id"`
	TheatreHallID *int       `json:"theatre_hall_id"`
	ShowTime      *time.Time `json:"show_time"`
}

func (h *PerformanceHandler) List(c *gin.Context) {
	performances, err := h.service.List(c)
	if err != nil {
		handleServiceError(c, err, "ListPerformances")
		return
	}
	c.JSON(http.StatusOK, performances)
}

func (h *PerformanceHandler) Get(c *gin.Context) {
	performanceID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid performance id"})
		return
	}
	performance, err := h.service.GetByPerformanceID(c, performanceID)
	if err != nil {
		handleServiceError(c, err, "GetPerformance")
		return
	}
	c.JSON(http.StatusOK, performance)
}

// AvailableSeats 每次呼叫都會即時計算，不走快取。
func (h *PerformanceHandler) AvailableSeats(c *gin.Context) {
	performanceID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid performance id"})
		return
	}
	available, err := h.service.AvailableSeats(c, performanceID)
	if err != nil {
		handleServiceError(c, err, "AvailableSeats")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"performance_id":    performanceID,
		"available_tickets": available,
	})
}

func (h *PerformanceHandler) Create(c *gin.Context) {
	var req CreatePerformanceRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	created, err := h.service.Create(c, &model.Performance{
		PlayID:        req.PlayID,
		TheatreHallID: req.TheatreHallID,
		ShowTime:      req.ShowTime,
	})
	if err != nil {
		handleServiceError(c, err, "CreatePerformance")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PerformanceHandler) Update(c *gin.Context) {
	performanceID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid performance id"})
		return
	}
	var req UpdatePerformanceRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	updated, err := h.service.UpdateByPerformanceID(c, performanceID, model.UpdatePerformanceParams{
		PlayID:        req.PlayID,
		TheatreHallID: req.TheatreHallID,
		ShowTime:      req.ShowTime,
	})
	if err != nil {
		handleServiceError(c, err, "UpdatePerformance")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *PerformanceHandler) Delete(c *gin.Context) {
	performanceID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid performance id"})
		return
	}
	if err := h.service.DeleteByPerformanceID(c, performanceID); err != nil {
		handleServiceError(c, err, "DeletePerformance")
		return
	}
	c.Status(http.StatusNoContent)
}
