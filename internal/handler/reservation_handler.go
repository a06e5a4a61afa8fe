package handler

import (
	"net/http"

	"theatre-booking-api/internal/middleware"
	"theatre-booking-api/internal/model"
	"theatre-booking-api/internal/service"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	service service.ReservationService
}

func NewReservationHandler(service service.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

func (h *ReservationHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	router := r.Group("/api/v1", auth)
	{
		router.GET("reservations", h.List)
		router.POST("reservations", h.Create)
	}
}

// List 只回傳目前使用者自己的訂位
func (h *ReservationHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	reservations, err := h.service.ListByUser(c, userID)
	if err != nil {
		handleServiceError(c, err, "ListReservations")
		return
	}
	c.JSON(http.StatusOK, reservations)
}

func (h *ReservationHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	var req model.CreateReservationRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	reservation, err := h.service.Create(c, userID, req.Tickets)
	if err != nil {
		handleServiceError(c, err, "CreateReservation")
		return
	}
	c.JSON(http.StatusCreated, reservation)
}
