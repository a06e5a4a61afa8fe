package handler

import (
	"errors"
	"net/http"

	apperrors "theatre-booking-api/pkg/app_errors"
	"theatre-booking-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// handleServiceError 把 service 層的 sentinel error 對應到 HTTP 狀態碼。
// 座位衝突回 409，讓呼叫端知道可以改選座位後重送。
func handleServiceError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrSeatAlreadyTaken):
		log.Warn("Seat already taken")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrSeatOutOfRange),
		errors.Is(err, apperrors.ErrEmptyReservation),
		errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrActorNotFound),
		errors.Is(err, apperrors.ErrGenreNotFound),
		errors.Is(err, apperrors.ErrPlayNotFound),
		errors.Is(err, apperrors.ErrHallNotFound),
		errors.Is(err, apperrors.ErrPerformanceNotFound),
		errors.Is(err, apperrors.ErrReservationNotFound),
		errors.Is(err, apperrors.ErrUserNotFound):
		log.Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrHallNameTaken),
		errors.Is(err, apperrors.ErrEmailTaken):
		log.Warn("Duplicate resource")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		log.Warn("Invalid credentials")
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
