package model

import (
	"fmt"

	apperrors "theatre-booking-api/pkg/app_errors"

	"github.com/google/uuid"
)

type Ticket struct {
	ID            int `json:"id" db:"id"`
	Row           int `json:"row" db:"row"`
	Seat          int `json:"seat" db:"seat"`
	PerformanceID int `json:"performance_id" db:"performance_id"`
	ReservationID int `json:"reservation_id" db:"reservation_id"`

	Performance *Performance `json:"performance,omitempty" db:"-"`
}

// SeatRef 座位圖上的一個座位
type SeatRef struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

// TicketRequest 訂票請求中的單一座位
type TicketRequest struct {
	Row           int       `json:"row" binding:"required"`
	Seat          int       `json:"seat" binding:"required"`
	PerformanceID uuid.UUID `json:"performance_id" binding:"required"`
}

// ValidateSeat 檢查座位是否落在劇場範圍內。
// 沿用既有行為：只檢查上限，不檢查下限（<=0 會通過）。
func ValidateSeat(row, seat int, hall *TheatreHall) error {
	if row > hall.Rows {
		return fmt.Errorf("row must be in range [1, %d]: %w", hall.Rows, apperrors.ErrSeatOutOfRange)
	}
	if seat > hall.SeatsInRow {
		return fmt.Errorf("seat must be in range [1, %d]: %w", hall.SeatsInRow, apperrors.ErrSeatOutOfRange)
	}
	return nil
}

// TicketSummary 訂單列表用投影，場次以摘要呈現
type TicketSummary struct {
	ID          int                 `json:"id"`
	Row         int                 `json:"row"`
	Seat        int                 `json:"seat"`
	Performance *PerformanceSummary `json:"performance"`
}
