package model

import (
	"time"

	"github.com/google/uuid"
)

// Reservation 一次訂票：一筆預約加上至少一張票，建立後不可修改
type Reservation struct {
	ID            int       `json:"id" db:"id"`
	ReservationID uuid.UUID `json:"reservation_id" db:"reservation_id"`
	UserID        int       `json:"user_id" db:"user_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`

	Tickets []*Ticket `json:"tickets" db:"-"`
}

// CreateReservationRequest 訂票請求
type CreateReservationRequest struct {
	Tickets []TicketRequest `json:"tickets" binding:"required,min=1,dive"`
}

// ReservationSummary 列表投影：票券附場次摘要
type ReservationSummary struct {
	ID            int              `json:"id"`
	ReservationID uuid.UUID        `json:"reservation_id"`
	CreatedAt     time.Time        `json:"created_at"`
	Tickets       []*TicketSummary `json:"tickets"`
}
