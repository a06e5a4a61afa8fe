package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingEvent 訂票完成後發佈到事件流的訊息，
// worker 消費後寫入 booking_events 稽核表
type BookingEvent struct {
	ID            int       `json:"id" db:"id"`
	ReservationID uuid.UUID `json:"reservation_id" db:"reservation_id"`
	UserID        int       `json:"user_id" db:"user_id"`
	TicketCount   int       `json:"ticket_count" db:"ticket_count"`
	OccurredAt    time.Time `json:"occurred_at" db:"occurred_at"`
}
