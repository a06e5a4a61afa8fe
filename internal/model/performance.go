package model

import (
	"time"

	"github.com/google/uuid"
)

type Performance struct {
	ID            int       `json:"id" db:"id"`
	PerformanceID uuid.UUID `json:"performance_id" db:"performance_id"`
	PlayID        int       `json:"play_id" db:"play_id"`
	TheatreHallID int       `json:"theatre_hall_id" db:"theatre_hall_id"`
	ShowTime      time.Time `json:"show_time" db:"show_time"`

	Play *Play        `json:"play,omitempty" db:"-"`
	Hall *TheatreHall `json:"theatre_hall,omitempty" db:"-"`
}

type UpdatePerformanceParams struct {
	PlayID        *int
	TheatreHallID *int
	ShowTime      *time.Time
}

// PerformanceSummary 列表投影：附帶剩餘座位數
type PerformanceSummary struct {
	ID               int       `json:"id"`
	PerformanceID    uuid.UUID `json:"performance_id"`
	PlayTitle        string    `json:"play_title"`
	TheatreHallName  string    `json:"theatre_hall_name"`
	ShowTime         time.Time `json:"show_time"`
	AvailableTickets int       `json:"available_tickets"`
}

// PerformanceDetail 詳情投影：附帶座位圖（已售出座位）
type PerformanceDetail struct {
	ID            int          `json:"id"`
	PerformanceID uuid.UUID    `json:"performance_id"`
	Play          *PlayDetail  `json:"play"`
	TheatreHall   *TheatreHall `json:"theatre_hall"`
	ShowTime      time.Time    `json:"show_time"`
	TakenPlaces   []SeatRef    `json:"taken_places"`
}
