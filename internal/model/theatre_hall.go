package model

type TheatreHall struct {
	ID         int    `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	Rows       int    `json:"rows" db:"rows"`
	SeatsInRow int    `json:"seats_in_row" db:"seats_in_row"`
}

// Capacity 劇場總座位數
func (h *TheatreHall) Capacity() int {
	return h.Rows * h.SeatsInRow
}

type UpdateTheatreHallParams struct {
	Name       *string
	Rows       *int
	SeatsInRow *int
}
