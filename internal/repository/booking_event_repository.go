package repository

import (
	"context"
	"fmt"

	"theatre-booking-api/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingEventRepository interface {
	Insert(ctx context.Context, event *model.BookingEvent) (*model.BookingEvent, error)
	ListRecent(ctx context.Context, limit int) ([]*model.BookingEvent, error)
}

type BookingEventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewBookingEventRepository(pool *pgxpool.Pool) BookingEventRepository {
	return &BookingEventRepositoryImpl{
		pool: pool,
	}
}

func (r *BookingEventRepositoryImpl) Insert(ctx context.Context, event *model.BookingEvent) (*model.BookingEvent, error) {
	query := `
		INSERT INTO booking_events (reservation_id, user_id, ticket_count, occurred_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, reservation_id, user_id, ticket_count, occurred_at
	`

	err := r.pool.QueryRow(ctx, query,
		event.ReservationID, event.UserID, event.TicketCount, event.OccurredAt,
	).Scan(
		&event.ID,
		&event.ReservationID,
		&event.UserID,
		&event.TicketCount,
		&event.OccurredAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert booking event: %w", err)
	}

	return event, nil
}

func (r *BookingEventRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]*model.BookingEvent, error) {
	query := `
		SELECT id, reservation_id, user_id, ticket_count, occurred_at
		FROM booking_events
		ORDER BY occurred_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.BookingEvent, 0)
	for rows.Next() {
		var event model.BookingEvent
		err := rows.Scan(
			&event.ID,
			&event.ReservationID,
			&event.UserID,
			&event.TicketCount,
			&event.OccurredAt,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, &event)
	}

	return events, rows.Err()
}
