package repository

import (
	"context"
	"fmt"

	"theatre-booking-api/internal/model"
	apperrors "theatre-booking-api/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository interface {
	ListByUserID(ctx context.Context, userID int) ([]*model.Reservation, error)
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*model.Reservation, error)
	LoadTickets(ctx context.Context, reservations []*model.Reservation) error

	// Transaction methods
	Create(ctx context.Context, tx pgx.Tx, reservation *model.Reservation) (*model.Reservation, error)
	InsertTicket(ctx context.Context, tx pgx.Tx, ticket *model.Ticket) (*model.Ticket, error)
}

type ReservationRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) ReservationRepository {
	return &ReservationRepositoryImpl{
		pool: pool,
	}
}

func (r *ReservationRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, reservation *model.Reservation) (*model.Reservation, error) {
	query := `
		INSERT INTO reservations (reservation_id, user_id)
		VALUES ($1, $2)
		RETURNING id, reservation_id, user_id, created_at
	`

	err := tx.QueryRow(ctx, query,
		reservation.ReservationID, reservation.UserID,
	).Scan(
		&reservation.ID,
		&reservation.ReservationID,
		&reservation.UserID,
		&reservation.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	return reservation, nil
}

// InsertTicket 寫入單張票。(performance_id, row, seat) 的唯一索引
// 是防止重複訂位的唯一機制：撞到唯一約束即表示座位已被搶走。
func (r *ReservationRepositoryImpl) InsertTicket(ctx context.Context, tx pgx.Tx, ticket *model.Ticket) (*model.Ticket, error) {
	query := `
		INSERT INTO tickets ("row", seat, performance_id, reservation_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, "row", seat, performance_id, reservation_id
	`

	err := tx.QueryRow(ctx, query,
		ticket.Row, ticket.Seat, ticket.PerformanceID, ticket.ReservationID,
	).Scan(
		&ticket.ID,
		&ticket.Row,
		&ticket.Seat,
		&ticket.PerformanceID,
		&ticket.ReservationID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrSeatAlreadyTaken
		}
		return nil, err
	}

	return ticket, nil
}

func (r *ReservationRepositoryImpl) ListByUserID(ctx context.Context, userID int) ([]*model.Reservation, error) {
	query := `
		SELECT id, reservation_id, user_id, created_at
		FROM reservations
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]*model.Reservation, 0)
	for rows.Next() {
		var reservation model.Reservation
		err := rows.Scan(
			&reservation.ID,
			&reservation.ReservationID,
			&reservation.UserID,
			&reservation.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, &reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reservations, nil
}

func (r *ReservationRepositoryImpl) FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*model.Reservation, error) {
	query := `
		SELECT id, reservation_id, user_id, created_at
		FROM reservations
		WHERE reservation_id = $1
	`

	var reservation model.Reservation
	err := r.pool.QueryRow(ctx, query, reservationID).Scan(
		&reservation.ID,
		&reservation.ReservationID,
		&reservation.UserID,
		&reservation.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrReservationNotFound
		}
		return nil, err
	}

	return &reservation, nil
}

// LoadTickets 一次載入多筆預約的票券（含場次摘要），避免逐筆查詢
func (r *ReservationRepositoryImpl) LoadTickets(ctx context.Context, reservations []*model.Reservation) error {
	if len(reservations) == 0 {
		return nil
	}

	byID := make(map[int]*model.Reservation, len(reservations))
	ids := make([]int, 0, len(reservations))
	for _, res := range reservations {
		res.Tickets = make([]*model.Ticket, 0)
		byID[res.ID] = res
		ids = append(ids, res.ID)
	}

	query := `
		SELECT t.id, t.row, t.seat, t.performance_id, t.reservation_id,
		       p.id, p.performance_id, p.play_id, p.theatre_hall_id, p.show_time,
		       pl.title, th.name
		FROM tickets t
		JOIN performances p ON p.id = t.performance_id
		JOIN plays pl ON pl.id = p.play_id
		JOIN theatre_halls th ON th.id = p.theatre_hall_id
		WHERE t.reservation_id = ANY($1)
		ORDER BY t.id
	`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var ticket model.Ticket
		var performance model.Performance
		var playTitle, hallName string
		err := rows.Scan(
			&ticket.ID,
			&ticket.Row,
			&ticket.Seat,
			&ticket.PerformanceID,
			&ticket.ReservationID,
			&performance.ID,
			&performance.PerformanceID,
			&performance.PlayID,
			&performance.TheatreHallID,
			&performance.ShowTime,
			&playTitle,
			&hallName,
		)
		if err != nil {
			return err
		}
		performance.Play = &model.Play{ID: performance.PlayID, Title: playTitle}
		performance.Hall = &model.TheatreHall{ID: performance.TheatreHallID, Name: hallName}
		ticket.Performance = &performance
		byID[ticket.ReservationID].Tickets = append(byID[ticket.ReservationID].Tickets, &ticket)
	}

	return rows.Err()
}
