package repository

import (
	"context"
	"fmt"
	"strings"

	"theatre-booking-api/internal/model"
	apperrors "theatre-booking-api/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PerformanceRepository interface {
	Create(ctx context.Context, performance *model.Performance) (*model.Performance, error)
	List(ctx context.Context) ([]*model.PerformanceSummary, error)
	FindByID(ctx context.Context, id int) (*model.Performance, error)
	FindByPerformanceID(ctx context.Context, performanceID uuid.UUID) (*model.Performance, error)
	Update(ctx context.Context, id int, params model.UpdatePerformanceParams) (*model.Performance, error)
	Delete(ctx context.Context, id int) error

	// AvailableSeats 每次呼叫都重新計算，不做快取
	AvailableSeats(ctx context.Context, id int) (int, error)
	TakenSeats(ctx context.Context, id int) ([]model.SeatRef, error)

	// Transaction methods
	FindByPerformanceIDWithHall(ctx context.Context, tx pgx.Tx, performanceID uuid.UUID) (*model.Performance, error)
}

type PerformanceRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewPerformanceRepository(pool *pgxpool.Pool) PerformanceRepository {
	return &PerformanceRepositoryImpl{
		pool: pool,
	}
}

func (r *PerformanceRepositoryImpl) Create(ctx context.Context, performance *model.Performance) (*model.Performance, error) {
	query := `
		INSERT INTO performances (performance_id, play_id, theatre_hall_id, show_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, performance_id, play_id, theatre_hall_id, show_time
	`
	err := r.pool.QueryRow(ctx, query,
		performance.PerformanceID, performance.PlayID, performance.TheatreHallID, performance.ShowTime,
	).Scan(
		&performance.ID,
		&performance.PerformanceID,
		&performance.PlayID,
		&performance.TheatreHallID,
		&performance.ShowTime,
	)
	if err != nil {
		return nil, err
	}
	return performance, nil
}

// List 附帶剩餘座位數：總座位數 - 已售出票數
func (r *PerformanceRepositoryImpl) List(ctx context.Context) ([]*model.PerformanceSummary, error) {
	query := `
		SELECT p.id, p.performance_id, pl.title, th.name, p.show_time,
		       th.rows * th.seats_in_row - COUNT(t.id) AS available_tickets
		FROM performances p
		JOIN plays pl ON pl.id = p.play_id
		JOIN theatre_halls th ON th.id = p.theatre_hall_id
		LEFT JOIN tickets t ON t.performance_id = p.id
		GROUP BY p.id, p.performance_id, pl.title, th.name, p.show_time, th.rows, th.seats_in_row
		ORDER BY p.show_time DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]*model.PerformanceSummary, 0)
	for rows.Next() {
		var s model.PerformanceSummary
		err := rows.Scan(
			&s.ID,
			&s.PerformanceID,
			&s.PlayTitle,
			&s.TheatreHallName,
			&s.ShowTime,
			&s.AvailableTickets,
		)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, &s)
	}
	return summaries, rows.Err()
}

func (r *PerformanceRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Performance, error) {
	return r.findOne(ctx, `WHERE p.id = $1`, id)
}

func (r *PerformanceRepositoryImpl) FindByPerformanceID(ctx context.Context, performanceID uuid.UUID) (*model.Performance, error) {
	return r.findOne(ctx, `WHERE p.performance_id = $1`, performanceID)
}

func (r *PerformanceRepositoryImpl) findOne(ctx context.Context, where string, arg interface{}) (*model.Performance, error) {
	query := fmt.Sprintf(`
		SELECT p.id, p.performance_id, p.play_id, p.theatre_hall_id, p.show_time,
		       pl.id, pl.play_id, pl.title, pl.description,
		       th.id, th.name, th.rows, th.seats_in_row
		FROM performances p
		JOIN plays pl ON pl.id = p.play_id
		JOIN theatre_halls th ON th.id = p.theatre_hall_id
		%s
	`, where)

	var performance model.Performance
	var play model.Play
	var hall model.TheatreHall
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&performance.ID,
		&performance.PerformanceID,
		&performance.PlayID,
		&performance.TheatreHallID,
		&performance.ShowTime,
		&play.ID,
		&play.PlayID,
		&play.Title,
		&play.Description,
		&hall.ID,
		&hall.Name,
		&hall.Rows,
		&hall.SeatsInRow,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPerformanceNotFound
		}
		return nil, err
	}

	performance.Play = &play
	performance.Hall = &hall
	return &performance, nil
}

// FindByPerformanceIDWithHall 訂票交易內用：同一交易視野下解析場次與劇場
func (r *PerformanceRepositoryImpl) FindByPerformanceIDWithHall(ctx context.Context, tx pgx.Tx, performanceID uuid.UUID) (*model.Performance, error) {
	query := `
		SELECT p.id, p.performance_id, p.play_id, p.theatre_hall_id, p.show_time,
		       th.id, th.name, th.rows, th.seats_in_row
		FROM performances p
		JOIN theatre_halls th ON th.id = p.theatre_hall_id
		WHERE p.performance_id = $1
	`

	var performance model.Performance
	var hall model.TheatreHall
	err := tx.QueryRow(ctx, query, performanceID).Scan(
		&performance.ID,
		&performance.PerformanceID,
		&performance.PlayID,
		&performance.TheatreHallID,
		&performance.ShowTime,
		&hall.ID,
		&hall.Name,
		&hall.Rows,
		&hall.SeatsInRow,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPerformanceNotFound
		}
		return nil, err
	}

	performance.Hall = &hall
	return &performance, nil
}

func (r *PerformanceRepositoryImpl) Update(ctx context.Context, id int, params model.UpdatePerformanceParams) (*model.Performance, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.PlayID != nil {
		sets = append(sets, fmt.Sprintf("play_id = $%d", argPos))
		args = append(args, *params.PlayID)
		argPos++
	}

	if params.TheatreHallID != nil {
		sets = append(sets, fmt.Sprintf("theatre_hall_id = $%d", argPos))
		args = append(args, *params.TheatreHallID)
		argPos++
	}

	if params.ShowTime != nil {
		sets = append(sets, fmt.Sprintf("show_time = $%d", argPos))
		args = append(args, *params.ShowTime)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE performances
		SET %s
		WHERE id = $%d
		RETURNING id, performance_id, play_id, theatre_hall_id, show_time
	`, strings.Join(sets, ", "), argPos)

	var performance model.Performance
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&performance.ID,
		&performance.PerformanceID,
		&performance.PlayID,
		&performance.TheatreHallID,
		&performance.ShowTime,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPerformanceNotFound
		}
		return nil, err
	}

	return &performance, nil
}

func (r *PerformanceRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM performances WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrPerformanceNotFound
	}

	return nil
}

func (r *PerformanceRepositoryImpl) AvailableSeats(ctx context.Context, id int) (int, error) {
	query := `
		SELECT th.rows * th.seats_in_row - COUNT(t.id)
		FROM performances p
		JOIN theatre_halls th ON th.id = p.theatre_hall_id
		LEFT JOIN tickets t ON t.performance_id = p.id
		WHERE p.id = $1
		GROUP BY th.rows, th.seats_in_row
	`

	var available int
	err := r.pool.QueryRow(ctx, query, id).Scan(&available)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, apperrors.ErrPerformanceNotFound
		}
		return 0, err
	}

	return available, nil
}

func (r *PerformanceRepositoryImpl) TakenSeats(ctx context.Context, id int) ([]model.SeatRef, error) {
	query := `
		SELECT "row", seat
		FROM tickets
		WHERE performance_id = $1
		ORDER BY "row", seat
	`
	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]model.SeatRef, 0)
	for rows.Next() {
		var s model.SeatRef
		if err := rows.Scan(&s.Row, &s.Seat); err != nil {
			return nil, err
		}
		seats = append(seats, s)
	}
	return seats, rows.Err()
}
