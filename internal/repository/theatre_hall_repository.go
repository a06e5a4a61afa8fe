package repository

import (
	"context"
	"fmt"
	"strings"

	"theatre-booking-api/internal/model"
	apperrors "theatre-booking-api/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TheatreHallRepository interface {
	Create(ctx context.Context, hall *model.TheatreHall) (*model.TheatreHall, error)
	List(ctx context.Context) ([]*model.TheatreHall, error)
	FindByID(ctx context.Context, id int) (*model.TheatreHall, error)
	Update(ctx context.Context, id int, params model.UpdateTheatreHallParams) (*model.TheatreHall, error)
	Delete(ctx context.Context, id int) error
}

type TheatreHallRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTheatreHallRepository(pool *pgxpool.Pool) TheatreHallRepository {
	return &TheatreHallRepositoryImpl{
		pool: pool,
	}
}

func (r *TheatreHallRepositoryImpl) Create(ctx context.Context, hall *model.TheatreHall) (*model.TheatreHall, error) {
	query := `
		INSERT INTO theatre_halls (name, rows, seats_in_row)
		VALUES ($1, $2, $3)
		RETURNING id, name, rows, seats_in_row
	`
	err := r.pool.QueryRow(ctx, query,
		hall.Name, hall.Rows, hall.SeatsInRow,
	).Scan(
		&hall.ID,
		&hall.Name,
		&hall.Rows,
		&hall.SeatsInRow,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrHallNameTaken
		}
		return nil, err
	}
	return hall, nil
}

func (r *TheatreHallRepositoryImpl) List(ctx context.Context) ([]*model.TheatreHall, error) {
	query := `
		SELECT id, name, rows, seats_in_row
		FROM theatre_halls
		ORDER BY name
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	halls := make([]*model.TheatreHall, 0)
	for rows.Next() {
		var hall model.TheatreHall
		err := rows.Scan(
			&hall.ID,
			&hall.Name,
			&hall.Rows,
			&hall.SeatsInRow,
		)
		if err != nil {
			return nil, err
		}
		halls = append(halls, &hall)
	}
	return halls, rows.Err()
}

func (r *TheatreHallRepositoryImpl) FindByID(ctx context.Context, id int) (*model.TheatreHall, error) {
	query := `
		SELECT id, name, rows, seats_in_row
		FROM theatre_halls
		WHERE id = $1
	`

	var hall model.TheatreHall
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&hall.ID,
		&hall.Name,
		&hall.Rows,
		&hall.SeatsInRow,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrHallNotFound
		}
		return nil, err
	}

	return &hall, nil
}

func (r *TheatreHallRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateTheatreHallParams) (*model.TheatreHall, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *params.Name)
		argPos++
	}

	if params.Rows != nil {
		sets = append(sets, fmt.Sprintf("rows = $%d", argPos))
		args = append(args, *params.Rows)
		argPos++
	}

	if params.SeatsInRow != nil {
		sets = append(sets, fmt.Sprintf("seats_in_row = $%d", argPos))
		args = append(args, *params.SeatsInRow)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE theatre_halls
		SET %s
		WHERE id = $%d
		RETURNING id, name, rows, seats_in_row
	`, strings.Join(sets, ", "), argPos)

	var hall model.TheatreHall
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&hall.ID,
		&hall.Name,
		&hall.Rows,
		&hall.SeatsInRow,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrHallNotFound
		}
		if isUniqueViolation(err) {
			return nil, apperrors.ErrHallNameTaken
		}
		return nil, err
	}

	return &hall, nil
}

func (r *TheatreHallRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM theatre_halls WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrHallNotFound
	}

	return nil
}
