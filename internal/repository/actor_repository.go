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

type ActorRepository interface {
	Create(ctx context.Context, actor *model.Actor) (*model.Actor, error)
	List(ctx context.Context) ([]*model.Actor, error)
	FindByID(ctx context.Context, id int) (*model.Actor, error)
	Update(ctx context.Context, id int, params model.UpdateActorParams) (*model.Actor, error)
	Delete(ctx context.Context, id int) error
}

type ActorRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewActorRepository(pool *pgxpool.Pool) ActorRepository {
	return &ActorRepositoryImpl{
		pool: pool,
	}
}

func (r *ActorRepositoryImpl) Create(ctx context.Context, actor *model.Actor) (*model.Actor, error) {
	query := `
		INSERT INTO actors (first_name, last_name)
		VALUES ($1, $2)
		RETURNING id, first_name, last_name
	`
	err := r.pool.QueryRow(ctx, query,
		actor.FirstName, actor.LastName,
	).Scan(
		&actor.ID,
		&actor.FirstName,
		&actor.LastName,
	)
	if err != nil {
		return nil, err
	}
	return actor, nil
}

func (r *ActorRepositoryImpl) List(ctx context.Context) ([]*model.Actor, error) {
	query := `
		SELECT id, first_name, last_name
		FROM actors
		ORDER BY first_name, last_name
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	actors := make([]*model.Actor, 0)
	for rows.Next() {
		var actor model.Actor
		err := rows.Scan(
			&actor.ID,
			&actor.FirstName,
			&actor.LastName,
		)
		if err != nil {
			return nil, err
		}
		actors = append(actors, &actor)
	}
	return actors, rows.Err()
}

func (r *ActorRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Actor, error) {
	query := `
		SELECT id, first_name, last_name
		FROM actors
		WHERE id = $1
	`

	var actor model.Actor
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&actor.ID,
		&actor.FirstName,
		&actor.LastName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrActorNotFound
		}
		return nil, err
	}

	return &actor, nil
}

func (r *ActorRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateActorParams) (*model.Actor, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.FirstName != nil {
		sets = append(sets, fmt.Sprintf("first_name = $%d", argPos))
		args = append(args, *params.FirstName)
		argPos++
	}

	if params.LastName != nil {
		sets = append(sets, fmt.Sprintf("last_name = $%d", argPos))
		args = append(args, *params.LastName)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE actors
		SET %s
		WHERE id = $%d
		RETURNING id, first_name, last_name
	`, strings.Join(sets, ", "), argPos)

	var actor model.Actor
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&actor.ID,
		&actor.FirstName,
		&actor.LastName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrActorNotFound
		}
		return nil, err
	}

	return &actor, nil
}

func (r *ActorRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM actors WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrActorNotFound
	}

	return nil
}
