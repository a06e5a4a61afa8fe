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

type PlayRepository interface {
	List(ctx context.Context) ([]*model.Play, error)
	FindByID(ctx context.Context, id int) (*model.Play, error)
	FindByPlayID(ctx context.Context, playID uuid.UUID) (*model.Play, error)
	DeleteByPlayID(ctx context.Context, playID uuid.UUID) error

	// Transaction methods
	Create(ctx context.Context, tx pgx.Tx, play *model.Play) (*model.Play, error)
	Update(ctx context.Context, tx pgx.Tx, id int, params model.UpdatePlayParams) (*model.Play, error)
	ReplaceActors(ctx context.Context, tx pgx.Tx, playID int, actorIDs []int) error
	ReplaceGenres(ctx context.Context, tx pgx.Tx, playID int, genreIDs []int) error
	LoadRelations(ctx context.Context, plays []*model.Play) error
}

type PlayRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewPlayRepository(pool *pgxpool.Pool) PlayRepository {
	return &PlayRepositoryImpl{
		pool: pool,
	}
}

func (r *PlayRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, play *model.Play) (*model.Play, error) {
	query := `
		INSERT INTO plays (play_id, title, description)
		VALUES ($1, $2, $3)
		RETURNING id, play_id, title, description
	`
	err := tx.QueryRow(ctx, query,
		play.PlayID, play.Title, play.Description,
	).Scan(
		&play.ID,
		&play.PlayID,
		&play.Title,
		&play.Description,
	)
	if err != nil {
		return nil, err
	}
	return play, nil
}

func (r *PlayRepositoryImpl) List(ctx context.Context) ([]*model.Play, error) {
	query := `
		SELECT id, play_id, title, description
		FROM plays
		ORDER BY title
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plays := make([]*model.Play, 0)
	for rows.Next() {
		var play model.Play
		err := rows.Scan(
			&play.ID,
			&play.PlayID,
			&play.Title,
			&play.Description,
		)
		if err != nil {
			return nil, err
		}
		plays = append(plays, &play)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plays, nil
}

func (r *PlayRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Play, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

func (r *PlayRepositoryImpl) FindByPlayID(ctx context.Context, playID uuid.UUID) (*model.Play, error) {
	return r.findOne(ctx, `WHERE play_id = $1`, playID)
}

func (r *PlayRepositoryImpl) findOne(ctx context.Context, where string, arg interface{}) (*model.Play, error) {
	query := fmt.Sprintf(`
		SELECT id, play_id, title, description
		FROM plays
		%s
	`, where)

	var play model.Play
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&play.ID,
		&play.PlayID,
		&play.Title,
		&play.Description,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPlayNotFound
		}
		return nil, err
	}

	return &play, nil
}

func (r *PlayRepositoryImpl) DeleteByPlayID(ctx context.Context, playID uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM plays WHERE play_id = $1`, playID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrPlayNotFound
	}
	return nil
}

func (r *PlayRepositoryImpl) Update(ctx context.Context, tx pgx.Tx, id int, params model.UpdatePlayParams) (*model.Play, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Title != nil {
		sets = append(sets, fmt.Sprintf("title = $%d", argPos))
		args = append(args, *params.Title)
		argPos++
	}

	if params.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", argPos))
		args = append(args, *params.Description)
		argPos++
	}

	if len(sets) == 0 && params.ActorIDs == nil && params.GenreIDs == nil {
		return nil, apperrors.ErrInvalidInput
	}

	play := &model.Play{}
	if len(sets) > 0 {
		args = append(args, id)
		query := fmt.Sprintf(`
			UPDATE plays
			SET %s
			WHERE id = $%d
			RETURNING id, play_id, title, description
		`, strings.Join(sets, ", "), argPos)

		err := tx.QueryRow(ctx, query, args...).Scan(
			&play.ID,
			&play.PlayID,
			&play.Title,
			&play.Description,
		)
		if err != nil {
			if err == pgx.ErrNoRows {
				return nil, apperrors.ErrPlayNotFound
			}
			return nil, err
		}
	} else {
		err := tx.QueryRow(ctx, `SELECT id, play_id, title, description FROM plays WHERE id = $1`, id).Scan(
			&play.ID,
			&play.PlayID,
			&play.Title,
			&play.Description,
		)
		if err != nil {
			if err == pgx.ErrNoRows {
				return nil, apperrors.ErrPlayNotFound
			}
			return nil, err
		}
	}

	return play, nil
}

func (r *PlayRepositoryImpl) ReplaceActors(ctx context.Context, tx pgx.Tx, playID int, actorIDs []int) error {
	if _, err := tx.Exec(ctx, `DELETE FROM play_actors WHERE play_id = $1`, playID); err != nil {
		return err
	}
	for _, actorID := range actorIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO play_actors (play_id, actor_id) VALUES ($1, $2)`,
			playID, actorID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *PlayRepositoryImpl) ReplaceGenres(ctx context.Context, tx pgx.Tx, playID int, genreIDs []int) error {
	if _, err := tx.Exec(ctx, `DELETE FROM play_genres WHERE play_id = $1`, playID); err != nil {
		return err
	}
	for _, genreID := range genreIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO play_genres (play_id, genre_id) VALUES ($1, $2)`,
			playID, genreID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// LoadRelations 一次載入多齣戲的演員與類型，避免逐筆查詢
func (r *PlayRepositoryImpl) LoadRelations(ctx context.Context, plays []*model.Play) error {
	if len(plays) == 0 {
		return nil
	}

	byID := make(map[int]*model.Play, len(plays))
	ids := make([]int, 0, len(plays))
	for _, p := range plays {
		p.Actors = make([]*model.Actor, 0)
		p.Genres = make([]*model.Genre, 0)
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	actorQuery := `
		SELECT pa.play_id, a.id, a.first_name, a.last_name
		FROM play_actors pa
		JOIN actors a ON a.id = pa.actor_id
		WHERE pa.play_id = ANY($1)
		ORDER BY a.first_name, a.last_name
	`
	rows, err := r.pool.Query(ctx, actorQuery, ids)
	if err != nil {
		return err
	}
	for rows.Next() {
		var playID int
		var actor model.Actor
		if err := rows.Scan(&playID, &actor.ID, &actor.FirstName, &actor.LastName); err != nil {
			rows.Close()
			return err
		}
		byID[playID].Actors = append(byID[playID].Actors, &actor)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	genreQuery := `
		SELECT pg.play_id, g.id, g.name
		FROM play_genres pg
		JOIN genres g ON g.id = pg.genre_id
		WHERE pg.play_id = ANY($1)
		ORDER BY g.name
	`
	rows, err = r.pool.Query(ctx, genreQuery, ids)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var playID int
		var genre model.Genre
		if err := rows.Scan(&playID, &genre.ID, &genre.Name); err != nil {
			return err
		}
		byID[playID].Genres = append(byID[playID].Genres, &genre)
	}
	return rows.Err()
}
