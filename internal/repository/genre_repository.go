package repository

import (
	"context"

	"theatre-booking-api/internal/model"
	apperrors "theatre-booking-api/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GenreRepository interface {
	Create(ctx context.Context, genre *model.Genre) (*model.Genre, error)
	List(ctx context.Context) ([]*model.Genre, error)
	FindByID(ctx context.Context, id int) (*model.Genre, error)
	Update(ctx context.Context, id int, params model.UpdateGenreParams) (*model.Genre, error)
	Delete(ctx context.Context, id int) error
}

type GenreRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewGenreRepository(pool *pgxpool.Pool) GenreRepository {
	return &GenreRepositoryImpl{
		pool: pool,
	}
}

func (r *GenreRepositoryImpl) Create(ctx context.Context, genre *model.Genre) (*model.Genre, error) {
	query := `
		INSERT INTO genres (name)
		VALUES ($1)
		RETURNING id, name
	`
	err := r.pool.QueryRow(ctx, query, genre.Name).Scan(&genre.ID, &genre.Name)
	if err != nil {
		return nil, err
	}
	return genre, nil
}

func (r *GenreRepositoryImpl) List(ctx context.Context) ([]*model.Genre, error) {
	query := `
		SELECT id, name
		FROM genres
		ORDER BY name
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := make([]*model.Genre, 0)
	for rows.Next() {
		var genre model.Genre
		if err := rows.Scan(&genre.ID, &genre.Name); err != nil {
			return nil, err
		}
		genres = append(genres, &genre)
	}
	return genres, rows.Err()
}

func (r *GenreRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Genre, error) {
	query := `
		SELECT id, name
		FROM genres
		WHERE id = $1
	`

	var genre model.Genre
	err := r.pool.QueryRow(ctx, query, id).Scan(&genre.ID, &genre.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrGenreNotFound
		}
		return nil, err
	}

	return &genre, nil
}

func (r *GenreRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateGenreParams) (*model.Genre, error) {
	if params.Name == nil {
		return nil, apperrors.ErrInvalidInput
	}

	query := `
		UPDATE genres
		SET name = $1
		WHERE id = $2
		RETURNING id, name
	`

	var genre model.Genre
	err := r.pool.QueryRow(ctx, query, *params.Name, id).Scan(&genre.ID, &genre.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrGenreNotFound
		}
		return nil, err
	}

	return &genre, nil
}

func (r *GenreRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrGenreNotFound
	}

	return nil
}
