package service

import (
	"context"
	"time"

	"theatre-booking-api/internal/cache"
	"theatre-booking-api/internal/model"
	"theatre-booking-api/internal/repository"
	"theatre-booking-api/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const catalogCacheTTL = 5 * time.Minute

type PlayService interface {
	List(ctx context.Context) ([]*model.PlaySummary, error)
	GetByPlayID(ctx context.Context, playID uuid.UUID) (*model.PlayDetail, error)
	Create(ctx context.Context, play *model.Play, actorIDs, genreIDs []int) (*model.Play, error)
	UpdateByPlayID(ctx context.Context, playID uuid.UUID, params model.UpdatePlayParams) (*model.Play, error)
	DeleteByPlayID(ctx context.Context, playID uuid.UUID) error
}

type PlayServiceImpl struct {
	pool         *pgxpool.Pool
	repo         repository.PlayRepository
	catalogCache cache.CatalogCache
}

func NewPlayService(pool *pgxpool.Pool, repo repository.PlayRepository, catalogCache cache.CatalogCache) PlayService {
	return &PlayServiceImpl{pool: pool, repo: repo, catalogCache: catalogCache}
}

func (s *PlayServiceImpl) List(ctx context.Context) ([]*model.PlaySummary, error) {
	var cached []*model.PlaySummary
	if err := s.catalogCache.Get(ctx, cache.KeyPlays, &cached); err == nil {
		return cached, nil
	}

	plays, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.repo.LoadRelations(ctx, plays); err != nil {
		return nil, err
	}

	summaries := make([]*model.PlaySummary, 0, len(plays))
	for _, play := range plays {
		summaries = append(summaries, play.Summary())
	}

	if err := s.catalogCache.Set(ctx, cache.KeyPlays, summaries, catalogCacheTTL); err != nil {
		logger.WithComponent("service").Warn("failed to cache play list", zap.Error(err))
	}

	return summaries, nil
}

func (s *PlayServiceImpl) GetByPlayID(ctx context.Context, playID uuid.UUID) (*model.PlayDetail, error) {
	key := cache.KeyPlayDetail(playID.String())

	var cached model.PlayDetail
	if err := s.catalogCache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	}

	play, err := s.repo.FindByPlayID(ctx, playID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.LoadRelations(ctx, []*model.Play{play}); err != nil {
		return nil, err
	}

	detail := play.Detail()
	if err := s.catalogCache.Set(ctx, key, detail, catalogCacheTTL); err != nil {
		logger.WithComponent("service").Warn("failed to cache play detail", zap.Error(err))
	}

	return detail, nil
}

func (s *PlayServiceImpl) Create(ctx context.Context, play *model.Play, actorIDs, genreIDs []int) (*model.Play, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if play.PlayID == uuid.Nil {
		play.PlayID = uuid.New()
	}
	play, err = s.repo.Create(ctx, tx, play)
	if err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceActors(ctx, tx, play.ID, actorIDs); err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceGenres(ctx, tx, play.ID, genreIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.invalidateCatalog(ctx)
	if err := s.repo.LoadRelations(ctx, []*model.Play{play}); err != nil {
		return nil, err
	}
	return play, nil
}

func (s *PlayServiceImpl) UpdateByPlayID(ctx context.Context, playID uuid.UUID, params model.UpdatePlayParams) (*model.Play, error) {
	existing, err := s.repo.FindByPlayID(ctx, playID)
	if err != nil {
		return nil, err
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	play, err := s.repo.Update(ctx, tx, existing.ID, params)
	if err != nil {
		return nil, err
	}
	if params.ActorIDs != nil {
		if err := s.repo.ReplaceActors(ctx, tx, play.ID, params.ActorIDs); err != nil {
			return nil, err
		}
	}
	if params.GenreIDs != nil {
		if err := s.repo.ReplaceGenres(ctx, tx, play.ID, params.GenreIDs); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.invalidateCatalog(ctx)
	if err := s.repo.LoadRelations(ctx, []*model.Play{play}); err != nil {
		return nil, err
	}
	return play, nil
}

func (s *PlayServiceImpl) DeleteByPlayID(ctx context.Context, playID uuid.UUID) error {
	if err := s.repo.DeleteByPlayID(ctx, playID); err != nil {
		return err
	}
	s.invalidateCatalog(ctx)
	return nil
}

func (s *PlayServiceImpl) invalidateCatalog(ctx context.Context) {
	if err := s.catalogCache.InvalidatePrefix(ctx, cache.KeyPlays); err != nil {
		logger.WithComponent("service").Warn("failed to invalidate play cache", zap.Error(err))
	}
}
