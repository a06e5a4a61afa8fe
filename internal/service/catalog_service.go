package service

import (
	"context"

	"theatre-booking-api/internal/cache"
	"theatre-booking-api/internal/model"
	"theatre-booking-api/internal/repository"
	apperrors "theatre-booking-api/pkg/app_errors"
	"theatre-booking-api/pkg/logger"

	"go.uber.org/zap"
)

// 演員、類型、劇場三種資源都是純 CRUD，共用同一個快取失效邏輯

type ActorService interface {
	List(ctx context.Context) ([]*model.Actor, error)
	GetByID(ctx context.Context, id int) (*model.Actor, error)
	Create(ctx context.Context, actor *model.Actor) (*model.Actor, error)
	Update(ctx context.Context, id int, params model.UpdateActorParams) (*model.Actor, error)
	Delete(ctx context.Context, id int) error
}

type ActorServiceImpl struct {
	repo         repository.ActorRepository
	catalogCache cache.CatalogCache
}

func NewActorService(repo repository.ActorRepository, catalogCache cache.CatalogCache) ActorService {
	return &ActorServiceImpl{repo: repo, catalogCache: catalogCache}
}

func (s *ActorServiceImpl) List(ctx context.Context) ([]*model.Actor, error) {
	var cached []*model.Actor
	if err := s.catalogCache.Get(ctx, cache.KeyActors, &cached); err == nil {
		return cached, nil
	}

	actors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	cacheSet(ctx, s.catalogCache, cache.KeyActors, actors)
	return actors, nil
}

func (s *ActorServiceImpl) GetByID(ctx context.Context, id int) (*model.Actor, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ActorServiceImpl) Create(ctx context.Context, actor *model.Actor) (*model.Actor, error) {
	created, err := s.repo.Create(ctx, actor)
	if err != nil {
		return nil, err
	}
	cacheInvalidate(ctx, s.catalogCache, cache.KeyActors)
	cacheInvalidatePrefix(ctx, s.catalogCache, cache.KeyPlays)
	return created, nil
}

func (s *ActorServiceImpl) Update(ctx context.Context, id int, params model.UpdateActorParams) (*model.Actor, error) {
	updated, err := s.repo.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}
	cacheInvalidate(ctx, s.catalogCache, cache.KeyActors)
	cacheInvalidatePrefix(ctx, s.catalogCache, cache.KeyPlays)
	return updated, nil
}

func (s *ActorServiceImpl) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	cacheInvalidate(ctx, s.catalogCache, cache.KeyActors)
	cacheInvalidatePrefix(ctx, s.catalogCache, cache.KeyPlays)
	return nil
}

type GenreService interface {
	List(ctx context.Context) ([]*model.Genre, error)
	GetByID(ctx context.Context, id int) (*model.Genre, error)
	Create(ctx context.Context, genre *model.Genre) (*model.Genre, error)
	Update(ctx context.Context, id int, params model.UpdateGenreParams) (*model.Genre, error)
	Delete(ctx context.Context, id int) error
}

type GenreServiceImpl struct {
	repo         repository.GenreRepository
	catalogCache cache.CatalogCache
}

func NewGenreService(repo repository.GenreRepository, catalogCache cache.CatalogCache) GenreService {
	return &GenreServiceImpl{repo: repo, catalogCache: catalogCache}
}

func (s *GenreServiceImpl) List(ctx context.Context) ([]*model.Genre, error) {
	var cached []*model.Genre
	if err := s.catalogCache.Get(ctx, cache.KeyGenres, &cached); err == nil {
		return cached, nil
	}

	genres, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	cacheSet(ctx, s.catalogCache, cache.KeyGenres, genres)
	return genres, nil
}

func (s *GenreServiceImpl) GetByID(ctx context.Context, id int) (*model.Genre, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *GenreServiceImpl) Create(ctx context.Context, genre *model.Genre) (*model.Genre, error) {
	created, err := s.repo.Create(ctx, genre)
	if err != nil {
		return nil, err
	}
	cacheInvalidate(ctx, s.catalogCache, cache.KeyGenres)
	cacheInvalidatePrefix(ctx, s.catalogCache, cache.KeyPlays)
	return created, nil
}

func (s *GenreServiceImpl) Update(ctx context.Context, id int, params model.UpdateGenreParams) (*model.Genre, error) {
	updated, err := s.repo.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}
	cacheInvalidate(ctx, s.catalogCache, cache.KeyGenres)
	cacheInvalidatePrefix(ctx, s.catalogCache, cache.KeyPlays)
	return updated, nil
}

func (s *GenreServiceImpl) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	cacheInvalidate(ctx, s.catalogCache, cache.KeyGenres)
	cacheInvalidatePrefix(ctx, s.catalogCache, cache.KeyPlays)
	return nil
}

type TheatreHallService interface {
	List(ctx context.Context) ([]*model.TheatreHall, error)
	GetByID(ctx context.Context, id int) (*model.TheatreHall, error)
	Create(ctx context.Context, hall *model.TheatreHall) (*model.TheatreHall, error)
	Update(ctx context.Context, id int, params model.UpdateTheatreHallParams) (*model.TheatreHall, error)
	Delete(ctx context.Context, id int) error
}

type TheatreHallServiceImpl struct {
	repo         repository.TheatreHallRepository
	catalogCache cache.CatalogCache
}

func NewTheatreHallService(repo repository.TheatreHallRepository, catalogCache cache.CatalogCache) TheatreHallService {
	return &TheatreHallServiceImpl{repo: repo, catalogCache: catalogCache}
}

func (s *TheatreHallServiceImpl) List(ctx context.Context) ([]*model.TheatreHall, error) {
	var cached []*model.TheatreHall
	if err := s.catalogCache.Get(ctx, cache.KeyHalls, &cached); err == nil {
		return cached, nil
	}

	halls, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	cacheSet(ctx, s.catalogCache, cache.KeyHalls, halls)
	return halls, nil
}

func (s *TheatreHallServiceImpl) GetByID(ctx context.Context, id int) (*model.TheatreHall, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TheatreHallServiceImpl) Create(ctx context.Context, hall *model.TheatreHall) (*model.TheatreHall, error) {
	if hall.Rows < 1 || hall.SeatsInRow < 1 {
		return nil, apperrors.ErrInvalidInput
	}
	created, err := s.repo.Create(ctx, hall)
	if err != nil {
		return nil, err
	}
	cacheInvalidate(ctx, s.catalogCache, cache.KeyHalls)
	return created, nil
}

func (s *TheatreHallServiceImpl) Update(ctx context.Context, id int, params model.UpdateTheatreHallParams) (*model.TheatreHall, error) {
	if params.Rows != nil && *params.Rows < 1 {
		return nil, apperrors.ErrInvalidInput
	}
	if params.SeatsInRow != nil && *params.SeatsInRow < 1 {
		return nil, apperrors.ErrInvalidInput
	}
	updated, err := s.repo.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}
	cacheInvalidate(ctx, s.catalogCache, cache.KeyHalls)
	return updated, nil
}

func (s *TheatreHallServiceImpl) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	cacheInvalidate(ctx, s.catalogCache, cache.KeyHalls)
	return nil
}

// Helper functions

func cacheSet(ctx context.Context, c cache.CatalogCache, key string, value interface{}) {
	if err := c.Set(ctx, key, value, catalogCacheTTL); err != nil {
		logger.WithComponent("service").Warn("failed to cache catalog entry", zap.String("key", key), zap.Error(err))
	}
}

func cacheInvalidate(ctx context.Context, c cache.CatalogCache, keys ...string) {
	if err := c.Invalidate(ctx, keys...); err != nil {
		logger.WithComponent("service").Warn("failed to invalidate catalog cache", zap.Error(err))
	}
}

// cacheInvalidatePrefix 演員或類型異動會反映在戲劇投影上，連同詳情頁一併清除
func cacheInvalidatePrefix(ctx context.Context, c cache.CatalogCache, prefix string) {
	if err := c.InvalidatePrefix(ctx, prefix); err != nil {
		logger.WithComponent("service").Warn("failed to invalidate catalog cache", zap.Error(err))
	}
}
