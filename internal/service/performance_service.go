package service

import (
	"context"

	"theatre-booking-api/internal/model"
	"theatre-booking-api/internal/repository"

	"github.com/google/uuid"
)

type PerformanceService interface {
	List(ctx context.Context) ([]*model.PerformanceSummary, error)
	GetByPerformanceID(ctx context.Context, performanceID uuid.UUID) (*model.PerformanceDetail, error)
	Create(ctx context.Context, performance *model.Performance) (*model.Performance, error)
	UpdateByPerformanceID(ctx context.Context, performanceID uuid.UUID, params model.UpdatePerformanceParams) (*model.Performance, error)
	DeleteByPerformanceID(ctx context.Context, performanceID uuid.UUID) error
	// AvailableSeats 即時計算，不經過快取
	AvailableSeats(ctx context.Context, performanceID uuid.UUID) (int, error)
}

type PerformanceServiceImpl struct {
	repo     repository.PerformanceRepository
	playRepo repository.PlayRepository
	hallRepo repository.TheatreHallRepository
}

func NewPerformanceService(
	repo repository.PerformanceRepository,
	playRepo repository.PlayRepository,
	hallRepo repository.TheatreHallRepository,
) PerformanceService {
	return &PerformanceServiceImpl{repo: repo, playRepo: playRepo, hallRepo: hallRepo}
}

func (s *PerformanceServiceImpl) List(ctx context.Context) ([]*model.PerformanceSummary, error) {
	return s.repo.List(ctx)
}

// GetByPerformanceID 詳情附座位圖：劇場幾何加上已售出座位
func (s *PerformanceServiceImpl) GetByPerformanceID(ctx context.Context, performanceID uuid.UUID) (*model.PerformanceDetail, error) {
	performance, err := s.repo.FindByPerformanceID(ctx, performanceID)
	if err != nil {
		return nil, err
	}

	if err := s.playRepo.LoadRelations(ctx, []*model.Play{performance.Play}); err != nil {
		return nil, err
	}

	taken, err := s.repo.TakenSeats(ctx, performance.ID)
	if err != nil {
		return nil, err
	}

	return &model.PerformanceDetail{
		ID:            performance.ID,
		PerformanceID: performance.PerformanceID,
		Play:          performance.Play.Detail(),
		TheatreHall:   performance.Hall,
		ShowTime:      performance.ShowTime,
		TakenPlaces:   taken,
	}, nil
}

func (s *PerformanceServiceImpl) Create(ctx context.Context, performance *model.Performance) (*model.Performance, error) {
	// 先確認 play 與 hall 存在，失敗時能分辨是哪個引用無效
	if _, err := s.playRepo.FindByID(ctx, performance.PlayID); err != nil {
		return nil, err
	}
	if _, err := s.hallRepo.FindByID(ctx, performance.TheatreHallID); err != nil {
		return nil, err
	}

	if performance.PerformanceID == uuid.Nil {
		performance.PerformanceID = uuid.New()
	}
	return s.repo.Create(ctx, performance)
}

func (s *PerformanceServiceImpl) UpdateByPerformanceID(ctx context.Context, performanceID uuid.UUID, params model.UpdatePerformanceParams) (*model.Performance, error) {
	performance, err := s.repo.FindByPerformanceID(ctx, performanceID)
	if err != nil {
		return nil, err
	}
	if params.PlayID != nil {
		if _, err := s.playRepo.FindByID(ctx, *params.PlayID); err != nil {
			return nil, err
		}
	}
	if params.TheatreHallID != nil {
		if _, err := s.hallRepo.FindByID(ctx, *params.TheatreHallID); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(ctx, performance.ID, params)
}

func (s *PerformanceServiceImpl) DeleteByPerformanceID(ctx context.Context, performanceID uuid.UUID) error {
	performance, err := s.repo.FindByPerformanceID(ctx, performanceID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, performance.ID)
}

func (s *PerformanceServiceImpl) AvailableSeats(ctx context.Context, performanceID uuid.UUID) (int, error) {
	performance, err := s.repo.FindByPerformanceID(ctx, performanceID)
	if err != nil {
		return 0, err
	}
	return s.repo.AvailableSeats(ctx, performance.ID)
}
