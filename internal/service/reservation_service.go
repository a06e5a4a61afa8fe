package service

import (
	"context"
	"fmt"
	"time"

	"theatre-booking-api/internal/model"
	"theatre-booking-api/internal/queue"
	"theatre-booking-api/internal/repository"
	apperrors "theatre-booking-api/pkg/app_errors"
	"theatre-booking-api/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ReservationService interface {
	// Create 訂票交易：一筆預約加上全部票券，要嘛全部成立、要嘛全部回滾
	Create(ctx context.Context, userID int, requests []model.TicketRequest) (*model.Reservation, error)
	ListByUser(ctx context.Context, userID int) ([]*model.ReservationSummary, error)
}

type ReservationServiceImpl struct {
	pool            *pgxpool.Pool
	repository      repository.ReservationRepository
	performanceRepo repository.PerformanceRepository
	bookingQueue    queue.BookingQueue
}

func NewReservationService(
	pool *pgxpool.Pool,
	reservationRepository repository.ReservationRepository,
	performanceRepo repository.PerformanceRepository,
	bookingQueue queue.BookingQueue,
) ReservationService {
	return &ReservationServiceImpl{
		pool:            pool,
		repository:      reservationRepository,
		performanceRepo: performanceRepo,
		bookingQueue:    bookingQueue,
	}
}

// Create 依輸入順序逐張驗證並寫入票券。座位衝突完全交給
// (performance_id, row, seat) 唯一索引在寫入時擋下，不做先查再寫
// 的檢查：沒有鎖的 check-then-insert 在並發下會漏判。
func (s *ReservationServiceImpl) Create(ctx context.Context, userID int, requests []model.TicketRequest) (*model.Reservation, error) {
	if len(requests) == 0 {
		return nil, apperrors.ErrEmptyReservation
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	reservation := &model.Reservation{
		ReservationID: uuid.New(),
		UserID:        userID,
	}
	reservation, err = s.repository.Create(ctx, tx, reservation)
	if err != nil {
		return nil, err
	}

	// 同一場次只解析一次
	performances := make(map[uuid.UUID]*model.Performance)

	for i, req := range requests {
		performance, ok := performances[req.PerformanceID]
		if !ok {
			performance, err = s.performanceRepo.FindByPerformanceIDWithHall(ctx, tx, req.PerformanceID)
			if err != nil {
				return nil, fmt.Errorf("ticket %d: %w", i, err)
			}
			performances[req.PerformanceID] = performance
		}

		if err := model.ValidateSeat(req.Row, req.Seat, performance.Hall); err != nil {
			return nil, fmt.Errorf("ticket %d: %w", i, err)
		}

		ticket := &model.Ticket{
			Row:           req.Row,
			Seat:          req.Seat,
			PerformanceID: performance.ID,
			ReservationID: reservation.ID,
		}
		ticket, err = s.repository.InsertTicket(ctx, tx, ticket)
		if err != nil {
			return nil, fmt.Errorf("ticket %d (row %d, seat %d): %w", i, req.Row, req.Seat, err)
		}
		reservation.Tickets = append(reservation.Tickets, ticket)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.publishBookingEvent(ctx, reservation)

	return reservation, nil
}

// publishBookingEvent 預約已提交，事件發佈失敗只記 log 不影響結果
func (s *ReservationServiceImpl) publishBookingEvent(ctx context.Context, reservation *model.Reservation) {
	event := &model.BookingEvent{
		ReservationID: reservation.ReservationID,
		UserID:        reservation.UserID,
		TicketCount:   len(reservation.Tickets),
		OccurredAt:    time.Now().UTC(),
	}
	if err := s.bookingQueue.PublishEvent(ctx, event); err != nil {
		logger.WithComponent("service").Warn("failed to publish booking event",
			zap.String("reservation_id", reservation.ReservationID.String()),
			zap.Error(err),
		)
	}
}

func (s *ReservationServiceImpl) ListByUser(ctx context.Context, userID int) ([]*model.ReservationSummary, error) {
	reservations, err := s.repository.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repository.LoadTickets(ctx, reservations); err != nil {
		return nil, err
	}

	summaries := make([]*model.ReservationSummary, 0, len(reservations))
	for _, res := range reservations {
		tickets := make([]*model.TicketSummary, 0, len(res.Tickets))
		for _, t := range res.Tickets {
			available, err := s.performanceRepo.AvailableSeats(ctx, t.PerformanceID)
			if err != nil {
				return nil, err
			}
			tickets = append(tickets, &model.TicketSummary{
				ID:   t.ID,
				Row:  t.Row,
				Seat: t.Seat,
				Performance: &model.PerformanceSummary{
					ID:               t.Performance.ID,
					PerformanceID:    t.Performance.PerformanceID,
					PlayTitle:        t.Performance.Play.Title,
					TheatreHallName:  t.Performance.Hall.Name,
					ShowTime:         t.Performance.ShowTime,
					AvailableTickets: available,
				},
			})
		}
		summaries = append(summaries, &model.ReservationSummary{
			ID:            res.ID,
			ReservationID: res.ReservationID,
			CreatedAt:     res.CreatedAt,
			Tickets:       tickets,
		})
	}

	return summaries, nil
}
