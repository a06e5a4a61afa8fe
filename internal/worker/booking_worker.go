package worker

import (
	"context"

	"theatre-booking-api/internal/queue"
	"theatre-booking-api/internal/repository"
	"theatre-booking-api/pkg/logger"

	"go.uber.org/zap"
)

type BookingWorker interface {
	// Start 訂閱訂票事件隊列並開始寫入稽核表
	Start(ctx context.Context) error
}

type BookingWorkerImpl struct {
	events repository.BookingEventRepository
	queue  queue.BookingQueue
}

func NewBookingWorker(events repository.BookingEventRepository, queue queue.BookingQueue) BookingWorker {
	return &BookingWorkerImpl{
		events: events,
		queue:  queue,
	}
}

func (w *BookingWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.SubscribeEvents(ctx)
	if err != nil {
		return err
	}

	log := logger.WithComponent("booking-worker")

	go func() {
		for msg := range msgs {
			_, err := w.events.Insert(ctx, msg.Data)
			if err != nil {
				// 資料庫暫時寫不進去，留在隊列裡延遲重試
				log.Warn("insert booking event failed, will retry",
					zap.String("reservation_id", msg.Data.ReservationID.String()),
					zap.Error(err),
				)
				msg.Nack(true)
				continue
			}

			log.Info("booking event recorded",
				zap.String("reservation_id", msg.Data.ReservationID.String()),
				zap.Int("ticket_count", msg.Data.TicketCount),
			)
			msg.Ack()
		}
	}()
	return nil
}
