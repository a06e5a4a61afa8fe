package queue

import (
	"context"
	"theatre-booking-api/internal/model"
)

type Delivery struct {
	Data *model.BookingEvent
	Ack  func()
	Nack func(requeue bool)
}

type BookingQueue interface {
	// 發送訂票事件到隊列
	PublishEvent(ctx context.Context, event *model.BookingEvent) error
	// 訂閱訂票事件隊列
	SubscribeEvents(ctx context.Context) (<-chan Delivery, error)
}

// MemoryBookingQueue 以 channel 模擬 MQ，供本機與測試使用
type MemoryBookingQueue struct {
	ch chan *model.BookingEvent
}

func NewMemoryBookingQueue(bufferSize int) BookingQueue {
	return &MemoryBookingQueue{
		ch: make(chan *model.BookingEvent, bufferSize),
	}
}

func (q *MemoryBookingQueue) PublishEvent(ctx context.Context, event *model.BookingEvent) error {
	select {
	case q.ch <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *MemoryBookingQueue) SubscribeEvents(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-q.ch:
				if !ok {
					return
				}

				out <- Delivery{
					Data: event,
					Ack:  func() { /* 記憶體版不用做特別動作 */ },
					Nack: func(requeue bool) {
						if requeue {
							q.ch <- event // 簡單模擬重回隊列
						}
					},
				}
			}
		}
	}()

	return out, nil
}
