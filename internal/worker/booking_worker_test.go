package worker

import (
	"context"
	"testing"
	"time"

	"theatre-booking-api/internal/model"
	"theatre-booking-api/internal/queue"
	"theatre-booking-api/internal/repository"

	"github.com/google/uuid"
)

// 簡單的 Mock 實作
type mockBookingEventRepository struct {
	repository.BookingEventRepository // 嵌入介面
	onInsert                          func(*model.BookingEvent)
}

func (m *mockBookingEventRepository) Insert(ctx context.Context, event *model.BookingEvent) (*model.BookingEvent, error) {
	m.onInsert(event)
	return event, nil
}

func TestBookingWorker_Integration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// 1. 準備：Memory Queue 與記錄呼叫的 Mock repository
	q := queue.NewMemoryBookingQueue(10)

	inserted := make(chan *model.BookingEvent, 1)
	mockRepo := &mockBookingEventRepository{
		onInsert: func(event *model.BookingEvent) {
			inserted <- event
		},
	}

	// 2. 啟動 Worker
	w := NewBookingWorker(mockRepo, q)
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Failed to start worker: %v", err)
	}

	// 3. 執行：模擬訂票完成後發佈事件
	event := &model.BookingEvent{
		ReservationID: uuid.New(),
		UserID:        1,
		TicketCount:   2,
		OccurredAt:    time.Now().UTC(),
	}
	if err := q.PublishEvent(ctx, event); err != nil {
		t.Fatalf("Failed to publish event: %v", err)
	}

	// 4. 驗證：事件要在時間內寫入
	select {
	case got := <-inserted:
		if got.ReservationID != event.ReservationID {
			t.Errorf("Expected reservation %s, got %s", event.ReservationID, got.ReservationID)
		}
		if got.TicketCount != 2 {
			t.Errorf("Expected ticket count 2, got %d", got.TicketCount)
		}
	case <-time.After(1 * time.Second):
		t.Error("超時！Worker 沒有在時間內處理事件")
	}
}
