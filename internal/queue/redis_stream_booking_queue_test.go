package queue

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"theatre-booking-api/config"
	"theatre-booking-api/internal/database"
	"theatre-booking-api/internal/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRdb *redis.Client

func TestMain(m *testing.M) {
	cfg := config.LoadTestConfig()

	var err error
	testRdb, err = database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize test redis: %v", err)
	}

	code := m.Run()

	testRdb.Close()
	os.Exit(code)
}

func cleanupStream(ctx context.Context, t *testing.T) {
	t.Helper()
	_ = testRdb.Del(ctx, StreamKey).Err()
}

func testEvent() *model.BookingEvent {
	return &model.BookingEvent{
		ReservationID: uuid.New(),
		UserID:        1,
		TicketCount:   2,
		OccurredAt:    time.Now().UTC().Truncate(time.Second),
	}
}

func TestNewRedisStreamBookingQueue(t *testing.T) {
	ctx := context.Background()
	cleanupStream(ctx, t)

	t.Run("success", func(t *testing.T) {
		q, err := NewRedisStreamBookingQueue(testRdb, "test-consumer", nil)
		require.NoError(t, err)
		require.NotNil(t, q)
	})

	t.Run("empty_consumer_id_generates_uuid", func(t *testing.T) {
		cleanupStream(ctx, t)
		q, err := NewRedisStreamBookingQueue(testRdb, "", nil)
		require.NoError(t, err)
		require.NotNil(t, q)
	})
}

// 驗證「發出去的內容」與「收進來的內容」一致
func TestRedisStreamBookingQueue_Subscribe_deliversPublishedEvent(t *testing.T) {
	ctx := context.Background()
	cleanupStream(ctx, t)

	q, err := NewRedisStreamBookingQueue(testRdb, "deliver-test", nil)
	require.NoError(t, err)

	event := testEvent()
	require.NoError(t, q.PublishEvent(ctx, event))

	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	delCh, err := q.SubscribeEvents(subCtx)
	require.NoError(t, err)

	select {
	case d, ok := <-delCh:
		require.True(t, ok, "應收到一筆")
		require.NotNil(t, d.Data)
		assert.Equal(t, event.ReservationID, d.Data.ReservationID)
		assert.Equal(t, event.UserID, d.Data.UserID)
		assert.Equal(t, event.TicketCount, d.Data.TicketCount)
		d.Ack()
	case <-subCtx.Done():
		t.Fatal("timeout 未收到訊息")
	}
}

// Ack 後該訊息不應再被投遞
func TestRedisStreamBookingQueue_Ack_preventsRedelivery(t *testing.T) {
	ctx := context.Background()
	cleanupStream(ctx, t)

	q, err := NewRedisStreamBookingQueue(testRdb, "ack-test", nil)
	require.NoError(t, err)

	event := testEvent()
	require.NoError(t, q.PublishEvent(ctx, event))

	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	delCh, err := q.SubscribeEvents(subCtx)
	require.NoError(t, err)

	select {
	case d, ok := <-delCh:
		require.True(t, ok)
		require.NotNil(t, d.Data)
		d.Ack()
	case <-subCtx.Done():
		t.Fatal("timeout 未收到第一筆")
	}

	cancel()
	_, ok := <-delCh
	assert.False(t, ok, "Ack 後不應再投遞；下一讀應為 channel 關閉")
}

// Nack(true) 重試時應在約 ClaimMinIdleTime 後再次投遞
func TestRedisStreamBookingQueue_NackRequeue_redeliversAfterIdle(t *testing.T) {
	ctx := context.Background()
	cleanupStream(ctx, t)

	cfg := &RedisStreamBookingQueueConfig{
		ClaimMinIdleTime:   200 * time.Millisecond,
		ReadGroupBlockTime: 500 * time.Millisecond,
	}
	q, err := NewRedisStreamBookingQueue(testRdb, "nack-requeue-test", cfg)
	require.NoError(t, err)

	event := testEvent()
	require.NoError(t, q.PublishEvent(ctx, event))

	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	delCh, err := q.SubscribeEvents(subCtx)
	require.NoError(t, err)

	select {
	case d, ok := <-delCh:
		require.True(t, ok)
		require.NotNil(t, d.Data)
		d.Nack(true)
	case <-subCtx.Done():
		t.Fatal("timeout 未收到第一筆")
	}

	select {
	case d, ok := <-delCh:
		require.True(t, ok, "Nack(requeue) 後應在 ClaimMinIdleTime 後再次投遞")
		require.NotNil(t, d.Data)
		assert.Equal(t, event.ReservationID, d.Data.ReservationID, "重試應為同一筆")
		d.Ack()
	case <-subCtx.Done():
		t.Fatal("timeout 未收到重試投遞")
	}
}

// context 取消時 channel 關閉
func TestRedisStreamBookingQueue_Subscribe_ctxCancel_closesChannel(t *testing.T) {
	ctx := context.Background()
	cleanupStream(ctx, t)

	q, err := NewRedisStreamBookingQueue(testRdb, "cancel-test", nil)
	require.NoError(t, err)

	subCtx, cancel := context.WithCancel(ctx)
	delCh, err := q.SubscribeEvents(subCtx)
	require.NoError(t, err)

	cancel()
	select {
	case _, ok := <-delCh:
		assert.False(t, ok, "context 取消後 channel 應關閉")
	case <-time.After(3 * time.Second):
		t.Fatal("channel 未在時限內關閉")
	}
}
