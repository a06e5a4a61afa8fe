package repository

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"theatre-booking-api/config"
	"theatre-booking-api/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// testDB 是測試用的資料庫連接池
var testDB *pgxpool.Pool

func TestMain(m *testing.M) {
	cfg := config.LoadTestConfig()

	var err error
	testDB, err = database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize test database: %v", err)
	}

	if err := testDB.Ping(context.Background()); err != nil {
		log.Fatalf("Failed to ping test database: %v", err)
	}

	log.Println("Test database connected successfully")
	log.Println("Running repository tests...")

	code := m.Run()
	testDB.Close()
	log.Println("Test database closed")

	os.Exit(code)
}

func setupTestWithTruncate(t *testing.T) func() {
	t.Helper()
	ctx := context.Background()

	// 清空所有測試資料，保留 schema
	_, err := testDB.Exec(ctx, `
		TRUNCATE tickets, reservations, performances, play_actors, play_genres,
		         plays, theatre_halls, genres, actors, users, booking_events
		RESTART IDENTITY CASCADE
	`)
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}

	return func() {
	}
}

func getTestDB() *pgxpool.Pool {
	if testDB == nil {
		panic("testDB is not initialized. Make sure TestMain has run.")
	}
	return testDB
}

// createTestUser 輔助函數：創建測試用的 user
func createTestUser(t *testing.T, name, email string) int {
	t.Helper()
	ctx := context.Background()

	query := `
		INSERT INTO users (email, name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int
	err := testDB.QueryRow(ctx, query, email, name, "hash").Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

// createTestHall 輔助函數：創建測試用的劇場
func createTestHall(t *testing.T, name string, rows, seatsInRow int) int {
	t.Helper()
	ctx := context.Background()

	query := `
		INSERT INTO theatre_halls (name, rows, seats_in_row)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int
	err := testDB.QueryRow(ctx, query, name, rows, seatsInRow).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test hall: %v", err)
	}

	return id
}

// createTestPlay 輔助函數：創建測試用的劇目
func createTestPlay(t *testing.T, title string) (int, uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	playID := uuid.New()
	query := `
		INSERT INTO plays (play_id, title, description)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int
	err := testDB.QueryRow(ctx, query, playID, title, "A test play").Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test play: %v", err)
	}

	return id, playID
}

// createTestPerformance 輔助函數：創建測試用的場次
func createTestPerformance(t *testing.T, playID, hallID int) (int, uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	performanceID := uuid.New()
	query := `
		INSERT INTO performances (performance_id, play_id, theatre_hall_id, show_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int
	err := testDB.QueryRow(ctx, query,
		performanceID, playID, hallID, time.Now().Add(24*time.Hour),
	).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test performance: %v", err)
	}

	return id, performanceID
}
