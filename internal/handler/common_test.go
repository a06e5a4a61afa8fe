package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"theatre-booking-api/internal/middleware"
	"theatre-booking-api/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var (
	InvalidJSON = `{"invalid": json}`
)

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	req, err := http.NewRequest(method, url, createJSONRequest(data))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

// fakeAuth 測試用：跳過 JWT 驗證，直接塞入使用者身分
func fakeAuth(userID int, isStaff bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, userID)
		c.Set(middleware.ContextIsStaffKey, isStaff)
		c.Next()
	}
}

type mockReservationService struct {
	mock.Mock
}

func (m *mockReservationService) Create(ctx context.Context, userID int, requests []model.TicketRequest) (*model.Reservation, error) {
	args := m.Called(ctx, userID, requests)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Reservation), args.Error(1)
}

func (m *mockReservationService) ListByUser(ctx context.Context, userID int) ([]*model.ReservationSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ReservationSummary), args.Error(1)
}

type mockActorService struct {
	mock.Mock
}

func (m *mockActorService) List(ctx context.Context) ([]*model.Actor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Actor), args.Error(1)
}

func (m *mockActorService) GetByID(ctx context.Context, id int) (*model.Actor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Actor), args.Error(1)
}

func (m *mockActorService) Create(ctx context.Context, actor *model.Actor) (*model.Actor, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Actor), args.Error(1)
}

func (m *mockActorService) Update(ctx context.Context, id int, params model.UpdateActorParams) (*model.Actor, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Actor), args.Error(1)
}

func (m *mockActorService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, req model.LoginRequest) (*model.TokenResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TokenResponse), args.Error(1)
}

func (m *mockAuthService) GetByID(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type mockPerformanceService struct {
	mock.Mock
}

func (m *mockPerformanceService) List(ctx context.Context) ([]*model.PerformanceSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PerformanceSummary), args.Error(1)
}

func (m *mockPerformanceService) GetByPerformanceID(ctx context.Context, performanceID uuid.UUID) (*model.PerformanceDetail, error) {
	args := m.Called(ctx, performanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PerformanceDetail), args.Error(1)
}

func (m *mockPerformanceService) Create(ctx context.Context, performance *model.Performance) (*model.Performance, error) {
	args := m.Called(ctx, performance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Performance), args.Error(1)
}

func (m *mockPerformanceService) UpdateByPerformanceID(ctx context.Context, performanceID uuid.UUID, params model.UpdatePerformanceParams) (*model.Performance, error) {
	args := m.Called(ctx, performanceID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Performance), args.Error(1)
}

func (m *mockPerformanceService) DeleteByPerformanceID(ctx context.Context, performanceID uuid.UUID) error {
	args := m.Called(ctx, performanceID)
	return args.Error(0)
}

func (m *mockPerformanceService) AvailableSeats(ctx context.Context, performanceID uuid.UUID) (int, error) {
	args := m.Called(ctx, performanceID)
	return args.Int(0), args.Error(1)
}
