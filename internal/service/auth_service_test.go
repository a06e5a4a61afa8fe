package service

import (
	"context"
	"testing"

	"theatre-booking-api/config"
	"theatre-booking-api/internal/model"
	apperrors "theatre-booking-api/pkg/app_errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTL: 60}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		authService := NewAuthService(userRepo, testAuthConfig())

		userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			// 存進去的必須是 bcrypt hash，不能是明文
			return u.PasswordHash != "password123" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")) == nil
		})).Return(&model.User{ID: 1, Email: "user@example.com", Name: "User"}, nil).Once()

		user, err := authService.Register(ctx, model.RegisterRequest{
			Email:    "user@example.com",
			Name:     "User",
			Password: "password123",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		userRepo.AssertExpectations(t)
	})

	t.Run("Failed - ErrEmailTaken", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		authService := NewAuthService(userRepo, testAuthConfig())

		userRepo.On("Create", mock.Anything, mock.Anything).
			Return(nil, apperrors.ErrEmailTaken).Once()

		_, err := authService.Register(ctx, model.RegisterRequest{
			Email:    "taken@example.com",
			Name:     "User",
			Password: "password123",
		})

		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	storedUser := &model.User{ID: 7, Email: "user@example.com", PasswordHash: string(hash), IsStaff: true}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		authService := NewAuthService(userRepo, testAuthConfig())

		userRepo.On("FindByEmail", mock.Anything, "user@example.com").Return(storedUser, nil).Once()

		token, err := authService.Login(ctx, model.LoginRequest{
			Email:    "user@example.com",
			Password: "password123",
		})

		require.NoError(t, err)
		require.NotEmpty(t, token.AccessToken)

		// token 要帶 user id 與 staff 標記
		parsed, err := jwt.Parse(token.AccessToken, func(t *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, float64(7), claims["sub"])
		assert.Equal(t, true, claims["staff"])
	})

	t.Run("Failed - WrongPassword", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		authService := NewAuthService(userRepo, testAuthConfig())

		userRepo.On("FindByEmail", mock.Anything, "user@example.com").Return(storedUser, nil).Once()

		_, err := authService.Login(ctx, model.LoginRequest{
			Email:    "user@example.com",
			Password: "wrong-password",
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	// 帳號不存在與密碼錯誤回同一個錯誤
	t.Run("Failed - UnknownEmail", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		authService := NewAuthService(userRepo, testAuthConfig())

		userRepo.On("FindByEmail", mock.Anything, "missing@example.com").
			Return(nil, apperrors.ErrUserNotFound).Once()

		_, err := authService.Login(ctx, model.LoginRequest{
			Email:    "missing@example.com",
			Password: "password123",
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}
