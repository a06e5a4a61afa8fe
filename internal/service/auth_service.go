package service

import (
	"context"
	"errors"
	"time"

	"theatre-booking-api/config"
	"theatre-booking-api/internal/model"
	"theatre-booking-api/internal/repository"
	apperrors "theatre-booking-api/pkg/app_errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.TokenResponse, error)
	GetByID(ctx context.Context, id int) (*model.User, error)
}

type AuthServiceImpl struct {
	repo repository.UserRepository
	cfg  config.AuthConfig
}

func NewAuthService(repo repository.UserRepository, cfg config.AuthConfig) AuthService {
	return &AuthServiceImpl{repo: repo, cfg: cfg}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
	}
	return s.repo.Create(ctx, user)
}

func (s *AuthServiceImpl) Login(ctx context.Context, req model.LoginRequest) (*model.TokenResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			// 帳號不存在與密碼錯誤回同一個錯誤，避免洩漏帳號是否存在
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *AuthServiceImpl) GetByID(ctx context.Context, id int) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AuthServiceImpl) issueToken(user *model.User) (*model.TokenResponse, error) {
	exp := time.Now().UTC().Add(time.Duration(s.cfg.AccessTokenTTL) * time.Minute)
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"staff": user.IsStaff,
		"exp":   exp.Unix(),
		"iat":   time.Now().UTC().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &model.TokenResponse{
		AccessToken: signed,
		ExpiresAt:   exp,
	}, nil
}
