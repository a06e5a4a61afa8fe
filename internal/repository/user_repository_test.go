package repository

import (
	"context"
	"testing"

	"theatre-booking-api/internal/model"
	apperrors "theatre-booking-api/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewUserRepository(getTestDB())

	t.Run("Success", func(t *testing.T) {
		user, err := repo.Create(ctx, &model.User{
			Email:        "user@test.com",
			Name:         "User",
			PasswordHash: "hash",
		})
		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.False(t, user.IsStaff)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := repo.Create(ctx, &model.User{
			Email:        "user@test.com",
			Name:         "Another",
			PasswordHash: "hash",
		})
		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewUserRepository(getTestDB())

	created, err := repo.Create(ctx, &model.User{
		Email:        "find@test.com",
		Name:         "Find Me",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		user, err := repo.FindByEmail(ctx, "find@test.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "missing@test.com")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
