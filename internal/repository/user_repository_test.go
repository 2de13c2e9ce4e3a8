package repository

import (
	"context"
	"testing"

	"loja-api/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewUserRepository(pool, zerolog.Nop())
	ctx := context.Background()

	t.Run("Create and GetByEmail", func(t *testing.T) {
		truncate(t, pool)

		u := &model.User{Email: "ana@example.com", PasswordHash: "hash"}
		require.NoError(t, repo.Create(ctx, u))
		assert.Equal(t, int64(1), u.ID)

		got, err := repo.GetByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, *u, *got)
	})

	t.Run("GetByEmail returns nil for unknown email", func(t *testing.T) {
		truncate(t, pool)

		got, err := repo.GetByEmail(ctx, "ninguem@example.com")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Duplicate email is a conflict", func(t *testing.T) {
		truncate(t, pool)

		require.NoError(t, repo.Create(ctx, &model.User{Email: "bia@example.com", PasswordHash: "h1"}))

		err := repo.Create(ctx, &model.User{Email: "bia@example.com", PasswordHash: "h2"})
		assert.ErrorIs(t, err, model.ErrEmailAlreadyRegistered)

		var count int
		require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM usuarios").Scan(&count))
		assert.Equal(t, 1, count)
		assert.Equal(t, int32(0), pool.Stat().AcquiredConns())
	})
}
