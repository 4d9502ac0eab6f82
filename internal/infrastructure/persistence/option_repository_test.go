package persistence

import (
	"context"
	"testing"

	"github.com/packetery/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormOptionRepository(t *testing.T) {
	repo := NewGormOptionRepository(setupSQLiteTestDB(t))
	ctx := context.Background()

	t.Run("missing key returns ErrNotFound", func(t *testing.T) {
		_, err := repo.Get(ctx, "packetery")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "packetery", `{"sender":"shop"}`))

		value, err := repo.Get(ctx, "packetery")
		require.NoError(t, err)
		assert.Equal(t, `{"sender":"shop"}`, value)
	})

	t.Run("set replaces existing value", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "packetery", `{"sender":"other"}`))

		value, err := repo.Get(ctx, "packetery")
		require.NoError(t, err)
		assert.Equal(t, `{"sender":"other"}`, value)
	})

	t.Run("delete removes key and tolerates missing keys", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "packetery"))
		require.NoError(t, repo.Delete(ctx, "packetery"))

		_, err := repo.Get(ctx, "packetery")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
