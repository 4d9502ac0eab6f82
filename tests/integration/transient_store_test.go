package integration

import (
	"context"
	"testing"
	"time"

	"github.com/packetery/backend/internal/application/flash"
	"github.com/packetery/backend/internal/domain/shared"
	"github.com/packetery/backend/internal/infrastructure/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRedisTransientStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	client := NewTestRedis(t)
	store := cache.NewRedisTransientStoreWithClient(client, "packetery:it:")
	ctx := context.Background()

	t.Run("value expires", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "selection:7", []byte(`[1,2,3]`), time.Second))

		value, err := store.Get(ctx, "selection:7")
		require.NoError(t, err)
		assert.JSONEq(t, `[1,2,3]`, string(value))

		require.Eventually(t, func() bool {
			_, err := store.Get(ctx, "selection:7")
			return err == shared.ErrNotFound
		}, 5*time.Second, 100*time.Millisecond)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "selection:8", []byte(`[4]`), time.Minute))
		require.NoError(t, store.Delete(ctx, "selection:8"))

		_, err := store.Get(ctx, "selection:8")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("flash messages drain once", func(t *testing.T) {
		svc := flash.NewFlashService(store, zaptest.NewLogger(t))

		require.NoError(t, svc.Flash(ctx, "7", flash.TypeSuccess, "Labels were printed"))
		require.NoError(t, svc.Flash(ctx, "7", flash.TypeError, "Label printing failed"))

		messages, err := svc.Drain(ctx, "7")
		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, "Labels were printed", messages[0].Message)
		assert.Equal(t, flash.TypeError, messages[1].Type)

		messages, err = svc.Drain(ctx, "7")
		require.NoError(t, err)
		assert.Empty(t, messages)
	})
}
