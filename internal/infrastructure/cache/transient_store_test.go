package cache

import (
	"testing"

	"github.com/packetery/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewTransientStore(t *testing.T) {
	unreachable := config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: 1}

	t.Run("redis disabled uses in-memory store", func(t *testing.T) {
		store, err := NewTransientStore(config.RedisConfig{Enabled: false}, true, nil)
		require.NoError(t, err)
		defer store.Close()

		assert.IsType(t, &InMemoryTransientStore{}, store)
	})

	t.Run("unreachable redis falls back with a warning", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)

		store, err := NewTransientStore(unreachable, false, zap.New(core))
		require.NoError(t, err)
		defer store.Close()

		assert.IsType(t, &InMemoryTransientStore{}, store)
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "127.0.0.1:1", logs.All()[0].ContextMap()["addr"])
	})

	t.Run("unreachable redis fails when required", func(t *testing.T) {
		store, err := NewTransientStore(unreachable, true, zap.NewNop())
		assert.Error(t, err)
		assert.Nil(t, store)
	})
}
