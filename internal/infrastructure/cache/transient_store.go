package cache

import (
	"fmt"

	"github.com/packetery/backend/internal/domain/shared"
	"github.com/packetery/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewTransientStore opens the store that keeps label print selections and
// flash messages. Redis is used when enabled. An unreachable Redis falls back
// to process memory unless requireRedis is set, in which case selections made
// on one instance would be invisible to the others.
func NewTransientStore(cfg config.RedisConfig, requireRedis bool, logger *zap.Logger) (shared.TransientStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !cfg.Enabled {
		logger.Info("Redis disabled, using in-memory transient store")
		return NewInMemoryTransientStore(), nil
	}

	store, err := NewRedisTransientStore(RedisConfig{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err == nil {
		logger.Info("Using Redis transient store", zap.String("addr", cfg.Addr()))
		return store, nil
	}
	if requireRedis {
		return nil, fmt.Errorf("redis transient store unavailable: %w", err)
	}

	logger.Warn("Redis unavailable, falling back to in-memory transient store",
		zap.String("addr", cfg.Addr()),
		zap.Error(err),
	)
	return NewInMemoryTransientStore(), nil
}
