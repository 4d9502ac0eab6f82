package storage

import (
	"context"
	"errors"

	"github.com/packetery/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// NoopArchive is used when object storage is disabled. Documents are
// only streamed to the caller and nothing is kept.
type NoopArchive struct {
	logger *zap.Logger
}

// NewNoopArchive creates a new NoopArchive
func NewNoopArchive(logger *zap.Logger) *NoopArchive {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoopArchive{logger: logger}
}

// Ensure NoopArchive implements DocumentArchive
var _ shared.DocumentArchive = (*NoopArchive)(nil)

// Archive validates the key and drops the document
func (a *NoopArchive) Archive(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}
	a.logger.Debug("Archive disabled, document not stored", zap.String("key", key))
	return "", nil
}
