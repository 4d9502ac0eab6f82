// Package flash queues one-shot admin notices per user.
package flash

import (
	"context"
	"encoding/json"
	"time"

	"github.com/packetery/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Type is the severity of a flash message
type Type string

const (
	TypeError   Type = "error"
	TypeSuccess Type = "success"
	TypeInfo    Type = "info"
)

// IsValid checks if the Type is a known value
func (t Type) IsValid() bool {
	return t == TypeError || t == TypeSuccess || t == TypeInfo
}

// Message keys shown by the admin plugin
const (
	NoOrdersSelected                      = "noOrdersSelected"
	PleaseSetProperPassword               = "pleaseSetProperPassword"
	LabelPrintFailedMoreInfoInLog         = "labelPrintFailedMoreInfoInLog"
	YouSelectedOrdersThatWereNotSubmitted = "youSelectedOrdersThatWereNotSubmitted"
)

const (
	keyPrefix = "packetery_flash_"
	ttl       = 24 * time.Hour
)

// Message is one queued notice
type Message struct {
	Type    Type   `json:"type"`
	Message string `json:"message"`
}

// FlashService stores flash messages in the transient store
type FlashService struct {
	store  shared.TransientStore
	logger *zap.Logger
}

// NewFlashService creates a new FlashService
func NewFlashService(store shared.TransientStore, logger *zap.Logger) *FlashService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FlashService{store: store, logger: logger}
}

// Flash queues a message for userID
func (s *FlashService) Flash(ctx context.Context, userID string, t Type, message string) error {
	if !t.IsValid() {
		return shared.NewDomainError("INVALID_FLASH_TYPE", "Unknown flash message type: "+string(t))
	}
	raw, err := json.Marshal(Message{Type: t, Message: message})
	if err != nil {
		return err
	}
	return s.store.Push(ctx, keyPrefix+userID, raw, ttl)
}

// Drain returns and clears the queued messages of userID, oldest first
func (s *FlashService) Drain(ctx context.Context, userID string) ([]Message, error) {
	values, err := s.store.Drain(ctx, keyPrefix+userID)
	if err != nil {
		return nil, err
	}
	messages := make([]Message, 0, len(values))
	for _, raw := range values {
		var m Message
		if err := json.Unmarshal(raw, &m); err != nil {
			s.logger.Warn("Dropping unreadable flash message", zap.String("user_id", userID), zap.Error(err))
			continue
		}
		messages = append(messages, m)
	}
	return messages, nil
}
