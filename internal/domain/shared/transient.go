package shared

import (
	"context"
	"time"
)

// TransientStore keeps short-lived per-user state such as the label print
// selection and flash messages. Expired keys behave like missing ones.
type TransientStore interface {
	// Set stores value under key for ttl
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get returns ErrNotFound for missing or expired keys
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes key, missing keys are not an error
	Delete(ctx context.Context, key string) error

	// Push appends value to the list under key and refreshes its ttl
	Push(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Drain returns every value of the list under key and removes it
	Drain(ctx context.Context, key string) ([][]byte, error)

	// Close closes the store and releases resources
	Close() error
}
