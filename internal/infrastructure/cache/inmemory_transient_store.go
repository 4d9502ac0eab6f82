package cache

import (
	"context"
	"sync"
	"time"

	"github.com/packetery/backend/internal/domain/shared"
)

// entry is a stored value or list with its expiration
type entry struct {
	value     []byte
	list      [][]byte
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// InMemoryTransientStore implements TransientStore using an in-memory map.
// This is suitable for single-instance deployments and testing.
type InMemoryTransientStore struct {
	mu        sync.RWMutex
	entries   map[string]entry
	now       func() time.Time
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryTransientStore creates a new in-memory transient store.
// It starts a background goroutine to clean up expired entries.
func NewInMemoryTransientStore() *InMemoryTransientStore {
	store := &InMemoryTransientStore{
		entries:  make(map[string]entry),
		now:      time.Now,
		stopChan: make(chan struct{}),
	}

	store.wg.Add(1)
	go store.cleanupLoop()

	return store
}

// Set stores a copy of value until ttl elapses
func (s *InMemoryTransientStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{
		value:     cloneBytes(value),
		expiresAt: s.expiry(ttl),
	}
	return nil
}

// Get returns a copy of the stored value
func (s *InMemoryTransientStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, exists := s.entries[key]
	if !exists || e.value == nil || e.expired(s.now()) {
		return nil, shared.ErrNotFound
	}
	return cloneBytes(e.value), nil
}

// Delete removes key
func (s *InMemoryTransientStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// Push appends to the list under key and refreshes its expiration
func (s *InMemoryTransientStore) Push(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entries[key]
	if e.expired(s.now()) {
		e = entry{}
	}
	e.value = nil
	e.list = append(e.list, cloneBytes(value))
	e.expiresAt = s.expiry(ttl)
	s.entries[key] = e
	return nil
}

// Drain returns the list under key and removes it
func (s *InMemoryTransientStore) Drain(ctx context.Context, key string) ([][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.entries[key]
	delete(s.entries, key)
	if !exists || e.expired(s.now()) {
		return [][]byte{}, nil
	}
	return e.list, nil
}

// Close stops the cleanup goroutine and releases resources.
// Safe to call multiple times.
func (s *InMemoryTransientStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
	return nil
}

func (s *InMemoryTransientStore) expiry(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return s.now().Add(ttl)
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// cleanupLoop periodically removes expired entries
func (s *InMemoryTransientStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

// cleanup removes expired entries from the store
func (s *InMemoryTransientStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, e := range s.entries {
		if e.expired(now) {
			delete(s.entries, key)
		}
	}
}

// Size returns the number of entries in the store (for testing/monitoring)
func (s *InMemoryTransientStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Ensure InMemoryTransientStore implements TransientStore
var _ shared.TransientStore = (*InMemoryTransientStore)(nil)
