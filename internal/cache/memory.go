package cache

import (
	"context"
	"sync"
	"time"
)

var _ Cache = (*Memory)(nil)

// Memory is an in-process Cache implementation. It backs tests and local
// development runs where no Redis is available.
type Memory struct {
	mu    sync.RWMutex
	items map[string]memoryItem

	stopOnce sync.Once
	stop     chan struct{}
}

type memoryItem struct {
	value     []byte
	expiresAt time.Time
}

// NewMemory creates an in-memory cache and starts a janitor goroutine that
// evicts expired entries. Close stops the janitor.
func NewMemory() *Memory {
	m := &Memory{
		items: make(map[string]memoryItem),
		stop:  make(chan struct{}),
	}

	go m.cleanupExpired()

	return m
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, exists := m.items[key]
	if !exists {
		return nil, ErrNotFound
	}

	if !item.expiresAt.IsZero() && time.Now().After(item.expiresAt) {
		return nil, ErrNotFound
	}

	// Callers may hold the value after Set overwrites the entry.
	value := make([]byte, len(item.value))
	copy(value, item.value)
	return value, nil
}

func (m *Memory) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = memoryItem{value: stored, expiresAt: expiresAt}
	return nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, key)
	return nil
}

func (m *Memory) Ping(ctx context.Context) error {
	return nil
}

func (m *Memory) Close() error {
	m.stopOnce.Do(func() {
		close(m.stop)
	})
	return nil
}

func (m *Memory) cleanupExpired() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			m.mu.Lock()
			for key, item := range m.items {
				if !item.expiresAt.IsZero() && now.After(item.expiresAt) {
					delete(m.items, key)
				}
			}
			m.mu.Unlock()
		case <-m.stop:
			return
		}
	}
}
