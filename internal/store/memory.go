package store

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-process fiber.Storage implementation used in development
// and tests, where a Redis instance is not available. Expiration is honored
// lazily on read.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

// NewMemory creates an empty in-memory storage.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry)}
}

// Get returns the value for key, or nil if absent or expired.
func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		m.mu.Lock()
		// Re-check under the write lock: a Set may have replaced the entry
		// between the two locks, and that fresh value must survive.
		if current, ok := m.entries[key]; ok && !current.expiresAt.IsZero() && time.Now().After(current.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, nil
	}

	value := make([]byte, len(entry.value))
	copy(value, entry.value)
	return value, nil
}

// GetWithContext returns the value for key.
func (m *Memory) GetWithContext(_ context.Context, key string) ([]byte, error) {
	return m.Get(key)
}

// Set stores val under key with an optional expiration.
func (m *Memory) Set(key string, val []byte, exp time.Duration) error {
	entry := memoryEntry{value: make([]byte, len(val))}
	copy(entry.value, val)
	if exp > 0 {
		entry.expiresAt = time.Now().Add(exp)
	}

	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()
	return nil
}

// SetWithContext stores val under key.
func (m *Memory) SetWithContext(_ context.Context, key string, val []byte, exp time.Duration) error {
	return m.Set(key, val, exp)
}

// Delete removes key. Missing keys are not an error.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

// DeleteWithContext removes key.
func (m *Memory) DeleteWithContext(_ context.Context, key string) error {
	return m.Delete(key)
}

// Reset removes all keys.
func (m *Memory) Reset() error {
	m.mu.Lock()
	m.entries = make(map[string]memoryEntry)
	m.mu.Unlock()
	return nil
}

// ResetWithContext removes all keys.
func (m *Memory) ResetWithContext(_ context.Context) error {
	return m.Reset()
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
