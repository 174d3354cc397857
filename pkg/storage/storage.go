// Package storage defines the key-value blob boundary the form builder
// persists through, plus in-memory, file, and SQLite implementations.
package storage

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound signals an absent key. Callers treat absence as "start fresh",
// never as a fatal condition.
var ErrNotFound = errors.New("storage: key not found")

// BlobStore is the external persistence boundary: load a blob by key, save a
// blob under a key. Implementations must be safe for concurrent use; saves
// may arrive from a debounce timer goroutine.
type BlobStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
}

// MemoryStore keeps blobs in process memory. Useful for tests and for
// sessions that degraded to in-memory-only persistence.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Load returns the blob stored under key, or ErrNotFound.
func (s *MemoryStore) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

// Save stores a copy of the blob under key.
func (s *MemoryStore) Save(ctx context.Context, key string, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cp := make([]byte, len(blob))
	copy(cp, blob)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = cp
	return nil
}
