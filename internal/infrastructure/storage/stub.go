package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/pizzeria/backend/internal/application/media"
)

// StubImageStorage keeps uploads in memory. Used in development and
// tests when no S3-compatible backend is configured.
type StubImageStorage struct {
	// BaseURL prefixes generated public URLs
	BaseURL string

	mu      sync.RWMutex
	objects map[string][]byte
}

// NewStubImageStorage creates an empty stub store
func NewStubImageStorage() *StubImageStorage {
	return &StubImageStorage{
		BaseURL: "https://storage.example.com",
		objects: make(map[string][]byte),
	}
}

var _ media.ObjectStorage = (*StubImageStorage)(nil)

// Upload stores data in memory
func (s *StubImageStorage) Upload(_ context.Context, storageKey string, data []byte, _ string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	s.mu.Lock()
	s.objects[storageKey] = data
	s.mu.Unlock()
	return nil
}

// Delete removes an object
func (s *StubImageStorage) Delete(_ context.Context, storageKey string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	s.mu.Lock()
	delete(s.objects, storageKey)
	s.mu.Unlock()
	return nil
}

// Exists reports whether an object was uploaded
func (s *StubImageStorage) Exists(_ context.Context, storageKey string) (bool, error) {
	if storageKey == "" {
		return false, errors.New("storage key is required")
	}
	s.mu.RLock()
	_, ok := s.objects[storageKey]
	s.mu.RUnlock()
	return ok, nil
}

// PublicURL returns the stub URL for storageKey
func (s *StubImageStorage) PublicURL(storageKey string) string {
	return s.BaseURL + "/" + storageKey
}
