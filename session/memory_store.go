package session

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store for tests and local development
// without Redis.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, sessionID, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if vals, ok := s.sessions[sessionID]; ok {
		if v, ok := vals[key]; ok {
			return v, nil
		}
	}
	return "", ErrNotFound
}

func (s *MemoryStore) Set(_ context.Context, sessionID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	vals, ok := s.sessions[sessionID]
	if !ok {
		vals = make(map[string]string)
		s.sessions[sessionID] = vals
	}
	vals[key] = value
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if vals, ok := s.sessions[sessionID]; ok {
		for _, k := range keys {
			delete(vals, k)
		}
	}
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
