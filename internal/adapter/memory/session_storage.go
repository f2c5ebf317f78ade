package memory

import (
	"context"
	"sync"

	"digigrow-web/internal/core/port"
)

var _ port.SessionStorage = (*SessionStorage)(nil)

// SessionStorage keeps session keys in process memory. Keys are lost on
// restart, which logs every admin out.
type SessionStorage struct {
	mu   sync.RWMutex
	data map[string]map[string]string
}

func NewSessionStorage() *SessionStorage {
	return &SessionStorage{data: make(map[string]map[string]string)}
}

func (s *SessionStorage) Get(_ context.Context, sessionID string, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[sessionID][key]
	return v, ok, nil
}

func (s *SessionStorage) Set(_ context.Context, sessionID string, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kv, ok := s.data[sessionID]
	if !ok {
		kv = make(map[string]string)
		s.data[sessionID] = kv
	}
	kv[key] = value
	return nil
}

// Delete removes keys; a session left without keys is dropped entirely.
func (s *SessionStorage) Delete(_ context.Context, sessionID string, keys []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kv, ok := s.data[sessionID]
	if !ok {
		return nil
	}
	for _, k := range keys {
		delete(kv, k)
	}
	if len(kv) == 0 {
		delete(s.data, sessionID)
	}
	return nil
}

// Len returns the number of sessions holding at least one key.
func (s *SessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
