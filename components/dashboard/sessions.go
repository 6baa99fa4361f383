package dashboard

import (
	"context"
	"fmt"
	"sync"
)

// InMemorySessionStore keeps active sections per session in memory.
type InMemorySessionStore struct {
	mu   sync.RWMutex
	data map[string]int
}

// NewInMemorySessionStore creates an empty session store.
func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{
		data: make(map[string]int),
	}
}

// ActiveSection returns the stored index; ok is false for unknown or
// anonymous sessions.
func (s *InMemorySessionStore) ActiveSection(_ context.Context, session SessionContext) (int, bool, error) {
	if session.ID == "" {
		return 0, false, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	index, ok := s.data[session.ID]
	return index, ok, nil
}

// SaveActiveSection stores the index for a session.
func (s *InMemorySessionStore) SaveActiveSection(_ context.Context, session SessionContext, index int) error {
	if session.ID == "" {
		return fmt.Errorf("session store requires session id")
	}
	if index < 0 {
		return fmt.Errorf("session store: negative section index %d", index)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[session.ID] = index
	return nil
}

