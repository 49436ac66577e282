package session

import (
	"context"
	"sync"

	"tailortalk/models"
)

// MemoryStore is an in-process session store with process-lifetime scope.
// Sessions are never evicted and are lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*models.Session)}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return &models.Session{ID: id, LastIntent: models.IntentUnknown}, nil
	}
	// Copy so callers mutate their own view until Put.
	cp := *sess
	cp.Turns = append([]models.ConversationTurn(nil), sess.Turns...)
	return &cp, nil
}

func (s *MemoryStore) Put(ctx context.Context, sess *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *sess
	cp.Turns = append([]models.ConversationTurn(nil), sess.Turns...)
	s.sessions[sess.ID] = &cp
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
