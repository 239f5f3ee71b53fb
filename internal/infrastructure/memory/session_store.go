package memory

import (
	"context"
	"sync"
	"time"

	"github.com/quizbit/quiz-service/internal/core/domain"
)

// SessionStore keeps live sessions in a mutex-guarded map. Expired entries
// are dropped lazily on lookup; Get never returns an expired session.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	clock    func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*domain.Session),
		clock:    time.Now,
	}
}

func (s *SessionStore) Put(_ context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *session
	s.sessions[session.Token] = &stored
	return nil
}

func (s *SessionStore) Get(_ context.Context, token string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if session.Expired(s.clock()) {
		delete(s.sessions, token)
		return nil, domain.ErrSessionNotFound
	}
	found := *session
	return &found, nil
}

func (s *SessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[token]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, token)
	return nil
}
