package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/quizbit/quiz-service/internal/core/domain"
	"github.com/quizbit/quiz-service/internal/core/ports"
)

// ScoreMode selects where a fresh login gets its session score from. The two
// historical deployments disagreed (in-memory reset to zero, document-store
// restored the persisted value), so the behaviour is configurable.
type ScoreMode string

const (
	ScoreReset   ScoreMode = "reset"
	ScoreRestore ScoreMode = "restore"
)

// AuthService implements registration, login, logout and session lookup.
type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionStore
	sessionTTL time.Duration
	scoreMode  ScoreMode
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, sessionTTL time.Duration, scoreMode ScoreMode) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = time.Hour
	}
	if scoreMode != ScoreRestore {
		scoreMode = ScoreReset
	}
	return &AuthService{users: users, sessions: sessions, sessionTTL: sessionTTL, scoreMode: scoreMode}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.Session, error) {
	if username == "" || password == "" {
		return nil, domain.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return s.openSession(ctx, created, 0)
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	if username == "" || password == "" {
		return nil, domain.ErrValidation
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		// Same response for unknown user and wrong password.
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	score := 0
	if s.scoreMode == ScoreRestore {
		score = user.Score
	}
	return s.openSession(ctx, user, score)
}

// Logout destroys the caller's session. Destroying an absent session is not
// an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return err
	}
	return nil
}

// Identify resolves a session token. It returns domain.ErrUnauthorized for a
// missing, unknown or expired token and has no side effects.
func (s *AuthService) Identify(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	return session, nil
}

func (s *AuthService) openSession(ctx context.Context, user *domain.User, score int) (*domain.Session, error) {
	session := &domain.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		Score:     score,
		ExpiresAt: time.Now().UTC().Add(s.sessionTTL),
	}
	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
