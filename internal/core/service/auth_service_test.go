package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/quizbit/quiz-service/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = user.Username
	}
	r.users[copy.Username] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) UpdateScore(_ context.Context, id string, score int) error {
	for _, u := range r.users {
		if u.ID == id {
			u.Score = score
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type stubSessionStore struct {
	sessions map[string]*domain.Session
	putErr   error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubSessionStore) Put(_ context.Context, session *domain.Session) error {
	if s.putErr != nil {
		return s.putErr
	}
	clone := *session
	s.sessions[session.Token] = &clone
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, token string) (*domain.Session, error) {
	session, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *session
	return &clone, nil
}

func (s *stubSessionStore) Delete(_ context.Context, token string) error {
	if _, ok := s.sessions[token]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, token)
	return nil
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	store := newStubSessionStore()
	svc := NewAuthService(repo, store, time.Hour, ScoreReset)

	session, err := svc.Register(context.Background(), "alice", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if session.Token == "" {
		t.Fatalf("expected a session token")
	}
	if session.Score != 0 {
		t.Fatalf("expected fresh session score 0, got %d", session.Score)
	}

	stored := repo.users["alice"]
	if stored == nil {
		t.Fatalf("user was not stored")
	}
	if stored.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	if _, err := store.Get(context.Background(), session.Token); err != nil {
		t.Fatalf("session not stored: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubSessionStore(), time.Hour, ScoreReset)

	if _, err := svc.Register(context.Background(), "", "pass"); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation for empty username, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", ""); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation for empty password, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubSessionStore(), time.Hour, ScoreReset)

	if _, err := svc.Register(context.Background(), "bob", "pass"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "pass2"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	store := newStubSessionStore()
	svc := NewAuthService(repo, store, time.Hour, ScoreReset)

	first, err := svc.Register(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	session, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if session.Username != "carol" {
		t.Fatalf("unexpected username: %s", session.Username)
	}
	if session.Token == first.Token {
		t.Fatalf("login must establish a new session")
	}
	if session.Expired(time.Now()) {
		t.Fatalf("fresh session is already expired")
	}
}

func TestAuthService_Login_SameErrorForUnknownUserAndWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, newStubSessionStore(), time.Hour, ScoreReset)

	if _, err := svc.Register(context.Background(), "dave", "goodpass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, wrongPw := svc.Login(context.Background(), "dave", "badpass")
	_, unknown := svc.Login(context.Background(), "ghost", "whatever")

	if wrongPw != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPw)
	}
	if unknown != domain.ErrInvalidCredentials {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknown)
	}
}

func TestAuthService_Login_ScoreModes(t *testing.T) {
	repo := newStubUserRepo()
	if _, err := repo.Create(context.Background(), &domain.User{Username: "erin", PasswordHash: mustHash(t, "pw"), Score: 2}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	reset := NewAuthService(repo, newStubSessionStore(), time.Hour, ScoreReset)
	session, err := reset.Login(context.Background(), "erin", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if session.Score != 0 {
		t.Fatalf("reset mode: expected score 0, got %d", session.Score)
	}

	restore := NewAuthService(repo, newStubSessionStore(), time.Hour, ScoreRestore)
	session, err = restore.Login(context.Background(), "erin", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if session.Score != 2 {
		t.Fatalf("restore mode: expected score 2, got %d", session.Score)
	}
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	store := newStubSessionStore()
	svc := NewAuthService(newStubUserRepo(), store, time.Hour, ScoreReset)

	session, err := svc.Register(context.Background(), "frank", "pw")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.Logout(context.Background(), session.Token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if err := svc.Logout(context.Background(), session.Token); err != nil {
		t.Fatalf("second logout not idempotent: %v", err)
	}
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("logout without token: %v", err)
	}
}

func TestAuthService_Identify(t *testing.T) {
	store := newStubSessionStore()
	svc := NewAuthService(newStubUserRepo(), store, time.Hour, ScoreReset)

	if _, err := svc.Identify(context.Background(), ""); err != domain.ErrUnauthorized {
		t.Fatalf("empty token: expected ErrUnauthorized, got %v", err)
	}
	if _, err := svc.Identify(context.Background(), "nope"); err != domain.ErrUnauthorized {
		t.Fatalf("unknown token: expected ErrUnauthorized, got %v", err)
	}

	session, err := svc.Register(context.Background(), "gina", "pw")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	got, err := svc.Identify(context.Background(), session.Token)
	if err != nil {
		t.Fatalf("identify failed: %v", err)
	}
	if got.Username != "gina" {
		t.Fatalf("unexpected session: %+v", got)
	}

	if err := svc.Logout(context.Background(), session.Token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := svc.Identify(context.Background(), session.Token); err != domain.ErrUnauthorized {
		t.Fatalf("after logout: expected ErrUnauthorized, got %v", err)
	}
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}
