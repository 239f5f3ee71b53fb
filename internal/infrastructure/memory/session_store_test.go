package memory

import (
	"context"
	"testing"
	"time"

	"github.com/quizbit/quiz-service/internal/core/domain"
)

func TestSessionStorePutGetDelete(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	session := &domain.Session{Token: "t1", UserID: "u1", Username: "alice", ExpiresAt: time.Now().Add(time.Hour)}
	if err := store.Put(ctx, session); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Get(ctx, "t1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Username != "alice" {
		t.Fatalf("unexpected session: %+v", got)
	}

	// Mutating the returned copy must not affect the stored session.
	got.Score = 99
	again, err := store.Get(ctx, "t1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if again.Score != 0 {
		t.Fatalf("stored session was mutated through a returned copy")
	}

	if err := store.Delete(ctx, "t1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "t1"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
	if err := store.Delete(ctx, "t1"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound on second delete, got %v", err)
	}
}

func TestSessionStoreExpiry(t *testing.T) {
	store := NewSessionStore()
	now := time.Now()
	store.clock = func() time.Time { return now }
	ctx := context.Background()

	session := &domain.Session{Token: "t1", ExpiresAt: now.Add(time.Hour)}
	if err := store.Put(ctx, session); err != nil {
		t.Fatalf("put: %v", err)
	}

	if _, err := store.Get(ctx, "t1"); err != nil {
		t.Fatalf("get before expiry: %v", err)
	}

	store.clock = func() time.Time { return now.Add(time.Hour + time.Second) }
	if _, err := store.Get(ctx, "t1"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound after expiry, got %v", err)
	}
}
