package ports

import (
	"context"

	"github.com/quizbit/quiz-service/internal/core/domain"
)

// SessionStore abstracts where live sessions are kept (in-process map, Redis).
// Put both creates a session and overwrites it, e.g. after a score update.
// Get must not return expired sessions.
type SessionStore interface {
	Put(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}
