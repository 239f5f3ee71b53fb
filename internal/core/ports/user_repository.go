package ports

import (
	"context"

	"github.com/quizbit/quiz-service/internal/core/domain"
)

// UserRepository defines the interface for the user directory.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateScore(ctx context.Context, id string, score int) error
}
