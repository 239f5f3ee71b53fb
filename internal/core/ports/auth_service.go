package ports

import (
	"context"

	"github.com/quizbit/quiz-service/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.Session, error)
	Login(ctx context.Context, username, password string) (*domain.Session, error)
	Logout(ctx context.Context, token string) error
	Identify(ctx context.Context, token string) (*domain.Session, error)
}
