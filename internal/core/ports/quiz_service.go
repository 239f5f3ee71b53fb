package ports

import (
	"context"

	"github.com/quizbit/quiz-service/internal/core/domain"
)

type QuizService interface {
	Questions(ctx context.Context) domain.Catalog
	Submit(ctx context.Context, session *domain.Session, answers map[string]any) (score, total int, err error)
}
