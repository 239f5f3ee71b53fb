package service

import (
	"context"
	"strconv"

	"github.com/quizbit/quiz-service/internal/core/domain"
	"github.com/quizbit/quiz-service/internal/core/ports"
)

// QuizService serves the fixed catalog and grades submissions.
type QuizService struct {
	catalog  domain.Catalog
	sessions ports.SessionStore
	users    ports.UserRepository
}

// NewQuizService builds a QuizService over a fixed catalog. Submitted scores
// are written back to both the session and the user record, so a restore-mode
// login sees the last score regardless of which user store backs the service.
func NewQuizService(catalog domain.Catalog, sessions ports.SessionStore, users ports.UserRepository) *QuizService {
	return &QuizService{catalog: catalog, sessions: sessions, users: users}
}

// Questions returns the full catalog, answer key included. Redaction happens
// at the transport layer; nothing outside this process ever sees the key.
func (s *QuizService) Questions(_ context.Context) domain.Catalog {
	return s.catalog
}

// Submit grades answers against the catalog and records the result. The score
// is recomputed from scratch: for each question the caller's selection must be
// present, numeric and equal to the correct option index to count. Unanswered
// or malformed entries score nothing and raise no error.
func (s *QuizService) Submit(ctx context.Context, session *domain.Session, answers map[string]any) (int, int, error) {
	if answers == nil {
		return 0, 0, domain.ErrValidation
	}

	score := 0
	for _, q := range s.catalog {
		raw, ok := answers[strconv.Itoa(q.ID)]
		if !ok {
			continue
		}
		selected, ok := raw.(float64)
		if !ok {
			continue
		}
		if selected == float64(q.CorrectOption) {
			score++
		}
	}

	session.Score = score
	if err := s.sessions.Put(ctx, session); err != nil {
		return 0, 0, err
	}
	if err := s.users.UpdateScore(ctx, session.UserID, score); err != nil {
		return 0, 0, err
	}

	return score, len(s.catalog), nil
}
