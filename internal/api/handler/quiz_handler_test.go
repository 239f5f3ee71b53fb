package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	apimw "github.com/quizbit/quiz-service/internal/api/middleware"
	"github.com/quizbit/quiz-service/internal/core/domain"
)

type stubQuizService struct {
	questionsFn func(ctx context.Context) domain.Catalog
	submitFn    func(ctx context.Context, session *domain.Session, answers map[string]any) (int, int, error)
}

func (s *stubQuizService) Questions(ctx context.Context) domain.Catalog {
	return s.questionsFn(ctx)
}

func (s *stubQuizService) Submit(ctx context.Context, session *domain.Session, answers map[string]any) (int, int, error) {
	return s.submitFn(ctx, session, answers)
}

func TestQuizHandler_Questions_NeverExposeAnswerKey(t *testing.T) {
	stub := &stubQuizService{
		questionsFn: func(ctx context.Context) domain.Catalog {
			return domain.DefaultCatalog()
		},
	}
	h := NewQuizHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/quiz/questions", "")
	if err := h.Questions(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	if strings.Contains(strings.ToLower(body), "correct") {
		t.Fatalf("answer key leaked into questions response: %s", body)
	}

	var resp struct {
		Questions []map[string]any `json:"questions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(resp.Questions))
	}
	for _, q := range resp.Questions {
		for _, field := range []string{"id", "prompt", "options"} {
			if _, ok := q[field]; !ok {
				t.Fatalf("question missing %q: %+v", field, q)
			}
		}
		if len(q) != 3 {
			t.Fatalf("question carries unexpected fields: %+v", q)
		}
	}
}

func TestQuizHandler_Submit_RequiresSession(t *testing.T) {
	h := NewQuizHandler(&stubQuizService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/quiz/submit", `{"answers":{}}`)
	err := h.Submit(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestQuizHandler_Submit_Success(t *testing.T) {
	stub := &stubQuizService{
		submitFn: func(ctx context.Context, session *domain.Session, answers map[string]any) (int, int, error) {
			if session.Username != "alice" {
				t.Fatalf("unexpected session: %+v", session)
			}
			if answers["1"] != float64(1) {
				t.Fatalf("unexpected answers: %+v", answers)
			}
			return 1, 3, nil
		},
	}
	h := NewQuizHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/quiz/submit", `{"answers":{"1":1}}`)
	c.Set(apimw.SessionKey, &domain.Session{Username: "alice"})
	if err := h.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["score"] != float64(1) || resp["total"] != float64(3) {
		t.Fatalf("unexpected result: %+v", resp)
	}
	if resp["message"] != "You scored 1 out of 3" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestQuizHandler_Submit_MissingAnswers(t *testing.T) {
	stub := &stubQuizService{
		submitFn: func(ctx context.Context, session *domain.Session, answers map[string]any) (int, int, error) {
			if answers != nil {
				t.Fatalf("expected nil answers, got %+v", answers)
			}
			return 0, 0, domain.ErrValidation
		},
	}
	h := NewQuizHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/quiz/submit", `{}`)
	c.Set(apimw.SessionKey, &domain.Session{Username: "alice"})
	if err := h.Submit(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestQuizHandler_Submit_NonObjectAnswers(t *testing.T) {
	h := NewQuizHandler(&stubQuizService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/quiz/submit", `{"answers":"nope"}`)
	c.Set(apimw.SessionKey, &domain.Session{Username: "alice"})
	if err := h.Submit(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
