package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quizbit/quiz-service/internal/api/metrics"
	apimw "github.com/quizbit/quiz-service/internal/api/middleware"
	"github.com/quizbit/quiz-service/internal/core/domain"
	"github.com/quizbit/quiz-service/internal/core/ports"
)

type QuizHandler struct {
	quizService ports.QuizService
}

func NewQuizHandler(quizService ports.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// Questions returns the catalog with the answer key stripped.
//
// @Summary      List quiz questions
// @Tags         quiz
// @Produce      json
// @Success      200  {object}  questionsResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/quiz/questions [get]
func (h *QuizHandler) Questions(c echo.Context) error {
	catalog := h.quizService.Questions(c.Request().Context())
	return c.JSON(http.StatusOK, toQuestionsResponse(catalog))
}

// Submit grades the caller's answers and records the score.
//
// @Summary      Submit quiz answers
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Param        body  body      submitRequest  true  "Answers keyed by question id"
// @Success      200   {object}  submitResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/quiz/submit [post]
func (h *QuizHandler) Submit(c echo.Context) error {
	session := apimw.SessionFrom(c)
	if session == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrUnauthorized.Error())
	}

	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrValidation
	}

	score, total, err := h.quizService.Submit(c.Request().Context(), session, req.Answers)
	if err != nil {
		return err
	}

	metrics.SubmissionsTotal.Inc()
	if total > 0 {
		metrics.SubmissionScoreRatio.Observe(float64(score) / float64(total))
	}

	return c.JSON(http.StatusOK, submitResponse{
		Score:   score,
		Total:   total,
		Message: fmt.Sprintf("You scored %d out of %d", score, total),
	})
}
