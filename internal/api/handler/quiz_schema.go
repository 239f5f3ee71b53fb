package handler

import "github.com/quizbit/quiz-service/internal/core/domain"

// questionResponse deliberately has no field for the correct option: the
// answer key must never appear in any response serialisation.
type questionResponse struct {
	ID      int      `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

type questionsResponse struct {
	Questions []questionResponse `json:"questions"`
}

type submitRequest struct {
	Answers map[string]any `json:"answers"`
}

type submitResponse struct {
	Score   int    `json:"score"`
	Total   int    `json:"total"`
	Message string `json:"message"`
}

func toQuestionsResponse(catalog domain.Catalog) questionsResponse {
	out := questionsResponse{Questions: make([]questionResponse, 0, len(catalog))}
	for _, q := range catalog {
		out.Questions = append(out.Questions, questionResponse{
			ID:      q.ID,
			Prompt:  q.Prompt,
			Options: q.Options,
		})
	}
	return out
}
