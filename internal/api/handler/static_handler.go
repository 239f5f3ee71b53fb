package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quizbit/quiz-service/web"
)

// StaticHandler serves the embedded single-page frontend for every route the
// API does not claim.
type StaticHandler struct{}

func NewStaticHandler() *StaticHandler {
	return &StaticHandler{}
}

// Index serves the frontend document verbatim.
func (h *StaticHandler) Index(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, web.IndexHTML)
}
