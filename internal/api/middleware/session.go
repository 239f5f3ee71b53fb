package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quizbit/quiz-service/internal/api/sessioncookie"
	"github.com/quizbit/quiz-service/internal/core/domain"
	"github.com/quizbit/quiz-service/internal/core/ports"
)

// SessionKey is the echo context key under which the resolved session lives.
const SessionKey = "session"

// Session resolves the sid cookie to a server-side session and injects it
// into the request context. Requests without a valid session pass through
// untouched; routes that require one add RequireSession on top.
func Session(codec *sessioncookie.Codec, auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := codec.Token(c.Request())
			if token == "" {
				return next(c)
			}
			session, err := auth.Identify(c.Request().Context(), token)
			if errors.Is(err, domain.ErrUnauthorized) {
				// Expired or unknown token: treated as anonymous.
				return next(c)
			}
			if err != nil {
				return err
			}
			c.Set(SessionKey, session)
			return next(c)
		}
	}
}

// RequireSession rejects requests that did not resolve to a session.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if SessionFrom(c) == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrUnauthorized.Error())
			}
			return next(c)
		}
	}
}

// SessionFrom returns the session injected by Session, or nil.
func SessionFrom(c echo.Context) *domain.Session {
	session, _ := c.Get(SessionKey).(*domain.Session)
	return session
}
