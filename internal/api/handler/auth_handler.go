package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quizbit/quiz-service/internal/api/metrics"
	apimw "github.com/quizbit/quiz-service/internal/api/middleware"
	"github.com/quizbit/quiz-service/internal/api/sessioncookie"
	"github.com/quizbit/quiz-service/internal/core/domain"
	"github.com/quizbit/quiz-service/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	codec       *sessioncookie.Codec
}

func NewAuthHandler(authService ports.AuthService, codec *sessioncookie.Codec) *AuthHandler {
	return &AuthHandler{authService: authService, codec: codec}
}

// Register creates a new user account and logs the caller in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Desired username and password"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrValidation
	}
	if err := c.Validate(&req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	session, err := h.authService.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	metrics.RegistrationsTotal.Inc()

	if err := h.issueCookie(c, session); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{Message: "registered", Username: session.Username})
}

// Login authenticates a user and establishes a new session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrValidation
	}
	if err := c.Validate(&req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	session, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	if err := h.issueCookie(c, session); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{Message: "logged in", Username: session.Username})
}

// Logout destroys the caller's session. Always clears the cookie, even when
// no session existed.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := h.codec.Token(c.Request())
	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return err
	}
	c.SetCookie(sessioncookie.Clear())
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

// Me reports whether the caller holds a valid session. Read-only.
//
// @Summary      Identity check
// @Tags         auth
// @Produce      json
// @Success      200  {object}  identityResponse
// @Router       /api/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	session := apimw.SessionFrom(c)
	if session == nil {
		return c.JSON(http.StatusOK, identityResponse{Authenticated: false})
	}
	return c.JSON(http.StatusOK, identityResponse{Authenticated: true, Username: session.Username})
}

func (h *AuthHandler) issueCookie(c echo.Context, session *domain.Session) error {
	cookie, err := h.codec.Issue(session.Token)
	if err != nil {
		return err
	}
	c.SetCookie(cookie)
	return nil
}
