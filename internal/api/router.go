package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/quizbit/quiz-service/internal/api/handler"
	"github.com/quizbit/quiz-service/internal/api/middleware"
	"github.com/quizbit/quiz-service/internal/api/sessioncookie"
	"github.com/quizbit/quiz-service/internal/core/ports"
	httphandlers "github.com/quizbit/quiz-service/internal/infrastructure/http/handlers"
)

// RouterConfig carries the wired dependencies for NewRouter.
type RouterConfig struct {
	AuthService ports.AuthService
	QuizService ports.QuizService
	Codec       *sessioncookie.Codec
	Readiness   *httphandlers.ReadinessHandler
	Log         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("quiz"))
	e.Use(middleware.Session(cfg.Codec, cfg.AuthService))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(cfg.AuthService, cfg.Codec)
	quizHandler := handler.NewQuizHandler(cfg.QuizService)
	staticHandler := handler.NewStaticHandler()

	// --- API routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/register", authHandler.Register)
	apiGroup.POST("/login", authHandler.Login)
	apiGroup.POST("/logout", authHandler.Logout)
	apiGroup.GET("/me", authHandler.Me)

	quiz := apiGroup.Group("/quiz", middleware.RequireSession())
	quiz.GET("/questions", quizHandler.Questions)
	quiz.POST("/submit", quizHandler.Submit)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := httphandlers.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness) // liveness – is the process alive?
	if cfg.Readiness != nil {
		e.GET("/health/ready", cfg.Readiness.Readiness) // readiness – are dependencies up?
	}

	// --- Static fallback: everything else gets the frontend document ---
	e.GET("/*", staticHandler.Index)

	return e
}
