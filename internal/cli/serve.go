package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/quizbit/quiz-service/internal/api"
	"github.com/quizbit/quiz-service/internal/api/sessioncookie"
	"github.com/quizbit/quiz-service/internal/core/domain"
	"github.com/quizbit/quiz-service/internal/core/ports"
	"github.com/quizbit/quiz-service/internal/core/service"
	"github.com/quizbit/quiz-service/internal/infrastructure/config"
	mongodb "github.com/quizbit/quiz-service/internal/infrastructure/db/mongo"
	redisdb "github.com/quizbit/quiz-service/internal/infrastructure/db/redis"
	httphandlers "github.com/quizbit/quiz-service/internal/infrastructure/http/handlers"
	"github.com/quizbit/quiz-service/internal/infrastructure/memory"
	"github.com/quizbit/quiz-service/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
	gomongo "go.mongodb.org/mongo-driver/mongo"
)

// NewServeCmd builds the CLI subcommand to start the server.
func NewServeCmd(port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *port)
		},
	}
}

func runServer(ctx context.Context, portFlag string) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Port
	}

	var (
		userRepo    ports.UserRepository
		mongoClient *gomongo.Client
		mongoDB     *gomongo.Database
	)
	switch cfg.Users.Store {
	case config.StoreMongo:
		client, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return err
		}
		mongoClient, mongoDB = client, db
		repo := mongodb.NewUserRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			return err
		}
		userRepo = repo
		log.Info().Str("db", cfg.Mongo.Database).Msg("connected to mongodb")
	default:
		userRepo = memory.NewUserRepository()
	}
	if mongoClient != nil {
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = mongoClient.Disconnect(disconnectCtx)
		}()
	}

	var (
		sessionStore ports.SessionStore
		redisClient  *goredis.Client
	)
	switch cfg.Session.Store {
	case config.StoreRedis:
		client, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			return err
		}
		redisClient = client
		defer func() { _ = client.Close() }()
		sessionStore = redisdb.NewSessionStore(client)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
	default:
		sessionStore = memory.NewSessionStore()
	}

	authService := service.NewAuthService(userRepo, sessionStore, cfg.Session.TTL, service.ScoreMode(cfg.Session.ScoreOnLogin))
	quizService := service.NewQuizService(domain.DefaultCatalog(), sessionStore, userRepo)
	codec := sessioncookie.New(cfg.Session.Secret, cfg.Session.TTL)

	e := api.NewRouter(api.RouterConfig{
		AuthService: authService,
		QuizService: quizService,
		Codec:       codec,
		Readiness:   httphandlers.NewReadinessHandler(mongoDB, redisClient),
		Log:         log,
	})

	go func() {
		log.Info().Str("port", finalPort).Msg("starting quiz service")
		if err := e.Start(":" + finalPort); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server stopped")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Info().Msg("shutting down server")
	case <-ctx.Done():
		log.Info().Msg("context canceled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
