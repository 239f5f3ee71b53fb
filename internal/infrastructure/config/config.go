package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
	StoreRedis  = "redis"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session SessionConfig
	Users   UsersConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	// Secret signs the sid cookie. The default exists for local development
	// only; deployments must set SESSION_SECRET.
	Secret string        `env:"SESSION_SECRET, default=dev-session-secret"`
	TTL    time.Duration `env:"SESSION_TTL,    default=1h"`
	// Store selects where live sessions are kept: memory or redis.
	Store string `env:"SESSIONS, default=memory"`
	// ScoreOnLogin selects the session score source on login: "reset" starts
	// at zero, "restore" loads the score persisted on the user record.
	ScoreOnLogin string `env:"SCORE_ON_LOGIN, default=reset"`
}

type UsersConfig struct {
	// Store selects the user directory backend: memory or mongo.
	Store string `env:"STORE, default=memory"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=quiz_service"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
