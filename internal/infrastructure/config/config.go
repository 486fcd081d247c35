package config

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-envconfig"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreMongo  = "mongo"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	Backend BackendConfig
	Token   TokenConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

// BackendConfig points at the CastMate REST backend.
type BackendConfig struct {
	BaseURL string        `env:"CASTMATE_BASE_URL, default=https://cast-mate.vercel.app" validate:"required,url,startswith=http"`
	Timeout time.Duration `env:"CASTMATE_TIMEOUT,  default=15s"                          validate:"gt=0"`
}

// TokenConfig selects where the access token is persisted between requests.
type TokenConfig struct {
	Store     string        `env:"TOKEN_STORE,     default=memory"    validate:"oneof=memory redis mongo"`
	Namespace string        `env:"TOKEN_NAMESPACE, default=authToken" validate:"required"`
	TTL       time.Duration `env:"TOKEN_TTL,       default=0"         validate:"gte=0"`
	SealKey   string        `env:"TOKEN_SEAL_KEY"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=castmate"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: process env: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: invalid: %w", err)
	}
	return &cfg, nil
}
