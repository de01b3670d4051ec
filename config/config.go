package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"quicknotes/utils"

	"github.com/joho/godotenv"
)

// DefaultTokenTTL is the validity window of access tokens.
const DefaultTokenTTL = 3600 * time.Minute

type AppConfig struct {
	Port         string
	GinMode      string
	LogLevel     string
	CORSOrigin   string
	MaxBodyBytes int64

	TokenSecret string
	TokenTTL    time.Duration

	RedisURL     string
	UserCacheTTL time.Duration

	Database DatabaseConfig
}

// LoadEnvFile loads .env into the process environment. A missing file is not
// an error; variables already set win over the file.
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				slog.Debug("env file not found", "path", p)
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads the configuration from the environment.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		Port:         utils.GetEnvAsString("PORT", "8080"),
		GinMode:      utils.GetEnvAsString("GIN_MODE", "release"),
		LogLevel:     utils.GetEnvAsString("LOG_LEVEL", "info"),
		CORSOrigin:   utils.GetEnvAsString("CORS_ORIGIN", "*"),
		MaxBodyBytes: utils.GetEnvAsInt64("MAX_BODY_BYTES", 1<<20),
		TokenSecret:  utils.GetFirstEnv("", "ACCESS_TOKEN_SECRET", "JWT_SECRET_KEY"),
		TokenTTL:     utils.GetEnvAsDuration("ACCESS_TOKEN_TTL", DefaultTokenTTL),
		RedisURL:     utils.GetEnvAsString("REDIS_URL", ""),
		UserCacheTTL: utils.GetEnvAsDuration("USER_CACHE_TTL", 5*time.Minute),
		Database:     LoadDatabaseConfig(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) Validate() error {
	if c.TokenSecret == "" {
		return errors.New("ACCESS_TOKEN_SECRET is not set")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test, got %q", c.GinMode)
	}
	switch c.Database.Driver {
	case DriverMongo:
		if c.Database.URI == "" {
			return errors.New("MONGO_URI is not set")
		}
	case DriverPostgres:
		if c.Database.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required when STORE_DRIVER=postgres")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Database.Driver)
	}
	return nil
}

// Release reports whether the server runs in gin release mode.
func (c *AppConfig) Release() bool {
	return c.GinMode == "release"
}
