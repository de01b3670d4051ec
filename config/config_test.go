package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every key Load reads; blank values count as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "GIN_MODE", "LOG_LEVEL", "CORS_ORIGIN", "MAX_BODY_BYTES",
		"ACCESS_TOKEN_SECRET", "JWT_SECRET_KEY", "ACCESS_TOKEN_TTL",
		"REDIS_URL", "USER_CACHE_TTL", "STORE_DRIVER", "MONGO_URI", "MONGO_DB",
		"USERS_COLLECTION", "NOTES_COLLECTION", "POSTGRES_DSN", "STORE_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("ACCESS_TOKEN_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
	assert.True(t, cfg.Release())
	assert.Equal(t, "*", cfg.CORSOrigin)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.Equal(t, "s3cret", cfg.TokenSecret)
	assert.Equal(t, 3600*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 5*time.Minute, cfg.UserCacheTTL)
	assert.Empty(t, cfg.RedisURL)

	assert.Equal(t, DriverMongo, cfg.Database.Driver)
	assert.Equal(t, "quicknotes", cfg.Database.DatabaseName)
	assert.Equal(t, "users", cfg.Database.UsersCollection)
	assert.Equal(t, "notes", cfg.Database.NotesCollection)
	assert.Equal(t, 10*time.Second, cfg.Database.Timeout)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET_KEY", "legacy")
	t.Setenv("PORT", "9000")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("ACCESS_TOKEN_TTL", "90m")
	t.Setenv("STORE_TIMEOUT", "3")
	t.Setenv("STORE_DRIVER", "memory")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "legacy", cfg.TokenSecret)
	assert.Equal(t, "9000", cfg.Port)
	assert.False(t, cfg.Release())
	assert.Equal(t, 90*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 3*time.Second, cfg.Database.Timeout)
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{}},
		{"bad driver", map[string]string{"ACCESS_TOKEN_SECRET": "s", "STORE_DRIVER": "sqlite"}},
		{"postgres without dsn", map[string]string{"ACCESS_TOKEN_SECRET": "s", "STORE_DRIVER": "postgres"}},
		{"bad gin mode", map[string]string{"ACCESS_TOKEN_SECRET": "s", "GIN_MODE": "loud"}},
		{"negative body cap", map[string]string{"ACCESS_TOKEN_SECRET": "s", "MAX_BODY_BYTES": "-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("CORS_ORIGIN")

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("CORS_ORIGIN=http://localhost:5173\n"), 0o600))

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "http://localhost:5173", os.Getenv("CORS_ORIGIN"))
	os.Unsetenv("CORS_ORIGIN")

	assert.NoError(t, LoadEnvFile(filepath.Join(dir, "missing.env")))
}
