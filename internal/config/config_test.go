package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, 100, cfg.RateLimit.Requests)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 50, cfg.Tests.MaxQuestions)
	assert.Equal(t, 24*time.Hour, cfg.Tests.TTL)
	assert.Zero(t, cfg.Generator.Seed)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("RATE_LIMIT_REQUESTS", "5")
	t.Setenv("RATE_LIMIT_WINDOW", "1m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("GENERATOR_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 5, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, uint64(42), cfg.Generator.Seed)
}

func TestLoad_ConfigFileAndDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.yaml"), []byte(
		"storage: postgres\ntests:\n  max_questions: 20\n  ttl: 1h\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(
		"DATABASE_URL=postgres://quiz@localhost/quiz?sslmode=disable\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("DATABASE_URL") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, "postgres://quiz@localhost/quiz?sslmode=disable", cfg.DB.URL)
	assert.Equal(t, 20, cfg.Tests.MaxQuestions)
	assert.Equal(t, time.Hour, cfg.Tests.TTL)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Storage:   StorageMemory,
		RateLimit: RateLimit{Requests: 1, Window: time.Second},
		Tests:     Tests{MaxQuestions: 1},
	}
	require.NoError(t, valid.Validate())

	pg := valid
	pg.Storage = StoragePostgres
	assert.ErrorIs(t, pg.Validate(), ErrMissingDatabaseURL)

	bad := valid
	bad.Storage = "redis"
	assert.ErrorIs(t, bad.Validate(), ErrInvalidStorage)

	noLimit := valid
	noLimit.RateLimit.Requests = 0
	assert.Error(t, noLimit.Validate())
}
