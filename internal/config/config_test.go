package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicehub/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "GET, POST, OPTIONS", cfg.CORS.AllowedMethods)
	assert.Equal(t, "Content-Type, Authorization", cfg.CORS.AllowedHeaders)
	assert.Equal(t, "seed-data/Analytics_Test_Data.json", cfg.Seed.File)
	assert.Equal(t, 1, cfg.Seed.Workers)
	assert.Equal(t, "EUR", cfg.Seed.DefaultCurrency)
	assert.Equal(t, "csv", cfg.Export.DefaultFormat)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.LLM.Model)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 1000, cfg.LLM.MaxRows)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("INVOICEHUB_DB_HOST", "db.internal")
	t.Setenv("INVOICEHUB_DB_PORT", "6543")
	t.Setenv("INVOICEHUB_SEED_WORKERS", "4")
	t.Setenv("INVOICEHUB_CORS_ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, 4, cfg.Seed.Workers)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestLoad_LLMKeyFallback(t *testing.T) {
	t.Setenv("INVOICEHUB_LLM_API_KEY", "")
	t.Setenv("GROQ_API_KEY", "gsk-legacy")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "gsk-legacy", cfg.LLM.APIKey)

	t.Setenv("INVOICEHUB_LLM_API_KEY", "gsk-prefixed")
	cfg, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, "gsk-prefixed", cfg.LLM.APIKey)
}

func TestLoad_WorkersClampedToOne(t *testing.T) {
	t.Setenv("INVOICEHUB_SEED_WORKERS", "0")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Seed.Workers)
}

func TestDBConfig_DSN(t *testing.T) {
	d := config.DBConfig{
		Host: "localhost", Port: 5432, User: "u", Password: "p", Name: "invoices", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@localhost:5432/invoices?sslmode=disable", d.DSN())
}
