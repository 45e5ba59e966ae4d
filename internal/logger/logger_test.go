package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicehub/internal/config"
	"invoicehub/internal/logger"
)

func TestConfigure_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger.Configure(&buf, config.LogConfig{Level: "info", Format: "json"})

	log.Info().Str("record", "abc").Msg("ingested")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "abc", entry["record"])
	assert.Equal(t, "ingested", entry["message"])
}

func TestConfigure_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger.Configure(&buf, config.LogConfig{Level: "warn", Format: "json"})

	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestConfigure_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger.Configure(&buf, config.LogConfig{Level: "chatty", Format: "json"})

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
