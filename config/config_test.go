package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, "dev", cfg.Server.AppEnv)
	assert.Equal(t, "gardentrack.db", cfg.Session.DBPath)
	assert.Equal(t, 10, cfg.Session.BcryptCost)
	assert.Equal(t, "QR-Code:", cfg.Scanner.Prefix)
	assert.Empty(t, cfg.Seed.File)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("SESSION_BCRYPT_COST", "4")
	t.Setenv("LOGGER_DISABLE_CALLER", "true")
	t.Setenv("METRICS_TEXTFILE", "/tmp/gardentrack.prom")

	cfg := LoadEnv()

	assert.Equal(t, "development", cfg.Server.AppEnv)
	assert.Equal(t, 4, cfg.Session.BcryptCost)
	assert.True(t, cfg.Logger.DisableCaller)
	assert.Equal(t, "/tmp/gardentrack.prom", cfg.Metrics.TextfilePath)
}

func TestLoadEnvIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("SESSION_BCRYPT_COST", "strong")
	t.Setenv("LOGGER_DISABLE_STACKTRACE", "maybe")

	cfg := LoadEnv()

	assert.Equal(t, 10, cfg.Session.BcryptCost)
	assert.True(t, cfg.Logger.DisableStacktrace)
}
