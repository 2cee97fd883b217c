package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Normalizer: NormalizerConfig{CentsThreshold: 100000, DefaultCurrency: "usd"},
		Engine:     EngineConfig{Parallel: true},
		Log:        LogConfig{Level: "info", Format: "console"},
	}, cfg)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
normalizer:
  cents_threshold: 1000
  default_currency: eur
engine:
  parallel: false
log:
  level: debug
  format: json
`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, float64(1000), cfg.Normalizer.CentsThreshold)
	assert.Equal(t, "eur", cfg.Normalizer.DefaultCurrency)
	assert.False(t, cfg.Engine.Parallel)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("ARRMETRICS_NORMALIZER_CENTS_THRESHOLD", "2500")
	t.Setenv("ARRMETRICS_ENGINE_PARALLEL", "false")
	t.Setenv("ARRMETRICS_LOG_FORMAT", "json")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, float64(2500), cfg.Normalizer.CentsThreshold)
	assert.False(t, cfg.Engine.Parallel)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("explicit file missing", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("non-positive threshold", func(t *testing.T) {
		t.Setenv("ARRMETRICS_NORMALIZER_CENTS_THRESHOLD", "0")

		_, err := LoadConfig("")
		assert.ErrorContains(t, err, "cents_threshold")
	})

	t.Run("unknown log format", func(t *testing.T) {
		t.Setenv("ARRMETRICS_LOG_FORMAT", "xml")

		_, err := LoadConfig("")
		assert.ErrorContains(t, err, "log.format")
	})
}
