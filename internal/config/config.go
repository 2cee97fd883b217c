package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	Normalizer NormalizerConfig `mapstructure:"normalizer"`
	Engine     EngineConfig     `mapstructure:"engine"`
	Log        LogConfig        `mapstructure:"log"`
}

// NormalizerConfig tunes schema normalization.
type NormalizerConfig struct {
	// CentsThreshold is the absolute amount above which a bare numeric
	// amount is assumed to be in minor units.
	CentsThreshold  float64 `mapstructure:"cents_threshold"`
	DefaultCurrency string  `mapstructure:"default_currency"`
}

// EngineConfig tunes metric evaluation.
type EngineConfig struct {
	Parallel bool `mapstructure:"parallel"`
}

// LogConfig selects the logger level and output format.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig loads configuration from a file and environment variables.
// An explicit path must exist; without one, arrmetrics.yaml is searched for
// and defaults apply when it is absent. Environment variables use the
// ARRMETRICS_ prefix, e.g. ARRMETRICS_NORMALIZER_CENTS_THRESHOLD.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("arrmetrics")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/arrmetrics")
	}

	v.SetDefault("normalizer.cents_threshold", 100000)
	v.SetDefault("normalizer.default_currency", "usd")
	v.SetDefault("engine.parallel", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetEnvPrefix("ARRMETRICS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the engine cannot work with.
func (c *Config) Validate() error {
	if c.Normalizer.CentsThreshold <= 0 {
		return fmt.Errorf("normalizer.cents_threshold must be positive, got %v", c.Normalizer.CentsThreshold)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	return nil
}
