// Package config loads and validates the sample command's runtime configuration.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the sample binary's configuration.
type Config struct {
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Oracle    OracleConfig    `yaml:"oracle" mapstructure:"oracle"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// AnthropicConfig holds Anthropic API settings used by the demo oracle.
type AnthropicConfig struct {
	Key         string  `yaml:"key" mapstructure:"key"`
	Model       string  `yaml:"model" mapstructure:"model"`
	MaxTokens   int64   `yaml:"max_tokens" mapstructure:"max_tokens"`
	Temperature float64 `yaml:"temperature" mapstructure:"temperature"`
}

// OracleConfig controls the resilience wrapper placed around the raw
// Anthropic client (retry, circuit breaker, rate limiting).
type OracleConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
	MaxAttempts       int     `yaml:"max_attempts" mapstructure:"max_attempts"`
	CircuitThreshold  int     `yaml:"circuit_threshold" mapstructure:"circuit_threshold"`
	Concurrency       int     `yaml:"concurrency" mapstructure:"concurrency"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("WINNOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("anthropic.model", "claude-haiku-4-5-20251001")
	v.SetDefault("anthropic.max_tokens", int64(256))
	v.SetDefault("anthropic.temperature", 1.0)
	v.SetDefault("oracle.requests_per_second", 4.0)
	v.SetDefault("oracle.burst", 2)
	v.SetDefault("oracle.max_attempts", 3)
	v.SetDefault("oracle.circuit_threshold", 5)
	v.SetDefault("oracle.concurrency", 3)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate reports every missing or out-of-range field at once rather than
// failing on the first one, so a misconfigured demo run only needs one fix pass.
func (c *Config) Validate() error {
	var missing []string

	if c.Anthropic.Key == "" {
		missing = append(missing, "anthropic.key is required")
	}
	if c.Anthropic.MaxTokens <= 0 {
		missing = append(missing, "anthropic.max_tokens must be positive")
	}
	if c.Oracle.Concurrency <= 0 {
		missing = append(missing, "oracle.concurrency must be positive")
	}
	if c.Oracle.MaxAttempts <= 0 {
		missing = append(missing, "oracle.max_attempts must be positive")
	}

	if len(missing) > 0 {
		return eris.Errorf("config: invalid configuration: %s", strings.Join(missing, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
