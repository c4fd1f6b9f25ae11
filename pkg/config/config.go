// Package config provides configuration loading and validation for the
// pathfang CLI.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/Sumatoshi-tech/pathfang/pkg/pathpool"
)

// Sentinel validation errors.
var (
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
	ErrInvalidSeparator = errors.New("separator must not be empty")
)

// Default configuration values.
const (
	defaultStrategy  = string(pathpool.StrategyHash)
	defaultSeparator = "/"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

// Config holds all configuration for the pathfang CLI.
type Config struct {
	Ingest    IngestConfig    `mapstructure:"ingest"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// IngestConfig holds ingest-specific configuration.
type IngestConfig struct {
	// Strategy is the child-index strategy, "hash" or "list".
	Strategy string `mapstructure:"strategy"`

	// Separator splits paths read from files or stdin.
	Separator string `mapstructure:"separator"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TelemetryConfig holds telemetry export configuration.
type TelemetryConfig struct {
	// OTLPEndpoint is the OTLP gRPC collector address. Empty disables export.
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	OTLPInsecure bool   `mapstructure:"otlp_insecure"`

	// MetricsAddr, when set, serves a Prometheus /metrics endpoint during
	// ingest runs (e.g. "localhost:9091").
	MetricsAddr string `mapstructure:"metrics_addr"`

	// Environment labels exported telemetry (e.g. "production", "dev").
	Environment string `mapstructure:"environment"`
}

// Load reads configuration from an optional file and PATHFANG_* environment
// variables.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("pathfang")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("/etc/pathfang")
	}

	viperCfg.SetEnvPrefix("PATHFANG")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validate(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// Strategy returns the parsed child-index strategy.
func (c *Config) Strategy() pathpool.Strategy {
	strategy, err := pathpool.ParseStrategy(c.Ingest.Strategy)
	if err != nil {
		return pathpool.StrategyHash
	}

	return strategy
}

// LogLevel returns the parsed slog level.
func (c *Config) LogLevel() slog.Level {
	switch c.Logging.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("ingest.strategy", defaultStrategy)
	viperCfg.SetDefault("ingest.separator", defaultSeparator)

	viperCfg.SetDefault("logging.level", defaultLogLevel)
	viperCfg.SetDefault("logging.format", defaultLogFormat)

	viperCfg.SetDefault("telemetry.otlp_endpoint", "")
	viperCfg.SetDefault("telemetry.otlp_insecure", false)
	viperCfg.SetDefault("telemetry.metrics_addr", "")
	viperCfg.SetDefault("telemetry.environment", "")
}

func validate(config *Config) error {
	_, strategyErr := pathpool.ParseStrategy(config.Ingest.Strategy)
	if strategyErr != nil {
		return strategyErr
	}

	if config.Ingest.Separator == "" {
		return ErrInvalidSeparator
	}

	switch config.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, config.Logging.Level)
	}

	switch config.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, config.Logging.Format)
	}

	return nil
}
