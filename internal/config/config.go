// Package config provides configuration management.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/fati-2700/pricingos/core/types"
	"github.com/fati-2700/pricingos/internal/errors"
	"github.com/fati-2700/pricingos/internal/logging"
	"github.com/fati-2700/pricingos/internal/tracing"
)

// EnvPrefix prefixes every environment override, e.g. PRICINGOS_SERVER_ADDR.
const EnvPrefix = "PRICINGOS"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" mapstructure:"version"`

	// Defaults are applied to inputs the user leaves out
	Defaults DefaultsConfig `json:"defaults" mapstructure:"defaults"`

	// Output contains output configuration
	Output OutputConfig `json:"output" mapstructure:"output"`

	// Server contains HTTP API configuration
	Server ServerConfig `json:"server" mapstructure:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" mapstructure:"logging"`

	// Tracing contains OpenTelemetry configuration
	Tracing tracing.Config `json:"tracing" mapstructure:"tracing"`
}

// DefaultsConfig holds the values the setup flow pre-fills
type DefaultsConfig struct {
	Currency            types.Currency    `json:"currency" mapstructure:"currency"`
	ClientType          types.ClientType  `json:"client_type" mapstructure:"client_type"`
	Positioning         types.Positioning `json:"positioning" mapstructure:"positioning"`
	Complexity          int               `json:"complexity" mapstructure:"complexity"`
	TypicalDurationDays int               `json:"typical_duration_days" mapstructure:"typical_duration_days"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format" mapstructure:"default_format"`

	// ShowBreakdown shows the pricing lineage
	ShowBreakdown bool `json:"show_breakdown" mapstructure:"show_breakdown"`
}

// ServerConfig contains HTTP API settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr" mapstructure:"addr"`

	// ReadTimeoutSeconds bounds reading a request
	ReadTimeoutSeconds int `json:"read_timeout_seconds" mapstructure:"read_timeout_seconds"`

	// WriteTimeoutSeconds bounds writing a response
	WriteTimeoutSeconds int `json:"write_timeout_seconds" mapstructure:"write_timeout_seconds"`

	// MaxBodyBytes caps request bodies
	MaxBodyBytes int64 `json:"max_body_bytes" mapstructure:"max_body_bytes"`

	// MetricsEnabled exposes GET /metrics
	MetricsEnabled bool `json:"metrics_enabled" mapstructure:"metrics_enabled"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Defaults: DefaultsConfig{
			Currency:            types.CurrencyEUR,
			ClientType:          types.ClientSMB,
			Positioning:         types.PositioningMidMarket,
			Complexity:          3,
			TypicalDurationDays: 30,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowBreakdown: false,
		},
		Server: ServerConfig{
			Addr:                ":8080",
			ReadTimeoutSeconds:  10,
			WriteTimeoutSeconds: 10,
			MaxBodyBytes:        1 << 20,
			MetricsEnabled:      true,
		},
		Logging: logging.DefaultConfig(),
		Tracing: tracing.DefaultConfig(),
	}
}

// DefaultPath is $HOME/.pricingos.json
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".pricingos.json")
}

// EnvFiles are the dotenv files Load reads, first match wins.
var EnvFiles = []string{".env", "../.env"}

// Load loads configuration from a file. The file format follows its
// extension (json, yaml, hcl, ...). A missing file yields the defaults.
// Environment variables, including those from a .env file, override file
// values in both cases.
func Load(path string) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
			return nil, errors.Config("failed to read config "+path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Config("failed to decode config", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFile never overrides variables already set in the environment.
func loadEnvFile() {
	for _, path := range EnvFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			logging.Warn("failed to load env file", zap.String("path", path), zap.Error(err))
			continue
		}
		logging.Debug("loaded env file", zap.String("path", path))
		return
	}
}

func isNotFound(err error) bool {
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return true
	}
	return os.IsNotExist(err)
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("version", d.Version)
	v.SetDefault("defaults.currency", string(d.Defaults.Currency))
	v.SetDefault("defaults.client_type", string(d.Defaults.ClientType))
	v.SetDefault("defaults.positioning", string(d.Defaults.Positioning))
	v.SetDefault("defaults.complexity", d.Defaults.Complexity)
	v.SetDefault("defaults.typical_duration_days", d.Defaults.TypicalDurationDays)
	v.SetDefault("output.default_format", d.Output.DefaultFormat)
	v.SetDefault("output.show_breakdown", d.Output.ShowBreakdown)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.read_timeout_seconds", d.Server.ReadTimeoutSeconds)
	v.SetDefault("server.write_timeout_seconds", d.Server.WriteTimeoutSeconds)
	v.SetDefault("server.max_body_bytes", d.Server.MaxBodyBytes)
	v.SetDefault("server.metrics_enabled", d.Server.MetricsEnabled)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)
	v.SetDefault("logging.development", d.Logging.Development)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.service_name", d.Tracing.ServiceName)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_ratio", d.Tracing.SampleRatio)
}

// Validate rejects defaults the engine would refuse.
func (c *Config) Validate() error {
	if !c.Defaults.ClientType.IsValid() {
		return errors.Newf(errors.TypeConfig, "defaults.client_type %q is not one of %v", c.Defaults.ClientType, types.ClientTypes())
	}
	if !c.Defaults.Positioning.IsValid() {
		return errors.Newf(errors.TypeConfig, "defaults.positioning %q is not one of %v", c.Defaults.Positioning, types.Positionings())
	}
	if c.Defaults.Complexity < 1 || c.Defaults.Complexity > 5 {
		return errors.Newf(errors.TypeConfig, "defaults.complexity %d is outside 1..5", c.Defaults.Complexity)
	}
	if c.Defaults.TypicalDurationDays <= 0 {
		return errors.Newf(errors.TypeConfig, "defaults.typical_duration_days %d must be positive", c.Defaults.TypicalDurationDays)
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return errors.Newf(errors.TypeConfig, "tracing.sample_ratio %v is outside 0..1", c.Tracing.SampleRatio)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return errors.Newf(errors.TypeConfig, "server.max_body_bytes %d must be positive", c.Server.MaxBodyBytes)
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
