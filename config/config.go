package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	standingsdomain "github.com/Black-And-White-Club/lif-standings/app/modules/standings/domain"
)

// Config struct to hold the configuration settings
type Config struct {
	Source        SourceConfig              `yaml:"source"`
	Filter        standingsdomain.YearRange `yaml:"filter"`
	Export        ExportConfig              `yaml:"export"`
	Server        ServerConfig              `yaml:"server"`
	Observability ObservabilityConfig       `yaml:"observability"`
}

// SourceConfig describes where result files come from.
type SourceConfig struct {
	Dir      string `yaml:"dir"`
	Charset  string `yaml:"charset"`
	Workers  int    `yaml:"workers"`
	MaxDepth *int   `yaml:"max_depth"`
}

// ExportConfig holds the standings destination.
type ExportConfig struct {
	Output     string `yaml:"output"`
	BOMPrefix  bool   `yaml:"bom_prefix"`
	ChartLimit int    `yaml:"chart_limit"`
}

// ServerConfig holds the HTTP surface settings.
type ServerConfig struct {
	Address string `yaml:"address"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"` // text|json
	MetricsFile string `yaml:"metrics_file"`
	TraceStdout bool   `yaml:"trace_stdout"`
}

const (
	DefaultOutput      = "results.csv"
	DefaultCharset     = "utf-8"
	DefaultServerAddr  = ":8080"
	DefaultWorkerCount = 1
)

// LoadConfig loads the configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	// Try reading configuration from the file first
	data, err := os.ReadFile(filename)
	if err != nil {
		// If the file is not found, try loading from environment variables
		return loadConfigFromEnv()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// --- OVERRIDE WITH ENV VARS IF PRESENT ---
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadConfigFromEnv loads the configuration from environment variables.
func loadConfigFromEnv() (*Config, error) {
	var cfg Config
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("LIF_SOURCE_DIR"); v != "" {
		cfg.Source.Dir = v
	}
	if v := os.Getenv("LIF_CHARSET"); v != "" {
		cfg.Source.Charset = v
	}
	if v := os.Getenv("LIF_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid LIF_WORKERS value: %w", err)
		}
		cfg.Source.Workers = n
	}
	if v := os.Getenv("LIF_MIN_YEAR"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid LIF_MIN_YEAR value: %w", err)
		}
		cfg.Filter.Min = &year
	}
	if v := os.Getenv("LIF_MAX_YEAR"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid LIF_MAX_YEAR value: %w", err)
		}
		cfg.Filter.Max = &year
	}
	if v := os.Getenv("LIF_OUTPUT"); v != "" {
		cfg.Export.Output = v
	}
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.Server.Address = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Observability.LogFormat = v
	}
	if v := os.Getenv("METRICS_FILE"); v != "" {
		cfg.Observability.MetricsFile = v
	}
	if v := os.Getenv("TRACE_STDOUT"); v != "" {
		cfg.Observability.TraceStdout = v == "true"
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Source.Charset == "" {
		c.Source.Charset = DefaultCharset
	}
	if c.Source.Workers <= 0 {
		c.Source.Workers = DefaultWorkerCount
	}
	if c.Export.Output == "" {
		c.Export.Output = DefaultOutput
	}
	if c.Server.Address == "" {
		c.Server.Address = DefaultServerAddr
	}
	if c.Observability.LogLevel == "" {
		c.Observability.LogLevel = "info"
	}
	if c.Observability.LogFormat == "" {
		c.Observability.LogFormat = "text"
	}
}

// Validate checks settings that would otherwise fail mid-run.
func (c *Config) Validate() error {
	if err := c.Filter.Validate(); err != nil {
		return err
	}
	if c.Source.MaxDepth != nil && *c.Source.MaxDepth < 0 {
		return errors.New("source.max_depth must not be negative")
	}
	return nil
}
