package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Parsing ParsingConfig `yaml:"parsing"`
	Rules   RulesConfig   `yaml:"rules"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

type ParsingConfig struct {
	// DefaultAccountType overrides filename-based account type inference
	// when set to "bank" or "credit-card".
	DefaultAccountType string `yaml:"default_account_type"`
	MaxConcurrency     int    `yaml:"max_concurrency"`
}

type RulesConfig struct {
	// Path points to a YAML file of categorization rules. Empty disables
	// rule-based categorization.
	Path string `yaml:"path"`
}

type OutputConfig struct {
	// Format is one of "csv", "excel" or "json".
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	// Format is "text" or "json".
	Format string `yaml:"format"`
}

// Load reads configuration from an optional YAML file and applies
// STATEMENTS_* environment variable overrides on top.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Parsing: ParsingConfig{
			MaxConcurrency: 4,
		},
		Output: OutputConfig{
			Format: "csv",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.Parsing.DefaultAccountType = getEnv("STATEMENTS_ACCOUNT_TYPE", cfg.Parsing.DefaultAccountType)
	cfg.Parsing.MaxConcurrency = getEnvAsInt("STATEMENTS_MAX_CONCURRENCY", cfg.Parsing.MaxConcurrency)
	cfg.Rules.Path = getEnv("STATEMENTS_RULES_PATH", cfg.Rules.Path)
	cfg.Output.Format = getEnv("STATEMENTS_OUTPUT_FORMAT", cfg.Output.Format)
	cfg.Output.Path = getEnv("STATEMENTS_OUTPUT_PATH", cfg.Output.Path)
	cfg.Logging.Level = getEnv("STATEMENTS_LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getEnv("STATEMENTS_LOG_FORMAT", cfg.Logging.Format)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Parsing.DefaultAccountType {
	case "", "bank", "credit-card":
	default:
		return fmt.Errorf("invalid account type %q: must be bank or credit-card", c.Parsing.DefaultAccountType)
	}
	switch c.Output.Format {
	case "csv", "excel", "json":
	default:
		return fmt.Errorf("invalid output format %q: must be csv, excel or json", c.Output.Format)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be text or json", c.Logging.Format)
	}
	if c.Parsing.MaxConcurrency < 1 {
		return fmt.Errorf("max concurrency must be at least 1, got %d", c.Parsing.MaxConcurrency)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
