// Package config loads the wordcount tool settings from an optional YAML
// file with WC_* environment overrides.
package config

import (
	"blockindex/pkg/indexer"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Workers     int           `yaml:"workers"`
	BlockSizeMB int           `yaml:"blockSizeMB"`
	Source      string        `yaml:"source"`
	Index       string        `yaml:"index"`
	CacheSize   int           `yaml:"cacheSize"`
	Logging     LoggingConfig `yaml:"logging"`
	Metrics     MetricsConfig `yaml:"metrics"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig enables a Prometheus /metrics listener when Addr is set.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Load reads path (if not empty) over the defaults and applies environment
// overrides. It does not validate.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Workers:     1,
		BlockSizeMB: 16,
		CacheSize:   256,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func applyEnvOverrides(cfg *Config) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"WC_WORKERS", &cfg.Workers},
		{"WC_BLOCK_SIZE_MB", &cfg.BlockSizeMB},
		{"WC_CACHE_SIZE", &cfg.CacheSize},
	}
	for _, env := range ints {
		v := os.Getenv(env.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s=%q: %w", env.key, v, err)
		}
		*env.dst = n
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"WC_SOURCE", &cfg.Source},
		{"WC_INDEX", &cfg.Index},
		{"WC_LOGGING_LEVEL", &cfg.Logging.Level},
		{"WC_LOGGING_FORMAT", &cfg.Logging.Format},
		{"WC_METRICS_ADDR", &cfg.Metrics.Addr},
	}
	for _, env := range strs {
		if v := os.Getenv(env.key); v != "" {
			*env.dst = v
		}
	}
	return nil
}

// Options validates the worker count and block size and converts them to
// pipeline options.
func (c *Config) Options() (indexer.Options, error) {
	size, err := indexer.ParseBlockSize(c.BlockSizeMB)
	if err != nil {
		return indexer.Options{}, err
	}
	opts := indexer.Options{
		Workers:   c.Workers,
		BlockSize: size,
	}
	if err := opts.Validate(); err != nil {
		return indexer.Options{}, err
	}
	return opts, nil
}

func (c *Config) Validate() error {
	if _, err := c.Options(); err != nil {
		return err
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("%w: cache size must be positive, got %d", indexer.ErrConfig, c.CacheSize)
	}
	return nil
}
