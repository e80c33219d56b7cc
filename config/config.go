package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPort           = "8080"
	DefaultSeedSource     = "./data/seed_artists.json"
	DefaultWorkers        = 4
	MaxWorkers            = 64
	DefaultRequestTimeout = 30 * time.Second
	DefaultOutputDir      = "output"
	DefaultMaxResults     = 1000
	DefaultUserAgent      = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	StorageLocal = "local"
	StorageGCS   = "gcs"
)

type Config struct {
	LogLevel int `yaml:"log_level"`

	Server   ServerConfig   `yaml:"server"`
	Seed     SeedConfig     `yaml:"seed"`
	Lineup   LineupConfig   `yaml:"lineup"`
	Resolver ResolverConfig `yaml:"resolver"`
	Storage  StorageConfig  `yaml:"storage"`
}

type ServerConfig struct {
	Port string `yaml:"port"`

	// MaxResults caps the processed lineups kept in memory
	MaxResults int `yaml:"max_results"`
}

type SeedConfig struct {
	// Source is a file path (.json, .yaml, .csv), sqlite://path or gs://bucket/object
	Source string `yaml:"source"`
}

type LineupConfig struct {
	UserAgent      string        `yaml:"user_agent"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

type ResolverConfig struct {
	Workers int `yaml:"workers"`
}

type StorageConfig struct {
	// Type of storage: "local" or "gcs"
	Type string `yaml:"type"`

	// Local storage options
	OutputDir string `yaml:"output_dir"`

	// GCS options
	Bucket          string `yaml:"bucket"`
	ObjectPrefix    string `yaml:"object_prefix"`
	CredentialsFile string `yaml:"credentials_file"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config *Config

	// Unmarshal the YAML data into the struct
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	if config == nil {
		config = &Config{}
	}

	if err := config.applyDefaults(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadOrDefault loads path, falling back to Default when the file does not
// exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Default returns a configuration with every default applied, for running
// without a config file.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() error {
	if c.Server.Port == "" {
		c.Server.Port = DefaultPort
	}

	if c.Server.MaxResults <= 0 {
		c.Server.MaxResults = DefaultMaxResults
	}

	if c.Seed.Source == "" {
		c.Seed.Source = DefaultSeedSource
	}

	if c.Lineup.UserAgent == "" {
		c.Lineup.UserAgent = DefaultUserAgent
	}
	if c.Lineup.RequestTimeout <= 0 {
		c.Lineup.RequestTimeout = DefaultRequestTimeout
	}

	c.Resolver.Workers = ClampWorkers(c.Resolver.Workers)

	if c.Storage.Type == "" {
		c.Storage.Type = StorageLocal
	}
	if c.Storage.OutputDir == "" {
		c.Storage.OutputDir = DefaultOutputDir
	}

	switch c.Storage.Type {
	case StorageLocal:
	case StorageGCS:
		if c.Storage.Bucket == "" {
			return fmt.Errorf("storage type %q requires a bucket", c.Storage.Type)
		}
	default:
		return fmt.Errorf("unsupported storage type %q", c.Storage.Type)
	}

	return nil
}

// ClampWorkers keeps a worker count within 1..MaxWorkers, using the default
// for non-positive values.
func ClampWorkers(n int) int {
	if n <= 0 {
		return DefaultWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
