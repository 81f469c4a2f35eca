// Package config loads depscan settings from a TOML file.
//
// # File Format
//
//	workers = 8
//
//	[cache]
//	backend = "file"            # file | sqlite | redis | none
//	dir = ""                    # default: $XDG_CACHE_HOME/depscan
//	redis_url = "redis://localhost:6379/0"
//	ttl = "168h"
//
//	[managers]
//	enabled = ["cocoapods", "meteor"]   # empty: each manager's default
//	skip_empty = false                  # report manifests without deps as absent
//
//	[managers.file_match]
//	cocoapods = ["(^|/)Podfile$", "(^|/)Podfile\\.ios$"]
//
//	[server]
//	addr = ":8080"
//	read_timeout = "10s"
//
// Values from the file are merged over [Default]. Command-line flags are
// applied by the caller afterwards.
package config

import (
	"os"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/depscan/pkg/errors"
)

// FileName is the config file looked up in the working directory.
const FileName = "depscan.toml"

// Cache backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

// Config is the complete depscan configuration.
type Config struct {
	Workers  int      `toml:"workers"`
	Cache    Cache    `toml:"cache"`
	Managers Managers `toml:"managers"`
	Server   Server   `toml:"server"`
}

// Cache selects and tunes the result cache.
type Cache struct {
	Backend  string   `toml:"backend"`
	Dir      string   `toml:"dir"`
	RedisURL string   `toml:"redis_url"`
	TTL      Duration `toml:"ttl"`
}

// Managers overrides the built-in manager definitions.
type Managers struct {
	Enabled   []string            `toml:"enabled"`
	FileMatch map[string][]string `toml:"file_match"`
	SkipEmpty bool                `toml:"skip_empty"`
}

// Server configures depscan serve.
type Server struct {
	Addr         string   `toml:"addr"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
}

// Duration is a time.Duration written as a Go duration string ("24h").
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Workers: 8,
		Cache: Cache{
			Backend:  BackendFile,
			RedisURL: "redis://localhost:6379/0",
			TTL:      Duration{7 * 24 * time.Hour},
		},
		Server: Server{
			Addr:         ":8080",
			ReadTimeout:  Duration{10 * time.Second},
			WriteTimeout: Duration{30 * time.Second},
		},
	}
}

// Load reads the config file at path over the defaults.
//
// With an empty path, FileName in the working directory is used if it
// exists. A missing explicit path is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = FileName
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return cfg, nil
	}
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if err := Parse(string(data), cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes TOML text into cfg, keeping values the text does not set.
// Unknown keys are rejected.
func Parse(text string, cfg *Config) error {
	meta, err := toml.Decode(text, cfg)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown config key: %s", undecoded[0].String())
	}
	return cfg.Validate()
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "workers must be at least 1")
	}

	switch c.Cache.Backend {
	case BackendFile, BackendSQLite, BackendNone:
	case BackendRedis:
		if err := errors.ValidateURL(c.Cache.RedisURL, "redis", "rediss"); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "cache.redis_url")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend: %q (must be one of: file, sqlite, redis, none)", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl cannot be negative")
	}

	for _, name := range c.Managers.Enabled {
		if err := errors.ValidateManagerName(name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "managers.enabled")
		}
	}
	for name, patterns := range c.Managers.FileMatch {
		if err := errors.ValidateManagerName(name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "managers.file_match")
		}
		for _, p := range patterns {
			if _, err := regexp.Compile(p); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidConfig, err, "managers.file_match.%s: invalid pattern %q", name, p)
			}
		}
	}

	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server.addr cannot be empty")
	}
	return nil
}
