package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/matzehuels/depscan/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Cache.Backend != BackendFile || cfg.Workers != 8 {
		t.Errorf("Default() = %+v", cfg)
	}
}

func TestParse(t *testing.T) {
	text := `
workers = 4

[cache]
backend = "redis"
redis_url = "redis://cache.internal:6379/2"
ttl = "24h"

[managers]
enabled = ["cocoapods", "bazel"]
skip_empty = true

[managers.file_match]
cocoapods = ['(^|/)Podfile$', '(^|/)Podfile\.ios$']

[server]
addr = "127.0.0.1:9000"
`
	cfg := Default()
	if err := Parse(text, cfg); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if cfg.Cache.Backend != BackendRedis || cfg.Cache.RedisURL != "redis://cache.internal:6379/2" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Cache.TTL.Duration != 24*time.Hour {
		t.Errorf("TTL = %v, want 24h", cfg.Cache.TTL)
	}
	if !slices.Equal(cfg.Managers.Enabled, []string{"cocoapods", "bazel"}) {
		t.Errorf("Enabled = %v", cfg.Managers.Enabled)
	}
	if !cfg.Managers.SkipEmpty {
		t.Error("SkipEmpty = false, want true")
	}
	if got := cfg.Managers.FileMatch["cocoapods"]; len(got) != 2 || got[1] != `(^|/)Podfile\.ios$` {
		t.Errorf("FileMatch = %v", cfg.Managers.FileMatch)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Addr = %s", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout.Duration != 10*time.Second {
		t.Errorf("unset values should keep defaults, ReadTimeout = %v", cfg.Server.ReadTimeout)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"syntax", "workers = "},
		{"unknown key", "colour = true"},
		{"bad duration", "[cache]\nttl = \"soon\""},
		{"bad backend", "[cache]\nbackend = \"memcached\""},
		{"bad redis url", "[cache]\nbackend = \"redis\"\nredis_url = \"http://localhost\""},
		{"zero workers", "workers = 0"},
		{"bad manager name", "[managers]\nenabled = [\"Coco Pods\"]"},
		{"bad pattern", "[managers.file_match]\ncocoapods = [\"(\"]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Parse(tt.text, Default())
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Parse() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(path, []byte("workers = 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Workers)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing explicit) = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoad_ImplicitMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") = %v", err)
	}
	if cfg.Workers != Default().Workers {
		t.Errorf("implicit missing file should yield defaults, got %+v", cfg)
	}
}

func TestDuration_MarshalText(t *testing.T) {
	b, err := Duration{90 * time.Minute}.MarshalText()
	if err != nil || string(b) != "1h30m0s" {
		t.Errorf("MarshalText() = %q, %v", b, err)
	}
}

func TestParse_SQLiteBackend(t *testing.T) {
	cfg := Default()
	if err := Parse("[cache]\nbackend = \"sqlite\"\ndir = \"/var/cache/depscan\"\n", cfg); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Cache.Backend != BackendSQLite || cfg.Cache.Dir != "/var/cache/depscan" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
}
