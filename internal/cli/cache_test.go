package cli

import (
	"path/filepath"
	"testing"

	"github.com/matzehuels/depscan/pkg/cache"
	"github.com/matzehuels/depscan/pkg/config"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")

	dir, err := cacheDir(config.Default())
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join("/tmp/custom-cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}

	cfg := config.Default()
	cfg.Cache.Dir = "/srv/depscan-cache"
	if dir, _ := cacheDir(cfg); dir != "/srv/depscan-cache" {
		t.Errorf("cacheDir() with cache.dir = %q", dir)
	}
}

func TestNewCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	tests := []struct {
		name    string
		backend string
		noCache bool
		want    string
	}{
		{"file", config.BackendFile, false, "file"},
		{"sqlite", config.BackendSQLite, false, "sqlite"},
		{"none", config.BackendNone, false, "null"},
		{"no-cache flag", config.BackendFile, true, "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Cache.Backend = tt.backend
			c, err := newCache(t.Context(), cfg, tt.noCache)
			if err != nil {
				t.Fatalf("newCache() error: %v", err)
			}
			defer c.Close()

			got := ""
			switch c.(type) {
			case *cache.FileCache:
				got = "file"
			case *cache.SQLiteCache:
				got = "sqlite"
			case *cache.NullCache:
				got = "null"
			}
			if got != tt.want {
				t.Errorf("newCache() = %T, want %s", c, tt.want)
			}
		})
	}
}
