package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/depscan/pkg/cache"
	"github.com/matzehuels/depscan/pkg/errors"
	depio "github.com/matzehuels/depscan/pkg/io"
	"github.com/matzehuels/depscan/pkg/manager"
	"github.com/matzehuels/depscan/pkg/manager/managers"
	"github.com/matzehuels/depscan/pkg/observability"
)

const cacheKeyType = "extract"

// Runner runs extraction with caching.
//
// The Runner keeps no per-run state, so one value may serve concurrent
// requests. Managers must not be modified while extractions are running.
type Runner struct {
	Cache    cache.Cache
	Keyer    cache.Keyer
	Logger   *log.Logger
	Managers []*manager.Manager
	Workers  int

	// TTL is how long results stay cached. Zero means cache.TTLExtract.
	TTL time.Duration
}

// NewRunner creates a runner with every built-in manager.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:    c,
		Keyer:    keyer,
		Logger:   logger,
		Managers: managers.All(logger),
		Workers:  DefaultWorkers,
	}
}

// Manager returns the manager that handles path under opts.
func (r *Runner) Manager(path string, opts Options) (*manager.Manager, error) {
	if opts.Manager != "" {
		m := manager.Find(opts.Manager, r.Managers)
		switch {
		case m == nil:
			return nil, errors.New(errors.ErrCodeInvalidManager, "unknown manager: %s", opts.Manager)
		case !m.HasExtractor():
			return nil, errors.New(errors.ErrCodeUnsupported, "manager %s cannot extract files", m.Name)
		case !m.Enabled && !opts.Force:
			return nil, errors.New(errors.ErrCodeUnsupported, "manager %s is disabled", m.Name)
		}
		return m, nil
	}

	candidates := r.Managers
	if opts.Force {
		candidates = make([]*manager.Manager, len(r.Managers))
		for i, m := range r.Managers {
			c := m.Clone()
			c.Enabled = true
			candidates[i] = c
		}
	}
	m, err := manager.Detect(path, candidates...)
	if err != nil {
		return nil, err
	}
	return manager.Find(m.Name, r.Managers), nil
}

// Extract runs the matching extractor on content. path is used for
// manager detection, the cache key and sibling lock files.
//
// Binary content is not an error: the result simply has no package file.
func (r *Runner) Extract(ctx context.Context, path, content string, opts Options) (*FileResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	m, err := r.Manager(path, opts)
	if err != nil {
		return nil, err
	}

	res := &FileResult{Path: path, Manager: m.Name}
	start := time.Now()
	hooks := observability.Extract()
	hooks.OnExtractStart(ctx, m.Name, path)
	defer func() {
		res.Duration = time.Since(start)
		hooks.OnExtractComplete(ctx, m.Name, path, res.Deps(), res.Duration, nil)
	}()

	if !manager.IsText(content) {
		r.Logger.Warn("skipping binary file", "file", path)
		return res, nil
	}

	key := r.Keyer.ExtractKey(m.Name, cache.ExtractKeyOpts{
		Path:          filepath.ToSlash(path),
		ContentHash:   cache.Hash([]byte(content)),
		SkipLockFiles: opts.SkipLockFiles,
		SkipEmpty:     opts.SkipEmpty,
	})

	if !opts.Refresh {
		if pf, hit := r.cached(ctx, key); hit {
			if pf != nil && !opts.SkipLockFiles {
				r.probeLockFiles(m, path, pf)
			}
			res.PackageFile = pf
			res.Cached = true
			r.Logger.Debug("cache hit", "file", path, "manager", m.Name)
			return res, nil
		}
	}

	packageFile := path
	if opts.SkipLockFiles {
		packageFile = ""
	}
	res.PackageFile = m.Extract(content, packageFile)
	if opts.SkipEmpty && res.PackageFile != nil && len(res.PackageFile.Deps) == 0 {
		res.PackageFile = nil
	}
	r.store(ctx, key, res.PackageFile)

	r.Logger.Debug("extracted", "file", path, "manager", m.Name, "deps", res.Deps())
	return res, nil
}

// ExtractFile reads path from disk and extracts it.
func (r *Runner) ExtractFile(ctx context.Context, path string, opts Options) (*FileResult, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "stat %s", path)
	}
	if info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidPath, "%s is a directory", path)
	}
	if info.Size() > MaxFileSize {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s is too large (%d bytes, max %d)", path, info.Size(), MaxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	return r.Extract(ctx, path, string(data), opts)
}

// ExtractAll extracts paths concurrently, at most Workers at a time.
// Results keep the order of paths. A failing file is recorded in its
// FileResult and never stops the batch; the returned error is only set
// when ctx is cancelled.
func (r *Runner) ExtractAll(ctx context.Context, paths []string, opts Options) (*Report, error) {
	report := &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		Files:     make([]FileResult, len(paths)),
	}
	logger := r.Logger.With("run", report.RunID)
	logger.Info("extracting manifests", "files", len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := r.ExtractFile(gctx, path, opts)
			if err != nil {
				logger.Warn("extraction failed", "file", path, "error", err)
				observability.Extract().OnExtractComplete(gctx, opts.Manager, path, 0, 0, err)
				report.Files[i] = FileResult{Path: path, Err: err, Error: errors.UserMessage(err)}
				return nil
			}
			report.Files[i] = *res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Duration = time.Since(report.StartedAt)
	report.Stats = report.computeStats()
	logger.Info("extraction complete",
		"files", report.Stats.Files,
		"deps", report.Stats.Deps,
		"failed", report.Stats.Failed,
		"cached", report.Stats.CacheHits,
		"duration", report.Duration)
	return report, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) cached(ctx context.Context, key string) (*manager.PackageFile, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Debug("cache read failed", "error", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
		return nil, false
	}
	pf, err := depio.ReadPackageFile(bytes.NewReader(data))
	if err != nil {
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, cacheKeyType)
	return pf, true
}

// probeLockFiles replaces the lock files of a cached result with those on
// disk now. Lock files come and go without the manifest changing.
func (r *Runner) probeLockFiles(m *manager.Manager, path string, pf *manager.PackageFile) {
	lockFiles, err := m.LockFiles(path)
	if err != nil {
		r.Logger.Debug("lock file probe failed", "file", path, "error", err)
	}
	pf.LockFiles = lockFiles
}

func (r *Runner) store(ctx context.Context, key string, pf *manager.PackageFile) {
	data, err := json.Marshal(pf)
	if err != nil {
		r.Logger.Debug("cache encode failed", "error", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, r.ttl()); err != nil {
		r.Logger.Debug("cache write failed", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, cacheKeyType, len(data))
}

func (r *Runner) ttl() time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return cache.TTLExtract
}

func (r *Runner) workers() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return DefaultWorkers
}
