// Package observability lets the application observe extraction runs,
// cache traffic and API requests without the library depending on a
// metrics backend.
//
// Hooks default to no-ops. The binary installs real implementations, such
// as [Counters] for depscan serve:
//
//	counters := observability.NewCounters()
//	counters.Register()
//	defer observability.Reset()
//
// Setters return the hooks they replaced, so a short-lived observer can
// put them back when it is done.
//
// Libraries emit events through the registered hooks:
//
//	observability.Extract().OnExtractStart(ctx, "cocoapods", path)
//	// ... extract ...
//	observability.Extract().OnExtractComplete(ctx, "cocoapods", path, len(pf.Deps), time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// ExtractHooks receives one start and one completion event per manifest.
// A manifest that fails before extraction starts (missing file, no
// manager) only produces the completion event, with err set.
type ExtractHooks interface {
	OnExtractStart(ctx context.Context, manager, path string)
	OnExtractComplete(ctx context.Context, manager, path string, deps int, duration time.Duration, err error)
}

// CacheHooks receives result cache lookups and writes. keyType names the
// kind of entry ("extract").
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives requests served by the API.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, path string)
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// NoopExtractHooks ignores every event. Embed it to implement a subset.
type NoopExtractHooks struct{}

func (NoopExtractHooks) OnExtractStart(context.Context, string, string) {}
func (NoopExtractHooks) OnExtractComplete(context.Context, string, string, int, time.Duration, error) {
}

// NoopCacheHooks ignores every event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks ignores every event.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// registry is replaced as a whole on every change, so emitters load it
// without locking.
type registry struct {
	extract ExtractHooks
	cache   CacheHooks
	http    HTTPHooks
}

var (
	current atomic.Pointer[registry]
	writeMu sync.Mutex
)

func init() {
	Reset()
}

func update(fn func(r *registry)) registry {
	writeMu.Lock()
	defer writeMu.Unlock()
	prev := *current.Load()
	next := prev
	fn(&next)
	current.Store(&next)
	return prev
}

// SetExtractHooks installs h and returns the hooks it replaces. Nil
// installs the no-op hooks.
func SetExtractHooks(h ExtractHooks) ExtractHooks {
	if h == nil {
		h = NoopExtractHooks{}
	}
	return update(func(r *registry) { r.extract = h }).extract
}

// SetCacheHooks installs h and returns the hooks it replaces. Nil
// installs the no-op hooks.
func SetCacheHooks(h CacheHooks) CacheHooks {
	if h == nil {
		h = NoopCacheHooks{}
	}
	return update(func(r *registry) { r.cache = h }).cache
}

// SetHTTPHooks installs h and returns the hooks it replaces. Nil installs
// the no-op hooks.
func SetHTTPHooks(h HTTPHooks) HTTPHooks {
	if h == nil {
		h = NoopHTTPHooks{}
	}
	return update(func(r *registry) { r.http = h }).http
}

// Extract returns the installed extraction hooks.
func Extract() ExtractHooks { return current.Load().extract }

// Cache returns the installed cache hooks.
func Cache() CacheHooks { return current.Load().cache }

// HTTP returns the installed HTTP hooks.
func HTTP() HTTPHooks { return current.Load().http }

// Reset installs the no-op hooks everywhere.
func Reset() {
	writeMu.Lock()
	defer writeMu.Unlock()
	current.Store(&registry{
		extract: NoopExtractHooks{},
		cache:   NoopCacheHooks{},
		http:    NoopHTTPHooks{},
	})
}
