package observability

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// Counters tallies hook events in memory. It implements every hook
// interface, so one value serves as extraction, cache and HTTP hooks.
// The zero value is not usable; call NewCounters.
type Counters struct {
	extractions atomic.Int64
	failures    atomic.Int64
	deps        atomic.Int64
	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
	cacheWrites atomic.Int64
	requests    atomic.Int64

	mu        sync.Mutex
	responses map[string]int64 // status class ("2xx") -> count
}

// Snapshot is a point-in-time copy of Counters.
type Snapshot struct {
	Extractions  int64            `json:"extractions"`
	Failures     int64            `json:"failures"`
	Dependencies int64            `json:"dependencies"`
	CacheHits    int64            `json:"cacheHits"`
	CacheMisses  int64            `json:"cacheMisses"`
	CacheWrites  int64            `json:"cacheWrites"`
	Requests     int64            `json:"requests"`
	Responses    map[string]int64 `json:"responses"`
}

// NewCounters returns zeroed counters.
func NewCounters() *Counters {
	return &Counters{responses: make(map[string]int64)}
}

// Register installs c as the global extraction, cache and HTTP hooks.
func (c *Counters) Register() {
	SetExtractHooks(c)
	SetCacheHooks(c)
	SetHTTPHooks(c)
}

func (c *Counters) OnExtractStart(context.Context, string, string) {}

func (c *Counters) OnExtractComplete(_ context.Context, _, _ string, deps int, _ time.Duration, err error) {
	c.extractions.Add(1)
	c.deps.Add(int64(deps))
	if err != nil {
		c.failures.Add(1)
	}
}

func (c *Counters) OnCacheHit(context.Context, string)      { c.cacheHits.Add(1) }
func (c *Counters) OnCacheMiss(context.Context, string)     { c.cacheMisses.Add(1) }
func (c *Counters) OnCacheSet(context.Context, string, int) { c.cacheWrites.Add(1) }

func (c *Counters) OnRequest(context.Context, string, string) { c.requests.Add(1) }

func (c *Counters) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	class := strconv.Itoa(status/100) + "xx"
	c.mu.Lock()
	c.responses[class]++
	c.mu.Unlock()
}

// Snapshot copies the current values.
func (c *Counters) Snapshot() Snapshot {
	s := Snapshot{
		Extractions:  c.extractions.Load(),
		Failures:     c.failures.Load(),
		Dependencies: c.deps.Load(),
		CacheHits:    c.cacheHits.Load(),
		CacheMisses:  c.cacheMisses.Load(),
		CacheWrites:  c.cacheWrites.Load(),
		Requests:     c.requests.Load(),
		Responses:    make(map[string]int64),
	}
	c.mu.Lock()
	for k, v := range c.responses {
		s.Responses[k] = v
	}
	c.mu.Unlock()
	return s
}

var (
	_ ExtractHooks = (*Counters)(nil)
	_ CacheHooks   = (*Counters)(nil)
	_ HTTPHooks    = (*Counters)(nil)
)
