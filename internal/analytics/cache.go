package analytics

import (
	"context"
	"fmt"
	"sync"
	"time"

	"log/slog"

	"github.com/jekabolt/grbpwr-analytics/internal/dependency"
	"github.com/jekabolt/grbpwr-analytics/internal/entity"
	gerr "github.com/jekabolt/grbpwr-analytics/internal/errors"
	"github.com/jekabolt/grbpwr-analytics/internal/metrics"
	"golang.org/x/sync/singleflight"
)

type cacheKey struct {
	lookback         int
	at               int64
	excludeCancelled bool
}

func (k cacheKey) String() string {
	return fmt.Sprintf("%d:%d:%t", k.lookback, k.at, k.excludeCancelled)
}

type cacheEntry struct {
	snapshot  *entity.Snapshot
	expiresAt time.Time
}

// CachedSnapshotter memoizes snapshots for a short TTL. Requests are keyed
// on their instant truncated to the cache granularity, so callers within the
// same slot share one computation. Errors are never cached.
type CachedSnapshotter struct {
	next        dependency.Snapshotter
	ttl         time.Duration
	granularity time.Duration
	timeout     time.Duration
	now         func() time.Time

	mu      sync.RWMutex
	entries map[cacheKey]*cacheEntry
	group   singleflight.Group

	ctx  context.Context
	stop context.CancelFunc
}

// NewCached wraps next with a snapshot cache. A zero ttl disables caching.
func NewCached(c *Config, next dependency.Snapshotter) *CachedSnapshotter {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	g := c.CacheGranularity
	if g <= 0 {
		g = time.Minute
	}
	return &CachedSnapshotter{
		next:        next,
		ttl:         c.CacheTTL,
		granularity: g,
		timeout:     c.ComputeTimeout,
		now:         time.Now,
		entries:     make(map[cacheKey]*cacheEntry),
	}
}

// Snapshot returns a cached snapshot or computes one through the wrapped
// snapshotter.
func (c *CachedSnapshotter) Snapshot(ctx context.Context, req entity.SnapshotRequest) (*entity.Snapshot, error) {
	if c.ttl <= 0 {
		return c.next.Snapshot(ctx, req)
	}

	now := req.Now
	if now.IsZero() {
		now = c.now()
	}
	req.Now = now.Truncate(c.granularity)
	key := cacheKey{
		lookback:         req.LookbackDays,
		at:               req.Now.Unix(),
		excludeCancelled: req.ExcludeCancelled,
	}

	if s, ok := c.get(key); ok {
		metrics.CacheHits.Inc()
		return s, nil
	}
	metrics.CacheMisses.Inc()

	ch := c.group.DoChan(key.String(), func() (interface{}, error) {
		// Shared by every waiter on the key, not bound to the first caller.
		sctx, cancel := c.detach(ctx)
		defer cancel()
		s, err := c.next.Snapshot(sctx, req)
		if err != nil {
			return nil, err
		}
		c.put(key, s)
		return s, nil
	})
	select {
	case <-ctx.Done():
		return nil, gerr.DataUnavailable("snapshot", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*entity.Snapshot), nil
	}
}

func (c *CachedSnapshotter) detach(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = context.WithoutCancel(ctx)
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *CachedSnapshotter) get(key cacheKey) (*entity.Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || c.now().After(e.expiresAt) {
		return nil, false
	}
	return e.snapshot, true
}

func (c *CachedSnapshotter) put(key cacheKey, s *entity.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &cacheEntry{
		snapshot:  s,
		expiresAt: c.now().Add(c.ttl),
	}
	metrics.CacheEntries.Set(float64(len(c.entries)))
}

// Len returns the number of entries held, expired ones included.
func (c *CachedSnapshotter) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// sweep removes expired entries.
func (c *CachedSnapshotter) sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	removed := 0
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
			removed++
		}
	}
	metrics.CacheEntries.Set(float64(len(c.entries)))
	return removed
}

// Start runs the expiry sweeper until Stop is called or ctx is done.
func (c *CachedSnapshotter) Start(ctx context.Context) error {
	if c.ctx != nil && c.stop != nil {
		return fmt.Errorf("snapshot cache sweeper already started")
	}
	if c.ttl <= 0 {
		return nil
	}
	c.ctx, c.stop = context.WithCancel(ctx)
	go c.sweeper(c.ctx)
	return nil
}

// Stop stops the sweeper.
func (c *CachedSnapshotter) Stop() error {
	if c.stop == nil {
		return fmt.Errorf("snapshot cache sweeper already stopped or not started")
	}
	c.stop()
	c.stop = nil
	c.ctx = nil
	return nil
}

func (c *CachedSnapshotter) sweeper(ctx context.Context) {
	ticker := time.NewTicker(c.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := c.sweep(); n > 0 {
				slog.Default().DebugContext(ctx, "swept expired snapshots",
					slog.Int("removed", n),
				)
			}
		case <-ctx.Done():
			return
		}
	}
}
