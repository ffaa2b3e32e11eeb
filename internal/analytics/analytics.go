// Package analytics computes dashboard snapshots from order and catalog data.
package analytics

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/jekabolt/grbpwr-analytics/internal/dependency"
	"github.com/jekabolt/grbpwr-analytics/internal/entity"
	gerr "github.com/jekabolt/grbpwr-analytics/internal/errors"
	"github.com/jekabolt/grbpwr-analytics/internal/metrics"
	"github.com/jekabolt/grbpwr-analytics/internal/middleware"
)

// Config holds engine settings.
type Config struct {
	TopProducts      int           `mapstructure:"top_products"`
	RecentOrders     int           `mapstructure:"recent_orders"`
	MaxLookbackDays  int           `mapstructure:"max_lookback_days"`
	Timezone         string        `mapstructure:"timezone"`
	Granularity      string        `mapstructure:"granularity"`
	CacheTTL         time.Duration `mapstructure:"cache_ttl"`
	CacheGranularity time.Duration `mapstructure:"cache_granularity"`
	ComputeTimeout   time.Duration `mapstructure:"compute_timeout"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		TopProducts:      5,
		RecentOrders:     5,
		MaxLookbackDays:  366,
		Timezone:         "UTC",
		Granularity:      "month",
		CacheTTL:         time.Minute,
		CacheGranularity: time.Minute,
		ComputeTimeout:   30 * time.Second,
	}
}

// Engine computes snapshots. It keeps no state between calls.
type Engine struct {
	c           *Config
	orders      dependency.Orders
	catalog     dependency.Catalog
	loc         *time.Location
	granularity entity.Granularity
	now         func() time.Time
}

// New creates an engine. Zero config values are replaced by defaults,
// negative limits are rejected.
func New(c *Config, orders dependency.Orders, catalog dependency.Catalog) (*Engine, error) {
	dc := DefaultConfig()
	if c == nil {
		c = &dc
	}
	if c.TopProducts < 0 || c.RecentOrders < 0 || c.MaxLookbackDays < 0 {
		return nil, fmt.Errorf("negative analytics limits: top_products=%d recent_orders=%d max_lookback_days=%d",
			c.TopProducts, c.RecentOrders, c.MaxLookbackDays)
	}
	if c.TopProducts == 0 {
		c.TopProducts = dc.TopProducts
	}
	if c.RecentOrders == 0 {
		c.RecentOrders = dc.RecentOrders
	}
	if c.MaxLookbackDays == 0 {
		c.MaxLookbackDays = dc.MaxLookbackDays
	}
	if c.Timezone == "" {
		c.Timezone = dc.Timezone
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("can't load reporting timezone %q: %w", c.Timezone, err)
	}
	return &Engine{
		c:           c,
		orders:      orders,
		catalog:     catalog,
		loc:         loc,
		granularity: entity.ParseGranularity(c.Granularity),
		now:         time.Now,
	}, nil
}

// Snapshot computes one analytics snapshot. It returns an InvalidArgument
// error for a bad lookback and DataUnavailable when any read fails; in both
// cases no snapshot is returned.
func (e *Engine) Snapshot(ctx context.Context, req entity.SnapshotRequest) (*entity.Snapshot, error) {
	started := time.Now()
	s, err := e.snapshot(ctx, req)
	metrics.SnapshotDuration.WithLabelValues(outcome(err)).Observe(time.Since(started).Seconds())
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't compute analytics snapshot",
			slog.String("err", err.Error()),
			slog.Int("lookback_days", req.LookbackDays),
			slog.String("request_id", middleware.GetRequestID(ctx)),
		)
		return nil, err
	}
	return s, nil
}

func (e *Engine) snapshot(ctx context.Context, req entity.SnapshotRequest) (*entity.Snapshot, error) {
	now := req.Now
	if now.IsZero() {
		now = e.now()
	}

	previous, current, err := SelectWindows(now, req.LookbackDays, e.c.MaxLookbackDays, e.loc)
	if err != nil {
		return nil, err
	}

	f, err := e.fetch(ctx, previous, current)
	if err != nil {
		return nil, err
	}

	r := &reducer{
		loc:              e.loc,
		granularity:      e.granularity,
		excludeCancelled: req.ExcludeCancelled,
	}
	cur := r.reduce(ctx, f.current)
	prev := r.reduce(ctx, f.previous)
	metrics.DataQualityWarnings.Add(float64(len(cur.warnings) + len(prev.warnings)))

	return compose(composeInput{
		period: entity.Period{
			LookbackDays: req.LookbackDays,
			Current:      current,
			Previous:     previous,
			GeneratedAt:  now,
		},
		current:     cur,
		previous:    prev,
		products:    f.products,
		customers:   f.customers,
		stock:       f.stock,
		recent:      f.recent,
		granularity: e.granularity,
		topN:        e.c.TopProducts,
		recentN:     e.c.RecentOrders,
	}), nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case gerr.IsInvalidArgument(err):
		return "invalid_argument"
	case gerr.IsDataUnavailable(err):
		return "unavailable"
	default:
		return "error"
	}
}
