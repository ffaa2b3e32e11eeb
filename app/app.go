package app

import (
	"context"
	"fmt"
	"sync"

	"log/slog"

	"github.com/jekabolt/grbpwr-analytics/config"
	httpapi "github.com/jekabolt/grbpwr-analytics/internal/api/http"
	"github.com/jekabolt/grbpwr-analytics/internal/analytics"
	"github.com/jekabolt/grbpwr-analytics/internal/dependency"
	"github.com/jekabolt/grbpwr-analytics/internal/store"
)

// App is the main application
type App struct {
	hs    *httpapi.Server
	db    dependency.Repository
	cache *analytics.CachedSnapshotter
	c     *config.Config
	done  chan struct{}
	once  sync.Once
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	slog.Default().InfoContext(ctx, "starting analytics service")

	db, err := store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql",
			slog.String("err", err.Error()),
		)
		return err
	}
	a.db = db

	snapshotter, err := NewSnapshotter(a.c, a.db)
	if err != nil {
		return err
	}
	a.cache = snapshotter
	if err := a.cache.Start(ctx); err != nil {
		return fmt.Errorf("can't start snapshot cache: %w", err)
	}

	a.hs = httpapi.New(&a.c.HTTP, a.cache, a.db)
	if err := a.hs.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}

	go func() {
		<-a.hs.Done()
		a.once.Do(func() { close(a.done) })
	}()

	return nil
}

// NewSnapshotter builds the cached engine over repo.
func NewSnapshotter(c *config.Config, repo dependency.Repository) (*analytics.CachedSnapshotter, error) {
	engine, err := analytics.New(&c.Analytics, repo.Orders(), repo.Catalog())
	if err != nil {
		return nil, fmt.Errorf("can't create analytics engine: %w", err)
	}
	return analytics.NewCached(&c.Analytics, engine), nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "can't stop http server",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.cache != nil {
		_ = a.cache.Stop()
	}
	if a.db != nil {
		a.db.Close()
	}
	a.once.Do(func() { close(a.done) })
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
