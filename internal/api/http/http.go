package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jekabolt/grbpwr-analytics/internal/dependency"
	"github.com/jekabolt/grbpwr-analytics/internal/entity"
	gerr "github.com/jekabolt/grbpwr-analytics/internal/errors"
	mw "github.com/jekabolt/grbpwr-analytics/internal/middleware"
	"github.com/jekabolt/grbpwr-analytics/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc/status"
)

// Config is the configuration for the http server
type Config struct {
	Port           string        `mapstructure:"port"`
	Address        string        `mapstructure:"address"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	DefaultPeriod  int           `mapstructure:"default_period"`
	RateLimit      int           `mapstructure:"rate_limit"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		Port:           "8081",
		Address:        "0.0.0.0",
		AllowedOrigins: []string{"*"},
		DefaultPeriod:  30,
		RateLimit:      60,
		RequestTimeout: 30 * time.Second,
	}
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server is the http server
type Server struct {
	hs       *http.Server
	c        *Config
	snapshot dependency.Snapshotter
	db       Pinger
	done     chan struct{}
}

// New creates a new server
func New(c *Config, snapshot dependency.Snapshotter, db Pinger) *Server {
	dc := DefaultConfig()
	if c == nil {
		c = &dc
	}
	if c.DefaultPeriod == 0 {
		c.DefaultPeriod = dc.DefaultPeriod
	}
	if c.RateLimit == 0 {
		c.RateLimit = dc.RateLimit
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = dc.RequestTimeout
	}
	return &Server{
		c:        c,
		snapshot: snapshot,
		db:       db,
		done:     make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.c.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", mw.RequestIDHeader},
		ExposedHeaders: []string{mw.RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(middleware.RealIP)
	r.Use(mw.ClientIdentifier)
	r.Use(log.RequestLogger(slog.Default()))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.c.RequestTimeout))

	r.Get("/healthz", s.healthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Use(httprate.Limit(
			s.c.RateLimit,
			time.Minute,
			httprate.WithKeyFuncs(mw.KeyByClientIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				render.Render(w, r, &ErrResponse{
					HTTPStatusCode: http.StatusTooManyRequests,
					StatusText:     http.StatusText(http.StatusTooManyRequests),
					ErrorText:      "too many analytics requests, please slow down",
				})
			}),
		))
		r.Get("/analytics", s.getAnalytics)
	})

	return r
}

func (s *Server) getAnalytics(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRequest(r)
	if err != nil {
		render.Render(w, r, ErrFromStatus(err))
		return
	}

	snap, err := s.snapshot.Snapshot(r.Context(), req)
	if err != nil {
		render.Render(w, r, ErrFromStatus(err))
		return
	}
	render.JSON(w, r, snap)
}

// parseRequest reads period and excludeCancelled from the query string.
func (s *Server) parseRequest(r *http.Request) (entity.SnapshotRequest, error) {
	req := entity.SnapshotRequest{LookbackDays: s.c.DefaultPeriod}
	q := r.URL.Query()

	if p := q.Get("period"); p != "" {
		days, err := strconv.Atoi(p)
		if err != nil {
			return req, gerr.InvalidArgument("parse period", fmt.Errorf("%w: %q", gerr.ErrLookbackMalformed, p))
		}
		req.LookbackDays = days
	}

	if ex := q.Get("excludeCancelled"); ex != "" {
		v, err := strconv.ParseBool(ex)
		if err != nil {
			return req, gerr.InvalidArgument("parse excludeCancelled", fmt.Errorf("not a boolean: %q", ex))
		}
		req.ExcludeCancelled = v
	}
	return req, nil
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			slog.Default().ErrorContext(r.Context(), "health check failed",
				slog.String("err", err.Error()),
			)
			render.Render(w, r, ErrFromStatus(gerr.DataUnavailable("ping", err)))
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// Start starts the server
func (s *Server) Start(ctx context.Context) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:              listenerAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Default().InfoContext(ctx, "grbpwr-analytics new listener", slog.String("addr", "http://"+listenerAddr))
		err := s.hs.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		close(s.done)
	}()

	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return fmt.Errorf("http server is not started")
	}
	return s.hs.Shutdown(ctx)
}

// ErrResponse is the JSON error body.
type ErrResponse struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`

	StatusText string `json:"status"`
	AppCode    int64  `json:"code,omitempty"`
	ErrorText  string `json:"error,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

// ErrFromStatus maps an error kind to its HTTP status: InvalidArgument is
// 400, Unavailable is 503 and anything else is 500.
func ErrFromStatus(err error) *ErrResponse {
	code := status.Code(err)
	httpCode := runtime.HTTPStatusFromCode(code)
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: httpCode,
		StatusText:     http.StatusText(httpCode),
		AppCode:        int64(code),
		ErrorText:      err.Error(),
	}
}
