package log

import (
	"io"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5/middleware"
	mw "github.com/jekabolt/grbpwr-analytics/internal/middleware"
)

type Config struct {
	Level     int  `mapstructure:"level"`
	AddSource bool `mapstructure:"add_source"`
}

// New returns a JSON logger writing to w.
func New(c Config, w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: c.AddSource,
		Level:     slog.Level(c.Level),
	}))
}

// RequestLogger logs one line per HTTP request with status and latency.
func RequestLogger(l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			lvl := slog.LevelInfo
			if ww.Status() >= http.StatusInternalServerError {
				lvl = slog.LevelError
			}
			l.LogAttrs(r.Context(), lvl, "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("query", r.URL.RawQuery),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("latency", time.Since(start)),
				slog.String("client_ip", mw.GetClientIP(r.Context())),
				slog.String("request_id", mw.GetRequestID(r.Context())),
			)
		})
	}
}
