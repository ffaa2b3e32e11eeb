package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jekabolt/grbpwr-analytics/internal/dependency/mocks"
	"github.com/jekabolt/grbpwr-analytics/internal/entity"
	gerr "github.com/jekabolt/grbpwr-analytics/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func okPinger() Pinger {
	return pingerFunc(func(context.Context) error { return nil })
}

func do(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func lookback(days int, excludeCancelled bool) interface{} {
	return mock.MatchedBy(func(req entity.SnapshotRequest) bool {
		return req.LookbackDays == days && req.ExcludeCancelled == excludeCancelled
	})
}

func TestGetAnalytics(t *testing.T) {
	snap := mocks.NewSnapshotter(t)
	snap.EXPECT().Snapshot(mock.Anything, lookback(7, true)).Return(&entity.Snapshot{
		Overview:     entity.Overview{CurrentRevenue: 1200000, RevenueGrowth: 20},
		SalesData:    []entity.SalesPoint{},
		TopProducts:  []entity.ProductMetric{},
		RecentOrders: []entity.RecentOrder{},
		Warnings:     []entity.DataQualityWarning{},
	}, nil)

	h := New(nil, snap, okPinger()).Handler()
	w := do(t, h, "/api/analytics?period=7&excludeCancelled=true")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	overview := body["overview"].(map[string]any)
	assert.Equal(t, 1200000.0, overview["currentRevenue"])
	assert.Equal(t, 20.0, overview["revenueGrowth"])
	assert.Equal(t, []any{}, body["salesData"])
}

func TestGetAnalyticsDefaultPeriod(t *testing.T) {
	snap := mocks.NewSnapshotter(t)
	snap.EXPECT().Snapshot(mock.Anything, lookback(30, false)).Return(&entity.Snapshot{}, nil)

	w := do(t, New(nil, snap, okPinger()).Handler(), "/api/analytics")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetAnalyticsErrors(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		snapErr  error
		expected int
	}{
		{"malformed period", "/api/analytics?period=abc", nil, http.StatusBadRequest},
		{"malformed flag", "/api/analytics?excludeCancelled=maybe", nil, http.StatusBadRequest},
		{"rejected lookback", "/api/analytics?period=0", gerr.InvalidArgument("select windows", gerr.ErrLookbackNotPositive), http.StatusBadRequest},
		{"store down", "/api/analytics?period=30", gerr.DataUnavailable("fetch", errors.New("timeout")), http.StatusServiceUnavailable},
		{"unexpected", "/api/analytics?period=30", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := mocks.NewSnapshotter(t)
			if tt.snapErr != nil {
				snap.EXPECT().Snapshot(mock.Anything, mock.Anything).Return(nil, tt.snapErr)
			}

			w := do(t, New(nil, snap, okPinger()).Handler(), tt.target)
			assert.Equal(t, tt.expected, w.Code)

			var body ErrResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, http.StatusText(tt.expected), body.StatusText)
			assert.NotEmpty(t, body.ErrorText)
		})
	}
}

func TestRateLimit(t *testing.T) {
	snap := mocks.NewSnapshotter(t)
	snap.EXPECT().Snapshot(mock.Anything, mock.Anything).Return(&entity.Snapshot{}, nil).Times(2)

	h := New(&Config{RateLimit: 2}, snap, okPinger()).Handler()
	assert.Equal(t, http.StatusOK, do(t, h, "/api/analytics").Code)
	assert.Equal(t, http.StatusOK, do(t, h, "/api/analytics").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, h, "/api/analytics").Code)
}

func TestHealthz(t *testing.T) {
	h := New(nil, mocks.NewSnapshotter(t), okPinger()).Handler()
	assert.Equal(t, http.StatusOK, do(t, h, "/healthz").Code)

	down := pingerFunc(func(context.Context) error { return errors.New("connection refused") })
	h = New(nil, mocks.NewSnapshotter(t), down).Handler()
	assert.Equal(t, http.StatusServiceUnavailable, do(t, h, "/healthz").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	h := New(nil, mocks.NewSnapshotter(t), okPinger()).Handler()
	w := do(t, h, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
}
