package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientIdentifier(t *testing.T) {
	var gotIP, gotID string
	h := ClientIdentifier(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotIP = GetClientIP(r.Context())
		gotID = GetRequestID(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.1:5555"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, "10.0.0.1", gotIP)
	_, err := uuid.Parse(gotID)
	require.NoError(t, err)
	assert.Equal(t, gotID, w.Header().Get(RequestIDHeader))
}

func TestClientIdentifierKeepsRequestID(t *testing.T) {
	var gotID string
	h := ClientIdentifier(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = GetRequestID(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestIDHeader, "abc")
	h.ServeHTTP(httptest.NewRecorder(), r)
	assert.Equal(t, "abc", gotID)
}

func TestGetClientIPHeaders(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-For", "1.1.1.1, 2.2.2.2")
	r.Header.Set("X-Real-IP", "3.3.3.3")
	assert.Equal(t, "1.1.1.1", getClientIP(r))

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Real-IP", "3.3.3.3")
	assert.Equal(t, "3.3.3.3", getClientIP(r))

	key, err := KeyByClientIP(r)
	require.NoError(t, err)
	assert.Equal(t, "3.3.3.3", key)
}

func TestContextDefaults(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "unknown", GetClientIP(ctx))
	assert.Empty(t, GetRequestID(ctx))
	assert.Equal(t, "x", GetRequestID(WithRequestID(ctx, "x")))
}
