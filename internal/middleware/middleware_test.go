package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-nutrition/internal/platform/logger"
	"pet-nutrition/internal/ports/auth"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	claims auth.Claims
	err    error
}

func (s stubVerifier) Verify(context.Context, string) (auth.Claims, error) {
	return s.claims, s.err
}

func whoAmI(w http.ResponseWriter, r *http.Request) {
	c, ok := GetClaims(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	_, _ = w.Write([]byte(c.UserID))
}

func TestAuthContext(t *testing.T) {
	tests := []struct {
		name     string
		verifier auth.Verifier
		headers  map[string]string
		status   int
		body     string
	}{
		{
			name:    "dev header",
			headers: map[string]string{"X-Debug-User-ID": "u-1"},
			status:  http.StatusOK,
			body:    "u-1",
		},
		{
			name:   "dev without header",
			status: http.StatusUnauthorized,
		},
		{
			name:     "bearer verified",
			verifier: stubVerifier{claims: auth.Claims{UserID: "u-2"}},
			headers:  map[string]string{"Authorization": "bearer tok"},
			status:   http.StatusOK,
			body:     "u-2",
		},
		{
			name:     "debug header ignored with verifier",
			verifier: stubVerifier{claims: auth.Claims{UserID: "u-2"}},
			headers:  map[string]string{"X-Debug-User-ID": "u-1"},
			status:   http.StatusUnauthorized,
		},
		{
			name:     "verifier error",
			verifier: stubVerifier{err: errors.New("bad token")},
			headers:  map[string]string{"Authorization": "Bearer tok"},
			status:   http.StatusUnauthorized,
		},
		{
			name:     "claims without user",
			verifier: stubVerifier{claims: auth.Claims{Email: "a@b.c"}},
			headers:  map[string]string{"Authorization": "Bearer tok"},
			status:   http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := AuthContext(tt.verifier)(http.HandlerFunc(whoAmI))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
		})
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Output: &buf})

	h := chimw.RequestID(AuthContext(nil)(RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))))

	req := httptest.NewRequest(http.MethodGet, "/pets/x", nil)
	req.Header.Set("X-Debug-User-ID", "u-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "/pets/x", entry["path"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
	assert.Equal(t, "u-1", entry["user_id"])
	assert.NotEmpty(t, entry["request_id"])
}
