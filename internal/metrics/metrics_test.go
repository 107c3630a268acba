package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/pets/{petID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, "/pets/{petID}", "418"))

	for _, id := range []string{"a", "b"} {
		req := httptest.NewRequest(http.MethodGet, "/pets/"+id, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusTeapot, w.Code)
	}

	after := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, "/pets/{petID}", "418"))
	assert.Equal(t, 2.0, after-before)
}

func TestRecordFeeding(t *testing.T) {
	tests := []struct {
		name       string
		species    string
		sufficient bool
		label      string
		result     string
	}{
		{"ok dog", "dog", true, "dog", ResultOK},
		{"insufficient cat", "cat", false, "cat", ResultInsufficient},
		{"empty species", "", true, "unknown", ResultOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := FeedingCalculationsTotal.WithLabelValues(tt.label, tt.result)
			before := testutil.ToFloat64(c)
			RecordFeeding(tt.species, tt.sufficient)
			assert.Equal(t, 1.0, testutil.ToFloat64(c)-before)
		})
	}
}
