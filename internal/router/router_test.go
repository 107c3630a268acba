package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-nutrition/internal/domain/foods"
	"pet-nutrition/internal/ports/capabilities"
	"pet-nutrition/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recommendation struct {
	PetID       string  `json:"pet_id"`
	FoodID      string  `json:"food_id"`
	WeightKg    float64 `json:"weight_kg"`
	AgeKnown    bool    `json:"age_known"`
	Factor      float64 `json:"factor"`
	GramsPerDay float64 `json:"grams_per_day"`
	Portions    float64 `json:"portions"`
	ServingUnit string  `json:"serving_unit"`
	Sufficient  bool    `json:"sufficient"`
}

func newServer(t *testing.T, opts router.Options) *httptest.Server {
	t.Helper()
	h, err := router.NewRouter(opts)
	require.NoError(t, err)
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_FeedingRecommendation(t *testing.T) {
	ts := newServer(t, router.Options{})

	ownerID := "owner-1"
	strangerID := "stranger-1"

	// 1) Mascota: perro castrado adulto
	petID := createPet(t, ts.URL, ownerID, map[string]any{
		"name":                "Milo",
		"species":             "dog",
		"sex":                 "male",
		"reproductive_status": "neutered_male",
		"birth_date":          "2020-03-01",
	})

	// 2) Sin peso: 200 con sufficient=false
	{
		st, body := doReq(t, ts.URL, http.MethodPost, "/pets/"+petID+"/feeding/recommendation", ownerID, map[string]any{
			"calories_per_kg": 3500,
			"as_of":           "2025-06-15",
		})
		require.Equal(t, http.StatusOK, st, string(body))

		var rec recommendation
		require.NoError(t, json.Unmarshal(body, &rec))
		assert.False(t, rec.Sufficient)
		assert.Zero(t, rec.GramsPerDay)
		assert.Equal(t, 1.4, rec.Factor)
	}

	// 3) Peso registrado (22.046 lb ~ 10 kg) y luego uno más reciente en kg
	recordWeight(t, ts.URL, ownerID, petID, "2025-05-01T08:00:00Z", 22.0462, "lb")
	recordWeight(t, ts.URL, ownerID, petID, "2025-06-01T08:00:00Z", 10, "kg")

	{
		st, body := doReq(t, ts.URL, http.MethodGet, "/pets/"+petID+"/weight", ownerID, nil)
		require.Equal(t, http.StatusOK, st, string(body))
		assert.Contains(t, string(body), `"unit":"kg"`)
	}

	// 4) Alimento propio medido en tazas
	foodID := createFood(t, ts.URL, ownerID, map[string]any{
		"name":            "Adult Chicken",
		"brand":           "Acme",
		"species":         "dog",
		"calories_per_kg": 3500,
		"serving_unit":    "cup",
		"serving_grams":   100,
	})

	// 5) Recomendación completa
	{
		st, body := doReq(t, ts.URL, http.MethodPost, "/pets/"+petID+"/feeding/recommendation", ownerID, map[string]any{
			"food_id":   foodID,
			"lifestyle": "normal",
			"as_of":     "2025-06-15",
		})
		require.Equal(t, http.StatusOK, st, string(body))

		var rec recommendation
		require.NoError(t, json.Unmarshal(body, &rec))
		assert.True(t, rec.Sufficient)
		assert.True(t, rec.AgeKnown)
		assert.Equal(t, petID, rec.PetID)
		assert.Equal(t, foodID, rec.FoodID)
		assert.InDelta(t, 10, rec.WeightKg, 1e-9)
		assert.InDelta(t, 157.4, rec.GramsPerDay, 0.1)
		assert.InDelta(t, 1.574, rec.Portions, 0.001)
		assert.Equal(t, "cup", rec.ServingUnit)
	}

	// 6) Otro usuario no puede pedir la ración ni ver el alimento
	{
		st, _ := doReq(t, ts.URL, http.MethodPost, "/pets/"+petID+"/feeding/recommendation", strangerID, map[string]any{
			"calories_per_kg": 3500,
		})
		assert.Equal(t, http.StatusForbidden, st)

		st, _ = doReq(t, ts.URL, http.MethodGet, "/foods/"+foodID, strangerID, nil)
		assert.Equal(t, http.StatusNotFound, st)
	}

	// 7) Valores inválidos
	{
		st, _ := doReq(t, ts.URL, http.MethodPost, "/pets/"+petID+"/feeding/recommendation", ownerID, map[string]any{
			"food_id":   foodID,
			"lifestyle": "couch_potato",
		})
		assert.Equal(t, http.StatusBadRequest, st)

		st, _ = doReq(t, ts.URL, http.MethodPost, "/pets/"+petID+"/feeding/recommendation", ownerID, map[string]any{
			"food_id":     foodID,
			"cycle_state": "pregnant",
		})
		assert.Equal(t, http.StatusBadRequest, st)

		st, _ = doReq(t, ts.URL, http.MethodPost, "/pets/"+petID+"/feeding/recommendation", ownerID, map[string]any{
			"food_id": "missing",
		})
		assert.Equal(t, http.StatusNotFound, st)

		st, _ = doReq(t, ts.URL, http.MethodPost, "/pets/missing/feeding/recommendation", ownerID, map[string]any{})
		assert.Equal(t, http.StatusNotFound, st)
	}

	// 8) Sin usuario
	{
		st, _ := doReq(t, ts.URL, http.MethodPost, "/pets/"+petID+"/feeding/recommendation", "", map[string]any{})
		assert.Equal(t, http.StatusUnauthorized, st)
	}
}

func TestHTTP_VoidedWeightIsIgnored(t *testing.T) {
	ts := newServer(t, router.Options{})
	ownerID := "owner-1"

	petID := createPet(t, ts.URL, ownerID, map[string]any{"name": "Luna", "species": "cat"})
	eventID := recordWeight(t, ts.URL, ownerID, petID, "2025-06-01T08:00:00Z", 4, "kg")

	st, body := doReq(t, ts.URL, http.MethodPost, "/pets/"+petID+"/events/"+eventID+"/void", ownerID, nil)
	require.Equal(t, http.StatusOK, st, string(body))

	st, _ = doReq(t, ts.URL, http.MethodGet, "/pets/"+petID+"/weight", ownerID, nil)
	assert.Equal(t, http.StatusNotFound, st)

	st, body = doReq(t, ts.URL, http.MethodPost, "/pets/"+petID+"/feeding/recommendation", ownerID, map[string]any{
		"calories_per_kg": 4000,
	})
	require.Equal(t, http.StatusOK, st, string(body))

	var rec recommendation
	require.NoError(t, json.Unmarshal(body, &rec))
	assert.False(t, rec.Sufficient)
}

func TestHTTP_Calculate(t *testing.T) {
	ts := newServer(t, router.Options{})

	st, body := doReq(t, ts.URL, http.MethodPost, "/feeding/calculate", "", map[string]any{
		"weight":              2,
		"weight_unit":         "kg",
		"species":             "cat",
		"reproductive_status": "intact_male",
		"birth_date":          "2024-12-15",
		"as_of":               "2025-06-15",
		"calories_per_kg":     4000,
	})
	require.Equal(t, http.StatusOK, st, string(body))

	var rec recommendation
	require.NoError(t, json.Unmarshal(body, &rec))
	assert.Equal(t, 2.5, rec.Factor)
	assert.InDelta(t, 73.6, rec.GramsPerDay, 0.05)

	st, _ = doReq(t, ts.URL, http.MethodPost, "/feeding/calculate", "", map[string]any{
		"weight": 2, "species": "cat", "calories_per_kg": 4000, "birth_date": "15/12/2024",
	})
	assert.Equal(t, http.StatusBadRequest, st)

	st, _ = doReq(t, ts.URL, http.MethodPost, "/feeding/calculate", "", map[string]any{
		"weight": 2, "weight_unit": "stone", "species": "cat", "calories_per_kg": 4000,
	})
	assert.Equal(t, http.StatusBadRequest, st)
}

type fixedCaps struct {
	allowed bool
	err     error
}

func (f fixedCaps) HasFeature(context.Context, capabilities.CapabilityCheck) (bool, error) {
	return f.allowed, f.err
}

func TestHTTP_FeedingCapabilityGate(t *testing.T) {
	tests := []struct {
		name   string
		caps   capabilities.CapabilitiesResolver
		status int
	}{
		{"allowed", fixedCaps{allowed: true}, http.StatusOK},
		{"not in plan", fixedCaps{allowed: false}, http.StatusForbidden},
		{"upstream down", fixedCaps{err: errors.New("down")}, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newServer(t, router.Options{Capabilities: tt.caps})
			petID := createPet(t, ts.URL, "owner-1", map[string]any{"name": "Milo", "species": "dog"})

			st, body := doReq(t, ts.URL, http.MethodPost, "/pets/"+petID+"/feeding/recommendation", "owner-1", map[string]any{
				"weight_kg":       10,
				"calories_per_kg": 3500,
			})
			assert.Equal(t, tt.status, st, string(body))
		})
	}
}

func TestHTTP_FoodsSeedAndOps(t *testing.T) {
	seed := []foods.CreateInput{
		{Name: "Indoor Cat", Brand: "Acme", Species: "cat", CaloriesPerKg: 3800, ServingUnit: "cup", ServingGrams: 90},
		{Name: "Puppy Can", Brand: "Acme", Species: "dog", CaloriesPerKg: 1100, ServingUnit: "can", ServingGrams: 370},
	}
	ts := newServer(t, router.Options{FoodsSeed: seed})

	st, body := doReq(t, ts.URL, http.MethodGet, "/foods?species=cat", "user-1", nil)
	require.Equal(t, http.StatusOK, st)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(body, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Indoor Cat", items[0]["name"])
	assert.Equal(t, true, items[0]["shared"])

	st, _ = doReq(t, ts.URL, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, st)

	st, body = doReq(t, ts.URL, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, st)
	assert.Contains(t, string(body), "http_requests_total")
}

// -------------------------
// Helpers
// -------------------------

func createPet(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()
	st, body := doReq(t, baseURL, http.MethodPost, "/pets", userID, payload)
	require.Equal(t, http.StatusCreated, st, string(body))
	return idFrom(t, body)
}

func createFood(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()
	st, body := doReq(t, baseURL, http.MethodPost, "/foods", userID, payload)
	require.Equal(t, http.StatusCreated, st, string(body))
	return idFrom(t, body)
}

func recordWeight(t *testing.T, baseURL, userID, petID, occurredAt string, value float64, unit string) string {
	t.Helper()
	st, body := doReq(t, baseURL, http.MethodPost, "/pets/"+petID+"/events", userID, map[string]any{
		"type":        "WEIGHT_RECORDED",
		"occurred_at": occurredAt,
		"measurement": map[string]any{"value": value, "unit": unit},
	})
	require.Equal(t, http.StatusCreated, st, string(body))
	return idFrom(t, body)
}

func idFrom(t *testing.T, body []byte) string {
	t.Helper()
	var out struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.NotEmpty(t, out.ID)
	return out.ID
}

func doReq(t *testing.T, baseURL, method, path, userID string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if strings.TrimSpace(userID) != "" {
		req.Header.Set("X-Debug-User-ID", userID)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, b
}
