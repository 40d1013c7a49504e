package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urban-sim-lab/gridtraffic/server"
	"github.com/urban-sim-lab/gridtraffic/utils/config"
)

func newServer() http.Handler {
	cfg := config.Default()
	cfg.BaseSpawnScale = 0
	return server.New(cfg).Handler()
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	return w, decoded
}

func TestMapEndpoint(t *testing.T) {
	h := newServer()
	w, m := do(t, h, http.MethodGet, "/map", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, float64(30), m["width"])
	assert.Equal(t, float64(30), m["height"])

	roads := m["roads"].([]any)
	assert.NotEmpty(t, roads)
	first := roads[0].(map[string]any)
	for _, key := range []string{"x", "y", "dir", "zone"} {
		assert.Contains(t, first, key)
	}

	intersections := m["intersections"].([]any)
	lit := 0
	for _, raw := range intersections {
		if raw.(map[string]any)["hasLight"].(bool) {
			lit++
		}
	}
	// two controlled clusters, four cells each
	assert.Equal(t, 8, lit)
}

func TestStepAdvancesOneTick(t *testing.T) {
	h := newServer()

	_, snap := do(t, h, http.MethodPost, "/", "{}")
	assert.Equal(t, float64(1), snap["tick"])

	// an empty body is accepted too
	_, snap = do(t, h, http.MethodPost, "/", "")
	assert.Equal(t, float64(2), snap["tick"])

	// GET does not advance the clock
	_, snap = do(t, h, http.MethodGet, "/", "")
	assert.Equal(t, float64(2), snap["tick"])
	assert.Contains(t, snap, "cars")
	assert.Contains(t, snap, "lights")
	assert.Len(t, snap["lights"].([]any), 8)
}

func TestStepRejectsMalformedBody(t *testing.T) {
	h := newServer()
	w, m := do(t, h, http.MethodPost, "/", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid JSON", m["error"])

	// the failed request did not advance the world
	_, snap := do(t, h, http.MethodGet, "/", "")
	assert.Equal(t, float64(0), snap["tick"])
}

func TestMetricsEndpoint(t *testing.T) {
	h := newServer()
	do(t, h, http.MethodPost, "/", "{}")

	w, m := do(t, h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	for _, key := range []string{
		"tick", "count_cars", "avg_speed", "avg_wait", "avg_wait_seconds",
		"seconds_per_tick", "signal_mode", "light_cycle",
	} {
		assert.Contains(t, m, key)
	}
	assert.Equal(t, "fixed", m["signal_mode"])
	assert.Equal(t, float64(12), m["light_cycle"])
}

func TestConfigMergeAppliesWithoutRebuild(t *testing.T) {
	h := newServer()
	w, m := do(t, h, http.MethodPost, "/config",
		`{"signal_mode":"adaptive","light_cycle":20,"width":40,"bogus":1}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, m["ok"])

	cfg := m["config"].(map[string]any)
	assert.Equal(t, "adaptive", cfg["signal_mode"])
	assert.Equal(t, float64(20), cfg["light_cycle"])
	assert.Equal(t, float64(40), cfg["width"])

	// geometry is untouched until a reset
	_, mp := do(t, h, http.MethodGet, "/map", "")
	assert.Equal(t, float64(30), mp["width"])

	_, metrics := do(t, h, http.MethodGet, "/metrics", "")
	assert.Equal(t, "adaptive", metrics["signal_mode"])
}

func TestConfigRejectsMalformedBody(t *testing.T) {
	h := newServer()
	w, m := do(t, h, http.MethodPost, "/config", "nope")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid JSON", m["error"])
}

func TestResetRebuildsWorld(t *testing.T) {
	h := newServer()
	do(t, h, http.MethodPost, "/", "{}")
	do(t, h, http.MethodPost, "/config", `{"width":40,"height":40}`)

	w, m := do(t, h, http.MethodPost, "/reset", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, m["ok"])
	snap := m["snapshot"].(map[string]any)
	assert.Equal(t, float64(0), snap["tick"])
	assert.Equal(t, float64(40), snap["width"])

	_, mp := do(t, h, http.MethodGet, "/map", "")
	assert.Equal(t, float64(40), mp["width"])
}

func TestOptionsPreflight(t *testing.T) {
	h := newServer()
	w, _ := do(t, h, http.MethodOptions, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, h, http.MethodOptions, "/config", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSHeaders(t *testing.T) {
	h := newServer()
	r := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	r.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
