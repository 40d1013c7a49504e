// HTTP/JSON boundary consumed by the external renderer. The server owns
// one live world and a tick counter; every handler serializes on the
// world mutex, so the core stays single-owner.
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/urban-sim-lab/gridtraffic/task"
	"github.com/urban-sim-lab/gridtraffic/utils/config"
)

var log = logrus.WithField("module", "server")

// Server drives one world over HTTP.
type Server struct {
	mu  sync.Mutex
	cfg *config.RuntimeConfig
	ctx *task.Context
}

// New builds a server around a fresh world.
func New(cfg config.RuntimeConfig) *Server {
	s := &Server{cfg: &cfg}
	s.ctx = task.NewContext(s.cfg)
	return s
}

// Handler returns the routed, CORS-wrapped handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/map", s.handleMap)
	r.Get("/metrics", s.handleMetrics)
	r.Get("/", s.handleSnapshot)
	r.Post("/", s.handleStep)
	r.Post("/config", s.handleConfig)
	r.Post("/reset", s.handleReset)
	r.Options("/", s.handleOptions)
	r.Options("/*", s.handleOptions)

	c := cors.New(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:     []string{"Content-Type"},
		OptionsPassthrough: true,
	})
	return c.Handler(r)
}

// ListenAndServe blocks serving the boundary on addr.
func (s *Server) ListenAndServe(addr string) error {
	log.Infof("renderer boundary listening on %s", addr)
	log.Infof("GET  /map  -> static road network")
	log.Infof("POST /     -> advance one tick, return snapshot")
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleMap(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	payload := buildMap(s.ctx)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	payload := buildMetrics(s.ctx)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	payload := buildSnapshot(s.ctx)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, payload)
}

// handleStep advances exactly one tick. Any JSON body (or none) is
// accepted; a malformed body is rejected without touching the world.
func (s *Server) handleStep(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil || !validJSONBody(body) {
		writeJSON(w, http.StatusBadRequest, errorPayload{Error: "Invalid JSON"})
		return
	}
	s.mu.Lock()
	s.ctx.Step()
	payload := buildSnapshot(s.ctx)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, payload)
}

// handleConfig merges recognized keys into the live configuration. Width,
// height and seed only take hold at the next reset; everything else
// applies to the running world immediately.
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	var values map[string]any
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		writeJSON(w, http.StatusBadRequest, errorPayload{Error: "Invalid JSON"})
		return
	}
	s.mu.Lock()
	s.cfg.Merge(values)
	log.Infof("config merged: %+v", *s.cfg)
	payload := okPayload{OK: true, Config: *s.cfg, Snapshot: buildSnapshot(s.ctx)}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, payload)
}

// handleReset rebuilds the world from the current configuration and
// resets the tick counter.
func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	s.ctx = task.NewContext(s.cfg)
	payload := okPayload{OK: true, Config: *s.cfg, Snapshot: buildSnapshot(s.ctx)}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleOptions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, struct{}{})
}

func validJSONBody(body []byte) bool {
	return len(body) == 0 || json.Valid(body)
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Warnf("response encode: %v", err)
	}
}
