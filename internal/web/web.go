// Package web serves the current agenda snapshot over HTTP.
package web

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	appLog "agendacal/internal/log"
)

// Snapshot is one fully-evaluated agenda: the timestamp it was evaluated
// at and the rendered lines, in display order.
type Snapshot struct {
	GeneratedAt time.Time `json:"generated_at"`
	EventCount  int       `json:"event_count"`
	Lines       []string  `json:"lines"`
}

// Server exposes /health and /api/agenda. The agenda handler serves the
// last snapshot published by the refresh loop; it never evaluates events
// itself.
type Server struct {
	mux *http.ServeMux

	mu   sync.RWMutex
	snap *Snapshot
}

// NewServer constructs a Server with no snapshot yet.
func NewServer() *Server {
	s := &Server{mux: http.NewServeMux()}
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/agenda", s.handleAgenda)
	return s
}

// Handler returns the underlying http.Handler.
func (s *Server) Handler() http.Handler { return s.mux }

// Publish replaces the served snapshot.
func (s *Server) Publish(snap Snapshot) {
	s.mu.Lock()
	s.snap = &snap
	s.mu.Unlock()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAgenda(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()

	if snap == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no agenda evaluated yet"})
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		appLog.Error("web: encode response failed", err)
	}
}
