// Package server provides the HTTP control surface for the mudra
// pointer system.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/plugin"
	"github.com/ayusman/mudra/internal/pose"
	"github.com/ayusman/mudra/internal/server/api"
	"github.com/ayusman/mudra/internal/store"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store
	Camera    capture.Camera
	Signal    *pose.Signal
	Plugins   *plugin.Manager

	// Thresholds exposes the live filter thresholds; typically the App.
	Thresholds api.ThresholdSource

	// OnRegionChanged is invoked when a binding's region is updated
	// through the API, so running interactions pick up the new layout.
	OnRegionChanged api.RegionChangedFunc
}

// Server represents the HTTP server for the mudra application.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.Store != nil {
		bindingHandler := api.NewBindingHandler(s.config.Store, s.config.OnRegionChanged)
		s.mux.Handle("/api/bindings", bindingHandler)
		s.mux.Handle("/api/bindings/", bindingHandler)
	}

	if s.config.Thresholds != nil {
		s.mux.Handle("/api/config", api.NewConfigHandler(s.config.Thresholds))
	}

	if s.config.Plugins != nil {
		pluginHandler := api.NewPluginHandler(s.config.Plugins)
		s.mux.Handle("/api/plugins", pluginHandler)
		s.mux.Handle("/api/plugins/", pluginHandler)
	}

	if s.config.Signal != nil {
		s.mux.HandleFunc("/api/pointer", s.handlePointer)
		s.mux.Handle("/api/pointer/ws", NewPointerStreamHandler(s.config.Signal))
	}

	if s.config.Camera != nil {
		s.mux.Handle("/api/stream", NewStreamHandler(s.config.Camera))
	}

	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// handlePointer handles GET requests to /api/pointer, returning the
// most recent pointer state.
func (s *Server) handlePointer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	state := s.config.Signal.Snapshot()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"pointer":   state.Pointer,
		"pinch":     state.Pinch,
		"timestamp": time.Now().UnixMilli(),
	})
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
