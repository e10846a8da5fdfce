// Package api provides HTTP API handlers for the mudra pointer system.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/geom"
	"github.com/ayusman/mudra/internal/store"
)

// RegionChangedFunc is called after a binding's region is created or
// updated through the API, so live interactions track the new layout.
type RegionChangedFunc func(id string, rect geom.Rect)

// BindingHandler handles HTTP requests for binding resources.
type BindingHandler struct {
	store           *store.Store
	onRegionChanged RegionChangedFunc
}

// NewBindingHandler creates a new BindingHandler with the given store.
func NewBindingHandler(s *store.Store, onRegionChanged RegionChangedFunc) *BindingHandler {
	return &BindingHandler{store: s, onRegionChanged: onRegionChanged}
}

// ServeHTTP implements the http.Handler interface and routes requests to appropriate methods.
func (h *BindingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/bindings or /api/bindings/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/bindings")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Request and response types

type regionPayload struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (p regionPayload) rect() geom.Rect {
	return geom.Rect{
		Origin: geom.Point{X: p.X, Y: p.Y},
		Size:   geom.Size{Width: p.Width, Height: p.Height},
	}
}

type createBindingRequest struct {
	Name           string         `json:"name"`
	Kind           string         `json:"kind"`
	Region         *regionPayload `json:"region"`
	EnableTouch    bool           `json:"enable_touch"`
	AllowTouchDrag bool           `json:"allow_touch_drag"`
	PluginName     string         `json:"plugin_name"`
	ActionName     string         `json:"action_name"`
}

type updateBindingRequest struct {
	Name           string         `json:"name"`
	Kind           string         `json:"kind"`
	Region         *regionPayload `json:"region"`
	EnableTouch    *bool          `json:"enable_touch"`
	AllowTouchDrag *bool          `json:"allow_touch_drag"`
	PluginName     *string        `json:"plugin_name"`
	ActionName     *string        `json:"action_name"`
}

type bindingResponse struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Kind           string        `json:"kind"`
	Region         regionPayload `json:"region"`
	EnableTouch    bool          `json:"enable_touch"`
	AllowTouchDrag bool          `json:"allow_touch_drag"`
	PluginName     string        `json:"plugin_name"`
	ActionName     string        `json:"action_name"`
	CreatedAt      string        `json:"created_at"`
	UpdatedAt      string        `json:"updated_at"`
}

type listBindingsResponse struct {
	Bindings []bindingResponse `json:"bindings"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// toResponse converts a store.Binding to a bindingResponse.
func toResponse(b *store.Binding) bindingResponse {
	return bindingResponse{
		ID:   b.ID,
		Name: b.Name,
		Kind: string(b.Kind),
		Region: regionPayload{
			X:      b.Region.Origin.X,
			Y:      b.Region.Origin.Y,
			Width:  b.Region.Size.Width,
			Height: b.Region.Size.Height,
		},
		EnableTouch:    b.EnableTouch,
		AllowTouchDrag: b.AllowTouchDrag,
		PluginName:     b.PluginName,
		ActionName:     b.ActionName,
		CreatedAt:      b.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      b.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// list handles GET /api/bindings and returns all bindings.
func (h *BindingHandler) list(w http.ResponseWriter, r *http.Request) {
	bindings, err := h.store.Bindings().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list bindings")
		return
	}

	response := listBindingsResponse{
		Bindings: make([]bindingResponse, 0, len(bindings)),
	}

	for _, b := range bindings {
		response.Bindings = append(response.Bindings, toResponse(b))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/bindings/{id} and returns a single binding.
func (h *BindingHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	binding, err := h.store.Bindings().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Binding not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get binding")
		return
	}

	writeJSON(w, http.StatusOK, toResponse(binding))
}

// create handles POST /api/bindings and creates a new binding.
func (h *BindingHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createBindingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}

	kind := store.BindingKind(req.Kind)
	if !kind.Valid() {
		writeError(w, http.StatusBadRequest, "Invalid binding kind")
		return
	}

	if req.Region == nil {
		writeError(w, http.StatusBadRequest, "Region is required")
		return
	}
	if req.Region.Width <= 0 || req.Region.Height <= 0 {
		writeError(w, http.StatusBadRequest, "Region size must be positive")
		return
	}

	binding := &store.Binding{
		ID:             uuid.New().String(),
		Name:           req.Name,
		Kind:           kind,
		Region:         req.Region.rect(),
		EnableTouch:    req.EnableTouch,
		AllowTouchDrag: req.AllowTouchDrag,
		PluginName:     req.PluginName,
		ActionName:     req.ActionName,
	}

	if err := h.store.Bindings().Create(binding); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create binding")
		return
	}

	if h.onRegionChanged != nil {
		h.onRegionChanged(binding.ID, binding.Region)
	}

	writeJSON(w, http.StatusCreated, toResponse(binding))
}

// update handles PUT /api/bindings/{id} and updates an existing binding.
func (h *BindingHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	binding, err := h.store.Bindings().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Binding not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get binding")
		return
	}

	var req updateBindingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	regionChanged := false
	if req.Name != "" {
		binding.Name = req.Name
	}
	if req.Kind != "" {
		kind := store.BindingKind(req.Kind)
		if !kind.Valid() {
			writeError(w, http.StatusBadRequest, "Invalid binding kind")
			return
		}
		binding.Kind = kind
	}
	if req.Region != nil {
		if req.Region.Width <= 0 || req.Region.Height <= 0 {
			writeError(w, http.StatusBadRequest, "Region size must be positive")
			return
		}
		binding.Region = req.Region.rect()
		regionChanged = true
	}
	if req.EnableTouch != nil {
		binding.EnableTouch = *req.EnableTouch
	}
	if req.AllowTouchDrag != nil {
		binding.AllowTouchDrag = *req.AllowTouchDrag
	}
	if req.PluginName != nil {
		binding.PluginName = *req.PluginName
	}
	if req.ActionName != nil {
		binding.ActionName = *req.ActionName
	}

	if err := h.store.Bindings().Update(binding); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update binding")
		return
	}

	if regionChanged && h.onRegionChanged != nil {
		h.onRegionChanged(binding.ID, binding.Region)
	}

	writeJSON(w, http.StatusOK, toResponse(binding))
}

// delete handles DELETE /api/bindings/{id} and removes a binding.
func (h *BindingHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	err := h.store.Bindings().Delete(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Binding not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete binding")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
