package api

import (
	"encoding/json"
	"net/http"

	"github.com/ayusman/mudra/internal/pose"
)

// ThresholdSource exposes the live pose filter thresholds. It is
// implemented by the running App so config changes take effect without
// a restart.
type ThresholdSource interface {
	Thresholds() pose.Thresholds
	SetThresholds(t pose.Thresholds) error
}

// ConfigHandler handles HTTP requests for the filter configuration.
type ConfigHandler struct {
	source ThresholdSource
}

// NewConfigHandler creates a new ConfigHandler backed by the given source.
func NewConfigHandler(source ThresholdSource) *ConfigHandler {
	return &ConfigHandler{source: source}
}

type configResponse struct {
	PinchDistance float64 `json:"pinch_distance"`
	HandSize      float64 `json:"hand_size"`
	Confidence    float64 `json:"confidence"`
}

type updateConfigRequest struct {
	PinchDistance *float64 `json:"pinch_distance"`
	HandSize      *float64 `json:"hand_size"`
	Confidence    *float64 `json:"confidence"`
}

// ServeHTTP implements the http.Handler interface.
func (h *ConfigHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPut:
		h.update(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// get handles GET /api/config and returns the current thresholds.
func (h *ConfigHandler) get(w http.ResponseWriter, r *http.Request) {
	t := h.source.Thresholds()
	writeJSON(w, http.StatusOK, configResponse{
		PinchDistance: t.PinchDistance,
		HandSize:      t.HandSize,
		Confidence:    t.Confidence,
	})
}

// update handles PUT /api/config and applies new thresholds. Omitted
// fields keep their current value.
func (h *ConfigHandler) update(w http.ResponseWriter, r *http.Request) {
	var req updateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	t := h.source.Thresholds()
	if req.PinchDistance != nil {
		if *req.PinchDistance <= 0 {
			writeError(w, http.StatusBadRequest, "pinch_distance must be positive")
			return
		}
		t.PinchDistance = *req.PinchDistance
	}
	if req.HandSize != nil {
		if *req.HandSize <= 0 {
			writeError(w, http.StatusBadRequest, "hand_size must be positive")
			return
		}
		t.HandSize = *req.HandSize
	}
	if req.Confidence != nil {
		if *req.Confidence < 0 || *req.Confidence > 1 {
			writeError(w, http.StatusBadRequest, "confidence must be between 0 and 1")
			return
		}
		t.Confidence = *req.Confidence
	}

	if err := h.source.SetThresholds(t); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to apply configuration")
		return
	}

	writeJSON(w, http.StatusOK, configResponse{
		PinchDistance: t.PinchDistance,
		HandSize:      t.HandSize,
		Confidence:    t.Confidence,
	})
}
