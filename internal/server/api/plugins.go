package api

import (
	"net/http"
	"strings"

	"github.com/ayusman/mudra/internal/plugin"
)

// PluginHandler serves the discovered plugin manifests so UI clients
// can offer plugin/action choices when editing a binding.
type PluginHandler struct {
	manager *plugin.Manager
}

// NewPluginHandler creates a new PluginHandler with the given manager.
func NewPluginHandler(m *plugin.Manager) *PluginHandler {
	return &PluginHandler{manager: m}
}

type pluginResponse struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Actions     []string `json:"actions"`
}

type listPluginsResponse struct {
	Plugins []pluginResponse `json:"plugins"`
}

// ServeHTTP implements the http.Handler interface.
func (h *PluginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/plugins")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		h.list(w, r)
		return
	}
	h.get(w, r, path)
}

// list handles GET /api/plugins.
func (h *PluginHandler) list(w http.ResponseWriter, r *http.Request) {
	plugins := h.manager.List()

	response := listPluginsResponse{
		Plugins: make([]pluginResponse, 0, len(plugins)),
	}
	for _, p := range plugins {
		response.Plugins = append(response.Plugins, toPluginResponse(p))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/plugins/{name}.
func (h *PluginHandler) get(w http.ResponseWriter, r *http.Request, name string) {
	p, err := h.manager.Get(name)
	if err != nil {
		writeError(w, http.StatusNotFound, "Plugin not found")
		return
	}

	writeJSON(w, http.StatusOK, toPluginResponse(p))
}

func toPluginResponse(p *plugin.Plugin) pluginResponse {
	return pluginResponse{
		Name:        p.Manifest.Name,
		Version:     p.Manifest.Version,
		Description: p.Manifest.Description,
		Actions:     p.Manifest.Actions,
	}
}
