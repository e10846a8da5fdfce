package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ayusman/mudra/internal/pose"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// PointerStreamHandler broadcasts pointer states to WebSocket clients
// as they are published. Stale states are dropped rather than queued,
// matching the pipeline's freshness-over-completeness policy.
type PointerStreamHandler struct {
	updates chan pose.State
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewPointerStreamHandler creates a handler subscribed to the signal.
func NewPointerStreamHandler(signal *pose.Signal) *PointerStreamHandler {
	h := &PointerStreamHandler{
		updates: make(chan pose.State, 1),
		clients: make(map[*websocket.Conn]bool),
	}
	signal.Subscribe(h.enqueue)
	go h.broadcast()
	return h
}

// enqueue runs on the coordination goroutine and must not block: a
// state that cannot be sent replaces whatever is still waiting.
func (h *PointerStreamHandler) enqueue(state pose.State) {
	for {
		select {
		case h.updates <- state:
			return
		default:
			select {
			case <-h.updates:
			default:
			}
		}
	}
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *PointerStreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// broadcast sends each fresh state to all connected clients.
func (h *PointerStreamHandler) broadcast() {
	for state := range h.updates {
		msg, _ := json.Marshal(map[string]any{
			"pointer":   state.Pointer,
			"pinch":     state.Pinch,
			"timestamp": time.Now().UnixMilli(),
		})

		h.mu.RLock()
		for conn := range h.clients {
			conn.WriteMessage(websocket.TextMessage, msg)
		}
		h.mu.RUnlock()
	}
}
