package pose

import (
	"sync"

	"github.com/ayusman/mudra/internal/geom"
)

// State is one pointer observation in screen space. Pointer is nil when
// no hand passed the filter gates; Pinch is false whenever Pointer is
// nil. Pointer and pinch always change together as one value, so a
// reader can never observe a fresh pointer paired with a stale pinch.
type State struct {
	Pointer *geom.Point `json:"pointer"`
	Pinch   bool        `json:"pinch"`
}

// Signal is the shared pointer/pinch observable. It has exactly one
// writer, the coordination loop, which publishes one State per accepted
// frame; subscribers are invoked synchronously on that same goroutine
// in registration order, so every subscriber sees updates in one total
// order. Snapshot is safe from any goroutine.
type Signal struct {
	mu          sync.RWMutex
	state       State
	subscribers []func(State)
}

// NewSignal creates a Signal in the no-pointer state.
func NewSignal() *Signal {
	return &Signal{}
}

// Subscribe registers fn to be called on every published state. The
// callback runs on the publishing goroutine and must not block.
func (s *Signal) Subscribe(fn func(State)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

// Publish stores the state and notifies subscribers in order. A nil
// pointer forces pinch off, preserving the invariant that a pinch is
// only reported with a resolved pointer position.
func (s *Signal) Publish(state State) {
	if state.Pointer == nil {
		state.Pinch = false
	}

	s.mu.Lock()
	s.state = state
	subs := s.subscribers
	s.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}

// Snapshot returns the most recently published state.
func (s *Signal) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
