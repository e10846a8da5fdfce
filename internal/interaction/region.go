// Package interaction contains the pointer-driven gesture state
// machines (tap, drag, draw), the region tracking they scope to, and
// the append-only path type draw strokes accumulate into.
//
// The state machines are not safe for concurrent use on their own:
// every Observe call and every touch event must arrive on the single
// coordination goroutine that publishes pointer updates. RegionTracker
// is the exception, since layout notifications come from the rendering
// collaborator's own context.
package interaction

import (
	"sync"

	"github.com/ayusman/mudra/internal/geom"
)

// RegionTracker caches the current screen rectangle of one bound view.
// The rendering collaborator calls OnRegionChanged whenever the view's
// position or size changes, and at least once before first use; the
// gesture state machines only read it.
type RegionTracker struct {
	mu    sync.RWMutex
	rect  geom.Rect
	known bool
}

// NewRegionTracker creates a tracker with no region yet. Until the
// first layout notification arrives, Contains reports false for every
// point, so no gesture can engage.
func NewRegionTracker() *RegionTracker {
	return &RegionTracker{}
}

// OnRegionChanged records the view's new screen rectangle.
func (r *RegionTracker) OnRegionChanged(rect geom.Rect) {
	r.mu.Lock()
	r.rect = rect
	r.known = true
	r.mu.Unlock()
}

// Rect returns the current region and whether a layout notification
// has been received yet.
func (r *RegionTracker) Rect() (geom.Rect, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rect, r.known
}

// Contains reports whether p lies inside the tracked region. It is
// false before the first layout notification.
func (r *RegionTracker) Contains(p geom.Point) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.known && r.rect.Contains(p)
}
