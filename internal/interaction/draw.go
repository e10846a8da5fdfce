package interaction

import (
	"github.com/ayusman/mudra/internal/geom"
	"github.com/ayusman/mudra/internal/pose"
)

// Draw accumulates freehand strokes into a single path from two
// independent input sources: touch contact points (already in view
// local space) and the hand pointer (screen space, converted here).
// Each source keeps its own "last point", so interleaving touch and
// hand input produces interleaved disjoint segments without either
// source corrupting the other's strokes.
type Draw struct {
	region *RegionTracker
	path   Path

	lastTouch *geom.Point
	lastHand  *geom.Point
}

// NewDraw creates a draw interaction bound to a region.
func NewDraw(region *RegionTracker) *Draw {
	return &Draw{region: region}
}

// Observe advances the hand-pointer stroke with one pointer update.
// Pinch off or a missing pointer breaks the segment; a pointer outside
// the region breaks the segment without touching the path.
func (d *Draw) Observe(state pose.State) {
	if state.Pointer == nil || !state.Pinch {
		d.lastHand = nil
		return
	}

	rect, known := d.region.Rect()
	if !known || !rect.Contains(*state.Pointer) {
		d.lastHand = nil
		return
	}

	local := geom.ToLocal(*state.Pointer, rect)
	if d.lastHand == nil {
		d.path.MoveTo(local)
	} else {
		d.path.LineTo(local)
	}
	d.lastHand = &local
}

// TouchMoved extends the touch stroke with a local-space contact
// point. The first contact of a stroke starts a new segment; points
// outside the view's local bounds are ignored.
func (d *Draw) TouchMoved(local geom.Point) {
	rect, known := d.region.Rect()
	if !known {
		return
	}

	bounds := geom.Rect{Size: rect.Size}
	if d.lastTouch != nil && !bounds.Contains(local) {
		return
	}

	if d.lastTouch == nil {
		d.path.MoveTo(local)
	} else {
		d.path.LineTo(local)
	}
	d.lastTouch = &local
}

// TouchEnded finishes the touch stroke. The path itself is kept; the
// next touch starts a fresh segment.
func (d *Draw) TouchEnded() {
	d.lastTouch = nil
}

// Path returns the accumulated stroke path.
func (d *Draw) Path() *Path {
	return &d.path
}
