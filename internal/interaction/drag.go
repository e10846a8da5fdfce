package interaction

import (
	"github.com/ayusman/mudra/internal/geom"
	"github.com/ayusman/mudra/internal/pose"
)

// DragConfig configures a drag interaction.
type DragConfig struct {
	// AllowTouchDrag lets ordinary touch drags move the view directly.
	AllowTouchDrag bool `json:"allow_touch_drag"`
}

// Drag tracks a pinch-drag against a region and exposes the resulting
// view offset. The offset is anchored: the pointer position and offset
// at drag start are captured, and subsequent updates apply the pointer
// delta to the anchored offset, so starting a drag mid-view never
// teleports the view.
type Drag struct {
	region         *RegionTracker
	allowTouchDrag bool

	dragging      bool
	anchorPointer geom.Point
	anchorOffset  geom.Vector
	offset        geom.Vector
}

// NewDrag creates a drag interaction bound to a region.
func NewDrag(region *RegionTracker, cfg DragConfig) *Drag {
	return &Drag{
		region:         region,
		allowTouchDrag: cfg.AllowTouchDrag,
	}
}

// Observe advances the state machine with one pointer update.
func (d *Drag) Observe(state pose.State) {
	qualifies := state.Pointer != nil && state.Pinch && d.region.Contains(*state.Pointer)

	if !qualifies {
		d.dragging = false
		return
	}

	if !d.dragging {
		d.dragging = true
		d.anchorPointer = *state.Pointer
		d.anchorOffset = d.offset
	}

	d.offset = d.anchorOffset.Add(state.Pointer.Sub(d.anchorPointer))
}

// TouchDrag overwrites the offset with a touch gesture's translation.
// Touch drags carry no anchor math; the translation is applied as-is.
// The touch and pointer paths do not interact within one gesture.
func (d *Drag) TouchDrag(translation geom.Vector) {
	if !d.allowTouchDrag {
		return
	}
	d.offset = translation
}

// Offset returns the current view offset.
func (d *Drag) Offset() geom.Vector {
	return d.offset
}

// Dragging reports whether a pinch-drag is in progress.
func (d *Drag) Dragging() bool {
	return d.dragging
}
