package interaction

import "github.com/ayusman/mudra/internal/pose"

// TapConfig configures a tap interaction.
type TapConfig struct {
	// EnableTouch allows ordinary touch taps to fire the action
	// directly, independent of the pointer state machine.
	EnableTouch bool `json:"enable_touch"`
}

// Tap fires a bound action once each time the pointer enters the
// region while pinching. The latch is edge-triggered: holding the
// pointer inside while pinching fires once, and only losing the
// pointer, releasing the pinch, or leaving the region re-arms it.
type Tap struct {
	region      *RegionTracker
	action      func()
	enableTouch bool
	triggered   bool
}

// NewTap creates a tap interaction bound to a region and an action.
// The action runs on the coordination goroutine and must not block.
func NewTap(region *RegionTracker, action func(), cfg TapConfig) *Tap {
	return &Tap{
		region:      region,
		action:      action,
		enableTouch: cfg.EnableTouch,
	}
}

// Observe advances the state machine with one pointer update.
func (t *Tap) Observe(state pose.State) {
	qualifies := state.Pointer != nil && state.Pinch && t.region.Contains(*state.Pointer)

	if !qualifies {
		t.triggered = false
		return
	}
	if t.triggered {
		return
	}

	t.triggered = true
	if t.action != nil {
		t.action()
	}
}

// TouchTap fires the action for an ordinary touch tap. Touch and
// pointer are independent trigger paths into the same action; a touch
// tap neither consults nor disturbs the pointer latch.
func (t *Tap) TouchTap() {
	if !t.enableTouch || t.action == nil {
		return
	}
	t.action()
}

// Triggered reports whether the pointer latch is currently set.
func (t *Tap) Triggered() bool {
	return t.triggered
}
