package interaction

import "github.com/ayusman/mudra/internal/pose"

// Observer is implemented by every interaction state machine; the
// pointer signal drives them through it.
type Observer interface {
	Observe(state pose.State)
}

var (
	_ Observer = (*Tap)(nil)
	_ Observer = (*Drag)(nil)
	_ Observer = (*Draw)(nil)
)
