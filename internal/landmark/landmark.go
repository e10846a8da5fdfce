// Package landmark defines the raw hand observations delivered by the
// perception collaborator, one sample per processed camera frame.
package landmark

import "github.com/ayusman/mudra/internal/geom"

// MediaPipe hand landmark indices for the joints this system consumes.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	WristIndex    = 0
	ThumbTipIndex = 4
	IndexTipIndex = 8
	NumLandmarks  = 21
)

// Point is a single tracked joint in normalized coordinates (0..1,
// origin bottom-left) with the detector's confidence for that joint.
type Point struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Confidence float64 `json:"confidence"`
}

// Position returns the joint position without its confidence.
func (p Point) Position() geom.Point {
	return geom.Point{X: p.X, Y: p.Y}
}

// Sample is one frame's raw observation. Any joint may be nil when the
// detector found no hand, or found fewer joints than required. Samples
// are constructed once per frame, consumed synchronously, and
// discarded.
type Sample struct {
	IndexTip *Point `json:"index_tip,omitempty"`
	ThumbTip *Point `json:"thumb_tip,omitempty"`
	Wrist    *Point `json:"wrist,omitempty"`
}

// Empty reports whether the sample carries no joints at all, the shape
// a frame with no detected hand arrives in.
func (s Sample) Empty() bool {
	return s.IndexTip == nil && s.ThumbTip == nil && s.Wrist == nil
}
