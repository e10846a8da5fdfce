// Package pose turns raw hand landmark samples into a conditioned
// pointer/pinch signal: per-frame rejection gates, the derived pointer
// position, and the observable state all interactions consume.
package pose

import (
	"github.com/ayusman/mudra/internal/geom"
	"github.com/ayusman/mudra/internal/landmark"
)

// Default thresholds, all in normalized [0,1] units so they are
// resolution-independent.
const (
	DefaultPinchDistance = 0.05
	DefaultHandSize      = 0.2
	DefaultConfidence    = 0.5
)

// Thresholds holds the tunable gates of the pose filter.
type Thresholds struct {
	// PinchDistance is the maximum index-to-thumb distance that still
	// counts as a pinch.
	PinchDistance float64 `json:"pinch_distance"`

	// HandSize is the minimum index-to-wrist distance; smaller hands
	// are too far away to measure reliably and are rejected.
	HandSize float64 `json:"hand_size"`

	// Confidence is the minimum per-joint detection confidence for the
	// index and thumb tips.
	Confidence float64 `json:"confidence"`
}

// DefaultThresholds returns the standard filter thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		PinchDistance: DefaultPinchDistance,
		HandSize:      DefaultHandSize,
		Confidence:    DefaultConfidence,
	}
}

// Rejection identifies which gate rejected a sample, if any.
type Rejection int

const (
	// Accepted means the sample passed every gate.
	Accepted Rejection = iota
	// RejectedMissingJoints means one of index tip, thumb tip or wrist
	// was absent from the sample.
	RejectedMissingJoints
	// RejectedLowConfidence means a fingertip confidence fell at or
	// below the confidence threshold.
	RejectedLowConfidence
	// RejectedHandTooSmall means the index-to-wrist span fell under the
	// hand size threshold.
	RejectedHandTooSmall
)

// String returns a human-readable name for the rejection reason.
func (r Rejection) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case RejectedMissingJoints:
		return "missing joints"
	case RejectedLowConfidence:
		return "low confidence"
	case RejectedHandTooSmall:
		return "hand too small"
	default:
		return "unknown"
	}
}

// Verdict is the outcome of evaluating one sample. Pointer is the
// midpoint of index and thumb tips in normalized space, nil when any
// gate rejected the sample. Pinch is never true with a nil pointer.
type Verdict struct {
	Pointer   *geom.Point
	Pinch     bool
	Rejection Rejection
}

// gate inspects a sample and either accepts it or names the reason it
// must be rejected.
type gate func(s landmark.Sample, t Thresholds) Rejection

// gates run in order; the first rejection short-circuits the chain.
var gates = []gate{presenceGate, confidenceGate, scaleGate}

func presenceGate(s landmark.Sample, t Thresholds) Rejection {
	if s.IndexTip == nil || s.ThumbTip == nil || s.Wrist == nil {
		return RejectedMissingJoints
	}
	return Accepted
}

func confidenceGate(s landmark.Sample, t Thresholds) Rejection {
	if s.IndexTip.Confidence <= t.Confidence || s.ThumbTip.Confidence <= t.Confidence {
		return RejectedLowConfidence
	}
	return Accepted
}

func scaleGate(s landmark.Sample, t Thresholds) Rejection {
	if geom.Distance(s.IndexTip.Position(), s.Wrist.Position()) < t.HandSize {
		return RejectedHandTooSmall
	}
	return Accepted
}

// Evaluate runs one sample through the rejection gates and, when all
// pass, derives the pointer and pinch state. Each frame is evaluated
// independently; there is no smoothing or temporal filtering here.
// The pointer is always emitted once the gates pass, independent of
// whether the pinch is active.
func Evaluate(s landmark.Sample, t Thresholds) Verdict {
	for _, g := range gates {
		if rej := g(s, t); rej != Accepted {
			return Verdict{Rejection: rej}
		}
	}

	index := s.IndexTip.Position()
	thumb := s.ThumbTip.Position()

	mid := geom.Midpoint(index, thumb)
	return Verdict{
		Pointer:   &mid,
		Pinch:     geom.Distance(index, thumb) < t.PinchDistance,
		Rejection: Accepted,
	}
}
