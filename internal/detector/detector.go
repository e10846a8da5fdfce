// Package detector provides the hand landmark detection boundary: the
// perception collaborator that turns camera frames into per-frame
// landmark samples.
package detector

import (
	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/landmark"
)

// Detector defines the interface for hand landmark detection
// implementations. The system tracks at most one hand.
type Detector interface {
	// Detect analyzes a video frame and returns the observed landmark
	// sample for the most prominent hand. An empty sample means no
	// hand was found; a failed detection pass is surfaced to the
	// pipeline the same way.
	Detect(frame *gocv.Mat) (landmark.Sample, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds configuration options for hand detection.
type Config struct {
	// MinDetectionConf is the minimum detection confidence threshold (0.0-1.0).
	MinDetectionConf float64

	// MinTrackingConf is the minimum tracking confidence threshold (0.0-1.0).
	MinTrackingConf float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		MinDetectionConf: 0.5,
		MinTrackingConf:  0.5,
	}
}
