package landmark

// Preset samples for tests and the mock detector. Coordinates are in
// normalized space with the wrist low in the frame and the fingertips
// above it, the way an upright hand facing the camera is observed.

// PinchSample returns a well-detected hand with index and thumb tips
// close enough together to register as a pinch.
func PinchSample() Sample {
	return Sample{
		IndexTip: &Point{X: 0.50, Y: 0.60, Confidence: 0.95},
		ThumbTip: &Point{X: 0.52, Y: 0.60, Confidence: 0.93},
		Wrist:    &Point{X: 0.55, Y: 0.30, Confidence: 0.90},
	}
}

// OpenHandSample returns a well-detected hand with the index and thumb
// tips spread apart, producing a pointer without a pinch.
func OpenHandSample() Sample {
	return Sample{
		IndexTip: &Point{X: 0.45, Y: 0.65, Confidence: 0.95},
		ThumbTip: &Point{X: 0.60, Y: 0.55, Confidence: 0.92},
		Wrist:    &Point{X: 0.50, Y: 0.30, Confidence: 0.90},
	}
}

// LowConfidenceSample returns a pinch pose whose fingertip confidences
// fall below the default threshold.
func LowConfidenceSample() Sample {
	return Sample{
		IndexTip: &Point{X: 0.50, Y: 0.60, Confidence: 0.30},
		ThumbTip: &Point{X: 0.52, Y: 0.60, Confidence: 0.25},
		Wrist:    &Point{X: 0.55, Y: 0.30, Confidence: 0.90},
	}
}

// DistantHandSample returns a confidently detected hand that is too far
// from the camera: the index-to-wrist span falls under the default hand
// size threshold.
func DistantHandSample() Sample {
	return Sample{
		IndexTip: &Point{X: 0.50, Y: 0.40, Confidence: 0.95},
		ThumbTip: &Point{X: 0.51, Y: 0.40, Confidence: 0.93},
		Wrist:    &Point{X: 0.52, Y: 0.30, Confidence: 0.90},
	}
}
