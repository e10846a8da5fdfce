package capture

import (
	"image"
	"sync"

	"gocv.io/x/gocv"
)

// Activity detection constants.
const (
	// blurKernel is the Gaussian blur kernel size used for noise
	// reduction before differencing.
	blurKernel = 21
	// diffThreshold is the per-pixel binary threshold applied to the
	// frame difference.
	diffThreshold = 25
)

// ActivityGate decides whether anything is moving in front of the
// camera by differencing consecutive blurred grayscale frames. The
// pipeline idles at a low frame rate until the gate opens.
type ActivityGate struct {
	threshold float64
	baseline  gocv.Mat
	primed    bool
	mu        sync.Mutex
}

// NewActivityGate creates a gate that opens when at least threshold
// percent of pixels changed between frames (1.0 means 1%).
func NewActivityGate(threshold float64) *ActivityGate {
	return &ActivityGate{
		threshold: threshold,
		baseline:  gocv.NewMat(),
	}
}

// Step feeds one frame through the gate. It returns whether the scene
// is active and the percentage of pixels that changed. The first frame
// primes the baseline and always reports inactive.
func (g *ActivityGate) Step(frame *gocv.Mat) (bool, float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if frame == nil || frame.Empty() {
		return false, 0
	}

	gray := gocv.NewMat()
	defer gray.Close()
	if frame.Channels() > 1 {
		gocv.CvtColor(*frame, &gray, gocv.ColorBGRToGray)
	} else {
		frame.CopyTo(&gray)
	}

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(gray, &blurred, image.Point{X: blurKernel, Y: blurKernel}, 0, 0, gocv.BorderDefault)

	if !g.primed {
		blurred.CopyTo(&g.baseline)
		g.primed = true
		return false, 0
	}

	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(blurred, g.baseline, &diff)

	mask := gocv.NewMat()
	defer mask.Close()
	gocv.Threshold(diff, &mask, diffThreshold, 255, gocv.ThresholdBinary)

	changed := float64(gocv.CountNonZero(mask)) / float64(mask.Rows()*mask.Cols()) * 100.0

	blurred.CopyTo(&g.baseline)

	return changed > g.threshold, changed
}

// Reset clears the baseline so the next frame primes the gate again.
func (g *ActivityGate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.baseline.Empty() {
		g.baseline.Close()
		g.baseline = gocv.NewMat()
	}
	g.primed = false
}

// SetThreshold updates the change percentage threshold. Non-positive
// values are ignored.
func (g *ActivityGate) SetThreshold(threshold float64) {
	if threshold <= 0 {
		return
	}
	g.mu.Lock()
	g.threshold = threshold
	g.mu.Unlock()
}

// Close releases the gate's resources.
func (g *ActivityGate) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.baseline.Empty() {
		g.baseline.Close()
		g.baseline = gocv.NewMat()
	}
	g.primed = false
}
