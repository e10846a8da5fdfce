// Package capture provides camera frame acquisition using GoCV
// (OpenCV) and the activity gate that keeps the pipeline cheap while
// the scene is still.
package capture

import (
	"errors"
	"sync"

	"gocv.io/x/gocv"
)

// Default camera settings.
const (
	DefaultFPS    = 10
	DefaultWidth  = 640
	DefaultHeight = 480
)

// ErrCameraNotOpen is returned when reading from a camera that is not open.
var ErrCameraNotOpen = errors.New("camera is not open")

// Camera defines the interface for camera capture implementations.
type Camera interface {
	Open() error
	Close() error
	// ReadFrame returns one frame; the caller owns the Mat and must
	// close it.
	ReadFrame() (*gocv.Mat, error)
	SetFPS(fps int)
	FPS() int
	IsOpen() bool
}

// device captures frames from a physical camera via GoCV.
type device struct {
	deviceID int
	capture  *gocv.VideoCapture
	fps      int
	open     bool
	mu       sync.Mutex
}

// NewCamera creates a Camera for the given device ID.
func NewCamera(deviceID int) Camera {
	return &device{
		deviceID: deviceID,
		fps:      DefaultFPS,
	}
}

// Open opens the camera at 640x480; the pipeline never needs more.
func (d *device) Open() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.open {
		return nil
	}

	cap, err := gocv.OpenVideoCapture(d.deviceID)
	if err != nil {
		return err
	}

	cap.Set(gocv.VideoCaptureFrameWidth, DefaultWidth)
	cap.Set(gocv.VideoCaptureFrameHeight, DefaultHeight)
	cap.Set(gocv.VideoCaptureFPS, float64(d.fps))

	d.capture = cap
	d.open = true
	return nil
}

// Close closes the camera and releases resources.
func (d *device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.open || d.capture == nil {
		d.open = false
		return nil
	}

	err := d.capture.Close()
	d.capture = nil
	d.open = false
	return err
}

// ReadFrame reads a single frame from the camera.
func (d *device) ReadFrame() (*gocv.Mat, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.open || d.capture == nil {
		return nil, ErrCameraNotOpen
	}

	mat := gocv.NewMat()
	if ok := d.capture.Read(&mat); !ok {
		mat.Close()
		return nil, errors.New("failed to read frame from camera")
	}
	if mat.Empty() {
		mat.Close()
		return nil, errors.New("captured frame is empty")
	}

	return &mat, nil
}

// SetFPS sets the capture frame rate. Non-positive values are ignored.
func (d *device) SetFPS(fps int) {
	if fps <= 0 {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.fps = fps
	if d.capture != nil {
		d.capture.Set(gocv.VideoCaptureFPS, float64(fps))
	}
}

// FPS returns the current frame rate setting.
func (d *device) FPS() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fps
}

// IsOpen reports whether the camera is open.
func (d *device) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}
