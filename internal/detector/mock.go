package detector

import (
	"sync"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/landmark"
)

// MockDetector is a test implementation of the Detector interface. It
// plays back a scripted sequence of samples, one per Detect call.
type MockDetector struct {
	mu      sync.Mutex
	samples []landmark.Sample
	index   int
	loop    bool
	err     error
}

// NewMockDetector creates a MockDetector that reports no hand until a
// sample or sequence is set.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetSample makes every Detect call return the given sample.
func (m *MockDetector) SetSample(s landmark.Sample) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.samples = []landmark.Sample{s}
	m.index = 0
	m.loop = true
}

// SetSequence scripts the samples returned by successive Detect calls.
// With loop set, the sequence repeats; otherwise Detect reports no
// hand once the sequence is exhausted.
func (m *MockDetector) SetSequence(samples []landmark.Sample, loop bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.samples = samples
	m.index = 0
	m.loop = loop
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Detect returns the next scripted sample or error.
func (m *MockDetector) Detect(frame *gocv.Mat) (landmark.Sample, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return landmark.Sample{}, m.err
	}
	if len(m.samples) == 0 {
		return landmark.Sample{}, nil
	}

	if m.index >= len(m.samples) {
		if !m.loop {
			return landmark.Sample{}, nil
		}
		m.index = 0
	}

	s := m.samples[m.index]
	m.index++
	return s, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}
