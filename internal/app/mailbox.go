package app

import (
	"sync"

	"github.com/ayusman/mudra/internal/landmark"
)

// sampleMailbox is the single-slot hand-off between the capture
// goroutine and the coordination loop. A new sample overwrites one
// that has not been taken yet; late frames are dropped, never queued,
// so the coordination loop always works on the freshest observation.
type sampleMailbox struct {
	mu      sync.Mutex
	sample  landmark.Sample
	present bool
	ready   chan struct{}
}

func newSampleMailbox() *sampleMailbox {
	return &sampleMailbox{
		ready: make(chan struct{}, 1),
	}
}

// Put deposits a sample, replacing any waiting one.
func (m *sampleMailbox) Put(s landmark.Sample) {
	m.mu.Lock()
	m.sample = s
	m.present = true
	m.mu.Unlock()

	select {
	case m.ready <- struct{}{}:
	default:
	}
}

// Take removes and returns the waiting sample, if any.
func (m *sampleMailbox) Take() (landmark.Sample, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.present {
		return landmark.Sample{}, false
	}
	m.present = false
	return m.sample, true
}

// Ready signals when a sample is waiting. The channel carries no
// backlog; one signal may cover several overwrites.
func (m *sampleMailbox) Ready() <-chan struct{} {
	return m.ready
}
