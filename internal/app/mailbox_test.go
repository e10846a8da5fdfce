package app

import (
	"testing"

	"github.com/ayusman/mudra/internal/landmark"
)

func TestSampleMailbox_PutTake(t *testing.T) {
	m := newSampleMailbox()

	// Empty mailbox has nothing to take
	if _, ok := m.Take(); ok {
		t.Fatal("Take() on empty mailbox returned a sample")
	}

	m.Put(landmark.PinchSample())

	got, ok := m.Take()
	if !ok {
		t.Fatal("Take() returned no sample after Put")
	}
	if got.IndexTip == nil {
		t.Error("sample lost its joints through the mailbox")
	}

	// The slot is consumed
	if _, ok := m.Take(); ok {
		t.Error("Take() returned a sample twice")
	}
}

func TestSampleMailbox_OverwritesLateFrames(t *testing.T) {
	m := newSampleMailbox()

	// Two Puts with no Take in between: the second overwrites the
	// first, it does not queue behind it
	m.Put(landmark.PinchSample())
	m.Put(landmark.OpenHandSample())

	got, ok := m.Take()
	if !ok {
		t.Fatal("Take() returned no sample")
	}

	open := landmark.OpenHandSample()
	if got.IndexTip == nil || got.IndexTip.X != open.IndexTip.X {
		t.Error("Take() returned the overwritten sample, want the freshest one")
	}
	if _, ok := m.Take(); ok {
		t.Error("overwritten sample still waiting in the mailbox")
	}
}

func TestSampleMailbox_ReadySignal(t *testing.T) {
	m := newSampleMailbox()

	select {
	case <-m.Ready():
		t.Fatal("Ready() fired before any Put")
	default:
	}

	m.Put(landmark.Sample{})
	m.Put(landmark.Sample{})

	// Several Puts collapse into one ready signal
	select {
	case <-m.Ready():
	default:
		t.Fatal("Ready() did not fire after Put")
	}
	select {
	case <-m.Ready():
		t.Error("Ready() fired twice for collapsed Puts")
	default:
	}
}
