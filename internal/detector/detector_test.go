package detector

import (
	"errors"
	"testing"

	"github.com/ayusman/mudra/internal/landmark"
)

func TestMockDetector_DefaultReportsNoHand(t *testing.T) {
	m := NewMockDetector()

	sample, err := m.Detect(nil)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if !sample.Empty() {
		t.Errorf("sample = %+v, want empty", sample)
	}
}

func TestMockDetector_SetSample(t *testing.T) {
	m := NewMockDetector()
	m.SetSample(landmark.PinchSample())

	for i := 0; i < 3; i++ {
		sample, err := m.Detect(nil)
		if err != nil {
			t.Fatalf("Detect() error = %v", err)
		}
		if sample.IndexTip == nil {
			t.Fatalf("call %d: sample missing index tip", i)
		}
	}
}

func TestMockDetector_SequenceExhausts(t *testing.T) {
	m := NewMockDetector()
	m.SetSequence([]landmark.Sample{
		landmark.PinchSample(),
		landmark.OpenHandSample(),
	}, false)

	first, _ := m.Detect(nil)
	second, _ := m.Detect(nil)
	third, _ := m.Detect(nil)

	if first.Empty() || second.Empty() {
		t.Error("scripted samples should not be empty")
	}
	// Without looping, the exhausted sequence reports no hand
	if !third.Empty() {
		t.Errorf("third sample = %+v, want empty", third)
	}
}

func TestMockDetector_SequenceLoops(t *testing.T) {
	m := NewMockDetector()
	m.SetSequence([]landmark.Sample{landmark.PinchSample()}, true)

	for i := 0; i < 5; i++ {
		sample, _ := m.Detect(nil)
		if sample.Empty() {
			t.Fatalf("call %d: sample empty, want looped pinch sample", i)
		}
	}
}

func TestMockDetector_SetError(t *testing.T) {
	m := NewMockDetector()
	wantErr := errors.New("camera unplugged")
	m.SetError(wantErr)

	_, err := m.Detect(nil)
	if !errors.Is(err, wantErr) {
		t.Errorf("Detect() error = %v, want %v", err, wantErr)
	}
}

func TestJSONHand_ToSample(t *testing.T) {
	hand := jsonHand{Score: 0.9}
	hand.Points = make([]jsonPoint, landmark.NumLandmarks)
	hand.Points[landmark.WristIndex] = jsonPoint{X: 0.5, Y: 0.8}
	hand.Points[landmark.ThumbTipIndex] = jsonPoint{X: 0.52, Y: 0.4, Confidence: 0.7}
	hand.Points[landmark.IndexTipIndex] = jsonPoint{X: 0.5, Y: 0.4}

	sample := hand.toSample()

	if sample.Wrist == nil || sample.ThumbTip == nil || sample.IndexTip == nil {
		t.Fatal("expected all three joints present")
	}

	// The service's top-left Y is flipped into bottom-left space
	if sample.Wrist.Y != 0.2 {
		t.Errorf("wrist Y = %v, want 0.2", sample.Wrist.Y)
	}

	// Per-point confidence is kept; joints without one inherit the
	// hand score
	if sample.ThumbTip.Confidence != 0.7 {
		t.Errorf("thumb confidence = %v, want 0.7", sample.ThumbTip.Confidence)
	}
	if sample.IndexTip.Confidence != 0.9 {
		t.Errorf("index confidence = %v, want 0.9", sample.IndexTip.Confidence)
	}
}

func TestJSONHand_ToSample_TruncatedPoints(t *testing.T) {
	// A hand with fewer points than the fingertip indices yields nil
	// joints, which the pose filter rejects downstream
	hand := jsonHand{Score: 0.9, Points: make([]jsonPoint, 2)}

	sample := hand.toSample()
	if sample.IndexTip != nil || sample.ThumbTip != nil {
		t.Errorf("sample = %+v, want nil fingertips", sample)
	}
	if sample.Wrist == nil {
		t.Error("wrist should be present")
	}
}

func TestBestHand(t *testing.T) {
	if bestHand(nil) != nil {
		t.Error("bestHand(nil) should be nil")
	}

	hands := []jsonHand{{Score: 0.4}, {Score: 0.9}, {Score: 0.6}}
	best := bestHand(hands)
	if best == nil || best.Score != 0.9 {
		t.Errorf("bestHand picked %+v, want score 0.9", best)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MinDetectionConf != 0.5 || cfg.MinTrackingConf != 0.5 {
		t.Errorf("DefaultConfig() = %+v, want 0.5/0.5", cfg)
	}
}
