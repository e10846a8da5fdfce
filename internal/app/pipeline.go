package app

import (
	"log"
	"time"

	"github.com/ayusman/mudra/internal/geom"
	"github.com/ayusman/mudra/internal/landmark"
	"github.com/ayusman/mudra/internal/pose"
)

// runCapture is the frame acquisition loop. It reads frames at the
// current frame rate, runs the activity gate and the hand detector,
// and deposits each frame's landmark sample into the mailbox. Frames
// that arrive while the coordinator is still busy are overwritten in
// the mailbox, never queued.
//
// Mode transitions:
//  1. Start in idle mode (IdleFPS)
//  2. On scene activity, switch to active mode (ActiveFPS)
//  3. After IdleTimeoutMs without activity, drop back to idle
func (a *App) runCapture(stopCh <-chan struct{}) {
	activeMode := false
	lastActivity := time.Now()

	frameInterval := time.Second / time.Duration(IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				continue
			}

			frame, err := a.Camera().ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			active, _ := a.activity.Step(frame)

			if active {
				lastActivity = time.Now()
				if !activeMode {
					activeMode = true
					a.Camera().SetFPS(ActiveFPS)
					frameInterval = time.Second / time.Duration(ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode {
				if time.Since(lastActivity) > time.Duration(IdleTimeoutMs)*time.Millisecond {
					activeMode = false
					a.Camera().SetFPS(IdleFPS)
					frameInterval = time.Second / time.Duration(IdleFPS)
					ticker.Reset(frameInterval)
					// Settle the pointer to null so no interaction is
					// left engaged while the scene is still
					a.mailbox.Put(landmark.Sample{})
					log.Println("Switched to idle mode")
				}
			}

			if !activeMode {
				frame.Close()
				continue
			}

			sample, err := a.Detector().Detect(frame)
			frame.Close()

			if err != nil {
				// A failed detection pass is treated as an absent hand
				log.Printf("Error detecting hand: %v", err)
				sample = landmark.Sample{}
			}

			a.mailbox.Put(sample)
		}
	}
}

// runCoordinator is the single logical thread that owns the pointer
// signal. It drains the mailbox, evaluates each sample through the
// pose filter, maps the normalized pointer to screen space, and
// publishes pointer and pinch as one atomic state. Every interaction
// observer runs here, in subscription order.
func (a *App) runCoordinator(stopCh <-chan struct{}) {
	for {
		select {
		case <-stopCh:
			// A final null update lets the interactions settle to idle
			a.signal.Publish(pose.State{})
			return
		case <-a.mailbox.Ready():
			for {
				sample, ok := a.mailbox.Take()
				if !ok {
					break
				}

				verdict := pose.Evaluate(sample, a.Thresholds())

				var state pose.State
				if verdict.Pointer != nil {
					p := geom.ToScreen(*verdict.Pointer, a.ScreenSize())
					state.Pointer = &p
					state.Pinch = verdict.Pinch
				}

				a.signal.Publish(state)
			}
		}
	}
}
