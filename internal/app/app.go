// Package app wires the mudra pointer pipeline together: camera
// capture, hand landmark detection, pose filtering, the shared pointer
// signal, and the interaction bindings that consume it.
package app

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/geom"
	"github.com/ayusman/mudra/internal/interaction"
	"github.com/ayusman/mudra/internal/plugin"
	"github.com/ayusman/mudra/internal/pose"
	"github.com/ayusman/mudra/internal/store"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate while the activity gate is closed.
	IdleFPS = 5
	// ActiveFPS is the frame rate during active tracking.
	ActiveFPS = 15
	// IdleTimeoutMs is how long the scene must stay still before the
	// pipeline drops back to idle mode.
	IdleTimeoutMs = 2000
)

// Config holds configuration options for the application.
type Config struct {
	Store        *store.Store
	PluginDir    string
	CameraID     int
	ScreenSize   geom.Size
	Thresholds   pose.Thresholds
	MotionThresh float64
}

// App orchestrates the pointer pipeline and owns the interaction
// bindings loaded from the store.
type App struct {
	config     Config
	camera     capture.Camera
	activity   *capture.ActivityGate
	detector   detector.Detector
	signal     *pose.Signal
	mailbox    *sampleMailbox
	pluginMgr  *plugin.Manager
	pluginExec *plugin.Executor

	mu         sync.RWMutex
	thresholds pose.Thresholds
	screen     geom.Size
	enabled    bool
	stopCh     chan struct{}
	trackers   map[string]*interaction.RegionTracker
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // Default threshold: 1% pixel change
	}

	thresholds := config.Thresholds
	if thresholds == (pose.Thresholds{}) {
		thresholds = pose.DefaultThresholds()
	}

	screen := config.ScreenSize
	if screen.Width <= 0 || screen.Height <= 0 {
		screen = geom.Size{Width: 1920, Height: 1080}
	}

	a := &App{
		config:     config,
		camera:     capture.NewCamera(config.CameraID),
		activity:   capture.NewActivityGate(motionThreshold),
		signal:     pose.NewSignal(),
		mailbox:    newSampleMailbox(),
		pluginMgr:  plugin.NewManager(config.PluginDir),
		pluginExec: plugin.NewExecutor(5000), // 5 second timeout for plugin execution
		thresholds: thresholds,
		screen:     screen,
		trackers:   make(map[string]*interaction.RegionTracker),
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// SetEnabled enables or disables pointer tracking.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether pointer tracking is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetCamera sets the camera implementation to use.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// Thresholds returns the active filter thresholds.
func (a *App) Thresholds() pose.Thresholds {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.thresholds
}

// SetThresholds replaces the active filter thresholds and persists
// them when a store is configured.
func (a *App) SetThresholds(t pose.Thresholds) error {
	a.mu.Lock()
	a.thresholds = t
	a.mu.Unlock()

	if a.config.Store == nil {
		return nil
	}
	return a.config.Store.Settings().SetThresholds(t)
}

// ScreenSize returns the screen dimensions pointer positions map to.
func (a *App) ScreenSize() geom.Size {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.screen
}

// Signal returns the shared pointer signal.
func (a *App) Signal() *pose.Signal {
	return a.signal
}

// BindTap creates a tap interaction over the given region and
// subscribes it to the pointer signal.
func (a *App) BindTap(region *interaction.RegionTracker, action func(), cfg interaction.TapConfig) *interaction.Tap {
	tap := interaction.NewTap(region, action, cfg)
	a.signal.Subscribe(tap.Observe)
	return tap
}

// BindDrag creates a drag interaction over the given region and
// subscribes it to the pointer signal.
func (a *App) BindDrag(region *interaction.RegionTracker, cfg interaction.DragConfig) *interaction.Drag {
	drag := interaction.NewDrag(region, cfg)
	a.signal.Subscribe(drag.Observe)
	return drag
}

// BindDraw creates a draw interaction over the given region and
// subscribes it to the pointer signal.
func (a *App) BindDraw(region *interaction.RegionTracker) *interaction.Draw {
	draw := interaction.NewDraw(region)
	a.signal.Subscribe(draw.Observe)
	return draw
}

// LoadSettings applies persisted settings from the store.
func (a *App) LoadSettings() error {
	if a.config.Store == nil {
		return nil
	}

	thresholds, err := a.config.Store.Settings().Thresholds()
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.thresholds = thresholds
	a.mu.Unlock()
	return nil
}

// LoadBindings instantiates the interactions persisted in the store
// and subscribes them to the pointer signal. Tap bindings with a
// configured plugin action execute it when they fire.
func (a *App) LoadBindings() error {
	if a.config.Store == nil {
		return nil
	}

	bindings, err := a.config.Store.Bindings().List()
	if err != nil {
		return err
	}

	for _, b := range bindings {
		region := interaction.NewRegionTracker()
		region.OnRegionChanged(b.Region)

		a.mu.Lock()
		a.trackers[b.ID] = region
		a.mu.Unlock()

		switch b.Kind {
		case store.KindTap:
			binding := b
			a.BindTap(region, func() { a.fireAction(binding) }, interaction.TapConfig{EnableTouch: b.EnableTouch})
		case store.KindDrag:
			a.BindDrag(region, interaction.DragConfig{AllowTouchDrag: b.AllowTouchDrag})
		case store.KindDraw:
			a.BindDraw(region)
		default:
			log.Printf("Skipping binding %s with unknown kind %q", b.ID, b.Kind)
		}
	}

	log.Printf("Loaded %d bindings from database", len(bindings))
	return nil
}

// RegionTracker returns the tracker for a stored binding, so layout
// updates can be routed to it.
func (a *App) RegionTracker(bindingID string) (*interaction.RegionTracker, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	tracker, ok := a.trackers[bindingID]
	return tracker, ok
}

// fireAction runs a binding's plugin action. It is called on the
// coordination goroutine, so the plugin executes on its own goroutine.
func (a *App) fireAction(b *store.Binding) {
	log.Printf("Tap fired for binding: %s", b.Name)

	if b.PluginName == "" || b.ActionName == "" {
		return
	}

	p, err := a.pluginMgr.Get(b.PluginName)
	if err != nil {
		log.Printf("Plugin %q not available for binding %s: %v", b.PluginName, b.Name, err)
		return
	}

	go func() {
		req := &plugin.Request{
			Action:  b.ActionName,
			Binding: b.Name,
			Config:  json.RawMessage("{}"),
		}
		if _, err := a.pluginExec.Execute(p, req); err != nil {
			log.Printf("Plugin action %s/%s failed: %v", b.PluginName, b.ActionName, err)
		}
	}()
}

// DiscoverPlugins scans the plugin directory and loads available plugins.
func (a *App) DiscoverPlugins() error {
	return a.pluginMgr.Discover()
}

// Start begins the capture and coordination loops.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}

	a.camera.SetFPS(IdleFPS)

	a.stopCh = make(chan struct{})
	go a.runCapture(a.stopCh)
	go a.runCoordinator(a.stopCh)

	log.Println("Pointer pipeline started")
	return nil
}

// Stop halts the pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.activity.Close()

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Pointer pipeline stopped")
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.camera
}

// ActivityGate returns the activity gate instance.
func (a *App) ActivityGate() *capture.ActivityGate {
	return a.activity
}

// PluginManager returns the plugin manager.
func (a *App) PluginManager() *plugin.Manager {
	return a.pluginMgr
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}
