package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/geom"
	"github.com/ayusman/mudra/internal/interaction"
	"github.com/ayusman/mudra/internal/landmark"
	"github.com/ayusman/mudra/internal/pose"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
)

func TestE2E_CompleteWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "data.db")

	s, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	application := app.New(app.Config{
		Store:      s,
		PluginDir:  filepath.Join(tmpDir, "plugins"),
		ScreenSize: geom.Size{Width: 1000, Height: 500},
	})
	application.SetDetector(detector.NewMockDetector())

	srv := server.New(server.Config{
		Store:      s,
		Signal:     application.Signal(),
		Thresholds: application,
	})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	client := ts.Client()

	var bindingID string

	t.Run("CreateBinding", func(t *testing.T) {
		resp, err := client.Post(
			ts.URL+"/api/bindings",
			"application/json",
			strings.NewReader(`{
				"name": "canvas",
				"kind": "draw",
				"region": {"x": 400, "y": 100, "width": 250, "height": 200}
			}`),
		)
		if err != nil {
			t.Fatalf("create binding error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusCreated)
		}

		var created struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
			t.Fatalf("decode create response: %v", err)
		}
		bindingID = created.ID
	})

	t.Run("LoadBindings", func(t *testing.T) {
		if err := application.LoadBindings(); err != nil {
			t.Fatalf("LoadBindings() error = %v", err)
		}
		if _, ok := application.RegionTracker(bindingID); !ok {
			t.Fatal("expected a region tracker for the created binding")
		}
	})

	t.Run("DrawStrokeFromFixture", func(t *testing.T) {
		tracker, _ := application.RegionTracker(bindingID)
		draw := application.BindDraw(tracker)

		sequence, err := landmark.LoadSequence("drag_stroke")
		if err != nil {
			t.Fatalf("load sequence: %v", err)
		}

		screen := application.ScreenSize()
		thresholds := application.Thresholds()
		for _, sample := range sequence {
			verdict := pose.Evaluate(sample, thresholds)
			state := pose.State{Pinch: verdict.Pinch}
			if verdict.Pointer != nil {
				p := geom.ToScreen(*verdict.Pointer, screen)
				state.Pointer = &p
			}
			application.Signal().Publish(state)
		}

		// Every fixture pointer lands inside the 400..650 x 100..300
		// region, so the stroke is one connected polyline.
		elements := draw.Path().Elements()
		if len(elements) != len(sequence) {
			t.Fatalf("expected %d path elements, got %d", len(sequence), len(elements))
		}
		if elements[0].Op != interaction.MoveTo {
			t.Errorf("expected stroke to start with MoveTo, got %v", elements[0].Op)
		}
		for _, el := range elements[1:] {
			if el.Op != interaction.LineTo {
				t.Errorf("expected LineTo continuation, got %v", el.Op)
			}
		}
	})

	t.Run("PointerEndpointReflectsSignal", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/pointer")
		if err != nil {
			t.Fatalf("get pointer error = %v", err)
		}
		defer resp.Body.Close()

		var state struct {
			Pointer *geom.Point `json:"pointer"`
			Pinch   bool        `json:"pinch"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
			t.Fatalf("decode pointer response: %v", err)
		}
		if state.Pointer == nil {
			t.Fatal("expected a pointer after publishing samples")
		}
		if !state.Pinch {
			t.Error("expected pinch true for the final fixture sample")
		}
	})

	t.Run("UpdateConfig", func(t *testing.T) {
		req, err := http.NewRequest(
			http.MethodPut,
			ts.URL+"/api/config",
			strings.NewReader(`{"pinch_distance": 0.08}`),
		)
		if err != nil {
			t.Fatalf("build request: %v", err)
		}
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("update config error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}

		if got := application.Thresholds().PinchDistance; got != 0.08 {
			t.Errorf("pinch distance = %v, want 0.08", got)
		}

		// The change must also survive a reload from the store.
		persisted, err := s.Settings().Thresholds()
		if err != nil {
			t.Fatalf("load persisted thresholds: %v", err)
		}
		if persisted.PinchDistance != 0.08 {
			t.Errorf("persisted pinch distance = %v, want 0.08", persisted.PinchDistance)
		}
	})

	t.Run("APIStillWorks", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/health")
		if err != nil {
			t.Fatalf("health check error = %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("health check failed after app operations")
		}
	})
}

func TestE2E_TapBindingFiresOnce(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	tmpDir := t.TempDir()
	s, err := store.New(filepath.Join(tmpDir, "data.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	application := app.New(app.Config{
		Store:      s,
		PluginDir:  filepath.Join(tmpDir, "plugins"),
		ScreenSize: geom.Size{Width: 1000, Height: 500},
	})

	tracker := interaction.NewRegionTracker()
	tracker.OnRegionChanged(geom.Rect{
		Origin: geom.Point{X: 450, Y: 150},
		Size:   geom.Size{Width: 100, Height: 100},
	})

	fired := 0
	application.BindTap(tracker, func() { fired++ }, interaction.TapConfig{})

	pinch, err := landmark.LoadSample("pinch")
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	open, err := landmark.LoadSample("open_hand")
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}

	screen := application.ScreenSize()
	emit := func(s2 pose.State) { application.Signal().Publish(s2) }

	// Pinch held over several frames fires the action exactly once.
	verdict := pose.Evaluate(pinch, application.Thresholds())
	p := geom.ToScreen(*verdict.Pointer, screen)
	held := pose.State{Pointer: &p, Pinch: verdict.Pinch}
	for i := 0; i < 4; i++ {
		emit(held)
	}
	if fired != 1 {
		t.Fatalf("expected 1 tap, got %d", fired)
	}

	// Releasing the pinch and pinching again fires a second tap.
	openVerdict := pose.Evaluate(open, application.Thresholds())
	op := geom.ToScreen(*openVerdict.Pointer, screen)
	emit(pose.State{Pointer: &op, Pinch: openVerdict.Pinch})
	emit(held)
	if fired != 2 {
		t.Errorf("expected 2 taps after re-pinch, got %d", fired)
	}
}
