package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/geom"
	"github.com/ayusman/mudra/internal/pose"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/tray"
)

func main() {
	fmt.Println("Mudra - Hand Pointer")

	// Initialize the store
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dataDir := filepath.Join(homeDir, ".mudra")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	dbPath := filepath.Join(dataDir, "mudra.db")
	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	// Build the application
	a := app.New(app.Config{
		Store:     st,
		PluginDir: filepath.Join(dataDir, "plugins"),
	})

	if err := a.LoadSettings(); err != nil {
		log.Printf("Failed to load settings: %v", err)
	}
	if err := a.DiscoverPlugins(); err != nil {
		log.Printf("Plugin discovery failed: %v", err)
	}
	if err := a.LoadBindings(); err != nil {
		log.Printf("Failed to load bindings: %v", err)
	}

	// Tracking starts on, matching the tray's initial state.
	a.SetEnabled(true)
	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start pipeline: %v", err)
	}
	defer a.Stop()

	// Find web directory
	webDir := findWebDir()
	if webDir != "" {
		fmt.Printf("Serving static files from: %s\n", webDir)
	}

	// Configure and start server
	srv := server.New(server.Config{
		StaticDir:  webDir,
		Store:      st,
		Camera:     a.Camera(),
		Signal:     a.Signal(),
		Plugins:    a.PluginManager(),
		Thresholds: a,
		OnRegionChanged: func(id string, rect geom.Rect) {
			if tracker, ok := a.RegionTracker(id); ok {
				tracker.OnRegionChanged(rect)
				return
			}
			// New binding: reload so it gets wired into the pipeline.
			if err := a.LoadBindings(); err != nil {
				log.Printf("Failed to reload bindings: %v", err)
			}
		},
	})

	addr := ":8488"
	go func() {
		fmt.Printf("Starting server on %s\n", addr)
		if err := srv.ListenAndServe(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// The tray owns the main thread until quit.
	t := tray.New()
	t.OnToggle(func(enabled bool) {
		a.SetEnabled(enabled)
	})
	t.OnQuit(func() {
		a.Stop()
	})
	a.Signal().Subscribe(func(s pose.State) {
		if s.Pointer == nil {
			t.SetPointer(0, 0, false, false)
			return
		}
		t.SetPointer(s.Pointer.X, s.Pointer.Y, s.Pinch, true)
	})
	t.Run()
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.mudra/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".mudra", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
