package plugin

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// writeScriptPlugin creates an executable shell script plugin.
func writeScriptPlugin(t *testing.T, dir, name, script string) *Plugin {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell script plugins not supported on windows")
	}

	pluginDir := filepath.Join(dir, name)
	if err := os.MkdirAll(pluginDir, 0755); err != nil {
		t.Fatalf("failed to create plugin dir: %v", err)
	}

	execPath := filepath.Join(pluginDir, name)
	if err := os.WriteFile(execPath, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatalf("failed to write plugin script: %v", err)
	}

	return &Plugin{
		Manifest:   Manifest{Name: name, Executable: name},
		Path:       pluginDir,
		Executable: execPath,
	}
}

func TestExecutor_Execute(t *testing.T) {
	p := writeScriptPlugin(t, t.TempDir(), "echoer",
		`echo '{"success": true, "data": {"done": 1}}'`)

	e := NewExecutor(5000)
	resp, err := e.Execute(p, &Request{Action: "run", Binding: "launch-button"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !resp.Success {
		t.Error("Success = false, want true")
	}
	if !strings.Contains(string(resp.Data), "done") {
		t.Errorf("Data = %s, want to contain \"done\"", resp.Data)
	}
}

func TestExecutor_PluginFailure(t *testing.T) {
	p := writeScriptPlugin(t, t.TempDir(), "failer",
		`echo "boom" >&2; exit 1`)

	e := NewExecutor(5000)
	_, err := e.Execute(p, &Request{Action: "run"})
	if err == nil {
		t.Fatal("Execute() expected error for failing plugin")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error %q should include the plugin's stderr", err)
	}
}

func TestExecutor_InvalidResponse(t *testing.T) {
	p := writeScriptPlugin(t, t.TempDir(), "garbler", `echo "not json"`)

	e := NewExecutor(5000)
	if _, err := e.Execute(p, &Request{Action: "run"}); err == nil {
		t.Fatal("Execute() expected error for non-JSON output")
	}
}

func TestExecutor_Timeout(t *testing.T) {
	p := writeScriptPlugin(t, t.TempDir(), "sleeper", `sleep 10`)

	e := NewExecutor(100)
	_, err := e.Execute(p, &Request{Action: "run"})
	if err == nil {
		t.Fatal("Execute() expected timeout error")
	}
	if !strings.Contains(err.Error(), "timeout") {
		t.Errorf("error = %q, want timeout", err)
	}
}

func TestExecutor_RequestReachesPlugin(t *testing.T) {
	// The plugin reads its request from stdin and echoes the binding
	// name back in its data
	p := writeScriptPlugin(t, t.TempDir(), "reflector",
		`input=$(cat); echo "{\"success\": true, \"data\": $input}"`)

	e := NewExecutor(5000)
	resp, err := e.Execute(p, &Request{Action: "notify", Binding: "canvas"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(string(resp.Data), `"binding":"canvas"`) {
		t.Errorf("Data = %s, want to contain the request binding", resp.Data)
	}
}
