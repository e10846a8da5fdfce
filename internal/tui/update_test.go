package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestUpdate_PointerMsg(t *testing.T) {
	m := New("localhost:8488")

	next, _ := m.Update(pointerMsg{X: 640, Y: 360, Pinch: true, HasHand: true})
	got := next.(Model)

	if !got.hasHand {
		t.Error("expected hasHand true")
	}
	if got.pointerX != 640 || got.pointerY != 360 {
		t.Errorf("expected pointer (640, 360), got (%v, %v)", got.pointerX, got.pointerY)
	}
	if !got.pinch {
		t.Error("expected pinch true")
	}
	if got.updates != 1 {
		t.Errorf("expected 1 update, got %d", got.updates)
	}
}

func TestUpdate_DisconnectClearsHand(t *testing.T) {
	m := New("localhost:8488")

	next, _ := m.Update(pointerMsg{X: 10, Y: 10, HasHand: true})
	next, _ = next.(Model).Update(disconnectedMsg{})
	got := next.(Model)

	if got.connected {
		t.Error("expected connected false")
	}
	if got.hasHand {
		t.Error("expected hasHand cleared after disconnect")
	}
}

func TestUpdate_BindingsMsg(t *testing.T) {
	m := New("localhost:8488")

	rows := []bindingRow{
		{ID: "1", Name: "ok_button", Kind: "tap", Region: "100,100 200x80"},
		{ID: "2", Name: "canvas", Kind: "draw", Region: "0,0 640x480"},
	}
	next, _ := m.Update(bindingsMsg{rows: rows})
	got := next.(Model)

	if len(got.bindings) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(got.bindings))
	}
	if got.tbl.Rows()[0][0] != "ok_button" {
		t.Errorf("expected first row 'ok_button', got %q", got.tbl.Rows()[0][0])
	}
}

func TestUpdate_QuitClosesClient(t *testing.T) {
	m := New("localhost:8488")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("expected tea.Quit, got %v", msg)
	}
}
