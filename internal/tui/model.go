// Package tui implements a terminal monitor for a running mudra
// daemon. It subscribes to the pointer websocket stream and polls the
// bindings API, so interactions can be verified without the browser UI.
package tui

import (
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

type Model struct {
	width  int
	height int

	addr   string
	status string

	helpVisible bool

	// live pointer state
	connected bool
	hasHand   bool
	pointerX  float64
	pointerY  float64
	pinch     bool
	updates   int

	// bindings table
	tbl      table.Model
	bindings []bindingRow

	client *streamClient
}

type bindingRow struct {
	ID     string
	Name   string
	Kind   string
	Region string
}

// New creates a monitor model that talks to the daemon at addr, e.g.
// "localhost:8488".
func New(addr string) Model {
	cols := []table.Column{
		{Title: "Name", Width: 20},
		{Title: "Kind", Width: 6},
		{Title: "Region", Width: 28},
	}
	tbl := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(8),
	)

	return Model{
		addr:        addr,
		status:      "connecting to " + addr,
		helpVisible: true,
		tbl:         tbl,
		client:      newStreamClient(addr),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.client.connect(), fetchBindings(m.addr))
}
