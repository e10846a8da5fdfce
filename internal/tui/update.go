package tui

import (
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.client.close()
			return m, tea.Quit
		case "r":
			m.status = "refreshing bindings"
			return m, fetchBindings(m.addr)
		case "h":
			m.helpVisible = !m.helpVisible
		}

	case connectedMsg:
		m.connected = true
		m.status = "connected to " + m.addr
		return m, m.client.readNext()

	case disconnectedMsg:
		m.connected = false
		m.hasHand = false
		if msg.err != nil {
			m.status = "disconnected: " + msg.err.Error()
		} else {
			m.status = "disconnected"
		}
		return m, m.client.reconnect()

	case pointerMsg:
		m.hasHand = msg.HasHand
		m.pointerX = msg.X
		m.pointerY = msg.Y
		m.pinch = msg.Pinch
		m.updates++
		return m, m.client.readNext()

	case bindingsMsg:
		m.bindings = msg.rows
		rows := make([]table.Row, 0, len(msg.rows))
		for _, b := range msg.rows {
			rows = append(rows, table.Row{b.Name, b.Kind, b.Region})
		}
		m.tbl.SetRows(rows)
		m.status = "bindings loaded"

	case bindingsErrMsg:
		m.status = "bindings error: " + msg.err.Error()
	}

	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}
