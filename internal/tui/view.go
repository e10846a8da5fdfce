package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#2DD4BF")
	alertFg   = lipgloss.Color("#F59E0B")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	pinchStyle = lipgloss.NewStyle().Foreground(alertFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := titleStyle.Render(" mudra ─ pointer monitor ")
	header = lipgloss.NewStyle().Width(m.width).Render(header)

	pointer := m.renderPointer()
	bindings := boxStyle.Render(
		titleStyle.Render("Bindings") + "\n" + m.tbl.View(),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, pointer, " ", bindings)

	status := dimStyle.Render(" " + m.status + " ")
	footer := lipgloss.NewStyle().Width(m.width).Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp()),
	)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(m.width).Height(m.height).Render(ui)
}

func (m Model) renderPointer() string {
	var lines []string

	if !m.connected {
		lines = append(lines, dimStyle.Render("stream offline"))
	} else if !m.hasHand {
		lines = append(lines, dimStyle.Render("no hand"))
	} else {
		lines = append(lines, fmt.Sprintf("x: %8.1f", m.pointerX))
		lines = append(lines, fmt.Sprintf("y: %8.1f", m.pointerY))
		if m.pinch {
			lines = append(lines, pinchStyle.Render("PINCH"))
		} else {
			lines = append(lines, dimStyle.Render("open"))
		}
	}
	lines = append(lines, "")
	lines = append(lines, dimStyle.Render(fmt.Sprintf("%d updates", m.updates)))

	return boxStyle.Width(18).Render(
		titleStyle.Render("Pointer") + "\n" + strings.Join(lines, "\n"),
	)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"r refresh",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
