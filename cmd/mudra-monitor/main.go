package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayusman/mudra/internal/tui"
)

func main() {
	addr := "localhost:8488"
	if len(os.Args) > 1 {
		addr = os.Args[1]
	}

	m := tui.New(addr)
	if err := tea.NewProgram(m, tea.WithAltScreen()).Start(); err != nil {
		log.Fatal(err)
	}
}
