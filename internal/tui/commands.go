package tui

import (
	"time"

	"github.com/akyairhashvil/countdown/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// TickMsg is delivered once per interval to the tick source armed with ID.
type TickMsg struct {
	ID   uint64
	Time time.Time
}

func tickCmd(id uint64) tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg { return TickMsg{ID: id, Time: t} })
}
