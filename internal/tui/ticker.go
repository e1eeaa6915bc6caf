package tui

import tea "github.com/charmbracelet/bubbletea"

// teaTicker is the countdown.TickSource of the interactive program. Bubble Tea
// delivers ticks as messages, so arming only records the id; the model turns it
// into a tea.Tick command once the update finishes. A cancelled id is simply
// forgotten and its in-flight tick is dropped by the controller.
type teaTicker struct {
	active  uint64
	pending uint64
}

func (t *teaTicker) Arm(id uint64) {
	t.active = id
	t.pending = id
}

func (t *teaTicker) Cancel(id uint64) {
	if t.active == id {
		t.active = 0
	}
	if t.pending == id {
		t.pending = 0
	}
}

// drain returns the tick command for a newly armed source, if any.
func (t *teaTicker) drain() tea.Cmd {
	if t.pending == 0 || t.pending != t.active {
		return nil
	}
	id := t.pending
	t.pending = 0
	return tickCmd(id)
}

// next schedules the following tick for id while it is still the armed source.
func (t *teaTicker) next(id uint64) tea.Cmd {
	if id == 0 || id != t.active {
		return nil
	}
	return tickCmd(id)
}
