package tui

import (
	"unicode"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/countdown"
	tea "github.com/charmbracelet/bubbletea"
)

func defaultKeys() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Key: "ctrl+c", Handler: handleQuit, Priority: 100})
	r.Register(KeyBinding{Key: "q", Handler: handleQuit, Description: "Quit", Focus: []int{config.FocusControls}})
	r.Register(KeyBinding{Key: "enter", Handler: handleSet, Description: "Set", Focus: []int{config.FocusInput}, Priority: 10})
	r.Register(KeyBinding{Key: "tab", Handler: handleFocus, Description: "Controls", Focus: []int{config.FocusInput}})
	r.Register(KeyBinding{Key: "esc", Handler: handleFocus, Focus: []int{config.FocusInput}})
	r.Register(KeyBinding{Key: "s", Handler: handleStart, Description: "Start/Resume", Focus: []int{config.FocusControls}, Priority: 10})
	r.Register(KeyBinding{Key: " ", Handler: handleStart, Focus: []int{config.FocusControls}})
	r.Register(KeyBinding{Key: "p", Handler: handlePause, Description: "Pause", Focus: []int{config.FocusControls}, Priority: 9})
	r.Register(KeyBinding{Key: "r", Handler: handleReset, Description: "Reset", Focus: []int{config.FocusControls}, Priority: 8})
	r.Register(KeyBinding{Key: "tab", Handler: handleFocus, Description: "Duration", Focus: []int{config.FocusControls}})
	r.Register(KeyBinding{Key: "t", Handler: handleTheme, Description: "Theme", Focus: []int{config.FocusControls}})
	return r
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.ProgressWidth
		if m.width < config.CompactModeThreshold {
			target = m.width - 8
		}
		if target < config.MinPanelWidth-8 {
			target = config.MinPanelWidth - 8
		}
		m.progress.Width = target
	}
	return m, nil
}

func (m Model) handleTick(msg TickMsg) (Model, tea.Cmd) {
	if !m.ctrl.Tick(msg.ID) {
		return m, nil
	}
	if m.ctrl.State() == countdown.Finished {
		m.log.WithField("duration", m.ctrl.Snapshot().Duration).Info("countdown finished")
	}
	return m, m.ticker.next(msg.ID)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	if next, cmd, handled := m.keys.Handle(m, key); handled {
		return next, cmd
	}
	if m.focus != config.FocusInput {
		return m, nil
	}
	if msg.Type == tea.KeyRunes && !digitsOnly(msg.Runes) {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func handleQuit(m Model, _ string) (Model, tea.Cmd, bool) {
	m.ctrl.Close()
	m.quitting = true
	return m, tea.Quit, true
}

func handleSet(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.ctrl.ConfigureInput(m.input.Value()) {
		m.input.Reset()
		m.input.Blur()
		m.focus = config.FocusControls
	}
	return m, nil, true
}

func handleFocus(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.focus == config.FocusInput {
		m.focus = config.FocusControls
		m.input.Blur()
		return m, nil, true
	}
	m.focus = config.FocusInput
	return m, m.input.Focus(), true
}

func handleStart(m Model, _ string) (Model, tea.Cmd, bool) {
	m.ctrl.Toggle()
	return m, nil, true
}

func handlePause(m Model, _ string) (Model, tea.Cmd, bool) {
	m.ctrl.Pause()
	return m, nil, true
}

func handleReset(m Model, _ string) (Model, tea.Cmd, bool) {
	m.ctrl.Reset()
	return m, nil, true
}

func handleTheme(m Model, _ string) (Model, tea.Cmd, bool) {
	m.theme = nextTheme(m.theme)
	SetTheme(m.theme)
	return m, nil, true
}

func digitsOnly(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(runes) > 0
}
