package tui

import (
	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/countdown"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	theme := CurrentTheme
	snap := m.ctrl.Snapshot()

	width := config.PanelWidth
	if m.width > 0 && m.width < config.CompactModeThreshold {
		width = m.width - 4
	}
	if width < config.MinPanelWidth {
		width = config.MinPanelWidth
	}
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	header := theme.Header.Width(width).Render("Countdown Timer")
	clock := center.Render(m.clockStyle(snap.State).Render(countdown.Format(snap.Remaining)))
	bar := center.Render(m.progress.ViewAs(snap.Fraction()))
	status := center.Render(theme.Dim.Render(truncateLabel(FormatStatus(snap), width)))
	help := theme.Dim.Render(truncateLabel(m.keys.HelpForFocus(m.focus), width))
	footer := theme.Dim.Render(truncateLabel("v"+versionLabel()+" | "+CurrentTheme.Name, width))

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.renderInput(),
		"",
		clock,
		bar,
		"",
		center.Render(m.renderButtons()),
		status,
		"",
		help,
		footer,
	)
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(body)
	return theme.Base.Render(panel)
}

func (m Model) clockStyle(state countdown.RunState) lipgloss.Style {
	switch state {
	case countdown.Paused:
		return CurrentTheme.ClockPaused
	case countdown.Finished:
		return CurrentTheme.ClockFinished
	default:
		return CurrentTheme.Clock
	}
}

func (m Model) renderInput() string {
	set := CurrentTheme.Button.Render("Set")
	input := CurrentTheme.Input
	if m.focus != config.FocusInput {
		input = input.BorderForeground(CurrentTheme.Border)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, input.Render(m.input.View()), " ", set)
}

func (m Model) renderButtons() string {
	label := func(text string) string {
		if m.focus == config.FocusControls {
			return CurrentTheme.Button.Render(CurrentTheme.Focused.Render(text))
		}
		return CurrentTheme.Button.Render(text)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		label(m.ctrl.ActionLabel()), " ",
		label("Pause"), " ",
		label("Reset"),
	)
}
