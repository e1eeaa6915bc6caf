// Package tui is the interactive Bubble Tea front end of the countdown.
package tui

import (
	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/countdown"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// Model is the root bubbletea model. The controller and tick source are held
// by pointer so that the value copies Bubble Tea passes around share them.
type Model struct {
	ctrl     *countdown.Controller
	ticker   *teaTicker
	keys     *HandlerRegistry
	input    textinput.Model
	progress progress.Model
	focus    int
	theme    string
	width    int
	height   int
	log      logrus.FieldLogger
	quitting bool
}

func NewModel(opts config.Options, log logrus.FieldLogger) Model {
	ticker := &teaTicker{}
	ctrl := countdown.NewController(ticker,
		countdown.WithLogger(log),
		countdown.WithObserver(func(from, to countdown.RunState, snap countdown.Snapshot) {
			if from != to {
				log.WithFields(logrus.Fields{
					"from":      from,
					"to":        to,
					"remaining": snap.Remaining,
				}).Info("countdown state changed")
			}
		}),
	)

	ti := textinput.New()
	ti.Placeholder = config.InputPlaceholder
	ti.CharLimit = config.InputCharLimit
	ti.Width = len(config.InputPlaceholder)
	ti.Focus()

	theme := opts.Theme
	if !SetTheme(theme) {
		theme = config.DefaultTheme
		SetTheme(theme)
	}

	m := Model{
		ctrl:     ctrl,
		ticker:   ticker,
		keys:     defaultKeys(),
		input:    ti,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		focus:    config.FocusInput,
		theme:    theme,
		log:      log,
	}
	m.progress.Width = config.ProgressWidth

	if opts.Seconds > 0 {
		ctrl.Configure(opts.Seconds)
		m.focus = config.FocusControls
		m.input.Blur()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Snapshot exposes the controller state for callers outside the program loop.
func (m Model) Snapshot() countdown.Snapshot {
	return m.ctrl.Snapshot()
}

// Close releases the tick source. main defers it so teardown happens on every
// exit path.
func (m Model) Close() {
	m.ctrl.Close()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		next, cmd := m.handleKey(msg)
		return next, tea.Batch(cmd, next.ticker.drain())
	}
	var cmd tea.Cmd
	if m.focus == config.FocusInput {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}
