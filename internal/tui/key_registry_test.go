package tui

import (
	"strings"
	"testing"

	"github.com/akyairhashvil/countdown/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

func TestRegistryPriorityAndFocus(t *testing.T) {
	r := NewHandlerRegistry()
	var hit string
	mk := func(name string, handled bool) KeyHandler {
		return func(m Model, key string) (Model, tea.Cmd, bool) {
			if handled {
				hit = name
			}
			return m, nil, handled
		}
	}
	r.Register(KeyBinding{Key: "x", Handler: mk("low", true), Priority: 1})
	r.Register(KeyBinding{Key: "x", Handler: mk("high-pass", false), Priority: 5})
	r.Register(KeyBinding{Key: "x", Handler: mk("input-only", true), Focus: []int{config.FocusInput}, Priority: 10})

	m := Model{focus: config.FocusControls}
	if _, _, handled := r.Handle(m, "x"); !handled || hit != "low" {
		t.Fatalf("expected fallthrough to low priority handler, got %q", hit)
	}
	m.focus = config.FocusInput
	if _, _, handled := r.Handle(m, "x"); !handled || hit != "input-only" {
		t.Fatalf("expected focus-scoped handler, got %q", hit)
	}
	if _, _, handled := r.Handle(m, "y"); handled {
		t.Fatalf("unbound key should not be handled")
	}
}

func TestDefaultHelp(t *testing.T) {
	r := defaultKeys()
	controls := r.HelpForFocus(config.FocusControls)
	for _, want := range []string{"[s]Start/Resume", "[p]Pause", "[r]Reset", "[q]Quit"} {
		if !strings.Contains(controls, want) {
			t.Fatalf("expected %q in %q", want, controls)
		}
	}
	input := r.HelpForFocus(config.FocusInput)
	if !strings.Contains(input, "[enter]Set") || strings.Contains(input, "[p]") {
		t.Fatalf("unexpected input help %q", input)
	}
}
