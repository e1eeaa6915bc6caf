package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akyairhashvil/countdown/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

func TestRunRejectsBadOptions(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	err := run([]string{"-seconds", "-3"}, os.Stdout)
	if !errors.Is(err, config.ErrInvalidOptions) {
		t.Fatalf("expected ErrInvalidOptions, got %v", err)
	}
}

func TestRunHeadlessWithoutTerminal(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	out, err := os.Create(filepath.Join(dir, "out.txt"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	defer out.Close()

	if err := run([]string{"-seconds", "1", "-log-level", "debug"}, out); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	data, err := os.ReadFile(out.Name())
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "00:01\n00:00\n" {
		t.Fatalf("unexpected output %q", string(data))
	}
	logData, err := os.ReadFile(filepath.Join(dir, config.AppName, config.LogFileName))
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	if !strings.Contains(string(logData), "countdown finished") {
		t.Fatalf("expected finish to be logged, got %q", string(logData))
	}
}

func TestProgramError(t *testing.T) {
	interrupted := fmt.Errorf("%w: %w", tea.ErrProgramKilled, context.Canceled)
	if err := programError(interrupted); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	crashed := fmt.Errorf("%w: %w", tea.ErrProgramKilled, tea.ErrProgramPanic)
	err := programError(crashed)
	if errors.Is(err, context.Canceled) {
		t.Fatalf("panic must not be reported as an interrupt")
	}
	if !errors.Is(err, tea.ErrProgramPanic) {
		t.Fatalf("expected panic error to pass through, got %v", err)
	}

	if err := programError(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
