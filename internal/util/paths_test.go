package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDataDirHonoursXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	if got := DataDir("countdown"); got != filepath.Join("/tmp/xdg", "countdown") {
		t.Fatalf("unexpected data dir %q", got)
	}
}

func TestOpenLogFileDefaultLocation(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	f, err := OpenLogFile("countdown", "countdown.log", "")
	if err != nil {
		t.Fatalf("OpenLogFile failed: %v", err)
	}
	defer f.Close()
	if _, err := os.Stat(filepath.Join(dir, "countdown", "countdown.log")); err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
}
