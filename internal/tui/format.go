package tui

import (
	"fmt"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/countdown"
	"github.com/charmbracelet/x/ansi"
)

// FormatStatus returns a human-readable countdown status.
func FormatStatus(snap countdown.Snapshot) string {
	switch snap.State {
	case countdown.Running:
		return fmt.Sprintf("Running - %s remaining", countdown.Format(snap.Remaining))
	case countdown.Paused:
		return fmt.Sprintf("Paused - %s remaining", countdown.Format(snap.Remaining))
	case countdown.Finished:
		return "Finished"
	default:
		if !snap.DurationSet {
			return "Set a duration to begin"
		}
		return fmt.Sprintf("Ready - %s", countdown.Format(snap.Remaining))
	}
}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}
