package countdown

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akyairhashvil/countdown/internal/config"
)

// Format renders seconds as MM:SS. Minutes are not capped, so 6000 becomes "100:00".
func Format(seconds int) string {
	if seconds <= 0 {
		return "00:00"
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// ParseClock is the inverse of Format.
func ParseClock(s string) (int, error) {
	mins, secs, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(mins) < 2 || len(secs) != 2 || !allDigits(mins) || !allDigits(secs) {
		return 0, fmt.Errorf("parse %q: %w", s, ErrInvalidClock)
	}
	m, err := strconv.Atoi(mins)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, ErrInvalidClock)
	}
	sec, err := strconv.Atoi(secs)
	if err != nil || sec > 59 {
		return 0, fmt.Errorf("parse %q: %w", s, ErrInvalidClock)
	}
	return m*60 + sec, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParseSeconds validates a candidate duration typed by the user.
func ParseSeconds(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, ErrNotNumeric)
	}
	if n <= 0 {
		return 0, fmt.Errorf("parse %q: %w", s, ErrNonPositive)
	}
	if n > config.MaxDurationSeconds {
		return 0, fmt.Errorf("parse %q: %w", s, ErrTooLong)
	}
	return n, nil
}
