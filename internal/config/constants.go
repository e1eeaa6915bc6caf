package config

import "time"

// Timer settings.
const (
	TickInterval = time.Second

	// MaxDurationSeconds caps both -seconds and the typed duration (99:59:59).
	MaxDurationSeconds = 99*3600 + 59*60 + 59
)

// Focus targets.
const (
	FocusInput = iota
	FocusControls
)

// Application settings.
const (
	AppName      = "countdown"
	LogFileName  = "countdown.log"
	DefaultTheme = "default"
	EnvPrefix    = "COUNTDOWN_"
)
