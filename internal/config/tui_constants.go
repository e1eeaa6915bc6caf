package config

// Layout constants.
const (
	// PanelWidth is the preferred width of the timer panel.
	PanelWidth = 44

	// MinPanelWidth is the narrowest panel before the layout stops shrinking.
	MinPanelWidth = 24

	// CompactModeThreshold switches to the compact layout below this width.
	CompactModeThreshold = 50

	// ProgressWidth is the default width of the progress bar.
	ProgressWidth = 36
)

// Input constraints.
const (
	// InputCharLimit bounds the duration input (digits only).
	InputCharLimit = 6

	// InputPlaceholder is shown while the duration input is empty.
	InputPlaceholder = "Enter duration in seconds"

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)
