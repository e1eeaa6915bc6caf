// Package countdown implements the countdown timer state machine and the
// contract it has with the periodic tick source that drives it.
package countdown

// RunState is the discrete phase of a countdown.
type RunState int

const (
	Idle RunState = iota
	Running
	Paused
	Finished
)

func (s RunState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only copy of the controller state handed to renderers.
type Snapshot struct {
	Duration    int
	DurationSet bool
	Remaining   int
	State       RunState
}

// Elapsed returns how many seconds of the configured duration have been consumed.
func (s Snapshot) Elapsed() int {
	if !s.DurationSet || s.Remaining >= s.Duration {
		return 0
	}
	return s.Duration - s.Remaining
}

// Fraction reports elapsed/duration in [0, 1].
func (s Snapshot) Fraction() float64 {
	if !s.DurationSet || s.Duration <= 0 {
		return 0
	}
	return float64(s.Elapsed()) / float64(s.Duration)
}
