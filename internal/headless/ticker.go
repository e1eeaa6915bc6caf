package headless

import "time"

// ticker is the subset of *time.Ticker the runner needs.
type ticker interface {
	C() <-chan time.Time
	Stop()
}

type realTicker struct{ *time.Ticker }

func (t realTicker) C() <-chan time.Time { return t.Ticker.C }

func newRealTicker(d time.Duration) ticker {
	return realTicker{time.NewTicker(d)}
}

// tickerSource implements countdown.TickSource on top of a ticker. It never
// calls the controller itself: the run loop reads C and forwards ticks, so the
// controller stays on one goroutine.
type tickerSource struct {
	interval  time.Duration
	newTicker func(time.Duration) ticker
	active    uint64
	t         ticker
}

func (s *tickerSource) Arm(id uint64) {
	s.stop()
	s.active = id
	s.t = s.newTicker(s.interval)
}

func (s *tickerSource) Cancel(id uint64) {
	if id != s.active {
		return
	}
	s.stop()
}

func (s *tickerSource) stop() {
	if s.t != nil {
		s.t.Stop()
		s.t = nil
	}
	s.active = 0
}

// C returns the channel of the armed ticker, or nil when nothing is armed.
func (s *tickerSource) C() <-chan time.Time {
	if s.t == nil {
		return nil
	}
	return s.t.C()
}
