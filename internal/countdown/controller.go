package countdown

import "github.com/sirupsen/logrus"

// Observer is notified after every transition and after every tick that
// leaves the countdown running.
type Observer func(from, to RunState, snap Snapshot)

// Controller owns the countdown state and the handle of its single tick source.
// It is not safe for concurrent use; callers drive it from one goroutine.
type Controller struct {
	duration    int
	durationSet bool
	remaining   int
	state       RunState

	source TickSource
	active uint64 // id of the armed source, 0 when none
	nextID uint64

	log      logrus.FieldLogger
	observer Observer
}

type Option func(*Controller)

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

func WithObserver(fn Observer) Option {
	return func(c *Controller) { c.observer = fn }
}

func NewController(source TickSource, opts ...Option) *Controller {
	discard := logrus.New()
	discard.SetLevel(logrus.PanicLevel)
	c := &Controller{
		source: source,
		state:  Idle,
		log:    discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) State() RunState { return c.state }
func (c *Controller) Remaining() int  { return c.remaining }

// Duration returns the configured duration and whether one was ever set.
func (c *Controller) Duration() (int, bool) { return c.duration, c.durationSet }

// Armed reports whether a tick source is currently active.
func (c *Controller) Armed() bool { return c.active != 0 }

func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Duration:    c.duration,
		DurationSet: c.durationSet,
		Remaining:   c.remaining,
		State:       c.state,
	}
}

// ActionLabel is the caption of the combined Start/Resume action.
func (c *Controller) ActionLabel() string {
	if c.state == Paused {
		return "Resume"
	}
	return "Start"
}

// Configure sets a new duration and returns the countdown to Idle.
// Non-positive values are ignored.
func (c *Controller) Configure(seconds int) bool {
	if seconds <= 0 {
		c.log.WithField("seconds", seconds).Debug("configure ignored")
		return false
	}
	c.disarm()
	c.duration = seconds
	c.durationSet = true
	c.remaining = seconds
	c.transition(Idle)
	return true
}

// ConfigureInput parses raw user input and configures the countdown with it.
func (c *Controller) ConfigureInput(raw string) bool {
	seconds, err := ParseSeconds(raw)
	if err != nil {
		c.log.WithError(err).Debug("configure ignored")
		return false
	}
	return c.Configure(seconds)
}

// Start begins the countdown, or resumes it when paused. It does nothing when
// no time remains.
func (c *Controller) Start() bool {
	if c.remaining <= 0 {
		c.log.Debug("start ignored: nothing remaining")
		return false
	}
	c.arm()
	c.transition(Running)
	return true
}

// Resume continues a paused countdown.
func (c *Controller) Resume() bool {
	if c.state != Paused {
		return false
	}
	return c.Start()
}

// Toggle is the single Start/Resume action.
func (c *Controller) Toggle() bool {
	if c.state == Paused {
		return c.Resume()
	}
	return c.Start()
}

func (c *Controller) Pause() bool {
	if c.state != Running {
		c.log.WithField("state", c.state).Debug("pause ignored")
		return false
	}
	c.disarm()
	c.transition(Paused)
	return true
}

// Reset restores the last configured duration (0 if none) and returns to Idle.
func (c *Controller) Reset() {
	c.disarm()
	if c.durationSet {
		c.remaining = c.duration
	} else {
		c.remaining = 0
	}
	c.transition(Idle)
}

// Tick is called by the tick source. Ticks from a source other than the armed
// one are dropped.
func (c *Controller) Tick(id uint64) bool {
	if id == 0 || id != c.active || c.state != Running {
		return false
	}
	if c.remaining > 0 {
		c.remaining--
	}
	if c.remaining == 0 {
		c.disarm()
		c.transition(Finished)
		return true
	}
	if c.observer != nil {
		c.observer(Running, Running, c.Snapshot())
	}
	return true
}

// Close releases the tick source. It is safe to call more than once.
func (c *Controller) Close() {
	c.disarm()
}

func (c *Controller) arm() {
	c.disarm()
	c.nextID++
	c.active = c.nextID
	if c.source != nil {
		c.source.Arm(c.active)
	}
}

func (c *Controller) disarm() {
	if c.active == 0 {
		return
	}
	id := c.active
	c.active = 0
	if c.source != nil {
		c.source.Cancel(id)
	}
}

func (c *Controller) transition(to RunState) {
	from := c.state
	c.state = to
	c.log.WithFields(logrus.Fields{
		"from":      from,
		"to":        to,
		"remaining": c.remaining,
	}).Debug("transition")
	if c.observer != nil {
		c.observer(from, to, c.Snapshot())
	}
}
