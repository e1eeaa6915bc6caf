// Package headless runs a single countdown without the interactive UI,
// printing the remaining time once per tick.
package headless

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/countdown"
	"github.com/sirupsen/logrus"
)

var ErrNotStarted = errors.New("countdown did not start")

type Runner struct {
	out     io.Writer
	log     logrus.FieldLogger
	source  *tickerSource
	inPlace bool
}

func NewRunner(out io.Writer, log logrus.FieldLogger) *Runner {
	return &Runner{
		out: out,
		log: log,
		source: &tickerSource{
			interval:  config.TickInterval,
			newTicker: newRealTicker,
		},
	}
}

// InPlace makes the runner redraw a single line instead of printing one line
// per tick. Used when the output is a terminal.
func (r *Runner) InPlace(on bool) *Runner {
	r.inPlace = on
	return r
}

// Run counts down from seconds and returns when the countdown finishes or ctx
// is done. The tick source is always released before returning.
func (r *Runner) Run(ctx context.Context, seconds int) error {
	ctrl := countdown.NewController(r.source, countdown.WithLogger(r.log))
	defer ctrl.Close()

	if !ctrl.Configure(seconds) || !ctrl.Start() {
		return fmt.Errorf("run %ds: %w", seconds, ErrNotStarted)
	}
	r.print(ctrl.Remaining())

	for {
		select {
		case <-ctx.Done():
			if r.inPlace {
				fmt.Fprintln(r.out)
			}
			r.log.WithField("remaining", ctrl.Remaining()).Info("countdown interrupted")
			return ctx.Err()
		case <-r.source.C():
			if !ctrl.Tick(r.source.active) {
				continue
			}
			r.print(ctrl.Remaining())
			if ctrl.State() == countdown.Finished {
				if r.inPlace {
					fmt.Fprintln(r.out)
				}
				r.log.WithField("duration", seconds).Info("countdown finished")
				return nil
			}
		}
	}
}

func (r *Runner) print(remaining int) {
	if r.inPlace {
		fmt.Fprintf(r.out, "\r%s", countdown.Format(remaining))
		return
	}
	fmt.Fprintln(r.out, countdown.Format(remaining))
}
