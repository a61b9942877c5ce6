package notify

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Dispatcher fans an alert out to every channel, one at a time. A failing
// channel never prevents the remaining ones from being attempted.
type Dispatcher struct {
	Logger   *zap.Logger
	Channels []Notifier
	Timeout  time.Duration // per-channel send budget
}

func NewDispatcher(logger *zap.Logger, timeout time.Duration, channels []Notifier) *Dispatcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Dispatcher{Logger: logger, Channels: channels, Timeout: timeout}
}

// Dispatch attempts delivery on every channel and returns one outcome per
// attempt. Failures are logged and aggregated for the summary line only;
// nothing propagates past this boundary.
func (d *Dispatcher) Dispatch(ctx context.Context, title, text string) []Outcome {
	outcomes := make([]Outcome, 0, len(d.Channels))
	var failures error

	for _, n := range d.Channels {
		if n == nil {
			continue
		}
		sctx, cancel := context.WithTimeout(ctx, d.Timeout)
		err := n.Send(sctx, title, text)
		cancel()

		outcomes = append(outcomes, Outcome{Channel: n.Name(), OK: err == nil, Err: err})
		if err != nil {
			failures = multierr.Append(failures, fmt.Errorf("%s: %w", n.Name(), err))
			d.Logger.Warn("notify_send_failed", zap.String("channel", n.Name()), zap.Error(err))
		} else {
			d.Logger.Info("notify_sent", zap.String("channel", n.Name()))
		}
	}

	if failures != nil {
		d.Logger.Warn("notify_partial_failure",
			zap.Int("attempted", len(outcomes)),
			zap.Int("failed", len(multierr.Errors(failures))),
			zap.Error(failures),
		)
	}
	return outcomes
}
