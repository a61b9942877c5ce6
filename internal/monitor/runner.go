// Package monitor runs one complete check: fetch the page, decide
// availability, and fan out notifications when slots appear. Repetition is
// the external scheduler's job; a Runner is used exactly once per process.
package monitor

import (
	"context"
	"time"

	"go.uber.org/zap"

	"terminwatch/internal/availability"
	"terminwatch/internal/fetch"
	"terminwatch/internal/notify"
)

// AlertTitle heads every outgoing notification.
const AlertTitle = "Berlin Service Appointments Available!"

type Runner struct {
	Logger     *zap.Logger
	Fetcher    fetch.Fetcher
	Parser     *availability.Parser
	Dispatcher *notify.Dispatcher
	URL        string
}

// Run performs the fetch-parse-dispatch pass. A fetch failure is returned to
// the caller (the process exits non-zero on it); parse anomalies and channel
// failures are absorbed here.
func (r *Runner) Run(ctx context.Context) (availability.CheckResult, error) {
	r.Logger.Info("check_start", zap.String("url", r.URL))

	body, err := r.Fetcher.Fetch(ctx, r.URL)
	if err != nil {
		r.Logger.Error("fetch_failed", zap.String("url", r.URL), zap.Error(err))
		return availability.CheckResult{}, err
	}

	res := r.Parser.Parse(body, time.Now().UTC())
	if !res.Available {
		r.Logger.Info("no_availability", zap.String("url", r.URL))
		return res, nil
	}

	r.Logger.Info("availability_found",
		zap.String("url", r.URL),
		zap.Int("details", len(res.Details)),
	)

	outcomes := r.Dispatcher.Dispatch(ctx, AlertTitle, FormatMessage(res, r.URL))
	sent := 0
	for _, o := range outcomes {
		if o.OK {
			sent++
		}
	}
	r.Logger.Info("dispatch_done",
		zap.Int("attempted", len(outcomes)),
		zap.Int("sent", sent),
	)
	return res, nil
}
