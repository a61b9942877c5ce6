package fetch

import (
	"context"
	"time"
)

// RetryFetcher re-attempts a failed fetch a fixed number of times with a
// fixed backoff. It absorbs transient network blips only.
type RetryFetcher struct {
	Inner    Fetcher
	Attempts int
	Backoff  time.Duration
}

func (r *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	attempts := r.Attempts
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		body, err := r.Inner.Fetch(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return "", lastErr
			case <-time.After(r.Backoff):
			}
		}
	}
	return "", lastErr
}
