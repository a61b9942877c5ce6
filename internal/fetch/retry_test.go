package fetch

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fake fetcher you can control
type fakeFetcher struct {
	bodies []string
	errs   []error
	calls  int
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (string, error) {
	i := f.calls
	f.calls++
	if i >= len(f.errs) {
		return "", errors.New("no more")
	}
	return f.bodies[i], f.errs[i]
}

func TestRetryFetcher_SucceedsAfterRetry(t *testing.T) {
	f := &fakeFetcher{
		bodies: []string{"", "page"},
		errs:   []error{errors.New("first fail"), nil},
	}
	rf := &RetryFetcher{Inner: f, Attempts: 3, Backoff: time.Millisecond}

	body, err := rf.Fetch(context.Background(), "https://example.com")
	if err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if body != "page" {
		t.Fatalf("unexpected body %q", body)
	}
	if f.calls != 2 {
		t.Fatalf("expected to stop at first success, made %d calls", f.calls)
	}
}

func TestRetryFetcher_AllFailReturnsLastError(t *testing.T) {
	f := &fakeFetcher{
		bodies: []string{"", ""},
		errs:   []error{errors.New("fail1"), errors.New("fail2")},
	}
	rf := &RetryFetcher{Inner: f, Attempts: 2, Backoff: 0}

	_, err := rf.Fetch(context.Background(), "https://example.com")
	if err == nil || err.Error() != "fail2" {
		t.Fatalf("expected last error, got %v", err)
	}
	if f.calls != 2 {
		t.Fatalf("expected attempts capped at 2, made %d calls", f.calls)
	}
}

func TestRetryFetcher_CancelledContextStopsBackoff(t *testing.T) {
	f := &fakeFetcher{
		bodies: []string{""},
		errs:   []error{errors.New("fail")},
	}
	rf := &RetryFetcher{Inner: f, Attempts: 5, Backoff: time.Hour}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rf.Fetch(ctx, "https://example.com")
	if err == nil {
		t.Fatalf("expected error")
	}
	if f.calls != 1 {
		t.Fatalf("expected a single attempt before cancellation, made %d", f.calls)
	}
}
