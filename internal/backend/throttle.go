package backend

import (
	"context"
	"sync"
	"time"
)

// throttle ensures a minimum interval between successive polls.
type throttle struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval <= 0 {
		return &throttle{}
	}
	return &throttle{interval: interval}
}

// wait blocks until the interval since the previous call has passed or ctx
// is done.
func (t *throttle) wait(ctx context.Context) error {
	if t == nil || t.interval <= 0 {
		return ctx.Err()
	}
	t.mu.Lock()
	now := time.Now()
	delay := t.next.Sub(now)
	if delay < 0 {
		delay = 0
	}
	t.next = now.Add(delay + t.interval)
	t.mu.Unlock()
	if delay == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
