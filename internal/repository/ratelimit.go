package repository

import (
	"context"
	"sync"
	"time"
)

// Limiter paces repository calls so a run stays under the API's call-rate
// ceiling. It spreads the configured budget evenly across the cooldown
// window: a budget of 10 calls per 3 seconds becomes one call every 300ms.
// Every client operation waits on the limiter before dialing out.
type Limiter struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

// NewLimiter builds a limiter from a call budget and cooldown window. A
// non-positive budget or window disables pacing.
func NewLimiter(budget int, window time.Duration) *Limiter {
	if budget <= 0 || window <= 0 {
		return &Limiter{}
	}
	return &Limiter{interval: window / time.Duration(budget)}
}

// Wait blocks until the next call slot opens, returning early if the
// context is cancelled.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil || l.interval <= 0 {
		return ctx.Err()
	}

	l.mu.Lock()
	now := time.Now()
	if l.next.Before(now) {
		l.next = now
	}
	wait := l.next.Sub(now)
	l.next = l.next.Add(l.interval)
	l.mu.Unlock()

	return sleepWithContext(ctx, wait)
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
