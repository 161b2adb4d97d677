package repository

import (
	"context"
	"testing"
	"time"
)

func TestNewLimiterInterval(t *testing.T) {
	tests := []struct {
		name   string
		budget int
		window time.Duration
		want   time.Duration
	}{
		{"even split", 10, 3 * time.Second, 300 * time.Millisecond},
		{"single call window", 1, time.Second, time.Second},
		{"zero budget disables", 0, time.Second, 0},
		{"zero window disables", 10, 0, 0},
		{"negative budget disables", -1, time.Second, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewLimiter(tt.budget, tt.window).interval; got != tt.want {
				t.Errorf("interval = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLimiterPacesCalls(t *testing.T) {
	limiter := NewLimiter(2, 40*time.Millisecond)

	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := limiter.Wait(context.Background()); err != nil {
			t.Fatalf("wait %d: %v", i, err)
		}
	}
	// First call is immediate, the next two wait one 20ms slot each.
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("three calls took %v, want at least two slot intervals", elapsed)
	}
}

func TestLimiterDisabledNeverBlocks(t *testing.T) {
	limiter := NewLimiter(0, 0)
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			limiter.Wait(context.Background())
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled limiter blocked")
	}
}

func TestLimiterCancelledContext(t *testing.T) {
	limiter := NewLimiter(1, time.Hour)
	// Burn the immediate slot so the next wait would block for an hour.
	if err := limiter.Wait(context.Background()); err != nil {
		t.Fatalf("first wait: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := limiter.Wait(ctx); err == nil {
		t.Fatal("expected context error")
	}
}

func TestNilLimiter(t *testing.T) {
	var limiter *Limiter
	if err := limiter.Wait(context.Background()); err != nil {
		t.Errorf("nil limiter wait = %v", err)
	}
}
