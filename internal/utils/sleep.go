package utils

import (
	"context"
	"sync"
	"time"
)

type SleepFunc func(ctx context.Context, d time.Duration) error

var (
	sleepFunc SleepFunc
	mu        sync.Mutex // guards sleepFunc
)

func init() {
	ResetSleepFunc()
}

// Sleep waits for d or until ctx is done, whichever comes first. It returns
// the context error when the wait was cut short.
func Sleep(ctx context.Context, d time.Duration) error {
	mu.Lock()
	f := sleepFunc
	mu.Unlock()
	return f(ctx, d)
}

// SetSleepFunc overrides the sleep function, used by tests of retry loops.
func SetSleepFunc(f SleepFunc) {
	mu.Lock()
	sleepFunc = f
	mu.Unlock()
}

func ResetSleepFunc() {
	SetSleepFunc(sleepWithContext)
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
