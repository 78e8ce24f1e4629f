package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSleepReturnsWhenContextIsDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := Sleep(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestSleepWaits(t *testing.T) {
	assert.NoError(t, Sleep(context.Background(), time.Millisecond))
}

func TestSetSleepFunc(t *testing.T) {
	var slept time.Duration
	SetSleepFunc(func(_ context.Context, d time.Duration) error {
		slept = d
		return nil
	})
	t.Cleanup(ResetSleepFunc)

	assert.NoError(t, Sleep(context.Background(), time.Hour))
	assert.Equal(t, time.Hour, slept)
}
