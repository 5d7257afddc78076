package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_Add(t *testing.T) {
	t.Parallel()

	s := New()
	noop := func(context.Context) error { return nil }

	require.NoError(t, s.Add("purge", "@every 1h", noop))
	assert.ErrorContains(t, s.Add("purge", "@every 1h", noop), "already registered")
	assert.Error(t, s.Add("bad", "not a spec", noop))
	assert.NoError(t, s.Add("nightly", "0 3 * * *", noop))
}

func TestScheduler_RunNow(t *testing.T) {
	t.Parallel()

	s := New()
	var calls atomic.Int32
	require.NoError(t, s.Add("purge", "@every 1h", func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}))
	require.NoError(t, s.Add("broken", "@every 1h", func(context.Context) error {
		return errors.New("db locked")
	}))

	require.NoError(t, s.RunNow("purge"))
	assert.Equal(t, int32(1), calls.Load())
	assert.EqualError(t, s.RunNow("broken"), "db locked")
	assert.Error(t, s.RunNow("missing"))
}

func TestScheduler_StartRunsJobsAndStopCancels(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for the one-second cron tick")
	}
	t.Parallel()

	s := New()
	var calls atomic.Int32
	var canceled atomic.Bool
	require.NoError(t, s.Add("tick", "@every 1s", func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}))
	require.NoError(t, s.Add("watch", "@every 1h", func(ctx context.Context) error {
		<-ctx.Done()
		canceled.Store(true)
		return ctx.Err()
	}))

	s.Start()
	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)

	go func() { _ = s.RunNow("watch") }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
	assert.Eventually(t, canceled.Load, time.Second, 10*time.Millisecond)
}
