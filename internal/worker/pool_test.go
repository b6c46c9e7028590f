package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MobMissions_Go/internal/testing/leaktest"
)

func TestPool_RunsEnqueuedJobs(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	var executed atomic.Int32
	pool := NewPool(2, 10, 0)
	pool.Start()

	job := JobFunc(func(ctx context.Context) error {
		executed.Add(1)
		return nil
	})
	assert.True(t, pool.Enqueue(job))
	assert.True(t, pool.Enqueue(job))

	assert.Eventually(t, func() bool { return executed.Load() == 2 }, time.Second, 5*time.Millisecond)

	pool.Stop()
	checker.Check(0)
}

func TestPool_JobErrorDoesNotStopWorker(t *testing.T) {
	var executed atomic.Int32
	pool := NewPool(1, 10, 0)
	pool.Start()
	defer pool.Stop()

	pool.Enqueue(JobFunc(func(ctx context.Context) error { return errors.New("boom") }))
	pool.Enqueue(JobFunc(func(ctx context.Context) error {
		executed.Add(1)
		return nil
	}))

	assert.Eventually(t, func() bool { return executed.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestPool_JobTimeout(t *testing.T) {
	pool := NewPool(1, 1, 20*time.Millisecond)
	pool.Start()
	defer pool.Stop()

	errCh := make(chan error, 1)
	pool.Enqueue(JobFunc(func(ctx context.Context) error {
		<-ctx.Done()
		errCh <- ctx.Err()
		return ctx.Err()
	}))

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(time.Second):
		t.Fatal("job context was never cancelled")
	}
}

func TestPool_EnqueueWhenFull(t *testing.T) {
	// Not started, so nothing drains the queue
	pool := NewPool(1, 1, 0)
	noop := JobFunc(func(ctx context.Context) error { return nil })

	require.True(t, pool.Enqueue(noop))
	assert.False(t, pool.Enqueue(noop))
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	pool := NewPool(1, 1, 0)
	pool.Start()
	pool.Stop()
	pool.Stop()

	assert.False(t, pool.Enqueue(JobFunc(func(ctx context.Context) error { return nil })))
}
