package jobs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestQueueProcessesJobs(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []int
	)
	q := New("test", func(_ context.Context, job Job[int]) error {
		mu.Lock()
		seen = append(seen, job.Payload)
		mu.Unlock()
		return nil
	}, Config[int]{Workers: 3})
	q.Start(context.Background())
	defer q.Stop()

	for i := 1; i <= 10; i++ {
		require.NoError(t, q.Enqueue(Job[int]{ID: "job", Payload: i}))
	}
	q.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, seen)
}

func TestQueueRetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	q := New("retry", func(_ context.Context, job Job[string]) error {
		if calls.Add(1) < 3 {
			return errors.New("transient")
		}
		return nil
	}, Config[string]{MaxRetries: 3, RetryDelay: time.Millisecond})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job[string]{ID: "a", Payload: "a"}))
	q.Wait()

	assert.Equal(t, int32(3), calls.Load())
}

func TestQueueInvokesFailureHandler(t *testing.T) {
	var (
		failed   Job[string]
		failures atomic.Int32
	)
	q := New("fail", func(context.Context, Job[string]) error {
		return errors.New("permanent")
	}, Config[string]{
		MaxRetries: 2,
		RetryDelay: time.Millisecond,
		OnFailure: func(_ context.Context, job Job[string], err error) {
			failed = job
			failures.Add(1)
		},
	})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job[string]{ID: "b", Payload: "b"}))
	q.Wait()

	assert.Equal(t, int32(1), failures.Load())
	assert.Equal(t, 3, failed.Attempt)
	assert.Equal(t, "b", failed.Payload)
}

func TestQueueStopReleasesPendingRetries(t *testing.T) {
	for _, delay := range []time.Duration{time.Microsecond, time.Millisecond, 10 * time.Millisecond} {
		failed := make(chan struct{}, 64)
		q := New("stop", func(context.Context, Job[int]) error {
			select {
			case failed <- struct{}{}:
			default:
			}
			return errors.New("always")
		}, Config[int]{Workers: 2, MaxRetries: 5, RetryDelay: delay})
		q.Start(context.Background())

		for i := 0; i < 8; i++ {
			require.NoError(t, q.Enqueue(Job[int]{ID: "c", Payload: i}))
		}
		<-failed
		q.Stop()

		done := make(chan struct{})
		go func() {
			q.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatalf("Wait blocked after Stop with retry delay %s", delay)
		}
	}
}

func TestQueueRejectsWhenNotRunning(t *testing.T) {
	q := New("idle", func(context.Context, Job[int]) error { return nil }, Config[int]{})

	err := q.Enqueue(Job[int]{Payload: 1})
	assert.ErrorIs(t, err, ErrNotStarted)

	q.Start(context.Background())
	q.Stop()
	q.Stop()

	err = q.Enqueue(Job[int]{Payload: 1})
	assert.ErrorIs(t, err, ErrNotStarted)
}
