package notifier

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRestarter struct {
	calls   atomic.Int32
	failFor int32
	entered chan struct{}
	release chan struct{}
	done    chan struct{}
	once    sync.Once
}

func newFakeRestarter(failFor int32) *fakeRestarter {
	return &fakeRestarter{
		failFor: failFor,
		entered: make(chan struct{}, 16),
		done:    make(chan struct{}, 16),
	}
}

func (f *fakeRestarter) Restart(ctx context.Context) error {
	n := f.calls.Add(1)
	f.entered <- struct{}{}
	if f.release != nil {
		<-f.release
	}
	defer func() { f.done <- struct{}{} }()
	if n <= f.failFor {
		return errors.New("pm2 not found")
	}
	return nil
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for restart")
	}
}

func TestNotifier_Restart(t *testing.T) {
	restarter := newFakeRestarter(0)
	n := NewNotifier(restarter, Config{MaxRetries: 3, InitialBackoff: time.Millisecond}, zap.NewNop())
	n.Start()
	defer n.Stop()

	n.Restart()

	waitFor(t, restarter.done)
	assert.Equal(t, int32(1), restarter.calls.Load())
}

func TestNotifier_RestartDoesNotBlockWithoutWorker(t *testing.T) {
	restarter := newFakeRestarter(0)
	n := NewNotifier(restarter, Config{}, zap.NewNop())

	finished := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			n.Restart()
		}
		close(finished)
	}()

	waitFor(t, finished)
	assert.Equal(t, int32(0), restarter.calls.Load())
}

func TestNotifier_CoalescesPendingRequests(t *testing.T) {
	restarter := newFakeRestarter(0)
	restarter.release = make(chan struct{})
	n := NewNotifier(restarter, Config{MaxRetries: 1}, zap.NewNop())
	n.Start()
	defer n.Stop()

	n.Restart()
	waitFor(t, restarter.entered)
	for i := 0; i < 5; i++ {
		n.Restart()
	}
	close(restarter.release)

	waitFor(t, restarter.done)
	waitFor(t, restarter.done)
	assert.Equal(t, int32(2), restarter.calls.Load())
}

func TestNotifier_RetriesWithBackoff(t *testing.T) {
	testCases := []struct {
		name          string
		failFor       int32
		maxRetries    int
		expectedCalls int32
	}{
		{
			name:          "Success after transient failures",
			failFor:       2,
			maxRetries:    3,
			expectedCalls: 3,
		},
		{
			name:          "Failure gives up after max retries",
			failFor:       10,
			maxRetries:    3,
			expectedCalls: 3,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			restarter := newFakeRestarter(tc.failFor)
			n := NewNotifier(restarter, Config{MaxRetries: tc.maxRetries, InitialBackoff: time.Millisecond}, zap.NewNop())
			n.Start()

			n.Restart()
			for i := int32(0); i < tc.expectedCalls; i++ {
				waitFor(t, restarter.done)
			}
			n.Stop()

			assert.Equal(t, tc.expectedCalls, restarter.calls.Load())
		})
	}
}

func TestNotifier_StopIsIdempotent(t *testing.T) {
	n := NewNotifier(newFakeRestarter(0), Config{}, zap.NewNop())
	n.Start()

	assert.NotPanics(t, func() {
		n.Stop()
		n.Stop()
	})
}
