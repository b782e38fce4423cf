package reconciler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/usecase/reconcile_proposals"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSweeper struct {
	calls int32
	ran   chan struct{}
}

func (f *fakeSweeper) Execute(context.Context) (*reconcile_proposals.Result, error) {
	atomic.AddInt32(&f.calls, 1)
	select {
	case f.ran <- struct{}{}:
	default:
	}
	return &reconcile_proposals.Result{}, nil
}

func TestRunnerRunsImmediately(t *testing.T) {
	t.Parallel()

	sweeper := &fakeSweeper{ran: make(chan struct{}, 1)}
	runner := NewRunner(sweeper, time.Hour, nopLogger{})

	runner.Start()
	defer runner.Stop()

	// a primeira passada acontece na subida, não depois de um intervalo
	select {
	case <-sweeper.ran:
	case <-time.After(2 * time.Second):
		t.Fatal("sweep did not run on startup")
	}
}

func TestRunnerStopWaitsForLoop(t *testing.T) {
	t.Parallel()

	sweeper := &fakeSweeper{ran: make(chan struct{}, 1)}
	runner := NewRunner(sweeper, time.Hour, nopLogger{})

	runner.Start()
	<-sweeper.ran
	runner.Stop()

	calls := atomic.LoadInt32(&sweeper.calls)
	assert.Equal(t, int32(1), calls)

	// depois do Stop nada mais roda
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, calls, atomic.LoadInt32(&sweeper.calls))
}
