package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPool_ReinitializeWithDifferentWorkerCounts(t *testing.T) {
	p := NewPool(Config{})

	require.NoError(t, p.Initialize(3))
	require.Equal(t, uint16(3), p.WorkerCount())
	p.Terminate()
	require.Equal(t, uint16(0), p.WorkerCount())

	require.NoError(t, p.Initialize(7))
	require.Equal(t, uint16(7), p.WorkerCount())
	p.Terminate()
}

func TestPool_InitializeTwiceWithoutTerminateFails(t *testing.T) {
	p := NewPool(Config{})
	require.NoError(t, p.Initialize(2))
	defer p.Terminate()

	require.Error(t, p.Initialize(2))
}

func TestPool_SubmitBeforeInitializePanics(t *testing.T) {
	p := NewPool(Config{})
	sched := NewSchedule()

	require.Panics(t, func() {
		p.Submit(func(WorkerID) {}, 0, sched, Normal)
	})
}

func TestPool_HundredTasksCounterReachesZero(t *testing.T) {
	p := NewPool(Config{})
	require.NoError(t, p.Initialize(4))
	defer p.Terminate()

	var counter atomic.Int64
	sched := NewSchedule()

	for i := 0; i < 100; i++ {
		p.Submit(func(WorkerID) {
			counter.Add(1)
		}, 0, sched, Normal)
	}

	sched.Wait(p)
	require.Equal(t, int64(100), counter.Load())
}

func TestPool_HighAndNormalBothRun(t *testing.T) {
	p := NewPool(Config{})
	require.NoError(t, p.Initialize(2))
	defer p.Terminate()

	var highRan, normalRan atomic.Bool
	sched := NewSchedule()

	p.Submit(func(WorkerID) { highRan.Store(true) }, 1, sched, High)
	p.Submit(func(WorkerID) { normalRan.Store(true) }, 2, sched, Normal)

	sched.Wait(p)
	require.True(t, highRan.Load())
	require.True(t, normalRan.Load())
}

func TestPool_CancelTagDoesNotDoubleDecrement(t *testing.T) {
	p := NewPool(Config{})
	require.NoError(t, p.Initialize(1))
	defer p.Terminate()

	sched := NewSchedule()
	var ran atomic.Int64

	block := make(chan struct{})
	p.Submit(func(WorkerID) {
		<-block
		ran.Add(1)
	}, 1, sched, Normal)

	for i := 0; i < 5; i++ {
		p.Submit(func(WorkerID) { ran.Add(1) }, 42, sched, Normal)
	}

	p.CancelTag(42)
	close(block)

	sched.Wait(p)
	require.Equal(t, int64(1), ran.Load())
}

func TestPool_DrainHelpsWhileWorkerIsBusy(t *testing.T) {
	p := NewPool(Config{})
	require.NoError(t, p.Initialize(1))
	defer p.Terminate()

	sched := NewSchedule()
	blocker := make(chan struct{})
	secondRan := make(chan WorkerID, 1)

	// Occupy the single worker so the second task can only complete once
	// either the worker frees up or the calling goroutine drains it.
	p.Submit(func(WorkerID) {
		<-blocker
	}, 0, sched, Normal)

	p.Submit(func(id WorkerID) {
		secondRan <- id
	}, 0, sched, Normal)

	go func() {
		time.Sleep(50 * time.Millisecond)
		close(blocker)
	}()

	sched.Wait(p)
	<-secondRan
}

func TestRunDetached_ExecutesIndependently(t *testing.T) {
	done := make(chan struct{})
	RunDetached(func() {
		close(done)
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("RunDetached task never ran")
	}
}

func TestDefaultWorkerCount_AtLeastTwoAndWithinByteRange(t *testing.T) {
	n := DefaultWorkerCount()
	require.GreaterOrEqual(t, n, uint8(2))
}
