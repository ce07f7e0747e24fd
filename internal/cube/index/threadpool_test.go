package index

import (
	"sync/atomic"
	"testing"
)

func TestThreadPoolRunsAllJobs(t *testing.T) {
	pool := NewThreadPool(4)
	var count int32
	const n = 50
	for i := 0; i < n; i++ {
		pool.AddJob(func() { atomic.AddInt32(&count, 1) })
	}
	pool.Join()
	if count != n {
		t.Errorf("ran %d jobs, want %d", count, n)
	}
}

func TestThreadPoolDefaultsToOneWorker(t *testing.T) {
	pool := NewThreadPool(0)
	done := make(chan struct{})
	pool.AddJob(func() { close(done) })
	<-done
	pool.Join()
}

func TestCompletionCounterFiresOnceAfterLastDone(t *testing.T) {
	var fired int32
	c := NewCompletionCounter(3, func() { atomic.AddInt32(&fired, 1) })
	c.Done()
	c.Done()
	if atomic.LoadInt32(&fired) != 0 {
		t.Fatal("onDone fired before every job reported in")
	}
	c.Done()
	if atomic.LoadInt32(&fired) != 1 {
		t.Fatalf("onDone fired %d times, want exactly 1", fired)
	}
}
