package index

import "sync"

// ThreadPool is a fixed-size goroutine worker pool for CPU-bound,
// independent jobs (here, the four Korf PDB builds). Grounded on
// original_source's CubeSolver.h `ThreadPool threadPool` member and
// KorfCubeSolver::initialize's `pThreadPool->addJob(...)` calls; Go's
// idiomatic equivalent is a buffered job channel drained by a fixed set
// of worker goroutines, not a channel-per-job library (none of the
// pack's third-party dependencies offer a worker pool).
type ThreadPool struct {
	jobs chan func()
	wg   sync.WaitGroup
}

// NewThreadPool starts workers goroutines, each pulling jobs off a shared
// queue until Join is called and the queue drains.
func NewThreadPool(workers int) *ThreadPool {
	if workers < 1 {
		workers = 1
	}
	p := &ThreadPool{jobs: make(chan func(), workers*4)}
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

func (p *ThreadPool) worker() {
	for job := range p.jobs {
		job()
		p.wg.Done()
	}
}

// AddJob enqueues a job for execution by the next free worker.
func (p *ThreadPool) AddJob(job func()) {
	p.wg.Add(1)
	p.jobs <- job
}

// Join blocks until every enqueued job has completed, then stops the
// worker goroutines. The pool cannot be reused after Join.
func (p *ThreadPool) Join() {
	p.wg.Wait()
	close(p.jobs)
}

// CompletionCounter is the atomic "all jobs done" gate described in
// spec.md §5: each of n independent jobs calls Done exactly once; the
// provided callback fires exactly once, on whichever Done call is last.
type CompletionCounter struct {
	mu       sync.Mutex
	remaining int
	onDone   func()
}

func NewCompletionCounter(n int, onDone func()) *CompletionCounter {
	return &CompletionCounter{remaining: n, onDone: onDone}
}

// Done records one job's completion. When the last of n jobs reports in,
// onDone fires exactly once.
func (c *CompletionCounter) Done() {
	c.mu.Lock()
	c.remaining--
	fire := c.remaining == 0
	c.mu.Unlock()

	if fire {
		c.onDone()
	}
}
