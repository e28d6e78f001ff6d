package card

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// job is one unit of rasterisation work submitted to the pool.
type job struct {
	fn    func() ([]byte, error)
	reply chan result
}

type result struct {
	data []byte
	err  error
}

// Pool is the bounded blocking-worker pool the card renderer rasterises
// PNGs on, generalized from the buffered-channel + sync.WaitGroup worker
// pool shape (donor: the pack's MOHCentral-opm-stats-api worker pool)
// down to "submit a render job, get a result back" with no batching and
// no domain-specific side effects. Admission is gated by a weighted
// semaphore sized to queueSize so a caller blocked on a full pool sees
// ctx cancellation rather than an unbounded goroutine pile-up (§5
// "Bounded resources").
type Pool struct {
	jobs        chan job
	workerCount int
	admission   *semaphore.Weighted
	wg          sync.WaitGroup
	cancel      context.CancelFunc
}

// NewPool creates a pool with workerCount goroutines and admission bounded
// to queueSize in-flight-or-queued jobs (§5 "Bounded resources").
func NewPool(workerCount, queueSize int) *Pool {
	if workerCount <= 0 {
		workerCount = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Pool{
		jobs:        make(chan job, queueSize),
		workerCount: workerCount,
		admission:   semaphore.NewWeighted(int64(queueSize)),
	}
}

// Start launches the worker goroutines. Safe to call once per Pool.
func (p *Pool) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case j, ok := <-p.jobs:
			if !ok {
				return
			}
			data, err := j.fn()
			j.reply <- result{data: data, err: err}
		case <-ctx.Done():
			return
		}
	}
}

// Stop cancels the workers and waits for in-flight jobs to finish. Queued
// but unstarted jobs are abandoned; Submit callers blocked on ctx will
// see ctx.Err().
func (p *Pool) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
}

// Submit acquires one admission slot, enqueues fn, and blocks until a
// worker runs it or ctx is done. Admission itself blocks (no load
// shedding) when the pool is at capacity, applying backpressure to the
// caller rather than dropping work.
func (p *Pool) Submit(ctx context.Context, fn func() ([]byte, error)) ([]byte, error) {
	if err := p.admission.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer p.admission.Release(1)

	reply := make(chan result, 1)
	select {
	case p.jobs <- job{fn: fn, reply: reply}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case r := <-reply:
		return r.data, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
