// Package worker runs webhook processing on a fixed set of goroutines.
// Jobs with the same key always land on the same worker, so one sender's
// messages are handled in arrival order.
package worker

import (
	"context"
	"hash/fnv"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Job is one unit of work for a key.
type Job struct {
	Key     string
	Handler func(ctx context.Context) error
}

type Stats struct {
	Workers    int   `json:"workers"`
	QueueSize  int   `json:"queue_size"`
	Dispatched int64 `json:"dispatched"`
	Processed  int64 `json:"processed"`
	Dropped    int64 `json:"dropped"`
	Errors     int64 `json:"errors"`
	Depth      int   `json:"depth"`
}

type Pool struct {
	numWorkers int
	queueSize  int
	queues     []chan Job
	logger     *zap.Logger

	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	mu       sync.RWMutex
	started  bool
	stopped  bool
	stopOnce sync.Once

	dispatched int64
	processed  int64
	dropped    int64
	errors     int64
}

func NewPool(numWorkers, queueSize int, logger *zap.Logger) *Pool {
	if numWorkers <= 0 {
		numWorkers = 8
	}
	if queueSize <= 0 {
		queueSize = 100
	}
	queues := make([]chan Job, numWorkers)
	for i := range queues {
		queues[i] = make(chan Job, queueSize)
	}
	return &Pool{
		numWorkers: numWorkers,
		queueSize:  queueSize,
		queues:     queues,
		logger:     logger,
	}
}

// Start launches the workers. Jobs see a context cancelled by Stop.
func (p *Pool) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started || p.stopped {
		return
	}
	p.started = true
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i, q := range p.queues {
		p.wg.Add(1)
		go p.run(i, q)
	}
	p.logger.Info("Worker pool started", zap.Int("workers", p.numWorkers), zap.Int("queue_size", p.queueSize))
}

// TryDispatch queues job on its key's worker without blocking. It reports
// false when the worker's queue is full or the pool is stopped.
func (p *Pool) TryDispatch(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		atomic.AddInt64(&p.dropped, 1)
		return false
	}
	shard := p.shard(job.Key)
	select {
	case p.queues[shard] <- job:
		atomic.AddInt64(&p.dispatched, 1)
		return true
	default:
		atomic.AddInt64(&p.dropped, 1)
		p.logger.Warn("Worker queue full, dropping job", zap.Int("worker", shard), zap.String("key", job.Key))
		return false
	}
}

// Stop closes the queues and waits for queued jobs to finish or ctx to end.
func (p *Pool) Stop(ctx context.Context) {
	p.stopOnce.Do(func() {
		p.mu.Lock()
		p.stopped = true
		for _, q := range p.queues {
			close(q)
		}
		started := p.started
		p.mu.Unlock()
		if !started {
			return
		}

		done := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
			p.logger.Info("Worker pool stopped")
		case <-ctx.Done():
			p.cancel()
			p.logger.Warn("Worker pool stop timed out, cancelling jobs")
			<-done
		}
		p.cancel()
	})
}

func (p *Pool) Stats() Stats {
	depth := 0
	for _, q := range p.queues {
		depth += len(q)
	}
	return Stats{
		Workers:    p.numWorkers,
		QueueSize:  p.queueSize,
		Dispatched: atomic.LoadInt64(&p.dispatched),
		Processed:  atomic.LoadInt64(&p.processed),
		Dropped:    atomic.LoadInt64(&p.dropped),
		Errors:     atomic.LoadInt64(&p.errors),
		Depth:      depth,
	}
}

func (p *Pool) shard(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(p.numWorkers))
}

func (p *Pool) run(id int, queue <-chan Job) {
	defer p.wg.Done()
	for job := range queue {
		p.execute(id, job)
	}
}

func (p *Pool) execute(id int, job Job) {
	defer func() {
		if r := recover(); r != nil {
			atomic.AddInt64(&p.errors, 1)
			p.logger.Error("Worker job panicked", zap.Int("worker", id), zap.String("key", job.Key), zap.Any("panic", r))
		}
		atomic.AddInt64(&p.processed, 1)
	}()

	if err := job.Handler(p.ctx); err != nil {
		atomic.AddInt64(&p.errors, 1)
		p.logger.Error("Worker job failed", zap.Int("worker", id), zap.String("key", job.Key), zap.Error(err))
	}
}
