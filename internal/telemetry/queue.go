// Package telemetry runs best-effort side work (message mirroring,
// analytics, sink delivery) off the request path.
package telemetry

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Task is one unit of side work. Its error is logged and dropped.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

type QueueStats struct {
	Submitted int64 `json:"submitted"`
	Processed int64 `json:"processed"`
	Dropped   int64 `json:"dropped"`
	Failed    int64 `json:"failed"`
	Depth     int   `json:"depth"`
}

// Queue is a bounded task queue. Submit never blocks: when the buffer is
// full or the queue is stopped the task is dropped.
type Queue struct {
	tasks   chan Task
	workers int
	timeout time.Duration
	logger  *zap.Logger

	wg       sync.WaitGroup
	stopOnce sync.Once
	mu       sync.RWMutex
	stopped  bool

	submitted int64
	processed int64
	dropped   int64
	failed    int64
}

func NewQueue(size, workers int, timeout time.Duration, logger *zap.Logger) *Queue {
	if size <= 0 {
		size = 1000
	}
	if workers <= 0 {
		workers = 2
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Queue{
		tasks:   make(chan Task, size),
		workers: workers,
		timeout: timeout,
		logger:  logger,
	}
}

func (q *Queue) Start() {
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.run()
	}
	q.logger.Info("Telemetry queue started",
		zap.Int("workers", q.workers),
		zap.Int("capacity", cap(q.tasks)))
}

// Submit enqueues fn and reports whether it was accepted.
func (q *Queue) Submit(name string, fn func(ctx context.Context) error) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.stopped {
		atomic.AddInt64(&q.dropped, 1)
		return false
	}

	select {
	case q.tasks <- Task{Name: name, Run: fn}:
		atomic.AddInt64(&q.submitted, 1)
		return true
	default:
		atomic.AddInt64(&q.dropped, 1)
		q.logger.Warn("Telemetry queue full, dropping task", zap.String("task", name))
		return false
	}
}

// Stop refuses new tasks and waits for queued ones to drain, or for ctx.
func (q *Queue) Stop(ctx context.Context) {
	q.stopOnce.Do(func() {
		q.mu.Lock()
		q.stopped = true
		close(q.tasks)
		q.mu.Unlock()

		done := make(chan struct{})
		go func() {
			q.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			q.logger.Info("Telemetry queue drained")
		case <-ctx.Done():
			q.logger.Warn("Telemetry queue stop timed out", zap.Int("pending", len(q.tasks)))
		}
	})
}

func (q *Queue) Stats() QueueStats {
	return QueueStats{
		Submitted: atomic.LoadInt64(&q.submitted),
		Processed: atomic.LoadInt64(&q.processed),
		Dropped:   atomic.LoadInt64(&q.dropped),
		Failed:    atomic.LoadInt64(&q.failed),
		Depth:     len(q.tasks),
	}
}

func (q *Queue) run() {
	defer q.wg.Done()
	for task := range q.tasks {
		q.execute(task)
	}
}

func (q *Queue) execute(task Task) {
	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			atomic.AddInt64(&q.failed, 1)
			q.logger.Error("Telemetry task panicked", zap.String("task", task.Name), zap.Any("panic", r))
		}
	}()

	if err := task.Run(ctx); err != nil {
		atomic.AddInt64(&q.failed, 1)
		q.logger.Warn("Telemetry task failed", zap.String("task", task.Name), zap.Error(err))
	}
	atomic.AddInt64(&q.processed, 1)
}
