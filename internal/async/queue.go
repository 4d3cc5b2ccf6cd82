// Package async runs receipt uploads on a bounded worker pool so drop-folder
// bursts and API calls don't block on document analysis.
package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"
)

// Job is one document waiting for the upload workflow.
type Job struct {
	UserID      uuid.UUID
	Path        string
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// Handler runs the upload workflow for one job.
type Handler func(ctx context.Context, job Job) error

type UploadQueue struct {
	handler Handler
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*UploadQueue)

func WithWorkers(n int) Option {
	return func(q *UploadQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *UploadQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *UploadQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewUploadQueue(handler Handler, logger *slog.Logger, opts ...Option) *UploadQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &UploadQueue{
		handler: handler,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *UploadQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("async.worker.started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.handler(ctx, job)
					cancel()

					if err != nil {
						q.logger.Error("async.job.failed", "worker_id", workerID, "path", job.Path, "error", err)
					} else {
						q.logger.Info("async.job.ok", "worker_id", workerID, "path", job.Path)
					}
				}

				q.logger.Info("async.worker.stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *UploadQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("async.enqueue.rejected", "path", job.Path)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("async.enqueue.ok", "path", job.Path)
	default:
		q.logger.Warn("async.enqueue.backpressure", "path", job.Path)
		q.ch <- job
	}
	return nil
}

func (q *UploadQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("async.shutdown.interrupted")
	case <-done:
		q.logger.Info("async.shutdown.complete")
	}
}
