package internal

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Task is one periodic unit of work. Run receives a context that stays
// live through a graceful shutdown and is cancelled only once the grace
// period expires.
type Task struct {
	Name     string
	Interval time.Duration
	Run      func(context.Context) error

	running int32
}

// Scheduler owns a small fixed worker pool executing periodic tasks.
// It is constructed once at process start and passed to whoever needs to
// stop it; there is no package-level instance. A task run never overlaps
// itself: a tick that arrives while the previous run is still going is
// skipped. Shutdown cancels the schedule and waits a bounded time for
// in-flight runs; only after that wait expires are the runs themselves
// cancelled.
type Scheduler struct {
	logger  *zap.SugaredLogger
	workers int

	jobs      chan *Task
	cancel    context.CancelFunc
	cancelRun context.CancelFunc
	wg        sync.WaitGroup
}

func NewScheduler(workers int, logger *zap.SugaredLogger) *Scheduler {
	if workers < 1 {
		workers = 1
	}
	return &Scheduler{
		logger:  logger,
		workers: workers,
		jobs:    make(chan *Task),
	}
}

func (s *Scheduler) Start(tasks ...*Task) {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	// Runs get their own context so a graceful shutdown does not abort
	// work already in flight.
	runCtx, cancelRun := context.WithCancel(context.Background())
	s.cancelRun = cancelRun

	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		go s.worker(ctx, runCtx)
	}

	for _, t := range tasks {
		s.wg.Add(1)
		go s.tick(ctx, t)
	}
}

func (s *Scheduler) tick(ctx context.Context, t *Task) {
	defer s.wg.Done()

	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			select {
			case s.jobs <- t:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (s *Scheduler) worker(ctx, runCtx context.Context) {
	defer s.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-s.jobs:
			s.run(runCtx, t)
		}
	}
}

func (s *Scheduler) run(ctx context.Context, t *Task) {
	if !atomic.CompareAndSwapInt32(&t.running, 0, 1) {
		s.logger.Infow("task still running, tick skipped", "task", t.Name)
		return
	}
	defer atomic.StoreInt32(&t.running, 0)

	defer func() {
		if r := recover(); r != nil {
			s.logger.Errorw("task panicked", "task", t.Name, "panic", r)
		}
	}()

	if err := t.Run(ctx); err != nil {
		s.logger.Errorw("task failed", "task", t.Name, "error", err)
	}
}

// Shutdown stops the schedule and waits up to timeout for in-flight runs.
// In-flight runs keep an uncancelled context during the wait; their
// context is cancelled only when the wait times out.
func (s *Scheduler) Shutdown(timeout time.Duration) {
	if s.cancel == nil {
		return
	}
	s.cancel()
	defer s.cancelRun()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("scheduler stopped")
	case <-time.After(timeout):
		s.logger.Warn("scheduler shutdown timed out, cancelling in-flight runs")
	}
}
