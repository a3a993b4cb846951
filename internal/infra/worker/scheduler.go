// Package worker runs ingestion cycles on a cron schedule.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/puntadelverde-srpm/srpm/internal/handler/http/respond"
	"github.com/puntadelverde-srpm/srpm/internal/usecase/digest"
)

// Runner is implemented by *digest.Service.
type Runner interface {
	RunIngestionCycle(ctx context.Context, perFeedLimit int) (*digest.CycleStats, error)
}

// Scheduler triggers a cycle on every tick. A tick that arrives while the
// previous cycle is still running is skipped.
type Scheduler struct {
	cfg     WorkerConfig
	runner  Runner
	metrics *WorkerMetrics
	logger  *slog.Logger
	cron    *cron.Cron

	running atomic.Bool
	ready   atomic.Bool
	wg      sync.WaitGroup

	baseCtx context.Context
	cancel  context.CancelFunc
}

func NewScheduler(cfg WorkerConfig, runner Runner, metrics *WorkerMetrics, logger *slog.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Scheduler{
		cfg:     cfg,
		runner:  runner,
		metrics: metrics,
		logger:  logger,
		cron: cron.New(
			cron.WithLocation(cfg.Location()),
			cron.WithLogger(cronLogger{logger}),
		),
	}
	if _, err := s.cron.AddFunc(cfg.CronSchedule, func() { s.RunOnce(s.baseCtx) }); err != nil {
		return nil, fmt.Errorf("add cron job: %w", err)
	}
	return s, nil
}

// Start begins scheduling. Cycles run with contexts derived from ctx.
func (s *Scheduler) Start(ctx context.Context) {
	s.baseCtx, s.cancel = context.WithCancel(ctx)
	s.cron.Start()

	if s.cfg.RunOnStartup {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.RunOnce(s.baseCtx)
		}()
	}

	s.ready.Store(true)
	s.logger.Info("worker started",
		slog.String("schedule", s.cfg.CronSchedule),
		slog.String("timezone", s.cfg.Timezone),
		slog.Bool("run_on_startup", s.cfg.RunOnStartup))
}

// Stop stops the schedule, cancels a running cycle and waits for it to
// return or for ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.ready.Store(false)
	cronDone := s.cron.Stop()
	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		<-cronDone.Done()
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("worker stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("worker stop: %w", ctx.Err())
	}
}

// RunOnce runs one cycle bounded by CycleTimeout. It returns false when the
// cycle was skipped because another one was in progress.
func (s *Scheduler) RunOnce(ctx context.Context) bool {
	if ctx == nil {
		ctx = context.Background()
	}
	if !s.running.CompareAndSwap(false, true) {
		s.record("skipped")
		s.logger.Warn("previous cycle still running, skipping tick")
		return false
	}
	defer s.running.Store(false)

	start := time.Now()
	s.record("started")
	s.logger.Info("scheduled cycle started")

	ctx, cancel := context.WithTimeout(ctx, s.cfg.CycleTimeout)
	defer cancel()

	stats, err := s.runner.RunIngestionCycle(ctx, 0)
	elapsed := time.Since(start)
	if s.metrics != nil {
		s.metrics.RecordJobDuration(elapsed.Seconds())
	}
	if err != nil {
		s.record("failure")
		s.logger.Error("scheduled cycle failed",
			slog.String("error", respond.SanitizeError(err)),
			slog.Duration("duration", elapsed))
		return true
	}

	s.record("success")
	if s.metrics != nil {
		s.metrics.RecordSummariesSaved(stats.SummariesSaved)
		s.metrics.RecordLastSuccess()
	}
	s.logger.Info("scheduled cycle completed",
		slog.Int("new_items", stats.NewItems),
		slog.Int("items_sent", stats.ItemsSent),
		slog.Int("summaries_saved", stats.SummariesSaved),
		slog.Duration("duration", elapsed))
	return true
}

func (s *Scheduler) record(status string) {
	if s.metrics != nil {
		s.metrics.RecordJobRun(status)
	}
}

// Ready reports whether the scheduler has started and not been stopped.
func (s *Scheduler) Ready() bool {
	return s.ready.Load()
}

// ReadyHandler answers readiness probes: 200 while scheduling, 503 otherwise.
func (s *Scheduler) ReadyHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if s.Ready() {
			respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
			return
		}
		respond.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
	})
}

// cronLogger routes robfig/cron's logs to slog.
type cronLogger struct{ l *slog.Logger }

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debug("cron: "+msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Error("cron: "+msg, append([]interface{}{"error", err}, keysAndValues...)...)
}

