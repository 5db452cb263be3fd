package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is one unit of periodic work.
type Job int

const (
	JobReminders Job = iota
	JobScheduledBroadcasts
	JobCartReminders
	JobDeliveryReminders
	JobMorningEngagement
	JobEveningEngagement
	JobNightlyCleanup
	JobDailyReport
	JobResegment
)

var jobNames = map[Job]string{
	JobReminders:           "reminders",
	JobScheduledBroadcasts: "scheduled_broadcasts",
	JobCartReminders:       "cart_reminders",
	JobDeliveryReminders:   "delivery_reminders",
	JobMorningEngagement:   "morning_engagement",
	JobEveningEngagement:   "evening_engagement",
	JobNightlyCleanup:      "nightly_cleanup",
	JobDailyReport:         "daily_report",
	JobResegment:           "resegment",
}

func (j Job) String() string {
	if name, ok := jobNames[j]; ok {
		return name
	}
	return fmt.Sprintf("job(%d)", int(j))
}

// ParseJob resolves a job by name.
func ParseJob(name string) (Job, bool) {
	for job, n := range jobNames {
		if n == name {
			return job, true
		}
	}
	return 0, false
}

// Entry runs its jobs in order whenever Spec fires.
type Entry struct {
	Spec string
	Jobs []Job
}

// Table is the dispatch table, evaluated in UTC. 03:30 and 13:30 UTC are
// 09:00 and 19:00 IST.
var Table = []Entry{
	{Spec: "*/5 * * * *", Jobs: []Job{JobReminders, JobScheduledBroadcasts}},
	{Spec: "0 * * * *", Jobs: []Job{JobCartReminders}},
	{Spec: "30 3 * * *", Jobs: []Job{JobDeliveryReminders, JobMorningEngagement}},
	{Spec: "30 13 * * *", Jobs: []Job{JobEveningEngagement}},
	{Spec: "0 0 * * *", Jobs: []Job{JobNightlyCleanup, JobDailyReport, JobResegment}},
}

// Runner executes one job.
type Runner func(ctx context.Context, job Job) error

// Scheduler fires the dispatch table on a cron clock.
type Scheduler struct {
	logger  *zap.Logger
	timeout time.Duration
	run     Runner
	entries []Entry

	cron      *cron.Cron
	ctx       context.Context
	cancel    context.CancelFunc
	isRunning bool
	mu        sync.RWMutex
}

// NewScheduler creates a scheduler for table. Each job gets timeout to finish.
func NewScheduler(logger *zap.Logger, timeout time.Duration, table []Entry, run Runner) *Scheduler {
	if timeout <= 0 {
		timeout = 4 * time.Minute
	}
	return &Scheduler{
		logger:  logger,
		timeout: timeout,
		run:     run,
		entries: table,
	}
}

// Start registers the table and begins firing.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return ErrAlreadyRunning
	}

	log := cronLogger{s.logger.Sugar()}
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(log),
		cron.WithChain(cron.Recover(log), cron.SkipIfStillRunning(log)),
	)

	s.ctx, s.cancel = context.WithCancel(ctx)
	for _, entry := range s.entries {
		if _, err := c.AddFunc(entry.Spec, s.fire(entry)); err != nil {
			s.cancel()
			return fmt.Errorf("failed to register %q: %w", entry.Spec, err)
		}
	}

	c.Start()
	s.cron = c
	s.isRunning = true

	s.logger.Info("Scheduler started", zap.Int("entries", len(s.entries)))
	return nil
}

// Stop halts the clock and waits for running jobs.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return ErrNotRunning
	}
	c := s.cron
	s.isRunning = false
	s.mu.Unlock()

	<-c.Stop().Done()
	s.cancel()

	s.logger.Info("Scheduler stopped")
	return nil
}

// IsRunning returns whether the scheduler is currently running.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// RunNow executes a single job outside the clock.
func (s *Scheduler) RunNow(ctx context.Context, job Job) error {
	return s.executeJob(ctx, job)
}

func (s *Scheduler) fire(entry Entry) func() {
	return func() {
		for _, job := range entry.Jobs {
			if s.ctx.Err() != nil {
				return
			}
			_ = s.executeJob(s.ctx, job)
		}
	}
}

// executeJob runs one job with its own deadline; failures are logged so the
// remaining jobs of the entry still run.
func (s *Scheduler) executeJob(ctx context.Context, job Job) error {
	jobCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := time.Now()
	err := s.run(jobCtx, job)
	if err != nil {
		s.logger.Error("Scheduled job failed", zap.Stringer("job", job), zap.Error(err))
	} else {
		s.logger.Info("Scheduled job completed", zap.Stringer("job", job), zap.Duration("duration", time.Since(started)))
	}
	return err
}

// cronLogger adapts zap to the cron.Logger interface.
type cronLogger struct {
	sugar *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, append(keysAndValues, "error", err)...)
}
