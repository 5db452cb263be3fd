package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/config"
	"github.com/kaapav/kaapav-bot/internal/scheduler"
)

type schedulerService struct {
	scheduler *scheduler.Scheduler
	jobs      JobsService
	enabled   bool
	logger    *zap.Logger
}

func NewSchedulerService(
	cfg config.SchedulerConfig,
	jobs JobsService,
	logger *zap.Logger,
) SchedulerService {
	timeout := time.Duration(cfg.JobTimeout) * time.Second

	svc := &schedulerService{
		jobs:    jobs,
		enabled: cfg.Enabled,
		logger:  logger,
	}

	svc.scheduler = scheduler.NewScheduler(logger, timeout, scheduler.Table, svc.execute)
	return svc
}

// Start begins the cron clock. A disabled scheduler stays stopped but jobs
// can still be triggered through RunJob.
func (s *schedulerService) Start() error {
	if !s.enabled {
		s.logger.Info("Scheduler disabled by configuration")
		return nil
	}
	return s.scheduler.Start(context.Background())
}

func (s *schedulerService) Stop() error {
	return s.scheduler.Stop()
}

func (s *schedulerService) IsRunning() bool {
	return s.scheduler.IsRunning()
}

func (s *schedulerService) RunJob(ctx context.Context, name string) error {
	job, ok := scheduler.ParseJob(name)
	if !ok {
		return fmt.Errorf("%w: %w %q", ErrInvalidInput, scheduler.ErrUnknownJob, name)
	}
	return s.scheduler.RunNow(ctx, job)
}

func (s *schedulerService) execute(ctx context.Context, job scheduler.Job) error {
	switch job {
	case scheduler.JobReminders:
		return s.jobs.SweepReminders(ctx)
	case scheduler.JobScheduledBroadcasts:
		return s.jobs.RunScheduledBroadcasts(ctx)
	case scheduler.JobCartReminders:
		return s.jobs.CartReminders(ctx)
	case scheduler.JobDeliveryReminders:
		return s.jobs.DeliveryReminders(ctx)
	case scheduler.JobMorningEngagement:
		return s.jobs.MorningEngagement(ctx)
	case scheduler.JobEveningEngagement:
		return s.jobs.EveningEngagement(ctx)
	case scheduler.JobNightlyCleanup:
		return s.jobs.NightlyCleanup(ctx)
	case scheduler.JobDailyReport:
		return s.jobs.DailyReport(ctx)
	case scheduler.JobResegment:
		return s.jobs.Resegment(ctx)
	default:
		return fmt.Errorf("no handler for %s", job)
	}
}
