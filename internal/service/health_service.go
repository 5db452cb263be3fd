package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kaapav/kaapav-bot/internal/breaker"
	"github.com/kaapav/kaapav-bot/internal/repository"
	"github.com/kaapav/kaapav-bot/internal/telemetry"
	"github.com/kaapav/kaapav-bot/internal/worker"
)

const pingTimeout = 2 * time.Second

// HealthDeps are the components the health report inspects. Workers and
// Telemetry are optional.
type HealthDeps struct {
	Repo      repository.Repository
	Redis     Pinger
	Scheduler SchedulerService
	Breakers  []BreakerReporter
	Workers   func() worker.Stats
	Telemetry func() telemetry.QueueStats
	Now       func() time.Time
}

type healthService struct {
	deps HealthDeps
}

func NewHealthService(deps HealthDeps) HealthService {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &healthService{deps: deps}
}

func (s *healthService) GetHealth(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:    StatusHealthy,
		CheckedAt: s.deps.Now().UTC(),
	}

	if s.deps.Scheduler != nil && s.deps.Scheduler.IsRunning() {
		status.SchedulerStatus = SchedulerRunning
	} else {
		status.SchedulerStatus = SchedulerStopped
	}

	status.DatabaseStatus = s.ping(ctx, s.deps.Repo)
	status.RedisStatus = s.ping(ctx, s.deps.Redis)

	open := false
	for _, b := range s.deps.Breakers {
		bs := breakerStatus(b)
		if bs.State == breaker.StateOpen {
			open = true
		}
		status.Breakers = append(status.Breakers, bs)
	}

	if s.deps.Workers != nil {
		w := s.deps.Workers()
		status.Workers = &w
	}
	if s.deps.Telemetry != nil {
		q := s.deps.Telemetry()
		status.Telemetry = &q
	}

	if status.DatabaseStatus != Connected || status.RedisStatus != Connected {
		status.Status = StatusUnhealthy
	}

	// An open breaker means a provider is down but the bot still answers.
	if open {
		status.Status = StatusDegraded
	}

	return status
}

func (s *healthService) ping(ctx context.Context, p Pinger) string {
	if p == nil {
		return Disconnected
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := p.Ping(ctx); err != nil {
		return Disconnected
	}
	return Connected
}

func breakerStatus(b BreakerReporter) BreakerStatus {
	requests, failures := b.GetCounts()
	bs := BreakerStatus{
		Name:     b.Name(),
		State:    b.GetState(),
		Requests: requests,
		Failures: failures,
	}
	if requests > 0 {
		failureRate := float64(failures) / float64(requests) * 100
		bs.Summary = fmt.Sprintf("Requests: %d, Failures: %d (%.1f%%)", requests, failures, failureRate)
	} else {
		bs.Summary = "No requests yet"
	}
	return bs
}
