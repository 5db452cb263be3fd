package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/config"
	"github.com/kaapav/kaapav-bot/internal/messenger"
	"github.com/kaapav/kaapav-bot/internal/repository"
	"github.com/kaapav/kaapav-bot/internal/telemetry"
	"github.com/kaapav/kaapav-bot/internal/worker"
)

type Service struct {
	Customer  CustomerService
	Chat      ChatService
	Order     OrderService
	Product   ProductService
	Broadcast BroadcastService
	Admin     AdminService
	Jobs      JobsService
	Scheduler SchedulerService
	Health    HealthService
}

// Deps are the collaborators shared by the services.
type Deps struct {
	Repo      repository.Repository
	Gateway   messenger.Gateway
	Redis     Pinger
	Sessions  SessionStore
	Payments  PaymentProvider
	Shipping  ShippingProvider
	Breakers  []BreakerReporter
	Workers   func() worker.Stats
	Telemetry func() telemetry.QueueStats
	Logger    *zap.Logger
	Now       func() time.Time
}

func NewService(cfg *config.Config, deps Deps) *Service {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	broadcastService := NewBroadcastService(cfg.Broadcast, deps.Repo, deps.Gateway, deps.Logger, WithClock(deps.Now))
	jobsService := NewJobsService(cfg, deps.Repo, deps.Gateway, broadcastService, deps.Logger, deps.Now)
	schedulerService := NewSchedulerService(cfg.Scheduler, jobsService, deps.Logger)

	return &Service{
		Customer:  NewCustomerService(deps.Repo, deps.Logger),
		Chat:      NewChatService(deps.Repo, deps.Gateway, deps.Logger),
		Order:     NewOrderService(deps.Repo, deps.Payments, deps.Shipping, deps.Gateway, deps.Logger, deps.Now),
		Product:   NewProductService(deps.Repo, deps.Logger),
		Broadcast: broadcastService,
		Admin:     NewAdminService(deps.Repo, deps.Sessions, deps.Logger, deps.Now),
		Jobs:      jobsService,
		Scheduler: schedulerService,
		Health: NewHealthService(HealthDeps{
			Repo:      deps.Repo,
			Redis:     deps.Redis,
			Scheduler: schedulerService,
			Breakers:  deps.Breakers,
			Workers:   deps.Workers,
			Telemetry: deps.Telemetry,
			Now:       deps.Now,
		}),
	}
}
