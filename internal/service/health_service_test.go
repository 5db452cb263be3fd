package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kaapav/kaapav-bot/internal/breaker"
	"github.com/kaapav/kaapav-bot/internal/repository/mocks"
	"github.com/kaapav/kaapav-bot/internal/service"
	servicemocks "github.com/kaapav/kaapav-bot/internal/service/mocks"
	"github.com/kaapav/kaapav-bot/internal/worker"
)

type healthMocks struct {
	repo      *mocks.MockRepository
	redis     *servicemocks.MockPinger
	scheduler *servicemocks.MockSchedulerService
	whatsapp  *servicemocks.MockBreakerReporter
}

func TestHealthService_GetHealth(t *testing.T) {
	tests := []struct {
		name                    string
		setupMocks              func(m healthMocks)
		expectedStatus          string
		expectedSchedulerStatus string
		expectedDatabaseStatus  string
		expectedRedisStatus     string
		expectedSummary         string
	}{
		{
			name: "everything up",
			setupMocks: func(m healthMocks) {
				m.scheduler.EXPECT().IsRunning().Return(true)
				m.repo.EXPECT().Ping(gomock.Any()).Return(nil)
				m.redis.EXPECT().Ping(gomock.Any()).Return(nil)
				m.whatsapp.EXPECT().GetState().Return(breaker.StateClosed)
				m.whatsapp.EXPECT().GetCounts().Return(uint32(100), uint32(5))
			},
			expectedStatus:          service.StatusHealthy,
			expectedSchedulerStatus: service.SchedulerRunning,
			expectedDatabaseStatus:  service.Connected,
			expectedRedisStatus:     service.Connected,
			expectedSummary:         "Requests: 100, Failures: 5 (5.0%)",
		},
		{
			name: "redis down",
			setupMocks: func(m healthMocks) {
				m.scheduler.EXPECT().IsRunning().Return(false)
				m.repo.EXPECT().Ping(gomock.Any()).Return(nil)
				m.redis.EXPECT().Ping(gomock.Any()).Return(errors.New("dial tcp: connection refused"))
				m.whatsapp.EXPECT().GetState().Return(breaker.StateClosed)
				m.whatsapp.EXPECT().GetCounts().Return(uint32(0), uint32(0))
			},
			expectedStatus:          service.StatusUnhealthy,
			expectedSchedulerStatus: service.SchedulerStopped,
			expectedDatabaseStatus:  service.Connected,
			expectedRedisStatus:     service.Disconnected,
			expectedSummary:         "No requests yet",
		},
		{
			name: "database down",
			setupMocks: func(m healthMocks) {
				m.scheduler.EXPECT().IsRunning().Return(true)
				m.repo.EXPECT().Ping(gomock.Any()).Return(errors.New("connection failed"))
				m.redis.EXPECT().Ping(gomock.Any()).Return(nil)
				m.whatsapp.EXPECT().GetState().Return(breaker.StateHalfOpen)
				m.whatsapp.EXPECT().GetCounts().Return(uint32(3), uint32(1))
			},
			expectedStatus:          service.StatusUnhealthy,
			expectedSchedulerStatus: service.SchedulerRunning,
			expectedDatabaseStatus:  service.Disconnected,
			expectedRedisStatus:     service.Connected,
			expectedSummary:         "Requests: 3, Failures: 1 (33.3%)",
		},
		{
			name: "open breaker degrades",
			setupMocks: func(m healthMocks) {
				m.scheduler.EXPECT().IsRunning().Return(true)
				m.repo.EXPECT().Ping(gomock.Any()).Return(errors.New("db error"))
				m.redis.EXPECT().Ping(gomock.Any()).Return(nil)
				m.whatsapp.EXPECT().GetState().Return(breaker.StateOpen)
				m.whatsapp.EXPECT().GetCounts().Return(uint32(10), uint32(10))
			},
			expectedStatus:          service.StatusDegraded,
			expectedSchedulerStatus: service.SchedulerRunning,
			expectedDatabaseStatus:  service.Disconnected,
			expectedRedisStatus:     service.Connected,
			expectedSummary:         "Requests: 10, Failures: 10 (100.0%)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			m := healthMocks{
				repo:      mocks.NewMockRepository(ctrl),
				redis:     servicemocks.NewMockPinger(ctrl),
				scheduler: servicemocks.NewMockSchedulerService(ctrl),
				whatsapp:  servicemocks.NewMockBreakerReporter(ctrl),
			}
			m.whatsapp.EXPECT().Name().Return("whatsapp").AnyTimes()
			tt.setupMocks(m)

			now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
			healthService := service.NewHealthService(service.HealthDeps{
				Repo:      m.repo,
				Redis:     m.redis,
				Scheduler: m.scheduler,
				Breakers:  []service.BreakerReporter{m.whatsapp},
				Now:       func() time.Time { return now },
			})

			status := healthService.GetHealth(context.Background())

			require.NotNil(t, status)
			assert.Equal(t, tt.expectedStatus, status.Status)
			assert.Equal(t, tt.expectedSchedulerStatus, status.SchedulerStatus)
			assert.Equal(t, tt.expectedDatabaseStatus, status.DatabaseStatus)
			assert.Equal(t, tt.expectedRedisStatus, status.RedisStatus)
			require.Len(t, status.Breakers, 1)
			assert.Equal(t, "whatsapp", status.Breakers[0].Name)
			assert.Equal(t, tt.expectedSummary, status.Breakers[0].Summary)
			assert.Equal(t, now, status.CheckedAt)
			assert.Nil(t, status.Workers)
		})
	}
}

func TestHealthService_GetHealth_IncludesWorkerStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	repo.EXPECT().Ping(gomock.Any()).Return(nil)

	healthService := service.NewHealthService(service.HealthDeps{
		Repo:    repo,
		Workers: func() worker.Stats { return worker.Stats{} },
	})

	status := healthService.GetHealth(context.Background())

	assert.Equal(t, service.StatusUnhealthy, status.Status, "no redis configured")
	assert.Equal(t, service.Disconnected, status.RedisStatus)
	assert.Equal(t, service.SchedulerStopped, status.SchedulerStatus)
	assert.NotNil(t, status.Workers)
	assert.Empty(t, status.Breakers)
}
