package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/config"
	"github.com/kaapav/kaapav-bot/internal/scheduler"
	"github.com/kaapav/kaapav-bot/internal/service"
	"github.com/kaapav/kaapav-bot/internal/service/mocks"
)

func TestSchedulerService_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	jobs := mocks.NewMockJobsService(ctrl)

	schedulerService := service.NewSchedulerService(config.SchedulerConfig{Enabled: true, JobTimeout: 60}, jobs, zap.NewNop())

	require.NoError(t, schedulerService.Start())
	assert.True(t, schedulerService.IsRunning())

	assert.Error(t, schedulerService.Start(), "second start is rejected")

	require.NoError(t, schedulerService.Stop())
	assert.False(t, schedulerService.IsRunning())
	assert.Error(t, schedulerService.Stop())
}

func TestSchedulerService_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	jobs := mocks.NewMockJobsService(ctrl)

	schedulerService := service.NewSchedulerService(config.SchedulerConfig{Enabled: false}, jobs, zap.NewNop())

	require.NoError(t, schedulerService.Start())
	assert.False(t, schedulerService.IsRunning())
}

func TestSchedulerService_RunJob(t *testing.T) {
	tests := []struct {
		name          string
		job           string
		setupMocks    func(*mocks.MockJobsService)
		expectedError error
	}{
		{
			name: "reminders",
			job:  "reminders",
			setupMocks: func(m *mocks.MockJobsService) {
				m.EXPECT().SweepReminders(gomock.Any()).Return(nil)
			},
		},
		{
			name: "scheduled broadcasts",
			job:  "scheduled_broadcasts",
			setupMocks: func(m *mocks.MockJobsService) {
				m.EXPECT().RunScheduledBroadcasts(gomock.Any()).Return(nil)
			},
		},
		{
			name: "cart reminders",
			job:  "cart_reminders",
			setupMocks: func(m *mocks.MockJobsService) {
				m.EXPECT().CartReminders(gomock.Any()).Return(nil)
			},
		},
		{
			name: "delivery reminders",
			job:  "delivery_reminders",
			setupMocks: func(m *mocks.MockJobsService) {
				m.EXPECT().DeliveryReminders(gomock.Any()).Return(nil)
			},
		},
		{
			name: "morning engagement",
			job:  "morning_engagement",
			setupMocks: func(m *mocks.MockJobsService) {
				m.EXPECT().MorningEngagement(gomock.Any()).Return(nil)
			},
		},
		{
			name: "evening engagement",
			job:  "evening_engagement",
			setupMocks: func(m *mocks.MockJobsService) {
				m.EXPECT().EveningEngagement(gomock.Any()).Return(nil)
			},
		},
		{
			name: "cleanup failure is returned",
			job:  "nightly_cleanup",
			setupMocks: func(m *mocks.MockJobsService) {
				m.EXPECT().NightlyCleanup(gomock.Any()).Return(errors.New("prune failed"))
			},
			expectedError: errors.New("prune failed"),
		},
		{
			name: "daily report",
			job:  "daily_report",
			setupMocks: func(m *mocks.MockJobsService) {
				m.EXPECT().DailyReport(gomock.Any()).Return(nil)
			},
		},
		{
			name: "resegment",
			job:  "resegment",
			setupMocks: func(m *mocks.MockJobsService) {
				m.EXPECT().Resegment(gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			jobs := mocks.NewMockJobsService(ctrl)
			tt.setupMocks(jobs)

			schedulerService := service.NewSchedulerService(config.SchedulerConfig{}, jobs, zap.NewNop())
			err := schedulerService.RunJob(context.Background(), tt.job)

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSchedulerService_RunJob_Unknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	schedulerService := service.NewSchedulerService(config.SchedulerConfig{}, mocks.NewMockJobsService(ctrl), zap.NewNop())

	err := schedulerService.RunJob(context.Background(), "mine_bitcoin")

	assert.ErrorIs(t, err, service.ErrInvalidInput)
	assert.ErrorIs(t, err, scheduler.ErrUnknownJob)
}
