package scheduler_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/scheduler"
)

func noop(context.Context, scheduler.Job) error { return nil }

func TestScheduler_Start(t *testing.T) {
	tests := []struct {
		name           string
		setupScheduler func() *scheduler.Scheduler
		expectedError  error
	}{
		{
			name: "success",
			setupScheduler: func() *scheduler.Scheduler {
				return scheduler.NewScheduler(zap.NewNop(), time.Second, scheduler.Table, noop)
			},
			expectedError: nil,
		},
		{
			name: "already running",
			setupScheduler: func() *scheduler.Scheduler {
				s := scheduler.NewScheduler(zap.NewNop(), time.Second, scheduler.Table, noop)
				require.NoError(t, s.Start(context.Background()))
				return s
			},
			expectedError: scheduler.ErrAlreadyRunning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.setupScheduler()
			defer func() {
				if s.IsRunning() {
					_ = s.Stop()
				}
			}()

			err := s.Start(context.Background())
			assert.Equal(t, tt.expectedError, err)
		})
	}
}

func TestScheduler_StartRejectsBadSpec(t *testing.T) {
	s := scheduler.NewScheduler(zap.NewNop(), time.Second, []scheduler.Entry{{Spec: "every tuesday", Jobs: []scheduler.Job{scheduler.JobReminders}}}, noop)

	err := s.Start(context.Background())

	assert.Error(t, err)
	assert.False(t, s.IsRunning())
}

func TestScheduler_Stop(t *testing.T) {
	s := scheduler.NewScheduler(zap.NewNop(), time.Second, scheduler.Table, noop)
	assert.Equal(t, scheduler.ErrNotRunning, s.Stop())

	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.IsRunning())
	assert.NoError(t, s.Stop())
	assert.False(t, s.IsRunning())
}

func TestTable_SpecsParseInUTC(t *testing.T) {
	base := time.Date(2026, 3, 10, 0, 1, 0, 0, time.UTC)
	want := map[string]time.Time{
		"*/5 * * * *": time.Date(2026, 3, 10, 0, 5, 0, 0, time.UTC),
		"0 * * * *":   time.Date(2026, 3, 10, 1, 0, 0, 0, time.UTC),
		"30 3 * * *":  time.Date(2026, 3, 10, 3, 30, 0, 0, time.UTC),
		"30 13 * * *": time.Date(2026, 3, 10, 13, 30, 0, 0, time.UTC),
		"0 0 * * *":   time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
	}

	require.Len(t, scheduler.Table, len(want))
	for _, entry := range scheduler.Table {
		schedule, err := cron.ParseStandard(entry.Spec)
		require.NoError(t, err, entry.Spec)
		assert.Equal(t, want[entry.Spec], schedule.Next(base), entry.Spec)
		assert.NotEmpty(t, entry.Jobs, entry.Spec)
	}
}

func TestJob_Names(t *testing.T) {
	for _, entry := range scheduler.Table {
		for _, job := range entry.Jobs {
			parsed, ok := scheduler.ParseJob(job.String())
			assert.True(t, ok, job.String())
			assert.Equal(t, job, parsed)
		}
	}

	_, ok := scheduler.ParseJob("launch_rockets")
	assert.False(t, ok)
	assert.Equal(t, "job(99)", scheduler.Job(99).String())
}

func TestScheduler_RunNow(t *testing.T) {
	var got scheduler.Job
	var deadline bool
	s := scheduler.NewScheduler(zap.NewNop(), time.Minute, scheduler.Table, func(ctx context.Context, job scheduler.Job) error {
		got = job
		_, deadline = ctx.Deadline()
		return errors.New("boom")
	})

	err := s.RunNow(context.Background(), scheduler.JobDailyReport)

	assert.EqualError(t, err, "boom")
	assert.Equal(t, scheduler.JobDailyReport, got)
	assert.True(t, deadline, "jobs run with a timeout")
}

func TestScheduler_FiresEntryJobsInOrder(t *testing.T) {
	var mu sync.Mutex
	var ran []scheduler.Job
	table := []scheduler.Entry{{
		Spec: "@every 1s",
		Jobs: []scheduler.Job{scheduler.JobNightlyCleanup, scheduler.JobDailyReport, scheduler.JobResegment},
	}}

	s := scheduler.NewScheduler(zap.NewNop(), time.Second, table, func(_ context.Context, job scheduler.Job) error {
		mu.Lock()
		defer mu.Unlock()
		ran = append(ran, job)
		if job == scheduler.JobNightlyCleanup {
			return errors.New("cleanup failed")
		}
		return nil
	})
	require.NoError(t, s.Start(context.Background()))
	defer func() { _ = s.Stop() }()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(ran) >= 3
	}, 3*time.Second, 50*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []scheduler.Job{scheduler.JobNightlyCleanup, scheduler.JobDailyReport, scheduler.JobResegment}, ran[:3])
}

func TestScheduler_ConcurrentAccess(t *testing.T) {
	s := scheduler.NewScheduler(zap.NewNop(), time.Second, scheduler.Table, noop)

	done := make(chan bool)
	errs := make(chan error, 10)

	for i := 0; i < 5; i++ {
		go func() {
			if err := s.Start(context.Background()); err != nil && err != scheduler.ErrAlreadyRunning {
				errs <- err
			}
			done <- true
		}()
	}

	for i := 0; i < 5; i++ {
		<-done
	}

	assert.True(t, s.IsRunning())
	assert.Len(t, errs, 0)
	assert.NoError(t, s.Stop())
}
