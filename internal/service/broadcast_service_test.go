package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/config"
	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/repository"
	"github.com/kaapav/kaapav-bot/internal/service"
	"github.com/kaapav/kaapav-bot/internal/whatsapp"
)

func noSleep(context.Context, time.Duration) error { return nil }

func newBroadcastService(f *fixture, batch int, opts ...service.BroadcastOption) service.BroadcastService {
	opts = append([]service.BroadcastOption{service.WithSleep(noSleep), service.WithClock(clock)}, opts...)
	return service.NewBroadcastService(config.BroadcastConfig{BatchSize: batch, DefaultSendRate: 60}, f.repo, f.gateway, zap.NewNop(), opts...)
}

func phones(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("9198000%05d", i)
	}
	return out
}

func draft(id string) *models.Broadcast {
	return &models.Broadcast{
		BroadcastID: id,
		TargetType:  models.TargetAll,
		MessageType: models.BroadcastText,
		Message:     "New festive collection is live ✨",
		SendRate:    60,
		Status:      models.BroadcastStatusDraft,
	}
}

// expectClaim primes the claim sequence for a broadcast over recipients.
func expectClaim(f *fixture, b *models.Broadcast, recipients []string) {
	f.broadcast.EXPECT().Get(gomock.Any(), b.BroadcastID).Return(b, nil)
	f.customers.EXPECT().Recipients(gomock.Any(), repository.RecipientQuery{Target: b.TargetType}).Return(recipients, nil)
	f.broadcast.EXPECT().Start(gomock.Any(), b.BroadcastID, recipients).Return(true, nil)
}

func TestBroadcastService_Execute_AccountsForEveryRecipient(t *testing.T) {
	f := newFixture(t)
	b := draft("BC-1")
	recipients := phones(45)
	expectClaim(f, b, recipients)

	var mu sync.Mutex
	recorded := map[string]string{}
	f.gateway.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg whatsapp.Message) (string, error) {
			if strings.HasSuffix(msg.To, "3") {
				return "", errors.New("recipient not on whatsapp")
			}
			return "wamid." + msg.To, nil
		}).Times(45)
	f.broadcast.EXPECT().RecordResult(gomock.Any(), "BC-1", gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, phone, _, errMsg string) error {
			mu.Lock()
			defer mu.Unlock()
			recorded[phone] = errMsg
			return nil
		}).Times(45)
	f.broadcast.EXPECT().Status(gomock.Any(), "BC-1").Return(models.BroadcastStatusSending, nil).Times(2)
	f.broadcast.EXPECT().Finish(gomock.Any(), "BC-1", models.BroadcastStatusCompleted).Return(nil)

	stats, err := newBroadcastService(f, 20).Execute(context.Background(), "BC-1")

	require.NoError(t, err)
	assert.Equal(t, 45, stats.TotalRecipients)
	assert.Equal(t, 40, stats.SentCount)
	assert.Equal(t, 5, stats.FailedCount)
	assert.Equal(t, stats.TotalRecipients, stats.SentCount+stats.FailedCount)
	assert.Equal(t, 0, stats.Pending)
	assert.Equal(t, float64(100), stats.Progress)
	assert.Len(t, recorded, 45)
}

func TestBroadcastService_Execute_AllFailedMarksFailed(t *testing.T) {
	f := newFixture(t)
	b := draft("BC-2")
	expectClaim(f, b, phones(3))

	f.gateway.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", errors.New("rate limited")).Times(3)
	f.broadcast.EXPECT().RecordResult(gomock.Any(), "BC-2", gomock.Any(), "", "rate limited").Return(nil).Times(3)
	f.broadcast.EXPECT().Finish(gomock.Any(), "BC-2", models.BroadcastStatusFailed).Return(nil)

	stats, err := newBroadcastService(f, 20).Execute(context.Background(), "BC-2")

	require.NoError(t, err)
	assert.Equal(t, models.BroadcastStatusFailed, stats.Status)
	assert.Equal(t, 3, stats.FailedCount)
}

func TestBroadcastService_Execute_StopsWhenCancelled(t *testing.T) {
	f := newFixture(t)
	b := draft("BC-3")
	expectClaim(f, b, phones(10))

	f.gateway.EXPECT().Send(gomock.Any(), gomock.Any()).Return("wamid.x", nil).Times(5)
	f.broadcast.EXPECT().RecordResult(gomock.Any(), "BC-3", gomock.Any(), "wamid.x", "").Return(nil).Times(5)
	f.broadcast.EXPECT().Status(gomock.Any(), "BC-3").Return(models.BroadcastStatusCancelled, nil)

	stats, err := newBroadcastService(f, 5).Execute(context.Background(), "BC-3")

	require.NoError(t, err)
	assert.Equal(t, models.BroadcastStatusCancelled, stats.Status)
	assert.Equal(t, 5, stats.SentCount)
	assert.Equal(t, 5, stats.Pending)
}

func TestBroadcastService_Execute_PacesBatches(t *testing.T) {
	f := newFixture(t)
	b := draft("BC-4")
	b.SendRate = 10
	expectClaim(f, b, phones(4))

	f.gateway.EXPECT().Send(gomock.Any(), gomock.Any()).Return("wamid.x", nil).Times(4)
	f.broadcast.EXPECT().RecordResult(gomock.Any(), "BC-4", gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(4)
	f.broadcast.EXPECT().Status(gomock.Any(), "BC-4").Return(models.BroadcastStatusSending, nil).Times(1)
	f.broadcast.EXPECT().Finish(gomock.Any(), "BC-4", models.BroadcastStatusCompleted).Return(nil)

	var pauses []time.Duration
	svc := newBroadcastService(f, 2, service.WithSleep(func(_ context.Context, d time.Duration) error {
		pauses = append(pauses, d)
		return nil
	}))

	_, err := svc.Execute(context.Background(), "BC-4")

	require.NoError(t, err)
	assert.Equal(t, []time.Duration{12 * time.Second}, pauses, "2 per batch at 10/min")
}

func TestBroadcastService_Execute_Conflicts(t *testing.T) {
	t.Run("already sent", func(t *testing.T) {
		f := newFixture(t)
		b := draft("BC-5")
		b.Status = models.BroadcastStatusCompleted
		f.broadcast.EXPECT().Get(gomock.Any(), "BC-5").Return(b, nil)

		_, err := newBroadcastService(f, 20).Execute(context.Background(), "BC-5")
		assert.ErrorIs(t, err, service.ErrConflict)
	})

	t.Run("lost the claim", func(t *testing.T) {
		f := newFixture(t)
		b := draft("BC-6")
		f.broadcast.EXPECT().Get(gomock.Any(), "BC-6").Return(b, nil)
		f.customers.EXPECT().Recipients(gomock.Any(), gomock.Any()).Return(phones(2), nil)
		f.broadcast.EXPECT().Start(gomock.Any(), "BC-6", gomock.Any()).Return(false, nil)

		_, err := newBroadcastService(f, 20).Execute(context.Background(), "BC-6")
		assert.ErrorIs(t, err, service.ErrConflict)
	})
}

func TestBroadcastService_SendNow_RunsInBackground(t *testing.T) {
	f := newFixture(t)
	b := draft("BC-7")
	expectClaim(f, b, phones(2))

	f.gateway.EXPECT().Send(gomock.Any(), gomock.Any()).Return("wamid.x", nil).Times(2)
	f.broadcast.EXPECT().RecordResult(gomock.Any(), "BC-7", gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.broadcast.EXPECT().Finish(gomock.Any(), "BC-7", models.BroadcastStatusCompleted).Return(nil)

	svc := newBroadcastService(f, 20)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, svc.SendNow(ctx, "BC-7"))
	cancel()

	waitCtx, waitCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer waitCancel()
	require.NoError(t, svc.Wait(waitCtx))
}

func TestBroadcastService_Create(t *testing.T) {
	future := fixedNow.Add(time.Hour)
	past := fixedNow.Add(-time.Hour)

	tests := []struct {
		name           string
		input          models.BroadcastInput
		setupMocks     func(f *fixture)
		expectedStatus models.BroadcastStatus
		expectedError  error
	}{
		{
			name: "custom list is normalized and deduped",
			input: models.BroadcastInput{
				Name:         "Diwali",
				TargetType:   models.TargetCustom,
				TargetPhones: []string{"98765 43210", "+91-9876543210", "919811111111"},
				MessageType:  models.BroadcastText,
				Message:      "Happy Diwali!",
			},
			setupMocks: func(f *fixture) {
				f.broadcast.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b *models.Broadcast) error {
						assert.Equal(t, []string{"919876543210", "919811111111"}, []string(b.TargetPhones))
						assert.Equal(t, 60, b.SendRate)
						assert.True(t, strings.HasPrefix(b.BroadcastID, "BC-"))
						return nil
					})
			},
			expectedStatus: models.BroadcastStatusDraft,
		},
		{
			name: "future time schedules it",
			input: models.BroadcastInput{
				Name:    "Sale", TargetType: models.TargetAll, MessageType: models.BroadcastText,
				Message: "Sale starts now", ScheduledAt: &future,
			},
			setupMocks: func(f *fixture) {
				f.broadcast.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: models.BroadcastStatusScheduled,
		},
		{
			name: "past time",
			input: models.BroadcastInput{
				Name:    "Sale", TargetType: models.TargetAll, MessageType: models.BroadcastText,
				Message: "Sale starts now", ScheduledAt: &past,
			},
			setupMocks:    func(f *fixture) {},
			expectedError: service.ErrInvalidInput,
		},
		{
			name: "unknown segment",
			input: models.BroadcastInput{
				Name:        "Sale", TargetType: models.TargetSegment, TargetSegment: "whales",
				MessageType: models.BroadcastText, Message: "hi",
			},
			setupMocks:    func(f *fixture) {},
			expectedError: service.ErrInvalidInput,
		},
		{
			name: "buttons broadcast without buttons",
			input: models.BroadcastInput{
				Name: "Sale", TargetType: models.TargetAll, MessageType: models.BroadcastButtons, Message: "hi",
			},
			setupMocks:    func(f *fixture) {},
			expectedError: service.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMocks(f)

			b, err := newBroadcastService(f, 20).Create(context.Background(), tt.input, "admin")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, b.Status)
			assert.Equal(t, "admin", b.CreatedBy)
		})
	}
}

func TestBroadcastService_Cancel(t *testing.T) {
	t.Run("cancelled", func(t *testing.T) {
		f := newFixture(t)
		f.broadcast.EXPECT().Cancel(gomock.Any(), "BC-1").Return(true, nil)

		assert.NoError(t, newBroadcastService(f, 20).Cancel(context.Background(), "BC-1"))
	})

	t.Run("already finished", func(t *testing.T) {
		f := newFixture(t)
		f.broadcast.EXPECT().Cancel(gomock.Any(), "BC-1").Return(false, nil)
		f.broadcast.EXPECT().Get(gomock.Any(), "BC-1").Return(draft("BC-1"), nil)

		assert.ErrorIs(t, newBroadcastService(f, 20).Cancel(context.Background(), "BC-1"), service.ErrConflict)
	})

	t.Run("unknown", func(t *testing.T) {
		f := newFixture(t)
		f.broadcast.EXPECT().Cancel(gomock.Any(), "BC-404").Return(false, nil)
		f.broadcast.EXPECT().Get(gomock.Any(), "BC-404").Return(nil, repository.ErrNotFound)

		assert.ErrorIs(t, newBroadcastService(f, 20).Cancel(context.Background(), "BC-404"), service.ErrNotFound)
	})
}

func TestBroadcastService_RunDue_SkipsClaimedBroadcasts(t *testing.T) {
	f := newFixture(t)
	mine := draft("BC-8")
	mine.Status = models.BroadcastStatusScheduled
	taken := draft("BC-9")
	taken.Status = models.BroadcastStatusSending

	f.broadcast.EXPECT().DueScheduled(gomock.Any(), fixedNow, gomock.Any()).Return([]*models.Broadcast{taken, mine}, nil)
	f.broadcast.EXPECT().Get(gomock.Any(), "BC-9").Return(taken, nil)
	expectClaim(f, mine, phones(1))
	f.gateway.EXPECT().Send(gomock.Any(), gomock.Any()).Return("wamid.x", nil)
	f.broadcast.EXPECT().RecordResult(gomock.Any(), "BC-8", gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.broadcast.EXPECT().Finish(gomock.Any(), "BC-8", models.BroadcastStatusCompleted).Return(nil)

	svc := newBroadcastService(f, 20)
	started, err := svc.RunDue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, started)

	waitCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, svc.Wait(waitCtx))
}

func TestBroadcastService_RunDue_OutlivesJobDeadline(t *testing.T) {
	f := newFixture(t)
	b := draft("BC-10")
	b.Status = models.BroadcastStatusScheduled
	recipients := phones(100)

	f.broadcast.EXPECT().DueScheduled(gomock.Any(), fixedNow, gomock.Any()).Return([]*models.Broadcast{b}, nil)
	expectClaim(f, b, recipients)
	f.gateway.EXPECT().Send(gomock.Any(), gomock.Any()).Return("wamid.x", nil).Times(100)
	f.broadcast.EXPECT().RecordResult(gomock.Any(), "BC-10", gomock.Any(), "wamid.x", "").Return(nil).Times(100)
	f.broadcast.EXPECT().Status(gomock.Any(), "BC-10").Return(models.BroadcastStatusSending, nil).Times(9)
	f.broadcast.EXPECT().Finish(gomock.Any(), "BC-10", models.BroadcastStatusCompleted).Return(nil)

	// Ten batches with 20ms pauses take far longer than the job's 50ms budget.
	pause := func(ctx context.Context, _ time.Duration) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(20 * time.Millisecond):
			return nil
		}
	}
	svc := newBroadcastService(f, 10, service.WithSleep(pause))

	jobCtx, cancelJob := context.WithTimeout(context.Background(), 50*time.Millisecond)
	started, err := svc.RunDue(jobCtx)
	require.NoError(t, err)
	assert.Equal(t, 1, started)
	<-jobCtx.Done()
	cancelJob()

	waitCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, svc.Wait(waitCtx))
}
