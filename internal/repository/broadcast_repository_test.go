package repository_test

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/repository"
)

func createTestBroadcast(t *testing.T, repo repository.BroadcastRepository) *models.Broadcast {
	t.Helper()
	b := &models.Broadcast{
		BroadcastID: uuid.NewString(),
		Name:        "Diwali sale",
		TargetType:  models.TargetAll,
		MessageType: models.BroadcastText,
		Message:     "Flat 20% off with KAAPAV20",
		SendRate:    60,
	}
	require.NoError(t, repo.Create(ctxT(t), b))
	return b
}

func TestBroadcastRepository_Accounting(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewBroadcastRepository(db)
	ctx := ctxT(t)
	b := createTestBroadcast(t, repo)

	phones := []string{"919800000001", "919800000002", "919800000003", "919800000001"}
	started, err := repo.Start(ctx, b.BroadcastID, phones)
	require.NoError(t, err)
	require.True(t, started)

	again, err := repo.Start(ctx, b.BroadcastID, phones)
	require.NoError(t, err)
	assert.False(t, again, "a sending broadcast cannot be claimed twice")

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.RecordResult(ctx, b.BroadcastID, "919800000001", "wamid.1", "")
			_ = repo.RecordResult(ctx, b.BroadcastID, "919800000002", "", "131026: undeliverable")
		}()
	}
	wg.Wait()
	require.NoError(t, repo.RecordResult(ctx, b.BroadcastID, "919800000003", "wamid.3", ""))

	require.NoError(t, repo.Finish(ctx, b.BroadcastID, models.BroadcastStatusCompleted))

	got, err := repo.Get(ctx, b.BroadcastID)
	require.NoError(t, err)
	assert.Equal(t, models.BroadcastStatusCompleted, got.Status)
	assert.Equal(t, 3, got.TotalRecipients)
	assert.Equal(t, 2, got.SentCount)
	assert.Equal(t, 1, got.FailedCount)
	assert.Equal(t, got.TotalRecipients, got.SentCount+got.FailedCount)

	failed, err := repo.Recipients(ctx, b.BroadcastID, models.RecipientFailed, 10, 0)
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "919800000002", failed[0].Phone)
}

func TestBroadcastRepository_ScheduleAndCancel(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewBroadcastRepository(db)
	ctx := ctxT(t)
	b := createTestBroadcast(t, repo)

	require.NoError(t, repo.Schedule(ctx, b.BroadcastID, time.Now().Add(-time.Minute)))

	due, err := repo.DueScheduled(ctx, time.Now(), 10)
	require.NoError(t, err)
	require.Len(t, due, 1)

	cancelled, err := repo.Cancel(ctx, b.BroadcastID)
	require.NoError(t, err)
	assert.True(t, cancelled)

	status, err := repo.Status(ctx, b.BroadcastID)
	require.NoError(t, err)
	assert.Equal(t, models.BroadcastStatusCancelled, status)

	started, err := repo.Start(ctx, b.BroadcastID, []string{"919800000001"})
	require.NoError(t, err)
	assert.False(t, started)

	assert.ErrorIs(t, repo.Schedule(ctx, b.BroadcastID, time.Now()), repository.ErrInvalidTransition)
}
