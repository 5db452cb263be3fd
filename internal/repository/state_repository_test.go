package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/repository"
)

func TestStateRepository(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewStateRepository(db)
	ctx := ctxT(t)
	now := time.Now()

	_, err := repo.Get(ctx, "919876543210")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	state := &models.ConversationState{
		Phone:       "919876543210",
		CurrentFlow: "order",
		CurrentStep: "address",
		FlowData:    models.JSONMap{"product_id": "ER-1"},
		ExpiresAt:   now.Add(models.ConversationStateTTL),
	}
	require.NoError(t, repo.Upsert(ctx, state))

	state.CurrentStep = "pincode"
	state.FlowData["address"] = "12 MG Road"
	require.NoError(t, repo.Upsert(ctx, state))

	got, err := repo.Get(ctx, "919876543210")
	require.NoError(t, err)
	assert.Equal(t, "pincode", got.CurrentStep)
	assert.Equal(t, "ER-1", got.FlowData.String("product_id"))
	assert.Equal(t, "12 MG Road", got.FlowData.String("address"))
	assert.False(t, got.Expired(now))

	require.NoError(t, repo.Upsert(ctx, &models.ConversationState{
		Phone:       "919800000001",
		CurrentFlow: "track",
		CurrentStep: "ask",
		ExpiresAt:   now.Add(-time.Minute),
	}))

	n, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, repo.Delete(ctx, "919876543210"))
	_, err = repo.Get(ctx, "919876543210")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
