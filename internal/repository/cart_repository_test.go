package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/repository"
)

func TestCartRepository_SaveActive(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewCartRepository(db)
	ctx := ctxT(t)

	items := models.CartItems{{ProductID: "ER-1", Name: "Jhumka", Price: 300, Quantity: 1}}
	first, err := repo.SaveActive(ctx, "919876543210", items, "")
	require.NoError(t, err)
	assert.Equal(t, 1, first.Version)
	assert.Equal(t, int64(300), first.Total)

	require.NoError(t, repo.MarkReminded(ctx, first.ID))

	items = items.Add(models.CartItem{ProductID: "ER-1", Name: "Jhumka", Price: 300, Quantity: 2})
	second, err := repo.SaveActive(ctx, "919876543210", items, "WELCOME10")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "one active cart per phone")
	assert.Equal(t, 2, second.Version)
	assert.Equal(t, 3, second.ItemCount)
	assert.Equal(t, int64(900), second.Total)
	assert.Equal(t, 0, second.ReminderCount)
	assert.Equal(t, "WELCOME10", second.CouponCode)
	assert.NotEqual(t, first.IdempotencyKey(), second.IdempotencyKey())

	require.NoError(t, repo.SetStatus(ctx, second.ID, models.CartStatusCleared))
	_, err = repo.GetActive(ctx, "919876543210")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	third, err := repo.SaveActive(ctx, "919876543210", items, "")
	require.NoError(t, err)
	assert.NotEqual(t, second.ID, third.ID)
}

func TestCartRepository_IdleAndExpire(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewCartRepository(db)
	ctx := ctxT(t)

	full, err := repo.SaveActive(ctx, "919800000001", models.CartItems{{ProductID: "ER-1", Price: 300, Quantity: 1}}, "")
	require.NoError(t, err)
	empty, err := repo.SaveActive(ctx, "919800000002", nil, "")
	require.NoError(t, err)

	_, err = db.Exec(`UPDATE carts SET updated_at = $1`, time.Now().Add(-3*time.Hour))
	require.NoError(t, err)

	idle, err := repo.ListIdle(ctx, time.Now().Add(-time.Hour), 2, 10)
	require.NoError(t, err)
	require.Len(t, idle, 1)
	assert.Equal(t, full.ID, idle[0].ID)

	require.NoError(t, repo.MarkReminded(ctx, full.ID))
	idle, err = repo.ListIdle(ctx, time.Now().Add(-time.Hour), 2, 10)
	require.NoError(t, err)
	assert.Empty(t, idle, "reminded just now")

	n, err := repo.ExpireIdle(ctx, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	var statuses []string
	require.NoError(t, db.Select(&statuses, `SELECT status FROM carts WHERE id IN ($1, $2) ORDER BY id`, full.ID, empty.ID))
	assert.Equal(t, []string{"abandoned", "expired"}, statuses)
}
