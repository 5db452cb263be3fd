package repository_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/repository"
)

func TestOrderRepository_CreateFromCart(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewRepository(db)
	ctx := ctxT(t)

	t.Run("creates order, reserves stock and converts cart", func(t *testing.T) {
		cleanupTestData(db)
		insertTestProduct(t, db, "ER-1", 300, 5)

		cart, err := repo.Cart().SaveActive(ctx, "919876543210", models.CartItems{{ProductID: "ER-1", Name: "Jhumka", Price: 300, Quantity: 2}}, "")
		require.NoError(t, err)

		order, created, err := repo.Order().CreateFromCart(ctx, newTestOrder(cart, 1))
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, models.OrderStatusPending, order.Status)
		assert.Equal(t, models.PaymentStatusUnpaid, order.PaymentStatus)
		assert.Equal(t, int64(649), order.Total)
		assert.Equal(t, 3, productStock(t, db, "ER-1"))

		_, err = repo.Cart().GetActive(ctx, "919876543210")
		assert.ErrorIs(t, err, repository.ErrNotFound)

		events, err := repo.Order().Events(ctx, order.OrderID)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, models.OrderEventCreated, events[0].Event)
	})

	t.Run("double confirm returns the existing order", func(t *testing.T) {
		cleanupTestData(db)
		insertTestProduct(t, db, "ER-1", 300, 5)

		cart, err := repo.Cart().SaveActive(ctx, "919876543210", models.CartItems{{ProductID: "ER-1", Price: 300, Quantity: 1}}, "")
		require.NoError(t, err)

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			ids = map[string]int{}
			created int
		)
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(seq int) {
				defer wg.Done()
				order, ok, err := repo.Order().CreateFromCart(ctx, newTestOrder(cart, 10+seq))
				if err != nil {
					return
				}
				mu.Lock()
				defer mu.Unlock()
				ids[order.OrderID]++
				if ok {
					created++
				}
			}(i)
		}
		wg.Wait()

		assert.Equal(t, 1, created)
		assert.Len(t, ids, 1)
		assert.Equal(t, 4, productStock(t, db, "ER-1"))

		var count int
		require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM orders`))
		assert.Equal(t, 1, count)
	})

	t.Run("insufficient stock rolls everything back", func(t *testing.T) {
		cleanupTestData(db)
		insertTestProduct(t, db, "ER-1", 300, 5)
		insertTestProduct(t, db, "NK-1", 900, 1)

		cart, err := repo.Cart().SaveActive(ctx, "919876543210", models.CartItems{
			{ProductID: "ER-1", Price: 300, Quantity: 2},
			{ProductID: "NK-1", Price: 900, Quantity: 2},
		}, "")
		require.NoError(t, err)

		_, _, err = repo.Order().CreateFromCart(ctx, newTestOrder(cart, 20))
		assert.ErrorIs(t, err, repository.ErrOutOfStock)

		assert.Equal(t, 5, productStock(t, db, "ER-1"))
		assert.Equal(t, 1, productStock(t, db, "NK-1"))

		active, err := repo.Cart().GetActive(ctx, "919876543210")
		require.NoError(t, err)
		assert.Equal(t, models.CartStatusActive, active.Status)

		_, err = repo.Order().Get(ctx, "KAA-000020")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("stale cart version is rejected", func(t *testing.T) {
		cleanupTestData(db)
		insertTestProduct(t, db, "ER-1", 300, 5)

		cart, err := repo.Cart().SaveActive(ctx, "919876543210", models.CartItems{{ProductID: "ER-1", Price: 300, Quantity: 1}}, "")
		require.NoError(t, err)
		stale := newTestOrder(cart, 30)

		_, err = repo.Cart().SaveActive(ctx, "919876543210", models.CartItems{{ProductID: "ER-1", Price: 300, Quantity: 2}}, "")
		require.NoError(t, err)

		_, _, err = repo.Order().CreateFromCart(ctx, stale)
		assert.ErrorIs(t, err, repository.ErrConflict)
		assert.Equal(t, 5, productStock(t, db, "ER-1"))
	})
}

func TestOrderRepository_MarkPaid_Idempotent(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewRepository(db)
	ctx := ctxT(t)

	insertTestProduct(t, db, "ER-1", 300, 5)
	insertTestCustomer(t, db, "919876543210", time.Now(), 1000, 1)

	cart, err := repo.Cart().SaveActive(ctx, "919876543210", models.CartItems{{ProductID: "ER-1", Price: 300, Quantity: 1}}, "")
	require.NoError(t, err)
	order, _, err := repo.Order().CreateFromCart(ctx, newTestOrder(cart, 40))
	require.NoError(t, err)

	payment := models.PaymentResult{OrderID: order.OrderID, PaymentID: "pay_123", Amount: order.Total * 100}

	paid, applied, err := repo.Order().MarkPaid(ctx, payment)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, models.PaymentStatusPaid, paid.PaymentStatus)
	assert.Equal(t, models.OrderStatusConfirmed, paid.Status)
	assert.True(t, paid.ConfirmedAt.Valid)

	again, applied, err := repo.Order().MarkPaid(ctx, payment)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, models.PaymentStatusPaid, again.PaymentStatus)

	customer, err := repo.Customer().Get(ctx, "919876543210")
	require.NoError(t, err)
	assert.Equal(t, int64(1000)+order.Total, customer.TotalSpent)
	assert.Equal(t, 2, customer.OrderCount)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewRepository(db)
	ctx := ctxT(t)

	setup := func(t *testing.T) *models.Order {
		cleanupTestData(db)
		insertTestProduct(t, db, "ER-1", 300, 5)
		cart, err := repo.Cart().SaveActive(ctx, "919876543210", models.CartItems{{ProductID: "ER-1", Price: 300, Quantity: 2}}, "")
		require.NoError(t, err)
		order, _, err := repo.Order().CreateFromCart(ctx, newTestOrder(cart, 50))
		require.NoError(t, err)
		return order
	}

	t.Run("forward moves keep one status timestamp", func(t *testing.T) {
		order := setup(t)

		for _, to := range []models.OrderStatus{models.OrderStatusConfirmed, models.OrderStatusShipped, models.OrderStatusDelivered} {
			updated, err := repo.Order().UpdateStatus(ctx, repository.StatusChange{OrderID: order.OrderID, To: to})
			require.NoError(t, err)
			assert.Equal(t, to, updated.Status)

			set := 0
			for _, ts := range []bool{updated.ConfirmedAt.Valid, updated.ShippedAt.Valid, updated.DeliveredAt.Valid, updated.CancelledAt.Valid} {
				if ts {
					set++
				}
			}
			assert.Equal(t, 1, set)
		}

		events, err := repo.Order().Events(ctx, order.OrderID)
		require.NoError(t, err)
		assert.Len(t, events, 4)
	})

	t.Run("backward and post-terminal moves are rejected", func(t *testing.T) {
		order := setup(t)

		_, err := repo.Order().UpdateStatus(ctx, repository.StatusChange{OrderID: order.OrderID, To: models.OrderStatusShipped})
		require.NoError(t, err)

		_, err = repo.Order().UpdateStatus(ctx, repository.StatusChange{OrderID: order.OrderID, To: models.OrderStatusConfirmed})
		assert.ErrorIs(t, err, repository.ErrInvalidTransition)

		_, err = repo.Order().UpdateStatus(ctx, repository.StatusChange{OrderID: order.OrderID, To: models.OrderStatusCancelled, Note: "customer request"})
		require.NoError(t, err)

		_, err = repo.Order().UpdateStatus(ctx, repository.StatusChange{OrderID: order.OrderID, To: models.OrderStatusDelivered})
		assert.ErrorIs(t, err, repository.ErrInvalidTransition)
	})

	t.Run("cancel restocks", func(t *testing.T) {
		order := setup(t)
		require.Equal(t, 3, productStock(t, db, "ER-1"))

		cancelled, err := repo.Order().UpdateStatus(ctx, repository.StatusChange{OrderID: order.OrderID, To: models.OrderStatusCancelled, Note: "unpaid"})
		require.NoError(t, err)
		assert.Equal(t, "unpaid", cancelled.CancelReason.String)
		assert.Equal(t, 5, productStock(t, db, "ER-1"))
	})

	t.Run("unknown order", func(t *testing.T) {
		cleanupTestData(db)
		_, err := repo.Order().UpdateStatus(ctx, repository.StatusChange{OrderID: "KAA-999999", To: models.OrderStatusConfirmed})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestOrderRepository_MarkRefunded(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewRepository(db)
	ctx := ctxT(t)

	insertTestProduct(t, db, "ER-1", 1000, 5)
	cart, err := repo.Cart().SaveActive(ctx, "919876543210", models.CartItems{{ProductID: "ER-1", Price: 1000, Quantity: 1}}, "")
	require.NoError(t, err)
	order, _, err := repo.Order().CreateFromCart(ctx, newTestOrder(cart, 60))
	require.NoError(t, err)

	_, err = repo.Order().MarkRefunded(ctx, order.OrderID, 100)
	assert.ErrorIs(t, err, repository.ErrInvalidTransition, "unpaid orders cannot be refunded")

	_, _, err = repo.Order().MarkPaid(ctx, models.PaymentResult{OrderID: order.OrderID, PaymentID: "pay_r"})
	require.NoError(t, err)

	partial, err := repo.Order().MarkRefunded(ctx, order.OrderID, 500)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPartialRefund, partial.PaymentStatus)
	assert.Equal(t, int64(500), partial.RefundAmount)

	full, err := repo.Order().MarkRefunded(ctx, order.OrderID, order.Total)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusRefunded, full.PaymentStatus)
	assert.Equal(t, order.Total, full.RefundAmount)
}
