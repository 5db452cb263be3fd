package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/kaapav/kaapav-bot/internal/models"
)

func insertTestProduct(t *testing.T, db *sqlx.DB, id string, price int64, stock int) {
	t.Helper()
	_, err := db.Exec(`
		INSERT INTO products (product_id, name, price, stock, category)
		VALUES ($1, $2, $3, $4, 'earrings')`,
		id, "Product "+id, price, stock)
	require.NoError(t, err)
}

func insertTestCustomer(t *testing.T, db *sqlx.DB, phone string, lastSeen time.Time, totalSpent int64, orders int) {
	t.Helper()
	_, err := db.Exec(`
		INSERT INTO customers (phone, name, last_seen, total_spent, order_count)
		VALUES ($1, $2, $3, $4, $5)`,
		phone, "Customer "+phone[len(phone)-4:], lastSeen, totalSpent, orders)
	require.NoError(t, err)
}

func productStock(t *testing.T, db *sqlx.DB, id string) int {
	t.Helper()
	var stock int
	require.NoError(t, db.Get(&stock, `SELECT stock FROM products WHERE product_id = $1`, id))
	return stock
}

// newTestOrder builds a checkout snapshot from the active cart of phone.
func newTestOrder(cart *models.Cart, seq int) models.NewOrder {
	return models.NewOrder{
		OrderID:         fmt.Sprintf("KAA-%06d", seq),
		Phone:           cart.Phone,
		CustomerName:    "Priya",
		CartID:          cart.ID,
		CartVersion:     cart.Version,
		Items:           cart.Items,
		Subtotal:        cart.Items.Subtotal(),
		ShippingCost:    49,
		Total:           cart.Items.Subtotal() + 49,
		ShippingName:    "Priya",
		ShippingAddress: "12 MG Road, Bengaluru",
		ShippingPincode: "560001",
		IdempotencyKey:  cart.IdempotencyKey(),
	}
}

func ctxT(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}
