package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kaapav/kaapav-bot/internal/models"
)

const orderColumns = `order_id, phone, customer_name, items, item_count, subtotal, shipping_cost, discount, total,
	coupon_code, status, payment_status, payment_id, payment_link_id, payment_link, refund_amount, idempotency_key,
	shipping_name, shipping_address, shipping_city, shipping_state, shipping_pincode, shipment_id,
	shiprocket_order_id, tracking_id, courier, tracking_url, cancel_reason, confirmed_at, shipped_at,
	delivered_at, cancelled_at, created_at, updated_at`

// statusTimestamps keeps exactly the current status's timestamp column set.
const statusTimestamps = `
	confirmed_at = CASE WHEN $2 = 'confirmed' THEN $3::timestamptz END,
	shipped_at = CASE WHEN $2 = 'shipped' THEN $3::timestamptz END,
	delivered_at = CASE WHEN $2 = 'delivered' THEN $3::timestamptz END,
	cancelled_at = CASE WHEN $2 = 'cancelled' THEN $3::timestamptz END`

type orderRepository struct {
	db *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateFromCart materializes a checkout in a single transaction.
func (r *orderRepository) CreateFromCart(ctx context.Context, o models.NewOrder) (*models.Order, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	now := time.Now()
	insert := `
		INSERT INTO orders (order_id, phone, customer_name, items, item_count, subtotal, shipping_cost,
		                    discount, total, coupon_code, idempotency_key, shipping_name, shipping_address,
		                    shipping_city, shipping_state, shipping_pincode, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $17)
		ON CONFLICT (idempotency_key) DO NOTHING
		RETURNING ` + orderColumns

	var order models.Order
	err = tx.GetContext(ctx, &order, insert,
		o.OrderID, o.Phone, o.CustomerName, o.Items, o.Items.Count(), o.Subtotal, o.ShippingCost,
		o.Discount, o.Total, nullString(o.CouponCode), nullString(o.IdempotencyKey), o.ShippingName,
		o.ShippingAddress, o.ShippingCity, o.ShippingState, o.ShippingPincode, now)
	if errors.Is(err, sql.ErrNoRows) {
		existing, getErr := r.getBy(ctx, tx, "idempotency_key", o.IdempotencyKey)
		if getErr != nil {
			return nil, false, getErr
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to create order: %w", mapError(err))
	}

	for _, item := range o.Items {
		res, err := tx.ExecContext(ctx,
			`UPDATE products SET stock = stock - $2, updated_at = $3 WHERE product_id = $1 AND stock >= $2`,
			item.ProductID, item.Quantity, now)
		if err != nil {
			return nil, false, fmt.Errorf("failed to decrement stock: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil, false, fmt.Errorf("failed to reserve %s: %w", item.ProductID, ErrOutOfStock)
		}
	}

	if o.CartID != 0 {
		res, err := tx.ExecContext(ctx,
			`UPDATE carts SET status = 'converted', updated_at = $3 WHERE id = $1 AND version = $2 AND status = 'active'`,
			o.CartID, o.CartVersion, now)
		if err != nil {
			return nil, false, fmt.Errorf("failed to convert cart: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil, false, fmt.Errorf("failed to convert cart: %w", ErrConflict)
		}
	}

	if err := insertEvent(ctx, tx, order.OrderID, models.OrderEventCreated, "", models.JSONMap{"total": o.Total}); err != nil {
		return nil, false, err
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit order: %w", err)
	}
	return &order, true, nil
}

func (r *orderRepository) getBy(ctx context.Context, q sqlx.QueryerContext, column, value string) (*models.Order, error) {
	var o models.Order
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE %s = $1`, orderColumns, column)
	if err := sqlx.GetContext(ctx, q, &o, query, value); err != nil {
		return nil, fmt.Errorf("failed to get order: %w", mapError(err))
	}
	return &o, nil
}

func (r *orderRepository) Get(ctx context.Context, orderID string) (*models.Order, error) {
	return r.getBy(ctx, r.db, "order_id", orderID)
}

func (r *orderRepository) GetByPaymentLinkID(ctx context.Context, linkID string) (*models.Order, error) {
	return r.getBy(ctx, r.db, "payment_link_id", linkID)
}

func (r *orderRepository) GetByTrackingID(ctx context.Context, trackingID string) (*models.Order, error) {
	return r.getBy(ctx, r.db, "tracking_id", trackingID)
}

func (r *orderRepository) ListByPhone(ctx context.Context, phone string, limit int) ([]*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE phone = $1 ORDER BY created_at DESC LIMIT $2`

	var orders []*models.Order
	if err := r.db.SelectContext(ctx, &orders, query, phone, limit); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) List(ctx context.Context, filter models.OrderFilter) ([]*models.Order, int64, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, strings.ReplaceAll(cond, "?", fmt.Sprintf("$%d", len(args))))
	}

	if filter.Status != "" {
		add("status = ?", filter.Status)
	}
	if filter.PaymentStatus != "" {
		add("payment_status = ?", filter.PaymentStatus)
	}
	if filter.Phone != "" {
		add("phone = ?", filter.Phone)
	}
	if filter.Search != "" {
		add("(order_id ILIKE ? OR customer_name ILIKE ? OR phone LIKE ?)", "%"+filter.Search+"%")
	}
	if filter.From != nil {
		add("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		add("created_at < ?", *filter.To)
	}

	clause := "TRUE"
	if len(where) > 0 {
		clause = strings.Join(where, " AND ")
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM orders WHERE `+clause, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		orderColumns, clause, len(args)-1, len(args))

	var orders []*models.Order
	if err := r.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, total, nil
}

// ListByStatus filters on payment status unless payment is empty.
func (r *orderRepository) ListByStatus(ctx context.Context, status models.OrderStatus, payment models.PaymentStatus, updatedBefore time.Time, limit int) ([]*models.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE status = $1 AND ($2::text = '' OR payment_status = $2::text) AND updated_at < $3
		ORDER BY updated_at ASC
		LIMIT $4
	`

	var orders []*models.Order
	if err := r.db.SelectContext(ctx, &orders, query, status, payment, updatedBefore, limit); err != nil {
		return nil, fmt.Errorf("failed to list orders by status: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) Stats(ctx context.Context, todayStart time.Time) (*models.OrderStats, error) {
	query := `
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE status = 'pending') AS pending,
		       COUNT(*) FILTER (WHERE status = 'confirmed') AS confirmed,
		       COUNT(*) FILTER (WHERE status = 'processing') AS processing,
		       COUNT(*) FILTER (WHERE status = 'shipped') AS shipped,
		       COUNT(*) FILTER (WHERE status = 'delivered') AS delivered,
		       COUNT(*) FILTER (WHERE status = 'cancelled') AS cancelled,
		       COUNT(*) FILTER (WHERE payment_status IN ('paid', 'partial_refund')) AS paid,
		       COALESCE(SUM(total - refund_amount) FILTER (WHERE payment_status <> 'unpaid'), 0) AS revenue,
		       COUNT(*) FILTER (WHERE created_at >= $1) AS today
		FROM orders
	`

	var stats models.OrderStats
	if err := r.db.GetContext(ctx, &stats, query, todayStart); err != nil {
		return nil, fmt.Errorf("failed to get order stats: %w", err)
	}
	return &stats, nil
}

func (r *orderRepository) SetPaymentLink(ctx context.Context, orderID, linkID, url string) error {
	query := `UPDATE orders SET payment_link_id = $2, payment_link = $3, updated_at = $4 WHERE order_id = $1`

	res, err := r.db.ExecContext(ctx, query, orderID, linkID, url, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set payment link: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("failed to set payment link: %w", ErrNotFound)
	}
	return nil
}

// MarkPaid flips an unpaid order to paid and credits the customer. Replays
// of the same callback find the order already paid and change nothing.
func (r *orderRepository) MarkPaid(ctx context.Context, p models.PaymentResult) (*models.Order, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	now := time.Now()
	query := `
		UPDATE orders
		SET payment_status = 'paid',
		    payment_id = $4,
		    status = CASE WHEN status = 'pending' THEN 'confirmed' ELSE status END,
		    confirmed_at = CASE WHEN status = 'pending' THEN $3::timestamptz ELSE confirmed_at END,
		    updated_at = $3
		WHERE order_id = $1 AND payment_status = $2
		RETURNING ` + orderColumns

	var order models.Order
	err = tx.GetContext(ctx, &order, query, p.OrderID, models.PaymentStatusUnpaid, now, nullString(p.PaymentID))
	if errors.Is(err, sql.ErrNoRows) {
		existing, getErr := r.getBy(ctx, tx, "order_id", p.OrderID)
		if getErr != nil {
			return nil, false, getErr
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to mark order paid: %w", mapError(err))
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE customers
		SET total_spent = total_spent + $2, order_count = order_count + 1, updated_at = $3
		WHERE phone = $1`, order.Phone, order.Total, now)
	if err != nil {
		return nil, false, fmt.Errorf("failed to credit customer: %w", err)
	}

	data := models.JSONMap{"payment_id": p.PaymentID, "amount": p.Amount}
	if p.Method != "" {
		data["method"] = p.Method
	}
	if err := insertEvent(ctx, tx, order.OrderID, models.OrderEventPaid, "", data); err != nil {
		return nil, false, err
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit payment: %w", err)
	}
	return &order, true, nil
}

// UpdateStatus applies a lifecycle transition. Cancelling puts the reserved
// stock back.
func (r *orderRepository) UpdateStatus(ctx context.Context, change StatusChange) (*models.Order, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var current models.Order
	err = tx.GetContext(ctx, &current, `SELECT `+orderColumns+` FROM orders WHERE order_id = $1 FOR UPDATE`, change.OrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock order: %w", mapError(err))
	}
	if !current.Status.CanTransition(change.To) {
		return nil, fmt.Errorf("failed to move order from %s to %s: %w", current.Status, change.To, ErrInvalidTransition)
	}

	now := time.Now()
	query := `
		UPDATE orders
		SET status = $2,` + statusTimestamps + `,
		    cancel_reason = CASE WHEN $2 = 'cancelled' THEN NULLIF($4, '') ELSE cancel_reason END,
		    updated_at = $3
		WHERE order_id = $1
		RETURNING ` + orderColumns

	var order models.Order
	if err := tx.GetContext(ctx, &order, query, change.OrderID, change.To, now, change.Note); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	if change.To == models.OrderStatusCancelled {
		for _, item := range order.Items {
			_, err := tx.ExecContext(ctx,
				`UPDATE products SET stock = stock + $2, updated_at = $3 WHERE product_id = $1`,
				item.ProductID, item.Quantity, now)
			if err != nil {
				return nil, fmt.Errorf("failed to restock %s: %w", item.ProductID, err)
			}
		}
	}

	if err := insertEvent(ctx, tx, order.OrderID, eventFor(change.To), change.Note,
		models.JSONMap{"from": string(current.Status), "to": string(change.To)}); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit status change: %w", err)
	}
	return &order, nil
}

func eventFor(status models.OrderStatus) models.OrderEventType {
	switch status {
	case models.OrderStatusShipped:
		return models.OrderEventShipped
	case models.OrderStatusDelivered:
		return models.OrderEventDelivered
	case models.OrderStatusCancelled:
		return models.OrderEventCancelled
	default:
		return models.OrderEventStatus
	}
}

func (r *orderRepository) SetShipment(ctx context.Context, orderID string, info ShipmentInfo) error {
	query := `
		UPDATE orders
		SET shiprocket_order_id = COALESCE($2, shiprocket_order_id),
		    shipment_id = COALESCE($3, shipment_id),
		    tracking_id = COALESCE($4, tracking_id),
		    courier = COALESCE($5, courier),
		    tracking_url = COALESCE($6, tracking_url),
		    updated_at = $7
		WHERE order_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, orderID,
		nullString(info.ShiprocketOrderID), nullString(info.ShipmentID), nullString(info.TrackingID),
		nullString(info.Courier), nullString(info.TrackingURL), time.Now())
	if err != nil {
		return fmt.Errorf("failed to set shipment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("failed to set shipment: %w", ErrNotFound)
	}
	return nil
}

// MarkRefunded accumulates refunds; the payment becomes refunded once the
// whole total has been returned.
func (r *orderRepository) MarkRefunded(ctx context.Context, orderID string, amount int64) (*models.Order, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	now := time.Now()
	query := `
		UPDATE orders
		SET refund_amount = LEAST(total, refund_amount + $2),
		    payment_status = CASE WHEN refund_amount + $2 >= total THEN 'refunded' ELSE 'partial_refund' END,
		    updated_at = $3
		WHERE order_id = $1 AND payment_status IN ('paid', 'partial_refund')
		RETURNING ` + orderColumns

	var order models.Order
	if err := tx.GetContext(ctx, &order, query, orderID, amount, now); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to refund order %s: %w", orderID, ErrInvalidTransition)
		}
		return nil, fmt.Errorf("failed to refund order: %w", err)
	}

	if err := insertEvent(ctx, tx, orderID, models.OrderEventRefunded, "", models.JSONMap{"amount": amount}); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit refund: %w", err)
	}
	return &order, nil
}

func (r *orderRepository) Events(ctx context.Context, orderID string) ([]*models.OrderEvent, error) {
	query := `
		SELECT id, order_id, event, note, data, created_at
		FROM order_events
		WHERE order_id = $1
		ORDER BY created_at ASC, id ASC
	`

	var events []*models.OrderEvent
	if err := r.db.SelectContext(ctx, &events, query, orderID); err != nil {
		return nil, fmt.Errorf("failed to list order events: %w", err)
	}
	return events, nil
}

func insertEvent(ctx context.Context, tx *sqlx.Tx, orderID string, event models.OrderEventType, note string, data models.JSONMap) error {
	if data == nil {
		data = models.JSONMap{}
	}
	_, err := tx.ExecContext(ctx,
		`INSERT INTO order_events (order_id, event, note, data, created_at) VALUES ($1, $2, $3, $4, $5)`,
		orderID, event, note, data, time.Now())
	if err != nil {
		return fmt.Errorf("failed to record order event: %w", err)
	}
	return nil
}
