package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kaapav/kaapav-bot/internal/models"
)

const cartColumns = `id, phone, items, total, item_count, status, reminder_count, version,
	coupon_code, last_reminder_at, created_at, updated_at`

// prefixed qualifies a column list with a table alias.
func prefixed(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, col := range parts {
		parts[i] = alias + "." + strings.TrimSpace(col)
	}
	return strings.Join(parts, ", ")
}

type cartRepository struct {
	db *sqlx.DB
}

func NewCartRepository(db *sqlx.DB) CartRepository {
	return &cartRepository{
		db: db,
	}
}

func (r *cartRepository) GetActive(ctx context.Context, phone string) (*models.Cart, error) {
	query := `SELECT ` + cartColumns + ` FROM carts WHERE phone = $1 AND status = 'active'`

	var c models.Cart
	if err := r.db.GetContext(ctx, &c, query, phone); err != nil {
		return nil, fmt.Errorf("failed to get active cart: %w", mapError(err))
	}
	return &c, nil
}

// SaveActive writes the full item list. Any change bumps the version so a
// stale checkout key can never match the new contents, and re-arms reminders.
func (r *cartRepository) SaveActive(ctx context.Context, phone string, items models.CartItems, coupon string) (*models.Cart, error) {
	query := `
		INSERT INTO carts (phone, items, total, item_count, coupon_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (phone) WHERE status = 'active' DO UPDATE
		SET items = EXCLUDED.items,
		    total = EXCLUDED.total,
		    item_count = EXCLUDED.item_count,
		    coupon_code = EXCLUDED.coupon_code,
		    version = carts.version + 1,
		    reminder_count = 0,
		    last_reminder_at = NULL,
		    updated_at = EXCLUDED.updated_at
		RETURNING ` + cartColumns

	if items == nil {
		items = models.CartItems{}
	}

	var c models.Cart
	err := r.db.GetContext(ctx, &c, query, phone, items, items.Subtotal(), items.Count(), coupon, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return &c, nil
}

func (r *cartRepository) SetStatus(ctx context.Context, id int64, status models.CartStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE carts SET status = $2, updated_at = $3 WHERE id = $1`, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set cart status: %w", mapError(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("failed to set cart status: %w", ErrNotFound)
	}
	return nil
}

// ListIdle returns non-empty active carts untouched since idleBefore that
// still have reminders left.
func (r *cartRepository) ListIdle(ctx context.Context, idleBefore time.Time, maxReminders, limit int) ([]*models.Cart, error) {
	query := `
		SELECT ` + cartColumns + `
		FROM carts
		WHERE status = 'active'
		  AND item_count > 0
		  AND updated_at < $1
		  AND reminder_count < $2
		  AND (last_reminder_at IS NULL OR last_reminder_at < $1)
		ORDER BY updated_at ASC
		LIMIT $3
	`

	var carts []*models.Cart
	if err := r.db.SelectContext(ctx, &carts, query, idleBefore, maxReminders, limit); err != nil {
		return nil, fmt.Errorf("failed to list idle carts: %w", err)
	}
	return carts, nil
}

// MarkReminded does not touch updated_at so idleness keeps accruing.
func (r *cartRepository) MarkReminded(ctx context.Context, id int64) error {
	query := `UPDATE carts SET reminder_count = reminder_count + 1, last_reminder_at = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, time.Now()); err != nil {
		return fmt.Errorf("failed to mark cart reminded: %w", err)
	}
	return nil
}

// ExpireIdle abandons non-empty active carts idle since before and expires
// empty ones.
func (r *cartRepository) ExpireIdle(ctx context.Context, before time.Time) (int64, error) {
	query := `
		UPDATE carts
		SET status = CASE WHEN item_count > 0 THEN 'abandoned' ELSE 'expired' END,
		    updated_at = $2
		WHERE status = 'active' AND updated_at < $1
	`

	res, err := r.db.ExecContext(ctx, query, before, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to expire idle carts: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (r *cartRepository) ListForEngagement(ctx context.Context, idleBefore time.Time, limit int) ([]*models.Cart, error) {
	query := `
		SELECT ` + prefixed("c", cartColumns) + `
		FROM carts c
		JOIN customers cu ON cu.phone = c.phone
		WHERE c.status IN ('active', 'abandoned')
		  AND c.item_count > 0
		  AND c.updated_at < $1
		  AND cu.opted_in_marketing = TRUE AND cu.is_blocked = FALSE AND cu.is_deleted = FALSE
		ORDER BY c.total DESC
		LIMIT $2
	`

	var carts []*models.Cart
	if err := r.db.SelectContext(ctx, &carts, query, idleBefore, limit); err != nil {
		return nil, fmt.Errorf("failed to list carts for engagement: %w", err)
	}
	return carts, nil
}
