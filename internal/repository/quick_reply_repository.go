package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/kaapav/kaapav-bot/internal/models"
)

const quickReplyColumns = `id, keyword, match_type, response, buttons, priority, use_count, is_active, created_at, updated_at`

type quickReplyRepository struct {
	db *sqlx.DB
}

func NewQuickReplyRepository(db *sqlx.DB) QuickReplyRepository {
	return &quickReplyRepository{
		db: db,
	}
}

// ListActive returns active replies in match order.
func (r *quickReplyRepository) ListActive(ctx context.Context) ([]*models.QuickReply, error) {
	query := `
		SELECT ` + quickReplyColumns + `
		FROM quick_replies
		WHERE is_active = TRUE
		ORDER BY priority DESC, use_count DESC, id ASC
	`

	var replies []*models.QuickReply
	if err := r.db.SelectContext(ctx, &replies, query); err != nil {
		return nil, fmt.Errorf("failed to list active quick replies: %w", err)
	}
	return replies, nil
}

func (r *quickReplyRepository) List(ctx context.Context) ([]*models.QuickReply, error) {
	var replies []*models.QuickReply
	if err := r.db.SelectContext(ctx, &replies, `SELECT `+quickReplyColumns+` FROM quick_replies ORDER BY id ASC`); err != nil {
		return nil, fmt.Errorf("failed to list quick replies: %w", err)
	}
	return replies, nil
}

func (r *quickReplyRepository) Get(ctx context.Context, id int64) (*models.QuickReply, error) {
	var q models.QuickReply
	if err := r.db.GetContext(ctx, &q, `SELECT `+quickReplyColumns+` FROM quick_replies WHERE id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to get quick reply: %w", mapError(err))
	}
	return &q, nil
}

func (r *quickReplyRepository) Create(ctx context.Context, q *models.QuickReply) error {
	query := `
		INSERT INTO quick_replies (keyword, match_type, response, buttons, priority, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id, created_at, updated_at
	`

	if q.Buttons == nil {
		q.Buttons = pq.StringArray{}
	}

	row := r.db.QueryRowxContext(ctx, query, q.Keyword, q.MatchType, q.Response, q.Buttons, q.Priority, q.IsActive, time.Now())
	if err := row.Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt); err != nil {
		return fmt.Errorf("failed to create quick reply: %w", err)
	}
	return nil
}

func (r *quickReplyRepository) Update(ctx context.Context, q *models.QuickReply) error {
	query := `
		UPDATE quick_replies
		SET keyword = $2, match_type = $3, response = $4, buttons = $5, priority = $6, is_active = $7, updated_at = $8
		WHERE id = $1
	`

	if q.Buttons == nil {
		q.Buttons = pq.StringArray{}
	}
	q.UpdatedAt = time.Now()

	res, err := r.db.ExecContext(ctx, query, q.ID, q.Keyword, q.MatchType, q.Response, q.Buttons, q.Priority, q.IsActive, q.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update quick reply: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("failed to update quick reply: %w", ErrNotFound)
	}
	return nil
}

func (r *quickReplyRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM quick_replies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete quick reply: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("failed to delete quick reply: %w", ErrNotFound)
	}
	return nil
}

func (r *quickReplyRepository) IncrementUse(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE quick_replies SET use_count = use_count + 1 WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to increment quick reply use: %w", err)
	}
	return nil
}
