package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/kaapav/kaapav-bot/internal/models"
)

const broadcastColumns = `broadcast_id, name, target_type, target_segment, target_labels, target_phones,
	message_type, message, template_name, template_language, media_url, buttons, send_rate, status,
	total_recipients, sent_count, failed_count, scheduled_at, started_at, completed_at, created_by,
	created_at, updated_at`

type broadcastRepository struct {
	db *sqlx.DB
}

func NewBroadcastRepository(db *sqlx.DB) BroadcastRepository {
	return &broadcastRepository{
		db: db,
	}
}

func (r *broadcastRepository) Create(ctx context.Context, b *models.Broadcast) error {
	query := `
		INSERT INTO broadcasts (broadcast_id, name, target_type, target_segment, target_labels, target_phones,
		                        message_type, message, template_name, template_language, media_url, buttons,
		                        send_rate, status, scheduled_at, created_by, created_at, updated_at)
		VALUES (:broadcast_id, :name, :target_type, :target_segment, :target_labels, :target_phones,
		        :message_type, :message, :template_name, :template_language, :media_url, :buttons,
		        :send_rate, :status, :scheduled_at, :created_by, :created_at, :created_at)
	`

	now := time.Now()
	b.CreatedAt, b.UpdatedAt = now, now
	if b.Status == "" {
		b.Status = models.BroadcastStatusDraft
	}
	if b.TargetLabels == nil {
		b.TargetLabels = pq.StringArray{}
	}
	if b.TargetPhones == nil {
		b.TargetPhones = pq.StringArray{}
	}
	if b.Buttons == nil {
		b.Buttons = pq.StringArray{}
	}

	if _, err := r.db.NamedExecContext(ctx, query, b); err != nil {
		return fmt.Errorf("failed to create broadcast: %w", mapError(err))
	}
	return nil
}

func (r *broadcastRepository) Get(ctx context.Context, id string) (*models.Broadcast, error) {
	var b models.Broadcast
	if err := r.db.GetContext(ctx, &b, `SELECT `+broadcastColumns+` FROM broadcasts WHERE broadcast_id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to get broadcast: %w", mapError(err))
	}
	return &b, nil
}

func (r *broadcastRepository) List(ctx context.Context, status models.BroadcastStatus, limit, offset int) ([]*models.Broadcast, int64, error) {
	clause := "TRUE"
	var args []any
	if status != "" {
		clause = "status = $1"
		args = append(args, status)
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM broadcasts WHERE `+clause, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count broadcasts: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM broadcasts WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		broadcastColumns, clause, len(args)-1, len(args))

	var broadcasts []*models.Broadcast
	if err := r.db.SelectContext(ctx, &broadcasts, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list broadcasts: %w", err)
	}
	return broadcasts, total, nil
}

func (r *broadcastRepository) Schedule(ctx context.Context, id string, at time.Time) error {
	query := `
		UPDATE broadcasts
		SET status = 'scheduled', scheduled_at = $2, updated_at = $3
		WHERE broadcast_id = $1 AND status IN ('draft', 'scheduled')
	`

	res, err := r.db.ExecContext(ctx, query, id, at, time.Now())
	if err != nil {
		return fmt.Errorf("failed to schedule broadcast: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("failed to schedule broadcast %s: %w", id, ErrInvalidTransition)
	}
	return nil
}

// Start moves the broadcast to sending and writes one pending recipient row
// per phone. Only one caller can win the status swap.
func (r *broadcastRepository) Start(ctx context.Context, id string, phones []string) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	phones = dedupe(phones)
	now := time.Now()
	res, err := tx.ExecContext(ctx, `
		UPDATE broadcasts
		SET status = 'sending', total_recipients = $2, sent_count = 0, failed_count = 0,
		    started_at = $3, updated_at = $3
		WHERE broadcast_id = $1 AND status IN ('draft', 'scheduled')`,
		id, len(phones), now)
	if err != nil {
		return false, fmt.Errorf("failed to start broadcast: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return false, nil
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO broadcast_recipients (broadcast_id, phone, created_at)
		SELECT $1, unnest($2::text[]), $3
		ON CONFLICT (broadcast_id, phone) DO NOTHING`,
		id, pq.StringArray(phones), now)
	if err != nil {
		return false, fmt.Errorf("failed to create broadcast recipients: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit broadcast start: %w", err)
	}
	return true, nil
}

// RecordResult settles one pending recipient and bumps the matching counter
// in the same statement; settling a recipient twice has no effect.
func (r *broadcastRepository) RecordResult(ctx context.Context, id, phone, messageID, errMsg string) error {
	query := `
		WITH settled AS (
			UPDATE broadcast_recipients
			SET status = CASE WHEN $4 = '' THEN 'sent' ELSE 'failed' END,
			    message_id = NULLIF($3, ''),
			    error = NULLIF($4, ''),
			    sent_at = CASE WHEN $4 = '' THEN $5::timestamptz END
			WHERE broadcast_id = $1 AND phone = $2 AND status = 'pending'
			RETURNING status
		)
		UPDATE broadcasts
		SET sent_count = sent_count + (SELECT COUNT(*) FROM settled WHERE status = 'sent'),
		    failed_count = failed_count + (SELECT COUNT(*) FROM settled WHERE status = 'failed'),
		    updated_at = $5
		WHERE broadcast_id = $1
	`

	if _, err := r.db.ExecContext(ctx, query, id, phone, messageID, errMsg, time.Now()); err != nil {
		return fmt.Errorf("failed to record broadcast result: %w", err)
	}
	return nil
}

func (r *broadcastRepository) Finish(ctx context.Context, id string, status models.BroadcastStatus) error {
	query := `
		UPDATE broadcasts
		SET status = $2, completed_at = $3, updated_at = $3
		WHERE broadcast_id = $1 AND status = 'sending'
	`

	if _, err := r.db.ExecContext(ctx, query, id, status, time.Now()); err != nil {
		return fmt.Errorf("failed to finish broadcast: %w", err)
	}
	return nil
}

func (r *broadcastRepository) Cancel(ctx context.Context, id string) (bool, error) {
	query := `
		UPDATE broadcasts
		SET status = 'cancelled', completed_at = $2, updated_at = $2
		WHERE broadcast_id = $1 AND status IN ('draft', 'scheduled', 'sending')
	`

	res, err := r.db.ExecContext(ctx, query, id, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to cancel broadcast: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *broadcastRepository) Status(ctx context.Context, id string) (models.BroadcastStatus, error) {
	var status models.BroadcastStatus
	if err := r.db.GetContext(ctx, &status, `SELECT status FROM broadcasts WHERE broadcast_id = $1`, id); err != nil {
		return "", fmt.Errorf("failed to get broadcast status: %w", mapError(err))
	}
	return status, nil
}

func (r *broadcastRepository) DueScheduled(ctx context.Context, now time.Time, limit int) ([]*models.Broadcast, error) {
	query := `
		SELECT ` + broadcastColumns + `
		FROM broadcasts
		WHERE status = 'scheduled' AND scheduled_at <= $1
		ORDER BY scheduled_at ASC
		LIMIT $2
	`

	var broadcasts []*models.Broadcast
	if err := r.db.SelectContext(ctx, &broadcasts, query, now, limit); err != nil {
		return nil, fmt.Errorf("failed to list due broadcasts: %w", err)
	}
	return broadcasts, nil
}

func (r *broadcastRepository) Recipients(ctx context.Context, id string, status models.RecipientStatus, limit, offset int) ([]*models.BroadcastRecipient, error) {
	query := `
		SELECT id, broadcast_id, phone, status, message_id, error, sent_at, created_at
		FROM broadcast_recipients
		WHERE broadcast_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY id ASC
		LIMIT $3 OFFSET $4
	`

	var recipients []*models.BroadcastRecipient
	if err := r.db.SelectContext(ctx, &recipients, query, id, status, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list broadcast recipients: %w", err)
	}
	return recipients, nil
}

func dedupe(phones []string) []string {
	seen := make(map[string]struct{}, len(phones))
	out := make([]string, 0, len(phones))
	for _, p := range phones {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
