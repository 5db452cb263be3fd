package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kaapav/kaapav-bot/internal/models"
)

const reminderColumns = `id, phone, type, reference, message, due_at, status, attempts, error, created_at, sent_at`

type reminderRepository struct {
	db *sqlx.DB
}

func NewReminderRepository(db *sqlx.DB) ReminderRepository {
	return &reminderRepository{
		db: db,
	}
}

func (r *reminderRepository) Create(ctx context.Context, rem *models.Reminder) error {
	query := `
		INSERT INTO reminders (phone, type, reference, message, due_at, status, created_at)
		VALUES ($1, $2, $3, $4, $5, 'pending', $6)
		RETURNING id, status, created_at
	`

	row := r.db.QueryRowxContext(ctx, query, rem.Phone, rem.Type, rem.Reference, rem.Message, rem.DueAt, time.Now())
	if err := row.Scan(&rem.ID, &rem.Status, &rem.CreatedAt); err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}
	return nil
}

// ClaimDue hands each due reminder to exactly one sweeper. Claimed rows have
// their due time pushed forward so a crashed sweep retries them later.
func (r *reminderRepository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]*models.Reminder, error) {
	query := `
		UPDATE reminders
		SET attempts = attempts + 1, due_at = $1::timestamptz + INTERVAL '15 minutes'
		WHERE id IN (
			SELECT id FROM reminders
			WHERE status = 'pending' AND due_at <= $1
			ORDER BY due_at ASC
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING ` + reminderColumns

	var reminders []*models.Reminder
	if err := r.db.SelectContext(ctx, &reminders, query, now, limit); err != nil {
		return nil, fmt.Errorf("failed to claim reminders: %w", err)
	}
	return reminders, nil
}

func (r *reminderRepository) MarkSent(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE reminders SET status = 'sent', sent_at = $2, error = NULL WHERE id = $1`, id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}
	return nil
}

// MarkFailed keeps the reminder pending until it runs out of attempts.
func (r *reminderRepository) MarkFailed(ctx context.Context, id int64, errMsg string, maxAttempts int) error {
	query := `
		UPDATE reminders
		SET error = $2,
		    status = CASE WHEN attempts >= $3 THEN 'failed' ELSE 'pending' END
		WHERE id = $1
	`

	if _, err := r.db.ExecContext(ctx, query, id, errMsg, maxAttempts); err != nil {
		return fmt.Errorf("failed to mark reminder failed: %w", err)
	}
	return nil
}

func (r *reminderRepository) CancelByReference(ctx context.Context, t models.ReminderType, reference string) error {
	query := `UPDATE reminders SET status = 'cancelled' WHERE type = $1 AND reference = $2 AND status = 'pending'`
	if _, err := r.db.ExecContext(ctx, query, t, reference); err != nil {
		return fmt.Errorf("failed to cancel reminders: %w", err)
	}
	return nil
}
