package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kaapav/kaapav-bot/internal/models"
)

const messageColumns = `id, phone, direction, type, content, status, message_id, media_id, media_url,
	button_id, button_text, context_id, payload, error, ai_processed, ai_response, created_at, sent_at, updated_at`

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Create appends a message to the log.
func (r *messageRepository) Create(ctx context.Context, msg models.NewMessage) (int64, error) {
	query := `
		INSERT INTO messages (phone, direction, type, content, status, message_id, media_id,
		                      button_id, button_text, context_id, payload, error, created_at, sent_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $13)
		RETURNING id
	`

	status := msg.Status
	if status == "" {
		if msg.Direction == models.DirectionIncoming {
			status = models.MessageStatusReceived
		} else {
			status = models.MessageStatusPending
		}
	}

	now := time.Now()
	var sentAt sql.NullTime
	if status == models.MessageStatusSent {
		sentAt = sql.NullTime{
			Time:  now,
			Valid: true,
		}
	}

	payload := msg.Payload
	if payload == nil {
		payload = models.JSONMap{}
	}

	var id int64
	err := r.db.GetContext(ctx, &id, query,
		msg.Phone, msg.Direction, msg.Type, msg.Content, status,
		nullString(msg.MessageID), nullString(msg.MediaID), nullString(msg.ButtonID),
		nullString(msg.ButtonText), nullString(msg.ContextID), payload, nullString(msg.Error),
		now, sentAt)
	if err != nil {
		return 0, fmt.Errorf("failed to create message: %w", err)
	}

	return id, nil
}

// UpdateStatus applies a delivery receipt. Receipts can arrive out of order,
// so a status never moves backwards; failed overrides anything but read.
func (r *messageRepository) UpdateStatus(ctx context.Context, u models.StatusUpdate) error {
	query := `
		UPDATE messages
		SET status = $2,
		    error = COALESCE($3, error),
		    sent_at = CASE WHEN $2 = 'sent' AND sent_at IS NULL THEN $4 ELSE sent_at END,
		    updated_at = $5
		WHERE message_id = $1
		  AND direction = 'outgoing'
		  AND (CASE status
		           WHEN 'pending' THEN 0 WHEN 'sent' THEN 1 WHEN 'delivered' THEN 2
		           WHEN 'read' THEN 3 ELSE 4 END)
		      < (CASE $2
		           WHEN 'pending' THEN 0 WHEN 'sent' THEN 1 WHEN 'delivered' THEN 2
		           WHEN 'read' THEN 3 WHEN 'failed' THEN 3 ELSE -1 END)
	`

	at := u.At
	if at.IsZero() {
		at = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query, u.MessageID, u.Status, nullString(u.Error), at, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update message status: %w", err)
	}

	return nil
}

func (r *messageRepository) ListByPhone(ctx context.Context, phone string, limit, offset int) ([]*models.Message, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE phone = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	var messages []*models.Message
	if err := r.db.SelectContext(ctx, &messages, query, phone, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return messages, nil
}

func (r *messageRepository) SetAIResponse(ctx context.Context, id int64, response string) error {
	query := `UPDATE messages SET ai_processed = TRUE, ai_response = $2, updated_at = $3 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, response, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set ai response: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("failed to set ai response: %w", ErrNotFound)
	}
	return nil
}

func (r *messageRepository) CountSince(ctx context.Context, since time.Time) (int64, int64, error) {
	query := `
		SELECT COUNT(*) FILTER (WHERE direction = 'incoming') AS incoming,
		       COUNT(*) FILTER (WHERE direction = 'outgoing') AS outgoing
		FROM messages
		WHERE created_at >= $1
	`

	var row struct {
		Incoming int64 `db:"incoming"`
		Outgoing int64 `db:"outgoing"`
	}
	if err := r.db.GetContext(ctx, &row, query, since); err != nil {
		return 0, 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return row.Incoming, row.Outgoing, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{
		String: s,
		Valid:  s != "",
	}
}
