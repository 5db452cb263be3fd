package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/kaapav/kaapav-bot/internal/models"
)

const chatColumns = `phone, customer_name, last_message, last_message_type, last_message_at, last_direction,
	unread_count, labels, status, assigned_to, priority, created_at, updated_at`

const maxPreviewLength = 500

type chatRepository struct {
	db *sqlx.DB
}

func NewChatRepository(db *sqlx.DB) ChatRepository {
	return &chatRepository{
		db: db,
	}
}

// Upsert records the latest message on the thread. Incoming messages bump the
// unread counter and reopen resolved threads; outgoing ones leave both alone.
func (r *chatRepository) Upsert(ctx context.Context, s models.ChatSummary) error {
	query := `
		INSERT INTO chats (phone, customer_name, last_message, last_message_type, last_message_at,
		                   last_direction, unread_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, CASE WHEN $6 = 'incoming' THEN 1 ELSE 0 END, $7, $7)
		ON CONFLICT (phone) DO UPDATE
		SET customer_name = CASE WHEN EXCLUDED.customer_name <> '' THEN EXCLUDED.customer_name ELSE chats.customer_name END,
		    last_message = EXCLUDED.last_message,
		    last_message_type = EXCLUDED.last_message_type,
		    last_message_at = EXCLUDED.last_message_at,
		    last_direction = EXCLUDED.last_direction,
		    unread_count = chats.unread_count + CASE WHEN EXCLUDED.last_direction = 'incoming' THEN 1 ELSE 0 END,
		    status = CASE WHEN EXCLUDED.last_direction = 'incoming' AND chats.status IN ('resolved', 'archived')
		                  THEN 'open' ELSE chats.status END,
		    updated_at = EXCLUDED.updated_at
	`

	at := s.At
	if at.IsZero() {
		at = time.Now()
	}
	text := s.Text
	if len(text) > maxPreviewLength {
		text = text[:maxPreviewLength]
	}

	_, err := r.db.ExecContext(ctx, query, s.Phone, s.CustomerName, text, s.Type, at, s.Direction, time.Now())
	if err != nil {
		return fmt.Errorf("failed to upsert chat: %w", err)
	}
	return nil
}

func (r *chatRepository) Get(ctx context.Context, phone string) (*models.Chat, error) {
	var c models.Chat
	if err := r.db.GetContext(ctx, &c, `SELECT `+chatColumns+` FROM chats WHERE phone = $1`, phone); err != nil {
		return nil, fmt.Errorf("failed to get chat: %w", mapError(err))
	}
	return &c, nil
}

func (r *chatRepository) List(ctx context.Context, filter models.ChatFilter) ([]*models.Chat, int64, error) {
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
	if filter.Label != "" {
		add("? = ANY(labels)", filter.Label)
	}
	if filter.AssignedTo != "" {
		add("assigned_to = ?", filter.AssignedTo)
	}
	if filter.Search != "" {
		add("(customer_name ILIKE ? OR phone LIKE ? OR last_message ILIKE ?)", "%"+filter.Search+"%")
	}
	if filter.UnreadOnly {
		where = append(where, "unread_count > 0")
	}

	clause := "TRUE"
	if len(where) > 0 {
		clause = strings.Join(where, " AND ")
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM chats WHERE `+clause, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count chats: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM chats WHERE %s ORDER BY last_message_at DESC LIMIT $%d OFFSET $%d`,
		chatColumns, clause, len(args)-1, len(args))

	var chats []*models.Chat
	if err := r.db.SelectContext(ctx, &chats, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list chats: %w", err)
	}
	return chats, total, nil
}

// MarkRead is the only path that resets the unread counter.
func (r *chatRepository) MarkRead(ctx context.Context, phone string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE chats SET unread_count = 0, updated_at = $2 WHERE phone = $1`, phone, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark chat read: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("failed to mark chat read: %w", ErrNotFound)
	}
	return nil
}

func (r *chatRepository) Update(ctx context.Context, phone string, u models.ChatUpdate) (*models.Chat, error) {
	var labels any
	if u.Labels != nil {
		labels = pq.StringArray(u.Labels)
	}

	query := `
		UPDATE chats
		SET status = COALESCE($2, status),
		    assigned_to = COALESCE($3, assigned_to),
		    priority = COALESCE($4, priority),
		    labels = COALESCE($5, labels),
		    updated_at = $6
		WHERE phone = $1
		RETURNING ` + chatColumns

	var c models.Chat
	if err := r.db.GetContext(ctx, &c, query, phone, u.Status, u.AssignedTo, u.Priority, labels, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to update chat: %w", mapError(err))
	}
	return &c, nil
}

func (r *chatRepository) Counts(ctx context.Context) (int64, int64, error) {
	var row struct {
		Open   int64 `db:"open"`
		Unread int64 `db:"unread"`
	}
	query := `
		SELECT COUNT(*) FILTER (WHERE status IN ('open', 'pending')) AS open,
		       COUNT(*) FILTER (WHERE unread_count > 0) AS unread
		FROM chats
	`
	if err := r.db.GetContext(ctx, &row, query); err != nil {
		return 0, 0, fmt.Errorf("failed to count chats: %w", err)
	}
	return row.Open, row.Unread, nil
}
