package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kaapav/kaapav-bot/internal/models"
)

type stateRepository struct {
	db *sqlx.DB
}

func NewStateRepository(db *sqlx.DB) StateRepository {
	return &stateRepository{
		db: db,
	}
}

// Get returns the stored state regardless of expiry; callers decide.
func (r *stateRepository) Get(ctx context.Context, phone string) (*models.ConversationState, error) {
	query := `
		SELECT phone, current_flow, current_step, flow_data, expires_at, created_at, updated_at
		FROM conversation_states
		WHERE phone = $1
	`

	var s models.ConversationState
	if err := r.db.GetContext(ctx, &s, query, phone); err != nil {
		return nil, fmt.Errorf("failed to get conversation state: %w", mapError(err))
	}
	return &s, nil
}

func (r *stateRepository) Upsert(ctx context.Context, s *models.ConversationState) error {
	query := `
		INSERT INTO conversation_states (phone, current_flow, current_step, flow_data, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (phone) DO UPDATE
		SET current_flow = EXCLUDED.current_flow,
		    current_step = EXCLUDED.current_step,
		    flow_data = EXCLUDED.flow_data,
		    expires_at = EXCLUDED.expires_at,
		    updated_at = EXCLUDED.updated_at
	`

	data := s.FlowData
	if data == nil {
		data = models.JSONMap{}
	}
	now := s.UpdatedAt
	if now.IsZero() {
		now = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query, s.Phone, s.CurrentFlow, s.CurrentStep, data, s.ExpiresAt, now)
	if err != nil {
		return fmt.Errorf("failed to save conversation state: %w", err)
	}
	return nil
}

func (r *stateRepository) Delete(ctx context.Context, phone string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM conversation_states WHERE phone = $1`, phone); err != nil {
		return fmt.Errorf("failed to delete conversation state: %w", err)
	}
	return nil
}

func (r *stateRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM conversation_states WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired states: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
