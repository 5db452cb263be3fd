package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/kaapav/kaapav-bot/internal/models"
)

// adminRepository covers the small dashboard reference tables.
type adminRepository struct {
	db *sqlx.DB
}

func NewAdminRepository(db *sqlx.DB) AdminRepository {
	return &adminRepository{
		db: db,
	}
}

func (r *adminRepository) ListLabels(ctx context.Context) ([]*models.Label, error) {
	var labels []*models.Label
	if err := r.db.SelectContext(ctx, &labels, `SELECT id, name, color, created_at FROM labels ORDER BY name`); err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}
	return labels, nil
}

func (r *adminRepository) CreateLabel(ctx context.Context, l *models.Label) error {
	query := `INSERT INTO labels (name, color, created_at) VALUES ($1, $2, $3) RETURNING id, created_at`
	if l.Color == "" {
		l.Color = "#6b7280"
	}
	if err := r.db.QueryRowxContext(ctx, query, l.Name, l.Color, time.Now()).Scan(&l.ID, &l.CreatedAt); err != nil {
		return fmt.Errorf("failed to create label: %w", mapError(err))
	}
	return nil
}

func (r *adminRepository) DeleteLabel(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM labels WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete label: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("failed to delete label: %w", ErrNotFound)
	}
	return nil
}

func (r *adminRepository) ListTemplates(ctx context.Context) ([]*models.Template, error) {
	query := `SELECT id, name, language, category, body, status, parameters, created_at FROM templates ORDER BY name, language`

	var templates []*models.Template
	if err := r.db.SelectContext(ctx, &templates, query); err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

func (r *adminRepository) CreateTemplate(ctx context.Context, t *models.Template) error {
	query := `
		INSERT INTO templates (name, language, category, body, status, parameters, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	if t.Status == "" {
		t.Status = "pending"
	}
	if t.Parameters == nil {
		t.Parameters = pq.StringArray{}
	}

	row := r.db.QueryRowxContext(ctx, query, t.Name, t.Language, t.Category, t.Body, t.Status, t.Parameters, time.Now())
	if err := row.Scan(&t.ID, &t.CreatedAt); err != nil {
		return fmt.Errorf("failed to create template: %w", mapError(err))
	}
	return nil
}

func (r *adminRepository) ListAgents(ctx context.Context) ([]*models.Agent, error) {
	query := `SELECT id, name, email, phone, role, is_active, created_at FROM agents ORDER BY name`

	var agents []*models.Agent
	if err := r.db.SelectContext(ctx, &agents, query); err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return agents, nil
}

func (r *adminRepository) CreateAgent(ctx context.Context, a *models.Agent) error {
	query := `
		INSERT INTO agents (name, email, phone, role, is_active, created_at)
		VALUES ($1, $2, $3, $4, TRUE, $5)
		RETURNING id, is_active, created_at
	`

	if a.Role == "" {
		a.Role = "agent"
	}

	row := r.db.QueryRowxContext(ctx, query, a.Name, a.Email, a.Phone, a.Role, time.Now())
	if err := row.Scan(&a.ID, &a.IsActive, &a.CreatedAt); err != nil {
		return fmt.Errorf("failed to create agent: %w", mapError(err))
	}
	return nil
}

func (r *adminRepository) ListSettings(ctx context.Context) ([]*models.Setting, error) {
	var settings []*models.Setting
	if err := r.db.SelectContext(ctx, &settings, `SELECT key, value, updated_at FROM settings ORDER BY key`); err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}

func (r *adminRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	if err := r.db.GetContext(ctx, &value, `SELECT value FROM settings WHERE key = $1`, key); err != nil {
		return "", fmt.Errorf("failed to get setting: %w", mapError(err))
	}
	return value, nil
}

func (r *adminRepository) UpsertSetting(ctx context.Context, key, value string) (*models.Setting, error) {
	query := `
		INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
		RETURNING key, value, updated_at
	`

	var s models.Setting
	if err := r.db.GetContext(ctx, &s, query, key, value, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to save setting: %w", err)
	}
	return &s, nil
}
