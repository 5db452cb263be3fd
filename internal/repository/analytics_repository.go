package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kaapav/kaapav-bot/internal/models"
)

type analyticsRepository struct {
	db *sqlx.DB
}

func NewAnalyticsRepository(db *sqlx.DB) AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

func (r *analyticsRepository) RecordEvent(ctx context.Context, e *models.AnalyticsEvent) error {
	data := e.Data
	if data == nil {
		data = models.JSONMap{}
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	query := `INSERT INTO analytics_events (phone, event, action, data, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := r.db.GetContext(ctx, &e.ID, query, e.Phone, e.Event, e.Action, data, e.CreatedAt); err != nil {
		return fmt.Errorf("failed to record analytics event: %w", err)
	}
	return nil
}

func (r *analyticsRepository) LogError(ctx context.Context, entry *models.ErrorLog) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	query := `INSERT INTO error_logs (endpoint, phone, message, stack, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := r.db.GetContext(ctx, &entry.ID, query, entry.Endpoint, entry.Phone, entry.Message, entry.Stack, entry.CreatedAt); err != nil {
		return fmt.Errorf("failed to log error: %w", err)
	}
	return nil
}

func (r *analyticsRepository) PruneEvents(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM analytics_events WHERE created_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("failed to prune analytics events: %w", err)
	}
	n, _ := res.RowsAffected()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM error_logs WHERE created_at < $1`, before); err != nil {
		return n, fmt.Errorf("failed to prune error logs: %w", err)
	}
	return n, nil
}

func (r *analyticsRepository) TopActions(ctx context.Context, since time.Time, limit int) ([]models.ActionCount, error) {
	query := `
		SELECT action, COUNT(*) AS count
		FROM analytics_events
		WHERE event = 'button_click' AND created_at >= $1
		GROUP BY action
		ORDER BY count DESC, action ASC
		LIMIT $2
	`

	var actions []models.ActionCount
	if err := r.db.SelectContext(ctx, &actions, query, since, limit); err != nil {
		return nil, fmt.Errorf("failed to get top actions: %w", err)
	}
	return actions, nil
}

// BuildDailyReport aggregates the 24 hours starting at day.
func (r *analyticsRepository) BuildDailyReport(ctx context.Context, day time.Time) (*models.DailyReport, error) {
	query := `
		SELECT $3::date AS report_date,
		       (SELECT COUNT(*) FROM customers WHERE created_at >= $1 AND created_at < $2) AS new_customers,
		       (SELECT COUNT(*) FROM customers WHERE last_seen >= $1 AND last_seen < $2) AS active_customers,
		       (SELECT COUNT(*) FROM messages WHERE direction = 'incoming' AND created_at >= $1 AND created_at < $2) AS messages_in,
		       (SELECT COUNT(*) FROM messages WHERE direction = 'outgoing' AND created_at >= $1 AND created_at < $2) AS messages_out,
		       (SELECT COUNT(*) FROM orders WHERE created_at >= $1 AND created_at < $2) AS orders_created,
		       (SELECT COUNT(*) FROM order_events WHERE event = 'paid' AND created_at >= $1 AND created_at < $2) AS orders_paid,
		       (SELECT COALESCE(SUM(o.total), 0) FROM order_events e JOIN orders o ON o.order_id = e.order_id
		         WHERE e.event = 'paid' AND e.created_at >= $1 AND e.created_at < $2) AS revenue,
		       (SELECT COUNT(*) FROM carts WHERE status = 'abandoned' AND updated_at >= $1 AND updated_at < $2) AS abandoned_carts,
		       NOW() AS created_at
	`

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	var report models.DailyReport
	if err := r.db.GetContext(ctx, &report, query, start, start.Add(24*time.Hour), start.Format(time.DateOnly)); err != nil {
		return nil, fmt.Errorf("failed to build daily report: %w", err)
	}
	return &report, nil
}

func (r *analyticsRepository) SaveDailyReport(ctx context.Context, report *models.DailyReport) error {
	query := `
		INSERT INTO daily_reports (report_date, new_customers, active_customers, messages_in, messages_out,
		                           orders_created, orders_paid, revenue, abandoned_carts, created_at)
		VALUES (:report_date, :new_customers, :active_customers, :messages_in, :messages_out,
		        :orders_created, :orders_paid, :revenue, :abandoned_carts, :created_at)
		ON CONFLICT (report_date) DO UPDATE
		SET new_customers = EXCLUDED.new_customers,
		    active_customers = EXCLUDED.active_customers,
		    messages_in = EXCLUDED.messages_in,
		    messages_out = EXCLUDED.messages_out,
		    orders_created = EXCLUDED.orders_created,
		    orders_paid = EXCLUDED.orders_paid,
		    revenue = EXCLUDED.revenue,
		    abandoned_carts = EXCLUDED.abandoned_carts,
		    created_at = EXCLUDED.created_at
	`

	if _, err := r.db.NamedExecContext(ctx, query, report); err != nil {
		return fmt.Errorf("failed to save daily report: %w", err)
	}
	return nil
}

func (r *analyticsRepository) RecentReports(ctx context.Context, limit int) ([]models.DailyReport, error) {
	query := `
		SELECT report_date, new_customers, active_customers, messages_in, messages_out, orders_created,
		       orders_paid, revenue, abandoned_carts, created_at
		FROM daily_reports
		ORDER BY report_date DESC
		LIMIT $1
	`

	var reports []models.DailyReport
	if err := r.db.SelectContext(ctx, &reports, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list daily reports: %w", err)
	}
	return reports, nil
}
