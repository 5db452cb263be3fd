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

const customerColumns = `phone, name, email, segment, opted_in_marketing, is_blocked, is_deleted,
	total_spent, order_count, language, address, pincode, labels, last_seen, created_at, updated_at`

type customerRepository struct {
	db *sqlx.DB
}

func NewCustomerRepository(db *sqlx.DB) CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// Touch creates the customer on first contact and refreshes last_seen otherwise.
func (r *customerRepository) Touch(ctx context.Context, phone, name string) (*models.Customer, bool, error) {
	query := `
		INSERT INTO customers (phone, name, last_seen, created_at, updated_at)
		VALUES ($1, $2, $3, $3, $3)
		ON CONFLICT (phone) DO UPDATE
		SET name = CASE WHEN EXCLUDED.name <> '' THEN EXCLUDED.name ELSE customers.name END,
		    last_seen = EXCLUDED.last_seen,
		    is_deleted = FALSE,
		    updated_at = EXCLUDED.updated_at
		RETURNING ` + customerColumns + `, (xmax = 0) AS inserted
	`

	var row struct {
		models.Customer
		Inserted bool `db:"inserted"`
	}
	if err := r.db.GetContext(ctx, &row, query, phone, name, time.Now()); err != nil {
		return nil, false, fmt.Errorf("failed to touch customer: %w", err)
	}

	return &row.Customer, row.Inserted, nil
}

func (r *customerRepository) Get(ctx context.Context, phone string) (*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE phone = $1 AND is_deleted = FALSE`

	var c models.Customer
	if err := r.db.GetContext(ctx, &c, query, phone); err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", mapError(err))
	}
	return &c, nil
}

func (r *customerRepository) List(ctx context.Context, filter models.CustomerFilter) ([]*models.Customer, int64, error) {
	where := []string{"is_deleted = FALSE"}
	var args []any

	if filter.Segment != "" {
		args = append(args, filter.Segment)
		where = append(where, fmt.Sprintf("segment = $%d", len(args)))
	}
	if filter.Label != "" {
		args = append(args, filter.Label)
		where = append(where, fmt.Sprintf("$%d = ANY(labels)", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR phone LIKE $%d)", len(args), len(args)))
	}
	if filter.OptedIn != nil {
		args = append(args, *filter.OptedIn)
		where = append(where, fmt.Sprintf("opted_in_marketing = $%d", len(args)))
	}
	clause := strings.Join(where, " AND ")

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM customers WHERE `+clause, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE %s ORDER BY last_seen DESC LIMIT $%d OFFSET $%d`,
		customerColumns, clause, len(args)-1, len(args))

	var customers []*models.Customer
	if err := r.db.SelectContext(ctx, &customers, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, total, nil
}

func (r *customerRepository) Update(ctx context.Context, phone string, update models.CustomerUpdate) (*models.Customer, error) {
	var labels any
	if update.Labels != nil {
		labels = pq.StringArray(update.Labels)
	}

	query := `
		UPDATE customers
		SET name = COALESCE($2, name),
		    email = COALESCE($3, email),
		    segment = COALESCE($4, segment),
		    opted_in_marketing = COALESCE($5, opted_in_marketing),
		    is_blocked = COALESCE($6, is_blocked),
		    language = COALESCE($7, language),
		    labels = COALESCE($8, labels),
		    updated_at = $9
		WHERE phone = $1 AND is_deleted = FALSE
		RETURNING ` + customerColumns

	var c models.Customer
	err := r.db.GetContext(ctx, &c, query, phone,
		update.Name, update.Email, update.Segment, update.OptedInMarketing,
		update.IsBlocked, update.Language, labels, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", mapError(err))
	}

	return &c, nil
}

func (r *customerRepository) SoftDelete(ctx context.Context, phone string) error {
	return r.exec(ctx, "soft delete customer",
		`UPDATE customers SET is_deleted = TRUE, opted_in_marketing = FALSE, updated_at = $2 WHERE phone = $1 AND is_deleted = FALSE`,
		phone, time.Now())
}

func (r *customerRepository) SetLanguage(ctx context.Context, phone, language string) error {
	return r.exec(ctx, "set customer language",
		`UPDATE customers SET language = $2, updated_at = $3 WHERE phone = $1`,
		phone, language, time.Now())
}

func (r *customerRepository) SetMarketingOptIn(ctx context.Context, phone string, optIn bool) error {
	return r.exec(ctx, "set marketing opt-in",
		`UPDATE customers SET opted_in_marketing = $2, updated_at = $3 WHERE phone = $1`,
		phone, optIn, time.Now())
}

func (r *customerRepository) SetAddress(ctx context.Context, phone, name, address, pincode string) error {
	return r.exec(ctx, "set customer address",
		`UPDATE customers
		 SET address = $2, pincode = $3,
		     name = CASE WHEN $4 <> '' THEN $4 ELSE name END,
		     updated_at = $5
		 WHERE phone = $1`,
		phone, address, pincode, name, time.Now())
}

func (r *customerRepository) exec(ctx context.Context, op, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("failed to %s: %w", op, ErrNotFound)
	}
	return nil
}

func (r *customerRepository) Stats(ctx context.Context) (*models.CustomerStats, error) {
	query := `
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE segment = 'new') AS "new",
		       COUNT(*) FILTER (WHERE segment = 'regular') AS regular,
		       COUNT(*) FILTER (WHERE segment = 'vip') AS vip,
		       COUNT(*) FILTER (WHERE segment = 'inactive') AS inactive,
		       COUNT(*) FILTER (WHERE opted_in_marketing) AS opted_in,
		       COALESCE(SUM(total_spent), 0) AS lifetime_value
		FROM customers
		WHERE is_deleted = FALSE
	`

	var stats models.CustomerStats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("failed to get customer stats: %w", err)
	}
	return &stats, nil
}

// Recipients resolves reachable phones for a broadcast target.
func (r *customerRepository) Recipients(ctx context.Context, q RecipientQuery) ([]string, error) {
	base := `SELECT phone FROM customers WHERE is_deleted = FALSE AND is_blocked = FALSE AND opted_in_marketing = TRUE`

	var (
		query string
		args  []any
	)
	switch q.Target {
	case models.TargetAll:
		query = base
	case models.TargetSegment:
		query = base + ` AND segment = $1`
		args = append(args, q.Segment)
	case models.TargetLabels:
		query = base + ` AND labels && $1`
		args = append(args, pq.StringArray(q.Labels))
	case models.TargetCustom:
		// explicit phone lists skip the opt-in filter but never reach blocked numbers
		query = `SELECT phone FROM customers WHERE is_blocked = TRUE AND phone = ANY($1)`
		var blocked []string
		if err := r.db.SelectContext(ctx, &blocked, query, pq.StringArray(q.Phones)); err != nil {
			return nil, fmt.Errorf("failed to resolve custom recipients: %w", err)
		}
		return subtract(q.Phones, blocked), nil
	default:
		return nil, fmt.Errorf("unknown broadcast target %q", q.Target)
	}

	var phones []string
	if err := r.db.SelectContext(ctx, &phones, query+` ORDER BY phone`, args...); err != nil {
		return nil, fmt.Errorf("failed to resolve recipients: %w", err)
	}
	return phones, nil
}

func subtract(all, remove []string) []string {
	skip := make(map[string]struct{}, len(remove))
	for _, p := range remove {
		skip[p] = struct{}{}
	}
	out := make([]string, 0, len(all))
	for _, p := range all {
		if _, ok := skip[p]; !ok {
			out = append(out, p)
		}
	}
	return out
}

func (r *customerRepository) EngagementTargets(ctx context.Context, seenAfter, seenBefore time.Time, limit int) ([]*models.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE is_deleted = FALSE AND is_blocked = FALSE AND opted_in_marketing = TRUE
		  AND last_seen >= $1 AND last_seen < $2
		ORDER BY last_seen DESC
		LIMIT $3
	`

	var customers []*models.Customer
	if err := r.db.SelectContext(ctx, &customers, query, seenAfter, seenBefore, limit); err != nil {
		return nil, fmt.Errorf("failed to list engagement targets: %w", err)
	}
	return customers, nil
}

// RecomputeSegments re-evaluates every customer's segment from scratch.
func (r *customerRepository) RecomputeSegments(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE customers
		SET segment = s.segment, updated_at = $1
		FROM (
			SELECT phone,
			       CASE
			           WHEN last_seen < $2 THEN 'inactive'
			           WHEN total_spent >= $3 OR order_count >= $4 THEN 'vip'
			           WHEN order_count >= $5 THEN 'regular'
			           ELSE 'new'
			       END AS segment
			FROM customers
			WHERE is_deleted = FALSE
		) s
		WHERE customers.phone = s.phone AND customers.segment <> s.segment
	`

	res, err := r.db.ExecContext(ctx, query, now,
		now.Add(-models.InactiveAfter), models.VIPMinSpent, models.VIPMinOrders, models.RegularMinOrders)
	if err != nil {
		return 0, fmt.Errorf("failed to recompute segments: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
