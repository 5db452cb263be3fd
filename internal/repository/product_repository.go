package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kaapav/kaapav-bot/internal/models"
)

const productColumns = `product_id, name, description, price, compare_price, stock, category, image_url,
	retailer_id, is_bestseller, is_active, created_at, updated_at`

type productRepository struct {
	db *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) ProductRepository {
	return &productRepository{
		db: db,
	}
}

func (r *productRepository) Get(ctx context.Context, productID string) (*models.Product, error) {
	var p models.Product
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1`
	if err := r.db.GetContext(ctx, &p, query, productID); err != nil {
		return nil, fmt.Errorf("failed to get product: %w", mapError(err))
	}
	return &p, nil
}

// GetByRetailerID resolves catalog items referenced by the provider's retailer id.
func (r *productRepository) GetByRetailerID(ctx context.Context, retailerID string) (*models.Product, error) {
	var p models.Product
	query := `SELECT ` + productColumns + ` FROM products WHERE retailer_id = $1 OR product_id = $1 LIMIT 1`
	if err := r.db.GetContext(ctx, &p, query, retailerID); err != nil {
		return nil, fmt.Errorf("failed to get product by retailer id: %w", mapError(err))
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int64, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, strings.ReplaceAll(cond, "?", fmt.Sprintf("$%d", len(args))))
	}

	if filter.Active != nil {
		add("is_active = ?", *filter.Active)
	}
	if filter.Category != "" {
		add("category = ?", filter.Category)
	}
	if filter.Search != "" {
		add("(name ILIKE ? OR description ILIKE ?)", "%"+filter.Search+"%")
	}
	if filter.InStock != nil {
		if *filter.InStock {
			where = append(where, "stock > 0")
		} else {
			where = append(where, "stock = 0")
		}
	}
	if filter.Bestseller {
		where = append(where, "is_bestseller = TRUE")
	}

	clause := "TRUE"
	if len(where) > 0 {
		clause = strings.Join(where, " AND ")
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM products WHERE `+clause, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM products WHERE %s ORDER BY is_bestseller DESC, created_at DESC LIMIT $%d OFFSET $%d`,
		productColumns, clause, len(args)-1, len(args))

	var products []*models.Product
	if err := r.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

func (r *productRepository) SearchByName(ctx context.Context, q string, limit int) ([]*models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_active = TRUE AND (name ILIKE $1 OR category ILIKE $1)
		ORDER BY stock > 0 DESC, is_bestseller DESC, name ASC
		LIMIT $2
	`

	var products []*models.Product
	if err := r.db.SelectContext(ctx, &products, query, "%"+q+"%", limit); err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

func (r *productRepository) NewArrivals(ctx context.Context, limit int) ([]*models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_active = TRUE AND stock > 0
		ORDER BY created_at DESC
		LIMIT $1
	`

	var products []*models.Product
	if err := r.db.SelectContext(ctx, &products, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list new arrivals: %w", err)
	}
	return products, nil
}

func (r *productRepository) Create(ctx context.Context, p *models.Product) error {
	query := `
		INSERT INTO products (product_id, name, description, price, compare_price, stock, category,
		                      image_url, retailer_id, is_bestseller, is_active, created_at, updated_at)
		VALUES (:product_id, :name, :description, :price, :compare_price, :stock, :category,
		        :image_url, :retailer_id, :is_bestseller, TRUE, :created_at, :created_at)
	`

	now := time.Now()
	p.CreatedAt, p.UpdatedAt, p.IsActive = now, now, true

	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("failed to create product: %w", mapError(err))
	}
	return nil
}

func (r *productRepository) Update(ctx context.Context, p *models.Product) error {
	query := `
		UPDATE products
		SET name = :name, description = :description, price = :price, compare_price = :compare_price,
		    stock = :stock, category = :category, image_url = :image_url, retailer_id = :retailer_id,
		    is_bestseller = :is_bestseller, updated_at = :updated_at
		WHERE product_id = :product_id
	`

	p.UpdatedAt = time.Now()
	res, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("failed to update product: %w", ErrNotFound)
	}
	return nil
}

func (r *productRepository) SetStock(ctx context.Context, productID string, stock int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET stock = $2, updated_at = $3 WHERE product_id = $1`, productID, stock, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set stock: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("failed to set stock: %w", ErrNotFound)
	}
	return nil
}

func (r *productRepository) SoftDelete(ctx context.Context, productID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET is_active = FALSE, updated_at = $2 WHERE product_id = $1 AND is_active = TRUE`,
		productID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("failed to delete product: %w", ErrNotFound)
	}
	return nil
}
