package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/repository"
)

type productService struct {
	repo   repository.Repository
	logger *zap.Logger
}

func NewProductService(repo repository.Repository, logger *zap.Logger) ProductService {
	return &productService{
		repo:   repo,
		logger: logger,
	}
}

func (s *productService) List(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int64, error) {
	products, total, err := s.repo.Product().List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

func (s *productService) Get(ctx context.Context, productID string) (*models.Product, error) {
	product, err := s.repo.Product().Get(ctx, productID)
	if err != nil {
		return nil, translate(err)
	}
	return product, nil
}

func (s *productService) Create(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	product := applyProductInput(&models.Product{IsActive: true}, input)
	product.ProductID = strings.TrimSpace(input.ProductID)
	if product.ProductID == "" {
		product.ProductID = "P" + strings.ToUpper(uuid.NewString()[:8])
	}

	if err := s.repo.Product().Create(ctx, product); err != nil {
		return nil, translate(err)
	}
	s.logger.Info("Product created", zap.String("product_id", product.ProductID))
	return product, nil
}

func (s *productService) Update(ctx context.Context, productID string, input models.ProductInput) (*models.Product, error) {
	product, err := s.repo.Product().Get(ctx, productID)
	if err != nil {
		return nil, translate(err)
	}
	product = applyProductInput(product, input)

	if err := s.repo.Product().Update(ctx, product); err != nil {
		return nil, translate(err)
	}
	return product, nil
}

func (s *productService) SetStock(ctx context.Context, productID string, stock int) error {
	if stock < 0 {
		return invalid("stock cannot be negative")
	}
	if err := s.repo.Product().SetStock(ctx, productID, stock); err != nil {
		return translate(err)
	}
	return nil
}

func (s *productService) Delete(ctx context.Context, productID string) error {
	if err := s.repo.Product().SoftDelete(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func applyProductInput(p *models.Product, input models.ProductInput) *models.Product {
	p.Name = strings.TrimSpace(input.Name)
	p.Description = input.Description
	p.Price = input.Price
	p.ComparePrice = sql.NullInt64{Int64: input.ComparePrice, Valid: input.ComparePrice > 0}
	p.Stock = input.Stock
	p.Category = strings.ToLower(strings.TrimSpace(input.Category))
	p.ImageURL = sql.NullString{String: input.ImageURL, Valid: input.ImageURL != ""}
	p.RetailerID = sql.NullString{String: input.RetailerID, Valid: input.RetailerID != ""}
	p.IsBestseller = input.IsBestseller
	return p
}
