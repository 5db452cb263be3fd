package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/normalize"
	"github.com/kaapav/kaapav-bot/internal/repository"
)

const recentOrdersLimit = 10

type customerService struct {
	repo   repository.Repository
	logger *zap.Logger
}

func NewCustomerService(repo repository.Repository, logger *zap.Logger) CustomerService {
	return &customerService{
		repo:   repo,
		logger: logger,
	}
}

func (s *customerService) List(ctx context.Context, filter models.CustomerFilter) ([]*models.Customer, int64, error) {
	customers, total, err := s.repo.Customer().List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, total, nil
}

func (s *customerService) Get(ctx context.Context, phone string) (*CustomerDetail, error) {
	phone = normalize.Phone(phone)
	customer, err := s.repo.Customer().Get(ctx, phone)
	if err != nil {
		return nil, translate(err)
	}

	orders, err := s.repo.Order().ListByPhone(ctx, phone, recentOrdersLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer orders: %w", err)
	}
	return &CustomerDetail{Customer: customer, Orders: orders}, nil
}

func (s *customerService) Update(ctx context.Context, phone string, update models.CustomerUpdate) (*models.Customer, error) {
	if update.Segment != nil {
		switch *update.Segment {
		case models.SegmentNew, models.SegmentRegular, models.SegmentVIP, models.SegmentInactive:
		default:
			return nil, invalid("unknown segment %q", *update.Segment)
		}
	}

	customer, err := s.repo.Customer().Update(ctx, normalize.Phone(phone), update)
	if err != nil {
		return nil, translate(err)
	}
	s.logger.Info("Customer updated", zap.String("phone", customer.Phone))
	return customer, nil
}

// Delete soft-deletes; history stays attached to the phone.
func (s *customerService) Delete(ctx context.Context, phone string) error {
	if err := s.repo.Customer().SoftDelete(ctx, normalize.Phone(phone)); err != nil {
		return translate(err)
	}
	return nil
}

func (s *customerService) Stats(ctx context.Context) (*models.CustomerStats, error) {
	stats, err := s.repo.Customer().Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer stats: %w", err)
	}
	return stats, nil
}
