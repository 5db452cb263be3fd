package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/config"
	"github.com/kaapav/kaapav-bot/internal/messenger"
	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/pricing"
	"github.com/kaapav/kaapav-bot/internal/repository"
)

const (
	defaultJobBatch      = 50
	maxReminderAttempts  = 3
	cartIdleAfter        = time.Hour
	maxCartReminders     = 2
	deliveryNudgeAfter   = 24 * time.Hour
	engagementSeenAfter  = 30 * 24 * time.Hour
	engagementSeenBefore = 3 * 24 * time.Hour
	eveningCartIdle      = 3 * time.Hour
	unpaidOrderTTL       = 48 * time.Hour
	analyticsRetention   = 90 * 24 * time.Hour
	cartExpiry           = 7 * 24 * time.Hour
	unpaidCancelNote     = "Auto-cancelled: payment not received within 48 hours."
)

type jobsService struct {
	repo       repository.Repository
	gateway    messenger.Gateway
	notify     *notifier
	broadcasts BroadcastService
	shop       config.ShopConfig
	batch      int
	adminPhone string
	logger     *zap.Logger
	now        func() time.Time
}

func NewJobsService(
	cfg *config.Config,
	repo repository.Repository,
	gateway messenger.Gateway,
	broadcasts BroadcastService,
	logger *zap.Logger,
	now func() time.Time,
) JobsService {
	if now == nil {
		now = time.Now
	}
	batch := cfg.Scheduler.ReminderBatch
	if batch <= 0 {
		batch = defaultJobBatch
	}
	return &jobsService{
		repo:       repo,
		gateway:    gateway,
		notify:     &notifier{gateway: gateway, logger: logger},
		broadcasts: broadcasts,
		shop:       cfg.Shop,
		batch:      batch,
		adminPhone: cfg.Scheduler.AdminPhone,
		logger:     logger,
		now:        now,
	}
}

// SweepReminders sends due one-off reminders. Payment reminders for orders
// that were paid or cancelled in the meantime are dropped.
func (s *jobsService) SweepReminders(ctx context.Context) error {
	reminders, err := s.repo.Reminder().ClaimDue(ctx, s.now(), s.batch)
	if err != nil {
		return fmt.Errorf("failed to claim reminders: %w", err)
	}

	sent := 0
	for _, r := range reminders {
		if err := s.sendReminder(ctx, r); err != nil {
			if markErr := s.repo.Reminder().MarkFailed(ctx, r.ID, err.Error(), maxReminderAttempts); markErr != nil {
				s.logger.Error("Failed to mark reminder failed", zap.Int64("id", r.ID), zap.Error(markErr))
			}
			continue
		}
		sent++
	}

	if len(reminders) > 0 {
		s.logger.Info("Reminders swept", zap.Int("claimed", len(reminders)), zap.Int("sent", sent))
	}
	return nil
}

var errReminderObsolete = errors.New("reminder no longer applies")

func (s *jobsService) sendReminder(ctx context.Context, r *models.Reminder) error {
	var err error
	if r.Type == models.ReminderPayment && r.Reference.Valid {
		err = s.sendPaymentReminder(ctx, r)
	} else {
		err = s.gateway.Text(ctx, r.Phone, r.Message)
	}

	if errors.Is(err, errReminderObsolete) {
		return s.repo.Reminder().CancelByReference(ctx, r.Type, r.Reference.String)
	}
	if err != nil {
		return err
	}
	if err := s.repo.Reminder().MarkSent(ctx, r.ID); err != nil {
		s.logger.Warn("Failed to mark reminder sent", zap.Int64("id", r.ID), zap.Error(err))
	}
	return nil
}

func (s *jobsService) sendPaymentReminder(ctx context.Context, r *models.Reminder) error {
	order, err := s.repo.Order().Get(ctx, r.Reference.String)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errReminderObsolete
		}
		return fmt.Errorf("failed to load order: %w", err)
	}
	if order.IsPaid() || order.Status.Terminal() {
		return errReminderObsolete
	}
	if order.PaymentLink.Valid {
		return s.gateway.CTAURL(ctx, r.Phone, r.Message, "💳 Pay Now", order.PaymentLink.String)
	}
	return s.gateway.Text(ctx, r.Phone, r.Message)
}

func (s *jobsService) RunScheduledBroadcasts(ctx context.Context) error {
	started, err := s.broadcasts.RunDue(ctx)
	if err != nil {
		return err
	}
	if started > 0 {
		s.logger.Info("Scheduled broadcasts started", zap.Int("count", started))
	}
	return nil
}

// CartReminders nudges owners of carts idle for an hour, at most twice.
func (s *jobsService) CartReminders(ctx context.Context) error {
	carts, err := s.repo.Cart().ListIdle(ctx, s.now().Add(-cartIdleAfter), maxCartReminders, s.batch)
	if err != nil {
		return fmt.Errorf("failed to list idle carts: %w", err)
	}

	reminded := 0
	for _, cart := range carts {
		body := fmt.Sprintf(msgCartReminder, cart.Items.Count(), pricing.FormatINR(cart.Items.Subtotal()))
		if err := s.notify.buttons(ctx, cart.Phone, body, cartButtons); err != nil {
			continue
		}
		if err := s.repo.Cart().MarkReminded(ctx, cart.ID); err != nil {
			s.logger.Warn("Failed to mark cart reminded", zap.Int64("cart_id", cart.ID), zap.Error(err))
			continue
		}
		reminded++
	}

	s.logger.Info("Cart reminders sent", zap.Int("candidates", len(carts)), zap.Int("sent", reminded))
	return nil
}

func (s *jobsService) DeliveryReminders(ctx context.Context) error {
	orders, err := s.repo.Order().ListByStatus(ctx, models.OrderStatusShipped, "", s.now().Add(-deliveryNudgeAfter), s.batch)
	if err != nil {
		return fmt.Errorf("failed to list shipped orders: %w", err)
	}

	for _, order := range orders {
		if !order.TrackingURL.Valid {
			continue
		}
		courier := ""
		if order.Courier.Valid {
			courier = " with " + order.Courier.String
		}
		_ = s.notify.buttons(ctx, order.Phone, fmt.Sprintf(msgDelivery, order.OrderID, courier, order.TrackingURL.String), orderButtons)
	}
	return nil
}

// MorningEngagement reaches opted-in customers who went quiet recently.
func (s *jobsService) MorningEngagement(ctx context.Context) error {
	now := s.now()
	customers, err := s.repo.Customer().EngagementTargets(ctx, now.Add(-engagementSeenAfter), now.Add(-engagementSeenBefore), s.batch)
	if err != nil {
		return fmt.Errorf("failed to list engagement targets: %w", err)
	}

	sent := 0
	for _, c := range customers {
		if err := s.notify.buttons(ctx, c.Phone, fmt.Sprintf(msgMorning, s.shop.Name), browseButtons); err == nil {
			sent++
		}
	}
	s.logger.Info("Morning engagement sent", zap.Int("targets", len(customers)), zap.Int("sent", sent))
	return nil
}

// EveningEngagement reminds opted-in customers about carts left earlier in the day.
func (s *jobsService) EveningEngagement(ctx context.Context) error {
	carts, err := s.repo.Cart().ListForEngagement(ctx, s.now().Add(-eveningCartIdle), s.batch)
	if err != nil {
		return fmt.Errorf("failed to list carts for engagement: %w", err)
	}

	sent := 0
	for _, cart := range carts {
		body := fmt.Sprintf(msgEvening, pricing.FormatINR(cart.Items.Subtotal()))
		if err := s.notify.buttons(ctx, cart.Phone, body, cartButtons); err == nil {
			sent++
		}
	}
	s.logger.Info("Evening engagement sent", zap.Int("targets", len(carts)), zap.Int("sent", sent))
	return nil
}

// NightlyCleanup runs every housekeeping step even when one fails.
func (s *jobsService) NightlyCleanup(ctx context.Context) error {
	now := s.now()
	var errs []error

	if n, err := s.repo.State().DeleteExpired(ctx, now); err != nil {
		errs = append(errs, fmt.Errorf("failed to delete expired states: %w", err))
	} else {
		s.logger.Info("Expired states removed", zap.Int64("count", n))
	}

	if err := s.cancelUnpaid(ctx, now); err != nil {
		errs = append(errs, err)
	}

	if n, err := s.repo.Analytics().PruneEvents(ctx, now.Add(-analyticsRetention)); err != nil {
		errs = append(errs, fmt.Errorf("failed to prune analytics: %w", err))
	} else {
		s.logger.Info("Analytics pruned", zap.Int64("count", n))
	}

	if n, err := s.repo.Cart().ExpireIdle(ctx, now.Add(-cartExpiry)); err != nil {
		errs = append(errs, fmt.Errorf("failed to expire carts: %w", err))
	} else {
		s.logger.Info("Idle carts expired", zap.Int64("count", n))
	}

	return errors.Join(errs...)
}

func (s *jobsService) cancelUnpaid(ctx context.Context, now time.Time) error {
	orders, err := s.repo.Order().ListByStatus(ctx, models.OrderStatusPending, models.PaymentStatusUnpaid, now.Add(-unpaidOrderTTL), 500)
	if err != nil {
		return fmt.Errorf("failed to list unpaid orders: %w", err)
	}

	cancelled := 0
	for _, o := range orders {
		order, err := s.repo.Order().UpdateStatus(ctx, repository.StatusChange{
			OrderID: o.OrderID,
			To:      models.OrderStatusCancelled,
			Note:    unpaidCancelNote,
		})
		if err != nil {
			s.logger.Warn("Failed to auto-cancel order", zap.String("order_id", o.OrderID), zap.Error(err))
			continue
		}
		if err := s.repo.Reminder().CancelByReference(ctx, models.ReminderPayment, order.OrderID); err != nil {
			s.logger.Warn("Failed to cancel payment reminder", zap.String("order_id", order.OrderID), zap.Error(err))
		}
		_ = s.notify.orderStatus(ctx, order, unpaidCancelNote)
		cancelled++
	}
	s.logger.Info("Unpaid orders cancelled", zap.Int("count", cancelled))
	return nil
}

// DailyReport stores yesterday's numbers and sends them to the shop owner.
func (s *jobsService) DailyReport(ctx context.Context) error {
	now := s.now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)

	report, err := s.repo.Analytics().BuildDailyReport(ctx, day)
	if err != nil {
		return fmt.Errorf("failed to build daily report: %w", err)
	}
	if err := s.repo.Analytics().SaveDailyReport(ctx, report); err != nil {
		return fmt.Errorf("failed to save daily report: %w", err)
	}

	if s.adminPhone != "" {
		body := fmt.Sprintf(msgDailyReport,
			day.Format("02 Jan 2006"),
			report.NewCustomers,
			report.ActiveCustomers,
			report.MessagesIn,
			report.MessagesOut,
			report.OrdersCreated,
			report.OrdersPaid,
			pricing.FormatINR(report.Revenue),
			report.AbandonedCarts,
		)
		_ = s.notify.text(ctx, s.adminPhone, body)
	}
	return nil
}

func (s *jobsService) Resegment(ctx context.Context) error {
	n, err := s.repo.Customer().RecomputeSegments(ctx, s.now())
	if err != nil {
		return fmt.Errorf("failed to recompute segments: %w", err)
	}
	s.logger.Info("Customer segments recomputed", zap.Int64("changed", n))
	return nil
}
