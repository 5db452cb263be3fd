package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/messenger"
	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/payment"
	"github.com/kaapav/kaapav-bot/internal/repository"
	"github.com/kaapav/kaapav-bot/internal/shipping"
)

const msgPaymentFailed = "⚠️ Your payment for order %s didn't go through. No money was deducted.\n\nYou can retry here: %s"

type orderService struct {
	repo     repository.Repository
	payments PaymentProvider
	shipping ShippingProvider
	notify   *notifier
	logger   *zap.Logger
	now      func() time.Time
}

func NewOrderService(
	repo repository.Repository,
	payments PaymentProvider,
	shippingProvider ShippingProvider,
	gateway messenger.Gateway,
	logger *zap.Logger,
	now func() time.Time,
) OrderService {
	if now == nil {
		now = time.Now
	}
	return &orderService{
		repo:     repo,
		payments: payments,
		shipping: shippingProvider,
		notify:   &notifier{gateway: gateway, logger: logger},
		logger:   logger,
		now:      now,
	}
}

func (s *orderService) List(ctx context.Context, filter models.OrderFilter) ([]*models.Order, int64, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, invalid("unknown order status %q", filter.Status)
	}
	orders, total, err := s.repo.Order().List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, total, nil
}

func (s *orderService) Get(ctx context.Context, orderID string) (*OrderDetail, error) {
	order, err := s.repo.Order().Get(ctx, strings.ToUpper(orderID))
	if err != nil {
		return nil, translate(err)
	}
	events, err := s.repo.Order().Events(ctx, order.OrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order events: %w", err)
	}
	return &OrderDetail{Order: order, Events: events}, nil
}

func (s *orderService) Stats(ctx context.Context) (*models.OrderStats, error) {
	now := s.now().UTC()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	stats, err := s.repo.Order().Stats(ctx, todayStart)
	if err != nil {
		return nil, fmt.Errorf("failed to get order stats: %w", err)
	}
	return stats, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID string, to models.OrderStatus, note string) (*models.Order, error) {
	if !to.Valid() {
		return nil, invalid("unknown order status %q", to)
	}

	order, err := s.repo.Order().UpdateStatus(ctx, repository.StatusChange{
		OrderID: strings.ToUpper(orderID),
		To:      to,
		Note:    note,
	})
	if err != nil {
		return nil, translate(err)
	}

	s.logger.Info("Order status updated",
		zap.String("order_id", order.OrderID),
		zap.String("status", string(order.Status)),
	)
	s.afterStatusChange(ctx, order, note)
	return order, nil
}

func (s *orderService) Cancel(ctx context.Context, orderID, reason string) (*models.Order, error) {
	return s.UpdateStatus(ctx, orderID, models.OrderStatusCancelled, reason)
}

func (s *orderService) afterStatusChange(ctx context.Context, order *models.Order, note string) {
	if order.Status.Terminal() {
		for _, t := range []models.ReminderType{models.ReminderPayment, models.ReminderDelivery} {
			if err := s.repo.Reminder().CancelByReference(ctx, t, order.OrderID); err != nil {
				s.logger.Warn("Failed to cancel reminders", zap.String("order_id", order.OrderID), zap.Error(err))
			}
		}
	}
	_ = s.notify.orderStatus(ctx, order, note)
}

func (s *orderService) Refund(ctx context.Context, orderID string, req RefundRequest) (*models.Order, error) {
	order, err := s.repo.Order().Get(ctx, strings.ToUpper(orderID))
	if err != nil {
		return nil, translate(err)
	}
	if !order.IsPaid() || !order.PaymentID.Valid {
		return nil, fmt.Errorf("%w: order %s has no captured payment", ErrConflict, order.OrderID)
	}

	remaining := order.Total - order.RefundAmount
	amount := req.Amount
	if amount == 0 {
		amount = remaining
	}
	if amount <= 0 || amount > remaining {
		return nil, invalid("refund amount must be between 1 and %d", remaining)
	}

	refund, err := s.payments.Refund(ctx, payment.RefundRequest{
		PaymentID: order.PaymentID.String,
		OrderID:   order.OrderID,
		Amount:    amount,
		Reason:    req.Reason,
	})
	if err != nil {
		return nil, translate(err)
	}
	if refund.Amount > 0 {
		amount = refund.Amount
	}

	updated, err := s.repo.Order().MarkRefunded(ctx, order.OrderID, amount)
	if err != nil {
		return nil, translate(err)
	}

	s.logger.Info("Order refunded",
		zap.String("order_id", order.OrderID),
		zap.String("refund_id", refund.ID),
		zap.Int64("amount", amount),
	)
	_ = s.notify.refunded(ctx, updated, amount)
	return updated, nil
}

func (s *orderService) Ship(ctx context.Context, orderID string) (*models.Order, error) {
	if !s.shipping.Configured() {
		return nil, ErrNotConfigured
	}

	order, err := s.repo.Order().Get(ctx, strings.ToUpper(orderID))
	if err != nil {
		return nil, translate(err)
	}
	if !order.IsPaid() {
		return nil, fmt.Errorf("%w: order %s is not paid", ErrConflict, order.OrderID)
	}
	if !order.Status.CanTransition(models.OrderStatusShipped) {
		return nil, fmt.Errorf("%w: order %s is %s", ErrConflict, order.OrderID, order.Status)
	}

	shipment, shipErr := s.shipping.CreateShipment(ctx, order)
	if shipment != nil {
		info := repository.ShipmentInfo{
			ShiprocketOrderID: shipment.ShiprocketOrderID,
			ShipmentID:        shipment.ShipmentID,
			TrackingID:        shipment.AWB,
			Courier:           shipment.Courier,
			TrackingURL:       shipment.TrackingURL,
		}
		if err := s.repo.Order().SetShipment(ctx, order.OrderID, info); err != nil {
			return nil, fmt.Errorf("failed to record shipment: %w", err)
		}
	}
	if shipErr != nil {
		return nil, fmt.Errorf("failed to create shipment: %w", translate(shipErr))
	}

	return s.UpdateStatus(ctx, order.OrderID, models.OrderStatusShipped, "")
}

func (s *orderService) Track(ctx context.Context, orderID string) (*TrackingResult, error) {
	order, err := s.repo.Order().Get(ctx, strings.ToUpper(orderID))
	if err != nil {
		return nil, translate(err)
	}

	result := &TrackingResult{OrderID: order.OrderID, Status: order.Status}
	if order.TrackingURL.Valid {
		result.TrackingURL = order.TrackingURL.String
	}
	if !order.TrackingID.Valid || !s.shipping.Configured() {
		return result, nil
	}

	tracking, err := s.shipping.Track(ctx, order.TrackingID.String)
	if err != nil {
		return nil, fmt.Errorf("failed to track shipment: %w", translate(err))
	}
	result.Tracking = tracking
	if result.TrackingURL == "" {
		result.TrackingURL = shipping.TrackingURL(tracking.AWB)
	}
	return result, nil
}

// HandlePaymentWebhook applies a Razorpay event. Redelivered events are
// acknowledged without side effects.
func (s *orderService) HandlePaymentWebhook(ctx context.Context, body []byte, signature string) error {
	if err := s.payments.VerifySignature(body, signature); err != nil {
		return translate(err)
	}

	event, err := payment.ParseWebhook(body)
	if err != nil {
		return invalid("%v", err)
	}

	switch event.Event {
	case payment.EventPaymentLinkPaid, payment.EventPaymentCaptured:
		return s.applyPayment(ctx, event)
	case payment.EventPaymentFailed:
		return s.paymentFailed(ctx, event)
	case payment.EventRefundProcessed:
		return s.applyRefund(ctx, event)
	}

	s.logger.Debug("Ignoring payment event", zap.String("event", event.Event))
	return nil
}

func (s *orderService) resolveOrderID(ctx context.Context, event *payment.WebhookEvent) string {
	if id := event.OrderID(); id != "" {
		return id
	}
	linkID := event.LinkID()
	if linkID == "" {
		return ""
	}
	order, err := s.repo.Order().GetByPaymentLinkID(ctx, linkID)
	if err != nil {
		return ""
	}
	return order.OrderID
}

func (s *orderService) applyPayment(ctx context.Context, event *payment.WebhookEvent) error {
	result, ok := event.PaymentResult()
	if !ok {
		s.logger.Warn("Payment event without payment entity", zap.String("event", event.Event))
		return nil
	}
	result.OrderID = s.resolveOrderID(ctx, event)
	if result.OrderID == "" {
		s.logger.Warn("Payment event without order reference", zap.String("payment_id", result.PaymentID))
		return nil
	}

	order, applied, err := s.repo.Order().MarkPaid(ctx, result)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("Payment for unknown order", zap.String("order_id", result.OrderID))
			return nil
		}
		return fmt.Errorf("failed to mark order paid: %w", err)
	}
	if !applied {
		s.logger.Info("Duplicate payment event ignored",
			zap.String("order_id", order.OrderID),
			zap.String("payment_id", result.PaymentID),
		)
		return nil
	}

	if err := s.repo.Reminder().CancelByReference(ctx, models.ReminderPayment, order.OrderID); err != nil {
		s.logger.Warn("Failed to cancel payment reminder", zap.String("order_id", order.OrderID), zap.Error(err))
	}

	s.logger.Info("Order paid",
		zap.String("order_id", order.OrderID),
		zap.String("payment_id", result.PaymentID),
		zap.Int64("amount", result.Amount),
	)
	_ = s.notify.paymentReceived(ctx, order)
	return nil
}

func (s *orderService) paymentFailed(ctx context.Context, event *payment.WebhookEvent) error {
	orderID := s.resolveOrderID(ctx, event)
	if orderID == "" {
		return nil
	}
	order, err := s.repo.Order().Get(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load order: %w", err)
	}
	if order.IsPaid() || !order.PaymentLink.Valid {
		return nil
	}
	_ = s.notify.text(ctx, order.Phone, fmt.Sprintf(msgPaymentFailed, order.OrderID, order.PaymentLink.String))
	return nil
}

func (s *orderService) applyRefund(ctx context.Context, event *payment.WebhookEvent) error {
	paymentID, amount, ok := event.RefundAmount()
	if !ok {
		return nil
	}
	if event.RaisedHere() {
		s.logger.Debug("Refund already recorded", zap.String("payment_id", paymentID))
		return nil
	}

	orderID := event.OrderID()
	if orderID == "" {
		s.logger.Warn("Refund event without order reference", zap.String("payment_id", paymentID))
		return nil
	}

	order, err := s.repo.Order().MarkRefunded(ctx, orderID, amount)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidTransition) {
			s.logger.Warn("Refund could not be applied", zap.String("order_id", orderID), zap.Error(err))
			return nil
		}
		return fmt.Errorf("failed to mark order refunded: %w", err)
	}

	s.logger.Info("Order refunded by provider", zap.String("order_id", orderID), zap.Int64("amount", amount))
	_ = s.notify.refunded(ctx, order, amount)
	return nil
}

// HandleShippingWebhook moves an order along when the courier reports
// progress. Statuses the order already passed are ignored.
func (s *orderService) HandleShippingWebhook(ctx context.Context, body []byte) error {
	update, err := shipping.ParseWebhook(body)
	if err != nil {
		return invalid("%v", err)
	}

	status := shipping.MapStatus(update.CurrentStatus)
	if status == "" {
		status = shipping.MapStatus(update.ShipmentStatus)
	}
	if status == "" {
		s.logger.Debug("Ignoring tracking update", zap.String("awb", update.AWB), zap.String("status", update.CurrentStatus))
		return nil
	}

	order, err := s.orderForTracking(ctx, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("Tracking update for unknown order", zap.String("awb", update.AWB), zap.String("order_id", update.OrderID))
			return nil
		}
		return err
	}

	if !order.TrackingID.Valid && update.AWB != "" {
		info := repository.ShipmentInfo{
			TrackingID:  update.AWB,
			Courier:     update.Courier,
			TrackingURL: shipping.TrackingURL(update.AWB),
		}
		if err := s.repo.Order().SetShipment(ctx, order.OrderID, info); err != nil {
			return fmt.Errorf("failed to record tracking id: %w", err)
		}
	}

	if !order.Status.CanTransition(status) {
		return nil
	}

	updated, err := s.repo.Order().UpdateStatus(ctx, repository.StatusChange{
		OrderID: order.OrderID,
		To:      status,
		Note:    "courier: " + update.CurrentStatus,
	})
	if err != nil {
		if errors.Is(err, repository.ErrInvalidTransition) {
			return nil
		}
		return fmt.Errorf("failed to apply tracking update: %w", err)
	}

	s.logger.Info("Order updated from tracking",
		zap.String("order_id", updated.OrderID),
		zap.String("status", string(updated.Status)),
	)
	s.afterStatusChange(ctx, updated, "")
	return nil
}

func (s *orderService) orderForTracking(ctx context.Context, update *shipping.TrackingUpdate) (*models.Order, error) {
	if update.AWB != "" {
		order, err := s.repo.Order().GetByTrackingID(ctx, update.AWB)
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("failed to find order by tracking id: %w", err)
		}
	}
	if update.OrderID == "" {
		return nil, repository.ErrNotFound
	}
	order, err := s.repo.Order().Get(ctx, strings.ToUpper(update.OrderID))
	if err != nil {
		return nil, err
	}
	return order, nil
}
