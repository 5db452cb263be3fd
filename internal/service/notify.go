package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/bot"
	"github.com/kaapav/kaapav-bot/internal/messenger"
	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/pricing"
	"github.com/kaapav/kaapav-bot/internal/whatsapp"
)

const (
	msgPaymentReceived = "✅ *Payment received*\n\nOrder: %s\nAmount: %s\n\nWe're packing your jewellery with care. You'll get tracking details as soon as it ships."
	msgRefunded        = "💸 A refund of %s for order %s has been processed. It should reach your account in 5-7 business days."
	msgCartReminder    = "🛒 You left %d item(s) worth %s in your cart.\n\nComplete your order before they sell out!"
	msgDelivery        = "🚚 Your order %s is on its way%s.\n\nTrack it here: %s"
	msgMorning         = "✨ Good morning from %s!\n\nFresh designs just landed. Take a look?"
	msgEvening         = "🌙 Still thinking about it?\n\nYour cart (%s) is waiting for you."
	msgDailyReport     = "📊 *Daily report %s*\n\nNew customers: %d\nActive customers: %d\nMessages in/out: %d/%d\nOrders: %d (paid %d)\nRevenue: %s\nAbandoned carts: %d"
)

var statusMessages = map[models.OrderStatus]string{
	models.OrderStatusConfirmed:  "✅ Your order %s is confirmed.",
	models.OrderStatusProcessing: "🛠️ Your order %s is being packed.",
	models.OrderStatusShipped:    "🚚 Your order %s has shipped!",
	models.OrderStatusDelivered:  "🎉 Your order %s was delivered. We hope you love it!",
	models.OrderStatusCancelled:  "❌ Your order %s has been cancelled.",
}

func button(action bot.Action, title string) whatsapp.Button {
	return whatsapp.Button{ID: action.ID(), Title: title}
}

var (
	orderButtons = []whatsapp.Button{
		button(bot.ActionTrackOrder, "📦 Track Order"),
		button(bot.ActionChatNow, "💬 Talk to us"),
		button(bot.ActionMainMenu, "🏠 Menu"),
	}
	cartButtons = []whatsapp.Button{
		button(bot.ActionViewCart, "🛒 View Cart"),
		button(bot.ActionCheckout, "✅ Checkout"),
		button(bot.ActionOptOut, "🔕 Stop offers"),
	}
	browseButtons = []whatsapp.Button{
		button(bot.ActionNewArrivals, "🆕 New Arrivals"),
		button(bot.ActionBestsellers, "⭐ Bestsellers"),
		button(bot.ActionOptOut, "🔕 Stop offers"),
	}
)

// notifier sends customer-facing updates. Failures are logged and returned
// so callers that track delivery can record them.
type notifier struct {
	gateway messenger.Gateway
	logger  *zap.Logger
}

func (n *notifier) text(ctx context.Context, phone, body string) error {
	if err := n.gateway.Text(ctx, phone, body); err != nil {
		n.logger.Warn("Failed to notify customer", zap.String("phone", phone), zap.Error(err))
		return err
	}
	return nil
}

func (n *notifier) buttons(ctx context.Context, phone, body string, buttons []whatsapp.Button) error {
	if err := n.gateway.Buttons(ctx, phone, body, buttons); err != nil {
		n.logger.Warn("Failed to notify customer", zap.String("phone", phone), zap.Error(err))
		return err
	}
	return nil
}

func (n *notifier) paymentReceived(ctx context.Context, order *models.Order) error {
	return n.buttons(ctx, order.Phone, fmt.Sprintf(msgPaymentReceived, order.OrderID, pricing.FormatINR(order.Total)), orderButtons)
}

func (n *notifier) orderStatus(ctx context.Context, order *models.Order, note string) error {
	format, ok := statusMessages[order.Status]
	if !ok {
		return nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, format, order.OrderID)
	if order.Status == models.OrderStatusShipped && order.TrackingURL.Valid {
		if order.Courier.Valid {
			fmt.Fprintf(&b, "\nCourier: %s", order.Courier.String)
		}
		fmt.Fprintf(&b, "\nTrack: %s", order.TrackingURL.String)
	}
	if note != "" {
		fmt.Fprintf(&b, "\n\n%s", note)
	}
	return n.buttons(ctx, order.Phone, b.String(), orderButtons)
}

func (n *notifier) refunded(ctx context.Context, order *models.Order, amount int64) error {
	return n.text(ctx, order.Phone, fmt.Sprintf(msgRefunded, pricing.FormatINR(amount), order.OrderID))
}
