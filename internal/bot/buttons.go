package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/pricing"
	"github.com/kaapav/kaapav-bot/internal/repository"
	"github.com/kaapav/kaapav-bot/internal/whatsapp"
)

const (
	clickLimit       = 20
	clickWindow      = 60 * time.Second
	contextTTL       = 60 * time.Second
	recentOrderCount = 5
	maxSuggestions   = 3
)

// clickContext is the per-phone data most buttons need, cached briefly.
type clickContext struct {
	Customer *models.Customer `json:"customer"`
	Cart     *models.Cart     `json:"cart"`
	Orders   []*models.Order  `json:"orders"`
}

// suggestionTitles label the actions offered after an unknown button.
var suggestionTitles = map[Action]string{
	ActionJewelleryMenu: "💎 Jewellery",
	ActionOffersMenu:    "🎁 Offers",
	ActionChatMenu:      "💬 Chat with us",
	ActionChatNow:       "👩‍💼 Talk to us",
	ActionTrackOrder:    "📦 Track order",
	ActionMyOrders:      "📋 My orders",
	ActionCatalog:       "🛍️ Catalogue",
	ActionBestsellers:   "🔥 Bestsellers",
	ActionNewArrivals:   "🆕 New arrivals",
	ActionShippingInfo:  "🚚 Shipping",
	ActionReturnPolicy:  "↩️ Returns",
	ActionFAQ:           "❓ FAQ",
	ActionCallback:      "📞 Request a call",
	ActionBuyNow:        "🛍️ Buy now",
	ActionViewCart:      "🛒 View cart",
	ActionCheckout:      "✅ Checkout",
	ActionPayNow:        "💳 Pay now",
	ActionApplyCoupon:   "🎟️ Apply coupon",
}

// ButtonRouter handles button and list replies.
type ButtonRouter struct {
	*core
	orders *OrderFlow
}

// Handle runs one click through rate limiting, context loading, analytics
// and session tracking before dispatching it.
func (r *ButtonRouter) Handle(ctx context.Context, in *Inbound, raw string) error {
	id := ParseButtonID(raw)

	allowed, retry, err := r.KV.Allow(ctx, "clicks:"+in.Phone, clickLimit, clickWindow)
	if err != nil {
		r.Logger.Warn("Click rate limit unavailable", zap.String("phone", in.Phone), zap.Error(err))
	} else if !allowed {
		r.Logger.Info("Click rate limited", zap.String("phone", in.Phone), zap.Duration("retry_after", retry))
		return r.Gateway.Text(ctx, in.Phone, in.texts().RateLimited)
	}

	cc := r.loadContext(ctx, in)

	event := &models.AnalyticsEvent{
		Phone:  in.Phone,
		Event:  "button_click",
		Action: id.Canonical(),
		Data:   models.JSONMap{"raw": raw, "known": id.Known},
	}
	r.async("analytics:click", func(ctx context.Context) error {
		return r.Repo.Analytics().RecordEvent(ctx, event)
	})

	if !id.Known {
		return r.unknown(ctx, in)
	}
	r.track(ctx, in.Phone, id)

	return r.dispatch(ctx, in, id, cc)
}

// track keeps the browsing session and click history up to date.
func (r *ButtonRouter) track(ctx context.Context, phone string, id ButtonID) {
	if _, err := r.KV.TouchSession(ctx, phone); err != nil {
		r.Logger.Debug("Failed to touch session", zap.String("phone", phone), zap.Error(err))
	}
	action := id.Canonical()
	if id.Action.family() {
		action = id.Action.ID()
	}
	if _, err := r.KV.RecordClick(ctx, phone, action); err != nil {
		r.Logger.Debug("Failed to record click", zap.String("phone", phone), zap.Error(err))
	}
}

func contextKey(phone string) string {
	return "ctx:" + phone
}

func (r *ButtonRouter) loadContext(ctx context.Context, in *Inbound) *clickContext {
	cc := &clickContext{}
	if ok, err := r.KV.GetJSON(ctx, contextKey(in.Phone), cc); err == nil && ok {
		return cc
	}

	cc = &clickContext{Customer: in.Customer}
	if cart, err := r.Repo.Cart().GetActive(ctx, in.Phone); err == nil {
		cc.Cart = cart
	} else if !errors.Is(err, repository.ErrNotFound) {
		r.Logger.Warn("Failed to load cart", zap.String("phone", in.Phone), zap.Error(err))
	}
	if orders, err := r.Repo.Order().ListByPhone(ctx, in.Phone, recentOrderCount); err == nil {
		cc.Orders = orders
	} else {
		r.Logger.Warn("Failed to load recent orders", zap.String("phone", in.Phone), zap.Error(err))
	}

	if err := r.KV.SetJSON(ctx, contextKey(in.Phone), cc, contextTTL); err != nil {
		r.Logger.Debug("Failed to cache click context", zap.Error(err))
	}
	return cc
}

// forget drops the cached context after the cart or orders changed.
func (r *ButtonRouter) forget(ctx context.Context, phone string) {
	if err := r.KV.Invalidate(ctx, contextKey(phone)); err != nil {
		r.Logger.Debug("Failed to invalidate click context", zap.Error(err))
	}
}

func (r *ButtonRouter) dispatch(ctx context.Context, in *Inbound, id ButtonID, cc *clickContext) error {
	t := in.texts()

	switch id.Action {
	case ActionMainMenu:
		return r.sendMainMenu(ctx, in, "")
	case ActionJewelleryMenu:
		return r.sendJewelleryMenu(ctx, in)
	case ActionOffersMenu:
		return r.sendOffersMenu(ctx, in)
	case ActionChatMenu:
		return r.sendChatMenu(ctx, in)
	case ActionChatNow:
		return r.handoff(ctx, in)
	case ActionTrackOrder:
		if len(cc.Orders) > 0 {
			return r.sendOrderList(ctx, in, cc.Orders)
		}
		return r.Gateway.Text(ctx, in.Phone, t.AskOrderID)
	case ActionMyOrders:
		return r.sendOrderList(ctx, in, cc.Orders)
	case ActionOrderDetails, ActionTrackByID:
		return r.showOrder(ctx, in, id.Arg)
	case ActionCatalog:
		return r.catalog(ctx, in)
	case ActionBestsellers:
		active := true
		products, _, err := r.Repo.Product().List(ctx, models.ProductFilter{Bestseller: true, Active: &active, Limit: maxListRows})
		if err != nil {
			return fmt.Errorf("failed to list bestsellers: %w", err)
		}
		return r.sendProducts(ctx, in, t.BestsellersHead, products)
	case ActionNewArrivals:
		products, err := r.Repo.Product().NewArrivals(ctx, maxListRows)
		if err != nil {
			return fmt.Errorf("failed to list new arrivals: %w", err)
		}
		return r.sendProducts(ctx, in, t.NewArrivalsHead, products)
	case ActionShippingInfo:
		return r.sendInfo(ctx, in, fmt.Sprintf(t.ShippingInfo,
			pricing.FormatINR(pricing.FreeShippingThreshold), pricing.FormatINR(pricing.FlatShippingFee)))
	case ActionReturnPolicy:
		return r.sendInfo(ctx, in, t.ReturnPolicy)
	case ActionFAQ:
		return r.sendInfo(ctx, in, t.FAQ)
	case ActionCallback:
		return r.callback(ctx, in)
	case ActionLanguage:
		return r.toggleLanguage(ctx, in)
	case ActionOptIn, ActionOptOut:
		return r.marketing(ctx, in, id.Action == ActionOptIn)
	case ActionProduct:
		return r.product(ctx, in, id.Arg)
	case ActionCategory:
		return r.sendCategory(ctx, in, id.Arg)
	case ActionBuyNow, ActionViewCart, ActionAddMore, ActionClearCart, ActionCheckout,
		ActionApplyCoupon, ActionConfirmOrder, ActionModifyOrder, ActionCancelOrder,
		ActionPayNow, ActionVariant, ActionQuantity:
		return r.orders.HandleAction(ctx, in, id, cc)
	}

	r.Logger.Error("Unhandled button action", zap.String("action", id.Canonical()))
	return r.sendMainMenu(ctx, in, "")
}

// showOrder looks the order up once and renders it, or the not-found reply.
func (r *ButtonRouter) showOrder(ctx context.Context, in *Inbound, orderID string) error {
	order, err := r.Repo.Order().Get(ctx, orderID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return r.sendOrderNotFound(ctx, in, orderID)
	case err != nil:
		return fmt.Errorf("failed to get order %s: %w", orderID, err)
	case order.Phone != in.Phone:
		return r.sendOrderNotFound(ctx, in, orderID)
	}
	return r.sendOrder(ctx, in, order)
}

func (r *ButtonRouter) product(ctx context.Context, in *Inbound, productID string) error {
	p, err := r.Repo.Product().Get(ctx, productID)
	if errors.Is(err, repository.ErrNotFound) {
		p, err = r.Repo.Product().GetByRetailerID(ctx, productID)
	}
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return r.sendProducts(ctx, in, in.texts().NoProducts, nil)
	case err != nil:
		return fmt.Errorf("failed to get product %s: %w", productID, err)
	}
	return r.sendProduct(ctx, in, p)
}

// catalog opens the shop's storefront, falling back to the collections list.
func (r *ButtonRouter) catalog(ctx context.Context, in *Inbound) error {
	if r.Shop.WebsiteURL == "" {
		return r.sendJewelleryMenu(ctx, in)
	}
	return r.Gateway.CTAURL(ctx, in.Phone, in.texts().CatalogIntro, "Open catalogue", r.Shop.WebsiteURL)
}

// handoff flags the thread for a human and tells the customer.
func (r *ButtonRouter) handoff(ctx context.Context, in *Inbound) error {
	status := models.ChatStatusPending
	priority := models.ChatPriorityHigh
	if _, err := r.Repo.Chat().Update(ctx, in.Phone, models.ChatUpdate{Status: &status, Priority: &priority}); err != nil {
		r.Logger.Warn("Failed to flag chat for an agent", zap.String("phone", in.Phone), zap.Error(err))
	}
	return r.Gateway.Text(ctx, in.Phone, in.texts().AgentHandoff)
}

func (r *ButtonRouter) callback(ctx context.Context, in *Inbound) error {
	priority := models.ChatPriorityHigh
	if _, err := r.Repo.Chat().Update(ctx, in.Phone, models.ChatUpdate{Priority: &priority}); err != nil {
		r.Logger.Warn("Failed to flag callback request", zap.String("phone", in.Phone), zap.Error(err))
	}
	event := &models.AnalyticsEvent{Phone: in.Phone, Event: "callback_requested", Action: ActionCallback.ID()}
	r.async("analytics:callback", func(ctx context.Context) error {
		return r.Repo.Analytics().RecordEvent(ctx, event)
	})
	return r.Gateway.Text(ctx, in.Phone, in.texts().CallbackQueued)
}

func (r *ButtonRouter) toggleLanguage(ctx context.Context, in *Inbound) error {
	lang := "hi"
	if in.Language == "hi" {
		lang = "en"
	}
	if err := r.Repo.Customer().SetLanguage(ctx, in.Phone, lang); err != nil {
		return fmt.Errorf("failed to set language: %w", err)
	}
	in.Language = lang
	r.forget(ctx, in.Phone)
	return r.sendMainMenu(ctx, in, in.texts().LanguageSet)
}

func (r *ButtonRouter) marketing(ctx context.Context, in *Inbound, optIn bool) error {
	if err := r.Repo.Customer().SetMarketingOptIn(ctx, in.Phone, optIn); err != nil {
		return fmt.Errorf("failed to update marketing preference: %w", err)
	}
	r.forget(ctx, in.Phone)
	if optIn {
		return r.Gateway.Text(ctx, in.Phone, in.texts().OptedIn)
	}
	return r.Gateway.Text(ctx, in.Phone, in.texts().OptedOut)
}

// unknown offers the sender's recent clicks followed by what people usually
// tap after their last click, then the main menu.
func (r *ButtonRouter) unknown(ctx context.Context, in *Inbound) error {
	t := in.texts()

	recent, err := r.KV.RecentClicks(ctx, in.Phone, maxSuggestions+1)
	if err != nil {
		r.Logger.Debug("Failed to read recent clicks", zap.Error(err))
	}
	candidates := recent
	if len(recent) > 0 {
		next, err := r.KV.CommonNext(ctx, recent[0], maxSuggestions)
		if err != nil {
			r.Logger.Debug("Failed to read next actions", zap.Error(err))
		}
		candidates = append(candidates, next...)
	}

	rows := suggestions(candidates)
	if len(rows) == 0 {
		return r.sendMainMenu(ctx, in, t.UnknownButton)
	}
	rows = append(rows, whatsapp.Row{ID: ActionMainMenu.ID(), Title: "🏠 Main menu"})
	return r.Gateway.List(ctx, in.Phone, "", t.UnknownButton, "Options", []whatsapp.Section{{Title: "Suggestions", Rows: rows}})
}

func suggestions(candidates []string) []whatsapp.Row {
	seen := make(map[Action]bool, len(candidates))
	rows := make([]whatsapp.Row, 0, maxSuggestions)
	for _, c := range candidates {
		id := ParseButtonID(c)
		title, ok := suggestionTitles[id.Action]
		if !id.Known || !ok || seen[id.Action] {
			continue
		}
		seen[id.Action] = true
		rows = append(rows, whatsapp.Row{ID: id.Action.ID(), Title: title})
		if len(rows) == maxSuggestions {
			break
		}
	}
	return rows
}
