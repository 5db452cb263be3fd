package bot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/normalize"
	"github.com/kaapav/kaapav-bot/internal/payment"
	"github.com/kaapav/kaapav-bot/internal/pricing"
	"github.com/kaapav/kaapav-bot/internal/repository"
	"github.com/kaapav/kaapav-bot/internal/whatsapp"
)

const (
	FlowOrder = "order"

	StepProduct = "product"
	StepAddress = "address"
	StepPincode = "pincode"
	StepConfirm = "confirm"
	StepCoupon  = "coupon"

	paymentReminderDelay = 60 * time.Minute
	maxQuantity          = 10
	productMatches       = 5
)

// Flow data keys.
const (
	keyAddress = "address"
	keyCity    = "city"
	keyPincode = "pincode"
	keyProduct = "last_product"
)

var (
	yesWords    = map[string]bool{"yes": true, "y": true, "ok": true, "okay": true, "confirm": true, "haan": true, "ha": true, "place order": true}
	cancelWords = map[string]bool{"cancel": true, "no": true, "stop": true, "exit": true, "nahi": true}
)

// OrderFlow drives the multi-step checkout conversation.
type OrderFlow struct {
	*core
	buttons *ButtonRouter
}

// Handle feeds a message to the current step of the order flow. It reports
// false when the message should fall through to normal routing.
func (f *OrderFlow) Handle(ctx context.Context, in *Inbound, state *models.ConversationState, msg *models.InboundMessage) (bool, error) {
	t := in.texts()

	switch models.MessageType(msg.Type) {
	case models.MessageTypeText:
		if msg.Text == nil {
			return false, nil
		}
	case models.MessageTypeLocation:
		if state.CurrentStep == StepAddress || state.CurrentStep == StepPincode {
			return true, f.location(ctx, in, msg.Location)
		}
		return false, nil
	case models.MessageTypeImage:
		if state.CurrentStep == StepProduct {
			return true, f.Gateway.Text(ctx, in.Phone, t.ImageProduct)
		}
		return false, nil
	default:
		return false, nil
	}

	text := strings.TrimSpace(msg.Text.Body)
	kw := normalize.Keyword(text)
	if cancelWords[kw] {
		return true, f.cancel(ctx, in)
	}
	if menuKeywords[kw] {
		return false, nil
	}

	switch state.CurrentStep {
	case StepProduct:
		return true, f.searchProduct(ctx, in, text)
	case StepAddress:
		return true, f.address(ctx, in, text)
	case StepPincode:
		pin, ok := normalize.Pincode(text)
		if !ok {
			return true, f.Gateway.Text(ctx, in.Phone, t.InvalidPincode)
		}
		if address := state.FlowData.String(keyAddress); address != "" {
			f.saveAddress(ctx, in, address, pin)
		}
		f.state.Set(ctx, in.Phone, FlowOrder, StepConfirm, map[string]any{keyPincode: pin})
		return true, f.summary(ctx, in, "")
	case StepCoupon:
		return true, f.applyCoupon(ctx, in, text)
	case StepConfirm:
		if yesWords[kw] {
			return true, f.confirm(ctx, in)
		}
	}
	return false, nil
}

// HandleAction runs an order-related button. Every action is re-entrant.
func (f *OrderFlow) HandleAction(ctx context.Context, in *Inbound, id ButtonID, cc *clickContext) error {
	t := in.texts()

	switch id.Action {
	case ActionBuyNow:
		f.state.Set(ctx, in.Phone, FlowOrder, StepProduct, nil)
		return f.Gateway.Buttons(ctx, in.Phone, t.AskProduct, []whatsapp.Button{
			button(ActionJewelleryMenu, "💎 Collections"),
			button(ActionBestsellers, "🔥 Bestsellers"),
			button(ActionViewCart, "🛒 View cart"),
		})
	case ActionQuantity:
		productID, n := splitLast(id.Arg)
		qty, err := strconv.Atoi(n)
		if err != nil || qty < 1 {
			qty = 1
		}
		return f.addProduct(ctx, in, productID, min(qty, maxQuantity), "")
	case ActionVariant:
		productID, variant := splitLast(id.Arg)
		return f.addProduct(ctx, in, productID, 1, variant)
	case ActionViewCart:
		cart, err := f.activeCart(ctx, in.Phone)
		if err != nil {
			return err
		}
		return f.sendCart(ctx, in, cart)
	case ActionAddMore:
		f.state.Set(ctx, in.Phone, FlowOrder, StepProduct, nil)
		return f.sendJewelleryMenu(ctx, in)
	case ActionClearCart:
		if _, err := f.Repo.Cart().SaveActive(ctx, in.Phone, models.CartItems{}, ""); err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}
		f.buttons.forget(ctx, in.Phone)
		f.state.Clear(ctx, in.Phone)
		return f.Gateway.Buttons(ctx, in.Phone, t.CartCleared, []whatsapp.Button{
			button(ActionJewelleryMenu, "💎 Shop now"),
			button(ActionMainMenu, "🏠 Menu"),
		})
	case ActionCheckout:
		return f.checkout(ctx, in)
	case ActionApplyCoupon:
		f.state.Set(ctx, in.Phone, FlowOrder, StepCoupon, nil)
		return f.Gateway.Text(ctx, in.Phone, t.AskCoupon)
	case ActionConfirmOrder:
		return f.confirm(ctx, in)
	case ActionModifyOrder:
		f.state.Set(ctx, in.Phone, FlowOrder, StepProduct, nil)
		cart, err := f.activeCart(ctx, in.Phone)
		if err != nil {
			return err
		}
		return f.sendCart(ctx, in, cart)
	case ActionCancelOrder:
		return f.cancel(ctx, in)
	case ActionPayNow:
		return f.payNow(ctx, in, cc)
	}
	return f.sendMainMenu(ctx, in, "")
}

func (f *OrderFlow) activeCart(ctx context.Context, phone string) (*models.Cart, error) {
	cart, err := f.Repo.Cart().GetActive(ctx, phone)
	if errors.Is(err, repository.ErrNotFound) {
		return &models.Cart{Phone: phone, Status: models.CartStatusActive}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return cart, nil
}

func (f *OrderFlow) addProduct(ctx context.Context, in *Inbound, productID string, qty int, variant string) error {
	p, err := f.Repo.Product().Get(ctx, productID)
	if errors.Is(err, repository.ErrNotFound) {
		return f.Gateway.Text(ctx, in.Phone, fmt.Sprintf(in.texts().ProductNotMatched, productID))
	}
	if err != nil {
		return fmt.Errorf("failed to get product %s: %w", productID, err)
	}
	return f.addToCart(ctx, in, p, qty, variant)
}

func (f *OrderFlow) addToCart(ctx context.Context, in *Inbound, p *models.Product, qty int, variant string) error {
	t := in.texts()
	if !p.IsActive || p.Stock < qty {
		return f.Gateway.Text(ctx, in.Phone, fmt.Sprintf(t.StockShort, p.Name))
	}

	cart, err := f.activeCart(ctx, in.Phone)
	if err != nil {
		return err
	}
	item := models.CartItem{ProductID: p.ProductID, Name: p.Name, Price: p.Price, Quantity: qty}
	if variant != "" {
		item.Name = fmt.Sprintf("%s (%s)", p.Name, strings.ToLower(variant))
	}
	if p.ImageURL.Valid {
		item.ImageURL = p.ImageURL.String
	}
	saved, err := f.Repo.Cart().SaveActive(ctx, in.Phone, cart.Items.Add(item), cart.CouponCode)
	if err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	f.buttons.forget(ctx, in.Phone)
	f.state.Set(ctx, in.Phone, FlowOrder, StepProduct, map[string]any{keyProduct: p.ProductID})

	return f.Gateway.Buttons(ctx, in.Phone, fmt.Sprintf(t.AddedToCart, item.Name, qty, pricing.FormatINR(saved.Items.Subtotal())), []whatsapp.Button{
		button(ActionCheckout, "✅ Checkout"),
		button(ActionAddMore, "➕ Add more"),
		button(ActionViewCart, "🛒 View cart"),
	})
}

// searchProduct matches free text against product names.
func (f *OrderFlow) searchProduct(ctx context.Context, in *Inbound, query string) error {
	products, err := f.Repo.Product().SearchByName(ctx, query, productMatches)
	if err != nil {
		return fmt.Errorf("failed to search products: %w", err)
	}
	switch len(products) {
	case 0:
		return f.Gateway.Buttons(ctx, in.Phone, fmt.Sprintf(in.texts().ProductNotMatched, query), []whatsapp.Button{
			button(ActionJewelleryMenu, "💎 Collections"),
			button(ActionCatalog, "🛍️ Catalogue"),
			button(ActionCancelOrder, "❌ Cancel"),
		})
	case 1:
		return f.addToCart(ctx, in, products[0], 1, "")
	}
	return f.sendProducts(ctx, in, query, products)
}

// checkout jumps to the first step still missing information.
func (f *OrderFlow) checkout(ctx context.Context, in *Inbound) error {
	t := in.texts()
	cart, err := f.activeCart(ctx, in.Phone)
	if err != nil {
		return err
	}
	if cart.IsEmpty() {
		return f.sendCart(ctx, in, cart)
	}

	address, city, pincode := f.shippingDetails(ctx, in)
	switch {
	case address == "":
		f.state.Set(ctx, in.Phone, FlowOrder, StepAddress, nil)
		return f.Gateway.Text(ctx, in.Phone, t.AskAddress)
	case pincode == "":
		f.state.Set(ctx, in.Phone, FlowOrder, StepPincode, map[string]any{keyAddress: address, keyCity: city})
		return f.Gateway.Text(ctx, in.Phone, t.AskPincode)
	}
	f.state.Set(ctx, in.Phone, FlowOrder, StepConfirm, map[string]any{keyAddress: address, keyCity: city, keyPincode: pincode})
	return f.summary(ctx, in, "")
}

// shippingDetails prefers what this flow collected, then the saved address.
func (f *OrderFlow) shippingDetails(ctx context.Context, in *Inbound) (address, city, pincode string) {
	if state := f.state.Get(ctx, in.Phone); state != nil && state.CurrentFlow == FlowOrder {
		address = state.FlowData.String(keyAddress)
		city = state.FlowData.String(keyCity)
		pincode = state.FlowData.String(keyPincode)
	}
	if address == "" && in.Customer != nil && in.Customer.Address.Valid {
		address = in.Customer.Address.String
		pincode = in.Customer.Pincode.String
		_, city = splitAddress(address, pincode)
	}
	return address, city, pincode
}

func (f *OrderFlow) address(ctx context.Context, in *Inbound, text string) error {
	t := in.texts()
	if len(text) < 10 {
		return f.Gateway.Text(ctx, in.Phone, t.AskAddress)
	}
	pin, ok := normalize.Pincode(text)
	address, city := splitAddress(text, pin)
	if !ok {
		f.state.Set(ctx, in.Phone, FlowOrder, StepPincode, map[string]any{keyAddress: address, keyCity: city})
		return f.Gateway.Text(ctx, in.Phone, t.AskPincode)
	}
	f.saveAddress(ctx, in, address, pin)
	f.state.Set(ctx, in.Phone, FlowOrder, StepConfirm, map[string]any{keyAddress: address, keyCity: city, keyPincode: pin})
	return f.summary(ctx, in, "")
}

// location turns a shared pin into a textual address.
func (f *OrderFlow) location(ctx context.Context, in *Inbound, loc *models.LocationBody) error {
	if loc == nil {
		return f.Gateway.Text(ctx, in.Phone, in.texts().AskAddress)
	}
	text := strings.TrimSpace(strings.Trim(loc.Name+", "+loc.Address, ", "))
	if text == "" {
		text = fmt.Sprintf("%.6f, %.6f", loc.Latitude, loc.Longitude)
	}
	pin, ok := normalize.Pincode(text)
	address, city := splitAddress(text, pin)
	if !ok {
		f.state.Set(ctx, in.Phone, FlowOrder, StepPincode, map[string]any{keyAddress: address, keyCity: city})
		return f.Gateway.Text(ctx, in.Phone, in.texts().LocationNoPin)
	}
	f.saveAddress(ctx, in, address, pin)
	f.state.Set(ctx, in.Phone, FlowOrder, StepConfirm, map[string]any{keyAddress: address, keyCity: city, keyPincode: pin})
	return f.summary(ctx, in, "")
}

func (f *OrderFlow) saveAddress(ctx context.Context, in *Inbound, address, pincode string) {
	if err := f.Repo.Customer().SetAddress(ctx, in.Phone, in.Name, address, pincode); err != nil {
		f.Logger.Warn("Failed to save customer address", zap.String("phone", in.Phone), zap.Error(err))
	}
}

func (f *OrderFlow) applyCoupon(ctx context.Context, in *Inbound, code string) error {
	t := in.texts()
	cart, err := f.activeCart(ctx, in.Phone)
	if err != nil {
		return err
	}
	if cart.IsEmpty() {
		return f.sendCart(ctx, in, cart)
	}

	d := pricing.ApplyCoupon(code, cart.Items.Subtotal())
	if !d.Valid {
		return f.Gateway.Buttons(ctx, in.Phone, fmt.Sprintf(t.CouponInvalid, d.Reason), []whatsapp.Button{
			button(ActionApplyCoupon, "🎟️ Try another"),
			button(ActionCheckout, "✅ Checkout"),
			button(ActionOffersMenu, "🎁 Offers"),
		})
	}
	if _, err := f.Repo.Cart().SaveActive(ctx, in.Phone, cart.Items, d.Code); err != nil {
		return fmt.Errorf("failed to save coupon: %w", err)
	}
	f.buttons.forget(ctx, in.Phone)

	address, city, pincode := f.shippingDetails(ctx, in)
	if address == "" || pincode == "" {
		f.state.Set(ctx, in.Phone, FlowOrder, StepAddress, nil)
		return f.Gateway.Text(ctx, in.Phone, fmt.Sprintf(t.CouponApplied, d.Code, pricing.FormatINR(d.Amount))+"\n\n"+t.AskAddress)
	}
	f.state.Set(ctx, in.Phone, FlowOrder, StepConfirm, map[string]any{keyAddress: address, keyCity: city, keyPincode: pincode})
	return f.summary(ctx, in, fmt.Sprintf(t.CouponApplied, d.Code, pricing.FormatINR(d.Amount)))
}

// summary renders the itemized order with place/modify/cancel actions.
func (f *OrderFlow) summary(ctx context.Context, in *Inbound, intro string) error {
	t := in.texts()
	cart, err := f.activeCart(ctx, in.Phone)
	if err != nil {
		return err
	}
	if cart.IsEmpty() {
		return f.sendCart(ctx, in, cart)
	}
	address, _, pincode := f.shippingDetails(ctx, in)
	totals := pricing.Quote(cart.Items, cart.CouponCode, pincode)

	discount := ""
	if totals.Discount > 0 {
		discount = fmt.Sprintf("\nDiscount (%s): -%s", totals.Coupon, pricing.FormatINR(totals.Discount))
	}
	shipping := "Free"
	if totals.Shipping > 0 {
		shipping = pricing.FormatINR(totals.Shipping)
	}
	body := fmt.Sprintf(t.OrderSummary, cartLines(cart.Items), pricing.FormatINR(totals.Subtotal), discount,
		shipping, pricing.FormatINR(totals.Total), address, pricing.DeliveryEstimate(pincode))
	if intro != "" {
		body = intro + "\n\n" + body
	}
	return f.Gateway.Buttons(ctx, in.Phone, body, []whatsapp.Button{
		button(ActionConfirmOrder, "✅ Place order"),
		button(ActionModifyOrder, "✏️ Modify"),
		button(ActionCancelOrder, "❌ Cancel"),
	})
}

// confirm materializes the cart into an order. Repeating it for the same
// cart version returns the order already placed.
func (f *OrderFlow) confirm(ctx context.Context, in *Inbound) error {
	t := in.texts()
	cart, err := f.activeCart(ctx, in.Phone)
	if err != nil {
		return err
	}
	if cart.IsEmpty() || cart.ID == 0 {
		return f.sendCart(ctx, in, &models.Cart{})
	}
	address, city, pincode := f.shippingDetails(ctx, in)
	if address == "" || pincode == "" {
		return f.checkout(ctx, in)
	}

	totals := pricing.Quote(cart.Items, cart.CouponCode, pincode)
	name := in.Name
	if name == "" && in.Customer != nil {
		name = in.Customer.Name
	}
	order, created, err := f.Repo.Order().CreateFromCart(ctx, models.NewOrder{
		OrderID:         models.NewOrderID(),
		Phone:           in.Phone,
		CustomerName:    name,
		CartID:          cart.ID,
		CartVersion:     cart.Version,
		Items:           cart.Items,
		Subtotal:        totals.Subtotal,
		ShippingCost:    totals.Shipping,
		Discount:        totals.Discount,
		Total:           totals.Total,
		CouponCode:      totals.Coupon,
		ShippingName:    name,
		ShippingAddress: address,
		ShippingCity:    city,
		ShippingPincode: pincode,
		IdempotencyKey:  cart.IdempotencyKey(),
	})
	switch {
	case errors.Is(err, repository.ErrOutOfStock):
		return f.Gateway.Buttons(ctx, in.Phone, fmt.Sprintf(t.StockShort, "an item"), []whatsapp.Button{
			button(ActionViewCart, "🛒 View cart"),
			button(ActionChatNow, "👩‍💼 Talk to us"),
		})
	case errors.Is(err, repository.ErrConflict):
		return f.summary(ctx, in, "")
	case err != nil:
		return fmt.Errorf("failed to create order: %w", err)
	}

	f.state.Clear(ctx, in.Phone)
	f.buttons.forget(ctx, in.Phone)

	if !created && order.IsPaid() {
		return f.Gateway.Text(ctx, in.Phone, fmt.Sprintf(t.AlreadyPaid, order.OrderID))
	}
	if created {
		f.Logger.Info("Order created",
			zap.String("order_id", order.OrderID),
			zap.String("phone", in.Phone),
			zap.Int64("total", order.Total))
		f.scheduleReminder(ctx, in, order)
	}
	return f.sendPaymentLink(ctx, in, order)
}

func (f *OrderFlow) scheduleReminder(ctx context.Context, in *Inbound, order *models.Order) {
	reminder := &models.Reminder{
		Phone:     in.Phone,
		Type:      models.ReminderPayment,
		Reference: sql.NullString{String: order.OrderID, Valid: true},
		Message:   fmt.Sprintf(in.texts().PaymentPending, order.OrderID),
		DueAt:     f.Now().Add(paymentReminderDelay),
		Status:    models.ReminderPending,
	}
	if err := f.Repo.Reminder().Create(ctx, reminder); err != nil {
		f.Logger.Warn("Failed to schedule payment reminder", zap.String("order_id", order.OrderID), zap.Error(err))
	}
}

// sendPaymentLink reuses the order's link, creates one, or falls back to UPI
// instructions when payments are unavailable.
func (f *OrderFlow) sendPaymentLink(ctx context.Context, in *Inbound, order *models.Order) error {
	t := in.texts()
	total := pricing.FormatINR(order.Total)
	placed := fmt.Sprintf(t.OrderPlaced, order.OrderID, total)

	url := order.PaymentLink.String
	if url == "" && f.Payments != nil && f.Payments.Configured() {
		link, err := f.Payments.CreatePaymentLink(ctx, payment.LinkRequest{
			OrderID:       order.OrderID,
			Amount:        order.Total,
			CustomerName:  order.CustomerName,
			CustomerPhone: order.Phone,
			Description:   fmt.Sprintf("%s order %s", f.Shop.Name, order.OrderID),
		})
		if err != nil {
			f.Logger.Error("Failed to create payment link", zap.String("order_id", order.OrderID), zap.Error(err))
		} else {
			url = link.ShortURL
			if err := f.Repo.Order().SetPaymentLink(ctx, order.OrderID, link.ID, link.ShortURL); err != nil {
				f.Logger.Warn("Failed to store payment link", zap.String("order_id", order.OrderID), zap.Error(err))
			}
		}
	}

	if url == "" {
		return f.Gateway.Buttons(ctx, in.Phone, placed+"\n\n"+fmt.Sprintf(t.PayLinkFallback, order.OrderID, total, f.Shop.UPIID), []whatsapp.Button{
			{ID: OrderButton(order.OrderID), Title: "📦 View order"},
			button(ActionChatNow, "👩‍💼 Talk to us"),
		})
	}
	return f.Gateway.CTAURL(ctx, in.Phone, placed+"\n\n"+fmt.Sprintf(t.PayLinkBody, order.OrderID, total), "Pay now", url)
}

// payNow resends the link for the most recent unpaid order.
func (f *OrderFlow) payNow(ctx context.Context, in *Inbound, cc *clickContext) error {
	for _, o := range cc.Orders {
		if o.Status == models.OrderStatusPending && o.PaymentStatus == models.PaymentStatusUnpaid {
			return f.sendPaymentLink(ctx, in, o)
		}
	}
	return f.sendOrderList(ctx, in, cc.Orders)
}

func (f *OrderFlow) cancel(ctx context.Context, in *Inbound) error {
	f.state.Clear(ctx, in.Phone)
	return f.Gateway.Buttons(ctx, in.Phone, in.texts().OrderCancelled, []whatsapp.Button{
		button(ActionViewCart, "🛒 View cart"),
		button(ActionMainMenu, "🏠 Menu"),
	})
}

// NativeOrder adds a cart sent from the WhatsApp catalog and starts checkout.
func (f *OrderFlow) NativeOrder(ctx context.Context, in *Inbound, order *models.NativeOrder) error {
	if order == nil || len(order.ProductItems) == 0 {
		return f.sendMainMenu(ctx, in, "")
	}
	cart, err := f.activeCart(ctx, in.Phone)
	if err != nil {
		return err
	}
	items := cart.Items
	for _, pi := range order.ProductItems {
		p, err := f.Repo.Product().GetByRetailerID(ctx, pi.ProductRetailerID)
		if err != nil {
			f.Logger.Warn("Catalog item not found",
				zap.String("retailer_id", pi.ProductRetailerID),
				zap.Error(err))
			continue
		}
		qty := max(pi.Quantity, 1)
		items = items.Add(models.CartItem{ProductID: p.ProductID, Name: p.Name, Price: p.Price, Quantity: qty})
	}
	if len(items) == len(cart.Items) && items.Count() == cart.Items.Count() {
		return f.Gateway.Text(ctx, in.Phone, fmt.Sprintf(in.texts().ProductNotMatched, order.CatalogID))
	}
	if _, err := f.Repo.Cart().SaveActive(ctx, in.Phone, items, cart.CouponCode); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	f.buttons.forget(ctx, in.Phone)
	return f.checkout(ctx, in)
}

// splitAddress strips the pincode and reads the city off the last
// comma-separated part.
func splitAddress(text, pincode string) (address, city string) {
	address = strings.TrimSpace(text)
	rest := address
	if pincode != "" {
		rest = strings.TrimSpace(strings.Replace(rest, pincode, "", 1))
	}
	rest = strings.TrimRight(rest, " ,.-")
	parts := strings.Split(rest, ",")
	for i := len(parts) - 1; i >= 0; i-- {
		if p := strings.TrimSpace(parts[i]); p != "" {
			if len(parts) > 1 {
				city = p
			}
			break
		}
	}
	return address, city
}
