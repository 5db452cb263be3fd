package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/pricing"
	"github.com/kaapav/kaapav-bot/internal/whatsapp"
)

const maxListRows = 10

func button(a Action, title string) whatsapp.Button {
	return whatsapp.Button{ID: a.ID(), Title: title}
}

// mainMenuButtons are the three entry points of the home menu.
func mainMenuButtons() []whatsapp.Button {
	return []whatsapp.Button{
		button(ActionJewelleryMenu, "💎 Jewellery"),
		button(ActionChatMenu, "💬 Chat with us"),
		button(ActionOffersMenu, "🎁 Offers"),
	}
}

// sendMainMenu sends the home menu. An empty intro greets the customer.
func (c *core) sendMainMenu(ctx context.Context, in *Inbound, intro string) error {
	t := in.texts()
	if intro == "" {
		intro = fmt.Sprintf(t.Welcome, c.Shop.Name)
		if in.Customer != nil && in.Customer.OrderCount > 0 && in.Name != "" {
			intro = fmt.Sprintf(t.WelcomeBack, in.Name)
		}
	}
	return c.Gateway.Buttons(ctx, in.Phone, intro+"\n\n"+t.MainMenu, mainMenuButtons())
}

func (c *core) sendJewelleryMenu(ctx context.Context, in *Inbound) error {
	t := in.texts()
	rows := make([]whatsapp.Row, 0, len(models.Categories))
	for _, cat := range models.Categories {
		rows = append(rows, whatsapp.Row{ID: CategoryButton(cat.ID), Title: cat.Title, Description: cat.Description})
	}
	sections := []whatsapp.Section{
		{Title: "Collections", Rows: rows},
		{Title: "Discover", Rows: []whatsapp.Row{
			{ID: ActionBestsellers.ID(), Title: "🔥 Bestsellers"},
			{ID: ActionNewArrivals.ID(), Title: "🆕 New arrivals"},
			{ID: ActionCatalog.ID(), Title: "🛍️ Full catalogue"},
		}},
	}
	return c.Gateway.List(ctx, in.Phone, c.Shop.Name, t.JewelleryMenu, "View collections", sections)
}

func (c *core) sendOffersMenu(ctx context.Context, in *Inbound) error {
	t := in.texts()
	lines := make([]string, 0, 3)
	for _, cp := range pricing.Coupons() {
		lines = append(lines, fmt.Sprintf("🎟️ *%s*: %s", cp.Code, cp.Description))
	}
	return c.Gateway.Buttons(ctx, in.Phone, fmt.Sprintf(t.OffersMenu, strings.Join(lines, "\n")), []whatsapp.Button{
		button(ActionBestsellers, "🔥 Bestsellers"),
		button(ActionJewelleryMenu, "💎 Shop now"),
		button(ActionMainMenu, "🏠 Menu"),
	})
}

func (c *core) sendChatMenu(ctx context.Context, in *Inbound) error {
	t := in.texts()
	sections := []whatsapp.Section{
		{Title: "Orders", Rows: []whatsapp.Row{
			{ID: ActionTrackOrder.ID(), Title: "📦 Track order"},
			{ID: ActionMyOrders.ID(), Title: "📋 My orders"},
			{ID: ActionViewCart.ID(), Title: "🛒 My cart"},
		}},
		{Title: "Help", Rows: []whatsapp.Row{
			{ID: ActionChatNow.ID(), Title: "👩‍💼 Talk to us"},
			{ID: ActionCallback.ID(), Title: "📞 Request a call"},
			{ID: ActionShippingInfo.ID(), Title: "🚚 Shipping"},
			{ID: ActionReturnPolicy.ID(), Title: "↩️ Returns"},
			{ID: ActionFAQ.ID(), Title: "❓ FAQ"},
			{ID: ActionLanguage.ID(), Title: "🌐 English / हिंदी"},
		}},
	}
	return c.Gateway.List(ctx, in.Phone, "Support", t.ChatMenu, "Choose", sections)
}

func (c *core) sendInfo(ctx context.Context, in *Inbound, body string) error {
	return c.Gateway.Buttons(ctx, in.Phone, body, []whatsapp.Button{
		button(ActionJewelleryMenu, "💎 Shop now"),
		button(ActionChatNow, "👩‍💼 Talk to us"),
		button(ActionMainMenu, "🏠 Menu"),
	})
}

// sendProducts lists products as rows that open the product card.
func (c *core) sendProducts(ctx context.Context, in *Inbound, header string, products []*models.Product) error {
	t := in.texts()
	if len(products) == 0 {
		return c.Gateway.Buttons(ctx, in.Phone, t.NoProducts, []whatsapp.Button{
			button(ActionJewelleryMenu, "💎 Collections"),
			button(ActionMainMenu, "🏠 Menu"),
		})
	}
	if len(products) > maxListRows {
		products = products[:maxListRows]
	}
	rows := make([]whatsapp.Row, 0, len(products))
	for _, p := range products {
		desc := pricing.FormatINR(p.Price)
		if pct := p.DiscountPercent(); pct > 0 {
			desc += fmt.Sprintf(" (%d%% off)", pct)
		}
		if !p.InStock() {
			desc += " · sold out"
		}
		rows = append(rows, whatsapp.Row{ID: ProductButton(p.ProductID), Title: p.Name, Description: desc})
	}
	return c.Gateway.List(ctx, in.Phone, header, header, "View products", []whatsapp.Section{{Title: header, Rows: rows}})
}

func (c *core) sendCategory(ctx context.Context, in *Inbound, categoryID string) error {
	t := in.texts()
	cat, ok := models.CategoryByID(categoryID)
	if !ok {
		return c.sendJewelleryMenu(ctx, in)
	}
	active := true
	products, _, err := c.Repo.Product().List(ctx, models.ProductFilter{Category: cat.ID, Active: &active, Limit: maxListRows})
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", cat.ID, err)
	}
	if len(products) == 0 {
		return c.Gateway.Buttons(ctx, in.Phone, fmt.Sprintf(t.CategoryEmpty, cat.Title), []whatsapp.Button{
			button(ActionJewelleryMenu, "💎 Collections"),
			button(ActionMainMenu, "🏠 Menu"),
		})
	}
	return c.sendProducts(ctx, in, fmt.Sprintf(t.CategoryHeader, cat.Title), products)
}

func (c *core) sendProduct(ctx context.Context, in *Inbound, p *models.Product) error {
	t := in.texts()
	price := pricing.FormatINR(p.Price)
	if p.DiscountPercent() > 0 {
		price = fmt.Sprintf("%s ~%s~ (%d%% off)", price, pricing.FormatINR(p.ComparePrice.Int64), p.DiscountPercent())
	}
	stock := t.InStock
	if !p.InStock() {
		stock = t.OutOfStock
	}
	body := fmt.Sprintf(t.ProductDetails, p.Name, price, p.Description, stock)

	if p.ImageURL.Valid && p.ImageURL.String != "" {
		if err := c.Gateway.Image(ctx, in.Phone, p.ImageURL.String, p.Name); err != nil {
			c.Logger.Debug("Product image not sent")
		}
	}
	if !p.InStock() {
		return c.Gateway.Buttons(ctx, in.Phone, body, []whatsapp.Button{
			{ID: CategoryButton(p.Category), Title: "🔎 Similar items"},
			button(ActionMainMenu, "🏠 Menu"),
		})
	}
	return c.Gateway.Buttons(ctx, in.Phone, body, []whatsapp.Button{
		{ID: QuantityButton(p.ProductID, 1), Title: "🛒 Add to cart"},
		button(ActionViewCart, "🧺 View cart"),
		{ID: CategoryButton(p.Category), Title: "🔎 More like this"},
	})
}

func (c *core) sendOrderNotFound(ctx context.Context, in *Inbound, orderID string) error {
	t := in.texts()
	return c.Gateway.Buttons(ctx, in.Phone, fmt.Sprintf(t.OrderNotFound, orderID), []whatsapp.Button{
		button(ActionChatNow, "👩‍💼 Chat with us"),
		button(ActionTrackOrder, "🔁 Try again"),
		button(ActionMainMenu, "🏠 Menu"),
	})
}

// sendOrder renders an order with live tracking when it has shipped.
func (c *core) sendOrder(ctx context.Context, in *Inbound, order *models.Order) error {
	t := in.texts()
	body := fmt.Sprintf(t.OrderStatus, order.OrderID, statusLabel(string(order.Status)),
		statusLabel(string(order.PaymentStatus)), pricing.FormatINR(order.Total))

	if order.TrackingID.Valid && order.TrackingID.String != "" {
		url := order.TrackingURL.String
		courier := order.Courier.String
		if c.Shipping != nil && c.Shipping.Configured() {
			if tr, err := c.Shipping.Track(ctx, order.TrackingID.String); err == nil {
				if tr.Status != "" {
					courier = strings.TrimSpace(courier + " · " + tr.Status)
				}
			} else {
				c.Logger.Debug("Live tracking unavailable")
			}
		}
		body += fmt.Sprintf(t.OrderTracking, courier, order.TrackingID.String, url)
	}

	buttons := []whatsapp.Button{{ID: TrackButton(order.OrderID), Title: "📦 Refresh status"}}
	if order.PaymentStatus == models.PaymentStatusUnpaid && order.Status == models.OrderStatusPending {
		buttons = append(buttons, button(ActionPayNow, "💳 Pay now"))
	}
	buttons = append(buttons, button(ActionChatNow, "👩‍💼 Chat with us"))
	return c.Gateway.Buttons(ctx, in.Phone, body, buttons)
}

func (c *core) sendOrderList(ctx context.Context, in *Inbound, orders []*models.Order) error {
	t := in.texts()
	if len(orders) == 0 {
		return c.Gateway.Buttons(ctx, in.Phone, t.NoOrders, []whatsapp.Button{
			button(ActionJewelleryMenu, "💎 Shop now"),
			button(ActionMainMenu, "🏠 Menu"),
		})
	}
	rows := make([]whatsapp.Row, 0, len(orders))
	for i, o := range orders {
		if i == maxListRows {
			break
		}
		rows = append(rows, whatsapp.Row{
			ID:          OrderButton(o.OrderID),
			Title:       o.OrderID,
			Description: fmt.Sprintf("%s · %s · %s", pricing.FormatINR(o.Total), statusLabel(string(o.Status)), o.CreatedAt.Format("02 Jan")),
		})
	}
	return c.Gateway.List(ctx, in.Phone, "Orders", t.MyOrdersHeader, "View orders", []whatsapp.Section{{Title: "Recent", Rows: rows}})
}

// sendPincode answers a delivery availability question.
func (c *core) sendPincode(ctx context.Context, in *Inbound, pincode string) error {
	t := in.texts()
	estimate := pricing.DeliveryEstimate(pincode)
	if c.Shipping != nil && c.Shipping.Configured() {
		sv, err := c.Shipping.Serviceability(ctx, pincode, false)
		switch {
		case err != nil:
			c.Logger.Debug("Serviceability check failed, using local estimate")
		case !sv.Available:
			return c.sendInfo(ctx, in, fmt.Sprintf(t.PincodeNotServiceable, pincode))
		case sv.ETD != "":
			estimate = sv.ETD
		}
	}
	fee := t.PincodeFreeShipping
	if pricing.IsRemotePincode(pincode) {
		fee = fmt.Sprintf(t.PincodeShippingFee, pricing.FormatINR(pricing.FlatShippingFee+pricing.RemoteSurcharge))
	}
	return c.sendInfo(ctx, in, fmt.Sprintf(t.PincodeServiceable, pincode, estimate, fee))
}

func (c *core) sendCart(ctx context.Context, in *Inbound, cart *models.Cart) error {
	t := in.texts()
	if cart.IsEmpty() {
		return c.Gateway.Buttons(ctx, in.Phone, t.CartEmpty, []whatsapp.Button{
			button(ActionJewelleryMenu, "💎 Shop now"),
			button(ActionMainMenu, "🏠 Menu"),
		})
	}
	return c.Gateway.Buttons(ctx, in.Phone, fmt.Sprintf(t.CartSummary, cartLines(cart.Items), pricing.FormatINR(cart.Items.Subtotal())), []whatsapp.Button{
		button(ActionCheckout, "✅ Checkout"),
		button(ActionAddMore, "➕ Add more"),
		button(ActionClearCart, "🗑️ Clear cart"),
	})
}

func cartLines(items models.CartItems) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("• %s × %d = %s", item.Name, item.Quantity, pricing.FormatINR(item.LineTotal())))
	}
	return strings.Join(lines, "\n")
}

// statusLabel turns "partial_refund" into "Partial refund".
func statusLabel(s string) string {
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, "_", " ")
	return strings.ToUpper(s[:1]) + s[1:]
}
