// Package pricing computes cart totals, shipping and discount codes.
package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/kaapav/kaapav-bot/internal/models"
)

const (
	FreeShippingThreshold int64 = 498
	FlatShippingFee       int64 = 49
	RemoteSurcharge       int64 = 30
)

var (
	ErrUnknownCoupon   = errors.New("unknown coupon code")
	ErrBelowMinimum    = errors.New("order below coupon minimum")
	ErrEmptyCouponCode = errors.New("empty coupon code")
)

type CouponKind int

const (
	CouponPercent CouponKind = iota
	CouponFlat
)

type Coupon struct {
	Code        string
	Kind        CouponKind
	Value       int64
	MinOrder    int64
	Description string
}

var coupons = map[string]Coupon{
	"KAAPAV20":  {Code: "KAAPAV20", Kind: CouponPercent, Value: 20, MinOrder: 999, Description: "20% off on orders above ₹999"},
	"WELCOME10": {Code: "WELCOME10", Kind: CouponPercent, Value: 10, MinOrder: 499, Description: "10% off on orders above ₹499"},
	"FLAT100":   {Code: "FLAT100", Kind: CouponFlat, Value: 100, MinOrder: 1499, Description: "₹100 off on orders above ₹1,499"},
}

// Coupons lists active codes in display order.
func Coupons() []Coupon {
	return []Coupon{coupons["KAAPAV20"], coupons["WELCOME10"], coupons["FLAT100"]}
}

// Discount is the result of applying a code to a subtotal.
type Discount struct {
	Code   string
	Valid  bool
	Amount int64
	Reason error
}

// ApplyCoupon evaluates code against subtotal. An invalid result always has
// a zero Amount.
func ApplyCoupon(code string, subtotal int64) Discount {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return Discount{Reason: ErrEmptyCouponCode}
	}

	c, ok := coupons[code]
	if !ok {
		return Discount{Code: code, Reason: ErrUnknownCoupon}
	}
	if subtotal < c.MinOrder {
		return Discount{Code: code, Reason: fmt.Errorf("%w: minimum %s", ErrBelowMinimum, FormatINR(c.MinOrder))}
	}

	var amount int64
	switch c.Kind {
	case CouponPercent:
		amount = decimal.NewFromInt(subtotal).
			Mul(decimal.NewFromInt(c.Value)).
			Div(decimal.NewFromInt(100)).
			Round(0).
			IntPart()
	case CouponFlat:
		amount = c.Value
	}
	if amount > subtotal {
		amount = subtotal
	}

	return Discount{Code: code, Valid: true, Amount: amount}
}

// IsRemotePincode reports whether deliveries to pincode carry a surcharge.
func IsRemotePincode(pincode string) bool {
	if len(pincode) < 3 {
		return false
	}
	prefix := pincode[:3]
	switch {
	case prefix == "744", prefix == "737":
		return true
	case prefix >= "790" && prefix <= "799":
		return true
	case prefix >= "180" && prefix <= "194":
		return true
	}
	return false
}

// Shipping is free once the discounted subtotal reaches the threshold;
// otherwise a flat fee plus any remote surcharge applies.
func Shipping(subtotal, discount int64, pincode string) int64 {
	if subtotal-discount >= FreeShippingThreshold {
		return 0
	}
	fee := FlatShippingFee
	if IsRemotePincode(pincode) {
		fee += RemoteSurcharge
	}
	return fee
}

// DeliveryEstimate returns a human delivery window for the pincode.
func DeliveryEstimate(pincode string) string {
	if IsRemotePincode(pincode) {
		return "7-10 business days"
	}
	if pincode == "" {
		return "4-7 business days"
	}
	switch pincode[0] {
	case '1', '4', '5', '6':
		return "3-5 business days"
	}
	return "4-7 business days"
}

// Totals is the full price breakdown of a cart.
type Totals struct {
	Subtotal  int64
	Discount  int64
	Shipping  int64
	Total     int64
	Coupon    string
	ItemCount int
}

// FreeShippingGap is how much more must be added to ship free, 0 if already free.
func (t Totals) FreeShippingGap() int64 {
	gap := FreeShippingThreshold - (t.Subtotal - t.Discount)
	if gap < 0 {
		return 0
	}
	return gap
}

// Quote prices items with an optional coupon for delivery to pincode.
// An inapplicable coupon is ignored.
func Quote(items models.CartItems, coupon, pincode string) Totals {
	t := Totals{
		Subtotal:  items.Subtotal(),
		ItemCount: items.Count(),
	}
	if coupon != "" {
		if d := ApplyCoupon(coupon, t.Subtotal); d.Valid {
			t.Discount = d.Amount
			t.Coupon = d.Code
		}
	}
	t.Shipping = Shipping(t.Subtotal, t.Discount, pincode)
	t.Total = t.Subtotal - t.Discount + t.Shipping
	return t
}

// FormatINR renders rupees as "₹1,299".
func FormatINR(amount int64) string {
	return "₹" + humanize.Comma(amount)
}
