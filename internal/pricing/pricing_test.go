package pricing_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/pricing"
)

func TestApplyCoupon(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		subtotal  int64
		valid     bool
		amount    int64
		expectErr error
	}{
		{name: "KAAPAV20 below minimum", code: "KAAPAV20", subtotal: 998, expectErr: pricing.ErrBelowMinimum},
		{name: "KAAPAV20 at minimum", code: "KAAPAV20", subtotal: 999, valid: true, amount: 200},
		{name: "KAAPAV20 rounds half up", code: "kaapav20", subtotal: 1002, valid: true, amount: 200},
		{name: "KAAPAV20 rounds up", code: " KAAPAV20 ", subtotal: 1003, valid: true, amount: 201},
		{name: "WELCOME10", code: "WELCOME10", subtotal: 500, valid: true, amount: 50},
		{name: "FLAT100 below minimum", code: "FLAT100", subtotal: 1498, expectErr: pricing.ErrBelowMinimum},
		{name: "FLAT100", code: "FLAT100", subtotal: 1500, valid: true, amount: 100},
		{name: "unknown", code: "FREE", subtotal: 5000, expectErr: pricing.ErrUnknownCoupon},
		{name: "empty", code: "  ", subtotal: 5000, expectErr: pricing.ErrEmptyCouponCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := pricing.ApplyCoupon(tt.code, tt.subtotal)
			assert.Equal(t, tt.valid, d.Valid)
			assert.Equal(t, tt.amount, d.Amount)
			if tt.expectErr != nil {
				assert.True(t, errors.Is(d.Reason, tt.expectErr), "got %v", d.Reason)
			} else {
				assert.NoError(t, d.Reason)
			}
		})
	}
}

func TestApplyCoupon_KAAPAV20Property(t *testing.T) {
	for subtotal := int64(0); subtotal <= 5000; subtotal += 7 {
		d := pricing.ApplyCoupon("KAAPAV20", subtotal)
		if subtotal < 999 {
			assert.False(t, d.Valid)
			assert.Zero(t, d.Amount)

			q := pricing.Quote(models.CartItems{{ProductID: "p", Price: subtotal, Quantity: 1}}, "KAAPAV20", "560001")
			plain := pricing.Quote(models.CartItems{{ProductID: "p", Price: subtotal, Quantity: 1}}, "", "560001")
			assert.Equal(t, plain.Total, q.Total)
			continue
		}
		require.True(t, d.Valid)
		assert.Equal(t, int64(math.Round(float64(subtotal)*0.20)), d.Amount, "subtotal %d", subtotal)
	}
}

func TestShipping(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int64
		discount int64
		pincode  string
		expected int64
	}{
		{name: "below threshold", subtotal: 300, pincode: "560001", expected: 49},
		{name: "at threshold", subtotal: 498, pincode: "560001", expected: 0},
		{name: "discount drops below threshold", subtotal: 500, discount: 50, pincode: "560001", expected: 49},
		{name: "remote andaman", subtotal: 300, pincode: "744101", expected: 79},
		{name: "remote north east", subtotal: 300, pincode: "793001", expected: 79},
		{name: "remote jammu", subtotal: 300, pincode: "180001", expected: 79},
		{name: "remote but free", subtotal: 1000, pincode: "744101", expected: 0},
		{name: "no pincode yet", subtotal: 100, expected: 49},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pricing.Shipping(tt.subtotal, tt.discount, tt.pincode))
		})
	}
}

func TestQuote_TotalsConsistent(t *testing.T) {
	carts := []models.CartItems{
		{{ProductID: "a", Price: 300, Quantity: 1}},
		{{ProductID: "a", Price: 199, Quantity: 2}, {ProductID: "b", Price: 99, Quantity: 1}},
		{{ProductID: "a", Price: 1299, Quantity: 1}, {ProductID: "b", Price: 450, Quantity: 3}},
		{},
	}
	codes := []string{"", "KAAPAV20", "WELCOME10", "FLAT100", "BOGUS"}

	for _, items := range carts {
		for _, code := range codes {
			q := pricing.Quote(items, code, "560001")

			var sum int64
			for _, it := range items {
				sum += it.Price * int64(it.Quantity)
			}
			assert.Equal(t, sum, q.Subtotal)
			assert.Equal(t, q.Subtotal-q.Discount+q.Shipping, q.Total)
			if q.Subtotal-q.Discount >= pricing.FreeShippingThreshold {
				assert.Zero(t, q.Shipping)
			}
		}
	}
}

func TestQuote_SingleItemScenario(t *testing.T) {
	q := pricing.Quote(models.CartItems{{ProductID: "p1", Name: "Pearl Studs", Price: 300, Quantity: 1}}, "", "560001")

	assert.Equal(t, int64(300), q.Subtotal)
	assert.Equal(t, int64(49), q.Shipping)
	assert.Equal(t, int64(349), q.Total)
	assert.Equal(t, int64(198), q.FreeShippingGap())
}

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "₹349", pricing.FormatINR(349))
	assert.Equal(t, "₹1,299", pricing.FormatINR(1299))
}

func TestDeliveryEstimate(t *testing.T) {
	assert.Equal(t, "3-5 business days", pricing.DeliveryEstimate("560001"))
	assert.Equal(t, "7-10 business days", pricing.DeliveryEstimate("744101"))
	assert.Equal(t, "4-7 business days", pricing.DeliveryEstimate("700001"))
}
