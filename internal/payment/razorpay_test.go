package payment_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/config"
	"github.com/kaapav/kaapav-bot/internal/payment"
)

func testConfig(baseURL string) config.RazorpayConfig {
	return config.RazorpayConfig{
		BaseURL:        baseURL,
		KeyID:          "rzp_test_key",
		KeySecret:      "secret",
		WebhookSecret:  "whsec",
		CallbackURL:    "https://kaapav.com/thanks",
		LinkExpiryMins: 60,
		Timeout:        5,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxRequests:      1,
			Interval:         60,
			Timeout:          60,
			FailureRatio:     0.6,
			ConsecutiveFails: 5,
		},
	}
}

func TestClient_CreatePaymentLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payment_links", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "secret", pass)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(149900), body["amount"])
		assert.Equal(t, "KAA-123456", body["reference_id"])
		assert.Equal(t, "https://kaapav.com/thanks", body["callback_url"])
		assert.NotNil(t, body["expire_by"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"plink_1","short_url":"https://rzp.io/l/abc","status":"created","amount":149900}`))
	}))
	defer server.Close()

	client := payment.NewClient(testConfig(server.URL), zap.NewNop())
	link, err := client.CreatePaymentLink(context.Background(), payment.LinkRequest{
		OrderID:       "KAA-123456",
		Amount:        1499,
		CustomerName:  "Priya",
		CustomerPhone: "919876543210",
		Description:   "KAAPAV order KAA-123456",
	})

	require.NoError(t, err)
	assert.Equal(t, "plink_1", link.ID)
	assert.Equal(t, "https://rzp.io/l/abc", link.ShortURL)
}

func TestClient_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"amount too low","field":"amount"}}`))
	}))
	defer server.Close()

	client := payment.NewClient(testConfig(server.URL), zap.NewNop())
	_, err := client.CreatePaymentLink(context.Background(), payment.LinkRequest{OrderID: "KAA-000001", Amount: 0})

	require.Error(t, err)
	var apiErr *payment.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus)
	assert.Equal(t, "amount", apiErr.Field)
}

func TestClient_Refund(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments/pay_1/refund", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(50000), body["amount"])
		notes := body["notes"].(map[string]any)
		assert.Equal(t, "KAA-123456", notes["order_id"])
		assert.Equal(t, payment.RefundSource, notes["source"])
		_, _ = w.Write([]byte(`{"id":"rfnd_1","payment_id":"pay_1","amount":50000,"status":"processed"}`))
	}))
	defer server.Close()

	client := payment.NewClient(testConfig(server.URL), zap.NewNop())
	refund, err := client.Refund(context.Background(), payment.RefundRequest{PaymentID: "pay_1", OrderID: "KAA-123456", Amount: 500, Reason: "customer request"})

	require.NoError(t, err)
	assert.Equal(t, int64(500), refund.Amount)
	assert.Equal(t, "processed", refund.Status)
}

func TestClient_NotConfigured(t *testing.T) {
	client := payment.NewClient(config.RazorpayConfig{}, zap.NewNop())

	_, err := client.CreatePaymentLink(context.Background(), payment.LinkRequest{OrderID: "KAA-000001", Amount: 10})
	assert.ErrorIs(t, err, payment.ErrNotConfigured)

	_, err = client.Refund(context.Background(), payment.RefundRequest{PaymentID: "pay_1"})
	assert.ErrorIs(t, err, payment.ErrNotConfigured)

	assert.ErrorIs(t, client.VerifySignature([]byte("{}"), "abc"), payment.ErrNotConfigured)
}

func TestClient_VerifySignature(t *testing.T) {
	client := payment.NewClient(testConfig("http://unused"), zap.NewNop())
	body := []byte(`{"event":"payment_link.paid"}`)

	mac := hmac.New(sha256.New, []byte("whsec"))
	mac.Write(body)
	good := hex.EncodeToString(mac.Sum(nil))

	tests := []struct {
		name      string
		signature string
		wantErr   error
	}{
		{name: "valid", signature: good},
		{name: "valid with whitespace", signature: " " + good + "\n"},
		{name: "tampered", signature: good[:len(good)-1] + "0", wantErr: payment.ErrInvalidSignature},
		{name: "empty", signature: "", wantErr: payment.ErrInvalidSignature},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := client.VerifySignature(body, tt.signature)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseWebhook(t *testing.T) {
	t.Run("payment link paid", func(t *testing.T) {
		ev, err := payment.ParseWebhook([]byte(`{
			"event": "payment_link.paid",
			"payload": {
				"payment_link": {"entity": {"id": "plink_1", "reference_id": "KAA-123456", "status": "paid", "amount_paid": 149900}},
				"payment":      {"entity": {"id": "pay_1", "amount": 149900, "method": "upi", "status": "captured"}}
			}
		}`))
		require.NoError(t, err)

		res, ok := ev.PaymentResult()
		require.True(t, ok)
		assert.Equal(t, "KAA-123456", res.OrderID)
		assert.Equal(t, "pay_1", res.PaymentID)
		assert.Equal(t, int64(1499), res.Amount)
		assert.Equal(t, "upi", res.Method)
		assert.Equal(t, "plink_1", ev.LinkID())
	})

	t.Run("captured payment resolves order from notes", func(t *testing.T) {
		ev, err := payment.ParseWebhook([]byte(`{
			"event":   "payment.captured",
			"payload": {"payment": {"entity": {"id": "pay_2", "amount": 50000, "method": "card", "notes": {"order_id": "KAA-654321"}}}}
		}`))
		require.NoError(t, err)

		res, ok := ev.PaymentResult()
		require.True(t, ok)
		assert.Equal(t, "KAA-654321", res.OrderID)
		assert.Empty(t, ev.LinkID())
	})

	t.Run("refund processed", func(t *testing.T) {
		ev, err := payment.ParseWebhook([]byte(`{
			"event":   "refund.processed",
			"payload": {"refund": {"entity": {"id": "rfnd_1", "payment_id": "pay_1", "amount": 20000, "notes": {"order_id": "KAA-123456"}}}}
		}`))
		require.NoError(t, err)

		_, ok := ev.PaymentResult()
		assert.False(t, ok)

		paymentID, amount, ok := ev.RefundAmount()
		require.True(t, ok)
		assert.Equal(t, "pay_1", paymentID)
		assert.Equal(t, int64(200), amount)
		assert.Equal(t, "KAA-123456", ev.OrderID())
		assert.False(t, ev.RaisedHere())
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := payment.ParseWebhook([]byte(`{not json`))
		assert.Error(t, err)
	})
}
