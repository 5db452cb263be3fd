package shipping_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/config"
	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/shipping"
)

func testConfig(baseURL string) config.ShiprocketConfig {
	return config.ShiprocketConfig{
		BaseURL:        baseURL,
		Email:          "ops@kaapav.com",
		Password:       "pw",
		PickupLocation: "Primary",
		PickupPincode:  "560001",
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

func testOrder() *models.Order {
	return &models.Order{
		OrderID:         "KAA-123456",
		Phone:           "919876543210",
		Items:           models.CartItems{{ProductID: "E1", Name: "Pearl Studs", Price: 300, Quantity: 1}},
		Subtotal:        300,
		ShippingCost:    49,
		Total:           349,
		PaymentStatus:   models.PaymentStatusPaid,
		ShippingName:    "Priya",
		ShippingAddress: "12 MG Road",
		ShippingCity:    "Bengaluru",
		ShippingState:   "Karnataka",
		ShippingPincode: "560001",
		CreatedAt:       time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
	}
}

func TestClient_CreateShipment(t *testing.T) {
	var logins int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			atomic.AddInt32(&logins, 1)
			_, _ = w.Write([]byte(`{"token":"tok-1"}`))
		case "/orders/create/adhoc":
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "KAA-123456", body["order_id"])
			assert.Equal(t, "Prepaid", body["payment_method"])
			_, _ = w.Write([]byte(`{"order_id":9001,"shipment_id":7001,"status":"NEW"}`))
		case "/courier/assign/awb":
			_, _ = w.Write([]byte(`{"awb_assign_status":1,"response":{"data":{"awb_code":"AWB123","courier_name":"Delhivery"}}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := shipping.NewClient(testConfig(server.URL), zap.NewNop())
	shipment, err := client.CreateShipment(context.Background(), testOrder())

	require.NoError(t, err)
	assert.Equal(t, "9001", shipment.ShiprocketOrderID)
	assert.Equal(t, "7001", shipment.ShipmentID)
	assert.Equal(t, "AWB123", shipment.AWB)
	assert.Equal(t, "Delhivery", shipment.Courier)
	assert.Contains(t, shipment.TrackingURL, "AWB123")
	assert.Equal(t, int32(1), atomic.LoadInt32(&logins), "token is cached between calls")
}

func TestClient_RefreshesTokenOnUnauthorized(t *testing.T) {
	var logins int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			n := atomic.AddInt32(&logins, 1)
			if n == 1 {
				_, _ = w.Write([]byte(`{"token":"stale"}`))
				return
			}
			_, _ = w.Write([]byte(`{"token":"fresh"}`))
		default:
			if r.Header.Get("Authorization") != "Bearer fresh" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"message":"Token has expired"}`))
				return
			}
			_, _ = w.Write([]byte(`{"tracking_data":{"shipment_track":[{"current_status":"DELIVERED","destination":"Bengaluru"}]}}`))
		}
	}))
	defer server.Close()

	client := shipping.NewClient(testConfig(server.URL), zap.NewNop())
	tracking, err := client.Track(context.Background(), "AWB123")

	require.NoError(t, err)
	assert.True(t, tracking.Delivered)
	assert.Equal(t, "Bengaluru", tracking.Location)
	assert.Equal(t, int32(2), atomic.LoadInt32(&logins))
}

func TestClient_Serviceability(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantAvail   bool
		wantCourier string
		wantErr     bool
	}{
		{
			name:        "serviceable",
			status:      http.StatusOK,
			body:        `{"status":200,"data":{"available_courier_companies":[{"courier_name":"Xpressbees","etd":"Jan 5","rate":52.5,"cod":1}]}}`,
			wantAvail:   true,
			wantCourier: "Xpressbees",
		},
		{name: "no couriers", status: http.StatusOK, body: `{"status":200,"data":{"available_courier_companies":[]}}`},
		{name: "not serviceable", status: http.StatusNotFound, body: `{"message":"not serviceable"}`},
		{name: "provider error", status: http.StatusBadGateway, body: `oops`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/auth/login" {
					_, _ = w.Write([]byte(`{"token":"tok"}`))
					return
				}
				assert.Equal(t, "560001", r.URL.Query().Get("pickup_postcode"))
				assert.Equal(t, "110001", r.URL.Query().Get("delivery_postcode"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := shipping.NewClient(testConfig(server.URL), zap.NewNop())
			res, err := client.Serviceability(context.Background(), "110001", false)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAvail, res.Available)
			assert.Equal(t, tt.wantCourier, res.Courier)
		})
	}
}

func TestClient_StaticToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEqual(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "Bearer static", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"tracking_data":{"shipment_track":[{"current_status":"IN TRANSIT"}]}}`))
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.Email, cfg.Password, cfg.Token = "", "", "static"
	client := shipping.NewClient(cfg, zap.NewNop())

	tracking, err := client.Track(context.Background(), "AWB9")
	require.NoError(t, err)
	assert.False(t, tracking.Delivered)
	assert.Equal(t, "IN TRANSIT", tracking.Status)
}

func TestClient_NotConfigured(t *testing.T) {
	client := shipping.NewClient(config.ShiprocketConfig{}, zap.NewNop())

	_, err := client.CreateShipment(context.Background(), testOrder())
	assert.ErrorIs(t, err, shipping.ErrNotConfigured)
	_, err = client.Track(context.Background(), "AWB")
	assert.ErrorIs(t, err, shipping.ErrNotConfigured)
	_, err = client.Serviceability(context.Background(), "560001", false)
	assert.ErrorIs(t, err, shipping.ErrNotConfigured)
}

func TestMapStatus(t *testing.T) {
	tests := []struct {
		in   string
		want models.OrderStatus
	}{
		{"DELIVERED", models.OrderStatusDelivered},
		{"delivered", models.OrderStatusDelivered},
		{"Shipped", models.OrderStatusShipped},
		{"IN TRANSIT", models.OrderStatusShipped},
		{"Out For Delivery", models.OrderStatusShipped},
		{"CANCELED", models.OrderStatusCancelled},
		{"PICKUP SCHEDULED", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, shipping.MapStatus(tt.in))
		})
	}
}

func TestParseWebhook(t *testing.T) {
	u, err := shipping.ParseWebhook([]byte(`{"awb":"AWB123","order_id":"KAA-123456","current_status":"DELIVERED","courier_name":"Delhivery"}`))
	require.NoError(t, err)
	assert.Equal(t, "AWB123", u.AWB)
	assert.Equal(t, "KAA-123456", u.OrderID)
	assert.Equal(t, models.OrderStatusDelivered, shipping.MapStatus(u.CurrentStatus))

	_, err = shipping.ParseWebhook([]byte(`[`))
	assert.Error(t, err)
}
