// Package shipping talks to the Shiprocket aggregator: shipment creation,
// courier assignment, tracking and pincode serviceability.
package shipping

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/breaker"
	"github.com/kaapav/kaapav-bot/internal/config"
	"github.com/kaapav/kaapav-bot/internal/models"
)

var ErrNotConfigured = errors.New("shipping: shiprocket not configured")

// tokenTTL is shorter than the provider's ten day validity.
const tokenTTL = 9 * 24 * time.Hour

type APIError struct {
	HTTPStatus int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("shiprocket error (http %d): %s", e.HTTPStatus, e.Message)
}

// Shipment is the result of creating an order and assigning a courier.
type Shipment struct {
	ShiprocketOrderID string
	ShipmentID        string
	AWB               string
	Courier           string
	TrackingURL       string
}

// Tracking is the latest known position of a shipment.
type Tracking struct {
	AWB              string
	Status           string
	Location         string
	ExpectedDelivery string
	Delivered        bool
}

// Serviceability answers whether a pincode can be delivered to.
type Serviceability struct {
	Available bool
	Courier   string
	ETD       string
	Rate      float64
	COD       bool
}

type Client struct {
	cfg            config.ShiprocketConfig
	httpClient     *http.Client
	circuitBreaker *breaker.CircuitBreaker
	logger         *zap.Logger

	mu       sync.Mutex
	token    string
	tokenExp time.Time
}

func NewClient(cfg config.ShiprocketConfig, logger *zap.Logger) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		circuitBreaker: breaker.New("shiprocket", cfg.CircuitBreaker, logger, func(err error) bool {
			var apiErr *APIError
			return errors.As(err, &apiErr) && apiErr.HTTPStatus < http.StatusInternalServerError
		}),
		logger: logger,
	}
	if cfg.Token != "" {
		c.token = cfg.Token
		c.tokenExp = time.Now().Add(100 * 365 * 24 * time.Hour)
	}
	return c
}

func (c *Client) Configured() bool {
	return c.cfg.Enabled()
}

func (c *Client) Breaker() *breaker.CircuitBreaker {
	return c.circuitBreaker
}

// CreateShipment books an adhoc order for o and assigns an AWB. A failed AWB
// assignment still returns the created order ids alongside the error.
func (c *Client) CreateShipment(ctx context.Context, o *models.Order) (*Shipment, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	items := make([]map[string]any, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, map[string]any{
			"name":          it.Name,
			"sku":           it.ProductID,
			"units":         it.Quantity,
			"selling_price": it.Price,
		})
	}
	paymentMethod := "Prepaid"
	if !o.IsPaid() {
		paymentMethod = "COD"
	}
	body := map[string]any{
		"order_id":              o.OrderID,
		"order_date":            o.CreatedAt.Format("2006-01-02 15:04"),
		"pickup_location":       c.cfg.PickupLocation,
		"billing_customer_name": o.ShippingName,
		"billing_last_name":     "",
		"billing_address":       o.ShippingAddress,
		"billing_city":          o.ShippingCity,
		"billing_state":         o.ShippingState,
		"billing_pincode":       o.ShippingPincode,
		"billing_country":       "India",
		"billing_phone":         o.Phone,
		"shipping_is_billing":   true,
		"order_items":           items,
		"payment_method":        paymentMethod,
		"shipping_charges":      o.ShippingCost,
		"total_discount":        o.Discount,
		"sub_total":             o.Subtotal,
		"length":                15,
		"breadth":               10,
		"height":                5,
		"weight":                0.2,
	}

	var created struct {
		OrderID    json.Number `json:"order_id"`
		ShipmentID json.Number `json:"shipment_id"`
		Status     string      `json:"status"`
	}
	if err := c.do(ctx, http.MethodPost, "/orders/create/adhoc", body, &created); err != nil {
		return nil, fmt.Errorf("failed to create shipment: %w", err)
	}

	shipment := &Shipment{
		ShiprocketOrderID: created.OrderID.String(),
		ShipmentID:        created.ShipmentID.String(),
	}
	if err := c.assignAWB(ctx, shipment); err != nil {
		return shipment, err
	}
	return shipment, nil
}

func (c *Client) assignAWB(ctx context.Context, s *Shipment) error {
	var resp struct {
		AWBAssignStatus int `json:"awb_assign_status"`
		Response        struct {
			Data struct {
				AWBCode     string `json:"awb_code"`
				CourierName string `json:"courier_name"`
			} `json:"data"`
		} `json:"response"`
	}
	if err := c.do(ctx, http.MethodPost, "/courier/assign/awb", map[string]any{"shipment_id": s.ShipmentID}, &resp); err != nil {
		return fmt.Errorf("failed to assign awb: %w", err)
	}
	s.AWB = resp.Response.Data.AWBCode
	s.Courier = resp.Response.Data.CourierName
	if s.AWB != "" {
		s.TrackingURL = TrackingURL(s.AWB)
	}
	return nil
}

// Track fetches the current status of an AWB.
func (c *Client) Track(ctx context.Context, awb string) (*Tracking, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	var resp struct {
		TrackingData struct {
			ShipmentTrack []struct {
				CurrentStatus string `json:"current_status"`
				Destination   string `json:"destination"`
				EDD           string `json:"edd"`
			} `json:"shipment_track"`
			ShipmentTrackActivities []struct {
				Location string `json:"location"`
			} `json:"shipment_track_activities"`
		} `json:"tracking_data"`
	}
	if err := c.do(ctx, http.MethodGet, "/courier/track/awb/"+url.PathEscape(awb), nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to track shipment: %w", err)
	}

	t := &Tracking{AWB: awb}
	if len(resp.TrackingData.ShipmentTrack) > 0 {
		st := resp.TrackingData.ShipmentTrack[0]
		t.Status = st.CurrentStatus
		t.ExpectedDelivery = st.EDD
		t.Location = st.Destination
	}
	if len(resp.TrackingData.ShipmentTrackActivities) > 0 {
		t.Location = resp.TrackingData.ShipmentTrackActivities[0].Location
	}
	t.Delivered = MapStatus(t.Status) == models.OrderStatusDelivered
	return t, nil
}

// Serviceability checks delivery to pincode from the configured pickup pincode.
func (c *Client) Serviceability(ctx context.Context, pincode string, cod bool) (*Serviceability, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	q := url.Values{}
	q.Set("pickup_postcode", c.cfg.PickupPincode)
	q.Set("delivery_postcode", pincode)
	q.Set("weight", "0.2")
	if cod {
		q.Set("cod", "1")
	} else {
		q.Set("cod", "0")
	}

	var resp struct {
		Status int `json:"status"`
		Data   struct {
			AvailableCourierCompanies []struct {
				CourierName string  `json:"courier_name"`
				ETD         string  `json:"etd"`
				Rate        float64 `json:"rate"`
				COD         int     `json:"cod"`
			} `json:"available_courier_companies"`
			RecommendedCourierCompanyID int `json:"recommended_courier_company_id"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/courier/serviceability/?"+q.Encode(), nil, &resp); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatus == http.StatusNotFound {
			return &Serviceability{}, nil
		}
		return nil, fmt.Errorf("failed to check serviceability: %w", err)
	}

	companies := resp.Data.AvailableCourierCompanies
	if len(companies) == 0 {
		return &Serviceability{}, nil
	}
	best := companies[0]
	return &Serviceability{
		Available: true,
		Courier:   best.CourierName,
		ETD:       best.ETD,
		Rate:      best.Rate,
		COD:       best.COD == 1,
	}, nil
}

// TrackingURL is the public tracking page for an AWB.
func TrackingURL(awb string) string {
	return "https://shiprocket.co/tracking/" + url.PathEscape(awb)
}

func (c *Client) authToken(ctx context.Context, refresh bool) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !refresh && c.token != "" && time.Now().Before(c.tokenExp) {
		return c.token, nil
	}
	if c.cfg.Email == "" || c.cfg.Password == "" {
		if c.token != "" {
			return c.token, nil
		}
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(map[string]string{"email": c.cfg.Email, "password": c.cfg.Password})
	if err != nil {
		return "", fmt.Errorf("failed to marshal login: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/auth/login"), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to login: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("Failed to close response body", zap.Error(err))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &APIError{HTTPStatus: resp.StatusCode, Message: strings.TrimSpace(string(data))}
	}

	var login struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil || login.Token == "" {
		return "", fmt.Errorf("failed to decode login response: %w", errors.Join(err, errors.New("empty token")))
	}

	c.token = login.Token
	c.tokenExp = time.Now().Add(tokenTTL)
	c.logger.Info("Shiprocket token refreshed")
	return c.token, nil
}

func (c *Client) url(path string) string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + path
}

// do runs one authenticated call, logging in again once on 401.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	return c.circuitBreaker.Execute(ctx, func() error {
		err := c.call(ctx, method, path, in, out, false)
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatus == http.StatusUnauthorized {
			return c.call(ctx, method, path, in, out, true)
		}
		return err
	})
}

func (c *Client) call(ctx context.Context, method, path string, in, out any, refresh bool) error {
	token, err := c.authToken(ctx, refresh)
	if err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		jsonData, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("Failed to close response body", zap.Error(err))
		}
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		var e struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &e) != nil || e.Message == "" {
			e.Message = strings.TrimSpace(string(data))
		}
		return &APIError{HTTPStatus: resp.StatusCode, Message: e.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
