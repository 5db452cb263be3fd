// Package payment talks to Razorpay: payment links, refunds and webhook
// verification. Amounts cross the API in paise.
package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/breaker"
	"github.com/kaapav/kaapav-bot/internal/config"
)

var (
	ErrNotConfigured    = errors.New("payment: razorpay not configured")
	ErrInvalidSignature = errors.New("payment: invalid webhook signature")
)

// APIError is a Razorpay error body.
type APIError struct {
	HTTPStatus  int    `json:"-"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Field       string `json:"field"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("razorpay error %s (http %d): %s", e.Code, e.HTTPStatus, e.Description)
}

// LinkRequest describes a payment link for one order.
type LinkRequest struct {
	OrderID       string
	Amount        int64
	CustomerName  string
	CustomerPhone string
	Description   string
}

type PaymentLink struct {
	ID       string `json:"id"`
	ShortURL string `json:"short_url"`
	Status   string `json:"status"`
	Amount   int64  `json:"amount"`
}

type Refund struct {
	ID        string `json:"id"`
	PaymentID string `json:"payment_id"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
}

type Client struct {
	cfg            config.RazorpayConfig
	httpClient     *http.Client
	circuitBreaker *breaker.CircuitBreaker
	logger         *zap.Logger
	now            func() time.Time
}

func NewClient(cfg config.RazorpayConfig, logger *zap.Logger) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		circuitBreaker: breaker.New("razorpay", cfg.CircuitBreaker, logger, func(err error) bool {
			var apiErr *APIError
			return errors.As(err, &apiErr) && apiErr.HTTPStatus < http.StatusInternalServerError
		}),
		logger: logger,
		now:    time.Now,
	}
}

func (c *Client) Configured() bool {
	return c.cfg.Enabled()
}

func (c *Client) Breaker() *breaker.CircuitBreaker {
	return c.circuitBreaker
}

// CreatePaymentLink creates a link for req.Amount rupees referencing the order.
func (c *Client) CreatePaymentLink(ctx context.Context, req LinkRequest) (*PaymentLink, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	body := map[string]any{
		"amount":          req.Amount * 100,
		"currency":        "INR",
		"accept_partial":  false,
		"reference_id":    req.OrderID,
		"description":     req.Description,
		"customer":        map[string]string{"name": req.CustomerName, "contact": "+" + req.CustomerPhone},
		"notify":          map[string]bool{"sms": false, "email": false},
		"reminder_enable": true,
		"notes":           map[string]string{"order_id": req.OrderID, "phone": req.CustomerPhone},
	}
	if c.cfg.CallbackURL != "" {
		body["callback_url"] = c.cfg.CallbackURL
		body["callback_method"] = "get"
	}
	if c.cfg.LinkExpiryMins > 0 {
		body["expire_by"] = c.now().Add(time.Duration(c.cfg.LinkExpiryMins) * time.Minute).Unix()
	}

	var link PaymentLink
	if err := c.do(ctx, http.MethodPost, "/payment_links", body, &link); err != nil {
		return nil, fmt.Errorf("failed to create payment link: %w", err)
	}
	return &link, nil
}

// RefundRequest refunds Amount rupees of a captured payment; zero refunds in full.
type RefundRequest struct {
	PaymentID string
	OrderID   string
	Amount    int64
	Reason    string
}

// RefundSource tags refunds raised by this service so their webhook echo is
// not applied twice.
const RefundSource = "kaapav-dashboard"

func (c *Client) Refund(ctx context.Context, req RefundRequest) (*Refund, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	body := map[string]any{
		"notes": map[string]string{
			"reason":   req.Reason,
			"order_id": req.OrderID,
			"source":   RefundSource,
		},
	}
	if req.Amount > 0 {
		body["amount"] = req.Amount * 100
	}

	var refund Refund
	if err := c.do(ctx, http.MethodPost, "/payments/"+req.PaymentID+"/refund", body, &refund); err != nil {
		return nil, fmt.Errorf("failed to refund payment: %w", err)
	}
	refund.Amount /= 100
	return &refund, nil
}

// VerifySignature checks the X-Razorpay-Signature header against body.
func (c *Client) VerifySignature(body []byte, signature string) error {
	if c.cfg.WebhookSecret == "" {
		return ErrNotConfigured
	}
	mac := hmac.New(sha256.New, []byte(c.cfg.WebhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(strings.TrimSpace(signature))) {
		return ErrInvalidSignature
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	return c.circuitBreaker.Execute(ctx, func() error {
		jsonData, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(c.cfg.BaseURL, "/")+path, bytes.NewReader(jsonData))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.SetBasicAuth(c.cfg.KeyID, c.cfg.KeySecret)

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
			var errResp struct {
				Error *APIError `json:"error"`
			}
			if jsonErr := json.Unmarshal(data, &errResp); jsonErr != nil || errResp.Error == nil {
				errResp.Error = &APIError{Description: strings.TrimSpace(string(data))}
			}
			errResp.Error.HTTPStatus = resp.StatusCode
			return errResp.Error
		}

		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	})
}
