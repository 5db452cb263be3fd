// Package whatsapp is a minimal WhatsApp Cloud API client.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/breaker"
	"github.com/kaapav/kaapav-bot/internal/config"
)

// SendResult is the provider's acknowledgement of an accepted message.
type SendResult struct {
	MessageID string
	WaID      string
}

type sendResponse struct {
	Contacts []struct {
		Input string `json:"input"`
		WaID  string `json:"wa_id"`
	} `json:"contacts"`
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

type errorResponse struct {
	Error *APIError `json:"error"`
}

type Client struct {
	cfg            config.WhatsAppConfig
	httpClient     *http.Client
	circuitBreaker *breaker.CircuitBreaker
	logger         *zap.Logger
}

func NewClient(cfg config.WhatsAppConfig, logger *zap.Logger) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryBaseMs <= 0 {
		cfg.RetryBaseMs = 500
	}
	if cfg.RetryMaxMs <= 0 {
		cfg.RetryMaxMs = 4000
	}

	return &Client{
		cfg:            cfg,
		httpClient:     &http.Client{Timeout: timeout},
		circuitBreaker: breaker.New("whatsapp", cfg.CircuitBreaker, logger, IsPermanent),
		logger:         logger,
	}
}

// Configured reports whether sends can be attempted at all.
func (c *Client) Configured() bool {
	return c.cfg.Enabled()
}

func (c *Client) CatalogID() string {
	return c.cfg.CatalogID
}

func (c *Client) Breaker() *breaker.CircuitBreaker {
	return c.circuitBreaker
}

// Send posts a message and returns the provider message id.
func (c *Client) Send(ctx context.Context, msg Message) (*SendResult, error) {
	return c.SendRaw(ctx, msg)
}

// MarkRead sends a read receipt for an inbound message.
func (c *Client) MarkRead(ctx context.Context, messageID string) error {
	_, err := c.SendRaw(ctx, readReceipt{
		MessagingProduct: "whatsapp",
		Status:           "read",
		MessageID:        messageID,
	})
	return err
}

// SendRaw posts payload to the messages endpoint. Transient provider errors
// are retried up to MaxRetries times after the first attempt, with capped
// exponential backoff; rejections are returned as soon as they are seen.
func (c *Client) SendRaw(ctx context.Context, payload any) (*SendResult, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(c.backOff(), uint64(c.cfg.MaxRetries)), ctx)

	var result *SendResult
	attempt := 0
	op := func() error {
		attempt++
		err := c.circuitBreaker.Execute(ctx, func() error {
			res, err := c.post(ctx, body)
			if err != nil {
				return err
			}
			result = res
			return nil
		})
		if err == nil {
			return nil
		}
		if errors.Is(err, breaker.ErrOpen) || IsPermanent(err) || errors.Is(err, context.Canceled) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		c.logger.Warn("Retrying whatsapp send",
			zap.Int("attempt", attempt),
			zap.Duration("wait", wait),
			zap.Error(err))
	}

	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) backOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Duration(c.cfg.RetryBaseMs) * time.Millisecond
	b.MaxInterval = time.Duration(c.cfg.RetryMaxMs) * time.Millisecond
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	return b
}

func (c *Client) endpoint() string {
	return fmt.Sprintf("%s/%s/%s/messages",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.APIVersion, c.cfg.PhoneNumberID)
}

func (c *Client) post(ctx context.Context, body []byte) (*SendResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("Failed to close response body", zap.Error(err))
		}
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var errResp errorResponse
		if jsonErr := json.Unmarshal(data, &errResp); jsonErr != nil || errResp.Error == nil {
			errResp.Error = &APIError{Message: strings.TrimSpace(string(data))}
		}
		errResp.Error.HTTPStatus = resp.StatusCode
		return nil, errResp.Error
	}

	var ok sendResponse
	if err := json.Unmarshal(data, &ok); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	result := &SendResult{}
	if len(ok.Messages) > 0 {
		result.MessageID = ok.Messages[0].ID
	}
	if len(ok.Contacts) > 0 {
		result.WaID = ok.Contacts[0].WaID
	}
	return result, nil
}
