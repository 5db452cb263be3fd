package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/breaker"
	"github.com/kaapav/kaapav-bot/internal/config"
)

// Event is a message log line delivered to external sinks.
type Event struct {
	Type        string    `json:"type"`
	Phone       string    `json:"phone"`
	Direction   string    `json:"direction"`
	MessageType string    `json:"message_type"`
	Content     string    `json:"content"`
	MessageID   string    `json:"message_id,omitempty"`
	Status      string    `json:"status"`
	Error       string    `json:"error,omitempty"`
	At          time.Time `json:"timestamp"`
}

type Sink interface {
	Name() string
	Deliver(ctx context.Context, event Event) error
}

// httpSink posts events as JSON through a circuit breaker.
type httpSink struct {
	name           string
	url            string
	headers        map[string]string
	encode         func(Event) any
	httpClient     *http.Client
	circuitBreaker *breaker.CircuitBreaker
	logger         *zap.Logger
}

// NewWebhookSink forwards every event to an external webhook, authenticated
// with the x-auth-key header.
func NewWebhookSink(cfg config.TelemetryConfig, logger *zap.Logger) Sink {
	headers := map[string]string{}
	if cfg.WebhookAuthKey != "" {
		headers["x-auth-key"] = cfg.WebhookAuthKey
	}
	return newHTTPSink("webhook", cfg.WebhookURL, headers, func(e Event) any { return e }, cfg, logger)
}

// NewSheetsSink appends each event as a row through a spreadsheet web app.
func NewSheetsSink(cfg config.TelemetryConfig, logger *zap.Logger) Sink {
	encode := func(e Event) any {
		return map[string]any{
			"action": "append",
			"row": []string{
				e.At.In(ist).Format("2006-01-02 15:04:05"),
				e.Phone,
				e.Direction,
				e.MessageType,
				e.Content,
				e.Status,
				e.MessageID,
				e.Error,
			},
		}
	}
	return newHTTPSink("sheets", cfg.SheetsURL, nil, encode, cfg, logger)
}

var ist = time.FixedZone("IST", 5*3600+1800)

func newHTTPSink(name, url string, headers map[string]string, encode func(Event) any, cfg config.TelemetryConfig, logger *zap.Logger) *httpSink {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &httpSink{
		name:           name,
		url:            url,
		headers:        headers,
		encode:         encode,
		httpClient:     &http.Client{Timeout: timeout},
		circuitBreaker: breaker.New("sink-"+name, cfg.CircuitBreaker, logger, nil),
		logger:         logger,
	}
}

func (s *httpSink) Name() string {
	return s.name
}

func (s *httpSink) Deliver(ctx context.Context, event Event) error {
	return s.circuitBreaker.Execute(ctx, func() error {
		jsonData, err := json.Marshal(s.encode(event))
		if err != nil {
			return fmt.Errorf("failed to marshal event: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(jsonData))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		for k, v := range s.headers {
			req.Header.Set(k, v)
		}

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("failed to send request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				s.logger.Warn("Failed to close response body", zap.Error(err))
			}
		}()

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}
		return nil
	})
}

// Sinks builds the sinks enabled by configuration.
func Sinks(cfg config.TelemetryConfig, logger *zap.Logger) []Sink {
	var sinks []Sink
	if cfg.SheetsURL != "" {
		sinks = append(sinks, NewSheetsSink(cfg, logger))
	}
	if cfg.WebhookURL != "" {
		sinks = append(sinks, NewWebhookSink(cfg, logger))
	}
	return sinks
}

// Fanout submits one delivery task per sink.
func Fanout(q *Queue, sinks []Sink, event Event) {
	for _, sink := range sinks {
		sink := sink
		q.Submit("sink:"+sink.Name(), func(ctx context.Context) error {
			return sink.Deliver(ctx, event)
		})
	}
}
