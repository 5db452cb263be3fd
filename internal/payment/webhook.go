package payment

import (
	"encoding/json"
	"fmt"

	"github.com/kaapav/kaapav-bot/internal/models"
)

const (
	EventPaymentLinkPaid = "payment_link.paid"
	EventPaymentCaptured = "payment.captured"
	EventPaymentFailed   = "payment.failed"
	EventRefundProcessed = "refund.processed"
)

// WebhookEvent is the subset of a Razorpay webhook this service reads.
type WebhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		PaymentLink *struct {
			Entity struct {
				ID          string `json:"id"`
				ReferenceID string `json:"reference_id"`
				Status      string `json:"status"`
				AmountPaid  int64  `json:"amount_paid"`
			} `json:"entity"`
		} `json:"payment_link,omitempty"`
		Payment *struct {
			Entity struct {
				ID     string            `json:"id"`
				Amount int64             `json:"amount"`
				Method string            `json:"method"`
				Status string            `json:"status"`
				Notes  map[string]string `json:"notes"`
			} `json:"entity"`
		} `json:"payment,omitempty"`
		Refund *struct {
			Entity struct {
				ID        string            `json:"id"`
				PaymentID string            `json:"payment_id"`
				Amount    int64             `json:"amount"`
				Notes     map[string]string `json:"notes"`
			} `json:"entity"`
		} `json:"refund,omitempty"`
	} `json:"payload"`
}

func ParseWebhook(body []byte) (*WebhookEvent, error) {
	var ev WebhookEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return nil, fmt.Errorf("failed to decode razorpay webhook: %w", err)
	}
	return &ev, nil
}

// OrderID resolves the order the event refers to, from the link reference
// or the payment notes.
func (e *WebhookEvent) OrderID() string {
	if e.Payload.PaymentLink != nil && e.Payload.PaymentLink.Entity.ReferenceID != "" {
		return e.Payload.PaymentLink.Entity.ReferenceID
	}
	if e.Payload.Payment != nil {
		if id := e.Payload.Payment.Entity.Notes["order_id"]; id != "" {
			return id
		}
	}
	if e.Payload.Refund != nil {
		return e.Payload.Refund.Entity.Notes["order_id"]
	}
	return ""
}

// LinkID is the payment link id, when the event carries one.
func (e *WebhookEvent) LinkID() string {
	if e.Payload.PaymentLink != nil {
		return e.Payload.PaymentLink.Entity.ID
	}
	return ""
}

// PaymentResult converts a paid or captured event. ok is false for other events.
func (e *WebhookEvent) PaymentResult() (models.PaymentResult, bool) {
	if e.Event != EventPaymentLinkPaid && e.Event != EventPaymentCaptured {
		return models.PaymentResult{}, false
	}
	if e.Payload.Payment == nil || e.Payload.Payment.Entity.ID == "" {
		return models.PaymentResult{}, false
	}
	p := e.Payload.Payment.Entity
	return models.PaymentResult{
		OrderID:   e.OrderID(),
		PaymentID: p.ID,
		Amount:    p.Amount / 100,
		Method:    p.Method,
	}, true
}

// RefundAmount is the refunded rupees for refund events.
func (e *WebhookEvent) RefundAmount() (paymentID string, amount int64, ok bool) {
	if e.Event != EventRefundProcessed || e.Payload.Refund == nil {
		return "", 0, false
	}
	r := e.Payload.Refund.Entity
	return r.PaymentID, r.Amount / 100, true
}

// RaisedHere reports whether a refund event echoes a refund this service
// requested and has already recorded.
func (e *WebhookEvent) RaisedHere() bool {
	return e.Payload.Refund != nil && e.Payload.Refund.Entity.Notes["source"] == RefundSource
}
