// Package messenger sends shaped WhatsApp messages and mirrors every send
// to the message log, the chat inbox and the configured telemetry sinks.
package messenger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/repository"
	"github.com/kaapav/kaapav-bot/internal/telemetry"
	"github.com/kaapav/kaapav-bot/internal/whatsapp"
)

type Messenger struct {
	client Client
	repo   repository.Repository
	queue  *telemetry.Queue
	sinks  []telemetry.Sink
	logger *zap.Logger
}

func New(client Client, repo repository.Repository, queue *telemetry.Queue, sinks []telemetry.Sink, logger *zap.Logger) *Messenger {
	return &Messenger{
		client: client,
		repo:   repo,
		queue:  queue,
		sinks:  sinks,
		logger: logger,
	}
}

// Send delivers msg and returns the provider message id. The outcome is
// mirrored in the background whether or not the send succeeded.
func (m *Messenger) Send(ctx context.Context, msg whatsapp.Message) (string, error) {
	res, err := m.client.Send(ctx, msg)
	m.mirror(msg, res, err)
	if err != nil {
		m.logger.Error("Failed to send message",
			zap.String("to", msg.To),
			zap.String("type", msg.Type),
			zap.Error(err))
		return "", fmt.Errorf("failed to send %s message: %w", msg.Type, err)
	}
	return res.MessageID, nil
}

func (m *Messenger) send(ctx context.Context, msg whatsapp.Message) error {
	_, err := m.Send(ctx, msg)
	return err
}

func (m *Messenger) Text(ctx context.Context, to, body string) error {
	return m.send(ctx, whatsapp.NewText(to, body, strings.Contains(body, "http")))
}

func (m *Messenger) Buttons(ctx context.Context, to, body string, buttons []whatsapp.Button) error {
	return m.send(ctx, whatsapp.NewButtons(to, body, "", buttons))
}

func (m *Messenger) List(ctx context.Context, to, header, body, button string, sections []whatsapp.Section) error {
	return m.send(ctx, whatsapp.NewList(to, header, body, "", button, sections))
}

// CTAURL sends the link as plain text first so it is tappable on every
// client, then the interactive button. Only the text send can fail the call.
func (m *Messenger) CTAURL(ctx context.Context, to, body, label, url string) error {
	if err := m.Text(ctx, to, fmt.Sprintf("%s\n\n👉 %s: %s", body, label, url)); err != nil {
		return err
	}
	if err := m.send(ctx, whatsapp.NewCTAURL(to, body, label, url)); err != nil {
		m.logger.Warn("CTA button not delivered after link text", zap.String("to", to), zap.Error(err))
	}
	return nil
}

func (m *Messenger) Image(ctx context.Context, to, link, caption string) error {
	return m.send(ctx, whatsapp.NewMedia(to, "image", link, caption, ""))
}

func (m *Messenger) Video(ctx context.Context, to, link, caption string) error {
	return m.send(ctx, whatsapp.NewMedia(to, "video", link, caption, ""))
}

func (m *Messenger) Audio(ctx context.Context, to, link string) error {
	return m.send(ctx, whatsapp.NewMedia(to, "audio", link, "", ""))
}

func (m *Messenger) Document(ctx context.Context, to, link, caption, filename string) error {
	return m.send(ctx, whatsapp.NewMedia(to, "document", link, caption, filename))
}

func (m *Messenger) Template(ctx context.Context, to, name, language string, params []string) error {
	return m.send(ctx, whatsapp.NewTemplate(to, name, language, params))
}

func (m *Messenger) Product(ctx context.Context, to, retailerID, body string) error {
	return m.send(ctx, whatsapp.NewProduct(to, m.client.CatalogID(), retailerID, body))
}

func (m *Messenger) ProductList(ctx context.Context, to, header, body string, retailerIDs []string) error {
	items := make([]whatsapp.ProductItem, len(retailerIDs))
	for i, id := range retailerIDs {
		items[i] = whatsapp.ProductItem{ProductRetailerID: id}
	}
	sections := []whatsapp.Section{{Title: header, ProductItems: items}}
	return m.send(ctx, whatsapp.NewProductList(to, m.client.CatalogID(), header, body, sections))
}

func (m *Messenger) Reaction(ctx context.Context, to, messageID, emoji string) error {
	return m.send(ctx, whatsapp.NewReaction(to, messageID, emoji))
}

func (m *Messenger) LocationRequest(ctx context.Context, to, body string) error {
	return m.send(ctx, whatsapp.NewLocationRequest(to, body))
}

func (m *Messenger) MarkRead(ctx context.Context, messageID string) error {
	if err := m.client.MarkRead(ctx, messageID); err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}
	return nil
}

func (m *Messenger) mirror(msg whatsapp.Message, res *whatsapp.SendResult, sendErr error) {
	if m.queue == nil || msg.To == "" {
		return
	}

	now := time.Now().UTC()
	record := models.NewMessage{
		Phone:     msg.To,
		Direction: models.DirectionOutgoing,
		Type:      models.MessageType(msg.Type),
		Content:   msg.Summary(),
		Status:    models.MessageStatusSent,
	}
	if msg.Interactive != nil {
		record.Payload = models.JSONMap{"interactive_type": msg.Interactive.Type}
	}
	if res != nil {
		record.MessageID = res.MessageID
	}
	if sendErr != nil {
		record.Status = models.MessageStatusFailed
		record.Error = sendErr.Error()
	}

	m.queue.Submit("mirror:message", func(ctx context.Context) error {
		if _, err := m.repo.Message().Create(ctx, record); err != nil {
			return err
		}
		if sendErr != nil {
			return nil
		}
		return m.repo.Chat().Upsert(ctx, models.ChatSummary{
			Phone:     record.Phone,
			Text:      record.Content,
			Type:      record.Type,
			Direction: models.DirectionOutgoing,
			At:        now,
		})
	})

	telemetry.Fanout(m.queue, m.sinks, telemetry.Event{
		Type:        "message",
		Phone:       record.Phone,
		Direction:   string(record.Direction),
		MessageType: string(record.Type),
		Content:     record.Content,
		MessageID:   record.MessageID,
		Status:      string(record.Status),
		Error:       record.Error,
		At:          now,
	})
}

// Mirror logs an inbound message to the telemetry sinks.
func (m *Messenger) Mirror(event telemetry.Event) {
	if m.queue == nil {
		return
	}
	telemetry.Fanout(m.queue, m.sinks, event)
}
