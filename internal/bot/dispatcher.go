package bot

import (
	"context"
	"database/sql"
	"fmt"
	"runtime/debug"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/normalize"
)

const (
	businessAccountObject = "whatsapp_business_account"
	messagesField         = "messages"
	defaultLanguage       = "en"
)

// Dispatcher turns a webhook delivery into status updates or one routed
// customer message. It never returns handler failures: they are logged and
// answered with an apology and the main menu.
type Dispatcher struct {
	*core
	text    *TextRouter
	buttons *ButtonRouter
	orders  *OrderFlow
}

// ShardKey is the sender a delivery belongs to, used to keep one sender's
// messages in order.
func ShardKey(payload *models.WebhookPayload) string {
	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			if len(change.Value.Messages) > 0 {
				return normalize.Phone(change.Value.Messages[0].From)
			}
			if len(change.Value.Statuses) > 0 {
				return normalize.Phone(change.Value.Statuses[0].RecipientID)
			}
		}
	}
	return ""
}

// Process handles one webhook payload.
func (d *Dispatcher) Process(ctx context.Context, payload *models.WebhookPayload) {
	if payload.Object != businessAccountObject {
		d.Logger.Debug("Ignoring webhook object", zap.String("object", payload.Object))
		return
	}

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			if change.Field != messagesField {
				continue
			}
			value := change.Value
			if len(value.Statuses) > 0 {
				d.applyStatuses(ctx, value.Statuses)
				continue
			}
			if len(value.Messages) == 0 {
				continue
			}
			name := ""
			if len(value.Contacts) > 0 {
				name = value.Contacts[0].Profile.Name
			}
			d.handleMessage(ctx, &value.Messages[0], name)
		}
	}
}

func (d *Dispatcher) applyStatuses(ctx context.Context, statuses []models.InboundStatus) {
	for _, s := range statuses {
		update := models.StatusUpdate{
			MessageID: s.ID,
			Phone:     normalize.Phone(s.RecipientID),
			Status:    models.MessageStatus(s.Status),
			At:        unixTime(s.Timestamp),
		}
		if len(s.Errors) > 0 {
			update.Error = s.Errors[0].Title
			if s.Errors[0].Message != "" {
				update.Error = s.Errors[0].Message
			}
		}
		if err := d.Repo.Message().UpdateStatus(ctx, update); err != nil {
			d.Logger.Warn("Failed to update message status",
				zap.String("message_id", s.ID),
				zap.String("status", s.Status),
				zap.Error(err))
		}
	}
}

func (d *Dispatcher) handleMessage(ctx context.Context, msg *models.InboundMessage, name string) {
	in := &Inbound{
		Phone:     normalize.Phone(msg.From),
		Name:      name,
		Language:  defaultLanguage,
		MessageID: msg.ID,
	}

	defer func() {
		if rec := recover(); rec != nil {
			d.fail(ctx, in, msg.Type, fmt.Errorf("panic: %v", rec), string(debug.Stack()))
		}
	}()

	messageID := msg.ID
	d.async("mark-read", func(ctx context.Context) error {
		return d.Gateway.MarkRead(ctx, messageID)
	})

	d.persist(ctx, in, msg)

	if err := d.route(ctx, in, msg); err != nil {
		d.fail(ctx, in, msg.Type, err, "")
	}
}

// persist stores the message, the chat summary and the customer in that
// order. Failures are logged; routing goes on without them.
func (d *Dispatcher) persist(ctx context.Context, in *Inbound, msg *models.InboundMessage) {
	record := inboundRecord(in.Phone, msg)
	rowID, err := d.Repo.Message().Create(ctx, record)
	if err != nil {
		d.Logger.Error("Failed to store inbound message", zap.String("phone", in.Phone), zap.Error(err))
	}
	in.RowID = rowID

	if err := d.Repo.Chat().Upsert(ctx, models.ChatSummary{
		Phone:        in.Phone,
		CustomerName: in.Name,
		Text:         record.Content,
		Type:         record.Type,
		Direction:    models.DirectionIncoming,
		At:           msg.SentAt(),
	}); err != nil {
		d.Logger.Error("Failed to update chat summary", zap.String("phone", in.Phone), zap.Error(err))
	}

	customer, created, err := d.Repo.Customer().Touch(ctx, in.Phone, in.Name)
	if err != nil {
		d.Logger.Error("Failed to touch customer", zap.String("phone", in.Phone), zap.Error(err))
		return
	}
	if created {
		d.Logger.Info("New customer", zap.String("phone", in.Phone))
	}
	in.Customer = customer
	if customer.Language != "" {
		in.Language = customer.Language
	}
	if in.Name == "" {
		in.Name = customer.Name
	}
}

func (d *Dispatcher) route(ctx context.Context, in *Inbound, msg *models.InboundMessage) error {
	if state := d.state.Get(ctx, in.Phone); state != nil {
		switch state.CurrentFlow {
		case FlowOrder:
			handled, err := d.orders.Handle(ctx, in, state, msg)
			if err != nil || handled {
				return err
			}
		default:
			d.Logger.Warn("Unknown flow, clearing", zap.String("phone", in.Phone), zap.String("flow", state.CurrentFlow))
			d.state.Clear(ctx, in.Phone)
		}
	}

	t := in.texts()
	switch models.MessageType(msg.Type) {
	case models.MessageTypeText:
		if msg.Text == nil {
			return d.sendMainMenu(ctx, in, "")
		}
		return d.text.Route(ctx, in, msg.Text.Body)
	case models.MessageTypeInteractive:
		id, _ := msg.Interactive.Selection()
		return d.buttons.Handle(ctx, in, id)
	case models.MessageTypeButton:
		if msg.Button == nil {
			return d.sendMainMenu(ctx, in, "")
		}
		if msg.Button.Payload == "" {
			return d.text.Route(ctx, in, msg.Button.Text)
		}
		return d.buttons.Handle(ctx, in, msg.Button.Payload)
	case models.MessageTypeImage, models.MessageTypeVideo, models.MessageTypeAudio,
		models.MessageTypeDocument, models.MessageTypeSticker:
		if media := msg.Media(); media != nil && media.Caption != "" {
			return d.text.Route(ctx, in, media.Caption)
		}
		return d.Gateway.Text(ctx, in.Phone, t.MediaReceived)
	case models.MessageTypeLocation:
		if msg.Location != nil {
			if pin, ok := normalize.Pincode(msg.Location.Address); ok {
				return d.sendPincode(ctx, in, pin)
			}
		}
		return d.Gateway.Text(ctx, in.Phone, t.LocationNoPin)
	case models.MessageTypeContacts:
		return d.Gateway.Text(ctx, in.Phone, t.ContactReceived)
	case models.MessageTypeOrder:
		return d.orders.NativeOrder(ctx, in, msg.Order)
	case models.MessageTypeReaction:
		// Reactions need no answer.
		return nil
	}
	return d.sendMainMenu(ctx, in, t.DefaultReply)
}

// fail records a flow failure and still answers the customer.
func (d *Dispatcher) fail(ctx context.Context, in *Inbound, kind string, err error, stack string) {
	d.Logger.Error("Failed to handle inbound message",
		zap.String("phone", in.Phone),
		zap.String("type", kind),
		zap.Error(err))

	entry := &models.ErrorLog{
		Endpoint:  "webhook:" + kind,
		Phone:     sql.NullString{String: in.Phone, Valid: in.Phone != ""},
		Message:   err.Error(),
		Stack:     stack,
		CreatedAt: d.Now().UTC(),
	}
	d.async("error-log", func(ctx context.Context) error {
		return d.Repo.Analytics().LogError(ctx, entry)
	})

	if sendErr := d.sendMainMenu(ctx, in, in.texts().Apology); sendErr != nil {
		d.Logger.Error("Failed to send apology", zap.String("phone", in.Phone), zap.Error(sendErr))
	}
}

func inboundRecord(phone string, msg *models.InboundMessage) models.NewMessage {
	record := models.NewMessage{
		Phone:     phone,
		Direction: models.DirectionIncoming,
		Type:      models.MessageType(msg.Type),
		Status:    models.MessageStatusReceived,
		MessageID: msg.ID,
	}
	if msg.Context != nil {
		record.ContextID = msg.Context.ID
	}

	switch models.MessageType(msg.Type) {
	case models.MessageTypeText:
		if msg.Text != nil {
			record.Content = msg.Text.Body
		}
	case models.MessageTypeInteractive:
		record.ButtonID, record.ButtonText = msg.Interactive.Selection()
		record.Content = record.ButtonText
	case models.MessageTypeButton:
		if msg.Button != nil {
			record.ButtonID, record.ButtonText = msg.Button.Payload, msg.Button.Text
			record.Content = msg.Button.Text
		}
	case models.MessageTypeLocation:
		if msg.Location != nil {
			record.Content = fmt.Sprintf("%s %s", msg.Location.Name, msg.Location.Address)
			record.Payload = models.JSONMap{"latitude": msg.Location.Latitude, "longitude": msg.Location.Longitude}
		}
	case models.MessageTypeOrder:
		if msg.Order != nil {
			record.Content = fmt.Sprintf("Catalog order: %d items", len(msg.Order.ProductItems))
		}
	case models.MessageTypeReaction:
		if msg.Reaction != nil {
			record.Content = msg.Reaction.Emoji
			record.ContextID = msg.Reaction.MessageID
		}
	case models.MessageTypeContacts:
		if len(msg.Contacts) > 0 {
			record.Content = msg.Contacts[0].Name.FormattedName
		}
	}
	if media := msg.Media(); media != nil {
		record.MediaID = media.ID
		record.Content = media.Caption
	}
	if record.Content == "" {
		record.Content = "[" + msg.Type + "]"
	}
	return record
}

func unixTime(ts string) time.Time {
	if sec, err := strconv.ParseInt(ts, 10, 64); err == nil {
		return time.Unix(sec, 0).UTC()
	}
	return time.Now().UTC()
}
