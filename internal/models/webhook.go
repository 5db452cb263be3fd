package models

import (
	"strconv"
	"time"
)

// WebhookPayload is the envelope the WhatsApp Cloud API posts to /webhook.
type WebhookPayload struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

type WebhookEntry struct {
	ID      string          `json:"id"`
	Changes []WebhookChange `json:"changes"`
}

type WebhookChange struct {
	Field string       `json:"field"`
	Value WebhookValue `json:"value"`
}

type WebhookValue struct {
	MessagingProduct string           `json:"messaging_product"`
	Metadata         WebhookMetadata  `json:"metadata"`
	Contacts         []WebhookContact `json:"contacts,omitempty"`
	Messages         []InboundMessage `json:"messages,omitempty"`
	Statuses         []InboundStatus  `json:"statuses,omitempty"`
	Errors           []ProviderError  `json:"errors,omitempty"`
}

type WebhookMetadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

type WebhookContact struct {
	Profile struct {
		Name string `json:"name"`
	} `json:"profile"`
	WaID string `json:"wa_id"`
}

type InboundMessage struct {
	From        string            `json:"from"`
	ID          string            `json:"id"`
	Timestamp   string            `json:"timestamp"`
	Type        string            `json:"type"`
	Context     *MessageContext   `json:"context,omitempty"`
	Text        *TextBody         `json:"text,omitempty"`
	Interactive *InteractiveReply `json:"interactive,omitempty"`
	Button      *TemplateButton   `json:"button,omitempty"`
	Image       *MediaBody        `json:"image,omitempty"`
	Video       *MediaBody        `json:"video,omitempty"`
	Audio       *MediaBody        `json:"audio,omitempty"`
	Voice       *MediaBody        `json:"voice,omitempty"`
	Document    *MediaBody        `json:"document,omitempty"`
	Sticker     *MediaBody        `json:"sticker,omitempty"`
	Location    *LocationBody     `json:"location,omitempty"`
	Contacts    []SharedContact   `json:"contacts,omitempty"`
	Order       *NativeOrder      `json:"order,omitempty"`
	Reaction    *ReactionBody     `json:"reaction,omitempty"`
	Errors      []ProviderError   `json:"errors,omitempty"`
}

// SentAt parses the unix-seconds timestamp, falling back to now.
func (m *InboundMessage) SentAt() time.Time {
	if sec, err := strconv.ParseInt(m.Timestamp, 10, 64); err == nil {
		return time.Unix(sec, 0).UTC()
	}
	return time.Now().UTC()
}

// Media returns the media object for media-typed messages.
func (m *InboundMessage) Media() *MediaBody {
	switch MessageType(m.Type) {
	case MessageTypeImage:
		return m.Image
	case MessageTypeVideo:
		return m.Video
	case MessageTypeAudio:
		if m.Audio != nil {
			return m.Audio
		}
		return m.Voice
	case MessageTypeDocument:
		return m.Document
	case MessageTypeSticker:
		return m.Sticker
	}
	return nil
}

type MessageContext struct {
	From            string `json:"from"`
	ID              string `json:"id"`
	ReferredProduct *struct {
		CatalogID         string `json:"catalog_id"`
		ProductRetailerID string `json:"product_retailer_id"`
	} `json:"referred_product,omitempty"`
}

type TextBody struct {
	Body string `json:"body"`
}

type InteractiveReply struct {
	Type        string `json:"type"`
	ButtonReply *struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	} `json:"button_reply,omitempty"`
	ListReply *struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"list_reply,omitempty"`
	NFMReply *struct {
		Name         string `json:"name"`
		Body         string `json:"body"`
		ResponseJSON string `json:"response_json"`
	} `json:"nfm_reply,omitempty"`
}

// Selection returns the id and title of the tapped button or list row.
func (r *InteractiveReply) Selection() (id, title string) {
	switch {
	case r == nil:
		return "", ""
	case r.ButtonReply != nil:
		return r.ButtonReply.ID, r.ButtonReply.Title
	case r.ListReply != nil:
		return r.ListReply.ID, r.ListReply.Title
	case r.NFMReply != nil:
		return r.NFMReply.Name, r.NFMReply.Body
	}
	return "", ""
}

// TemplateButton is a quick-reply button tapped on a template message.
type TemplateButton struct {
	Payload string `json:"payload"`
	Text    string `json:"text"`
}

type MediaBody struct {
	ID       string `json:"id,omitempty"`
	MimeType string `json:"mime_type,omitempty"`
	SHA256   string `json:"sha256,omitempty"`
	Caption  string `json:"caption,omitempty"`
	Filename string `json:"filename,omitempty"`
}

type LocationBody struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name,omitempty"`
	Address   string  `json:"address,omitempty"`
}

type SharedContact struct {
	Name struct {
		FormattedName string `json:"formatted_name"`
	} `json:"name"`
	Phones []struct {
		Phone string `json:"phone"`
		WaID  string `json:"wa_id,omitempty"`
	} `json:"phones,omitempty"`
}

// NativeOrder is a cart sent from the WhatsApp catalog UI.
type NativeOrder struct {
	CatalogID    string `json:"catalog_id"`
	Text         string `json:"text,omitempty"`
	ProductItems []struct {
		ProductRetailerID string  `json:"product_retailer_id"`
		Quantity          int     `json:"quantity"`
		ItemPrice         float64 `json:"item_price"`
		Currency          string  `json:"currency"`
	} `json:"product_items"`
}

type ReactionBody struct {
	MessageID string `json:"message_id"`
	Emoji     string `json:"emoji"`
}

type InboundStatus struct {
	ID          string          `json:"id"`
	Status      string          `json:"status"`
	Timestamp   string          `json:"timestamp"`
	RecipientID string          `json:"recipient_id"`
	Errors      []ProviderError `json:"errors,omitempty"`
}

type ProviderError struct {
	Code    int    `json:"code"`
	Title   string `json:"title"`
	Message string `json:"message,omitempty"`
}
