package models

import (
	"database/sql"
	"time"
)

type Direction string

const (
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
)

type MessageType string

const (
	MessageTypeText        MessageType = "text"
	MessageTypeInteractive MessageType = "interactive"
	MessageTypeButton      MessageType = "button"
	MessageTypeImage       MessageType = "image"
	MessageTypeVideo       MessageType = "video"
	MessageTypeAudio       MessageType = "audio"
	MessageTypeDocument    MessageType = "document"
	MessageTypeSticker     MessageType = "sticker"
	MessageTypeLocation    MessageType = "location"
	MessageTypeContacts    MessageType = "contacts"
	MessageTypeOrder       MessageType = "order"
	MessageTypeReaction    MessageType = "reaction"
	MessageTypeTemplate    MessageType = "template"
	MessageTypeUnknown     MessageType = "unknown"
)

// IsMedia reports whether the type carries a downloadable media object.
func (t MessageType) IsMedia() bool {
	switch t {
	case MessageTypeImage, MessageTypeVideo, MessageTypeAudio, MessageTypeDocument, MessageTypeSticker:
		return true
	}
	return false
}

type MessageStatus string

const (
	MessageStatusReceived  MessageStatus = "received"
	MessageStatusPending   MessageStatus = "pending"
	MessageStatusSent      MessageStatus = "sent"
	MessageStatusDelivered MessageStatus = "delivered"
	MessageStatusRead      MessageStatus = "read"
	MessageStatusFailed    MessageStatus = "failed"
)

// Message represents a message in the database.
type Message struct {
	ID          int64          `db:"id" json:"id"`
	Phone       string         `db:"phone" json:"phone"`
	Direction   Direction      `db:"direction" json:"direction"`
	Type        MessageType    `db:"type" json:"type"`
	Content     string         `db:"content" json:"content"`
	Status      MessageStatus  `db:"status" json:"status"`
	MessageID   sql.NullString `db:"message_id" json:"message_id,omitempty"`
	MediaID     sql.NullString `db:"media_id" json:"media_id,omitempty"`
	MediaURL    sql.NullString `db:"media_url" json:"media_url,omitempty"`
	ButtonID    sql.NullString `db:"button_id" json:"button_id,omitempty"`
	ButtonText  sql.NullString `db:"button_text" json:"button_text,omitempty"`
	ContextID   sql.NullString `db:"context_id" json:"context_id,omitempty"`
	Payload     JSONMap        `db:"payload" json:"payload,omitempty"`
	Error       sql.NullString `db:"error" json:"error,omitempty"`
	AIProcessed bool           `db:"ai_processed" json:"ai_processed"`
	AIResponse  sql.NullString `db:"ai_response" json:"ai_response,omitempty"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	SentAt      sql.NullTime   `db:"sent_at" json:"sent_at,omitempty"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

// NewMessage is the insert shape for the append-only message log.
type NewMessage struct {
	Phone      string
	Direction  Direction
	Type       MessageType
	Content    string
	Status     MessageStatus
	MessageID  string
	MediaID    string
	ButtonID   string
	ButtonText string
	ContextID  string
	Payload    JSONMap
	Error      string
}

// StatusUpdate is a delivery receipt reported by the provider.
type StatusUpdate struct {
	MessageID string
	Phone     string
	Status    MessageStatus
	Error     string
	At        time.Time
}
