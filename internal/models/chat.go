package models

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type ChatStatus string

const (
	ChatStatusOpen     ChatStatus = "open"
	ChatStatusPending  ChatStatus = "pending"
	ChatStatusResolved ChatStatus = "resolved"
	ChatStatusArchived ChatStatus = "archived"
)

type ChatPriority string

const (
	ChatPriorityLow    ChatPriority = "low"
	ChatPriorityNormal ChatPriority = "normal"
	ChatPriorityHigh   ChatPriority = "high"
)

// Chat is the per-customer thread summary shown in the dashboard inbox.
type Chat struct {
	Phone           string         `db:"phone" json:"phone"`
	CustomerName    string         `db:"customer_name" json:"customer_name"`
	LastMessage     string         `db:"last_message" json:"last_message"`
	LastMessageType string         `db:"last_message_type" json:"last_message_type"`
	LastMessageAt   time.Time      `db:"last_message_at" json:"last_message_at"`
	LastDirection   Direction      `db:"last_direction" json:"last_direction"`
	UnreadCount     int            `db:"unread_count" json:"unread_count"`
	Labels          pq.StringArray `db:"labels" json:"labels"`
	Status          ChatStatus     `db:"status" json:"status"`
	AssignedTo      sql.NullString `db:"assigned_to" json:"assigned_to,omitempty"`
	Priority        ChatPriority   `db:"priority" json:"priority"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}

// ChatSummary is the denormalized update applied on every inbound/outbound message.
type ChatSummary struct {
	Phone        string
	CustomerName string
	Text         string
	Type         MessageType
	Direction    Direction
	At           time.Time
}

type ChatFilter struct {
	Status     ChatStatus
	Label      string
	AssignedTo string
	Search     string
	UnreadOnly bool
	Limit      int
	Offset     int
}

// ChatUpdate carries admin-editable chat fields; nil fields are left unchanged.
type ChatUpdate struct {
	Status     *ChatStatus   `json:"status"`
	AssignedTo *string       `json:"assigned_to" validate:"omitempty,max=128"`
	Priority   *ChatPriority `json:"priority"`
	Labels     []string      `json:"labels" validate:"max=20"`
}
