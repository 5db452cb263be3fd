package models

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type BroadcastStatus string

const (
	BroadcastStatusDraft     BroadcastStatus = "draft"
	BroadcastStatusScheduled BroadcastStatus = "scheduled"
	BroadcastStatusSending   BroadcastStatus = "sending"
	BroadcastStatusCompleted BroadcastStatus = "completed"
	BroadcastStatusFailed    BroadcastStatus = "failed"
	BroadcastStatusCancelled BroadcastStatus = "cancelled"
)

// Startable reports whether a send may begin from this status.
func (s BroadcastStatus) Startable() bool {
	return s == BroadcastStatusDraft || s == BroadcastStatusScheduled
}

type TargetType string

const (
	TargetAll     TargetType = "all"
	TargetSegment TargetType = "segment"
	TargetLabels  TargetType = "labels"
	TargetCustom  TargetType = "custom"
)

type BroadcastMessageType string

const (
	BroadcastText     BroadcastMessageType = "text"
	BroadcastTemplate BroadcastMessageType = "template"
	BroadcastImage    BroadcastMessageType = "image"
	BroadcastButtons  BroadcastMessageType = "buttons"
)

type Broadcast struct {
	BroadcastID      string               `db:"broadcast_id" json:"broadcast_id"`
	Name             string               `db:"name" json:"name"`
	TargetType       TargetType           `db:"target_type" json:"target_type"`
	TargetSegment    sql.NullString       `db:"target_segment" json:"target_segment,omitempty"`
	TargetLabels     pq.StringArray       `db:"target_labels" json:"target_labels"`
	TargetPhones     pq.StringArray       `db:"target_phones" json:"target_phones"`
	MessageType      BroadcastMessageType `db:"message_type" json:"message_type"`
	Message          string               `db:"message" json:"message"`
	TemplateName     sql.NullString       `db:"template_name" json:"template_name,omitempty"`
	TemplateLanguage sql.NullString       `db:"template_language" json:"template_language,omitempty"`
	MediaURL         sql.NullString       `db:"media_url" json:"media_url,omitempty"`
	Buttons          pq.StringArray       `db:"buttons" json:"buttons"`
	SendRate         int                  `db:"send_rate" json:"send_rate"`
	Status           BroadcastStatus      `db:"status" json:"status"`
	TotalRecipients  int                  `db:"total_recipients" json:"total_recipients"`
	SentCount        int                  `db:"sent_count" json:"sent_count"`
	FailedCount      int                  `db:"failed_count" json:"failed_count"`
	ScheduledAt      sql.NullTime         `db:"scheduled_at" json:"scheduled_at,omitempty"`
	StartedAt        sql.NullTime         `db:"started_at" json:"started_at,omitempty"`
	CompletedAt      sql.NullTime         `db:"completed_at" json:"completed_at,omitempty"`
	CreatedBy        string               `db:"created_by" json:"created_by"`
	CreatedAt        time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time            `db:"updated_at" json:"updated_at"`
}

// BroadcastInput is the dashboard payload for a new campaign.
type BroadcastInput struct {
	Name             string               `json:"name" validate:"required,max=200"`
	TargetType       TargetType           `json:"target_type" validate:"required,oneof=all segment labels custom"`
	TargetSegment    string               `json:"target_segment" validate:"required_if=TargetType segment"`
	TargetLabels     []string             `json:"target_labels" validate:"required_if=TargetType labels"`
	TargetPhones     []string             `json:"target_phones" validate:"required_if=TargetType custom"`
	MessageType      BroadcastMessageType `json:"message_type" validate:"required,oneof=text template image buttons"`
	Message          string               `json:"message" validate:"required_unless=MessageType template,max=4096"`
	TemplateName     string               `json:"template_name" validate:"required_if=MessageType template"`
	TemplateLanguage string               `json:"template_language"`
	MediaURL         string               `json:"media_url" validate:"required_if=MessageType image"`
	Buttons          []string             `json:"buttons" validate:"max=3"`
	SendRate         int                  `json:"send_rate" validate:"gte=0,lte=1000"`
	ScheduledAt      *time.Time           `json:"scheduled_at"`
}

type RecipientStatus string

const (
	RecipientPending RecipientStatus = "pending"
	RecipientSent    RecipientStatus = "sent"
	RecipientFailed  RecipientStatus = "failed"
)

// BroadcastRecipient is one row of the per-recipient fan-out ledger.
type BroadcastRecipient struct {
	ID          int64           `db:"id" json:"id"`
	BroadcastID string          `db:"broadcast_id" json:"broadcast_id"`
	Phone       string          `db:"phone" json:"phone"`
	Status      RecipientStatus `db:"status" json:"status"`
	MessageID   sql.NullString  `db:"message_id" json:"message_id,omitempty"`
	Error       sql.NullString  `db:"error" json:"error,omitempty"`
	SentAt      sql.NullTime    `db:"sent_at" json:"sent_at,omitempty"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

type BroadcastStats struct {
	BroadcastID     string          `json:"broadcast_id"`
	Status          BroadcastStatus `json:"status"`
	TotalRecipients int             `json:"total_recipients"`
	SentCount       int             `json:"sent_count"`
	FailedCount     int             `json:"failed_count"`
	Pending         int             `json:"pending"`
	Progress        float64         `json:"progress"`
}
