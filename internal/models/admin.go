package models

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type MatchType string

const (
	MatchExact    MatchType = "exact"
	MatchStarts   MatchType = "starts"
	MatchEnds     MatchType = "ends"
	MatchContains MatchType = "contains"
	MatchWord     MatchType = "word"
	MatchRegex    MatchType = "regex"
)

// QuickReply is an admin-curated keyword response consulted before heuristic routing.
type QuickReply struct {
	ID        int64          `db:"id" json:"id"`
	Keyword   string         `db:"keyword" json:"keyword"`
	MatchType MatchType      `db:"match_type" json:"match_type"`
	Response  string         `db:"response" json:"response"`
	Buttons   pq.StringArray `db:"buttons" json:"buttons"`
	Priority  int            `db:"priority" json:"priority"`
	UseCount  int64          `db:"use_count" json:"use_count"`
	IsActive  bool           `db:"is_active" json:"is_active"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}

type QuickReplyInput struct {
	Keyword   string    `json:"keyword" validate:"required,max=200"`
	MatchType MatchType `json:"match_type" validate:"omitempty,oneof=exact starts ends contains word regex"`
	Response  string    `json:"response" validate:"required,max=4096"`
	Buttons   []string  `json:"buttons" validate:"max=3"`
	Priority  int       `json:"priority"`
	IsActive  *bool     `json:"is_active"`
}

type Label struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Color     string    `db:"color" json:"color"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type LabelInput struct {
	Name  string `json:"name" validate:"required,max=64"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

// Template mirrors an approved provider message template.
type Template struct {
	ID         int64          `db:"id" json:"id"`
	Name       string         `db:"name" json:"name"`
	Language   string         `db:"language" json:"language"`
	Category   string         `db:"category" json:"category"`
	Body       string         `db:"body" json:"body"`
	Status     string         `db:"status" json:"status"`
	Parameters pq.StringArray `db:"parameters" json:"parameters"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
}

type TemplateInput struct {
	Name       string   `json:"name" validate:"required,max=128"`
	Language   string   `json:"language" validate:"required,max=16"`
	Category   string   `json:"category" validate:"required,oneof=MARKETING UTILITY AUTHENTICATION"`
	Body       string   `json:"body" validate:"required"`
	Parameters []string `json:"parameters"`
}

type Agent struct {
	ID        int64          `db:"id" json:"id"`
	Name      string         `db:"name" json:"name"`
	Email     string         `db:"email" json:"email"`
	Phone     sql.NullString `db:"phone" json:"phone,omitempty"`
	Role      string         `db:"role" json:"role"`
	IsActive  bool           `db:"is_active" json:"is_active"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}

type AgentInput struct {
	Name  string `json:"name" validate:"required,max=128"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
	Role  string `json:"role" validate:"omitempty,oneof=admin agent viewer"`
}

type Setting struct {
	Key       string    `db:"key" json:"key"`
	Value     string    `db:"value" json:"value"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type SettingInput struct {
	Key   string `json:"key" validate:"required,max=128"`
	Value string `json:"value" validate:"max=4096"`
}
