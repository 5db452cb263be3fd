package models

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type Segment string

const (
	SegmentNew      Segment = "new"
	SegmentRegular  Segment = "regular"
	SegmentVIP      Segment = "vip"
	SegmentInactive Segment = "inactive"
)

// Customer is keyed by normalized phone and is never hard-deleted.
type Customer struct {
	Phone            string         `db:"phone" json:"phone"`
	Name             string         `db:"name" json:"name"`
	Email            sql.NullString `db:"email" json:"email,omitempty"`
	Segment          Segment        `db:"segment" json:"segment"`
	OptedInMarketing bool           `db:"opted_in_marketing" json:"opted_in_marketing"`
	IsBlocked        bool           `db:"is_blocked" json:"is_blocked"`
	IsDeleted        bool           `db:"is_deleted" json:"-"`
	TotalSpent       int64          `db:"total_spent" json:"total_spent"`
	OrderCount       int            `db:"order_count" json:"order_count"`
	Language         string         `db:"language" json:"language"`
	Address          sql.NullString `db:"address" json:"address,omitempty"`
	Pincode          sql.NullString `db:"pincode" json:"pincode,omitempty"`
	Labels           pq.StringArray `db:"labels" json:"labels"`
	LastSeen         time.Time      `db:"last_seen" json:"last_seen"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at" json:"updated_at"`
}

// CustomerFilter narrows customer list queries.
type CustomerFilter struct {
	Segment Segment
	Label   string
	Search  string
	OptedIn *bool
	Limit   int
	Offset  int
}

// CustomerUpdate carries admin-editable fields; nil fields are left unchanged.
type CustomerUpdate struct {
	Name             *string  `json:"name" validate:"omitempty,max=200"`
	Email            *string  `json:"email" validate:"omitempty,email"`
	Segment          *Segment `json:"segment"`
	OptedInMarketing *bool    `json:"opted_in_marketing"`
	IsBlocked        *bool    `json:"is_blocked"`
	Language         *string  `json:"language" validate:"omitempty,oneof=en hi"`
	Labels           []string `json:"labels" validate:"max=20"`
}

// CustomerStats aggregates customer counts for the dashboard.
type CustomerStats struct {
	Total         int64 `db:"total" json:"total"`
	New           int64 `db:"new" json:"new"`
	Regular       int64 `db:"regular" json:"regular"`
	VIP           int64 `db:"vip" json:"vip"`
	Inactive      int64 `db:"inactive" json:"inactive"`
	OptedIn       int64 `db:"opted_in" json:"opted_in"`
	LifetimeValue int64 `db:"lifetime_value" json:"lifetime_value"`
}

const (
	InactiveAfter          = 60 * 24 * time.Hour
	VIPMinSpent      int64 = 10000
	VIPMinOrders           = 5
	RegularMinOrders       = 2
)

// Classify applies the segmentation rules to a single customer.
func Classify(c *Customer, now time.Time) Segment {
	switch {
	case c.LastSeen.Before(now.Add(-InactiveAfter)):
		return SegmentInactive
	case c.TotalSpent >= VIPMinSpent || c.OrderCount >= VIPMinOrders:
		return SegmentVIP
	case c.OrderCount >= RegularMinOrders:
		return SegmentRegular
	default:
		return SegmentNew
	}
}
