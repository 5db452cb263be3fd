package models

import (
	"database/sql"
	"time"
)

type AnalyticsEvent struct {
	ID        int64     `db:"id" json:"id"`
	Phone     string    `db:"phone" json:"phone"`
	Event     string    `db:"event" json:"event"`
	Action    string    `db:"action" json:"action"`
	Data      JSONMap   `db:"data" json:"data,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ErrorLog records a flow-level failure caught at the dispatcher boundary.
type ErrorLog struct {
	ID        int64          `db:"id" json:"id"`
	Endpoint  string         `db:"endpoint" json:"endpoint"`
	Phone     sql.NullString `db:"phone" json:"phone,omitempty"`
	Message   string         `db:"message" json:"message"`
	Stack     string         `db:"stack" json:"stack"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}

type ReminderType string

const (
	ReminderPayment  ReminderType = "payment"
	ReminderCart     ReminderType = "cart"
	ReminderDelivery ReminderType = "delivery"
	ReminderCallback ReminderType = "callback"
	ReminderFollowUp ReminderType = "follow_up"
)

type ReminderStatus string

const (
	ReminderPending   ReminderStatus = "pending"
	ReminderSent      ReminderStatus = "sent"
	ReminderFailed    ReminderStatus = "failed"
	ReminderCancelled ReminderStatus = "cancelled"
)

// Reminder is a one-off scheduled send picked up by the five-minute sweep.
type Reminder struct {
	ID        int64          `db:"id" json:"id"`
	Phone     string         `db:"phone" json:"phone"`
	Type      ReminderType   `db:"type" json:"type"`
	Reference sql.NullString `db:"reference" json:"reference,omitempty"`
	Message   string         `db:"message" json:"message"`
	DueAt     time.Time      `db:"due_at" json:"due_at"`
	Status    ReminderStatus `db:"status" json:"status"`
	Attempts  int            `db:"attempts" json:"attempts"`
	Error     sql.NullString `db:"error" json:"error,omitempty"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	SentAt    sql.NullTime   `db:"sent_at" json:"sent_at,omitempty"`
}

type DailyReport struct {
	ReportDate      time.Time `db:"report_date" json:"report_date"`
	NewCustomers    int64     `db:"new_customers" json:"new_customers"`
	ActiveCustomers int64     `db:"active_customers" json:"active_customers"`
	MessagesIn      int64     `db:"messages_in" json:"messages_in"`
	MessagesOut     int64     `db:"messages_out" json:"messages_out"`
	OrdersCreated   int64     `db:"orders_created" json:"orders_created"`
	OrdersPaid      int64     `db:"orders_paid" json:"orders_paid"`
	Revenue         int64     `db:"revenue" json:"revenue"`
	AbandonedCarts  int64     `db:"abandoned_carts" json:"abandoned_carts"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// Dashboard is the analytics overview served to the admin UI.
type Dashboard struct {
	Customers   CustomerStats `json:"customers"`
	Orders      OrderStats    `json:"orders"`
	OpenChats   int64         `json:"open_chats"`
	UnreadChats int64         `json:"unread_chats"`
	MessagesIn  int64         `json:"messages_today_in"`
	MessagesOut int64         `json:"messages_today_out"`
	TopActions  []ActionCount `json:"top_actions"`
	Reports     []DailyReport `json:"recent_reports"`
}

type ActionCount struct {
	Action string `db:"action" json:"action"`
	Count  int64  `db:"count" json:"count"`
}
