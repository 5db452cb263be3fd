package service

import (
	"time"

	"github.com/kaapav/kaapav-bot/internal/breaker"
	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/shipping"
	"github.com/kaapav/kaapav-bot/internal/telemetry"
	"github.com/kaapav/kaapav-bot/internal/worker"
)

type HealthStatus struct {
	Status          string                `json:"status"`
	SchedulerStatus string                `json:"scheduler_status"`
	DatabaseStatus  string                `json:"database_status"`
	RedisStatus     string                `json:"redis_status"`
	Breakers        []BreakerStatus       `json:"circuit_breakers,omitempty"`
	Workers         *worker.Stats         `json:"workers,omitempty"`
	Telemetry       *telemetry.QueueStats `json:"telemetry,omitempty"`
	CheckedAt       time.Time             `json:"checked_at"`
}

type BreakerStatus struct {
	Name     string        `json:"name"`
	State    breaker.State `json:"state"`
	Requests uint32        `json:"requests"`
	Failures uint32        `json:"failures"`
	Summary  string        `json:"summary"`
}

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	StatusDegraded  = "degraded"

	SchedulerRunning = "running"
	SchedulerStopped = "stopped"

	Connected    = "connected"
	Disconnected = "disconnected"
)

// CustomerDetail is a customer with their latest orders.
type CustomerDetail struct {
	*models.Customer
	Orders []*models.Order `json:"recent_orders"`
}

// OrderDetail is an order with its event history.
type OrderDetail struct {
	*models.Order
	Events []*models.OrderEvent `json:"events"`
}

// SendRequest is an agent-composed outbound message.
type SendRequest struct {
	Type         string   `json:"type" validate:"required,oneof=text image document video audio template buttons"`
	Text         string   `json:"text" validate:"required_if=Type text,required_if=Type buttons,max=4096"`
	MediaURL     string   `json:"media_url" validate:"omitempty,url"`
	Caption      string   `json:"caption" validate:"max=1024"`
	Filename     string   `json:"filename"`
	TemplateName string   `json:"template_name" validate:"required_if=Type template"`
	Language     string   `json:"language"`
	Params       []string `json:"params"`
	Buttons      []string `json:"buttons" validate:"max=3"`
}

// RefundRequest refunds all or part of a paid order; zero amount refunds the
// remaining balance.
type RefundRequest struct {
	Amount int64  `json:"amount" validate:"gte=0"`
	Reason string `json:"reason" validate:"max=255"`
}

// TrackingResult is the live courier status for an order.
type TrackingResult struct {
	OrderID     string             `json:"order_id"`
	Status      models.OrderStatus `json:"status"`
	TrackingURL string             `json:"tracking_url,omitempty"`
	Tracking    *shipping.Tracking `json:"tracking,omitempty"`
}
