package models

import (
	"database/sql"
	"fmt"
	"math/rand"
	"regexp"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var orderStatusRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusConfirmed:  1,
	OrderStatusProcessing: 2,
	OrderStatusShipped:    3,
	OrderStatusDelivered:  4,
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	_, ok := orderStatusRank[s]
	return ok || s == OrderStatusCancelled
}

// Terminal reports whether no further transition is possible.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransition allows forward moves along the fulfilment chain and
// cancellation from any non-terminal status.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	if s.Terminal() || !to.Valid() {
		return false
	}
	if to == OrderStatusCancelled {
		return true
	}
	return orderStatusRank[to] > orderStatusRank[s]
}

type PaymentStatus string

const (
	PaymentStatusUnpaid        PaymentStatus = "unpaid"
	PaymentStatusPaid          PaymentStatus = "paid"
	PaymentStatusRefunded      PaymentStatus = "refunded"
	PaymentStatusPartialRefund PaymentStatus = "partial_refund"
)

var orderIDPattern = regexp.MustCompile(`^KAA-\d{6}$`)

// NewOrderID returns a random KAA-###### identifier.
func NewOrderID() string {
	return fmt.Sprintf("KAA-%06d", rand.Intn(1000000))
}

// IsOrderID reports whether s is a canonical order identifier.
func IsOrderID(s string) bool {
	return orderIDPattern.MatchString(s)
}

type Order struct {
	OrderID           string         `db:"order_id" json:"order_id"`
	Phone             string         `db:"phone" json:"phone"`
	CustomerName      string         `db:"customer_name" json:"customer_name"`
	Items             CartItems      `db:"items" json:"items"`
	ItemCount         int            `db:"item_count" json:"item_count"`
	Subtotal          int64          `db:"subtotal" json:"subtotal"`
	ShippingCost      int64          `db:"shipping_cost" json:"shipping_cost"`
	Discount          int64          `db:"discount" json:"discount"`
	Total             int64          `db:"total" json:"total"`
	CouponCode        sql.NullString `db:"coupon_code" json:"coupon_code,omitempty"`
	Status            OrderStatus    `db:"status" json:"status"`
	PaymentStatus     PaymentStatus  `db:"payment_status" json:"payment_status"`
	PaymentID         sql.NullString `db:"payment_id" json:"payment_id,omitempty"`
	PaymentLinkID     sql.NullString `db:"payment_link_id" json:"payment_link_id,omitempty"`
	PaymentLink       sql.NullString `db:"payment_link" json:"payment_link,omitempty"`
	RefundAmount      int64          `db:"refund_amount" json:"refund_amount"`
	IdempotencyKey    sql.NullString `db:"idempotency_key" json:"-"`
	ShippingName      string         `db:"shipping_name" json:"shipping_name"`
	ShippingAddress   string         `db:"shipping_address" json:"shipping_address"`
	ShippingCity      string         `db:"shipping_city" json:"shipping_city"`
	ShippingState     string         `db:"shipping_state" json:"shipping_state"`
	ShippingPincode   string         `db:"shipping_pincode" json:"shipping_pincode"`
	ShipmentID        sql.NullString `db:"shipment_id" json:"shipment_id,omitempty"`
	ShiprocketOrderID sql.NullString `db:"shiprocket_order_id" json:"shiprocket_order_id,omitempty"`
	TrackingID        sql.NullString `db:"tracking_id" json:"tracking_id,omitempty"`
	Courier           sql.NullString `db:"courier" json:"courier,omitempty"`
	TrackingURL       sql.NullString `db:"tracking_url" json:"tracking_url,omitempty"`
	CancelReason      sql.NullString `db:"cancel_reason" json:"cancel_reason,omitempty"`
	ConfirmedAt       sql.NullTime   `db:"confirmed_at" json:"confirmed_at,omitempty"`
	ShippedAt         sql.NullTime   `db:"shipped_at" json:"shipped_at,omitempty"`
	DeliveredAt       sql.NullTime   `db:"delivered_at" json:"delivered_at,omitempty"`
	CancelledAt       sql.NullTime   `db:"cancelled_at" json:"cancelled_at,omitempty"`
	CreatedAt         time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at" json:"updated_at"`
}

// IsPaid reports whether money has been captured for the order.
func (o *Order) IsPaid() bool {
	return o.PaymentStatus == PaymentStatusPaid || o.PaymentStatus == PaymentStatusPartialRefund
}

// NewOrder is the checkout snapshot materialized from a cart.
type NewOrder struct {
	OrderID         string
	Phone           string
	CustomerName    string
	CartID          int64
	CartVersion     int
	Items           CartItems
	Subtotal        int64
	ShippingCost    int64
	Discount        int64
	Total           int64
	CouponCode      string
	ShippingName    string
	ShippingAddress string
	ShippingCity    string
	ShippingState   string
	ShippingPincode string
	IdempotencyKey  string
}

type OrderFilter struct {
	Status        OrderStatus
	PaymentStatus PaymentStatus
	Phone         string
	Search        string
	From          *time.Time
	To            *time.Time
	Limit         int
	Offset        int
}

type OrderStats struct {
	Total      int64 `db:"total" json:"total"`
	Pending    int64 `db:"pending" json:"pending"`
	Confirmed  int64 `db:"confirmed" json:"confirmed"`
	Processing int64 `db:"processing" json:"processing"`
	Shipped    int64 `db:"shipped" json:"shipped"`
	Delivered  int64 `db:"delivered" json:"delivered"`
	Cancelled  int64 `db:"cancelled" json:"cancelled"`
	Paid       int64 `db:"paid" json:"paid"`
	Revenue    int64 `db:"revenue" json:"revenue"`
	Today      int64 `db:"today" json:"today"`
}

type OrderEventType string

const (
	OrderEventCreated   OrderEventType = "created"
	OrderEventPaid      OrderEventType = "paid"
	OrderEventStatus    OrderEventType = "status_changed"
	OrderEventShipped   OrderEventType = "shipped"
	OrderEventDelivered OrderEventType = "delivered"
	OrderEventCancelled OrderEventType = "cancelled"
	OrderEventRefunded  OrderEventType = "refunded"
)

// OrderEvent is an append-only history row for an order.
type OrderEvent struct {
	ID        int64          `db:"id" json:"id"`
	OrderID   string         `db:"order_id" json:"order_id"`
	Event     OrderEventType `db:"event" json:"event"`
	Note      string         `db:"note" json:"note"`
	Data      JSONMap        `db:"data" json:"data,omitempty"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}

// PaymentResult is what a payment callback tells us about an order.
type PaymentResult struct {
	OrderID   string
	PaymentID string
	Amount    int64
	Method    string
}
