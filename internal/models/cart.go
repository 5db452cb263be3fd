package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type CartStatus string

const (
	CartStatusActive    CartStatus = "active"
	CartStatusAbandoned CartStatus = "abandoned"
	CartStatusConverted CartStatus = "converted"
	CartStatusExpired   CartStatus = "expired"
	CartStatusCleared   CartStatus = "cleared"
)

type CartItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	ImageURL  string `json:"image_url,omitempty"`
}

// LineTotal is price times quantity.
func (i CartItem) LineTotal() int64 {
	return i.Price * int64(i.Quantity)
}

// CartItems is stored as a jsonb array.
type CartItems []CartItem

func (c CartItems) Value() (driver.Value, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c)
}

func (c *CartItems) Scan(src any) error {
	data, err := jsonBytes(src)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		*c = CartItems{}
		return nil
	}
	var out CartItems
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("failed to decode cart items: %w", err)
	}
	*c = out
	return nil
}

// Subtotal sums every line.
func (c CartItems) Subtotal() int64 {
	var total int64
	for _, item := range c {
		total += item.LineTotal()
	}
	return total
}

// Count sums quantities.
func (c CartItems) Count() int {
	n := 0
	for _, item := range c {
		n += item.Quantity
	}
	return n
}

// Add merges qty of the product into an existing line or appends a new one.
func (c CartItems) Add(item CartItem) CartItems {
	out := make(CartItems, len(c), len(c)+1)
	copy(out, c)
	for i := range out {
		if out[i].ProductID == item.ProductID {
			out[i].Quantity += item.Quantity
			out[i].Price = item.Price
			return out
		}
	}
	return append(out, item)
}

// Remove drops the line for productID.
func (c CartItems) Remove(productID string) CartItems {
	out := make(CartItems, 0, len(c))
	for _, item := range c {
		if item.ProductID != productID {
			out = append(out, item)
		}
	}
	return out
}

// Cart is the single active basket for a phone.
type Cart struct {
	ID            int64        `db:"id" json:"id"`
	Phone         string       `db:"phone" json:"phone"`
	Items         CartItems    `db:"items" json:"items"`
	Total         int64        `db:"total" json:"total"`
	ItemCount     int          `db:"item_count" json:"item_count"`
	Status        CartStatus   `db:"status" json:"status"`
	ReminderCount int          `db:"reminder_count" json:"reminder_count"`
	Version       int          `db:"version" json:"version"`
	CouponCode    string       `db:"coupon_code" json:"coupon_code,omitempty"`
	LastReminder  sql.NullTime `db:"last_reminder_at" json:"last_reminder_at,omitempty"`
	CreatedAt     time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time    `db:"updated_at" json:"updated_at"`
}

// IdempotencyKey identifies one checkout attempt of this exact cart contents.
func (c *Cart) IdempotencyKey() string {
	return fmt.Sprintf("cart-%d-v%d", c.ID, c.Version)
}

// IsEmpty reports whether the cart has nothing to check out.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}
