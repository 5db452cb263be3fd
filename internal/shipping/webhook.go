package shipping

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaapav/kaapav-bot/internal/models"
)

// TrackingUpdate is the tracking push Shiprocket posts to our webhook.
type TrackingUpdate struct {
	AWB            string `json:"awb"`
	OrderID        string `json:"order_id"`
	SROrderID      any    `json:"sr_order_id"`
	CurrentStatus  string `json:"current_status"`
	ShipmentStatus string `json:"shipment_status"`
	Courier        string `json:"courier_name"`
	ETD            string `json:"etd"`
}

func ParseWebhook(body []byte) (*TrackingUpdate, error) {
	var u TrackingUpdate
	if err := json.Unmarshal(body, &u); err != nil {
		return nil, fmt.Errorf("failed to decode shiprocket webhook: %w", err)
	}
	return &u, nil
}

// MapStatus translates a courier status into an order status. Statuses that
// do not move the order return "".
func MapStatus(status string) models.OrderStatus {
	s := strings.ToUpper(strings.TrimSpace(status))
	switch {
	case s == "DELIVERED":
		return models.OrderStatusDelivered
	case s == "SHIPPED", s == "PICKED UP", s == "IN TRANSIT", s == "OUT FOR DELIVERY",
		strings.HasPrefix(s, "IN TRANSIT"), s == "REACHED AT DESTINATION HUB":
		return models.OrderStatusShipped
	case s == "CANCELED", s == "CANCELLED", s == "RTO DELIVERED":
		return models.OrderStatusCancelled
	}
	return ""
}
