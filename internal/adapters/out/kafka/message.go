package kafka

import (
	"fmt"
	"strings"
	"time"

	"shiptrack/internal/core/ports"
)

// Message is the JSON document written to the notifications topic. A mail
// relay consumes it; Subject and Body are ready to send.
type Message struct {
	Kind           string            `json:"kind"`
	To             string            `json:"to"`
	Subject        string            `json:"subject"`
	Body           string            `json:"body"`
	OrderID        string            `json:"orderId"`
	OrderNumber    string            `json:"orderNumber"`
	TrackingNumber string            `json:"trackingNumber"`
	Status         string            `json:"status"`
	Extra          map[string]string `json:"extra,omitempty"`
	OccurredAt     time.Time         `json:"occurredAt"`
}

const signature = "Best regards,\nLogistics Management Team"

// NewMessage renders n into a Message.
func NewMessage(n ports.Notification) Message {
	m := Message{
		Kind:           string(n.Kind),
		To:             n.RecipientEmail,
		OrderID:        n.OrderID.String(),
		OrderNumber:    n.OrderNumber,
		TrackingNumber: n.TrackingNumber,
		Status:         n.Status,
		Extra:          n.Extra,
		OccurredAt:     n.OccurredAt.UTC(),
	}

	var body strings.Builder
	body.WriteString("Dear Customer,\n\n")

	switch n.Kind {
	case ports.OrderConfirmation:
		m.Subject = "Order Confirmation - " + n.OrderNumber
		body.WriteString("Your order has been confirmed!\n\n")
		fmt.Fprintf(&body, "Order Number: %s\n", n.OrderNumber)
		fmt.Fprintf(&body, "Product: %s\n", n.ProductName)
		fmt.Fprintf(&body, "Tracking Number: %s\n", n.TrackingNumber)
		fmt.Fprintf(&body, "Estimated Delivery: %s\n", n.EstimatedDelivery.UTC().Format(time.DateOnly))
		fmt.Fprintf(&body, "Total Amount: $%s\n\n", n.Total.StringFixed(2))
		body.WriteString("You can track your order using the tracking number above.\n\n")
		body.WriteString("Thank you for choosing our logistics service!\n\n")
	default:
		m.Subject = "Order Status Update - " + n.OrderNumber
		body.WriteString("Your order status has been updated!\n\n")
		fmt.Fprintf(&body, "Order Number: %s\n", n.OrderNumber)
		fmt.Fprintf(&body, "New Status: %s\n", n.Status)
		fmt.Fprintf(&body, "Tracking Number: %s\n\n", n.TrackingNumber)
		body.WriteString("You can track your order for real-time updates.\n\n")
	}

	body.WriteString(signature)
	m.Body = body.String()
	return m
}
