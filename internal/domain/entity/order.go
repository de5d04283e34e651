package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending is the initial status for cash-on-delivery orders.
	OrderStatusPending OrderStatus = "Pending"
	// OrderStatusPaid is the initial status for M-PESA orders whose payment
	// was confirmed before checkout.
	OrderStatusPaid OrderStatus = "Paid"
	// OrderStatusProcessing means the pharmacy is preparing the order.
	OrderStatusProcessing OrderStatus = "Processing"
	// OrderStatusShipped means the order left the pharmacy.
	OrderStatusShipped OrderStatus = "Shipped"
	// OrderStatusDelivered is terminal.
	OrderStatusDelivered OrderStatus = "Delivered"
	// OrderStatusCancelled is terminal.
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status admits no further transitions.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether the admin status machine allows moving
// from s to next. Pending|Paid -> Processing -> Shipped -> Delivered, with
// Cancelled reachable from any non-terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() || !next.IsValid() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}

	switch s {
	case OrderStatusPending, OrderStatusPaid:
		return next == OrderStatusProcessing
	case OrderStatusProcessing:
		return next == OrderStatusShipped
	case OrderStatusShipped:
		return next == OrderStatusDelivered
	default:
		return false
	}
}

// PaymentMethod selects how an order is paid.
type PaymentMethod string

const (
	// PaymentMethodMpesa is the mobile-money STK push flow.
	PaymentMethodMpesa PaymentMethod = "MPESA"
	// PaymentMethodCashOnDelivery defers payment to delivery time.
	PaymentMethodCashOnDelivery PaymentMethod = "Cash on Delivery"
)

// IsValid checks if the payment method is a known value.
func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodMpesa || m == PaymentMethodCashOnDelivery
}

// ShippingAddress is the delivery destination captured at checkout.
type ShippingAddress struct {
	FullName string `json:"full_name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

// Order is created exactly once, atomically, from the user's cart at
// checkout. Items are a value copy of the cart lines at that instant; only
// the status mutates afterwards, through admin action. Orders are never
// deleted.
type Order struct {
	ID              string          `json:"id"`               // Document id in the `orders` collection.
	UserID          uuid.UUID       `json:"user_id"`          // Owner of the order.
	Items           []*CartItem     `json:"items"`            // Immutable snapshot of the cart at checkout time.
	TotalCents      int64           `json:"total_cents"`      // Sum of price*quantity over Items, integer minor units.
	Status          OrderStatus     `json:"status"`           // Current lifecycle state.
	PaymentMethod   PaymentMethod   `json:"payment_method"`   // How the order is paid.
	ShippingAddress ShippingAddress `json:"shipping_address"` // Where to deliver.
	CreatedAt       time.Time       `json:"created_at"`       // Set by the store at creation.
}
