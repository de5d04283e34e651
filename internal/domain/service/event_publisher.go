package service

import (
	"context"
)

// Event types published to the stream.
const (
	EventTypeOrderPlaced          = "order.placed"
	EventTypeOrderStatusChanged   = "order.status_changed"
	EventTypePrescriptionReviewed = "prescription.reviewed"
)

// StoreEvent is the payload published after a storefront state change.
// Publishing happens after the store commit and is best-effort; a publish
// failure never unwinds the committed write.
type StoreEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	Type           string `json:"type"`
	UserID         string `json:"user_id"`
	OrderID        string `json:"order_id,omitempty"`
	PrescriptionID string `json:"prescription_id,omitempty"`
	Status         string `json:"status,omitempty"`
	TotalCents     int64  `json:"total_cents,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishStoreEvent publishes a storefront event for async processing
	PublishStoreEvent(ctx context.Context, event *StoreEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
