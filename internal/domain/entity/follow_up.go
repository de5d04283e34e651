package entity

import (
	"time"

	"github.com/google/uuid"
)

// FollowUp is a message sent by the pharmacy to a customer after an order,
// stored in the `followUps` collection.
type FollowUp struct {
	ID      string    `json:"id"`
	UserID  uuid.UUID `json:"user_id"`
	Email   string    `json:"email"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sent_at"`
}

// FollowUpCandidate is an aggregated view for the admin follow-up screen:
// a customer together with their last order date and lifetime spend.
// Computed on demand from the orders collection; there is no live feed.
type FollowUpCandidate struct {
	UserID          uuid.UUID `json:"user_id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	LastOrderAt     time.Time `json:"last_order_at"`
	TotalSpentCents int64     `json:"total_spent_cents"`
	OrderCount      int       `json:"order_count"`
}
