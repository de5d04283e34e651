package repository

import (
	"context"

	"afyalink/internal/domain/entity"

	"github.com/google/uuid"
)

// FollowUpRepository manages the followUps collection.
type FollowUpRepository interface {
	// Create persists a new follow-up message.
	Create(ctx context.Context, followUp *entity.FollowUp) error

	// ListByUser returns follow-ups sent to a user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FollowUp, error)
}
