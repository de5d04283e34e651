package usecase

import (
	"context"

	"afyalink/internal/domain/entity"

	"github.com/google/uuid"
)

// SendFollowUpInput is an admin-composed follow-up message to a customer.
type SendFollowUpInput struct {
	UserID  uuid.UUID `json:"user_id"`
	Email   string    `json:"email"`
	Message string    `json:"message"`
}

// FollowUpUsecase defines the post-order follow-up workflow. The candidate
// list is computed from the orders collection on request; there is no
// standing feed.
type FollowUpUsecase interface {
	// ListCandidates aggregates customers from recent orders with their
	// last order date and lifetime spend, for the admin follow-up screen.
	ListCandidates(ctx context.Context, limit int) ([]*entity.FollowUpCandidate, error)

	// SendFollowUp records a follow-up message for a customer.
	SendFollowUp(ctx context.Context, input SendFollowUpInput) (*entity.FollowUp, error)

	// ListMyFollowUps returns follow-ups sent to the caller, newest first.
	ListMyFollowUps(ctx context.Context, userID uuid.UUID) ([]*entity.FollowUp, error)
}
