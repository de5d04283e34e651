package repository

import (
	"context"
	"errors"

	"afyalink/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPrescriptionNotFound is returned when a prescription is not found.
var ErrPrescriptionNotFound = errors.New("prescription not found")

// PrescriptionRepository manages the prescriptions collection.
type PrescriptionRepository interface {
	// Create persists a new prescription with status pending.
	Create(ctx context.Context, prescription *entity.Prescription) error

	// FindByID retrieves a single prescription, or ErrPrescriptionNotFound.
	FindByID(ctx context.Context, id string) (*entity.Prescription, error)

	// ListByUser returns the user's prescriptions, newest upload first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Prescription, error)

	// ListByStatus returns prescriptions in the given status, newest first.
	// Used by the admin review queue.
	ListByStatus(ctx context.Context, status entity.PrescriptionStatus) ([]*entity.Prescription, error)

	// UpdateReview overwrites status, review notes and the review timestamp.
	// Repeated reviews overwrite silently; see the prescription entity.
	UpdateReview(ctx context.Context, id string, status entity.PrescriptionStatus, reviewNotes string) error
}
