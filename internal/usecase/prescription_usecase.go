package usecase

import (
	"context"
	"io"

	"afyalink/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadPrescriptionInput carries the prescription form fields plus the
// image stream. The image goes to blob storage; only its URL is persisted.
type UploadPrescriptionInput struct {
	PatientName string
	Email       string
	Notes       string
	FileName    string
	ContentType string
	File        io.Reader
}

// ReviewPrescriptionInput is an admin decision on an uploaded prescription.
type ReviewPrescriptionInput struct {
	Status      entity.PrescriptionStatus `json:"status"` // approved or rejected.
	ReviewNotes string                    `json:"review_notes"`
}

// PrescriptionUsecase defines the prescription upload and review workflow.
type PrescriptionUsecase interface {
	// Upload stores the image and creates a pending prescription record.
	Upload(ctx context.Context, userID uuid.UUID, input UploadPrescriptionInput) (*entity.Prescription, error)

	// GetPrescription returns one prescription. Customers can only read
	// their own; admins can read any.
	GetPrescription(ctx context.Context, userID uuid.UUID, isAdmin bool, id string) (*entity.Prescription, error)

	// ListMyPrescriptions returns the caller's uploads, newest first.
	ListMyPrescriptions(ctx context.Context, userID uuid.UUID) ([]*entity.Prescription, error)

	// ListByStatus returns the admin review queue for a status.
	ListByStatus(ctx context.Context, status entity.PrescriptionStatus) ([]*entity.Prescription, error)

	// Review records an admin decision. Reviewing an already-reviewed
	// prescription overwrites the earlier decision.
	Review(ctx context.Context, id string, input ReviewPrescriptionInput) (*entity.Prescription, error)
}
