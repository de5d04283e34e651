package entity

import (
	"time"

	"github.com/google/uuid"
)

// PrescriptionStatus is the review state of an uploaded prescription.
type PrescriptionStatus string

const (
	// PrescriptionStatusPending awaits an admin decision.
	PrescriptionStatusPending PrescriptionStatus = "pending"
	// PrescriptionStatusApproved was accepted by an admin.
	PrescriptionStatusApproved PrescriptionStatus = "approved"
	// PrescriptionStatusRejected was declined by an admin.
	PrescriptionStatusRejected PrescriptionStatus = "rejected"
)

// IsValid checks if the status is a known value.
func (s PrescriptionStatus) IsValid() bool {
	switch s {
	case PrescriptionStatusPending, PrescriptionStatusApproved, PrescriptionStatusRejected:
		return true
	default:
		return false
	}
}

// IsDecision reports whether the status is a reviewer decision.
func (s PrescriptionStatus) IsDecision() bool {
	return s == PrescriptionStatusApproved || s == PrescriptionStatusRejected
}

// Prescription is an uploaded prescription awaiting admin review.
// Re-review after a decision is permitted and overwrites the previous
// decision; the status machine is deliberately not enforced here.
type Prescription struct {
	ID          string             `json:"id"`           // Document id in the `prescriptions` collection.
	UserID      uuid.UUID          `json:"user_id"`      // Uploader.
	PatientName string             `json:"patient_name"` // Name on the prescription.
	Email       string             `json:"email"`        // Contact email for follow-up.
	ImageURL    string             `json:"image_url"`    // Durable blob-storage URL of the scanned prescription.
	Notes       string             `json:"notes"`        // Free-text notes from the uploader.
	Status      PrescriptionStatus `json:"status"`       // pending, approved or rejected.
	ReviewNotes string             `json:"review_notes"` // Optional notes from the reviewing admin.
	UploadedAt  time.Time          `json:"uploaded_at"`  // Set by the store at creation.
	ReviewedAt  time.Time          `json:"reviewed_at"`  // Zero until the first review; refreshed on every review.
}
