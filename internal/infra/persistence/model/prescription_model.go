package model

import "time"

// PrescriptionDoc mirrors a document in the 'prescriptions' collection.
type PrescriptionDoc struct {
	UserID               string    `firestore:"userId"`
	PatientName          string    `firestore:"patientName"`
	Email                string    `firestore:"email"`
	PrescriptionImageURL string    `firestore:"prescriptionImageUrl"`
	Notes                string    `firestore:"notes"`
	Status               string    `firestore:"status"`
	ReviewNotes          string    `firestore:"reviewNotes"`
	UploadedAt           time.Time `firestore:"uploadedAt,serverTimestamp"`
	ReviewedAt           time.Time `firestore:"reviewedAt,omitempty"`
}
