package model

import "time"

// MedicineDoc mirrors a document in the 'medicines' collection.
type MedicineDoc struct {
	Name                 string    `firestore:"name"`
	Description          string    `firestore:"description"`
	Category             string    `firestore:"category"`
	Price                int64     `firestore:"price"`
	Stock                int       `firestore:"stock"`
	ImageURL             string    `firestore:"imageUrl"`
	RequiresPrescription bool      `firestore:"requiresPrescription"`
	CreatedAt            time.Time `firestore:"createdAt,serverTimestamp"`
	UpdatedAt            time.Time `firestore:"updatedAt,serverTimestamp"`
}
