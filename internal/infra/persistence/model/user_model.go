// Package model contains the document shapes persisted to Firestore.
// Field names match the collections the legacy storefront wrote, so both
// systems can read the same project during migration.
package model

import "time"

// UserDoc mirrors a document in the 'users' collection. The document id is
// the account UUID; the cart lives in the 'cartItems' sub-collection below it.
type UserDoc struct {
	Email        string    `firestore:"email"`
	Name         string    `firestore:"name"`
	PasswordHash string    `firestore:"passwordHash"`
	Role         string    `firestore:"role"`
	CreatedAt    time.Time `firestore:"createdAt,serverTimestamp"`
	UpdatedAt    time.Time `firestore:"updatedAt,serverTimestamp"`
}
