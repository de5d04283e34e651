package model

import "time"

// FollowUpDoc mirrors a document in the 'followUps' collection.
type FollowUpDoc struct {
	UserID  string    `firestore:"userId"`
	Email   string    `firestore:"email"`
	Message string    `firestore:"message"`
	SentAt  time.Time `firestore:"sentAt,serverTimestamp"`
}
