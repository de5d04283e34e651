// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. One document per account in the
// `users` collection; the cart lives in a sub-collection underneath it.
type User struct {
	ID           uuid.UUID `json:"id"`         // The unique identifier for the account.
	Email        string    `json:"email"`      // The user's primary contact email, used as the login identifier.
	Name         string    `json:"name"`       // The user's display name.
	PasswordHash string    `json:"-"`          // bcrypt hash of the login password. Never serialized to API responses.
	Role         Role      `json:"role"`       // customer or admin. Assigned at registration from the configured allow-list.
	CreatedAt    time.Time `json:"created_at"` // Timestamp of when this account was created.
	UpdatedAt    time.Time `json:"updated_at"` // Timestamp of the last modification to this account.
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
