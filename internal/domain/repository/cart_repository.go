package repository

import (
	"context"
	"errors"

	"afyalink/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartItemNotFound is returned when a cart line is not found.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository manages the per-user cartItems sub-collection.
//
// AddItem must be safe against the lookup-then-write race: two rapid adds of
// the same medicine must end up as one line whose quantity is the sum, not
// two lines. Implementations close the race with the store's transaction
// primitive rather than a read-then-write.
type CartRepository interface {
	// AddItem inserts a new line keyed by the item's medicine id, or
	// atomically increments the quantity of the existing line.
	AddItem(ctx context.Context, userID uuid.UUID, item *entity.CartItem) error

	// SetQuantity overwrites the quantity of an existing line.
	// Quantities below 1 are the caller's concern; see CartUsecase.
	SetQuantity(ctx context.Context, userID uuid.UUID, medicineID string, quantity int) error

	// RemoveItem deletes the line unconditionally. Removing an absent item
	// is not an error.
	RemoveItem(ctx context.Context, userID uuid.UUID, medicineID string) error

	// FindItem retrieves a single line, or ErrCartItemNotFound.
	FindItem(ctx context.Context, userID uuid.UUID, medicineID string) (*entity.CartItem, error)

	// ListItems returns all lines of the user's cart.
	ListItems(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)
}
