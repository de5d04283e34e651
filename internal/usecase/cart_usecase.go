package usecase

import (
	"context"

	"afyalink/internal/domain/entity"

	"github.com/google/uuid"
)

// AddCartItemInput identifies the medicine to add and how many units.
type AddCartItemInput struct {
	MedicineID string `json:"medicine_id"`
	Quantity   int    `json:"quantity"`
}

// CartOutput is the cart view returned to the storefront: the lines plus
// the integer total, computed server-side.
type CartOutput struct {
	Items      []*entity.CartItem
	TotalCents int64
}

// CartUsecase defines cart operations. All of them act on the calling
// user's own cart; there is no cross-user cart access.
type CartUsecase interface {
	// AddItem adds a medicine to the cart, merging with an existing line
	// for the same medicine by summing quantities.
	AddItem(ctx context.Context, userID uuid.UUID, input AddCartItemInput) error

	// UpdateQuantity sets the quantity of an existing line. A quantity
	// below 1 removes the line entirely.
	UpdateQuantity(ctx context.Context, userID uuid.UUID, medicineID string, quantity int) error

	// RemoveItem deletes a line. Removing an absent line succeeds.
	RemoveItem(ctx context.Context, userID uuid.UUID, medicineID string) error

	// GetCart returns the cart lines and total.
	GetCart(ctx context.Context, userID uuid.UUID) (*CartOutput, error)
}
