package repository

import (
	"context"

	"afyalink/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutManager executes the one true atomic boundary of the system:
// creating an order document and clearing the user's cart in a single
// all-or-nothing batch. A partial result (order created but cart intact, or
// cart cleared without an order) is a correctness bug, not an error state.
//
// Living in the repository package keeps the use case layer free of
// store-driver types.
type CheckoutManager interface {
	// PlaceOrder atomically creates the given order and deletes every cart
	// line belonging to the user. On any failure before commit, both the
	// cart and the orders collection are left unchanged. Returns the id of
	// the new order document.
	PlaceOrder(ctx context.Context, userID uuid.UUID, order *entity.Order) (string, error)
}
