package repository

import (
	"context"
	"errors"

	"afyalink/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines read and status-update operations on orders.
// Order creation does not appear here: orders come into existence only
// through the CheckoutManager's atomic batch.
type OrderRepository interface {
	// FindByID retrieves a single order, or ErrOrderNotFound.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// ListByUser returns the user's orders, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// ListRecent returns the newest n orders across all users, for the
	// admin dashboard.
	ListRecent(ctx context.Context, n int) ([]*entity.Order, error)

	// UpdateStatus overwrites the order's status field. Transition legality
	// is enforced by the use case, not here.
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error
}
