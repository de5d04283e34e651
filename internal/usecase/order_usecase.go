package usecase

import (
	"context"

	"afyalink/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutInput captures everything the checkout flow needs besides the
// cart itself, which is read server-side.
type CheckoutInput struct {
	PaymentMethod   entity.PaymentMethod   `json:"payment_method"`
	PaymentIntentID string                 `json:"payment_intent_id"` // Required for M-PESA; must reference a confirmed intent.
	ShippingAddress entity.ShippingAddress `json:"shipping_address"`
}

// OrderUsecase defines the order workflow: the atomic checkout plus reads
// and the admin status machine.
type OrderUsecase interface {
	// Checkout converts the user's cart into an order atomically: the order
	// document and the cart clear commit together or not at all. An empty
	// cart fails before any write. M-PESA checkouts require a confirmed
	// payment intent and start as Paid; cash on delivery starts as Pending.
	Checkout(ctx context.Context, userID uuid.UUID, input CheckoutInput) (*entity.Order, error)

	// GetOrder returns one order. Customers can only read their own orders;
	// admins can read any.
	GetOrder(ctx context.Context, userID uuid.UUID, isAdmin bool, orderID string) (*entity.Order, error)

	// ListMyOrders returns the caller's orders, newest first.
	ListMyOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// ListRecentOrders returns the newest orders across all users for the
	// admin dashboard.
	ListRecentOrders(ctx context.Context, limit int) ([]*entity.Order, error)

	// UpdateOrderStatus moves an order along the admin status machine.
	// Illegal transitions are rejected without writing.
	UpdateOrderStatus(ctx context.Context, orderID string, next entity.OrderStatus) (*entity.Order, error)

	// GenerateReceipt renders the order's receipt QR code as PNG bytes.
	GenerateReceipt(ctx context.Context, userID uuid.UUID, isAdmin bool, orderID string) ([]byte, error)
}
