package impl

import (
	"context"
	"log/slog"

	deliverycontext "afyalink/internal/delivery/context"
	"afyalink/internal/domain/entity"
	domainerrors "afyalink/internal/domain/errors"
	"afyalink/internal/domain/repository"
	"afyalink/internal/domain/service"
	"afyalink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultRecentOrdersLimit = 50

// orderService implements the OrderUsecase interface.
type orderService struct {
	cartRepo        repository.CartRepository
	orderRepo       repository.OrderRepository
	checkoutManager repository.CheckoutManager
	paymentGateway  service.PaymentGateway
	eventPublisher  service.EventPublisher
	receiptService  service.ReceiptService
	logger          *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	CartRepo        repository.CartRepository
	OrderRepo       repository.OrderRepository
	CheckoutManager repository.CheckoutManager
	PaymentGateway  service.PaymentGateway
	EventPublisher  service.EventPublisher
	ReceiptService  service.ReceiptService
	Logger          *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		cartRepo:        params.CartRepo,
		orderRepo:       params.OrderRepo,
		checkoutManager: params.CheckoutManager,
		paymentGateway:  params.PaymentGateway,
		eventPublisher:  params.EventPublisher,
		receiptService:  params.ReceiptService,
		logger:          params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout converts the cart into an order. Sequence: read the cart, fail on
// empty, settle the initial status from the payment method, then hand the
// order and the cart clear to the CheckoutManager as one atomic batch.
// Payment confirmation is checked before any write; an unconfirmed or
// cancelled M-PESA intent means no order document ever exists.
func (srv *orderService) Checkout(ctx context.Context, userID uuid.UUID, input usecase.CheckoutInput) (*entity.Order, error) {
	if !input.PaymentMethod.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown payment method")
	}

	items, err := srv.cartRepo.ListItems(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}
	if len(items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	status, err := srv.initialStatus(input)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		UserID:          userID,
		Items:           items,
		TotalCents:      entity.CartTotalCents(items),
		Status:          status,
		PaymentMethod:   input.PaymentMethod,
		ShippingAddress: input.ShippingAddress,
	}

	orderID, err := srv.checkoutManager.PlaceOrder(ctx, userID, order)
	if err != nil {
		srv.log(ctx).Error("Checkout failed",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to place order")
	}
	order.ID = orderID

	srv.log(ctx).Info("Order placed",
		slog.String("order_id", orderID),
		slog.String("status", order.Status.String()),
		slog.Int64("total_cents", order.TotalCents),
	)

	srv.publishEvent(ctx, &service.StoreEvent{
		Type:       service.EventTypeOrderPlaced,
		UserID:     userID.String(),
		OrderID:    orderID,
		Status:     order.Status.String(),
		TotalCents: order.TotalCents,
	})

	return order, nil
}

// initialStatus maps the payment method to the order's starting status.
// M-PESA orders require a confirmed intent and start as Paid; cash on
// delivery starts as Pending.
func (srv *orderService) initialStatus(input usecase.CheckoutInput) (entity.OrderStatus, error) {
	if input.PaymentMethod == entity.PaymentMethodCashOnDelivery {
		return entity.OrderStatusPending, nil
	}

	if input.PaymentIntentID == "" {
		return "", domainerrors.ErrPaymentNotConfirmed.WithDetails("no payment intent supplied")
	}

	intent, ok := srv.paymentGateway.Find(input.PaymentIntentID)
	if !ok {
		return "", domainerrors.ErrPaymentNotConfirmed.WithDetails("unknown payment intent")
	}
	if intent.State == entity.PaymentStateCancelled {
		return "", domainerrors.ErrPaymentCancelled
	}
	if !srv.paymentGateway.Confirmed(input.PaymentIntentID) {
		return "", domainerrors.ErrPaymentNotConfirmed
	}

	return entity.OrderStatusPaid, nil
}

// GetOrder returns one order, enforcing ownership for non-admins.
func (srv *orderService) GetOrder(ctx context.Context, userID uuid.UUID, isAdmin bool, orderID string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if !isAdmin && order.UserID != userID {
		// Hide the order's existence from non-owners.
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// ListMyOrders returns the caller's orders, newest first.
func (srv *orderService) ListMyOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// ListRecentOrders returns the newest orders across all users.
func (srv *orderService) ListRecentOrders(ctx context.Context, limit int) ([]*entity.Order, error) {
	if limit <= 0 {
		limit = defaultRecentOrdersLimit
	}

	orders, err := srv.orderRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent orders")
	}

	return orders, nil
}

// UpdateOrderStatus moves an order along the status machine. The transition
// is validated against the current stored status before any write, so a
// terminal order can never move again.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, orderID string, next entity.OrderStatus) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			"cannot move from " + order.Status.String() + " to " + next.String(),
		)
	}

	if err := srv.orderRepo.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}
	order.Status = next

	srv.log(ctx).Info("Order status updated",
		slog.String("order_id", orderID),
		slog.String("status", next.String()),
	)

	srv.publishEvent(ctx, &service.StoreEvent{
		Type:    service.EventTypeOrderStatusChanged,
		UserID:  order.UserID.String(),
		OrderID: orderID,
		Status:  next.String(),
	})

	return order, nil
}

// GenerateReceipt renders the order's receipt QR code.
func (srv *orderService) GenerateReceipt(ctx context.Context, userID uuid.UUID, isAdmin bool, orderID string) ([]byte, error) {
	order, err := srv.GetOrder(ctx, userID, isAdmin, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.receiptService.GenerateOrderReceiptQR(order.ID, order.TotalCents)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate receipt QR")
	}

	return png, nil
}

// publishEvent sends a store event best-effort. The write already
// committed; a publish failure is logged and swallowed.
func (srv *orderService) publishEvent(ctx context.Context, event *service.StoreEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := srv.eventPublisher.PublishStoreEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish store event",
			slog.String("type", event.Type),
			slog.Any("error", err),
		)
	}
}
