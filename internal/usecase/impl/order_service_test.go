package impl

import (
	"context"
	"testing"

	"afyalink/internal/domain/entity"
	domainerrors "afyalink/internal/domain/errors"
	"afyalink/internal/domain/repository"
	"afyalink/internal/domain/service"
	mockRepo "afyalink/internal/mocks/repository"
	mockSvc "afyalink/internal/mocks/service"
	"afyalink/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceMocks struct {
	cartRepo        *mockRepo.MockCartRepository
	orderRepo       *mockRepo.MockOrderRepository
	checkoutManager *mockRepo.MockCheckoutManager
	paymentGateway  *mockSvc.MockPaymentGateway
	eventPublisher  *mockSvc.MockEventPublisher
	receiptService  *mockSvc.MockReceiptService
}

func newOrderService(t *testing.T) (usecase.OrderUsecase, *orderServiceMocks) {
	t.Helper()

	m := &orderServiceMocks{
		cartRepo:        mockRepo.NewMockCartRepository(t),
		orderRepo:       mockRepo.NewMockOrderRepository(t),
		checkoutManager: mockRepo.NewMockCheckoutManager(t),
		paymentGateway:  mockSvc.NewMockPaymentGateway(t),
		eventPublisher:  mockSvc.NewMockEventPublisher(t),
		receiptService:  mockSvc.NewMockReceiptService(t),
	}
	svc := NewOrderService(OrderServiceParams{
		CartRepo:        m.cartRepo,
		OrderRepo:       m.orderRepo,
		CheckoutManager: m.checkoutManager,
		PaymentGateway:  m.paymentGateway,
		EventPublisher:  m.eventPublisher,
		ReceiptService:  m.receiptService,
		Logger:          testLogger(),
	})

	return svc, m
}

func TestOrderService_Checkout_EmptyCartCreatesNothing(t *testing.T) {
	svc, m := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.cartRepo.EXPECT().
		ListItems(ctx, userID).
		Return(nil, nil)

	// No PlaceOrder expectation: an empty cart must fail before any write.
	order, err := svc.Checkout(ctx, userID, usecase.CheckoutInput{
		PaymentMethod: entity.PaymentMethodCashOnDelivery,
	})
	require.ErrorIs(t, err, domainerrors.ErrEmptyCart)
	assert.Nil(t, order)
}

func TestOrderService_Checkout_CashOnDeliveryStartsPending(t *testing.T) {
	svc, m := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.cartRepo.EXPECT().
		ListItems(ctx, userID).
		Return(testCartItems(), nil)

	m.checkoutManager.EXPECT().
		PlaceOrder(ctx, userID, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, _ uuid.UUID, order *entity.Order) {
			assert.Equal(t, entity.OrderStatusPending, order.Status)
			assert.Equal(t, int64(2048), order.TotalCents)
			assert.Len(t, order.Items, 2)
		}).
		Return("order-1", nil)

	m.eventPublisher.EXPECT().
		PublishStoreEvent(ctx, mock.AnythingOfType("*service.StoreEvent")).
		Return(nil)

	order, err := svc.Checkout(ctx, userID, usecase.CheckoutInput{
		PaymentMethod: entity.PaymentMethodCashOnDelivery,
		ShippingAddress: entity.ShippingAddress{
			FullName: "Jane Wanjiku",
			Address:  "Moi Avenue, Nairobi",
			Phone:    "0712345678",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, int64(2048), order.TotalCents)
}

func TestOrderService_Checkout_MpesaConfirmedStartsPaid(t *testing.T) {
	svc, m := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.cartRepo.EXPECT().
		ListItems(ctx, userID).
		Return(testCartItems(), nil)

	m.paymentGateway.EXPECT().
		Find("intent-1").
		Return(&entity.PaymentIntent{ID: "intent-1", State: entity.PaymentStateSucceeded}, true)

	m.paymentGateway.EXPECT().
		Confirmed("intent-1").
		Return(true)

	m.checkoutManager.EXPECT().
		PlaceOrder(ctx, userID, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, _ uuid.UUID, order *entity.Order) {
			assert.Equal(t, entity.OrderStatusPaid, order.Status)
		}).
		Return("order-2", nil)

	m.eventPublisher.EXPECT().
		PublishStoreEvent(ctx, mock.AnythingOfType("*service.StoreEvent")).
		Return(nil)

	order, err := svc.Checkout(ctx, userID, usecase.CheckoutInput{
		PaymentMethod:   entity.PaymentMethodMpesa,
		PaymentIntentID: "intent-1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaid, order.Status)
}

func TestOrderService_Checkout_MpesaUnconfirmedFails(t *testing.T) {
	svc, m := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.cartRepo.EXPECT().
		ListItems(ctx, userID).
		Return(testCartItems(), nil)

	m.paymentGateway.EXPECT().
		Find("intent-1").
		Return(&entity.PaymentIntent{ID: "intent-1", State: entity.PaymentStateProcessing}, true)

	m.paymentGateway.EXPECT().
		Confirmed("intent-1").
		Return(false)

	_, err := svc.Checkout(ctx, userID, usecase.CheckoutInput{
		PaymentMethod:   entity.PaymentMethodMpesa,
		PaymentIntentID: "intent-1",
	})
	require.ErrorIs(t, err, domainerrors.ErrPaymentNotConfirmed)
}

func TestOrderService_Checkout_MpesaCancelledIntentFails(t *testing.T) {
	svc, m := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.cartRepo.EXPECT().
		ListItems(ctx, userID).
		Return(testCartItems(), nil)

	m.paymentGateway.EXPECT().
		Find("intent-1").
		Return(&entity.PaymentIntent{ID: "intent-1", State: entity.PaymentStateCancelled}, true)

	_, err := svc.Checkout(ctx, userID, usecase.CheckoutInput{
		PaymentMethod:   entity.PaymentMethodMpesa,
		PaymentIntentID: "intent-1",
	})
	require.ErrorIs(t, err, domainerrors.ErrPaymentCancelled)
}

func TestOrderService_Checkout_MpesaWithoutIntentFails(t *testing.T) {
	svc, m := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.cartRepo.EXPECT().
		ListItems(ctx, userID).
		Return(testCartItems(), nil)

	_, err := svc.Checkout(ctx, userID, usecase.CheckoutInput{
		PaymentMethod: entity.PaymentMethodMpesa,
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PAYMENT_NOT_CONFIRMED", appErr.ErrorCode())
}

func TestOrderService_Checkout_PublishFailureDoesNotFailCheckout(t *testing.T) {
	svc, m := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.cartRepo.EXPECT().
		ListItems(ctx, userID).
		Return(testCartItems(), nil)

	m.checkoutManager.EXPECT().
		PlaceOrder(ctx, userID, mock.AnythingOfType("*entity.Order")).
		Return("order-3", nil)

	m.eventPublisher.EXPECT().
		PublishStoreEvent(ctx, mock.AnythingOfType("*service.StoreEvent")).
		Return(assert.AnError)

	order, err := svc.Checkout(ctx, userID, usecase.CheckoutInput{
		PaymentMethod: entity.PaymentMethodCashOnDelivery,
	})
	require.NoError(t, err)
	assert.Equal(t, "order-3", order.ID)
}

func TestOrderService_GetOrder_HidesOtherUsersOrders(t *testing.T) {
	svc, m := newOrderService(t)

	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	m.orderRepo.EXPECT().
		FindByID(ctx, "order-1").
		Return(&entity.Order{ID: "order-1", UserID: owner}, nil).
		Twice()

	_, err := svc.GetOrder(ctx, stranger, false, "order-1")
	require.ErrorIs(t, err, domainerrors.ErrOrderNotFound)

	order, err := svc.GetOrder(ctx, stranger, true, "order-1")
	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
}

func TestOrderService_UpdateOrderStatus_LegalTransition(t *testing.T) {
	svc, m := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.orderRepo.EXPECT().
		FindByID(ctx, "order-1").
		Return(&entity.Order{ID: "order-1", UserID: userID, Status: entity.OrderStatusPaid}, nil)

	m.orderRepo.EXPECT().
		UpdateStatus(ctx, "order-1", entity.OrderStatusProcessing).
		Return(nil)

	m.eventPublisher.EXPECT().
		PublishStoreEvent(ctx, mock.MatchedBy(func(event *service.StoreEvent) bool {
			return event.Type == service.EventTypeOrderStatusChanged && event.Status == "Processing"
		})).
		Return(nil)

	order, err := svc.UpdateOrderStatus(ctx, "order-1", entity.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, order.Status)
}

func TestOrderService_UpdateOrderStatus_TerminalOrderRejected(t *testing.T) {
	svc, m := newOrderService(t)

	ctx := context.Background()

	m.orderRepo.EXPECT().
		FindByID(ctx, "order-1").
		Return(&entity.Order{ID: "order-1", Status: entity.OrderStatusDelivered}, nil)

	// No UpdateStatus expectation: an illegal transition writes nothing.
	_, err := svc.UpdateOrderStatus(ctx, "order-1", entity.OrderStatusProcessing)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", appErr.ErrorCode())
}

func TestOrderService_UpdateOrderStatus_SkippingAStageRejected(t *testing.T) {
	svc, m := newOrderService(t)

	ctx := context.Background()

	m.orderRepo.EXPECT().
		FindByID(ctx, "order-1").
		Return(&entity.Order{ID: "order-1", Status: entity.OrderStatusPending}, nil)

	_, err := svc.UpdateOrderStatus(ctx, "order-1", entity.OrderStatusShipped)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", appErr.ErrorCode())
}

func TestOrderService_UpdateOrderStatus_NotFound(t *testing.T) {
	svc, m := newOrderService(t)

	ctx := context.Background()

	m.orderRepo.EXPECT().
		FindByID(ctx, "missing").
		Return(nil, repository.ErrOrderNotFound)

	_, err := svc.UpdateOrderStatus(ctx, "missing", entity.OrderStatusProcessing)
	require.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_GenerateReceipt(t *testing.T) {
	svc, m := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.orderRepo.EXPECT().
		FindByID(ctx, "order-1").
		Return(&entity.Order{ID: "order-1", UserID: userID, TotalCents: 2048}, nil)

	m.receiptService.EXPECT().
		GenerateOrderReceiptQR("order-1", int64(2048)).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := svc.GenerateReceipt(ctx, userID, false, "order-1")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestOrderService_ListRecentOrders_DefaultLimit(t *testing.T) {
	svc, m := newOrderService(t)

	ctx := context.Background()

	m.orderRepo.EXPECT().
		ListRecent(ctx, defaultRecentOrdersLimit).
		Return([]*entity.Order{}, nil)

	orders, err := svc.ListRecentOrders(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
