package impl

import (
	"context"
	"testing"

	"afyalink/internal/domain/entity"
	domainerrors "afyalink/internal/domain/errors"
	mockSvc "afyalink/internal/mocks/service"
	"afyalink/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaymentService(t *testing.T) (usecase.PaymentUsecase, *mockSvc.MockPaymentGateway) {
	t.Helper()

	gateway := mockSvc.NewMockPaymentGateway(t)
	svc := NewPaymentService(PaymentServiceParams{
		Gateway: gateway,
		Logger:  testLogger(),
	})

	return svc, gateway
}

func TestPaymentService_InitiateMpesaPush(t *testing.T) {
	svc, gateway := newPaymentService(t)

	ctx := context.Background()

	gateway.EXPECT().
		InitiatePush(ctx, "0712345678", int64(2048)).
		Return(&entity.PaymentIntent{ID: "intent-1", Phone: "0712345678", AmountCents: 2048, State: entity.PaymentStateProcessing}, nil)

	intent, err := svc.InitiateMpesaPush(ctx, usecase.InitiatePaymentInput{
		Phone:       "0712345678",
		AmountCents: 2048,
	})
	require.NoError(t, err)
	assert.Equal(t, "intent-1", intent.ID)
	assert.Equal(t, entity.PaymentStateProcessing, intent.State)
}

func TestPaymentService_InitiateMpesaPush_InvalidPhonePassesThrough(t *testing.T) {
	svc, gateway := newPaymentService(t)

	ctx := context.Background()

	gateway.EXPECT().
		InitiatePush(ctx, "12345", int64(2048)).
		Return(nil, domainerrors.ErrInvalidPhoneNumber)

	_, err := svc.InitiateMpesaPush(ctx, usecase.InitiatePaymentInput{
		Phone:       "12345",
		AmountCents: 2048,
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidPhoneNumber)
}

func TestPaymentService_GetPaymentStatus_Unknown(t *testing.T) {
	svc, gateway := newPaymentService(t)

	gateway.EXPECT().
		Find("missing").
		Return(nil, false)

	_, err := svc.GetPaymentStatus(context.Background(), "missing")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}

func TestPaymentService_CancelPayment(t *testing.T) {
	svc, gateway := newPaymentService(t)

	processing := &entity.PaymentIntent{ID: "intent-1", State: entity.PaymentStateProcessing}
	cancelled := &entity.PaymentIntent{ID: "intent-1", State: entity.PaymentStateCancelled}

	gateway.EXPECT().Find("intent-1").Return(processing, true).Once()
	gateway.EXPECT().Cancel("intent-1").Return()
	gateway.EXPECT().Find("intent-1").Return(cancelled, true).Once()

	intent, err := svc.CancelPayment(context.Background(), "intent-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStateCancelled, intent.State)
}
