package impl

import (
	"context"
	"log/slog"

	deliverycontext "afyalink/internal/delivery/context"
	"afyalink/internal/domain/entity"
	domainerrors "afyalink/internal/domain/errors"
	"afyalink/internal/domain/service"
	"afyalink/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// paymentService implements the PaymentUsecase interface. It is a thin
// orchestration layer over the gateway; all payment state lives there.
type paymentService struct {
	gateway service.PaymentGateway
	logger  *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	Gateway service.PaymentGateway
	Logger  *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		gateway: params.Gateway,
		logger:  params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// InitiateMpesaPush starts the simulated STK push. Validation failures
// (bad phone, non-positive amount) surface as-is and create no intent.
func (srv *paymentService) InitiateMpesaPush(ctx context.Context, input usecase.InitiatePaymentInput) (*entity.PaymentIntent, error) {
	intent, err := srv.gateway.InitiatePush(ctx, input.Phone, input.AmountCents)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initiate push")
	}

	srv.log(ctx).Info("Payment push initiated",
		slog.String("intent_id", intent.ID),
		slog.String("phone", intent.MaskedPhone()),
		slog.Int64("amount_cents", intent.AmountCents),
	)

	return intent, nil
}

// GetPaymentStatus returns the intent snapshot for polling.
func (srv *paymentService) GetPaymentStatus(ctx context.Context, intentID string) (*entity.PaymentIntent, error) {
	intent, ok := srv.gateway.Find(intentID)
	if !ok {
		return nil, domainerrors.ErrNotFound.WithDetails("payment intent not found")
	}

	return intent, nil
}

// CancelPayment aborts a processing intent. A settled intent is untouched;
// the returned snapshot shows its final state either way.
func (srv *paymentService) CancelPayment(ctx context.Context, intentID string) (*entity.PaymentIntent, error) {
	if _, ok := srv.gateway.Find(intentID); !ok {
		return nil, domainerrors.ErrNotFound.WithDetails("payment intent not found")
	}

	srv.gateway.Cancel(intentID)

	intent, _ := srv.gateway.Find(intentID)

	srv.log(ctx).Info("Payment cancel requested",
		slog.String("intent_id", intentID),
		slog.String("state", string(intent.State)),
	)

	return intent, nil
}
