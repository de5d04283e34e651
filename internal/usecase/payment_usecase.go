package usecase

import (
	"context"

	"afyalink/internal/domain/entity"
)

// InitiatePaymentInput starts a simulated STK push.
type InitiatePaymentInput struct {
	Phone       string `json:"phone"`
	AmountCents int64  `json:"amount_cents"`
}

// PaymentUsecase wraps the payment gateway for the delivery layer. The
// storefront polls for the outcome; nothing is pushed to the client.
type PaymentUsecase interface {
	// InitiateMpesaPush validates the phone number and starts the push.
	// An invalid phone number fails without creating an intent.
	InitiateMpesaPush(ctx context.Context, input InitiatePaymentInput) (*entity.PaymentIntent, error)

	// GetPaymentStatus returns the current intent snapshot.
	GetPaymentStatus(ctx context.Context, intentID string) (*entity.PaymentIntent, error)

	// CancelPayment aborts an in-flight intent. Cancelling a settled intent
	// is a no-op.
	CancelPayment(ctx context.Context, intentID string) (*entity.PaymentIntent, error)
}
