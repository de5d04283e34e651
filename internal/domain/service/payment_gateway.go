package service

import (
	"context"

	"afyalink/internal/domain/entity"
)

// PaymentGateway abstracts the mobile-money push-payment flow:
// phone number in, asynchronous confirmation out. The current implementation
// is a scripted simulation, but the checkout workflow only ever sees this
// interface, so a real gateway integration can be substituted without
// touching the order contract.
//
// The gateway performs no persistence. It signals an outcome; acting on a
// confirmed payment (creating the order) is the checkout workflow's job,
// and must happen after confirmation, never before.
type PaymentGateway interface {
	// InitiatePush validates the phone number and starts a push payment for
	// the given amount. An invalid phone number returns a validation error
	// and creates no intent.
	InitiatePush(ctx context.Context, phone string, amountCents int64) (*entity.PaymentIntent, error)

	// Find returns the current snapshot of an intent.
	Find(intentID string) (*entity.PaymentIntent, bool)

	// Await blocks until the intent succeeds, is cancelled, or ctx is done.
	// It returns the final intent snapshot.
	Await(ctx context.Context, intentID string) (*entity.PaymentIntent, error)

	// Cancel aborts an intent that is still processing. Cancelling an
	// already-settled intent is a no-op. A cancelled intent can never
	// confirm afterwards.
	Cancel(intentID string)

	// Confirmed reports whether the intent completed successfully. Checkout
	// consults this before creating a Paid order.
	Confirmed(intentID string) bool
}
