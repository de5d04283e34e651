package entity

import "time"

// PaymentState is the lifecycle state of a simulated STK push.
//
// The "enter phone number" step lives on the client; gateway-side an intent
// only exists once a valid phone number was submitted, so the first state
// here is Processing. An invalid phone number never creates an intent, it
// is rejected with a validation error.
type PaymentState string

const (
	// PaymentStateProcessing means the push was sent and the simulated
	// confirmation window is running.
	PaymentStateProcessing PaymentState = "processing"
	// PaymentStateSucceeded means the scripted confirmation fired.
	PaymentStateSucceeded PaymentState = "succeeded"
	// PaymentStateCancelled means the payer aborted mid-processing. No side
	// effects; no order may be created from a cancelled intent.
	PaymentStateCancelled PaymentState = "cancelled"
)

// PaymentIntent is a simulated mobile-money push payment. The gateway keeps
// intents in memory only; nothing is persisted for a simulation.
type PaymentIntent struct {
	ID          string       `json:"id"`
	Phone       string       `json:"phone"`
	AmountCents int64        `json:"amount_cents"`
	State       PaymentState `json:"state"`
	CreatedAt   time.Time    `json:"created_at"`
}

// Confirmed reports whether the intent completed successfully.
func (p *PaymentIntent) Confirmed() bool {
	return p.State == PaymentStateSucceeded
}

// MaskedPhone returns the phone number with the middle digits hidden,
// e.g. "0712****78", for receipts and logs.
func (p *PaymentIntent) MaskedPhone() string {
	if len(p.Phone) < 6 {
		return p.Phone
	}

	return p.Phone[:4] + "****" + p.Phone[len(p.Phone)-2:]
}
