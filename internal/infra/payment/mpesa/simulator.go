// Package mpesa implements the PaymentGateway interface as a scripted
// STK push simulation: valid phone in, fixed-delay confirmation out.
// Nothing is persisted and no external gateway is contacted; the checkout
// workflow only ever sees the domain interface, so a real Daraja integration
// can replace this package without touching the order contract.
package mpesa

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	"afyalink/config"
	"afyalink/internal/domain/entity"
	domainerrors "afyalink/internal/domain/errors"
	"afyalink/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Kenyan phone numbers: local 07/01 prefixes, or the international 254 form.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(07|01|2547|2541)\d{8}$`),
	regexp.MustCompile(`^254\d{9}$`),
}

// intentState pairs the intent snapshot with its settlement machinery.
// done is closed exactly once, on success or cancellation.
type intentState struct {
	intent entity.PaymentIntent
	timer  *time.Timer
	done   chan struct{}
}

type simulator struct {
	mu      sync.Mutex
	intents map[string]*intentState
	delay   time.Duration
	logger  *slog.Logger
}

// NewSimulator creates the simulated gateway. The push delay comes from
// config so tests can shrink the confirmation window.
func NewSimulator(cfg *config.Config, logger *slog.Logger) service.PaymentGateway {
	delay := 4 * time.Second
	if cfg.Mpesa != nil && cfg.Mpesa.PushDelay > 0 {
		delay = cfg.Mpesa.PushDelay
	}

	return &simulator{
		intents: make(map[string]*intentState),
		delay:   delay,
		logger:  logger,
	}
}

// ValidPhone reports whether the given string is an accepted Kenyan
// mobile-money number. Whitespace is ignored.
func ValidPhone(phone string) bool {
	cleaned := strings.ReplaceAll(phone, " ", "")
	for _, pattern := range phonePatterns {
		if pattern.MatchString(cleaned) {
			return true
		}
	}

	return false
}

// InitiatePush validates the phone number and starts the scripted
// confirmation window. An invalid number creates no intent: the caller
// stays on the input step with a field-level validation error.
func (s *simulator) InitiatePush(ctx context.Context, phone string, amountCents int64) (*entity.PaymentIntent, error) {
	cleaned := strings.ReplaceAll(phone, " ", "")
	if !ValidPhone(cleaned) {
		return nil, domainerrors.ErrInvalidPhoneNumber
	}
	if amountCents <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("payment amount must be positive")
	}

	id := uuid.New().String()
	state := &intentState{
		intent: entity.PaymentIntent{
			ID:          id,
			Phone:       cleaned,
			AmountCents: amountCents,
			State:       entity.PaymentStateProcessing,
			CreatedAt:   time.Now(),
		},
		done: make(chan struct{}),
	}
	state.timer = time.AfterFunc(s.delay, func() {
		s.settle(id, entity.PaymentStateSucceeded)
	})

	s.mu.Lock()
	s.intents[id] = state
	s.mu.Unlock()

	s.logger.Info("[MpesaSim] STK push sent",
		slog.String("intent_id", id),
		slog.String("phone", state.intent.MaskedPhone()),
		slog.Int64("amount_cents", amountCents),
	)

	snapshot := state.intent

	return &snapshot, nil
}

// Find returns the current snapshot of an intent.
func (s *simulator) Find(intentID string) (*entity.PaymentIntent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.intents[intentID]
	if !ok {
		return nil, false
	}
	snapshot := state.intent

	return &snapshot, true
}

// Await blocks until the intent settles or ctx is done.
func (s *simulator) Await(ctx context.Context, intentID string) (*entity.PaymentIntent, error) {
	s.mu.Lock()
	state, ok := s.intents[intentID]
	s.mu.Unlock()
	if !ok {
		return nil, errors.New("unknown payment intent")
	}

	select {
	case <-state.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	snapshot, _ := s.Find(intentID)

	return snapshot, nil
}

// Cancel aborts a processing intent. The confirmation timer is stopped, so
// a cancelled payment can never flip to succeeded afterwards; there are no
// side effects to undo because the gateway persists nothing.
func (s *simulator) Cancel(intentID string) {
	if s.settle(intentID, entity.PaymentStateCancelled) {
		s.logger.Info("[MpesaSim] STK push cancelled", slog.String("intent_id", intentID))
	}
}

// Confirmed reports whether the intent completed successfully.
func (s *simulator) Confirmed(intentID string) bool {
	intent, ok := s.Find(intentID)

	return ok && intent.Confirmed()
}

// settle moves a processing intent to a final state. It returns false if
// the intent is unknown or already settled, which makes both the timer
// firing after a cancel and a double cancel harmless.
func (s *simulator) settle(intentID string, final entity.PaymentState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.intents[intentID]
	if !ok || state.intent.State != entity.PaymentStateProcessing {
		return false
	}

	state.timer.Stop()
	state.intent.State = final
	close(state.done)

	if final == entity.PaymentStateSucceeded {
		s.logger.Info("[MpesaSim] payment confirmed",
			slog.String("intent_id", intentID),
			slog.String("phone", state.intent.MaskedPhone()),
		)
	}

	return true
}
