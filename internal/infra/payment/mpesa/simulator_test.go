package mpesa

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"afyalink/config"
	"afyalink/internal/domain/entity"
	domainerrors "afyalink/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulator(delay time.Duration) *simulator {
	cfg := &config.Config{Mpesa: &config.MpesaConfig{PushDelay: delay}}

	return NewSimulator(cfg, slog.Default()).(*simulator)
}

func TestValidPhone(t *testing.T) {
	valid := []string{
		"0712345678",
		"0112345678",
		"254712345678",
		"254112345678",
		"0712 345 678",
		"254733001122",
	}
	for _, phone := range valid {
		assert.True(t, ValidPhone(phone), "expected %q to be valid", phone)
	}

	invalid := []string{
		"12345",
		"",
		"0812345678",
		"071234567",   // too short
		"07123456789", // too long
		"+254712345678",
		"notaphone",
	}
	for _, phone := range invalid {
		assert.False(t, ValidPhone(phone), "expected %q to be invalid", phone)
	}
}

func TestSimulator_InvalidPhoneCreatesNoIntent(t *testing.T) {
	sim := newTestSimulator(10 * time.Millisecond)

	intent, err := sim.InitiatePush(context.Background(), "12345", 2048)
	assert.Nil(t, intent)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_PHONE_NUMBER", appErr.ErrorCode())

	// Nothing to confirm, nothing stored.
	assert.Empty(t, sim.intents)
}

func TestSimulator_ValidPhoneConfirmsOnce(t *testing.T) {
	sim := newTestSimulator(5 * time.Millisecond)

	intent, err := sim.InitiatePush(context.Background(), "0712345678", 2048)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStateProcessing, intent.State)
	assert.False(t, sim.Confirmed(intent.ID))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	settled, err := sim.Await(ctx, intent.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStateSucceeded, settled.State)
	assert.True(t, sim.Confirmed(intent.ID))

	// A second Await returns immediately with the same settled state:
	// the confirmation fires exactly once.
	again, err := sim.Await(ctx, intent.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStateSucceeded, again.State)
}

func TestSimulator_CancelDuringProcessing(t *testing.T) {
	sim := newTestSimulator(time.Minute)

	intent, err := sim.InitiatePush(context.Background(), "0712345678", 1500)
	require.NoError(t, err)

	sim.Cancel(intent.ID)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	settled, err := sim.Await(ctx, intent.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStateCancelled, settled.State)

	// A cancelled intent never confirms, even after the original delay
	// would have elapsed.
	assert.False(t, sim.Confirmed(intent.ID))
}

func TestSimulator_CancelAfterSuccessIsNoop(t *testing.T) {
	sim := newTestSimulator(time.Millisecond)

	intent, err := sim.InitiatePush(context.Background(), "254712345678", 999)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err = sim.Await(ctx, intent.ID)
	require.NoError(t, err)

	sim.Cancel(intent.ID)
	assert.True(t, sim.Confirmed(intent.ID))
}

func TestSimulator_AwaitHonorsContext(t *testing.T) {
	sim := newTestSimulator(time.Minute)

	intent, err := sim.InitiatePush(context.Background(), "0712345678", 100)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	_, err = sim.Await(ctx, intent.ID)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSimulator_RejectsNonPositiveAmount(t *testing.T) {
	sim := newTestSimulator(time.Millisecond)

	_, err := sim.InitiatePush(context.Background(), "0712345678", 0)
	assert.Error(t, err)
}
