package impl

import (
	"context"
	"testing"

	domainerrors "afyalink/internal/domain/errors"
	mockSvc "afyalink/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdviceService_GetAdvice(t *testing.T) {
	advisor := mockSvc.NewMockAdvisor(t)
	svc := NewAdviceService(AdviceServiceParams{
		Advisor: advisor,
		Logger:  testLogger(),
	})

	ctx := context.Background()

	advisor.EXPECT().
		Suggest(ctx, "persistent dry cough").
		Return("Stay hydrated and consider a cough suppressant.", nil)

	advice, err := svc.GetAdvice(ctx, "persistent dry cough")
	require.NoError(t, err)
	assert.Contains(t, advice, "cough suppressant")
}

func TestAdviceService_GetAdvice_EmptySymptomsRejected(t *testing.T) {
	advisor := mockSvc.NewMockAdvisor(t)
	svc := NewAdviceService(AdviceServiceParams{
		Advisor: advisor,
		Logger:  testLogger(),
	})

	_, err := svc.GetAdvice(context.Background(), "   ")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestAdviceService_GetAdvice_AdvisorUnavailable(t *testing.T) {
	advisor := mockSvc.NewMockAdvisor(t)
	svc := NewAdviceService(AdviceServiceParams{
		Advisor: advisor,
		Logger:  testLogger(),
	})

	ctx := context.Background()

	advisor.EXPECT().
		Suggest(ctx, "headache").
		Return("", domainerrors.ErrAdvisorUnavailable)

	_, err := svc.GetAdvice(ctx, "headache")
	require.ErrorIs(t, err, domainerrors.ErrAdvisorUnavailable)
}
