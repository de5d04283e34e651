package impl

import (
	"context"
	"testing"
	"time"

	"afyalink/internal/domain/entity"
	domainerrors "afyalink/internal/domain/errors"
	"afyalink/internal/domain/repository"
	mockRepo "afyalink/internal/mocks/repository"
	"afyalink/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newFollowUpService(t *testing.T) (usecase.FollowUpUsecase, *mockRepo.MockFollowUpRepository, *mockRepo.MockOrderRepository, *mockRepo.MockUserRepository) {
	t.Helper()

	followUpRepo := mockRepo.NewMockFollowUpRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewFollowUpService(FollowUpServiceParams{
		FollowUpRepo: followUpRepo,
		OrderRepo:    orderRepo,
		UserRepo:     userRepo,
		Logger:       testLogger(),
	})

	return svc, followUpRepo, orderRepo, userRepo
}

func TestFollowUpService_ListCandidates_AggregatesPerCustomer(t *testing.T) {
	svc, _, orderRepo, userRepo := newFollowUpService(t)

	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()
	now := time.Now()

	orderRepo.EXPECT().
		ListRecent(ctx, followUpCandidateScanLimit).
		Return([]*entity.Order{
			{ID: "o-3", UserID: alice, TotalCents: 1000, CreatedAt: now},
			{ID: "o-2", UserID: bob, TotalCents: 500, CreatedAt: now.Add(-time.Hour)},
			{ID: "o-1", UserID: alice, TotalCents: 2048, CreatedAt: now.Add(-24 * time.Hour)},
		}, nil)

	userRepo.EXPECT().
		FindByID(ctx, alice).
		Return(&entity.User{ID: alice, Email: "alice@example.com", Name: "Alice"}, nil)

	userRepo.EXPECT().
		FindByID(ctx, bob).
		Return(&entity.User{ID: bob, Email: "bob@example.com", Name: "Bob"}, nil)

	candidates, err := svc.ListCandidates(ctx, 10)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	// Sorted by most recent order first.
	assert.Equal(t, alice, candidates[0].UserID)
	assert.Equal(t, 2, candidates[0].OrderCount)
	assert.Equal(t, int64(3048), candidates[0].TotalSpentCents)
	assert.Equal(t, now, candidates[0].LastOrderAt)

	assert.Equal(t, bob, candidates[1].UserID)
	assert.Equal(t, 1, candidates[1].OrderCount)
	assert.Equal(t, int64(500), candidates[1].TotalSpentCents)
}

func TestFollowUpService_ListCandidates_SkipsDeletedAccounts(t *testing.T) {
	svc, _, orderRepo, userRepo := newFollowUpService(t)

	ctx := context.Background()
	gone := uuid.New()

	orderRepo.EXPECT().
		ListRecent(ctx, followUpCandidateScanLimit).
		Return([]*entity.Order{
			{ID: "o-1", UserID: gone, TotalCents: 500, CreatedAt: time.Now()},
		}, nil)

	userRepo.EXPECT().
		FindByID(ctx, gone).
		Return(nil, repository.ErrUserNotFound)

	candidates, err := svc.ListCandidates(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestFollowUpService_ListCandidates_AppliesLimit(t *testing.T) {
	svc, _, orderRepo, userRepo := newFollowUpService(t)

	ctx := context.Background()
	now := time.Now()

	orders := make([]*entity.Order, 0, 3)
	for i := 0; i < 3; i++ {
		userID := uuid.New()
		orders = append(orders, &entity.Order{
			ID:         uuid.NewString(),
			UserID:     userID,
			TotalCents: 100,
			CreatedAt:  now.Add(-time.Duration(i) * time.Hour),
		})
		userRepo.EXPECT().
			FindByID(ctx, userID).
			Return(&entity.User{ID: userID, Email: "user@example.com"}, nil)
	}

	orderRepo.EXPECT().
		ListRecent(ctx, followUpCandidateScanLimit).
		Return(orders, nil)

	candidates, err := svc.ListCandidates(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, candidates, 2)
}

func TestFollowUpService_SendFollowUp(t *testing.T) {
	svc, followUpRepo, _, userRepo := newFollowUpService(t)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: "alice@example.com"}, nil)

	followUpRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.FollowUp")).
		Run(func(_ context.Context, followUp *entity.FollowUp) {
			assert.Equal(t, userID, followUp.UserID)
			assert.Equal(t, "How is the treatment going?", followUp.Message)
		}).
		Return(nil)

	followUp, err := svc.SendFollowUp(ctx, usecase.SendFollowUpInput{
		UserID:  userID,
		Email:   "alice@example.com",
		Message: "How is the treatment going?",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, followUp.ID)
}

func TestFollowUpService_SendFollowUp_EmptyMessageRejected(t *testing.T) {
	svc, _, _, _ := newFollowUpService(t)

	_, err := svc.SendFollowUp(context.Background(), usecase.SendFollowUpInput{
		UserID:  uuid.New(),
		Message: "   ",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestFollowUpService_SendFollowUp_UnknownUser(t *testing.T) {
	svc, _, _, userRepo := newFollowUpService(t)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	_, err := svc.SendFollowUp(ctx, usecase.SendFollowUpInput{
		UserID:  userID,
		Message: "hello",
	})
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
