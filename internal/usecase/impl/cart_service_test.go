package impl

import (
	"context"
	"testing"

	domainerrors "afyalink/internal/domain/errors"
	"afyalink/internal/domain/entity"
	"afyalink/internal/domain/repository"
	mockRepo "afyalink/internal/mocks/repository"
	"afyalink/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartService(t *testing.T) (usecase.CartUsecase, *mockRepo.MockCartRepository, *mockRepo.MockMedicineRepository) {
	t.Helper()

	cartRepo := mockRepo.NewMockCartRepository(t)
	medicineRepo := mockRepo.NewMockMedicineRepository(t)
	service := NewCartService(CartServiceParams{
		CartRepo:     cartRepo,
		MedicineRepo: medicineRepo,
		Logger:       testLogger(),
	})

	return service, cartRepo, medicineRepo
}

func TestCartService_AddItem_SnapshotsCatalogFields(t *testing.T) {
	service, cartRepo, medicineRepo := newCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	medicineRepo.EXPECT().
		FindByID(ctx, "med-1").
		Return(&entity.Medicine{
			ID:         "med-1",
			Name:       "Paracetamol 500mg",
			PriceCents: 599,
			ImageURL:   "https://img.example/med-1.png",
			Stock:      10,
		}, nil)

	cartRepo.EXPECT().
		AddItem(ctx, userID, &entity.CartItem{
			MedicineID: "med-1",
			Name:       "Paracetamol 500mg",
			PriceCents: 599,
			ImageURL:   "https://img.example/med-1.png",
			Quantity:   2,
		}).
		Return(nil)

	err := service.AddItem(ctx, userID, usecase.AddCartItemInput{MedicineID: "med-1", Quantity: 2})
	require.NoError(t, err)
}

func TestCartService_AddItem_RejectsNonPositiveQuantity(t *testing.T) {
	service, _, _ := newCartService(t)

	err := service.AddItem(context.Background(), uuid.New(), usecase.AddCartItemInput{MedicineID: "med-1", Quantity: 0})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCartService_AddItem_UnknownMedicine(t *testing.T) {
	service, _, medicineRepo := newCartService(t)

	ctx := context.Background()
	medicineRepo.EXPECT().
		FindByID(ctx, "missing").
		Return(nil, repository.ErrMedicineNotFound)

	err := service.AddItem(ctx, uuid.New(), usecase.AddCartItemInput{MedicineID: "missing", Quantity: 1})
	require.ErrorIs(t, err, domainerrors.ErrMedicineNotFound)
}

func TestCartService_UpdateQuantity_SetsExistingLine(t *testing.T) {
	service, cartRepo, _ := newCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	cartRepo.EXPECT().
		SetQuantity(ctx, userID, "med-1", 5).
		Return(nil)

	require.NoError(t, service.UpdateQuantity(ctx, userID, "med-1", 5))
}

func TestCartService_UpdateQuantity_BelowOneRemovesLine(t *testing.T) {
	service, cartRepo, _ := newCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	cartRepo.EXPECT().
		RemoveItem(ctx, userID, "med-1").
		Return(nil).
		Twice()

	require.NoError(t, service.UpdateQuantity(ctx, userID, "med-1", 0))
	require.NoError(t, service.UpdateQuantity(ctx, userID, "med-1", -3))
}

func TestCartService_RemoveItem_AbsentLineSucceeds(t *testing.T) {
	service, cartRepo, _ := newCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	// The repository treats deleting an absent line as success, so a repeat
	// removal is harmless.
	cartRepo.EXPECT().
		RemoveItem(ctx, userID, "med-1").
		Return(nil).
		Twice()

	require.NoError(t, service.RemoveItem(ctx, userID, "med-1"))
	require.NoError(t, service.RemoveItem(ctx, userID, "med-1"))
}

func TestCartService_GetCart_ComputesIntegerTotal(t *testing.T) {
	service, cartRepo, _ := newCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	cartRepo.EXPECT().
		ListItems(ctx, userID).
		Return(testCartItems(), nil)

	cart, err := service.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, int64(2048), cart.TotalCents)
}

func TestCartService_GetCart_Empty(t *testing.T) {
	service, cartRepo, _ := newCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	cartRepo.EXPECT().
		ListItems(ctx, userID).
		Return(nil, nil)

	cart, err := service.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, int64(0), cart.TotalCents)
}
