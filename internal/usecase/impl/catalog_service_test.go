package impl

import (
	"context"
	"testing"

	"afyalink/internal/domain/entity"
	domainerrors "afyalink/internal/domain/errors"
	"afyalink/internal/domain/repository"
	mockRepo "afyalink/internal/mocks/repository"
	"afyalink/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T) (usecase.CatalogUsecase, *mockRepo.MockMedicineRepository) {
	t.Helper()

	medicineRepo := mockRepo.NewMockMedicineRepository(t)
	svc := NewCatalogService(CatalogServiceParams{
		MedicineRepo: medicineRepo,
		Logger:       testLogger(),
	})

	return svc, medicineRepo
}

func TestCatalogService_ListMedicines_CategoryFilterPassesThrough(t *testing.T) {
	svc, medicineRepo := newCatalogService(t)

	ctx := context.Background()

	medicineRepo.EXPECT().
		List(ctx, "Pain Relief").
		Return([]*entity.Medicine{{ID: "med-1"}}, nil)

	medicines, err := svc.ListMedicines(ctx, "Pain Relief")
	require.NoError(t, err)
	assert.Len(t, medicines, 1)
}

func TestCatalogService_CreateMedicine(t *testing.T) {
	svc, medicineRepo := newCatalogService(t)

	ctx := context.Background()

	medicineRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Medicine")).
		Run(func(_ context.Context, medicine *entity.Medicine) {
			assert.NotEmpty(t, medicine.ID)
			assert.Equal(t, "Amoxicillin 250mg", medicine.Name)
			assert.True(t, medicine.RequiresPrescription)
		}).
		Return(nil)

	medicine, err := svc.CreateMedicine(ctx, usecase.MedicineInput{
		Name:                 "Amoxicillin 250mg",
		Category:             "Antibiotics",
		PriceCents:           1250,
		Stock:                40,
		RequiresPrescription: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1250), medicine.PriceCents)
}

func TestCatalogService_CreateMedicine_Validation(t *testing.T) {
	svc, _ := newCatalogService(t)

	ctx := context.Background()

	tests := []struct {
		name  string
		input usecase.MedicineInput
	}{
		{"missing name", usecase.MedicineInput{PriceCents: 100, Stock: 1}},
		{"zero price", usecase.MedicineInput{Name: "X", PriceCents: 0, Stock: 1}},
		{"negative stock", usecase.MedicineInput{Name: "X", PriceCents: 100, Stock: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateMedicine(ctx, tt.input)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}
}

func TestCatalogService_UpdateMedicine_NotFound(t *testing.T) {
	svc, medicineRepo := newCatalogService(t)

	ctx := context.Background()

	medicineRepo.EXPECT().
		FindByID(ctx, "missing").
		Return(nil, repository.ErrMedicineNotFound)

	_, err := svc.UpdateMedicine(ctx, "missing", usecase.MedicineInput{
		Name:       "X",
		PriceCents: 100,
	})
	require.ErrorIs(t, err, domainerrors.ErrMedicineNotFound)
}

func TestCatalogService_UpdateMedicine_OverwritesFields(t *testing.T) {
	svc, medicineRepo := newCatalogService(t)

	ctx := context.Background()

	medicineRepo.EXPECT().
		FindByID(ctx, "med-1").
		Return(&entity.Medicine{ID: "med-1", Name: "Old", PriceCents: 100, Stock: 1}, nil)

	medicineRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Medicine")).
		Run(func(_ context.Context, medicine *entity.Medicine) {
			assert.Equal(t, "med-1", medicine.ID)
			assert.Equal(t, "New", medicine.Name)
			assert.Equal(t, int64(200), medicine.PriceCents)
		}).
		Return(nil)

	medicine, err := svc.UpdateMedicine(ctx, "med-1", usecase.MedicineInput{
		Name:       "New",
		PriceCents: 200,
		Stock:      5,
	})
	require.NoError(t, err)
	assert.Equal(t, "New", medicine.Name)
}

func TestCatalogService_DeleteMedicine(t *testing.T) {
	svc, medicineRepo := newCatalogService(t)

	ctx := context.Background()

	medicineRepo.EXPECT().
		Delete(ctx, "med-1").
		Return(nil)

	require.NoError(t, svc.DeleteMedicine(ctx, "med-1"))
}

func TestCatalogService_GetMedicine_NotFound(t *testing.T) {
	svc, medicineRepo := newCatalogService(t)

	ctx := context.Background()

	medicineRepo.EXPECT().
		FindByID(ctx, "missing").
		Return(nil, repository.ErrMedicineNotFound)

	_, err := svc.GetMedicine(ctx, "missing")
	require.ErrorIs(t, err, domainerrors.ErrMedicineNotFound)
}
