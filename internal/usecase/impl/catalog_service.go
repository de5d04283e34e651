package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "afyalink/internal/delivery/context"
	"afyalink/internal/domain/entity"
	domainerrors "afyalink/internal/domain/errors"
	"afyalink/internal/domain/repository"
	"afyalink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	medicineRepo repository.MedicineRepository
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	MedicineRepo repository.MedicineRepository
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		medicineRepo: params.MedicineRepo,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validateMedicineInput(input usecase.MedicineInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("medicine name is required")
	}
	if input.PriceCents <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("price must be positive")
	}
	if input.Stock < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("stock cannot be negative")
	}

	return nil
}

// ListMedicines returns the catalog, optionally filtered by category.
func (srv *catalogService) ListMedicines(ctx context.Context, category string) ([]*entity.Medicine, error) {
	medicines, err := srv.medicineRepo.List(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list medicines")
	}

	return medicines, nil
}

// GetMedicine returns one catalog item.
func (srv *catalogService) GetMedicine(ctx context.Context, id string) (*entity.Medicine, error) {
	medicine, err := srv.medicineRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return nil, domainerrors.ErrMedicineNotFound
		}

		return nil, errors.Wrap(err, "failed to find medicine")
	}

	return medicine, nil
}

// CreateMedicine adds a catalog item.
func (srv *catalogService) CreateMedicine(ctx context.Context, input usecase.MedicineInput) (*entity.Medicine, error) {
	if err := validateMedicineInput(input); err != nil {
		return nil, err
	}

	medicine := &entity.Medicine{
		ID:                   uuid.NewString(),
		Name:                 input.Name,
		Description:          input.Description,
		Category:             input.Category,
		PriceCents:           input.PriceCents,
		Stock:                input.Stock,
		ImageURL:             input.ImageURL,
		RequiresPrescription: input.RequiresPrescription,
	}

	if err := srv.medicineRepo.Create(ctx, medicine); err != nil {
		return nil, errors.Wrap(err, "failed to create medicine")
	}

	srv.log(ctx).Info("Medicine created",
		slog.String("medicine_id", medicine.ID),
		slog.String("name", medicine.Name),
	)

	return medicine, nil
}

// UpdateMedicine overwrites a catalog item's writable fields.
func (srv *catalogService) UpdateMedicine(ctx context.Context, id string, input usecase.MedicineInput) (*entity.Medicine, error) {
	if err := validateMedicineInput(input); err != nil {
		return nil, err
	}

	medicine, err := srv.medicineRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return nil, domainerrors.ErrMedicineNotFound
		}

		return nil, errors.Wrap(err, "failed to find medicine")
	}

	medicine.Name = input.Name
	medicine.Description = input.Description
	medicine.Category = input.Category
	medicine.PriceCents = input.PriceCents
	medicine.Stock = input.Stock
	medicine.ImageURL = input.ImageURL
	medicine.RequiresPrescription = input.RequiresPrescription

	if err := srv.medicineRepo.Update(ctx, medicine); err != nil {
		return nil, errors.Wrap(err, "failed to update medicine")
	}

	return medicine, nil
}

// DeleteMedicine removes a catalog item.
func (srv *catalogService) DeleteMedicine(ctx context.Context, id string) error {
	if err := srv.medicineRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return domainerrors.ErrMedicineNotFound
		}

		return errors.Wrap(err, "failed to delete medicine")
	}

	srv.log(ctx).Info("Medicine deleted", slog.String("medicine_id", id))

	return nil
}
