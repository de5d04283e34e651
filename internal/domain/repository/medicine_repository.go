package repository

import (
	"context"
	"errors"

	"afyalink/internal/domain/entity"
)

// ErrMedicineNotFound is returned when a medicine is not found.
var ErrMedicineNotFound = errors.New("medicine not found")

// MedicineRepository manages the medicines catalog collection.
type MedicineRepository interface {
	// FindByID retrieves a single medicine, or ErrMedicineNotFound.
	FindByID(ctx context.Context, id string) (*entity.Medicine, error)

	// List returns the whole catalog, optionally filtered by category.
	// An empty category means no filter.
	List(ctx context.Context, category string) ([]*entity.Medicine, error)

	// Create persists a new medicine.
	Create(ctx context.Context, medicine *entity.Medicine) error

	// Update overwrites an existing medicine document.
	Update(ctx context.Context, medicine *entity.Medicine) error

	// Delete removes a medicine from the catalog.
	Delete(ctx context.Context, id string) error

	// AdjustStock atomically adds delta (which may be negative) to the
	// medicine's stock counter.
	AdjustStock(ctx context.Context, id string, delta int) error
}
