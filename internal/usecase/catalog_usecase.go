package usecase

import (
	"context"

	"afyalink/internal/domain/entity"
)

// MedicineInput carries the writable fields of a catalog item.
type MedicineInput struct {
	Name                 string `json:"name"`
	Description          string `json:"description"`
	Category             string `json:"category"`
	PriceCents           int64  `json:"price_cents"`
	Stock                int    `json:"stock"`
	ImageURL             string `json:"image_url"`
	RequiresPrescription bool   `json:"requires_prescription"`
}

// CatalogUsecase defines catalog reads for the storefront and catalog
// management for admins.
type CatalogUsecase interface {
	// ListMedicines returns the catalog, optionally filtered by category.
	ListMedicines(ctx context.Context, category string) ([]*entity.Medicine, error)

	// GetMedicine returns one catalog item.
	GetMedicine(ctx context.Context, id string) (*entity.Medicine, error)

	// CreateMedicine adds a catalog item.
	CreateMedicine(ctx context.Context, input MedicineInput) (*entity.Medicine, error)

	// UpdateMedicine overwrites a catalog item's writable fields.
	UpdateMedicine(ctx context.Context, id string, input MedicineInput) (*entity.Medicine, error)

	// DeleteMedicine removes a catalog item.
	DeleteMedicine(ctx context.Context, id string) error
}
