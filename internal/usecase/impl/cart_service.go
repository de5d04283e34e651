// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "afyalink/internal/delivery/context"
	domainerrors "afyalink/internal/domain/errors"
	"afyalink/internal/domain/entity"
	"afyalink/internal/domain/repository"
	"afyalink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo     repository.CartRepository
	medicineRepo repository.MedicineRepository
	logger       *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo     repository.CartRepository
	MedicineRepo repository.MedicineRepository
	Logger       *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:     params.CartRepo,
		medicineRepo: params.MedicineRepo,
		logger:       params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddItem adds a medicine to the cart. The price, name and image are
// snapshotted from the catalog at add time; the repository merges the line
// with any existing one for the same medicine.
func (srv *cartService) AddItem(ctx context.Context, userID uuid.UUID, input usecase.AddCartItemInput) error {
	if input.Quantity < 1 {
		return domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	medicine, err := srv.medicineRepo.FindByID(ctx, input.MedicineID)
	if err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return domainerrors.ErrMedicineNotFound
		}

		return errors.Wrap(err, "failed to find medicine")
	}

	item := &entity.CartItem{
		MedicineID: medicine.ID,
		Name:       medicine.Name,
		PriceCents: medicine.PriceCents,
		ImageURL:   medicine.ImageURL,
		Quantity:   input.Quantity,
	}

	if err := srv.cartRepo.AddItem(ctx, userID, item); err != nil {
		return errors.Wrap(err, "failed to add cart item")
	}

	srv.log(ctx).Debug("Cart item added",
		slog.String("medicine_id", medicine.ID),
		slog.Int("quantity", input.Quantity),
	)

	return nil
}

// UpdateQuantity sets the quantity of a line. Anything below 1 removes the
// line instead of leaving a zero-quantity document behind.
func (srv *cartService) UpdateQuantity(ctx context.Context, userID uuid.UUID, medicineID string, quantity int) error {
	if quantity < 1 {
		if err := srv.cartRepo.RemoveItem(ctx, userID, medicineID); err != nil {
			return errors.Wrap(err, "failed to remove cart item")
		}

		return nil
	}

	if err := srv.cartRepo.SetQuantity(ctx, userID, medicineID, quantity); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrNotFound.WithDetails("cart item not found")
		}

		return errors.Wrap(err, "failed to update cart quantity")
	}

	return nil
}

// RemoveItem deletes a line. Removing a line that is already gone succeeds,
// so a double-tap on the delete button is harmless.
func (srv *cartService) RemoveItem(ctx context.Context, userID uuid.UUID, medicineID string) error {
	if err := srv.cartRepo.RemoveItem(ctx, userID, medicineID); err != nil {
		return errors.Wrap(err, "failed to remove cart item")
	}

	return nil
}

// GetCart returns the cart lines with the total computed in integer minor
// units server-side.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartOutput, error) {
	items, err := srv.cartRepo.ListItems(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	return &usecase.CartOutput{
		Items:      items,
		TotalCents: entity.CartTotalCents(items),
	}, nil
}
