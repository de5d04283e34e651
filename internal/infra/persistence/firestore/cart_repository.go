package firestore

import (
	"context"

	"afyalink/internal/domain/entity"
	"afyalink/internal/domain/repository"
	"afyalink/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// cartRepository implements repository.CartRepository on the per-user
// cartItems sub-collection.
type cartRepository struct {
	client *firestore.Client
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(client *firestore.Client) repository.CartRepository {
	return &cartRepository{client: client}
}

// AddItem merges the new quantity into the line keyed by the medicine id.
// The read and the write run inside one store transaction, so two rapid adds
// of the same medicine serialize into a single line with the summed quantity.
func (repo *cartRepository) AddItem(ctx context.Context, userID uuid.UUID, item *entity.CartItem) error {
	if item.MedicineID == "" {
		return errors.New("medicine id is required")
	}
	if item.Quantity < 1 {
		return errors.New("quantity must be at least 1")
	}

	ref := cartCollection(repo.client, userID.String()).Doc(item.MedicineID)

	err := repo.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil && !isNotFound(err) {
			return err
		}
		if err == nil && snap.Exists() {
			return tx.Update(ref, []firestore.Update{
				{Path: "quantity", Value: firestore.Increment(item.Quantity)},
			})
		}

		return tx.Set(ref, fromCartItemDomain(item))
	})
	if err != nil {
		return errors.Wrap(mapStoreError(err, nil), "failed to add cart item")
	}

	return nil
}

// SetQuantity overwrites the quantity of an existing line.
func (repo *cartRepository) SetQuantity(ctx context.Context, userID uuid.UUID, medicineID string, quantity int) error {
	ref := cartCollection(repo.client, userID.String()).Doc(medicineID)

	_, err := ref.Update(ctx, []firestore.Update{
		{Path: "quantity", Value: quantity},
	})
	if err != nil {
		return errors.Wrap(mapStoreError(err, repository.ErrCartItemNotFound), "failed to set cart quantity")
	}

	return nil
}

// RemoveItem deletes the line. Firestore deletes are idempotent; removing an
// absent line succeeds.
func (repo *cartRepository) RemoveItem(ctx context.Context, userID uuid.UUID, medicineID string) error {
	ref := cartCollection(repo.client, userID.String()).Doc(medicineID)

	if _, err := ref.Delete(ctx); err != nil {
		return errors.Wrap(mapStoreError(err, nil), "failed to remove cart item")
	}

	return nil
}

// FindItem retrieves a single line.
func (repo *cartRepository) FindItem(ctx context.Context, userID uuid.UUID, medicineID string) (*entity.CartItem, error) {
	snap, err := cartCollection(repo.client, userID.String()).Doc(medicineID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(mapStoreError(err, nil), "failed to find cart item")
	}

	return toCartItemDomain(snap)
}

// ListItems returns all lines of the user's cart.
func (repo *cartRepository) ListItems(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error) {
	iter := cartCollection(repo.client, userID.String()).Documents(ctx)
	defer iter.Stop()

	var items []*entity.CartItem
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(mapStoreError(err, nil), "failed to list cart items")
		}

		item, err := toCartItemDomain(snap)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func fromCartItemDomain(item *entity.CartItem) *model.CartItemDoc {
	return &model.CartItemDoc{
		MedicineID: item.MedicineID,
		Name:       item.Name,
		Price:      item.PriceCents,
		ImageURL:   item.ImageURL,
		Quantity:   item.Quantity,
	}
}

func toCartItemDomain(snap *firestore.DocumentSnapshot) (*entity.CartItem, error) {
	var doc model.CartItemDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode cart item document")
	}

	return &entity.CartItem{
		MedicineID: snap.Ref.ID,
		Name:       doc.Name,
		PriceCents: doc.Price,
		ImageURL:   doc.ImageURL,
		Quantity:   doc.Quantity,
	}, nil
}
