package firestore

import (
	"context"

	"afyalink/internal/domain/entity"
	"afyalink/internal/domain/repository"
	"afyalink/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// medicineRepository implements repository.MedicineRepository on the
// medicines catalog collection.
type medicineRepository struct {
	client *firestore.Client
}

// NewMedicineRepository is the constructor for medicineRepository.
func NewMedicineRepository(client *firestore.Client) repository.MedicineRepository {
	return &medicineRepository{client: client}
}

// FindByID retrieves a single medicine.
func (repo *medicineRepository) FindByID(ctx context.Context, id string) (*entity.Medicine, error) {
	snap, err := repo.client.Collection(medicinesCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrMedicineNotFound
		}

		return nil, errors.Wrap(mapStoreError(err, nil), "failed to find medicine by id")
	}

	return toMedicineDomain(snap)
}

// List returns the catalog, optionally filtered by category.
func (repo *medicineRepository) List(ctx context.Context, category string) ([]*entity.Medicine, error) {
	query := repo.client.Collection(medicinesCollection).Query
	if category != "" {
		query = query.Where("category", "==", category)
	}
	iter := query.OrderBy("name", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var medicines []*entity.Medicine
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(mapStoreError(err, nil), "failed to list medicines")
		}

		medicine, err := toMedicineDomain(snap)
		if err != nil {
			return nil, err
		}
		medicines = append(medicines, medicine)
	}

	return medicines, nil
}

// Create persists a new medicine and backfills the generated id.
func (repo *medicineRepository) Create(ctx context.Context, medicine *entity.Medicine) error {
	ref := repo.client.Collection(medicinesCollection).NewDoc()

	if _, err := ref.Create(ctx, fromMedicineDomain(medicine)); err != nil {
		return errors.Wrap(mapStoreError(err, nil), "failed to create medicine")
	}
	medicine.ID = ref.ID

	return nil
}

// Update overwrites an existing medicine document.
func (repo *medicineRepository) Update(ctx context.Context, medicine *entity.Medicine) error {
	ref := repo.client.Collection(medicinesCollection).Doc(medicine.ID)

	_, err := ref.Update(ctx, []firestore.Update{
		{Path: "name", Value: medicine.Name},
		{Path: "description", Value: medicine.Description},
		{Path: "category", Value: medicine.Category},
		{Path: "price", Value: medicine.PriceCents},
		{Path: "stock", Value: medicine.Stock},
		{Path: "imageUrl", Value: medicine.ImageURL},
		{Path: "requiresPrescription", Value: medicine.RequiresPrescription},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		return errors.Wrap(mapStoreError(err, repository.ErrMedicineNotFound), "failed to update medicine")
	}

	return nil
}

// Delete removes a medicine from the catalog.
func (repo *medicineRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.client.Collection(medicinesCollection).Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(mapStoreError(err, nil), "failed to delete medicine")
	}

	return nil
}

// AdjustStock atomically adds delta to the stock counter.
func (repo *medicineRepository) AdjustStock(ctx context.Context, id string, delta int) error {
	ref := repo.client.Collection(medicinesCollection).Doc(id)

	_, err := ref.Update(ctx, []firestore.Update{
		{Path: "stock", Value: firestore.Increment(delta)},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		return errors.Wrap(mapStoreError(err, repository.ErrMedicineNotFound), "failed to adjust medicine stock")
	}

	return nil
}

func fromMedicineDomain(medicine *entity.Medicine) *model.MedicineDoc {
	return &model.MedicineDoc{
		Name:                 medicine.Name,
		Description:          medicine.Description,
		Category:             medicine.Category,
		Price:                medicine.PriceCents,
		Stock:                medicine.Stock,
		ImageURL:             medicine.ImageURL,
		RequiresPrescription: medicine.RequiresPrescription,
		CreatedAt:            medicine.CreatedAt,
		UpdatedAt:            medicine.UpdatedAt,
	}
}

func toMedicineDomain(snap *firestore.DocumentSnapshot) (*entity.Medicine, error) {
	var doc model.MedicineDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode medicine document")
	}

	return &entity.Medicine{
		ID:                   snap.Ref.ID,
		Name:                 doc.Name,
		Description:          doc.Description,
		Category:             doc.Category,
		PriceCents:           doc.Price,
		Stock:                doc.Stock,
		ImageURL:             doc.ImageURL,
		RequiresPrescription: doc.RequiresPrescription,
		CreatedAt:            doc.CreatedAt,
		UpdatedAt:            doc.UpdatedAt,
	}, nil
}
