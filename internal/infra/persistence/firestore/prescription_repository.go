package firestore

import (
	"context"
	"time"

	"afyalink/internal/domain/entity"
	"afyalink/internal/domain/repository"
	"afyalink/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// prescriptionRepository implements repository.PrescriptionRepository.
type prescriptionRepository struct {
	client *firestore.Client
}

// NewPrescriptionRepository is the constructor for prescriptionRepository.
func NewPrescriptionRepository(client *firestore.Client) repository.PrescriptionRepository {
	return &prescriptionRepository{client: client}
}

// Create persists a new prescription and backfills the generated id.
func (repo *prescriptionRepository) Create(ctx context.Context, prescription *entity.Prescription) error {
	ref := repo.client.Collection(prescriptionsCollection).NewDoc()

	if _, err := ref.Create(ctx, fromPrescriptionDomain(prescription)); err != nil {
		return errors.Wrap(mapStoreError(err, nil), "failed to create prescription")
	}
	prescription.ID = ref.ID

	return nil
}

// FindByID retrieves a single prescription.
func (repo *prescriptionRepository) FindByID(ctx context.Context, id string) (*entity.Prescription, error) {
	snap, err := repo.client.Collection(prescriptionsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrPrescriptionNotFound
		}

		return nil, errors.Wrap(mapStoreError(err, nil), "failed to find prescription by id")
	}

	return toPrescriptionDomain(snap)
}

// ListByUser returns the user's prescriptions, newest upload first.
func (repo *prescriptionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Prescription, error) {
	iter := repo.client.Collection(prescriptionsCollection).
		Where("userId", "==", userID.String()).
		OrderBy("uploadedAt", firestore.Desc).
		Documents(ctx)

	return repo.collect(iter, "failed to list prescriptions by user")
}

// ListByStatus returns prescriptions in the given status, newest first.
func (repo *prescriptionRepository) ListByStatus(ctx context.Context, status entity.PrescriptionStatus) ([]*entity.Prescription, error) {
	iter := repo.client.Collection(prescriptionsCollection).
		Where("status", "==", string(status)).
		OrderBy("uploadedAt", firestore.Desc).
		Documents(ctx)

	return repo.collect(iter, "failed to list prescriptions by status")
}

// UpdateReview overwrites the decision fields. There is no terminal-state
// guard: repeated reviews overwrite the previous decision silently, matching
// the storefront's observed behavior.
func (repo *prescriptionRepository) UpdateReview(ctx context.Context, id string, status entity.PrescriptionStatus, reviewNotes string) error {
	ref := repo.client.Collection(prescriptionsCollection).Doc(id)

	_, err := ref.Update(ctx, []firestore.Update{
		{Path: "status", Value: string(status)},
		{Path: "reviewNotes", Value: reviewNotes},
		{Path: "reviewedAt", Value: time.Now().UTC()},
	})
	if err != nil {
		return errors.Wrap(mapStoreError(err, repository.ErrPrescriptionNotFound), "failed to update prescription review")
	}

	return nil
}

func (repo *prescriptionRepository) collect(iter *firestore.DocumentIterator, wrapMsg string) ([]*entity.Prescription, error) {
	defer iter.Stop()

	var prescriptions []*entity.Prescription
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(mapStoreError(err, nil), wrapMsg)
		}

		prescription, err := toPrescriptionDomain(snap)
		if err != nil {
			return nil, err
		}
		prescriptions = append(prescriptions, prescription)
	}

	return prescriptions, nil
}

func fromPrescriptionDomain(prescription *entity.Prescription) *model.PrescriptionDoc {
	return &model.PrescriptionDoc{
		UserID:               prescription.UserID.String(),
		PatientName:          prescription.PatientName,
		Email:                prescription.Email,
		PrescriptionImageURL: prescription.ImageURL,
		Notes:                prescription.Notes,
		Status:               string(prescription.Status),
		ReviewNotes:          prescription.ReviewNotes,
		UploadedAt:           prescription.UploadedAt,
		ReviewedAt:           prescription.ReviewedAt,
	}
}

func toPrescriptionDomain(snap *firestore.DocumentSnapshot) (*entity.Prescription, error) {
	var doc model.PrescriptionDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode prescription document")
	}

	userID, err := uuid.Parse(doc.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "prescription document carries an invalid user id")
	}

	return &entity.Prescription{
		ID:          snap.Ref.ID,
		UserID:      userID,
		PatientName: doc.PatientName,
		Email:       doc.Email,
		ImageURL:    doc.PrescriptionImageURL,
		Notes:       doc.Notes,
		Status:      entity.PrescriptionStatus(doc.Status),
		ReviewNotes: doc.ReviewNotes,
		UploadedAt:  doc.UploadedAt,
		ReviewedAt:  doc.ReviewedAt,
	}, nil
}
