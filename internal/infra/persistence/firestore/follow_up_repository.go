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

// followUpRepository implements repository.FollowUpRepository.
type followUpRepository struct {
	client *firestore.Client
}

// NewFollowUpRepository is the constructor for followUpRepository.
func NewFollowUpRepository(client *firestore.Client) repository.FollowUpRepository {
	return &followUpRepository{client: client}
}

// Create persists a new follow-up message and backfills the generated id.
func (repo *followUpRepository) Create(ctx context.Context, followUp *entity.FollowUp) error {
	ref := repo.client.Collection(followUpsCollection).NewDoc()

	doc := &model.FollowUpDoc{
		UserID:  followUp.UserID.String(),
		Email:   followUp.Email,
		Message: followUp.Message,
		SentAt:  followUp.SentAt,
	}
	if _, err := ref.Create(ctx, doc); err != nil {
		return errors.Wrap(mapStoreError(err, nil), "failed to create follow-up")
	}
	followUp.ID = ref.ID

	return nil
}

// ListByUser returns follow-ups sent to a user, newest first.
func (repo *followUpRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FollowUp, error) {
	iter := repo.client.Collection(followUpsCollection).
		Where("userId", "==", userID.String()).
		OrderBy("sentAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var followUps []*entity.FollowUp
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(mapStoreError(err, nil), "failed to list follow-ups by user")
		}

		var doc model.FollowUpDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode follow-up document")
		}

		id, err := uuid.Parse(doc.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "follow-up document carries an invalid user id")
		}

		followUps = append(followUps, &entity.FollowUp{
			ID:      snap.Ref.ID,
			UserID:  id,
			Email:   doc.Email,
			Message: doc.Message,
			SentAt:  doc.SentAt,
		})
	}

	return followUps, nil
}
