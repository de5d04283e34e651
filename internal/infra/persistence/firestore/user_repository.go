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

// userRepository implements repository.UserRepository on the users
// collection. The document id is the account UUID.
type userRepository struct {
	client *firestore.Client
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	snap, err := repo.client.Collection(usersCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(mapStoreError(err, nil), "failed to find user by id")
	}

	return toUserDomain(snap)
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	iter := repo.client.Collection(usersCollection).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(mapStoreError(err, nil), "failed to find user by email")
	}

	return toUserDomain(snap)
}

// Create persists a new user document keyed by the account UUID.
// Create (rather than Set) fails if the document already exists, so two
// racing registrations of the same id cannot clobber each other.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	ref := repo.client.Collection(usersCollection).Doc(user.ID.String())

	if _, err := ref.Create(ctx, fromUserDomain(user)); err != nil {
		return errors.Wrap(mapStoreError(err, nil), "failed to create user")
	}

	return nil
}

// Update overwrites the mutable user fields.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	ref := repo.client.Collection(usersCollection).Doc(user.ID.String())

	_, err := ref.Update(ctx, []firestore.Update{
		{Path: "name", Value: user.Name},
		{Path: "role", Value: user.Role.String()},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		return errors.Wrap(mapStoreError(err, repository.ErrUserNotFound), "failed to update user")
	}

	return nil
}

func fromUserDomain(user *entity.User) *model.UserDoc {
	return &model.UserDoc{
		Email:        user.Email,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		Role:         user.Role.String(),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func toUserDomain(snap *firestore.DocumentSnapshot) (*entity.User, error) {
	var doc model.UserDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode user document")
	}

	id, err := uuid.Parse(snap.Ref.ID)
	if err != nil {
		return nil, errors.Wrap(err, "user document carries an invalid id")
	}

	return &entity.User{
		ID:           id,
		Email:        doc.Email,
		Name:         doc.Name,
		PasswordHash: doc.PasswordHash,
		Role:         entity.Role(doc.Role),
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}, nil
}
