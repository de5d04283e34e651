// Package firestore contains the concrete implementation of the persistence
// layer on the hosted Firestore document store.
package firestore

import (
	"context"
	"log/slog"

	"afyalink/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Collection names shared with the legacy storefront's Firestore project.
const (
	usersCollection         = "users"
	cartItemsCollection     = "cartItems"
	ordersCollection        = "orders"
	prescriptionsCollection = "prescriptions"
	medicinesCollection     = "medicines"
	followUpsCollection     = "followUps"
)

// ClientParams holds dependencies for the Firestore client, injected by Fx.
type ClientParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New initializes the Firestore client through the Firebase app so the same
// credentials serve any future Firebase surface (e.g. FCM).
func New(params ClientParams) (*firestore.Client, error) {
	if params.Config.Firestore == nil {
		return nil, errors.New("firestore configuration is required")
	}

	var opts []option.ClientOption
	if params.Config.Firestore.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(params.Config.Firestore.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{
		ProjectID: params.Config.Firestore.ProjectID,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize firebase app")
	}

	client, err := app.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create firestore client")
	}

	params.Logger.Info("Firestore client initialized",
		slog.String("project_id", params.Config.Firestore.ProjectID),
	)

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

// cartCollection returns the per-user cartItems sub-collection.
func cartCollection(client *firestore.Client, userID string) *firestore.CollectionRef {
	return client.Collection(usersCollection).Doc(userID).Collection(cartItemsCollection)
}
