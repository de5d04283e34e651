package firestore

import (
	"context"

	"afyalink/internal/domain/entity"
	"afyalink/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// checkoutManager implements repository.CheckoutManager with a Firestore
// transaction: one order document created and every cart line deleted, as a
// single all-or-nothing commit. This is the system's one true atomicity
// requirement — an order without a cleared cart, or vice versa, must be
// impossible.
type checkoutManager struct {
	client *firestore.Client
}

// NewCheckoutManager is the constructor for checkoutManager.
func NewCheckoutManager(client *firestore.Client) repository.CheckoutManager {
	return &checkoutManager{client: client}
}

// PlaceOrder atomically creates the order and clears the user's cart.
// Firestore transactions require all reads before any write, so the cart
// refs are collected first, then the order create and the deletes are staged
// and committed together. Any failure before commit leaves both collections
// untouched; the caller may simply re-invoke.
func (cm *checkoutManager) PlaceOrder(ctx context.Context, userID uuid.UUID, order *entity.Order) (string, error) {
	orderRef := cm.client.Collection(ordersCollection).NewDoc()
	cartRef := cartCollection(cm.client, userID.String())

	err := cm.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		iter := tx.Documents(cartRef)
		defer iter.Stop()

		var lineRefs []*firestore.DocumentRef
		for {
			snap, err := iter.Next()
			if errors.Is(err, iterator.Done) {
				break
			}
			if err != nil {
				return err
			}
			lineRefs = append(lineRefs, snap.Ref)
		}

		if err := tx.Create(orderRef, fromOrderDomain(order)); err != nil {
			return err
		}
		for _, ref := range lineRefs {
			if err := tx.Delete(ref); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return "", errors.Wrap(mapStoreError(err, nil), "failed to commit checkout batch")
	}

	return orderRef.ID, nil
}
