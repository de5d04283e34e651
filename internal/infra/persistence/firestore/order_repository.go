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

// orderRepository implements repository.OrderRepository on the orders
// collection. Creation is deliberately absent; see checkoutManager.
type orderRepository struct {
	client *firestore.Client
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

// FindByID retrieves a single order.
func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	snap, err := repo.client.Collection(ordersCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(mapStoreError(err, nil), "failed to find order by id")
	}

	return toOrderDomain(snap)
}

// ListByUser returns the user's orders newest first.
func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	iter := repo.client.Collection(ordersCollection).
		Where("userId", "==", userID.String()).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)

	return repo.collect(iter, "failed to list orders by user")
}

// ListRecent returns the newest n orders across all users.
func (repo *orderRepository) ListRecent(ctx context.Context, n int) ([]*entity.Order, error) {
	iter := repo.client.Collection(ordersCollection).
		OrderBy("createdAt", firestore.Desc).
		Limit(n).
		Documents(ctx)

	return repo.collect(iter, "failed to list recent orders")
}

// UpdateStatus overwrites the status field only; the item snapshot and the
// rest of the order never change after creation.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	ref := repo.client.Collection(ordersCollection).Doc(id)

	_, err := ref.Update(ctx, []firestore.Update{
		{Path: "status", Value: status.String()},
	})
	if err != nil {
		return errors.Wrap(mapStoreError(err, repository.ErrOrderNotFound), "failed to update order status")
	}

	return nil
}

func (repo *orderRepository) collect(iter *firestore.DocumentIterator, wrapMsg string) ([]*entity.Order, error) {
	defer iter.Stop()

	var orders []*entity.Order
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(mapStoreError(err, nil), wrapMsg)
		}

		order, err := toOrderDomain(snap)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func fromOrderDomain(order *entity.Order) *model.OrderDoc {
	items := make([]model.CartItemDoc, len(order.Items))
	for i, item := range order.Items {
		items[i] = *fromCartItemDomain(item)
	}

	return &model.OrderDoc{
		UserID: order.UserID.String(),
		Items:  items,
		Total:  order.TotalCents,
		Status: order.Status.String(),
		PaymentMethod: string(order.PaymentMethod),
		ShippingAddress: model.ShippingAddressDoc{
			FullName: order.ShippingAddress.FullName,
			Address:  order.ShippingAddress.Address,
			Phone:    order.ShippingAddress.Phone,
		},
		CreatedAt: order.CreatedAt,
	}
}

func toOrderDomain(snap *firestore.DocumentSnapshot) (*entity.Order, error) {
	var doc model.OrderDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode order document")
	}

	userID, err := uuid.Parse(doc.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "order document carries an invalid user id")
	}

	items := make([]*entity.CartItem, len(doc.Items))
	for i := range doc.Items {
		items[i] = &entity.CartItem{
			MedicineID: doc.Items[i].MedicineID,
			Name:       doc.Items[i].Name,
			PriceCents: doc.Items[i].Price,
			ImageURL:   doc.Items[i].ImageURL,
			Quantity:   doc.Items[i].Quantity,
		}
	}

	return &entity.Order{
		ID:            snap.Ref.ID,
		UserID:        userID,
		Items:         items,
		TotalCents:    doc.Total,
		Status:        entity.OrderStatus(doc.Status),
		PaymentMethod: entity.PaymentMethod(doc.PaymentMethod),
		ShippingAddress: entity.ShippingAddress{
			FullName: doc.ShippingAddress.FullName,
			Address:  doc.ShippingAddress.Address,
			Phone:    doc.ShippingAddress.Phone,
		},
		CreatedAt: doc.CreatedAt,
	}, nil
}
