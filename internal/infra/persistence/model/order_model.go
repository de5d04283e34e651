package model

import "time"

// OrderDoc mirrors a document in the 'orders' collection. Items are embedded
// value copies of the cart lines at checkout time, never references.
type OrderDoc struct {
	UserID          string             `firestore:"userId"`
	Items           []CartItemDoc      `firestore:"items"`
	Total           int64              `firestore:"total"`
	Status          string             `firestore:"status"`
	PaymentMethod   string             `firestore:"paymentMethod"`
	ShippingAddress ShippingAddressDoc `firestore:"shippingAddress"`
	CreatedAt       time.Time          `firestore:"createdAt,serverTimestamp"`
}

// ShippingAddressDoc is the embedded delivery destination.
type ShippingAddressDoc struct {
	FullName string `firestore:"fullName"`
	Address  string `firestore:"address"`
	Phone    string `firestore:"phone"`
}
