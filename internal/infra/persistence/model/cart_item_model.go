package model

// CartItemDoc mirrors a document in 'users/{uid}/cartItems'. The document id
// is the medicine id, which is what collapses repeated adds onto one line.
type CartItemDoc struct {
	MedicineID string `firestore:"medicineId"`
	Name       string `firestore:"name"`
	Price      int64  `firestore:"price"`
	ImageURL   string `firestore:"imageUrl"`
	Quantity   int    `firestore:"quantity"`
}
