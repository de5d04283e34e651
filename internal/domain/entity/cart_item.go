package entity

// CartItem is one line of a user's cart, stored in the per-user
// `cartItems` sub-collection keyed by the medicine id. One document per
// medicine: adding the same medicine again increments the quantity instead
// of creating a second line.
type CartItem struct {
	MedicineID string `json:"medicine_id"` // Doubles as the document id, which is what makes the merge-by-medicine rule hold.
	Name       string `json:"name"`        // Snapshot of the medicine name at the time it was added.
	PriceCents int64  `json:"price_cents"` // Snapshot of the unit price in minor currency units.
	ImageURL   string `json:"image_url"`   // Snapshot of the product image.
	Quantity   int    `json:"quantity"`    // Always >= 1; a decrement below 1 deletes the line instead.
}

// SubtotalCents returns price multiplied by quantity in minor units.
func (c *CartItem) SubtotalCents() int64 {
	return c.PriceCents * int64(c.Quantity)
}

// CartTotalCents sums the subtotals of all lines using integer arithmetic.
func CartTotalCents(items []*CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.SubtotalCents()
	}

	return total
}
