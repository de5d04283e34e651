package entity

import "time"

// Medicine is a catalog item. Prices are in minor currency units (cents)
// throughout the system; totals are summed with integer arithmetic only.
type Medicine struct {
	ID                   string    `json:"id"`                    // Document id in the `medicines` collection.
	Name                 string    `json:"name"`                  // Display name, e.g. "Paracetamol 500mg".
	Description          string    `json:"description"`           // Free-text description shown on the product page.
	Category             string    `json:"category"`              // Storefront category, e.g. "Pain Relief".
	PriceCents           int64     `json:"price_cents"`           // Unit price in minor currency units.
	Stock                int       `json:"stock"`                 // Units on hand. Zero means out of stock.
	ImageURL             string    `json:"image_url"`             // Product image URL.
	RequiresPrescription bool      `json:"requires_prescription"` // Whether checkout of this item needs an approved prescription.
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// InStock reports whether at least one unit is available.
func (m *Medicine) InStock() bool {
	return m.Stock > 0
}
