package impl

import (
	"io"
	"log/slog"

	"afyalink/internal/domain/entity"
)

// testLogger returns a logger that discards everything, for wiring services
// under test.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testCartItems is the standard two-line cart used across checkout tests:
// 2 x 599 + 1 x 850 = 2048 minor units.
func testCartItems() []*entity.CartItem {
	return []*entity.CartItem{
		{MedicineID: "med-1", Name: "Paracetamol 500mg", PriceCents: 599, Quantity: 2},
		{MedicineID: "med-2", Name: "Cough Syrup", PriceCents: 850, Quantity: 1},
	}
}
