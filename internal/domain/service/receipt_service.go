package service

// ReceiptService defines the interface for order-receipt QR generation.
type ReceiptService interface {
	// GenerateOrderReceiptQR encodes the order id and total into a QR code
	// PNG that couriers scan at hand-over.
	GenerateOrderReceiptQR(orderID string, totalCents int64) ([]byte, error)

	// ParseOrderReceiptQR parses receipt QR payload and returns the order id.
	ParseOrderReceiptQR(qrData string) (string, error)
}
